package backup

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "backups-list",
		Method:      http.MethodGet,
		Path:        "/api/backups/list",
		Summary:     "Список резервных копий",
		Description: "Новые копии идут первыми.",
		Tags:        []string{"backups"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "backups-create",
		Method:        http.MethodPost,
		Path:          "/api/backups/create",
		Summary:       "Создать резервную копию базы",
		Tags:          []string{"backups"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) restoreOp() huma.Operation {
	return huma.Operation{
		OperationID: "backups-restore",
		Method:      http.MethodPost,
		Path:        "/api/backups/restore",
		Summary:     "Восстановить базу из резервной копии",
		Description: "Необратимо заменяет текущие данные содержимым архива.",
		Tags:        []string{"backups"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "backups-delete",
		Method:      http.MethodDelete,
		Path:        "/api/backups/{filename}",
		Summary:     "Удалить резервную копию",
		Tags:        []string{"backups"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) historyOp() huma.Operation {
	return huma.Operation{
		OperationID: "backups-history",
		Method:      http.MethodGet,
		Path:        "/api/backups/history",
		Summary:     "Журнал операций с резервными копиями",
		Tags:        []string{"backups"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
