package worktype

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "work-types-list",
		Method:      http.MethodGet,
		Path:        "/api/work-types",
		Summary:     "Список типов работ",
		Tags:        []string{"work-types"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "work-types-create",
		Method:        http.MethodPost,
		Path:          "/api/work-types",
		Summary:       "Создать тип работ",
		Tags:          []string{"work-types"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "work-types-update",
		Method:      http.MethodPatch,
		Path:        "/api/work-types/{id}",
		Summary:     "Изменить тип работ",
		Tags:        []string{"work-types"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "work-types-delete",
		Method:        http.MethodDelete,
		Path:          "/api/work-types/{id}",
		Summary:       "Удалить тип работ",
		Tags:          []string{"work-types"},
		Security:      bearer,
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
