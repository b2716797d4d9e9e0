package settings

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-shop-get",
		Method:      http.MethodGet,
		Path:        "/api/settings/shop",
		Summary:     "Настройки магазина",
		Tags:        []string{"settings"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}

func (h *Handler) replaceOp() huma.Operation {
	return huma.Operation{
		OperationID: "settings-shop-replace",
		Method:      http.MethodPut,
		Path:        "/api/settings/shop",
		Summary:     "Заменить настройки магазина",
		Description: "Только для администратора. Коэффициент должен быть в диапазоне (0, 1].",
		Tags:        []string{"settings"},
		Security:    bearer,
		Middlewares: h.middleware,
	}
}
