package settings

import "goldkeeper/internal/domain/settings"

type output struct {
	Body settings.ShopSettings
}

type replaceInput struct {
	Body settings.UpdateRequest
}
