package settings

import "context"

type Repository interface {
	Get(ctx context.Context) (ShopSettings, error)
	Save(ctx context.Context, s ShopSettings) error
}
