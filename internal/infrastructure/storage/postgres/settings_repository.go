package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/settings"
)

type SettingsRepository struct {
	pool DBTX
	log  *slog.Logger
}

func NewSettingsRepository(pool DBTX, log *slog.Logger) *SettingsRepository {
	return &SettingsRepository{
		pool: pool,
		log:  log.With(slog.String("component", "settings_repository")),
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (settings.ShopSettings, error) {
	const query = `
		SELECT purchase_conversion_factor::float8, updated_at, updated_by
		FROM shop_settings
		WHERE id = 1`

	var s settings.ShopSettings
	err := r.pool.QueryRow(ctx, query).Scan(&s.PurchaseConversionFactor, &s.UpdatedAt, &s.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.ShopSettings{}, settings.ErrNotFound
		}
		return settings.ShopSettings{}, fmt.Errorf("get shop settings: %w", err)
	}
	return s, nil
}

// Save заменяет единственную запись настроек целиком
func (r *SettingsRepository) Save(ctx context.Context, s settings.ShopSettings) error {
	const query = `
		INSERT INTO shop_settings (id, purchase_conversion_factor, updated_at, updated_by)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET purchase_conversion_factor = EXCLUDED.purchase_conversion_factor,
		    updated_at = EXCLUDED.updated_at,
		    updated_by = EXCLUDED.updated_by`

	if _, err := r.pool.Exec(ctx, query, s.PurchaseConversionFactor, s.UpdatedAt, s.UpdatedBy); err != nil {
		r.log.Error("failed to save shop settings", slog.Any("error", err))
		return fmt.Errorf("save shop settings: %w", err)
	}
	return nil
}
