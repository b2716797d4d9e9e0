package panel

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/settings"
)

// SettingsPanel - настройки магазина, только для администратора
type SettingsPanel struct {
	api    SettingsAPI
	notify notifier
	log    *slog.Logger

	mu     sync.Mutex
	cur    settings.ShopSettings
	loaded bool
}

func NewSettingsPanel(api SettingsAPI, n Notifier, log *slog.Logger) *SettingsPanel {
	return &SettingsPanel{
		api:    api,
		notify: notifier{n},
		log:    log.With(slog.String("panel", "settings")),
	}
}

func (p *SettingsPanel) Load(ctx context.Context) error {
	s, err := p.api.GetShopSettings(ctx)
	if err != nil {
		p.notify.fail("Не удалось загрузить настройки", err)
		return err
	}

	p.mu.Lock()
	p.cur = s
	p.loaded = true
	p.mu.Unlock()
	return nil
}

// Settings возвращает последние загруженные настройки
func (p *SettingsPanel) Settings() (settings.ShopSettings, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cur, p.loaded
}

// Save проверяет коэффициент и заменяет настройки целиком.
// Значения вне (0, 1] отклоняются, значения вне 0.900-0.930 проходят с предупреждением.
func (p *SettingsPanel) Save(ctx context.Context, factor float64) error {
	if err := settings.ValidateFactor(factor); err != nil {
		p.notify.warn("Недопустимый коэффициент", fmt.Sprintf("Коэффициент должен быть больше 0 и не больше %.3f", settings.MaxFactor))
		return ErrValidation
	}
	if !settings.InTypicalRange(factor) {
		p.notify.warn("Необычный коэффициент",
			fmt.Sprintf("%.3f вне типичного диапазона %.3f-%.3f", factor, settings.TypicalFactorMin, settings.TypicalFactorMax))
	}

	if _, err := p.api.SaveShopSettings(ctx, settings.UpdateRequest{PurchaseConversionFactor: factor}); err != nil {
		p.notify.fail("Не удалось сохранить настройки", err)
		return err
	}

	p.notify.success("Настройки сохранены", fmt.Sprintf("Коэффициент пересчета: %s", FormatFactor(factor)))
	if err := p.Load(ctx); err != nil {
		p.log.Warn("reload after save failed", "error", err)
	}
	return nil
}
