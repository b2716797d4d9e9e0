package panel

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"goldkeeper/internal/app/client"
	"goldkeeper/internal/domain/user"
)

// Page собирает панели страницы настроек. Настройки магазина и резервные
// копии создаются только для администратора, иначе поля равны nil.
type Page struct {
	Actor     user.User
	Users     *UserPanel
	WorkTypes *WorkTypePanel
	Settings  *SettingsPanel
	Backups   *BackupPanel

	api    API
	notify notifier
	log    *slog.Logger
}

func NewPage(api API, actor user.User, n Notifier, log *slog.Logger) *Page {
	p := &Page{
		Actor:     actor,
		Users:     NewUserPanel(api, actor, n, log),
		WorkTypes: NewWorkTypePanel(api, n, log),
		api:       api,
		notify:    notifier{n},
		log:       log.With(slog.String("component", "settings_page")),
	}
	if actor.IsAdmin() {
		p.Settings = NewSettingsPanel(api, n, log)
		p.Backups = NewBackupPanel(api, n, log)
		// после восстановления базы устарели все панели
		p.Backups.SetOnRestored(p.afterRestore)
	}
	return p
}

// Mount загружает все панели параллельно. Панели независимы: ошибка одной
// не отменяет загрузку остальных, каждая сама уведомляет пользователя.
func (p *Page) Mount(ctx context.Context) error {
	loaders := []func(context.Context) error{p.Users.Load, p.WorkTypes.Load}
	if p.Settings != nil {
		loaders = append(loaders, p.Settings.Load)
	}
	if p.Backups != nil {
		loaders = append(loaders, p.Backups.Load)
	}

	errs := make([]error, len(loaders))
	var g errgroup.Group
	for i, load := range loaders {
		g.Go(func() error {
			errs[i] = load(ctx)
			return nil
		})
	}
	_ = g.Wait()

	err := errors.Join(errs...)
	if err != nil {
		p.log.Debug("page mounted with errors", "error", err)
	}
	return err
}

// afterRestore перезагружает страницу после восстановления базы. Восстановленная
// база не содержит токенов входа, поэтому сессия обычно завершается: тогда вместо
// ошибки на каждой панели показывается одно предупреждение.
func (p *Page) afterRestore(ctx context.Context) error {
	if _, err := p.api.ListUsers(ctx); client.IsUnauthorized(err) {
		p.notify.warn("Требуется повторный вход", "После восстановления базы сессия завершена, выполните вход заново")
		return client.ErrNotAuthenticated
	}
	return p.Mount(ctx)
}
