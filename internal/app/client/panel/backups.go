package panel

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/client"
	"goldkeeper/internal/domain/backup"
)

const defaultHistoryLimit = 50

// BackupPanel - резервные копии базы, только для администратора
type BackupPanel struct {
	api    BackupsAPI
	notify notifier
	log    *slog.Logger

	mu         sync.Mutex
	items      []backup.Backup
	denied     bool
	creating   bool
	mode       Mode
	target     backup.Backup
	onRestored func(ctx context.Context) error
}

func NewBackupPanel(api BackupsAPI, n Notifier, log *slog.Logger) *BackupPanel {
	return &BackupPanel{
		api:    api,
		notify: notifier{n},
		log:    log.With(slog.String("panel", "backups")),
	}
}

// Load перечитывает список в порядке сервера. Ответ 403 не показывается
// пользователю: панель остается пустой, Denied() возвращает true.
func (p *BackupPanel) Load(ctx context.Context) error {
	items, err := p.api.ListBackups(ctx)
	if err != nil {
		if client.IsForbidden(err) {
			p.log.Debug("backup list forbidden")
			p.mu.Lock()
			p.items = nil
			p.denied = true
			p.mu.Unlock()
			return nil
		}
		p.notify.fail("Не удалось загрузить резервные копии", err)
		return err
	}

	p.mu.Lock()
	p.items = items
	p.denied = false
	p.mu.Unlock()
	return nil
}

func (p *BackupPanel) Backups() []backup.Backup {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.items)
}

func (p *BackupPanel) Denied() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.denied
}

// Creating - идет ли создание копии
func (p *BackupPanel) Creating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.creating
}

func (p *BackupPanel) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// SetOnRestored задает действие после успешного восстановления.
// По умолчанию перечитывается только список копий.
func (p *BackupPanel) SetOnRestored(fn func(ctx context.Context) error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onRestored = fn
}

// Create запускает создание копии. Повторный вызов во время создания
// возвращает ErrBusy без запроса к серверу.
func (p *BackupPanel) Create(ctx context.Context) (backup.Backup, error) {
	p.mu.Lock()
	if p.creating {
		p.mu.Unlock()
		return backup.Backup{}, ErrBusy
	}
	p.creating = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.creating = false
		p.mu.Unlock()
	}()

	p.notify.info("Создание резервной копии", "Это может занять несколько минут")

	b, err := p.api.CreateBackup(ctx)
	if err != nil {
		p.notify.fail("Не удалось создать резервную копию", err)
		return backup.Backup{}, err
	}

	p.notify.success("Резервная копия создана", b.Filename)
	if err := p.Load(ctx); err != nil {
		p.log.Warn("reload after create failed", "error", err)
	}
	return b, nil
}

// RequestRestore открывает первое подтверждение восстановления
func (p *BackupPanel) RequestRestore(b backup.Backup) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeConfirmRestore
	p.target = b
}

// Consequences перечисляет последствия восстановления для диалога подтверждения
func (p *BackupPanel) Consequences() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != ModeConfirmRestore {
		return nil
	}
	return []string{
		fmt.Sprintf("Все текущие данные будут заменены содержимым копии %s от %s", p.target.Filename, FormatTime(p.target.CreatedAt)),
		"Пользователи, типы работ и настройки, созданные после этой копии, будут потеряны",
		"Существующие объекты базы будут удалены перед восстановлением",
		"Текущие сессии будут завершены, после восстановления потребуется войти заново",
		"Операцию нельзя отменить",
	}
}

// ConfirmRestore - второе подтверждение: typed должен совпасть с именем файла
func (p *BackupPanel) ConfirmRestore(ctx context.Context, typed string) error {
	p.mu.Lock()
	mode, target, onRestored := p.mode, p.target, p.onRestored
	p.mu.Unlock()
	if mode != ModeConfirmRestore {
		return ErrNotConfirming
	}

	if typed != target.Filename {
		p.notify.warn("Восстановление не подтверждено", "Введите имя файла копии без изменений")
		return ErrValidation
	}

	p.notify.info("Восстановление базы", target.Filename)
	if err := p.api.RestoreBackup(ctx, target.Filename, true); err != nil {
		p.notify.fail("Не удалось восстановить базу", err)
		return err
	}

	p.CancelRestore()
	p.notify.success("База восстановлена", target.Filename)

	reload := onRestored
	if reload == nil {
		reload = p.Load
	}
	if err := reload(ctx); err != nil {
		p.log.Warn("reload after restore failed", "error", err)
	}
	return nil
}

func (p *BackupPanel) CancelRestore() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode == ModeConfirmRestore {
		p.mode = ModeClosed
		p.target = backup.Backup{}
	}
}

func (p *BackupPanel) RequestDelete(b backup.Backup) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeConfirmDelete
	p.target = b
}

func (p *BackupPanel) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	mode, target := p.mode, p.target
	p.mu.Unlock()
	if mode != ModeConfirmDelete {
		return ErrNotConfirming
	}

	err := p.api.DeleteBackup(ctx, target.Filename)
	p.CancelDelete()
	if err != nil {
		p.notify.fail("Не удалось удалить резервную копию", err)
		return err
	}

	p.notify.success("Резервная копия удалена", target.Filename)
	if err := p.Load(ctx); err != nil {
		p.log.Warn("reload after delete failed", "error", err)
	}
	return nil
}

func (p *BackupPanel) CancelDelete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode == ModeConfirmDelete {
		p.mode = ModeClosed
		p.target = backup.Backup{}
	}
}

// History возвращает журнал операций с копиями, limit <= 0 - значение по умолчанию
func (p *BackupPanel) History(ctx context.Context, limit int) ([]backup.Event, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	events, err := p.api.BackupHistory(ctx, limit)
	if err != nil {
		p.notify.fail("Не удалось загрузить журнал", err)
		return nil, err
	}
	return events, nil
}
