package panel

import (
	"context"
	"errors"

	"goldkeeper/internal/domain/backup"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
)

var (
	ErrNoDialog      = errors.New("dialog is not open")
	ErrNotConfirming = errors.New("no pending confirmation")
	ErrValidation    = errors.New("validation failed")
	ErrForbidden     = errors.New("action is not allowed for current user")
	ErrBusy          = errors.New("operation already in progress")
)

// Mode - состояние диалога панели.
//
//	Closed -> Create|Edit -> (успех) Closed + перезагрузка списка
//	                      -> (отмена) Closed
//	                      -> (ошибка) остается открытым
//	Closed -> Confirm -> (подтверждение) Closed + перезагрузка
//	                  -> (отмена) Closed
type Mode int

const (
	ModeClosed Mode = iota
	ModeCreate
	ModeEdit
	ModePassword
	ModeConfirmDelete
	ModeConfirmRestore
)

func (m Mode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	case ModePassword:
		return "password"
	case ModeConfirmDelete:
		return "confirm-delete"
	case ModeConfirmRestore:
		return "confirm-restore"
	default:
		return "closed"
	}
}

// UsersAPI - операции с пользователями, нужные панели
type UsersAPI interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	CreateUser(ctx context.Context, req user.CreateRequest) (user.User, error)
	UpdateUser(ctx context.Context, id int, req user.UpdateRequest) (user.User, error)
	DeleteUser(ctx context.Context, id int) error
	ChangePassword(ctx context.Context, id int, newPassword string) error
}

type WorkTypesAPI interface {
	ListWorkTypes(ctx context.Context) ([]worktype.WorkType, error)
	CreateWorkType(ctx context.Context, req worktype.CreateRequest) (worktype.WorkType, error)
	UpdateWorkType(ctx context.Context, id int, req worktype.UpdateRequest) (worktype.WorkType, error)
	DeleteWorkType(ctx context.Context, id int) error
}

type SettingsAPI interface {
	GetShopSettings(ctx context.Context) (settings.ShopSettings, error)
	SaveShopSettings(ctx context.Context, req settings.UpdateRequest) (settings.ShopSettings, error)
}

type BackupsAPI interface {
	ListBackups(ctx context.Context) ([]backup.Backup, error)
	CreateBackup(ctx context.Context) (backup.Backup, error)
	RestoreBackup(ctx context.Context, filename string, dropExisting bool) error
	DeleteBackup(ctx context.Context, filename string) error
	BackupHistory(ctx context.Context, limit int) ([]backup.Event, error)
}

// API - весь набор операций страницы настроек. *client.HTTPClient его реализует.
type API interface {
	UsersAPI
	WorkTypesAPI
	SettingsAPI
	BackupsAPI
}
