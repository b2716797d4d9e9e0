package panel

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/user"
)

// UserForm - поля диалога создания и редактирования пользователя
type UserForm struct {
	Username string
	FullName string
	Email    string
	Role     user.Role
	IsActive bool
	Password string
}

type UserPanel struct {
	api    UsersAPI
	actor  user.User
	notify notifier
	log    *slog.Logger

	mu     sync.Mutex
	users  []user.User
	mode   Mode
	form   UserForm
	target user.User
}

func NewUserPanel(api UsersAPI, actor user.User, n Notifier, log *slog.Logger) *UserPanel {
	return &UserPanel{
		api:    api,
		actor:  actor,
		notify: notifier{n},
		log:    log.With(slog.String("panel", "users")),
	}
}

// Load перечитывает список пользователей с сервера
func (p *UserPanel) Load(ctx context.Context) error {
	users, err := p.api.ListUsers(ctx)
	if err != nil {
		p.log.Debug("list users failed", "error", err)
		p.notify.fail("Не удалось загрузить пользователей", err)
		return err
	}

	p.mu.Lock()
	p.users = users
	p.mu.Unlock()
	return nil
}

func (p *UserPanel) Users() []user.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.users)
}

// CanManage - может ли текущий пользователь создавать и редактировать учетные записи
func (p *UserPanel) CanManage() bool {
	return p.actor.CanManageUsers()
}

// CanDelete - удалять может только администратор и только чужие учетные записи
func (p *UserPanel) CanDelete(u user.User) bool {
	return p.actor.IsAdmin() && u.ID != p.actor.ID
}

// RoleOptions - роли, доступные в форме. Менеджер не видит admin.
func (p *UserPanel) RoleOptions() []user.Role {
	return p.actor.AssignableRoles()
}

func (p *UserPanel) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

func (p *UserPanel) Form() UserForm {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.form
}

// SetForm заменяет поля открытого диалога
func (p *UserPanel) SetForm(f UserForm) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != ModeCreate && p.mode != ModeEdit {
		return ErrNoDialog
	}
	if p.mode == ModeEdit {
		// логин после создания не меняется
		f.Username = p.target.Username
	}
	f.Password = strings.TrimRight(f.Password, "\r\n")
	p.form = f
	return nil
}

func (p *UserPanel) OpenCreate() error {
	if !p.CanManage() {
		return ErrForbidden
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeCreate
	p.target = user.User{}
	p.form = UserForm{Role: user.RoleStaff, IsActive: true}
	return nil
}

func (p *UserPanel) OpenEdit(u user.User) error {
	if !p.CanManage() {
		return ErrForbidden
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeEdit
	p.target = u
	p.form = UserForm{
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
	return nil
}

// Cancel закрывает любой открытый диалог без запросов к серверу
func (p *UserPanel) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.close()
}

func (p *UserPanel) close() {
	p.mode = ModeClosed
	p.form = UserForm{}
	p.target = user.User{}
}

// Submit отправляет диалог создания или редактирования
func (p *UserPanel) Submit(ctx context.Context) error {
	p.mu.Lock()
	mode, form, target := p.mode, p.form, p.target
	p.mu.Unlock()

	switch mode {
	case ModeCreate:
		return p.submitCreate(ctx, form)
	case ModeEdit:
		return p.submitEdit(ctx, target, form)
	default:
		return ErrNoDialog
	}
}

func (p *UserPanel) submitCreate(ctx context.Context, f UserForm) error {
	if strings.TrimSpace(f.Username) == "" || strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.FullName) == "" {
		p.notify.warn("Заполните обязательные поля", "Логин, email и ФИО обязательны")
		return ErrValidation
	}
	if len(f.Password) < user.MinPasswordLen {
		p.notify.warn("Слишком короткий пароль", fmt.Sprintf("Пароль должен быть не короче %d символов", user.MinPasswordLen))
		return ErrValidation
	}
	if !p.roleAllowed(f.Role) {
		return ErrValidation
	}

	created, err := p.api.CreateUser(ctx, user.CreateRequest{
		Username: strings.TrimSpace(f.Username),
		Password: f.Password,
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Role:     f.Role,
	})
	if err != nil {
		p.notify.fail("Не удалось создать пользователя", err)
		return err
	}

	p.notify.success("Пользователь создан", created.Username)
	return p.finish(ctx)
}

func (p *UserPanel) submitEdit(ctx context.Context, target user.User, f UserForm) error {
	if strings.TrimSpace(f.Email) == "" || strings.TrimSpace(f.FullName) == "" {
		p.notify.warn("Заполните обязательные поля", "Email и ФИО обязательны")
		return ErrValidation
	}
	if f.Role != target.Role && !p.roleAllowed(f.Role) {
		return ErrValidation
	}

	// Пароль и логин в PATCH не передаются
	fullName := strings.TrimSpace(f.FullName)
	email := strings.TrimSpace(f.Email)
	role := f.Role
	active := f.IsActive
	updated, err := p.api.UpdateUser(ctx, target.ID, user.UpdateRequest{
		FullName: &fullName,
		Email:    &email,
		Role:     &role,
		IsActive: &active,
	})
	if err != nil {
		p.notify.fail("Не удалось сохранить пользователя", err)
		return err
	}

	p.notify.success("Пользователь обновлен", updated.Username)
	return p.finish(ctx)
}

func (p *UserPanel) roleAllowed(r user.Role) bool {
	if slices.Contains(p.RoleOptions(), r) {
		return true
	}
	p.notify.warn("Недопустимая роль", fmt.Sprintf("Роль %q нельзя назначить", r))
	return false
}

// RequestDelete открывает подтверждение удаления
func (p *UserPanel) RequestDelete(u user.User) error {
	if !p.CanDelete(u) {
		return ErrForbidden
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModeConfirmDelete
	p.target = u
	return nil
}

func (p *UserPanel) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	mode, target := p.mode, p.target
	p.mu.Unlock()
	if mode != ModeConfirmDelete {
		return ErrNotConfirming
	}

	if err := p.api.DeleteUser(ctx, target.ID); err != nil {
		p.notify.fail("Не удалось удалить пользователя", err)
		p.Cancel()
		return err
	}

	p.notify.success("Пользователь удален", target.Username)
	return p.finish(ctx)
}

// OpenPasswordReset открывает диалог смены пароля для u
func (p *UserPanel) OpenPasswordReset(u user.User) error {
	if !p.CanManage() {
		return ErrForbidden
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = ModePassword
	p.target = u
	p.form = UserForm{}
	return nil
}

func (p *UserPanel) SubmitPassword(ctx context.Context, password string) error {
	p.mu.Lock()
	mode, target := p.mode, p.target
	p.mu.Unlock()
	if mode != ModePassword {
		return ErrNoDialog
	}

	if len(password) < user.MinPasswordLen {
		p.notify.warn("Слишком короткий пароль", fmt.Sprintf("Пароль должен быть не короче %d символов", user.MinPasswordLen))
		return ErrValidation
	}

	if err := p.api.ChangePassword(ctx, target.ID, password); err != nil {
		p.notify.fail("Не удалось сменить пароль", err)
		return err
	}

	p.notify.success("Пароль изменен", target.Username)
	return p.finish(ctx)
}

// finish закрывает диалог и перечитывает список
func (p *UserPanel) finish(ctx context.Context) error {
	p.Cancel()
	if err := p.Load(ctx); err != nil {
		p.log.Warn("reload after mutation failed", "error", err)
	}
	return nil
}
