package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, actor User, req CreateRequest) (User, error)
	Authenticate(ctx context.Context, username, password string) (User, error)
	Get(ctx context.Context, id int) (User, error)
	List(ctx context.Context) ([]User, error)
	Update(ctx context.Context, actor User, id int, req UpdateRequest) (User, error)
	Delete(ctx context.Context, actor User, id int) error
	ChangePassword(ctx context.Context, actor User, id int, newPassword string) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With(slog.String("component", "user_service")),
	}
}

func (s *Service) Register(ctx context.Context, actor User, req CreateRequest) (User, error) {
	if !actor.CanManageUsers() {
		return User{}, ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return User{}, err
	}

	u := User{
		Username: strings.TrimSpace(req.Username),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Role:     req.Role,
		IsActive: true,
	}
	if u.Role == "" {
		u.Role = RoleStaff
	}
	if u.Role == RoleAdmin && !actor.IsAdmin() {
		return User{}, fmt.Errorf("%w: only administrators can create administrators", ErrForbidden)
	}

	if err := s.validator.ValidateUsername(u.Username); err != nil {
		s.log.Debug("validation failed", "username", u.Username, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.validator.ValidateEmail(u.Email); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.validator.ValidatePassword(req.Password); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("хэш пароля: %w", err)
	}
	u.Password = string(hash)

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return User{}, err
	}

	s.log.Info("user registered", "user_id", id, "username", u.Username, "role", u.Role, "by", actor.Username)
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	if err := s.validator.ValidateUsername(username); err != nil {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	if !u.IsActive {
		return User{}, ErrInactive
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id int) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, actor User, id int, req UpdateRequest) (User, error) {
	if !actor.CanManageUsers() {
		return User{}, ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return User{}, err
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if target.Role == RoleAdmin && !actor.IsAdmin() {
		return User{}, fmt.Errorf("%w: only administrators can modify administrators", ErrForbidden)
	}
	if req.Role != nil && *req.Role == RoleAdmin && !actor.IsAdmin() {
		return User{}, fmt.Errorf("%w: only administrators can grant the admin role", ErrForbidden)
	}
	if actor.ID == id {
		if req.IsActive != nil && !*req.IsActive {
			return User{}, fmt.Errorf("%w: you cannot deactivate your own account", ErrForbidden)
		}
		if req.Role != nil && *req.Role != target.Role {
			return User{}, fmt.Errorf("%w: you cannot change your own role", ErrForbidden)
		}
	}
	if req.Email != nil {
		if err := s.validator.ValidateEmail(*req.Email); err != nil {
			return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	req.Apply(&target)
	if err := s.repo.Update(ctx, target); err != nil {
		return User{}, err
	}

	s.log.Info("user updated", "user_id", id, "by", actor.Username)
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, actor User, id int) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if actor.ID == id {
		return ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("user deleted", "user_id", id, "by", actor.Username)
	return nil
}

func (s *Service) ChangePassword(ctx context.Context, actor User, id int, newPassword string) error {
	if actor.ID != id {
		if !actor.CanManageUsers() {
			return ErrForbidden
		}
		target, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if target.Role == RoleAdmin && !actor.IsAdmin() {
			return fmt.Errorf("%w: only administrators can reset administrator passwords", ErrForbidden)
		}
	}

	if err := s.validator.ValidatePassword(newPassword); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("хэш пароля: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hash)); err != nil {
		return err
	}

	s.log.Info("password changed", "user_id", id, "by", actor.Username)
	return nil
}

// EnsureAdmin создает первого администратора, если в базе нет ни одного пользователя.
// Возвращает true, если учетная запись была создана.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if username == "" || password == "" {
		return false, errors.New("no users exist and bootstrap admin credentials are not configured")
	}

	if err := s.validator.ValidateUsername(username); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.validator.ValidatePassword(password); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("хэш пароля: %w", err)
	}

	_, err = s.repo.Create(ctx, User{
		Username: username,
		FullName: "Administrator",
		Email:    username + "@localhost",
		Role:     RoleAdmin,
		IsActive: true,
		Password: string(hash),
	})
	if err != nil {
		return false, err
	}

	s.log.Warn("bootstrap administrator created", "username", username)
	return true, nil
}
