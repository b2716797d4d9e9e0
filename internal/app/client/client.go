package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/client/config"
	"goldkeeper/internal/domain/user"
)

// App связывает конфигурацию, HTTP-клиент и сохраненную сессию администратора
type App struct {
	config *config.Config
	log    *slog.Logger
	api    *HTTPClient

	mu      sync.RWMutex
	session *Session
}

// Session хранится в файле SessionPath между запусками CLI
type Session struct {
	Token     string    `json:"token"`
	User      user.User `json:"user"`
	Server    string    `json:"server"`
	CreatedAt time.Time `json:"created_at"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	app := &App{
		config: cfg,
		log:    log,
		api:    httpCl,
	}

	// Загружаем сессию если она есть
	s, err := loadSession(cfg.SessionPath)
	if err != nil {
		log.Warn("Не удалось загрузить сессию", "error", err)
	}
	if s != nil && s.Server == cfg.BaseURL() {
		app.session = s
		httpCl.SetToken(s.Token)
		log.Debug("Сессия загружена из файла", "user", s.User.Username)
	}

	return app, nil
}

// ServerURL - адрес сервера со схемой
func (a *App) ServerURL() string {
	return a.config.BaseURL()
}

func (a *App) SessionPath() string {
	return a.config.SessionPath
}

// API возвращает HTTP-клиент с токеном текущей сессии
func (a *App) API() *HTTPClient {
	return a.api
}

func (a *App) Login(ctx context.Context, username, password string) (user.User, error) {
	resp, err := a.api.Login(ctx, username, password)
	if err != nil {
		return user.User{}, err
	}

	s := &Session{
		Token:     resp.Token,
		User:      resp.User,
		Server:    a.config.BaseURL(),
		CreatedAt: time.Now(),
	}
	if err := saveSession(a.config.SessionPath, s); err != nil {
		return user.User{}, fmt.Errorf("ошибка сохранения сессии: %w", err)
	}

	a.mu.Lock()
	a.session = s
	a.mu.Unlock()
	a.api.SetToken(s.Token)

	a.log.Info("Вход выполнен", "user", resp.User.Username, "role", resp.User.Role)
	return resp.User, nil
}

// Logout завершает сессию на сервере и удаляет локальный файл.
// Просроченная на сервере сессия ошибкой не считается.
func (a *App) Logout(ctx context.Context) error {
	if !a.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	err := a.api.Logout(ctx)
	if err != nil && !IsUnauthorized(err) {
		return err
	}
	return a.clearSession()
}

// CurrentUser возвращает пользователя сохраненной сессии
func (a *App) CurrentUser() (user.User, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.session == nil {
		return user.User{}, false
	}
	return a.session.User, true
}

func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session != nil && a.session.Token != ""
}

// Refresh перечитывает текущего пользователя с сервера: роль могла измениться.
// При 401 локальная сессия удаляется.
func (a *App) Refresh(ctx context.Context) (user.User, error) {
	if !a.IsAuthenticated() {
		return user.User{}, ErrNotAuthenticated
	}

	u, err := a.api.Me(ctx)
	if err != nil {
		if IsUnauthorized(err) {
			if cerr := a.clearSession(); cerr != nil {
				a.log.Warn("Не удалось удалить сессию", "error", cerr)
			}
			return user.User{}, ErrNotAuthenticated
		}
		return user.User{}, err
	}

	a.mu.Lock()
	if a.session == nil {
		// сессию удалили, пока шел запрос
		a.mu.Unlock()
		return user.User{}, ErrNotAuthenticated
	}
	a.session.User = u
	s := *a.session
	a.mu.Unlock()

	if err := saveSession(a.config.SessionPath, &s); err != nil {
		a.log.Warn("Не удалось обновить сессию", "error", err)
	}
	return u, nil
}

func (a *App) clearSession() error {
	a.mu.Lock()
	a.session = nil
	a.mu.Unlock()
	a.api.SetToken("")

	if err := os.Remove(a.config.SessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("ошибка удаления сессии: %w", err)
	}
	return nil
}

func loadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

func saveSession(path string, s *Session) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
