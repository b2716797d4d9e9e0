package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/client/config"
	"goldkeeper/internal/domain/backup"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
)

// HTTPClient - клиент административного REST API магазина
type HTTPClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string

	mu    sync.RWMutex
	token string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
	}

	if cfg.CACertPath != "" {
		pem, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, fmt.Errorf("чтение сертификата CA: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("сертификат CA %s не распознан", cfg.CACertPath)
		}
		transport.TLSClientConfig = &tls.Config{RootCAs: pool, MinVersion: tls.VersionTLS12}
	}

	return &HTTPClient{
		client: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		log:       log.With(slog.String("component", "http_client")),
		baseURL:   cfg.BaseURL(),
		userAgent: "Goldkeeper-Admin/1.0",
	}, nil
}

// SetToken устанавливает токен аутентификации
func (h *HTTPClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *HTTPClient) currentToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// HealthCheck проверяет доступность сервера
func (h *HTTPClient) HealthCheck(ctx context.Context) error {
	return h.call(ctx, http.MethodGet, "/api/health", nil, nil)
}

func (h *HTTPClient) Login(ctx context.Context, username, password string) (user.LoginResponse, error) {
	var resp user.LoginResponse
	err := h.call(ctx, http.MethodPost, "/api/auth/login", user.LoginRequest{Username: username, Password: password}, &resp)
	return resp, err
}

func (h *HTTPClient) Logout(ctx context.Context) error {
	return h.call(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (h *HTTPClient) Me(ctx context.Context) (user.User, error) {
	var u user.User
	err := h.call(ctx, http.MethodGet, "/api/auth/me", nil, &u)
	return u, err
}

// ==================== Пользователи ====================

func (h *HTTPClient) ListUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := h.call(ctx, http.MethodGet, "/api/users", nil, &users)
	return users, err
}

func (h *HTTPClient) CreateUser(ctx context.Context, req user.CreateRequest) (user.User, error) {
	var u user.User
	err := h.call(ctx, http.MethodPost, "/api/auth/register", req, &u)
	return u, err
}

func (h *HTTPClient) UpdateUser(ctx context.Context, id int, req user.UpdateRequest) (user.User, error) {
	var u user.User
	err := h.call(ctx, http.MethodPatch, "/api/users/"+strconv.Itoa(id), req, &u)
	return u, err
}

func (h *HTTPClient) DeleteUser(ctx context.Context, id int) error {
	return h.call(ctx, http.MethodDelete, "/api/users/"+strconv.Itoa(id), nil, nil)
}

func (h *HTTPClient) ChangePassword(ctx context.Context, id int, newPassword string) error {
	req := user.ChangePasswordRequest{NewPassword: newPassword}
	return h.call(ctx, http.MethodPost, "/api/users/"+strconv.Itoa(id)+"/change-password", req, nil)
}

// ==================== Типы работ ====================

func (h *HTTPClient) ListWorkTypes(ctx context.Context) ([]worktype.WorkType, error) {
	var items []worktype.WorkType
	err := h.call(ctx, http.MethodGet, "/api/work-types", nil, &items)
	return items, err
}

func (h *HTTPClient) CreateWorkType(ctx context.Context, req worktype.CreateRequest) (worktype.WorkType, error) {
	var wt worktype.WorkType
	err := h.call(ctx, http.MethodPost, "/api/work-types", req, &wt)
	return wt, err
}

func (h *HTTPClient) UpdateWorkType(ctx context.Context, id int, req worktype.UpdateRequest) (worktype.WorkType, error) {
	var wt worktype.WorkType
	err := h.call(ctx, http.MethodPatch, "/api/work-types/"+strconv.Itoa(id), req, &wt)
	return wt, err
}

func (h *HTTPClient) DeleteWorkType(ctx context.Context, id int) error {
	return h.call(ctx, http.MethodDelete, "/api/work-types/"+strconv.Itoa(id), nil, nil)
}

// ==================== Настройки ====================

func (h *HTTPClient) GetShopSettings(ctx context.Context) (settings.ShopSettings, error) {
	var s settings.ShopSettings
	err := h.call(ctx, http.MethodGet, "/api/settings/shop", nil, &s)
	return s, err
}

// SaveShopSettings заменяет настройки магазина целиком
func (h *HTTPClient) SaveShopSettings(ctx context.Context, req settings.UpdateRequest) (settings.ShopSettings, error) {
	var s settings.ShopSettings
	err := h.call(ctx, http.MethodPut, "/api/settings/shop", req, &s)
	return s, err
}

// ==================== Резервные копии ====================

func (h *HTTPClient) ListBackups(ctx context.Context) ([]backup.Backup, error) {
	var resp struct {
		Backups []backup.Backup `json:"backups"`
	}
	err := h.call(ctx, http.MethodGet, "/api/backups/list", nil, &resp)
	return resp.Backups, err
}

func (h *HTTPClient) CreateBackup(ctx context.Context) (backup.Backup, error) {
	var resp struct {
		Backup backup.Backup `json:"backup"`
	}
	err := h.call(ctx, http.MethodPost, "/api/backups/create", nil, &resp)
	return resp.Backup, err
}

// RestoreBackup передает имя архива и флаг в строке запроса
func (h *HTTPClient) RestoreBackup(ctx context.Context, filename string, dropExisting bool) error {
	q := url.Values{}
	q.Set("backup_file", filename)
	q.Set("drop_existing", strconv.FormatBool(dropExisting))
	return h.call(ctx, http.MethodPost, "/api/backups/restore?"+q.Encode(), nil, nil)
}

func (h *HTTPClient) DeleteBackup(ctx context.Context, filename string) error {
	return h.call(ctx, http.MethodDelete, "/api/backups/"+url.PathEscape(filename), nil, nil)
}

func (h *HTTPClient) BackupHistory(ctx context.Context, limit int) ([]backup.Event, error) {
	var resp struct {
		Events []backup.Event `json:"events"`
	}
	path := "/api/backups/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	err := h.call(ctx, http.MethodGet, path, nil, &resp)
	return resp.Events, err
}

func (h *HTTPClient) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *HTTPClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := h.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *HTTPClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, body)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// newAPIError разбирает тело ошибки (application/problem+json).
// Если detail пуст, берется title.
func newAPIError(status int, body []byte) *APIError {
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, &problem); err == nil {
		apiErr.Detail = problem.Detail
		if apiErr.Detail == "" {
			apiErr.Detail = problem.Title
		}
	}
	return apiErr
}
