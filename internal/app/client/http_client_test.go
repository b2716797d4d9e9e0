package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/client/config"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerAddress: srv.URL, RequestTimeout: 5 * time.Second}
	h, err := NewHTTPClient(cfg, slog.Default())
	require.NoError(t, err)
	return h
}

func TestHTTPClient_ErrorDetail(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"title":"Conflict","status":409,"detail":"username already exists"}`)
	})

	_, err := h.CreateUser(context.Background(), user.CreateRequest{Username: "olga"})

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "username already exists", apiErr.Error())
}

func TestHTTPClient_ErrorWithoutBody(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := h.ListBackups(context.Background())

	assert.True(t, IsForbidden(err))
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "ошибка сервера: статус 403", err.Error())
}

func TestHTTPClient_UpdateUserSendsPartialBody(t *testing.T) {
	var got map[string]any
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/users/4", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"id":4,"username":"olga","full_name":"Olga P","email":"o@shop.test","role":"staff","is_active":false}`)
	})
	h.SetToken("tok")

	name, email, role, active := "Olga P", "o@shop.test", user.RoleStaff, false
	u, err := h.UpdateUser(context.Background(), 4, user.UpdateRequest{FullName: &name, Email: &email, Role: &role, IsActive: &active})

	require.NoError(t, err)
	assert.Equal(t, "Olga P", u.FullName)
	assert.False(t, u.IsActive)
	assert.Len(t, got, 4)
	assert.NotContains(t, got, "password")
	assert.NotContains(t, got, "username")
}

func TestHTTPClient_RestoreBackupQuery(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/backups/restore", r.URL.Path)
		assert.Equal(t, "backup_20240102_030405.tar.gz", r.URL.Query().Get("backup_file"))
		assert.Equal(t, "true", r.URL.Query().Get("drop_existing"))
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	})

	err := h.RestoreBackup(context.Background(), "backup_20240102_030405.tar.gz", true)
	assert.NoError(t, err)
}

func TestHTTPClient_ListBackupsAndSettings(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/backups/list":
			_, _ = io.WriteString(w, `{"backups":[{"filename":"backup_20240102_030405.tar.gz","size_bytes":1024,"age_days":3}]}`)
		case "/api/settings/shop":
			if r.Method == http.MethodPut {
				var req settings.UpdateRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.InDelta(t, 0.925, req.PurchaseConversionFactor, 1e-9)
			}
			_, _ = io.WriteString(w, `{"purchase_conversion_factor":0.925}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	backups, err := h.ListBackups(context.Background())
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, 3, backups[0].AgeDays)

	s, err := h.SaveShopSettings(context.Background(), settings.UpdateRequest{PurchaseConversionFactor: 0.925})
	require.NoError(t, err)
	assert.InDelta(t, 0.925, s.PurchaseConversionFactor, 1e-9)
}

func TestHTTPClient_DeleteBackupEscapesName(t *testing.T) {
	h := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/backups/backup_20240102_030405.tar.gz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, h.DeleteBackup(context.Background(), "backup_20240102_030405.tar.gz"))
}
