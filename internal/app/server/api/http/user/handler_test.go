package user

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/app/server/api/http/middleware/auth"
	"goldkeeper/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, actor user.User, req user.CreateRequest) (user.User, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) Authenticate(ctx context.Context, username, password string) (user.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id int) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, actor user.User, id int, req user.UpdateRequest) (user.User, error) {
	args := m.Called(ctx, actor, id, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, actor user.User, id int) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockService) ChangePassword(ctx context.Context, actor user.User, id int, newPassword string) error {
	args := m.Called(ctx, actor, id, newPassword)
	return args.Error(0)
}

type MockSession struct {
	mock.Mock
}

func (m *MockSession) Create(ctx context.Context, userID int) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSession) Validate(ctx context.Context, token string) (int, error) {
	args := m.Called(ctx, token)
	return args.Int(0), args.Error(1)
}

func (m *MockSession) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

var (
	admin   = user.User{ID: 1, Username: "admin", Role: user.RoleAdmin, IsActive: true}
	manager = user.User{ID: 2, Username: "manager", Role: user.RoleManager, IsActive: true}
	staff   = user.User{ID: 3, Username: "staff", Role: user.RoleStaff, IsActive: true}
)

// asUser подменяет проверку сессии: кладет actor и токен в контекст
func asUser(actor user.User) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		c := auth.WithToken(auth.WithUser(ctx.Context(), actor), "tok-"+actor.Username)
		next(huma.WithContext(ctx, c))
	}
}

func setup(t *testing.T, actor user.User) (humatest.TestAPI, *MockService, *MockSession) {
	_, api := humatest.New(t)
	svc := new(MockService)
	sess := new(MockSession)
	h := NewHandler(svc, sess, slog.Default(), huma.Middlewares{}, huma.Middlewares{asUser(actor)})
	h.SetupRoutes(api)
	return api, svc, sess
}

func TestHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api, svc, sess := setup(t, admin)
		svc.On("Authenticate", mock.Anything, "admin", "secret1").Return(admin, nil)
		sess.On("Create", mock.Anything, admin.ID).Return("opaque-token", nil)

		resp := api.Post("/api/auth/login", map[string]any{"username": "admin", "password": "secret1"})

		require.Equal(t, http.StatusOK, resp.Code)
		body := resp.Body.String()
		assert.Contains(t, body, `"access_token":"opaque-token"`)
		assert.Contains(t, body, `"token_type":"bearer"`)
		assert.NotContains(t, body, "password")
	})

	t.Run("bad credentials", func(t *testing.T) {
		api, svc, _ := setup(t, admin)
		svc.On("Authenticate", mock.Anything, "admin", "wrong").Return(user.User{}, user.ErrInvalidAuth)

		resp := api.Post("/api/auth/login", map[string]any{"username": "admin", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Contains(t, resp.Body.String(), "invalid credentials")
	})
}

func TestHandler_Logout(t *testing.T) {
	api, _, sess := setup(t, staff)
	sess.On("Revoke", mock.Anything, "tok-staff").Return(nil)

	resp := api.Post("/api/auth/logout")

	assert.Equal(t, http.StatusOK, resp.Code)
	sess.AssertExpectations(t)
}

func TestHandler_Me(t *testing.T) {
	api, _, _ := setup(t, manager)

	resp := api.Get("/api/auth/me")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"username":"manager"`)
}

func TestHandler_Register(t *testing.T) {
	t.Run("manager creates staff", func(t *testing.T) {
		api, svc, _ := setup(t, manager)
		req := user.CreateRequest{Username: "olga", Password: "secret1", FullName: "Olga", Email: "olga@shop.test", Role: user.RoleStaff}
		svc.On("Register", mock.Anything, manager, req).Return(user.User{ID: 10, Username: "olga", Role: user.RoleStaff, IsActive: true}, nil)

		resp := api.Post("/api/auth/register", req)

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), `"id":10`)
	})

	t.Run("staff is rejected before the service", func(t *testing.T) {
		api, svc, _ := setup(t, staff)

		resp := api.Post("/api/auth/register", map[string]any{
			"username": "olga", "password": "secret1", "full_name": "Olga", "email": "olga@shop.test",
		})

		assert.Equal(t, http.StatusForbidden, resp.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate username", func(t *testing.T) {
		api, svc, _ := setup(t, admin)
		svc.On("Register", mock.Anything, admin, mock.Anything).Return(user.User{}, user.ErrUsernameTaken)

		resp := api.Post("/api/auth/register", map[string]any{
			"username": "olga", "password": "secret1", "full_name": "Olga", "email": "olga@shop.test",
		})

		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Contains(t, resp.Body.String(), "username already exists")
	})
}

func TestHandler_List(t *testing.T) {
	api, svc, _ := setup(t, staff)
	svc.On("List", mock.Anything).Return([]user.User{admin, staff}, nil)

	resp := api.Get("/api/users")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 2, strings.Count(resp.Body.String(), `"username"`))
}

func TestHandler_Update(t *testing.T) {
	api, svc, _ := setup(t, manager)
	name := "Anna Petrova"
	svc.On("Update", mock.Anything, manager, 3, user.UpdateRequest{FullName: &name}).
		Return(user.User{ID: 3, FullName: name, Role: user.RoleStaff}, nil)

	resp := api.Patch("/api/users/3", map[string]any{"full_name": name})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), name)
}

func TestHandler_Delete(t *testing.T) {
	t.Run("manager forbidden", func(t *testing.T) {
		api, svc, _ := setup(t, manager)

		resp := api.Delete("/api/users/3")

		assert.Equal(t, http.StatusForbidden, resp.Code)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin self delete", func(t *testing.T) {
		api, svc, _ := setup(t, admin)
		svc.On("Delete", mock.Anything, admin, admin.ID).Return(user.ErrSelfDelete)

		resp := api.Delete("/api/users/1")

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), "you cannot delete your own account")
	})

	t.Run("admin deletes other", func(t *testing.T) {
		api, svc, _ := setup(t, admin)
		svc.On("Delete", mock.Anything, admin, 3).Return(nil)

		resp := api.Delete("/api/users/3")

		assert.Equal(t, http.StatusOK, resp.Code)
	})
}

func TestHandler_ChangePassword(t *testing.T) {
	t.Run("staff changes own password", func(t *testing.T) {
		api, svc, _ := setup(t, staff)
		svc.On("ChangePassword", mock.Anything, staff, staff.ID, "newpass1").Return(nil)

		resp := api.Post("/api/users/3/change-password", map[string]any{"new_password": "newpass1"})

		assert.Equal(t, http.StatusOK, resp.Code)
	})

	t.Run("staff cannot change others", func(t *testing.T) {
		api, svc, _ := setup(t, staff)

		resp := api.Post("/api/users/1/change-password", map[string]any{"new_password": "newpass1"})

		assert.Equal(t, http.StatusForbidden, resp.Code)
		svc.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
