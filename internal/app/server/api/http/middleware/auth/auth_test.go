package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/session"
	"goldkeeper/internal/domain/user"
)

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

type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) Get(ctx context.Context, id int) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type whoamiOutput struct {
	Body struct {
		Username string `json:"username"`
	}
}

func setup(t *testing.T) (humatest.TestAPI, *MockSession, *MockUsers) {
	_, api := humatest.New(t)
	sessions := new(MockSession)
	users := new(MockUsers)
	a := New(api, sessions, users, slog.Default())

	huma.Register(api, huma.Operation{
		OperationID: "whoami",
		Method:      http.MethodGet,
		Path:        "/whoami",
		Middlewares: huma.Middlewares{a.Middleware()},
	}, func(ctx context.Context, _ *struct{}) (*whoamiOutput, error) {
		u, err := Require(ctx, user.RoleManager)
		if err != nil {
			return nil, err
		}
		out := &whoamiOutput{}
		out.Body.Username = u.Username
		return out, nil
	})
	return api, sessions, users
}

func TestMiddleware(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		api, _, _ := setup(t)

		resp := api.Get("/whoami")

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Contains(t, resp.Body.String(), "Not authenticated")
	})

	t.Run("invalid session", func(t *testing.T) {
		api, sessions, _ := setup(t)
		sessions.On("Validate", mock.Anything, "stale").Return(0, session.ErrInvalidSession)

		resp := api.Get("/whoami", "Authorization: Bearer stale")

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Contains(t, resp.Body.String(), "Could not validate credentials")
	})

	t.Run("inactive user", func(t *testing.T) {
		api, sessions, users := setup(t)
		sessions.On("Validate", mock.Anything, "tok").Return(7, nil)
		users.On("Get", mock.Anything, 7).Return(user.User{ID: 7, Role: user.RoleAdmin, IsActive: false}, nil)

		resp := api.Get("/whoami", "Authorization: Bearer tok")

		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("insufficient role", func(t *testing.T) {
		api, sessions, users := setup(t)
		sessions.On("Validate", mock.Anything, "tok").Return(3, nil)
		users.On("Get", mock.Anything, 3).Return(user.User{ID: 3, Username: "anna", Role: user.RoleStaff, IsActive: true}, nil)

		resp := api.Get("/whoami", "Authorization: Bearer tok")

		assert.Equal(t, http.StatusForbidden, resp.Code)
		assert.Contains(t, resp.Body.String(), "Not enough permissions")
	})

	t.Run("manager passes", func(t *testing.T) {
		api, sessions, users := setup(t)
		sessions.On("Validate", mock.Anything, "tok").Return(2, nil)
		users.On("Get", mock.Anything, 2).Return(user.User{ID: 2, Username: "boris", Role: user.RoleManager, IsActive: true}, nil)

		resp := api.Get("/whoami", "Authorization: Bearer tok")

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"username":"boris"`)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{header: "Bearer abc", token: "abc", ok: true},
		{header: "bearer abc", token: "abc", ok: true},
		{header: "Bearer ", ok: false},
		{header: "Basic abc", ok: false},
		{header: "", ok: false},
	}

	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

func TestRequire_NoUser(t *testing.T) {
	_, err := Require(context.Background(), user.RoleStaff)

	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.GetStatus())
}
