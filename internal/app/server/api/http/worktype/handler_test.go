package worktype

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

	"goldkeeper/internal/app/server/api/http/middleware/auth"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]worktype.WorkType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]worktype.WorkType), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, req worktype.CreateRequest) (worktype.WorkType, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(worktype.WorkType), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id int, req worktype.UpdateRequest) (worktype.WorkType, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(worktype.WorkType), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setup(t *testing.T, role user.Role) (humatest.TestAPI, *MockService) {
	_, api := humatest.New(t)
	svc := new(MockService)
	actor := user.User{ID: 5, Username: "actor", Role: role, IsActive: true}
	withActor := func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUser(ctx.Context(), actor)))
	}
	NewHandler(svc, slog.Default(), huma.Middlewares{withActor}).SetupRoutes(api)
	return api, svc
}

func TestHandler_List(t *testing.T) {
	api, svc := setup(t, user.RoleStaff)
	svc.On("List", mock.Anything).Return([]worktype.WorkType{{ID: 1, Name: "Ремонт", IsActive: true}}, nil)

	resp := api.Get("/api/work-types")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Ремонт")
}

func TestHandler_Create(t *testing.T) {
	t.Run("manager creates", func(t *testing.T) {
		api, svc := setup(t, user.RoleManager)
		svc.On("Create", mock.Anything, worktype.CreateRequest{Name: "Гравировка"}).
			Return(worktype.WorkType{ID: 2, Name: "Гравировка", IsActive: true}, nil)

		resp := api.Post("/api/work-types", map[string]any{"name": "Гравировка"})

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), `"id":2`)
	})

	t.Run("staff forbidden", func(t *testing.T) {
		api, svc := setup(t, user.RoleStaff)

		resp := api.Post("/api/work-types", map[string]any{"name": "Гравировка"})

		assert.Equal(t, http.StatusForbidden, resp.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate", func(t *testing.T) {
		api, svc := setup(t, user.RoleAdmin)
		svc.On("Create", mock.Anything, mock.Anything).Return(worktype.WorkType{}, worktype.ErrDuplicateName)

		resp := api.Post("/api/work-types", map[string]any{"name": "Ремонт"})

		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Contains(t, resp.Body.String(), "work type with this name already exists")
	})
}

func TestHandler_UpdateDelete(t *testing.T) {
	api, svc := setup(t, user.RoleManager)
	active := false
	svc.On("Update", mock.Anything, 7, worktype.UpdateRequest{IsActive: &active}).
		Return(worktype.WorkType{ID: 7, Name: "Пайка", IsActive: false}, nil)
	svc.On("Delete", mock.Anything, 7).Return(nil)
	svc.On("Delete", mock.Anything, 8).Return(worktype.ErrNotFound)

	resp := api.Patch("/api/work-types/7", map[string]any{"is_active": false})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"is_active":false`)

	resp = api.Delete("/api/work-types/7")
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = api.Delete("/api/work-types/8")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
