package panel

import (
	"context"

	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/backup"
	"goldkeeper/internal/domain/settings"
	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListUsers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.User), args.Error(1)
}

func (m *MockAPI) CreateUser(ctx context.Context, req user.CreateRequest) (user.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockAPI) UpdateUser(ctx context.Context, id int, req user.UpdateRequest) (user.User, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockAPI) DeleteUser(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) ChangePassword(ctx context.Context, id int, newPassword string) error {
	args := m.Called(ctx, id, newPassword)
	return args.Error(0)
}

func (m *MockAPI) ListWorkTypes(ctx context.Context) ([]worktype.WorkType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]worktype.WorkType), args.Error(1)
}

func (m *MockAPI) CreateWorkType(ctx context.Context, req worktype.CreateRequest) (worktype.WorkType, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(worktype.WorkType), args.Error(1)
}

func (m *MockAPI) UpdateWorkType(ctx context.Context, id int, req worktype.UpdateRequest) (worktype.WorkType, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(worktype.WorkType), args.Error(1)
}

func (m *MockAPI) DeleteWorkType(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPI) GetShopSettings(ctx context.Context) (settings.ShopSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.ShopSettings), args.Error(1)
}

func (m *MockAPI) SaveShopSettings(ctx context.Context, req settings.UpdateRequest) (settings.ShopSettings, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(settings.ShopSettings), args.Error(1)
}

func (m *MockAPI) ListBackups(ctx context.Context) ([]backup.Backup, error) {
	args := m.Called(ctx)
	return args.Get(0).([]backup.Backup), args.Error(1)
}

func (m *MockAPI) CreateBackup(ctx context.Context) (backup.Backup, error) {
	args := m.Called(ctx)
	return args.Get(0).(backup.Backup), args.Error(1)
}

func (m *MockAPI) RestoreBackup(ctx context.Context, filename string, dropExisting bool) error {
	args := m.Called(ctx, filename, dropExisting)
	return args.Error(0)
}

func (m *MockAPI) DeleteBackup(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}

func (m *MockAPI) BackupHistory(ctx context.Context, limit int) ([]backup.Event, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]backup.Event), args.Error(1)
}

var (
	adminUser   = user.User{ID: 1, Username: "admin", FullName: "Admin", Email: "admin@shop.test", Role: user.RoleAdmin, IsActive: true}
	managerUser = user.User{ID: 2, Username: "manager", FullName: "Manager", Email: "manager@shop.test", Role: user.RoleManager, IsActive: true}
	staffUser   = user.User{ID: 3, Username: "staff", FullName: "Staff", Email: "staff@shop.test", Role: user.RoleStaff, IsActive: true}
)

func testLogger() *slog.Logger {
	return slog.Default()
}

// levels возвращает уровни всех уведомлений по порядку
func levels(r *Recorder) []Level {
	var out []Level
	for _, t := range r.Toasts() {
		out = append(out, t.Level)
	}
	return out
}
