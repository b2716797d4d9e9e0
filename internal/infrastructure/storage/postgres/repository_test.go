package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/user"
	"goldkeeper/internal/domain/worktype"
)

type MockDB struct {
	mock.Mock
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgconn.CommandTag), ret.Error(1)
}

func (m *MockDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	ret := m.Called(ctx, sql, args)
	rows, _ := ret.Get(0).(pgx.Rows)
	return rows, ret.Error(1)
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	ret := m.Called(ctx, sql, args)
	return ret.Get(0).(pgx.Row)
}

// row отдает одно значение id или ошибку сканирования
type row struct {
	id  int
	err error
}

func (r row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.id
	return nil
}

var uniqueViolation = &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_username_key"}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(uniqueViolation))
	assert.True(t, isUniqueViolation(errors.Join(errors.New("insert"), uniqueViolation)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(pgx.ErrNoRows))
	assert.False(t, isUniqueViolation(nil))
}

func TestUserRepository_Create(t *testing.T) {
	u := user.User{Username: "olga", Password: "hash", FullName: "Olga", Email: "o@shop.test", Role: user.RoleStaff, IsActive: true}

	t.Run("success", func(t *testing.T) {
		db := new(MockDB)
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(row{id: 7})
		repo := NewUserRepository(db, slog.Default())

		id, err := repo.Create(context.Background(), u)

		require.NoError(t, err)
		assert.Equal(t, 7, id)
	})

	t.Run("username taken", func(t *testing.T) {
		db := new(MockDB)
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(row{err: uniqueViolation})
		repo := NewUserRepository(db, slog.Default())

		_, err := repo.Create(context.Background(), u)

		assert.ErrorIs(t, err, user.ErrUsernameTaken)
	})

	t.Run("other error", func(t *testing.T) {
		db := new(MockDB)
		db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(row{err: errors.New("connection reset")})
		repo := NewUserRepository(db, slog.Default())

		_, err := repo.Create(context.Background(), u)

		assert.ErrorContains(t, err, "create user: connection reset")
		assert.NotErrorIs(t, err, user.ErrUsernameTaken)
	})
}

func TestUserRepository_NotFound(t *testing.T) {
	db := new(MockDB)
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(row{err: pgx.ErrNoRows})
	db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.NewCommandTag("DELETE 0"), nil)
	repo := NewUserRepository(db, slog.Default())

	_, err := repo.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, user.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), 42), user.ErrNotFound)
}

func TestWorkTypeRepository_DuplicateName(t *testing.T) {
	db := new(MockDB)
	db.On("QueryRow", mock.Anything, mock.Anything, mock.Anything).Return(row{err: uniqueViolation})
	db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(pgconn.CommandTag{}, uniqueViolation)
	repo := NewWorkTypeRepository(db, slog.Default())
	wt := worktype.WorkType{ID: 3, Name: "Пайка", IsActive: true}

	_, err := repo.Create(context.Background(), wt)
	assert.ErrorIs(t, err, worktype.ErrDuplicateName)

	assert.ErrorIs(t, repo.Update(context.Background(), wt), worktype.ErrDuplicateName)
}

func TestWorkTypeRepository_Delete(t *testing.T) {
	db := new(MockDB)
	db.On("Exec", mock.Anything, mock.Anything, []any{5}).Return(pgconn.NewCommandTag("DELETE 1"), nil)
	db.On("Exec", mock.Anything, mock.Anything, []any{6}).Return(pgconn.NewCommandTag("DELETE 0"), nil)
	repo := NewWorkTypeRepository(db, slog.Default())

	assert.NoError(t, repo.Delete(context.Background(), 5))
	assert.ErrorIs(t, repo.Delete(context.Background(), 6), worktype.ErrNotFound)
}
