package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	args := m.Called(ctx, tokenHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Create(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, time.Hour, slog.Default())

	userID := 123

	mockRepo.On("Create", mock.Anything, userID, mock.MatchedBy(func(hash string) bool {
		return len(hash) == 64
	}), mock.MatchedBy(func(expiresAt time.Time) bool {
		return expiresAt.After(time.Now().Add(59*time.Minute)) && expiresAt.Before(time.Now().Add(61*time.Minute))
	})).Return(nil)

	token, err := service.Create(context.Background(), userID)
	require.NoError(t, err)
	// 32 байта в base64 - 44 символа
	assert.Len(t, token, 44)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, 0, slog.Default())

	mockRepo.On("Create", mock.Anything, 1, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(errors.New("database error"))

	_, err := service.Create(context.Background(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
}

func TestService_CreateAndValidate(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, DefaultTTL, slog.Default())

	var storedHash string
	mockRepo.On("Create", mock.Anything, 7, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) { storedHash = args.String(2) }).
		Return(nil)

	token, err := service.Create(context.Background(), 7)
	require.NoError(t, err)

	mockRepo.On("Validate", mock.Anything, mock.MatchedBy(func(hash string) bool {
		return hash == storedHash
	})).Return(7, nil)

	userID, err := service.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 7, userID)
}

func TestService_Validate_InvalidToken(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, DefaultTTL, slog.Default())

	mockRepo.On("Validate", mock.Anything, mock.AnythingOfType("string")).Return(0, ErrInvalidSession)

	_, err := service.Validate(context.Background(), "invalid_token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_Revoke(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, DefaultTTL, slog.Default())

	mockRepo.On("Delete", mock.Anything, hashToken("token")).Return(nil)
	require.NoError(t, service.Revoke(context.Background(), "token"))

	mockRepo.On("Delete", mock.Anything, hashToken("broken")).Return(errors.New("database error"))
	assert.ErrorContains(t, service.Revoke(context.Background(), "broken"), "database error")
}

func TestService_Cleanup(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, DefaultTTL, slog.Default())

	mockRepo.On("DeleteExpired", mock.Anything).Return(int64(3), nil).Once()
	mockRepo.On("DeleteExpired", mock.Anything).Return(int64(0), errors.New("database error")).Once()

	service.Cleanup(context.Background())
	service.Cleanup(context.Background())

	mockRepo.AssertExpectations(t)
}
