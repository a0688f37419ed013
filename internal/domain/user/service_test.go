package user

import (
	"context"
	"testing"

	"safetylog/internal/domain/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Find(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func TestService_Register(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Find", mock.Anything, "kim").Return(nil, ErrNotFound)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Username == "kim" && u.Role == session.RoleAdmin
	})).Return(nil)

	u, err := service.Register(context.Background(), " kim ", session.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, "kim", u.Username)
	mockRepo.AssertExpectations(t)
}

func TestService_Register_AlreadyExists(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Find", mock.Anything, "kim").Return(&User{Username: "kim", Role: session.RoleUser}, nil)

	_, err := service.Register(context.Background(), "kim", session.RoleUser)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	mockRepo.AssertNotCalled(t, "Save")
}

func TestService_Register_EmptyName(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Register(context.Background(), "  ", session.RoleUser)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestService_Register_InvalidRole(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Register(context.Background(), "kim", session.Role("owner"))
	assert.Error(t, err)
}

func TestService_ResolveRole_RegisteredWins(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Find", mock.Anything, "kim").Return(&User{Username: "kim", Role: session.RoleUser}, nil)

	role, err := service.ResolveRole(context.Background(), "kim", session.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, session.RoleUser, role)
}

func TestService_ResolveRole_UnknownKeepsAsserted(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Find", mock.Anything, "lee").Return(nil, ErrNotFound)

	role, err := service.ResolveRole(context.Background(), "lee", session.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, role)
}
