package user

import (
	"context"
	"testing"

	"github.com/lucascresencio/leet-test/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, name, email, passwordHash, document, phoneNumber, role string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, document, phoneNumber, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) UpdateRole(ctx context.Context, id int, role string) error {
	return m.Called(ctx, id, role).Error(0)
}

func TestRegisterSuccess(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, "test-secret")

	repo.On("EmailExists", mock.Anything, "new@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, "New User", "new@example.com", mock.AnythingOfType("string"), "123", "11999998888", auth.RoleMember).
		Return(&User{ID: 1, Name: "New User", Email: "new@example.com", Role: auth.RoleMember}, nil)

	user, access, refresh, err := svc.Register(context.Background(), RegisterRequest{
		Name:        "New User",
		Email:       "new@example.com",
		Password:    "password123",
		Document:    "123",
		PhoneNumber: "11999998888",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, "test-secret")

	repo.On("EmailExists", mock.Anything, "dup@example.com").Return(true, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Dup",
		Email:    "dup@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginSuccess(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, "test-secret")

	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&User{ID: 2, Email: "user@example.com", PasswordHash: hash, Role: auth.RoleMaintainer}, nil)

	user, access, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "correct-password",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	claims, err := auth.ValidateToken(access, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleMaintainer, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, "test-secret")

	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&User{ID: 2, Email: "user@example.com", PasswordHash: hash}, nil)

	_, _, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, "test-secret")

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, assert.AnError)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
