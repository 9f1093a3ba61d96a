package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"movierama/internal/auth"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func testIssuer(t *testing.T) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	return issuer
}

func TestUserService_Register(t *testing.T) {
	repo := new(mockUserRepository)
	issuer := testIssuer(t)
	service := NewUserService(repo, issuer, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
		// The password must already be hashed when it reaches the repo
		return u.Username == "bob" && u.Email == "bob@example.com" &&
			u.PasswordHash != "" && u.PasswordHash != "hunter22"
	})).Return(&User{ID: 5, Username: "bob", Email: "bob@example.com"}, nil)

	response, err := service.Register(ctx, RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	claims, err := issuer.Verify(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Subject)
	assert.Equal(t, int64(5), claims.UserID)

	repo.AssertExpectations(t)
}

func TestUserService_Register_Validation(t *testing.T) {
	service := NewUserService(new(mockUserRepository), testIssuer(t), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing username", RegisterRequest{Email: "a@b.com", Password: "x"}},
		{"missing email", RegisterRequest{Username: "bob", Password: "x"}},
		{"invalid email", RegisterRequest{Username: "bob", Email: "not-an-email", Password: "x"}},
		{"missing password", RegisterRequest{Username: "bob", Email: "a@b.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Register(ctx, tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUserService_Register_UsernameTaken(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, testIssuer(t), nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(nil, ErrUsernameTaken)

	_, err := service.Register(ctx, RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_Login(t *testing.T) {
	repo := new(mockUserRepository)
	issuer := testIssuer(t)
	service := NewUserService(repo, issuer, nil)
	ctx := context.Background()

	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	repo.On("GetByUsername", ctx, "bob").Return(&User{
		ID:           5,
		Username:     "bob",
		PasswordHash: hash,
	}, nil)

	response, err := service.Login(ctx, LoginRequest{Username: "bob", Password: "hunter22"})
	require.NoError(t, err)

	claims, err := issuer.Verify(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Subject)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, testIssuer(t), nil)
	ctx := context.Background()

	repo.On("GetByUsername", ctx, "ghost").Return(nil, ErrUserNotFound)

	_, err := service.Login(ctx, LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := new(mockUserRepository)
	service := NewUserService(repo, testIssuer(t), nil)
	ctx := context.Background()

	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	repo.On("GetByUsername", ctx, "bob").Return(&User{
		ID:           5,
		Username:     "bob",
		PasswordHash: hash,
	}, nil)

	_, err = service.Login(ctx, LoginRequest{Username: "bob", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
