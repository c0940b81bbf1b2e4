package auth

import (
	"context"
	"testing"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"github.com/peoplecore/hrm-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (user.AuthService, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "720h")
	return NewAuthService(repo, jwtService), repo
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Email:    "hr@example.com",
		Password: "s3cret-pass",
		Role:     "hr",
	})
	require.NoError(t, err)
	assert.Equal(t, "hr", created.Role)

	resp, err := svc.Login(ctx, user.LoginRequest{Email: "hr@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, created.ID, resp.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Email:    "hr@example.com",
		Password: "s3cret-pass",
		Role:     "hr",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, user.LoginRequest{Email: "hr@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Email:    "emp@example.com",
		Password: "s3cret-pass",
		Role:     "employee",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, user.LoginRequest{Email: "emp@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Email:    "emp@example.com",
		Password: "s3cret-pass",
		Role:     "employee",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, user.LoginRequest{Email: "emp@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, login.AccessToken)
	assert.ErrorIs(t, err, user.ErrInvalidRefreshToken)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	req := user.CreateUserRequest{Email: "dup@example.com", Password: "s3cret-pass", Role: "admin"}
	_, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailExists)
}
