package user

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// CreateUser registers a login identity, optionally linked to an
	// employee record. Admin only.
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
}
