package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.Repository
	jwtService jwt.Service
}

func NewAuthService(repo user.Repository, jwtService jwt.Service) user.AuthService {
	return &AuthServiceImpl{
		Repository: repo,
		jwtService: jwtService,
	}
}

// Login implements user.AuthService. A missing account and a wrong
// password produce the same error.
func (a *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, err
	}

	u, err := a.Repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.LoginResponse{}, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return user.LoginResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		RefreshExp:   refreshExp,
		User:         user.ToUserResponse(u),
	}, nil
}

// Refresh implements user.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (user.RefreshResponse, error) {
	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		return user.RefreshResponse{}, user.ErrInvalidRefreshToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return user.RefreshResponse{}, user.ErrInvalidRefreshToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return user.RefreshResponse{}, user.ErrInvalidRefreshToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return user.RefreshResponse{}, user.ErrInvalidRefreshToken
	}

	u, err := a.Repository.GetByID(ctx, userID)
	if err != nil {
		return user.RefreshResponse{}, user.ErrInvalidRefreshToken
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.EmployeeID, u.Role)
	if err != nil {
		return user.RefreshResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return user.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// CreateUser implements user.AuthService.
func (a *AuthServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.Repository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(created), nil
}
