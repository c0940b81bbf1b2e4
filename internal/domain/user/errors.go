package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrEmailExists            = errors.New("email already registered")
	ErrInsufficientPermission = errors.New("insufficient permission")
)
