package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
)

// User is the login identity. Every user except the bootstrap admin is
// linked to an employee record.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}
