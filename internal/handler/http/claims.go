package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
)

// requestClaims pulls the identity fields out of the verified token.
type requestClaims struct {
	UserID     string
	EmployeeID string
	Role       user.Role
}

func claimsFrom(r *http.Request) (requestClaims, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return requestClaims{}, false
	}

	rc := requestClaims{}
	rc.UserID, _ = claims["user_id"].(string)
	if employeeID, ok := claims["employee_id"].(string); ok {
		rc.EmployeeID = employeeID
	}
	if roleStr, ok := claims["role"].(string); ok {
		rc.Role = user.Role(roleStr)
	}
	return rc, rc.UserID != ""
}

// canViewAll reports whether the caller may read other employees' data.
func (c requestClaims) canViewAll(permission user.Permission) bool {
	return user.HasPermission(c.Role, permission)
}
