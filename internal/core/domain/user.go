package domain

import "time"

// UserRole is the closed set of platform access levels.
type UserRole string

const (
	RoleSalesman UserRole = "SALESMAN"
	RoleClient   UserRole = "CLIENT"
	RoleCompany  UserRole = "COMPANY"
)

// IsValid reports whether the role is one of the known variants.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleSalesman, RoleClient, RoleCompany:
		return true
	}
	return false
}

// User represents a registered user of the application in the domain.
// At most one user with RoleCompany exists system-wide.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	CNIC         string   `json:"cnic"` // 13-digit national ID
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AuditFields

	// Refresh token fields: the persisted session pointer. Cleared on logout.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
