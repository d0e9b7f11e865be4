package models

import (
	"database/sql"
)

// User is the database row shape for a registered user.
type User struct {
	UserID       string `db:"user_id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	CNIC         string `db:"cnic"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	AuditFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
