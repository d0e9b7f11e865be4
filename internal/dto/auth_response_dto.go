package dto

import "time"

// LoginResponse represents the response for a successful login or
// registration. Refresh token expiry is echoed so the app can schedule
// re-login.
type LoginResponse struct {
	Token              string       `json:"token"`
	TokenExpiry        time.Time    `json:"tokenExpiry"`
	RefreshToken       string       `json:"refreshToken"`
	RefreshTokenExpiry time.Time    `json:"refreshTokenExpiry"`
	User               UserResponse `json:"user"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token       string    `json:"token"`
	TokenExpiry time.Time `json:"tokenExpiry"`
}

// AdminExistsResponse reports whether the single COMPANY slot is filled.
type AdminExistsResponse struct {
	AdminExists bool `json:"adminExists"`
}
