package domain

import "time"

type User struct {
	Username     string
	PasswordHash string  // argon2 encoded
	Roles        RoleSet // Parsed from comma-delimited storage
	OTP          *string // Outstanding one-time password (nullable)
	OTPConsumed  bool    // True when no OTP is active
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasActiveOTP reports whether the user holds an unconsumed one-time password.
func (u User) HasActiveOTP() bool {
	return u.OTP != nil && !u.OTPConsumed
}

// UserSummary is one row of the user listing: a username and its stored
// role string, unexpanded.
type UserSummary struct {
	Username string
	Roles    RoleSet
}
