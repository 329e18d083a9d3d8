package domain

import "time"

// Invite is a single-use, short-lived code gating registration. Used and
// expired codes are never deleted; they stay behind as an audit trail.
type Invite struct {
	Code      string // Primary key
	Used      bool
	StartTime time.Time
	ExpiresAt time.Time
}

// Expired reports whether the code's window has closed at the given time.
func (i Invite) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
