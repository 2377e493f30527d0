package models

import "time"

// Session marks a signed-in user. It is created on login or registration
// and removed on logout.
type Session struct {
	ID        string
	Email     string
	Role      Role
	ExpiresAt time.Time
	CreatedAt time.Time
}
