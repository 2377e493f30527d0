package models

import (
	"strings"
	"time"
)

// Role is the kind of account acting on the system.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// User is a stored account. Secrets never leave the service: they are
// excluded from JSON.
type User struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	LicenseNumber string `json:"licenseNumber,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`

	PasswordHash    string     `json:"-"`
	ResetCode       string     `json:"-"`
	ResetCodeExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"-"`
}

// Public returns a copy of u without credentials or reset state.
func (u User) Public() User {
	u.PasswordHash = ""
	u.ResetCode = ""
	u.ResetCodeExpiry = nil
	return u
}

// NormalizeEmail is the canonical form used as the account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
