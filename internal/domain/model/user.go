package model

import "time"

// User represents a registered customer account.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Active       bool
	Staff        bool
	Superuser    bool
	CreatedAt    time.Time
}

// IsAdmin reports whether the user bypasses ownership scoping.
func (u *User) IsAdmin() bool {
	return u.Staff || u.Superuser
}
