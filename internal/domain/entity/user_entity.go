package entity

import (
	"time"
)

// User is the aggregate root for user domain
// Passwords are stored as bcrypt hashes in Password field; Email is kept
// lower-cased and trimmed so lookups are case-insensitive.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionUser is the public view of the user behind a valid session.
type SessionUser struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// ToSession drops credential fields. An empty name is reported as null.
func (u *User) ToSession() *SessionUser {
	s := &SessionUser{ID: u.ID, Email: u.Email}
	if u.Name != "" {
		name := u.Name
		s.Name = &name
	}
	return s
}
