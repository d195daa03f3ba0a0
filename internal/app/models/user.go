package models

import "time"

// User roles
const (
	RoleAdmin     = "ADMIN"
	RoleUser      = "USER"
	RoleProfessor = "PROFESSOR"
)

// User is an entry of the read-only authentication table. The table is built
// once at startup and injected; it is never mutated at runtime and is not
// backed by any of the data stores.
type User struct {
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

// FullName returns the display name for the user.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
