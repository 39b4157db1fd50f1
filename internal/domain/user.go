package domain

import "time"

// Role is the capability tier of an authenticated user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account that can log in.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the authenticated caller. Mutating operations take it
// explicitly and check the role themselves.
type Session struct {
	UserID int64
	Email  string
	Role   Role
}

// Session returns the session for a logged-in user.
func (u User) Session() Session {
	return Session{UserID: u.ID, Email: u.Email, Role: u.Role}
}

// IsAdmin reports whether the session may mutate content.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// RequireAdmin returns ErrForbidden unless the session is an admin.
func (s Session) RequireAdmin() error {
	if !s.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
