package models

import "github.com/google/uuid"

// User represents a registered account.
// Email is unique case-insensitively. LoggedIn marks the single active
// session: at most one user carries the flag at any time.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	LoggedIn     bool   `json:"logged_in"`
}

// Session marks the currently authenticated user. It is a singleton
// value in the store; a session pointing at a deleted user is treated
// as absent.
type Session struct {
	UserID string `json:"user_id"`
}

// Theme values accepted for the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// NewUserID returns a unique user identifier.
func NewUserID() string {
	return "user_" + uuid.NewString()
}
