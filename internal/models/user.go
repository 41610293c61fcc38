package models

// User is an account record. Username is the natural key and is immutable
// after registration.
type User struct {
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"` // never exposed
	Token        *string `json:"-"` // current session token; nil when logged out
}
