package models

// Contact belongs to exactly one user (owning key = username). Optional
// fields are pointers so absent values render as JSON null.
type Contact struct {
	ID        int64   `json:"id"`
	Username  string  `json:"-"` // owner; never exposed
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}
