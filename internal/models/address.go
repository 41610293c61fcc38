package models

// Address belongs to exactly one contact (owning key = contact id).
type Address struct {
	ID         int64   `json:"id"`
	ContactID  int64   `json:"-"` // owner; never exposed
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}
