package service

import (
	"contactbook/internal/models"
	"context"

	"contactbook/internal/repository"
)

// Request DTOs. Shape constraints are declared as gin binding tags and
// checked at bind time in the handler layer; everything past that point
// (uniqueness, ownership, at-least-one-field rules) is enforced here.

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Password string `json:"password" binding:"required,max=100"`
	Name     string `json:"name" binding:"required,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Password *string `json:"password" binding:"omitempty,max=100"`
}

type ContactRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
}

type SearchContactRequest struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Phone string `form:"phone"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Size  int    `form:"size" binding:"omitempty,min=1,max=100"`
}

type AddressRequest struct {
	Street     *string `json:"street" binding:"omitempty,max=255"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	Province   *string `json:"province" binding:"omitempty,max=100"`
	Country    string  `json:"country" binding:"required,max=255"`
	PostalCode string  `json:"postal_code" binding:"required,max=10"`
}

type Users interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (string, error)
	Authorize(ctx context.Context, token string) (*models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (*models.User, error)
	Logout(ctx context.Context, username string) error
}

type Contacts interface {
	Create(ctx context.Context, username string, req ContactRequest) (*models.Contact, error)
	Get(ctx context.Context, username string, id int64) (*models.Contact, error)
	Update(ctx context.Context, username string, id int64, req ContactRequest) (*models.Contact, error)
	Remove(ctx context.Context, username string, id int64) error
	Search(ctx context.Context, username string, req SearchContactRequest) ([]models.Contact, models.Paging, error)
}

type Addresses interface {
	Create(ctx context.Context, username string, contactID int64, req AddressRequest) (*models.Address, error)
	Get(ctx context.Context, username string, contactID, addressID int64) (*models.Address, error)
	Update(ctx context.Context, username string, contactID, addressID int64, req AddressRequest) (*models.Address, error)
	Remove(ctx context.Context, username string, contactID, addressID int64) error
	List(ctx context.Context, username string, contactID int64) ([]models.Address, error)
}

// Root Service aggregates all sub-services.
type Service struct {
	Users
	Contacts
	Addresses
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Users:     NewUserService(repos.Users),
		Contacts:  NewContactService(repos.Contacts),
		Addresses: NewAddressService(repos.Contacts, repos.Addresses),
	}
}
