package repository

import (
	"contactbook/internal/models"
	"context"
	"database/sql"
)

type Users interface {
	Create(ctx context.Context, u models.User) error
	CountByUsername(ctx context.Context, username string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	Update(ctx context.Context, username string, name, passwordHash *string) error
	UpdateToken(ctx context.Context, username string, token *string) error
}

type Contacts interface {
	Create(ctx context.Context, c models.Contact) (models.Contact, error)
	GetByID(ctx context.Context, id int64, username string) (*models.Contact, error)
	CountByID(ctx context.Context, id int64, username string) (int, error)
	Update(ctx context.Context, c models.Contact) error
	Delete(ctx context.Context, id int64, username string) (int64, error)
	Search(ctx context.Context, username string, f ContactFilter) ([]models.Contact, error)
	CountSearch(ctx context.Context, username string, f ContactFilter) (int, error)
}

type Addresses interface {
	Create(ctx context.Context, a models.Address) (models.Address, error)
	GetByID(ctx context.Context, id, contactID int64) (*models.Address, error)
	CountByID(ctx context.Context, id, contactID int64) (int, error)
	Update(ctx context.Context, a models.Address) error
	Delete(ctx context.Context, id, contactID int64) (int64, error)
	ListByContact(ctx context.Context, contactID int64) ([]models.Address, error)
}

// ContactFilter holds the optional substring filters and page window for
// contact search. Empty filter fields are skipped; provided ones combine
// with AND. Name matches first OR last name.
type ContactFilter struct {
	Name   string
	Email  string
	Phone  string
	Limit  int
	Offset int
}

type Repository struct {
	Users     Users
	Contacts  Contacts
	Addresses Addresses
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserRepository(db),
		Contacts:  NewContactRepository(db),
		Addresses: NewAddressRepository(db),
	}
}
