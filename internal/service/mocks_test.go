package service

import (
	"contactbook/internal/models"
	"contactbook/internal/repository"
	"context"
)

// Lightweight in-test mocks for the repository interfaces. Each method
// delegates to a settable func field and records its calls.

type mockUserRepo struct {
	CreateFn          func(u models.User) error
	CountByUsernameFn func(username string) (int, error)
	GetByUsernameFn   func(username string) (*models.User, error)
	GetByTokenFn      func(token string) (*models.User, error)
	UpdateFn          func(username string, name, passwordHash *string) error
	UpdateTokenFn     func(username string, token *string) error

	createCalls      []models.User
	updateTokenCalls []struct {
		Username string
		Token    *string
	}
	updateCalls []struct {
		Username   string
		Name, Hash *string
	}
}

func (m *mockUserRepo) Create(_ context.Context, u models.User) error {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) CountByUsername(_ context.Context, username string) (int, error) {
	return m.CountByUsernameFn(username)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByToken(_ context.Context, token string) (*models.User, error) {
	return m.GetByTokenFn(token)
}

func (m *mockUserRepo) Update(_ context.Context, username string, name, passwordHash *string) error {
	m.updateCalls = append(m.updateCalls, struct {
		Username   string
		Name, Hash *string
	}{Username: username, Name: name, Hash: passwordHash})
	return m.UpdateFn(username, name, passwordHash)
}

func (m *mockUserRepo) UpdateToken(_ context.Context, username string, token *string) error {
	m.updateTokenCalls = append(m.updateTokenCalls, struct {
		Username string
		Token    *string
	}{Username: username, Token: token})
	return m.UpdateTokenFn(username, token)
}

var _ repository.Users = (*mockUserRepo)(nil)

type mockContactRepo struct {
	CreateFn      func(c models.Contact) (models.Contact, error)
	GetByIDFn     func(id int64, username string) (*models.Contact, error)
	CountByIDFn   func(id int64, username string) (int, error)
	UpdateFn      func(c models.Contact) error
	DeleteFn      func(id int64, username string) (int64, error)
	SearchFn      func(username string, f repository.ContactFilter) ([]models.Contact, error)
	CountSearchFn func(username string, f repository.ContactFilter) (int, error)

	searchFilters []repository.ContactFilter
	countCalls    []struct {
		ID       int64
		Username string
	}
}

func (m *mockContactRepo) Create(_ context.Context, c models.Contact) (models.Contact, error) {
	return m.CreateFn(c)
}

func (m *mockContactRepo) GetByID(_ context.Context, id int64, username string) (*models.Contact, error) {
	return m.GetByIDFn(id, username)
}

func (m *mockContactRepo) CountByID(_ context.Context, id int64, username string) (int, error) {
	m.countCalls = append(m.countCalls, struct {
		ID       int64
		Username string
	}{ID: id, Username: username})
	return m.CountByIDFn(id, username)
}

func (m *mockContactRepo) Update(_ context.Context, c models.Contact) error {
	return m.UpdateFn(c)
}

func (m *mockContactRepo) Delete(_ context.Context, id int64, username string) (int64, error) {
	return m.DeleteFn(id, username)
}

func (m *mockContactRepo) Search(_ context.Context, username string, f repository.ContactFilter) ([]models.Contact, error) {
	m.searchFilters = append(m.searchFilters, f)
	return m.SearchFn(username, f)
}

func (m *mockContactRepo) CountSearch(_ context.Context, username string, f repository.ContactFilter) (int, error) {
	return m.CountSearchFn(username, f)
}

var _ repository.Contacts = (*mockContactRepo)(nil)

type mockAddressRepo struct {
	CreateFn        func(a models.Address) (models.Address, error)
	GetByIDFn       func(id, contactID int64) (*models.Address, error)
	CountByIDFn     func(id, contactID int64) (int, error)
	UpdateFn        func(a models.Address) error
	DeleteFn        func(id, contactID int64) (int64, error)
	ListByContactFn func(contactID int64) ([]models.Address, error)
}

func (m *mockAddressRepo) Create(_ context.Context, a models.Address) (models.Address, error) {
	return m.CreateFn(a)
}

func (m *mockAddressRepo) GetByID(_ context.Context, id, contactID int64) (*models.Address, error) {
	return m.GetByIDFn(id, contactID)
}

func (m *mockAddressRepo) CountByID(_ context.Context, id, contactID int64) (int, error) {
	return m.CountByIDFn(id, contactID)
}

func (m *mockAddressRepo) Update(_ context.Context, a models.Address) error {
	return m.UpdateFn(a)
}

func (m *mockAddressRepo) Delete(_ context.Context, id, contactID int64) (int64, error) {
	return m.DeleteFn(id, contactID)
}

func (m *mockAddressRepo) ListByContact(_ context.Context, contactID int64) ([]models.Address, error) {
	return m.ListByContactFn(contactID)
}

var _ repository.Addresses = (*mockAddressRepo)(nil)
