package service

import (
	"contactbook/internal/apperror"
	"contactbook/internal/models"
	"contactbook/internal/repository"
	"context"
)

const msgContactNotFound = "contact is not found"

const (
	defaultPage = 1
	defaultSize = 10
)

// ContactService implements ownership-scoped contact CRUD and search.
// Every operation receives the owning username from the authorization layer
// and never from client input.
type ContactService struct {
	contacts repository.Contacts
}

func NewContactService(contacts repository.Contacts) *ContactService {
	return &ContactService{contacts: contacts}
}

var _ Contacts = (*ContactService)(nil)

func (s *ContactService) Create(ctx context.Context, username string, req ContactRequest) (*models.Contact, error) {
	c := models.Contact{
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	created, err := s.contacts.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ContactService) Get(ctx context.Context, username string, id int64) (*models.Contact, error) {
	c, err := s.contacts.GetByID(ctx, id, username)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound(msgContactNotFound)
	}
	return c, nil
}

func (s *ContactService) Update(ctx context.Context, username string, id int64, req ContactRequest) (*models.Contact, error) {
	count, err := s.contacts.CountByID(ctx, id, username)
	if err != nil {
		return nil, err
	}
	if count != 1 {
		return nil, apperror.NotFound(msgContactNotFound)
	}

	c := models.Contact{
		ID:        id,
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.contacts.Update(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContactService) Remove(ctx context.Context, username string, id int64) error {
	// Owner-scoped delete: a zero row count covers both "never existed" and
	// "not yours", and a concurrent double delete loses with a plain 404.
	n, err := s.contacts.Delete(ctx, id, username)
	if err != nil {
		return err
	}
	if n != 1 {
		return apperror.NotFound(msgContactNotFound)
	}
	return nil
}

// Search returns one page of the caller's contacts matching the filter plus
// paging totals. total_page is ceil(total_item / size).
func (s *ContactService) Search(ctx context.Context, username string, req SearchContactRequest) ([]models.Contact, models.Paging, error) {
	page := req.Page
	if page == 0 {
		page = defaultPage
	}
	size := req.Size
	if size == 0 {
		size = defaultSize
	}

	filter := repository.ContactFilter{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Limit:  size,
		Offset: (page - 1) * size,
	}

	items, err := s.contacts.Search(ctx, username, filter)
	if err != nil {
		return nil, models.Paging{}, err
	}
	total, err := s.contacts.CountSearch(ctx, username, filter)
	if err != nil {
		return nil, models.Paging{}, err
	}

	paging := models.Paging{
		Page:      page,
		TotalItem: total,
		TotalPage: (total + size - 1) / size,
	}
	return items, paging, nil
}
