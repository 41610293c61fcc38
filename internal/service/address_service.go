package service

import (
	"contactbook/internal/apperror"
	"contactbook/internal/models"
	"contactbook/internal/repository"
	"context"
)

const msgAddressNotFound = "address is not found"

// AddressService implements address CRUD under the User→Contact→Address
// ownership chain. The contact link is re-checked on every call.
type AddressService struct {
	contacts  repository.Contacts
	addresses repository.Addresses
}

func NewAddressService(contacts repository.Contacts, addresses repository.Addresses) *AddressService {
	return &AddressService{contacts: contacts, addresses: addresses}
}

var _ Addresses = (*AddressService)(nil)

// checkContactMustExist verifies the contact belongs to username before any
// address table access. A count other than exactly 1 is a 404.
func (s *AddressService) checkContactMustExist(ctx context.Context, username string, contactID int64) error {
	count, err := s.contacts.CountByID(ctx, contactID, username)
	if err != nil {
		return err
	}
	if count != 1 {
		return apperror.NotFound(msgContactNotFound)
	}
	return nil
}

func (s *AddressService) Create(ctx context.Context, username string, contactID int64, req AddressRequest) (*models.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	a := models.Address{
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	created, err := s.addresses.Create(ctx, a)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *AddressService) Get(ctx context.Context, username string, contactID, addressID int64) (*models.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	a, err := s.addresses.GetByID(ctx, addressID, contactID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NotFound(msgAddressNotFound)
	}
	return a, nil
}

func (s *AddressService) Update(ctx context.Context, username string, contactID, addressID int64, req AddressRequest) (*models.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}

	count, err := s.addresses.CountByID(ctx, addressID, contactID)
	if err != nil {
		return nil, err
	}
	if count != 1 {
		return nil, apperror.NotFound(msgAddressNotFound)
	}

	a := models.Address{
		ID:         addressID,
		ContactID:  contactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.addresses.Update(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AddressService) Remove(ctx context.Context, username string, contactID, addressID int64) error {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return err
	}

	// Contact-scoped delete; a concurrent double delete loses with a 404.
	n, err := s.addresses.Delete(ctx, addressID, contactID)
	if err != nil {
		return err
	}
	if n != 1 {
		return apperror.NotFound(msgAddressNotFound)
	}
	return nil
}

func (s *AddressService) List(ctx context.Context, username string, contactID int64) ([]models.Address, error) {
	if err := s.checkContactMustExist(ctx, username, contactID); err != nil {
		return nil, err
	}
	return s.addresses.ListByContact(ctx, contactID)
}
