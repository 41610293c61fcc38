package repository

import (
	"contactbook/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type AddressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

var _ Addresses = (*AddressRepository)(nil)

const (
	insertAddressSQL = `INSERT INTO addresses (contact_id, street, city, province, country, postal_code) VALUES (?, ?, ?, ?, ?, ?)`
	selectAddressSQL = `SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE id = ? AND contact_id = ?`
	countAddressSQL  = `SELECT COUNT(*) FROM addresses WHERE id = ? AND contact_id = ?`
	updateAddressSQL = `UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, postal_code = ? WHERE id = ?`
	deleteAddressSQL = `DELETE FROM addresses WHERE id = ? AND contact_id = ?`
	listAddressesSQL = `SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE contact_id = ? ORDER BY id ASC`
)

// Create inserts an address and returns it with the assigned id.
func (r *AddressRepository) Create(ctx context.Context, a models.Address) (models.Address, error) {
	res, err := r.db.ExecContext(ctx, insertAddressSQL,
		a.ContactID, a.Street, a.City, a.Province, a.Country, a.PostalCode)
	if err != nil {
		return models.Address{}, fmt.Errorf("insert address for contact %d: %w", a.ContactID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Address{}, fmt.Errorf("get last insert id for address: %w", err)
	}
	a.ID = id
	return a, nil
}

// GetByID fetches an address scoped by its owning contact.
// Returns (nil, nil) if no address with that id belongs to contactID.
func (r *AddressRepository) GetByID(ctx context.Context, id, contactID int64) (*models.Address, error) {
	row := r.db.QueryRowContext(ctx, selectAddressSQL, id, contactID)
	a, err := scanAddress(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select address %d: %w", id, err)
	}
	return a, nil
}

// CountByID is the ownership existence check scoped by contact id.
func (r *AddressRepository) CountByID(ctx context.Context, id, contactID int64) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countAddressSQL, id, contactID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count address %d: %w", id, err)
	}
	return n, nil
}

// Update overwrites all mutable fields of an address.
func (r *AddressRepository) Update(ctx context.Context, a models.Address) error {
	if _, err := r.db.ExecContext(ctx, updateAddressSQL,
		a.Street, a.City, a.Province, a.Country, a.PostalCode, a.ID); err != nil {
		return fmt.Errorf("update address %d: %w", a.ID, err)
	}
	return nil
}

// Delete removes an address only if it belongs to contactID, returning the
// number of rows removed.
func (r *AddressRepository) Delete(ctx context.Context, id, contactID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteAddressSQL, id, contactID)
	if err != nil {
		return 0, fmt.Errorf("delete address %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for address %d: %w", id, err)
	}
	return n, nil
}

// ListByContact returns every address under a contact, ordered by id.
func (r *AddressRepository) ListByContact(ctx context.Context, contactID int64) ([]models.Address, error) {
	rows, err := r.db.QueryContext(ctx, listAddressesSQL, contactID)
	if err != nil {
		return nil, fmt.Errorf("list addresses for contact %d: %w", contactID, err)
	}
	defer rows.Close()

	out := make([]models.Address, 0, 8)
	for rows.Next() {
		a, err := scanAddress(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list addresses for contact %d: %w", contactID, err)
	}
	return out, nil
}

func scanAddress(scan func(dest ...any) error) (*models.Address, error) {
	var (
		a                      models.Address
		street, city, province sql.NullString
	)
	if err := scan(&a.ID, &a.ContactID, &street, &city, &province, &a.Country, &a.PostalCode); err != nil {
		return nil, err
	}
	if street.Valid {
		a.Street = &street.String
	}
	if city.Valid {
		a.City = &city.String
	}
	if province.Valid {
		a.Province = &province.String
	}
	return &a, nil
}
