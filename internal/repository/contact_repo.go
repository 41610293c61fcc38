package repository

import (
	"contactbook/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ Contacts = (*ContactRepository)(nil)

const (
	insertContactSQL = `INSERT INTO contacts (username, first_name, last_name, email, phone) VALUES (?, ?, ?, ?, ?)`
	selectContactSQL = `SELECT id, username, first_name, last_name, email, phone FROM contacts WHERE id = ? AND username = ?`
	countContactSQL  = `SELECT COUNT(*) FROM contacts WHERE id = ? AND username = ?`
	updateContactSQL = `UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ? WHERE id = ?`
	deleteContactSQL = `DELETE FROM contacts WHERE id = ? AND username = ?`
)

// Create inserts a contact and returns it with the assigned id.
func (r *ContactRepository) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	res, err := r.db.ExecContext(ctx, insertContactSQL,
		c.Username, c.FirstName, c.LastName, c.Email, c.Phone)
	if err != nil {
		return models.Contact{}, fmt.Errorf("insert contact for %q: %w", c.Username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Contact{}, fmt.Errorf("get last insert id for contact: %w", err)
	}
	c.ID = id
	return c, nil
}

// GetByID fetches a contact scoped by its owner. Returns (nil, nil) if no
// contact with that id belongs to username.
func (r *ContactRepository) GetByID(ctx context.Context, id int64, username string) (*models.Contact, error) {
	row := r.db.QueryRowContext(ctx, selectContactSQL, id, username)
	c, err := scanContact(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select contact %d: %w", id, err)
	}
	return c, nil
}

// CountByID is the ownership existence check: 1 when the contact exists under
// username, 0 otherwise.
func (r *ContactRepository) CountByID(ctx context.Context, id int64, username string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countContactSQL, id, username).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contact %d: %w", id, err)
	}
	return n, nil
}

// Update overwrites all mutable fields of a contact.
func (r *ContactRepository) Update(ctx context.Context, c models.Contact) error {
	if _, err := r.db.ExecContext(ctx, updateContactSQL,
		c.FirstName, c.LastName, c.Email, c.Phone, c.ID); err != nil {
		return fmt.Errorf("update contact %d: %w", c.ID, err)
	}
	return nil
}

// Delete removes a contact only if it belongs to username, returning the
// number of rows removed.
func (r *ContactRepository) Delete(ctx context.Context, id int64, username string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteContactSQL, id, username)
	if err != nil {
		return 0, fmt.Errorf("delete contact %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for contact %d: %w", id, err)
	}
	return n, nil
}

// searchWhere builds the WHERE clause and args shared by Search and
// CountSearch. Filters combine with AND; name matches first OR last name.
func searchWhere(username string, f ContactFilter) (string, []any) {
	conds := []string{"username = ?"}
	args := []any{username}

	if f.Name != "" {
		conds = append(conds, "(first_name LIKE ? OR last_name LIKE ?)")
		pattern := "%" + f.Name + "%"
		args = append(args, pattern, pattern)
	}
	if f.Email != "" {
		conds = append(conds, "email LIKE ?")
		args = append(args, "%"+f.Email+"%")
	}
	if f.Phone != "" {
		conds = append(conds, "phone LIKE ?")
		args = append(args, "%"+f.Phone+"%")
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// Search returns one page of contacts matching the filter, ordered by id so
// pages partition the result set without duplicates.
func (r *ContactRepository) Search(ctx context.Context, username string, f ContactFilter) ([]models.Contact, error) {
	where, args := searchWhere(username, f)
	q := `SELECT id, username, first_name, last_name, email, phone FROM contacts` +
		where + " ORDER BY id ASC LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search contacts for %q: %w", username, err)
	}
	defer rows.Close()

	out := make([]models.Contact, 0, f.Limit)
	for rows.Next() {
		c, err := scanContact(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search contacts for %q: %w", username, err)
	}
	return out, nil
}

// CountSearch returns the total number of contacts matching the filter,
// ignoring the page window.
func (r *ContactRepository) CountSearch(ctx context.Context, username string, f ContactFilter) (int, error) {
	where, args := searchWhere(username, f)
	q := `SELECT COUNT(*) FROM contacts` + where

	var n int
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts for %q: %w", username, err)
	}
	return n, nil
}

func scanContact(scan func(dest ...any) error) (*models.Contact, error) {
	var (
		c                      models.Contact
		lastName, email, phone sql.NullString
	)
	if err := scan(&c.ID, &c.Username, &c.FirstName, &lastName, &email, &phone); err != nil {
		return nil, err
	}
	if lastName.Valid {
		c.LastName = &lastName.String
	}
	if email.Valid {
		c.Email = &email.String
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	return &c, nil
}
