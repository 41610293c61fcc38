package repository

import (
	"contactbook/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL          = `INSERT INTO users (username, name, password_hash, token) VALUES (?, ?, ?, NULL)`
	countUserByUsernameSQL = `SELECT COUNT(*) FROM users WHERE username = ?`
	selectUserByUsername   = `SELECT username, name, password_hash, token FROM users WHERE username = ?`
	selectUserByTokenSQL   = `SELECT username, name, password_hash, token FROM users WHERE token = ?`
	updateUserTokenSQL     = `UPDATE users SET token = ? WHERE username = ?`
)

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u models.User) error {
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.Name, u.PasswordHash); err != nil {
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	return nil
}

// CountByUsername returns how many users exist with the given username (0 or 1).
func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countUserByUsernameSQL, username).Scan(&n); err != nil {
		return 0, fmt.Errorf("count user %q: %w", username, err)
	}
	return n, nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, selectUserByUsername, username)
}

// GetByToken fetches the user holding the given session token.
// Returns (nil, nil) if no user matches.
func (r *UserRepository) GetByToken(ctx context.Context, token string) (*models.User, error) {
	return r.getOne(ctx, selectUserByTokenSQL, token)
}

func (r *UserRepository) getOne(ctx context.Context, query, arg string) (*models.User, error) {
	var (
		u     models.User
		token sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.Username, &u.Name, &u.PasswordHash, &token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	if token.Valid {
		u.Token = &token.String
	}
	return &u, nil
}

// Update sets the provided fields on a user, skipping nil ones.
func (r *UserRepository) Update(ctx context.Context, username string, name, passwordHash *string) error {
	var (
		sets []string
		args []any
	)
	if name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *name)
	}
	if passwordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *passwordHash)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, username)

	q := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE username = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("update user %q: %w", username, err)
	}
	return nil
}

// UpdateToken overwrites the user's session token; nil clears it.
func (r *UserRepository) UpdateToken(ctx context.Context, username string, token *string) error {
	var val sql.NullString
	if token != nil {
		val = sql.NullString{String: *token, Valid: true}
	}
	if _, err := r.db.ExecContext(ctx, updateUserTokenSQL, val, username); err != nil {
		return fmt.Errorf("update token for user %q: %w", username, err)
	}
	return nil
}
