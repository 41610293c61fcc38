package service

import (
	"contactbook/internal/apperror"
	"contactbook/internal/models"
	"contactbook/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the original system's fixed work factor.
const bcryptCost = 10

// Client-visible failure messages. Login deliberately reports the same
// message for an unknown username and a wrong password.
const (
	msgUsernameTaken   = "username already exists"
	msgBadCredentials  = "username or password is wrong"
	msgUserNotFound    = "user is not found"
	msgNothingToUpdate = "at least one of name or password is required"
	msgUnauthorized    = "unauthorized"
)

// UserService handles registration, the session token lifecycle, and
// profile updates.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

var _ Users = (*UserService)(nil)

// Register creates a new account with a bcrypt-hashed password.
// A taken username is a 400.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	count, err := s.users.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if count != 0 {
		return nil, apperror.BadRequest(msgUsernameTaken)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login verifies credentials and issues a fresh opaque token, overwriting
// any previous one so only a single session stays active per user.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperror.Unauthorized(msgBadCredentials)
	}
	if err := verifyPassword(u.PasswordHash, req.Password); err != nil {
		return "", apperror.Unauthorized(msgBadCredentials)
	}

	token := uuid.NewString()
	if err := s.users.UpdateToken(ctx, u.Username, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Authorize resolves a bearer token to the user holding it. This is the
// single trust boundary: every downstream ownership check starts from the
// username returned here.
func (s *UserService) Authorize(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperror.Unauthorized(msgUnauthorized)
	}
	u, err := s.users.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.Unauthorized(msgUnauthorized)
	}
	return u, nil
}

// Get returns the account for username. 404 covers the defensive case of a
// user vanishing between authorization and lookup.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound(msgUserNotFound)
	}
	return u, nil
}

// Update changes name and/or password; at least one must be present.
func (s *UserService) Update(ctx context.Context, username string, req UpdateUserRequest) (*models.User, error) {
	if req.Name == nil && req.Password == nil {
		return nil, apperror.BadRequest(msgNothingToUpdate)
	}

	count, err := s.users.CountByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if count != 1 {
		return nil, apperror.NotFound(msgUserNotFound)
	}

	var hash *string
	if req.Password != nil {
		h, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		hash = &h
	}
	if err := s.users.Update(ctx, username, req.Name, hash); err != nil {
		return nil, err
	}
	return s.Get(ctx, username)
}

// Logout clears the stored token, permanently invalidating it.
func (s *UserService) Logout(ctx context.Context, username string) error {
	count, err := s.users.CountByUsername(ctx, username)
	if err != nil {
		return err
	}
	if count != 1 {
		return apperror.NotFound(msgUserNotFound)
	}
	return s.users.UpdateToken(ctx, username, nil)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
