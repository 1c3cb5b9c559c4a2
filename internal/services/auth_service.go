package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookshelf/internal/database"
	"bookshelf/internal/models"
	"bookshelf/internal/password"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
)

const (
	msgCredentialsRequired = "Username and password are required!"
	msgPasswordTooLong     = "Password must be at most 72 bytes long."
)

type AuthService struct {
	db *database.DB
}

func NewAuthService(db *database.DB) *AuthService {
	return &AuthService{db: db}
}

// Signup creates a user with a hashed credential. Uniqueness is left to the
// users table; a conflict there becomes ErrDuplicateUsername.
func (s *AuthService) Signup(ctx context.Context, username, plaintext string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if err := requireFields(msgCredentialsRequired,
		field{"username", username},
		field{"password", plaintext},
	); err != nil {
		return nil, err
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		if errors.Is(err, password.ErrTooLong) {
			return nil, &ValidationError{Message: msgPasswordTooLong}
		}
		return nil, err
	}

	id, err := s.db.CreateUser(ctx, username, hash)
	if err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return s.db.UserByID(ctx, id)
}

// Login checks the credentials and returns the matching user. Unknown users
// and wrong passwords produce the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, plaintext string) (*models.User, error) {
	user, err := s.db.UserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !password.Verify(user.PasswordHash, plaintext) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.db.UserByUsername(ctx, strings.TrimSpace(username))
}
