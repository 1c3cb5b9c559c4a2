package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookshelf/internal/models"
)

// CreateUser inserts a user and returns its id. A taken username is reported
// as ErrUniqueViolation; the table constraint is the only uniqueness check.
func (db *DB) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	query := db.Rebind(`insert into users (username, password_hash) values (?, ?) returning id`)

	var id int64
	if err := db.QueryRowxContext(ctx, query, username, passwordHash).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("username %q: %w", username, ErrUniqueViolation)
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (db *DB) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return db.getUser(ctx, `select id, username, password_hash, created_at from users where username = ?`, username)
}

func (db *DB) UserByID(ctx context.Context, id int64) (*models.User, error) {
	return db.getUser(ctx, `select id, username, password_hash, created_at from users where id = ?`, id)
}

func (db *DB) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	if err := db.GetContext(ctx, &user, db.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
