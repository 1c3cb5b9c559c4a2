package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookshelf/internal/models"
)

const bookColumns = `id, title, author, genre, description, cover_url, user_id, created_at, updated_at`

// InsertBook stores b under b.OwnerID and returns the new id.
func (db *DB) InsertBook(ctx context.Context, b *models.Book) (int64, error) {
	query := db.Rebind(`
		insert into books (title, author, genre, description, cover_url, user_id)
		values (?, ?, ?, ?, ?, ?)
		returning id
	`)

	var id int64
	err := db.QueryRowxContext(ctx, query, b.Title, b.Author, b.Genre, b.Description, b.CoverURL, b.OwnerID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert book: %w", err)
	}
	return id, nil
}

func (db *DB) BooksByOwner(ctx context.Context, ownerID int64) ([]models.Book, error) {
	query := db.Rebind(`select ` + bookColumns + ` from books where user_id = ? order by id`)

	books := []models.Book{}
	if err := db.SelectContext(ctx, &books, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// BookByID returns ErrNotFound both when the row is missing and when it
// belongs to another owner.
func (db *DB) BookByID(ctx context.Context, id, ownerID int64) (*models.Book, error) {
	query := db.Rebind(`select ` + bookColumns + ` from books where id = ? and user_id = ?`)

	var book models.Book
	if err := db.GetContext(ctx, &book, query, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &book, nil
}

// UpdateBook overwrites the editable fields of the row matching (b.ID, b.OwnerID)
// and returns the number of rows changed.
func (db *DB) UpdateBook(ctx context.Context, b *models.Book) (int64, error) {
	query := db.Rebind(`
		update books
		set title = ?, author = ?, genre = ?, description = ?, cover_url = ?, updated_at = CURRENT_TIMESTAMP
		where id = ? and user_id = ?
	`)

	res, err := db.ExecContext(ctx, query, b.Title, b.Author, b.Genre, b.Description, b.CoverURL, b.ID, b.OwnerID)
	if err != nil {
		return 0, fmt.Errorf("failed to update book: %w", err)
	}
	return res.RowsAffected()
}

func (db *DB) DeleteBook(ctx context.Context, id, ownerID int64) (int64, error) {
	query := db.Rebind(`delete from books where id = ? and user_id = ?`)

	res, err := db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete book: %w", err)
	}
	return res.RowsAffected()
}
