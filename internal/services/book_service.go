package services

import (
	"context"
	"errors"
	"strings"

	"bookshelf/internal/database"
	"bookshelf/internal/dto"
	"bookshelf/internal/models"
)

// ErrBookNotFound covers both missing books and books owned by someone else.
var ErrBookNotFound = errors.New("book not found")

const msgBookFieldsRequired = "Title, author, and genre are required!"

// BookService exposes the catalog of a single owner at a time; every method
// takes the caller's identity and never touches another owner's rows.
type BookService struct {
	db *database.DB
}

func NewBookService(db *database.DB) *BookService {
	return &BookService{db: db}
}

func (s *BookService) List(ctx context.Context, owner models.Identity) ([]models.Book, error) {
	return s.db.BooksByOwner(ctx, owner.UserID)
}

func (s *BookService) Create(ctx context.Context, owner models.Identity, in dto.BookInput) (*models.Book, error) {
	book, err := newBook(owner, in)
	if err != nil {
		return nil, err
	}

	id, err := s.db.InsertBook(ctx, book)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, owner, id)
}

func (s *BookService) Get(ctx context.Context, owner models.Identity, id int64) (*models.Book, error) {
	book, err := s.db.BookByID(ctx, id, owner.UserID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrBookNotFound
	}
	return book, err
}

// Update overwrites the book's fields. Nothing is written when validation
// fails, and a book the owner does not have is left alone without error.
func (s *BookService) Update(ctx context.Context, owner models.Identity, id int64, in dto.BookInput) error {
	book, err := newBook(owner, in)
	if err != nil {
		return err
	}
	book.ID = id

	_, err = s.db.UpdateBook(ctx, book)
	return err
}

// Delete is idempotent.
func (s *BookService) Delete(ctx context.Context, owner models.Identity, id int64) error {
	_, err := s.db.DeleteBook(ctx, id, owner.UserID)
	return err
}

func newBook(owner models.Identity, in dto.BookInput) (*models.Book, error) {
	book := &models.Book{
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		Genre:       strings.TrimSpace(in.Genre),
		Description: strings.TrimSpace(in.Description),
		CoverURL:    strings.TrimSpace(in.CoverURL),
		OwnerID:     owner.UserID,
	}
	if err := requireFields(msgBookFieldsRequired,
		field{"title", book.Title},
		field{"author", book.Author},
		field{"genre", book.Genre},
	); err != nil {
		return nil, err
	}
	return book, nil
}
