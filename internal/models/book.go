package models

import "time"

// Book belongs to exactly one user; every query on books filters by OwnerID.
type Book struct {
	ID int64 `db:"id" json:"id"`

	Title       string `db:"title" json:"title"`
	Author      string `db:"author" json:"author"`
	Genre       string `db:"genre" json:"genre"`
	Description string `db:"description" json:"description"`
	CoverURL    string `db:"cover_url" json:"cover_url"`

	OwnerID int64 `db:"user_id" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
