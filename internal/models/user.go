package models

import "time"

type User struct {
	ID int64 `db:"id" json:"id"`

	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Identity is the authenticated caller. It is the only thing a session carries.
type Identity struct {
	UserID int64
}
