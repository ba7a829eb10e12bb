package database

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the bootstrap admin account when the users table is
// empty, so a fresh install can log in.
func SeedAdmin(ctx context.Context, db *DB, email, password string) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, 'admin')`,
		email, string(hash))
	return err
}
