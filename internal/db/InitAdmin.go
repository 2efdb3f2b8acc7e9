package db

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// InitAdmin creates the operator account used for basic auth unless a user
// with that name already exists. It reports whether a row was inserted.
func InitAdmin(ctx context.Context, database DB, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, fmt.Errorf("admin credentials are not configured")
	}

	var count int
	err := database.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users WHERE username = $1", username).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("count admin users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}
	if _, err = database.Exec(ctx, "INSERT INTO users (username, password) VALUES ($1, $2)", username, string(hashed)); err != nil {
		return false, fmt.Errorf("insert admin user: %w", err)
	}
	return true, nil
}
