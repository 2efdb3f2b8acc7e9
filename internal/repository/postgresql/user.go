package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"golang.org/x/crypto/bcrypt"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, username, password string) (int64, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.ExecQueryRow(ctx,
		"INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id",
		username, string(hashedPassword)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	return id, nil
}

// ValidateUser returns the user's id and whether the password matches. An
// unknown username is reported as a mismatch, not an error.
func (r *UserRepo) ValidateUser(ctx context.Context, username, password string) (int64, bool, error) {
	var (
		id             int64
		hashedPassword string
	)
	err := r.db.ExecQueryRow(ctx,
		"SELECT id, password FROM users WHERE username = $1", username).Scan(&id, &hashedPassword)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("lookup user %q: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return id, true, nil
}
