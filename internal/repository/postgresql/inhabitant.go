package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

type InhabitantRepo struct {
	db db.DB
}

func NewInhabitantRepo(db db.DB) storage.InhabitantRepository {
	return &InhabitantRepo{db: db}
}

func (r *InhabitantRepo) GetByID(ctx context.Context, id int64) (*repository.Inhabitant, error) {
	var inh repository.Inhabitant
	err := r.db.Get(ctx, &inh, "SELECT * FROM inhabitants WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &inh, nil
}

func (r *InhabitantRepo) GetByHousehold(ctx context.Context, householdID int64) ([]*repository.Inhabitant, error) {
	var inhabitants []*repository.Inhabitant
	err := r.db.Select(ctx, &inhabitants, "SELECT * FROM inhabitants WHERE household_id = $1 ORDER BY id", householdID)
	return inhabitants, err
}

func (r *InhabitantRepo) GetByHouseholdTx(ctx context.Context, tx db.Tx, householdID int64) ([]*repository.Inhabitant, error) {
	var inhabitants []*repository.Inhabitant
	err := tx.Select(ctx, &inhabitants, "SELECT * FROM inhabitants WHERE household_id = $1 ORDER BY id", householdID)
	return inhabitants, err
}

func (r *InhabitantRepo) UpdatePreferencesTx(ctx context.Context, tx db.Tx, id int64, prefs json.RawMessage, updatedAt time.Time) error {
	tag, err := tx.Exec(ctx, `
        UPDATE inhabitants
        SET dinner_preferences = $1, updated_at = $2
        WHERE id = $3
    `, nullJSON(prefs), updatedAt, id)
	if err != nil {
		return fmt.Errorf("update preferences of inhabitant %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *InhabitantRepo) ListHouseholdIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := r.db.Select(ctx, &ids, "SELECT DISTINCT household_id FROM inhabitants ORDER BY household_id")
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}
	return ids, nil
}
