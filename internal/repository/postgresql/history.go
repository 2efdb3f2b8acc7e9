package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) storage.HistoryRepository {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) CreateBatchTx(ctx context.Context, tx db.Tx, entries []*repository.OrderHistory) error {
	const width = 7
	for _, c := range chunks(len(entries), width) {
		part := entries[c[0]:c[1]]
		args := make([]interface{}, 0, len(part)*width)
		for _, h := range part {
			args = append(args, h.OrderID, h.InhabitantID, h.DinnerEventID, h.SeasonID, h.Action, []byte(h.Snapshot), h.CreatedAt)
		}
		var ids []int64
		err := tx.Select(ctx, &ids, `
            INSERT INTO order_history (
                order_id, inhabitant_id, dinner_event_id, season_id, action, snapshot, created_at
            ) VALUES `+valuesClause(len(part), width)+`
            RETURNING id
        `, args...)
		if err != nil {
			return fmt.Errorf("insert order history: %w", err)
		}
		if len(ids) != len(part) {
			return fmt.Errorf("insert order history: got %d ids for %d rows", len(ids), len(part))
		}
		for i, id := range ids {
			part[i].ID = id
		}
	}
	return nil
}

const householdHistoryQuery = `
        SELECT h.* FROM order_history h
        JOIN inhabitants i ON i.id = h.inhabitant_id
        WHERE i.household_id = $1 AND h.season_id = $2
        ORDER BY h.created_at, h.id
    `

func (r *HistoryRepo) GetByHouseholdTx(ctx context.Context, tx db.Tx, householdID, seasonID int64) ([]*repository.OrderHistory, error) {
	var entries []*repository.OrderHistory
	err := tx.Select(ctx, &entries, householdHistoryQuery, householdID, seasonID)
	return entries, err
}

func (r *HistoryRepo) GetByHousehold(ctx context.Context, householdID, seasonID int64) ([]*repository.OrderHistory, error) {
	var entries []*repository.OrderHistory
	err := r.db.Select(ctx, &entries, householdHistoryQuery, householdID, seasonID)
	return entries, err
}

func (r *HistoryRepo) GetByKey(ctx context.Context, inhabitantID, dinnerEventID int64) ([]*repository.OrderHistory, error) {
	var entries []*repository.OrderHistory
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM order_history
        WHERE inhabitant_id = $1 AND dinner_event_id = $2
        ORDER BY created_at ASC, id ASC
    `, inhabitantID, dinnerEventID)
	return entries, err
}
