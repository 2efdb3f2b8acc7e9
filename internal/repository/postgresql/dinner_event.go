package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

type DinnerEventRepo struct {
	db db.DB
}

func NewDinnerEventRepo(db db.DB) storage.DinnerEventRepository {
	return &DinnerEventRepo{db: db}
}

func (r *DinnerEventRepo) CreateBatchTx(ctx context.Context, tx db.Tx, events []*repository.DinnerEvent) error {
	const width = 5
	for _, c := range chunks(len(events), width) {
		part := events[c[0]:c[1]]
		args := make([]interface{}, 0, len(part)*width)
		for _, e := range part {
			args = append(args, e.SeasonID, e.Date, e.State, e.CookingTeamID, e.CreatedAt)
		}
		var ids []int64
		err := tx.Select(ctx, &ids, `
            INSERT INTO dinner_events (season_id, date, state, cooking_team_id, created_at)
            VALUES `+valuesClause(len(part), width)+`
            RETURNING id
        `, args...)
		if err != nil {
			return fmt.Errorf("insert dinner events: %w", err)
		}
		if len(ids) != len(part) {
			return fmt.Errorf("insert dinner events: got %d ids for %d rows", len(ids), len(part))
		}
		for i, id := range ids {
			part[i].ID = id
		}
	}
	return nil
}

func (r *DinnerEventRepo) GetBySeason(ctx context.Context, seasonID int64) ([]*repository.DinnerEvent, error) {
	var events []*repository.DinnerEvent
	err := r.db.Select(ctx, &events, "SELECT * FROM dinner_events WHERE season_id = $1 ORDER BY date, id", seasonID)
	return events, err
}

func (r *DinnerEventRepo) GetBySeasonTx(ctx context.Context, tx db.Tx, seasonID int64) ([]*repository.DinnerEvent, error) {
	var events []*repository.DinnerEvent
	err := tx.Select(ctx, &events, "SELECT * FROM dinner_events WHERE season_id = $1 ORDER BY date, id", seasonID)
	return events, err
}

func (r *DinnerEventRepo) AssignTeamTx(ctx context.Context, tx db.Tx, eventID, teamID int64) error {
	tag, err := tx.Exec(ctx, "UPDATE dinner_events SET cooking_team_id = $1 WHERE id = $2", teamID, eventID)
	if err != nil {
		return fmt.Errorf("assign team %d to event %d: %w", teamID, eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *DinnerEventRepo) DeleteUnorderedTx(ctx context.Context, tx db.Tx, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var deleted []int64
	err := tx.Select(ctx, &deleted, `
        DELETE FROM dinner_events e
        WHERE e.id = ANY($1)
          AND NOT EXISTS (SELECT 1 FROM orders o WHERE o.dinner_event_id = e.id)
        RETURNING e.id
    `, ids)
	if err != nil {
		return nil, fmt.Errorf("delete dinner events: %w", err)
	}
	return deleted, nil
}
