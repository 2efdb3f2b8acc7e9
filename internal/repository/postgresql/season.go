package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

const seasonColumns = `id, short_name, start_date, end_date, cooking_days, holidays, consecutive_cooking_days,
        ticket_is_cancellable_days_before, dining_mode_is_editable_minutes_before, is_active, created_at, updated_at`

type SeasonRepo struct {
	db db.DB
}

func NewSeasonRepo(db db.DB) storage.SeasonRepository {
	return &SeasonRepo{db: db}
}

func (r *SeasonRepo) CreateTx(ctx context.Context, tx db.Tx, season *repository.Season) error {
	err := tx.ExecQueryRow(ctx, `
        INSERT INTO seasons (
            short_name, start_date, end_date, cooking_days, holidays, consecutive_cooking_days,
            ticket_is_cancellable_days_before, dining_mode_is_editable_minutes_before, is_active, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `, season.ShortName, season.StartDate, season.EndDate, season.CookingDays, season.Holidays, season.ConsecutiveCookingDays,
		season.TicketIsCancellableDaysBefore, season.DiningModeIsEditableMinutesBefore, season.IsActive, season.CreatedAt, season.UpdatedAt,
	).Scan(&season.ID)
	if err != nil {
		return fmt.Errorf("insert season: %w", err)
	}
	return nil
}

func (r *SeasonRepo) UpdateTx(ctx context.Context, tx db.Tx, season *repository.Season) error {
	tag, err := tx.Exec(ctx, `
        UPDATE seasons
        SET
            short_name = $1,
            start_date = $2,
            end_date = $3,
            cooking_days = $4,
            holidays = $5,
            consecutive_cooking_days = $6,
            ticket_is_cancellable_days_before = $7,
            dining_mode_is_editable_minutes_before = $8,
            updated_at = $9
        WHERE id = $10
    `, season.ShortName, season.StartDate, season.EndDate, season.CookingDays, season.Holidays, season.ConsecutiveCookingDays,
		season.TicketIsCancellableDaysBefore, season.DiningModeIsEditableMinutesBefore, season.UpdatedAt, season.ID)
	if err != nil {
		return fmt.Errorf("update season %d: %w", season.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *SeasonRepo) GetByID(ctx context.Context, id int64) (*repository.Season, error) {
	var season repository.Season
	err := r.db.Get(ctx, &season, "SELECT "+seasonColumns+" FROM seasons WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &season, nil
}

func (r *SeasonRepo) GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Season, error) {
	var season repository.Season
	err := tx.Get(ctx, &season, "SELECT "+seasonColumns+" FROM seasons WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &season, nil
}

func (r *SeasonRepo) GetActive(ctx context.Context) (*repository.Season, error) {
	var season repository.Season
	err := r.db.Get(ctx, &season, "SELECT "+seasonColumns+" FROM seasons WHERE is_active LIMIT 1")
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &season, nil
}

// ActivateTx makes id the only active season.
func (r *SeasonRepo) ActivateTx(ctx context.Context, tx db.Tx, id int64) error {
	if _, err := tx.Exec(ctx, "UPDATE seasons SET is_active = FALSE WHERE is_active AND id <> $1", id); err != nil {
		return fmt.Errorf("deactivate seasons: %w", err)
	}
	tag, err := tx.Exec(ctx, "UPDATE seasons SET is_active = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("activate season %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}
