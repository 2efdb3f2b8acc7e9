package postgresql

import (
	"context"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

type TicketPriceRepo struct {
	db db.DB
}

func NewTicketPriceRepo(db db.DB) storage.TicketPriceRepository {
	return &TicketPriceRepo{db: db}
}

func (r *TicketPriceRepo) CreateBatchTx(ctx context.Context, tx db.Tx, prices []*repository.TicketPrice) error {
	const width = 5
	for _, c := range chunks(len(prices), width) {
		part := prices[c[0]:c[1]]
		args := make([]interface{}, 0, len(part)*width)
		for _, p := range part {
			args = append(args, p.SeasonID, p.TicketType, p.Price, p.MaximumAgeLimit, p.Description)
		}
		var ids []int64
		err := tx.Select(ctx, &ids, `
            INSERT INTO ticket_prices (season_id, ticket_type, price, maximum_age_limit, description)
            VALUES `+valuesClause(len(part), width)+`
            RETURNING id
        `, args...)
		if err != nil {
			return fmt.Errorf("insert ticket prices: %w", err)
		}
		if len(ids) != len(part) {
			return fmt.Errorf("insert ticket prices: got %d ids for %d rows", len(ids), len(part))
		}
		for i, id := range ids {
			part[i].ID = id
		}
	}
	return nil
}

func (r *TicketPriceRepo) UpdateTx(ctx context.Context, tx db.Tx, price *repository.TicketPrice) error {
	tag, err := tx.Exec(ctx, `
        UPDATE ticket_prices
        SET ticket_type = $1, price = $2, maximum_age_limit = $3, description = $4
        WHERE id = $5 AND season_id = $6
    `, price.TicketType, price.Price, price.MaximumAgeLimit, price.Description, price.ID, price.SeasonID)
	if err != nil {
		return fmt.Errorf("update ticket price %d: %w", price.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// DeleteExceptTx drops the season's prices whose id is not in keep. Orders
// pointing at a dropped price are re-priced on their next reconciliation.
func (r *TicketPriceRepo) DeleteExceptTx(ctx context.Context, tx db.Tx, seasonID int64, keep []int64) error {
	if keep == nil {
		keep = []int64{}
	}
	_, err := tx.Exec(ctx, "DELETE FROM ticket_prices WHERE season_id = $1 AND NOT (id = ANY($2))", seasonID, keep)
	if err != nil {
		return fmt.Errorf("delete ticket prices of season %d: %w", seasonID, err)
	}
	return nil
}

func (r *TicketPriceRepo) GetBySeason(ctx context.Context, seasonID int64) ([]*repository.TicketPrice, error) {
	var prices []*repository.TicketPrice
	err := r.db.Select(ctx, &prices, "SELECT * FROM ticket_prices WHERE season_id = $1 ORDER BY id", seasonID)
	return prices, err
}

func (r *TicketPriceRepo) GetBySeasonTx(ctx context.Context, tx db.Tx, seasonID int64) ([]*repository.TicketPrice, error) {
	var prices []*repository.TicketPrice
	err := tx.Select(ctx, &prices, "SELECT * FROM ticket_prices WHERE season_id = $1 ORDER BY id", seasonID)
	return prices, err
}
