package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

const uniqueViolation = "23505"

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) GetByHouseholdTx(ctx context.Context, tx db.Tx, householdID int64, eventIDs []int64) ([]*repository.Order, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}
	var orders []*repository.Order
	err := tx.Select(ctx, &orders, `
        SELECT o.* FROM orders o
        JOIN inhabitants i ON i.id = o.inhabitant_id
        WHERE i.household_id = $1 AND o.dinner_event_id = ANY($2)
        ORDER BY o.id
        FOR UPDATE OF o
    `, householdID, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("lock orders of household %d: %w", householdID, err)
	}
	return orders, nil
}

func (r *OrderRepo) GetByHousehold(ctx context.Context, householdID, seasonID int64) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders, `
        SELECT o.* FROM orders o
        JOIN inhabitants i ON i.id = o.inhabitant_id
        JOIN dinner_events e ON e.id = o.dinner_event_id
        WHERE i.household_id = $1 AND e.season_id = $2
        ORDER BY e.date, o.inhabitant_id, o.id
    `, householdID, seasonID)
	return orders, err
}

func (r *OrderRepo) CreateBatchTx(ctx context.Context, tx db.Tx, orders []*repository.Order) error {
	const width = 10
	for _, c := range chunks(len(orders), width) {
		part := orders[c[0]:c[1]]
		args := make([]interface{}, 0, len(part)*width)
		for _, o := range part {
			args = append(args, o.InhabitantID, o.DinnerEventID, o.TicketPriceID, o.DinnerMode, o.State,
				o.IsGuestTicket, o.BookedByUserID, o.PriceAtBooking, o.CreatedAt, o.UpdatedAt)
		}
		var ids []int64
		err := tx.Select(ctx, &ids, `
            INSERT INTO orders (
                inhabitant_id, dinner_event_id, ticket_price_id, dinner_mode, state,
                is_guest_ticket, booked_by_user_id, price_at_booking, created_at, updated_at
            ) VALUES `+valuesClause(len(part), width)+`
            RETURNING id
        `, args...)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return fmt.Errorf("insert orders: %s: %w", pgErr.ConstraintName, repository.ErrConflict)
			}
			return fmt.Errorf("insert orders: %w", err)
		}
		if len(ids) != len(part) {
			return fmt.Errorf("insert orders: got %d ids for %d rows", len(ids), len(part))
		}
		for i, id := range ids {
			part[i].ID = id
			part[i].Version = 1
		}
	}
	return nil
}

// UpdateTx writes the mutable columns when the stored version still matches
// order.Version, then bumps order.Version.
func (r *OrderRepo) UpdateTx(ctx context.Context, tx db.Tx, order *repository.Order) error {
	tag, err := tx.Exec(ctx, `
        UPDATE orders
        SET
            ticket_price_id = $1,
            dinner_mode = $2,
            state = $3,
            price_at_booking = $4,
            updated_at = $5,
            version = version + 1
        WHERE id = $6 AND version = $7
    `, order.TicketPriceID, order.DinnerMode, order.State, order.PriceAtBooking, order.UpdatedAt, order.ID, order.Version)
	if err != nil {
		return fmt.Errorf("update order %d: %w", order.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d at version %d: %w", order.ID, order.Version, repository.ErrConflict)
	}
	order.Version++
	return nil
}

func (r *OrderRepo) DeleteTx(ctx context.Context, tx db.Tx, id, version int64) error {
	tag, err := tx.Exec(ctx, "DELETE FROM orders WHERE id = $1 AND version = $2", id, version)
	if err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d at version %d: %w", id, version, repository.ErrConflict)
	}
	return nil
}
