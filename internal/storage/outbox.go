package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
)

// enqueueHistoryTx queues one order_history event per audit row in the same
// transaction that wrote the rows.
func (s *PostgresStorage) enqueueHistoryTx(ctx context.Context, tx db.Tx, householdID int64, entries []*repository.OrderHistory) error {
	for _, h := range entries {
		payload, err := json.Marshal(repository.OrderEventPayload{
			HistoryID:     h.ID,
			OrderID:       h.OrderID,
			InhabitantID:  h.InhabitantID,
			HouseholdID:   householdID,
			DinnerEventID: h.DinnerEventID,
			SeasonID:      h.SeasonID,
			Action:        h.Action,
			Snapshot:      h.Snapshot,
			OccurredAt:    h.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("marshal order event: %w", err)
		}
		task := &repository.OutboxTask{
			Payload: payload,
			Topic:   repository.TopicOrderHistory,
		}
		if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
			return fmt.Errorf("enqueue order event for history %d: %w", h.ID, err)
		}
	}
	return nil
}
