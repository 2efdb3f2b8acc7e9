package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

const TopicOrderHistory = "order_history"

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// OrderEventPayload is what billing and the community calendar receive for
// every audit row.
type OrderEventPayload struct {
	HistoryID     int64           `json:"history_id"`
	OrderID       *int64          `json:"order_id,omitempty"`
	InhabitantID  int64           `json:"inhabitant_id"`
	HouseholdID   int64           `json:"household_id"`
	DinnerEventID int64           `json:"dinner_event_id"`
	SeasonID      int64           `json:"season_id"`
	Action        string          `json:"action"`
	Snapshot      json.RawMessage `json:"snapshot"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
