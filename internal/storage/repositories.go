//go:generate mockgen -source ./repositories.go -destination=./mocks/repositories.go -package=mock_storage
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
)

type SeasonRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, season *repository.Season) error
	UpdateTx(ctx context.Context, tx db.Tx, season *repository.Season) error
	GetByID(ctx context.Context, id int64) (*repository.Season, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id int64) (*repository.Season, error)
	GetActive(ctx context.Context) (*repository.Season, error)
	ActivateTx(ctx context.Context, tx db.Tx, id int64) error
}

type TicketPriceRepository interface {
	CreateBatchTx(ctx context.Context, tx db.Tx, prices []*repository.TicketPrice) error
	UpdateTx(ctx context.Context, tx db.Tx, price *repository.TicketPrice) error
	DeleteExceptTx(ctx context.Context, tx db.Tx, seasonID int64, keep []int64) error
	GetBySeason(ctx context.Context, seasonID int64) ([]*repository.TicketPrice, error)
	GetBySeasonTx(ctx context.Context, tx db.Tx, seasonID int64) ([]*repository.TicketPrice, error)
}

type DinnerEventRepository interface {
	CreateBatchTx(ctx context.Context, tx db.Tx, events []*repository.DinnerEvent) error
	GetBySeason(ctx context.Context, seasonID int64) ([]*repository.DinnerEvent, error)
	GetBySeasonTx(ctx context.Context, tx db.Tx, seasonID int64) ([]*repository.DinnerEvent, error)
	AssignTeamTx(ctx context.Context, tx db.Tx, eventID, teamID int64) error
	// DeleteUnorderedTx removes the given events that have no orders and
	// returns the ids it removed.
	DeleteUnorderedTx(ctx context.Context, tx db.Tx, ids []int64) ([]int64, error)
}

type CookingTeamRepository interface {
	CreateBatchTx(ctx context.Context, tx db.Tx, teams []*repository.CookingTeam) error
	CreateAssignmentsTx(ctx context.Context, tx db.Tx, assignments []*repository.CookingTeamAssignment) error
	GetBySeason(ctx context.Context, seasonID int64) ([]*repository.CookingTeam, error)
	GetBySeasonTx(ctx context.Context, tx db.Tx, seasonID int64) ([]*repository.CookingTeam, error)
	GetAssignmentsBySeason(ctx context.Context, seasonID int64) ([]*repository.CookingTeamAssignment, error)
	UpdateAffinityTx(ctx context.Context, tx db.Tx, id int64, affinity json.RawMessage) error
}

type InhabitantRepository interface {
	GetByID(ctx context.Context, id int64) (*repository.Inhabitant, error)
	GetByHousehold(ctx context.Context, householdID int64) ([]*repository.Inhabitant, error)
	GetByHouseholdTx(ctx context.Context, tx db.Tx, householdID int64) ([]*repository.Inhabitant, error)
	UpdatePreferencesTx(ctx context.Context, tx db.Tx, id int64, prefs json.RawMessage, updatedAt time.Time) error
	ListHouseholdIDs(ctx context.Context) ([]int64, error)
}

type OrderRepository interface {
	// GetByHouseholdTx locks the household's orders for the given events.
	GetByHouseholdTx(ctx context.Context, tx db.Tx, householdID int64, eventIDs []int64) ([]*repository.Order, error)
	GetByHousehold(ctx context.Context, householdID, seasonID int64) ([]*repository.Order, error)
	CreateBatchTx(ctx context.Context, tx db.Tx, orders []*repository.Order) error
	UpdateTx(ctx context.Context, tx db.Tx, order *repository.Order) error
	DeleteTx(ctx context.Context, tx db.Tx, id, version int64) error
}

type HistoryRepository interface {
	CreateBatchTx(ctx context.Context, tx db.Tx, entries []*repository.OrderHistory) error
	GetByHouseholdTx(ctx context.Context, tx db.Tx, householdID, seasonID int64) ([]*repository.OrderHistory, error)
	GetByHousehold(ctx context.Context, householdID, seasonID int64) ([]*repository.OrderHistory, error)
	GetByKey(ctx context.Context, inhabitantID, dinnerEventID int64) ([]*repository.OrderHistory, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, tx db.Tx, limit, maxAttempts int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, username, password string) (int64, error)
	ValidateUser(ctx context.Context, username, password string) (int64, bool, error)
}
