package repository

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

var (
	ErrObjectNotFound = errors.New("not found")
	// ErrConflict means a versioned write matched no row: someone else got there first.
	ErrConflict = errors.New("version conflict")
)

const (
	EventScheduled = "SCHEDULED"
	EventAnnounced = "ANNOUNCED"
	EventConsumed  = "CONSUMED"
	EventCancelled = "CANCELLED"
)

type Season struct {
	ID                                int64             `db:"id"`
	ShortName                         string            `db:"short_name"`
	StartDate                         time.Time         `db:"start_date"`
	EndDate                           time.Time         `db:"end_date"`
	CookingDays                       weekday.Map[bool] `db:"cooking_days"`
	Holidays                          Holidays          `db:"holidays"`
	ConsecutiveCookingDays            int               `db:"consecutive_cooking_days"`
	TicketIsCancellableDaysBefore     int               `db:"ticket_is_cancellable_days_before"`
	DiningModeIsEditableMinutesBefore int               `db:"dining_mode_is_editable_minutes_before"`
	IsActive                          bool              `db:"is_active"`
	CreatedAt                         time.Time         `db:"created_at"`
	UpdatedAt                         time.Time         `db:"updated_at"`
}

// Holidays is stored as a jsonb array of inclusive date ranges.
type Holidays []schedule.DateRange

func (h Holidays) Value() (driver.Value, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]schedule.DateRange(h))
}

func (h *Holidays) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*h = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("holidays: unsupported source %T", src)
	}
	var ranges []schedule.DateRange
	if err := json.Unmarshal(raw, &ranges); err != nil {
		return fmt.Errorf("holidays: %w", err)
	}
	*h = ranges
	return nil
}

type TicketPrice struct {
	ID              int64  `db:"id"`
	SeasonID        int64  `db:"season_id"`
	TicketType      string `db:"ticket_type"`
	Price           int    `db:"price"`
	MaximumAgeLimit *int   `db:"maximum_age_limit"`
	Description     string `db:"description"`
}

type DinnerEvent struct {
	ID            int64     `db:"id"`
	SeasonID      int64     `db:"season_id"`
	Date          time.Time `db:"date"`
	State         string    `db:"state"`
	CookingTeamID *int64    `db:"cooking_team_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type CookingTeam struct {
	ID       int64           `db:"id"`
	SeasonID int64           `db:"season_id"`
	Name     string          `db:"name"`
	Affinity json.RawMessage `db:"affinity"`
}

type CookingTeamAssignment struct {
	ID                   int64           `db:"id"`
	CookingTeamID        int64           `db:"cooking_team_id"`
	InhabitantID         int64           `db:"inhabitant_id"`
	Role                 string          `db:"role"`
	AllocationPercentage int             `db:"allocation_percentage"`
	AffinityOverride     json.RawMessage `db:"affinity_override"`
}

type Inhabitant struct {
	ID                int64           `db:"id"`
	HouseholdID       int64           `db:"household_id"`
	Name              string          `db:"name"`
	BirthDate         *time.Time      `db:"birth_date"`
	DinnerPreferences json.RawMessage `db:"dinner_preferences"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

type Order struct {
	ID             int64     `db:"id"`
	InhabitantID   int64     `db:"inhabitant_id"`
	DinnerEventID  int64     `db:"dinner_event_id"`
	TicketPriceID  int64     `db:"ticket_price_id"`
	DinnerMode     string    `db:"dinner_mode"`
	State          string    `db:"state"`
	IsGuestTicket  bool      `db:"is_guest_ticket"`
	BookedByUserID *int64    `db:"booked_by_user_id"`
	PriceAtBooking int       `db:"price_at_booking"`
	Version        int64     `db:"version"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// OrderHistory rows are append-only and outlive the order they describe.
type OrderHistory struct {
	ID            int64           `db:"id"`
	OrderID       *int64          `db:"order_id"`
	InhabitantID  int64           `db:"inhabitant_id"`
	DinnerEventID int64           `db:"dinner_event_id"`
	SeasonID      int64           `db:"season_id"`
	Action        string          `db:"action"`
	Snapshot      json.RawMessage `db:"snapshot"`
	CreatedAt     time.Time       `db:"created_at"`
}
