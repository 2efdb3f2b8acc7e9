package scaffold

import (
	"encoding/json"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

type DinnerMode string

const (
	DineIn     DinnerMode = "DINEIN"
	DineInLate DinnerMode = "DINEINLATE"
	Takeaway   DinnerMode = "TAKEAWAY"
	None       DinnerMode = "NONE"
)

func (m DinnerMode) Valid() bool {
	switch m {
	case DineIn, DineInLate, Takeaway, None:
		return true
	}
	return false
}

// Wants reports whether the mode asks for a seat at the dinner.
func (m DinnerMode) Wants() bool {
	return m.Valid() && m != None
}

type OrderState string

const (
	Booked   OrderState = "BOOKED"
	Released OrderState = "RELEASED"
)

type Action string

const (
	UserBooked     Action = "USER_BOOKED"
	UserClaimed    Action = "USER_CLAIMED"
	UserCancelled  Action = "USER_CANCELLED"
	SystemCreated  Action = "SYSTEM_CREATED"
	SystemUpdated  Action = "SYSTEM_UPDATED"
	SystemReleased Action = "SYSTEM_RELEASED"
	SystemClaimed  Action = "SYSTEM_CLAIMED"
	SystemDeleted  Action = "SYSTEM_DELETED"
)

func (a Action) ByUser() bool {
	switch a {
	case UserBooked, UserClaimed, UserCancelled:
		return true
	}
	return false
}

// Mode selects which audit tags a reconciliation writes and whether pinned
// keys are respected.
type Mode string

const (
	ModeSystem Mode = "system"
	ModeUser   Mode = "user"
	ModeHeal   Mode = "heal"
)

type Key struct {
	InhabitantID  int64 `json:"inhabitant_id"`
	DinnerEventID int64 `json:"dinner_event_id"`
}

type Order struct {
	ID             int64      `json:"id"`
	InhabitantID   int64      `json:"inhabitant_id"`
	DinnerEventID  int64      `json:"dinner_event_id"`
	TicketPriceID  int64      `json:"ticket_price_id"`
	DinnerMode     DinnerMode `json:"dinner_mode"`
	State          OrderState `json:"state"`
	IsGuestTicket  bool       `json:"is_guest_ticket"`
	BookedByUserID *int64     `json:"booked_by_user_id,omitempty"`
	PriceAtBooking int        `json:"price_at_booking"`
	Version        int64      `json:"version"`
}

func (o Order) Key() Key {
	return Key{InhabitantID: o.InhabitantID, DinnerEventID: o.DinnerEventID}
}

// DesiredOrder is what a reconciliation pass thinks should exist for a key.
// A NONE mode or a RELEASED state both mean "no seat".
type DesiredOrder struct {
	InhabitantID    int64      `json:"inhabitant_id"`
	DinnerEventID   int64      `json:"dinner_event_id"`
	DinnerMode      DinnerMode `json:"dinner_mode"`
	TicketPriceID   *int64     `json:"ticket_price_id,omitempty"`
	IsGuestTicket   bool       `json:"is_guest_ticket"`
	State           OrderState `json:"state,omitempty"`
	ExistingOrderID *int64     `json:"existing_order_id,omitempty"`
}

func (d DesiredOrder) Key() Key {
	return Key{InhabitantID: d.InhabitantID, DinnerEventID: d.DinnerEventID}
}

func (d DesiredOrder) wantsSeat() bool {
	return d.DinnerMode.Wants() && d.State != Released
}

type HistoryRecord struct {
	ID            int64           `json:"id"`
	InhabitantID  int64           `json:"inhabitant_id"`
	DinnerEventID int64           `json:"dinner_event_id"`
	SeasonID      int64           `json:"season_id"`
	Action        Action          `json:"action"`
	Snapshot      json.RawMessage `json:"snapshot"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (h HistoryRecord) Key() Key {
	return Key{InhabitantID: h.InhabitantID, DinnerEventID: h.DinnerEventID}
}

type Event struct {
	ID       int64
	SeasonID int64
	Date     time.Time
}

type Inhabitant struct {
	ID          int64
	HouseholdID int64
	BirthDate   *time.Time
	Preferences *weekday.Map[DinnerMode]
}

// Season carries the parts of a season the reconciler needs.
type Season struct {
	ID                                int64
	TicketIsCancellableDaysBefore     int
	DiningModeIsEditableMinutesBefore int
	Prices                            []pricing.TicketPrice
}
