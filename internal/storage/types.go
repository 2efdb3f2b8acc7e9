package storage

import (
	"time"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/scaffold"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

type PriceDraft struct {
	// ID is set when the draft updates an existing price.
	ID              *int64             `json:"id,omitempty"`
	TicketType      pricing.TicketType `json:"ticket_type" validate:"required,oneof=ADULT CHILD BABY HUNGRY_BABY"`
	Price           int                `json:"price" validate:"gte=0"`
	MaximumAgeLimit *int               `json:"maximum_age_limit,omitempty" validate:"omitempty,gte=0"`
	Description     string             `json:"description,omitempty"`
}

type MemberDraft struct {
	InhabitantID         int64              `json:"inhabitant_id" validate:"required"`
	Role                 string             `json:"role" validate:"required,oneof=CHEF COOK JUNIORHELPER"`
	AllocationPercentage int                `json:"allocation_percentage" validate:"gte=0,lte=100"`
	AffinityOverride     *weekday.Map[bool] `json:"affinity_override,omitempty"`
}

type TeamDraft struct {
	Name     string             `json:"name" validate:"required"`
	Affinity *weekday.Map[bool] `json:"affinity,omitempty"`
	Members  []MemberDraft      `json:"members" validate:"dive"`
}

type SeasonDraft struct {
	ShortName                         string               `json:"short_name" validate:"required"`
	StartDate                         time.Time            `json:"start_date" validate:"required"`
	EndDate                           time.Time            `json:"end_date" validate:"required"`
	CookingDays                       weekday.Map[bool]    `json:"cooking_days"`
	Holidays                          []schedule.DateRange `json:"holidays"`
	ConsecutiveCookingDays            int                  `json:"consecutive_cooking_days" validate:"gte=1,lte=7"`
	TicketIsCancellableDaysBefore     int                  `json:"ticket_is_cancellable_days_before" validate:"gte=0"`
	DiningModeIsEditableMinutesBefore int                  `json:"dining_mode_is_editable_minutes_before" validate:"gte=0"`
	Prices                            []PriceDraft         `json:"prices" validate:"dive"`
	Teams                             []TeamDraft          `json:"teams" validate:"dive"`
	Activate                          bool                 `json:"activate"`
	// ResetAffinities drops stored team affinities before rescheduling, for
	// when the cooking week itself changed.
	ResetAffinities bool `json:"reset_affinities"`
}

type SeasonResult struct {
	SeasonID      int64   `json:"season_id"`
	CreatedEvents int     `json:"created_events"`
	DeletedEvents []int64 `json:"deleted_events,omitempty"`
	// KeptEvents fell outside the new calendar but still carry orders.
	KeptEvents         []int64 `json:"kept_events,omitempty"`
	AffinitiesAssigned int     `json:"affinities_assigned"`
	EventsAssigned     int     `json:"events_assigned"`
}

type ScheduleResult struct {
	AffinitiesAssigned int `json:"affinities_assigned"`
	EventsAssigned     int `json:"events_assigned"`
}

type RosterMember struct {
	InhabitantID         int64  `json:"inhabitant_id"`
	Role                 string `json:"role"`
	AllocationPercentage int    `json:"allocation_percentage"`
}

type RosterEntry struct {
	TeamID   int64          `json:"team_id"`
	Name     string         `json:"name"`
	Affinity []string       `json:"affinity"`
	Members  []RosterMember `json:"members"`
}

type BookingRequest struct {
	ActorID       int64               `json:"-"`
	InhabitantID  int64               `json:"inhabitant_id" validate:"required"`
	DinnerEventID int64               `json:"dinner_event_id" validate:"required"`
	DinnerMode    scaffold.DinnerMode `json:"dinner_mode" validate:"required,oneof=DINEIN DINEINLATE TAKEAWAY NONE"`
	TicketPriceID *int64              `json:"ticket_price_id,omitempty"`
	IsGuestTicket bool                `json:"is_guest_ticket"`
	// OrderID targets one specific order of the same key, the only way to
	// address a guest ticket (with IsGuestTicket set).
	OrderID *int64 `json:"order_id,omitempty"`
	Cancel  bool   `json:"cancel"`
}

type Mutation struct {
	Kind   scaffold.OpKind `json:"kind"`
	Action scaffold.Action `json:"action"`
	Order  scaffold.Order  `json:"order"`
}

type ReconcileResult struct {
	HouseholdID int64           `json:"household_id"`
	Counts      scaffold.Result `json:"counts"`
	Mutations   []Mutation      `json:"mutations"`
	Warnings    []string        `json:"warnings,omitempty"`
}

type ScaffoldSummary struct {
	Households int              `json:"households"`
	Counts     scaffold.Result  `json:"counts"`
	Failures   map[int64]string `json:"failures,omitempty"`
}

type HouseholdHeal struct {
	HouseholdID int64                    `json:"household_id"`
	Candidates  []scaffold.HealCandidate `json:"candidates"`
	Errors      []string                 `json:"errors,omitempty"`
	Counts      scaffold.Result          `json:"counts"`
}

type HealReport struct {
	SeasonID   int64            `json:"season_id"`
	DryRun     bool             `json:"dry_run"`
	Candidates int              `json:"candidates"`
	Households []HouseholdHeal  `json:"households"`
	Failures   map[int64]string `json:"failures,omitempty"`
}

type OrderView struct {
	scaffold.Order
	Date time.Time `json:"date"`
}

type HistoryView struct {
	ID        int64              `json:"id"`
	OrderID   *int64             `json:"order_id,omitempty"`
	Action    scaffold.Action    `json:"action"`
	CreatedAt time.Time          `json:"created_at"`
	Era       scaffold.Era       `json:"era,omitempty"`
	Snapshot  *scaffold.Snapshot `json:"snapshot,omitempty"`
}
