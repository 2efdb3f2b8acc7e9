package scaffold

import (
	"errors"
	"fmt"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
)

var (
	ErrInhabitantNotFound    = errors.New("inhabitant not found in household")
	ErrDinnerEventNotFound   = errors.New("dinner event not found")
	ErrEventOutsideSeason    = errors.New("dinner event belongs to another season")
	ErrOrderNotFound         = errors.New("existing order not found")
	ErrOrderKeyMismatch      = errors.New("existing order belongs to another key")
	ErrDuplicateDesiredOrder = errors.New("duplicate desired order for key")
	ErrInvalidDinnerMode     = errors.New("invalid dinner mode")
)

type OpKind string

const (
	OpCreate     OpKind = "create"
	OpUpdateMode OpKind = "mode_update"
	OpRelease    OpKind = "release"
	OpClaim      OpKind = "claim"
	OpDelete     OpKind = "delete"
)

// Operation is one write the caller must perform. Order holds the row as it
// should look afterwards; for a delete it is the row being removed.
type Operation struct {
	Kind     OpKind
	Key      Key
	Order    Order
	Previous *Order
	Action   Action
}

type Warning struct {
	Key Key
	Err error
}

func (w Warning) Error() string {
	return fmt.Sprintf("inhabitant %d, dinner event %d: %v", w.Key.InhabitantID, w.Key.DinnerEventID, w.Err)
}

type Result struct {
	Created     int `json:"created"`
	ModeUpdated int `json:"mode_updated"`
	Released    int `json:"released"`
	Claimed     int `json:"claimed"`
	Deleted     int `json:"deleted"`
	// Unchanged includes keys the deadline policy holds still, so a re-run
	// reports the same counts. Skipped counts keys dropped with a warning.
	Unchanged   int `json:"unchanged"`
	Skipped     int `json:"skipped"`

	Operations []Operation `json:"-"`
	Warnings   []Warning   `json:"-"`
}

func (r Result) Mutations() int {
	return len(r.Operations)
}

type Input struct {
	HouseholdID int64
	Desired     []DesiredOrder
	Orders      []Order
	History     []HistoryRecord
	Events      map[int64]Event
	Inhabitants map[int64]Inhabitant
	Season      Season
	Policy      schedule.Policy
	Now         time.Time
	Mode        Mode
	ActorID     *int64
}

// Plan compares desired orders with the stored ones and returns the minimal
// set of writes. It never touches keys outside the desired list.
func Plan(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	p := planner{
		in:        in,
		byKey:     make(map[Key]Order),
		byID:      make(map[int64]Order),
		confirmed: ConfirmedKeys(in.History),
		cancelled: CancelledKeys(in.History),
	}
	for _, o := range in.Orders {
		p.byID[o.ID] = o
		if !o.IsGuestTicket {
			p.byKey[o.Key()] = o
		}
	}

	for _, d := range in.Desired {
		p.reconcile(d)
	}
	return p.res, nil
}

func validate(in Input) error {
	seen := make(map[Key]bool)
	byID := make(map[int64]Order, len(in.Orders))
	for _, o := range in.Orders {
		byID[o.ID] = o
	}

	for _, d := range in.Desired {
		key := d.Key()
		inh, ok := in.Inhabitants[d.InhabitantID]
		if !ok || inh.HouseholdID != in.HouseholdID {
			return fmt.Errorf("%w: %d", ErrInhabitantNotFound, d.InhabitantID)
		}
		ev, ok := in.Events[d.DinnerEventID]
		if !ok {
			return fmt.Errorf("%w: %d", ErrDinnerEventNotFound, d.DinnerEventID)
		}
		if ev.SeasonID != in.Season.ID {
			return fmt.Errorf("%w: event %d, season %d", ErrEventOutsideSeason, ev.ID, in.Season.ID)
		}
		if !d.DinnerMode.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidDinnerMode, d.DinnerMode)
		}
		if d.ExistingOrderID != nil {
			o, ok := byID[*d.ExistingOrderID]
			if !ok {
				return fmt.Errorf("%w: %d", ErrOrderNotFound, *d.ExistingOrderID)
			}
			if o.Key() != key || o.IsGuestTicket != d.IsGuestTicket {
				return fmt.Errorf("%w: order %d is inhabitant %d, dinner event %d", ErrOrderKeyMismatch, o.ID, o.InhabitantID, o.DinnerEventID)
			}
		}
		if d.IsGuestTicket {
			continue
		}
		if seen[key] {
			return fmt.Errorf("%w: inhabitant %d, dinner event %d", ErrDuplicateDesiredOrder, key.InhabitantID, key.DinnerEventID)
		}
		seen[key] = true
	}
	return nil
}

type planner struct {
	in        Input
	byKey     map[Key]Order
	byID      map[int64]Order
	confirmed map[Key]bool
	cancelled map[Key]bool
	res       Result
}

func (p *planner) current(d DesiredOrder) (Order, bool) {
	if d.ExistingOrderID != nil {
		o, ok := p.byID[*d.ExistingOrderID]
		return o, ok
	}
	if d.IsGuestTicket {
		return Order{}, false
	}
	o, ok := p.byKey[d.Key()]
	return o, ok
}

// pinned reports whether a system pass must leave the key alone.
func (p *planner) pinned(d DesiredOrder, cur Order, exists bool) bool {
	if p.in.Mode != ModeSystem {
		return false
	}
	if exists && cur.IsGuestTicket {
		return true
	}
	key := d.Key()
	if p.confirmed[key] {
		return true
	}
	return p.cancelled[key] && d.wantsSeat()
}

func (p *planner) reconcile(d DesiredOrder) {
	cur, exists := p.current(d)
	if p.pinned(d, cur, exists) {
		p.res.Unchanged++
		return
	}

	ev := p.in.Events[d.DinnerEventID]
	season := p.in.Season
	canModify := p.in.Policy.CanModifyOrders(p.in.Now, ev.Date, season.TicketIsCancellableDaysBefore, 0)
	wants := d.wantsSeat()

	switch {
	case !exists && !wants:
		p.res.Unchanged++

	case !exists:
		if !canModify {
			p.res.Unchanged++
			return
		}
		p.create(d, ev)

	case cur.State == Booked && !wants:
		if canModify {
			p.emit(OpDelete, cur, &cur)
			p.res.Deleted++
			return
		}
		next := cur
		next.State = Released
		p.emit(OpRelease, next, &cur)
		p.res.Released++

	case cur.State == Released && !wants:
		p.res.Unchanged++

	case cur.State == Released:
		next := cur
		next.State = Booked
		next.DinnerMode = d.DinnerMode
		if !p.refreshPrice(d, ev, &next) {
			return
		}
		p.emit(OpClaim, next, &cur)
		p.res.Claimed++

	case cur.DinnerMode == d.DinnerMode:
		p.res.Unchanged++

	default:
		if !p.in.Policy.CanEditDiningMode(p.in.Now, ev.Date, season.DiningModeIsEditableMinutesBefore) {
			p.res.Unchanged++
			return
		}
		next := cur
		next.DinnerMode = d.DinnerMode
		if !p.refreshPrice(d, ev, &next) {
			return
		}
		p.emit(OpUpdateMode, next, &cur)
		p.res.ModeUpdated++
	}
}

func (p *planner) create(d DesiredOrder, ev Event) {
	price, err := p.resolvePrice(d, ev)
	if err != nil {
		p.warn(d.Key(), err)
		return
	}
	o := Order{
		InhabitantID:   d.InhabitantID,
		DinnerEventID:  d.DinnerEventID,
		TicketPriceID:  price.ID,
		DinnerMode:     d.DinnerMode,
		State:          Booked,
		IsGuestTicket:  d.IsGuestTicket,
		BookedByUserID: p.in.ActorID,
		PriceAtBooking: price.Price,
	}
	p.emit(OpCreate, o, nil)
	p.res.Created++
}

// refreshPrice keeps the captured price unless the order's ticket price has
// disappeared from the season's list.
func (p *planner) refreshPrice(d DesiredOrder, ev Event, o *Order) bool {
	if _, ok := pricing.FindByID(p.in.Season.Prices, o.TicketPriceID); ok {
		return true
	}
	price, err := p.resolvePrice(d, ev)
	if err != nil {
		p.warn(d.Key(), err)
		return false
	}
	o.TicketPriceID = price.ID
	o.PriceAtBooking = price.Price
	return true
}

func (p *planner) resolvePrice(d DesiredOrder, ev Event) (pricing.TicketPrice, error) {
	prices := p.in.Season.Prices
	if d.TicketPriceID != nil {
		if tp, ok := pricing.FindByID(prices, *d.TicketPriceID); ok {
			return tp, nil
		}
	}
	birth := p.in.Inhabitants[d.InhabitantID].BirthDate
	if d.IsGuestTicket {
		birth = nil
	}
	return pricing.Resolve(birth, nil, prices, ev.Date)
}

func (p *planner) warn(key Key, err error) {
	p.res.Skipped++
	p.res.Warnings = append(p.res.Warnings, Warning{Key: key, Err: err})
}

func (p *planner) emit(kind OpKind, o Order, prev *Order) {
	var previous *Order
	if prev != nil {
		cp := *prev
		previous = &cp
	}
	p.res.Operations = append(p.res.Operations, Operation{
		Kind:     kind,
		Key:      o.Key(),
		Order:    o,
		Previous: previous,
		Action:   actionFor(p.in.Mode, kind),
	})
}

func actionFor(mode Mode, kind OpKind) Action {
	if mode == ModeUser {
		switch kind {
		case OpClaim:
			return UserClaimed
		case OpRelease, OpDelete:
			return UserCancelled
		default:
			return UserBooked
		}
	}
	switch kind {
	case OpCreate:
		return SystemCreated
	case OpUpdateMode:
		return SystemUpdated
	case OpRelease:
		return SystemReleased
	case OpClaim:
		return SystemClaimed
	default:
		return SystemDeleted
	}
}
