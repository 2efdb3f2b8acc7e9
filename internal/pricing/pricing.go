package pricing

import (
	"errors"
	"fmt"
	"time"
)

var ErrNoMatchingPrice = errors.New("no matching ticket price")

type TicketType string

const (
	Adult      TicketType = "ADULT"
	Child      TicketType = "CHILD"
	Baby       TicketType = "BABY"
	HungryBaby TicketType = "HUNGRY_BABY"
)

func (t TicketType) Valid() bool {
	switch t {
	case Adult, Child, Baby, HungryBaby:
		return true
	}
	return false
}

// TicketPrice is one bracket of a season's price list. A nil MaximumAgeLimit
// means the bracket has no upper bound.
type TicketPrice struct {
	ID              int64      `json:"id"`
	SeasonID        int64      `json:"season_id"`
	TicketType      TicketType `json:"ticket_type"`
	Price           int        `json:"price"`
	MaximumAgeLimit *int       `json:"maximum_age_limit,omitempty"`
	Description     string     `json:"description,omitempty"`
}

// AgeOn returns completed years between birth and onDate.
func AgeOn(birth, onDate time.Time) int {
	onDate = onDate.In(birth.Location())
	age := onDate.Year() - birth.Year()
	if onDate.Month() < birth.Month() || (onDate.Month() == birth.Month() && onDate.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func FindByID(prices []TicketPrice, id int64) (TicketPrice, bool) {
	for _, p := range prices {
		if p.ID == id {
			return p, true
		}
	}
	return TicketPrice{}, false
}

// Resolve picks the price for an inhabitant on a given date. An explicit ticket
// type wins; otherwise the bracket with the smallest age limit that still
// covers the age is chosen, falling back to an unbounded bracket.
func Resolve(birthDate *time.Time, explicit *TicketType, prices []TicketPrice, onDate time.Time) (TicketPrice, error) {
	if explicit != nil {
		for _, p := range prices {
			if p.TicketType == *explicit {
				return p, nil
			}
		}
		return TicketPrice{}, fmt.Errorf("%w: ticket type %s not in price list", ErrNoMatchingPrice, *explicit)
	}

	var (
		best      *TicketPrice
		unbounded *TicketPrice
	)
	for i := range prices {
		p := &prices[i]
		if p.MaximumAgeLimit == nil {
			if unbounded == nil {
				unbounded = p
			}
			continue
		}
		if birthDate == nil {
			continue
		}
		age := AgeOn(*birthDate, onDate)
		if *p.MaximumAgeLimit < age {
			continue
		}
		if best == nil || *p.MaximumAgeLimit < *best.MaximumAgeLimit {
			best = p
		}
	}

	switch {
	case best != nil:
		return *best, nil
	case unbounded != nil:
		return *unbounded, nil
	}
	return TicketPrice{}, fmt.Errorf("%w: no bracket for date %s", ErrNoMatchingPrice, onDate.Format(time.DateOnly))
}
