package scaffold

import (
	"fmt"
	"sort"
	"time"
)

type HealReason string

const (
	HealMissing     HealReason = "missing"
	HealModeChanged HealReason = "mode_changed"
	HealReleased    HealReason = "released"
)

type HealCandidate struct {
	Key           Key        `json:"key"`
	Reason        HealReason `json:"reason"`
	ConfirmedBy   Action     `json:"confirmed_by"`
	ConfirmedAt   time.Time  `json:"confirmed_at"`
	SnapshotMode  DinnerMode `json:"snapshot_mode"`
	CurrentMode   DinnerMode `json:"current_mode,omitempty"`
	CurrentState  OrderState `json:"current_state,omitempty"`
	SnapshotEra   Era        `json:"snapshot_era"`
	TicketPriceID int64      `json:"ticket_price_id"`
}

type HealError struct {
	Key Key   `json:"key"`
	Err error `json:"-"`
}

func (e HealError) Error() string {
	return fmt.Sprintf("inhabitant %d, dinner event %d: %v", e.Key.InhabitantID, e.Key.DinnerEventID, e.Err)
}

type HealPlan struct {
	Candidates []HealCandidate
	Errors     []HealError
	Desired    []DesiredOrder
}

// PlanHeal replays the audit trail for confirmed keys and lists the ones whose
// stored order no longer matches the confirmed booking.
func PlanHeal(history []HistoryRecord, orders []Order) HealPlan {
	byKey := make(map[Key]Order)
	for _, o := range orders {
		if !o.IsGuestTicket {
			byKey[o.Key()] = o
		}
	}

	latest := LatestUserActions(history)
	keys := make([]Key, 0, len(latest))
	for k := range latest {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].InhabitantID != keys[j].InhabitantID {
			return keys[i].InhabitantID < keys[j].InhabitantID
		}
		return keys[i].DinnerEventID < keys[j].DinnerEventID
	})

	var plan HealPlan
	for _, key := range keys {
		rec := latest[key]
		if rec.Action != UserBooked && rec.Action != UserClaimed {
			continue
		}
		snap, era, err := DecodeSnapshot(rec.Snapshot)
		if err != nil {
			plan.Errors = append(plan.Errors, HealError{Key: key, Err: err})
			continue
		}

		cand := HealCandidate{
			Key:           key,
			ConfirmedBy:   rec.Action,
			ConfirmedAt:   rec.CreatedAt,
			SnapshotMode:  snap.DinnerMode,
			SnapshotEra:   era,
			TicketPriceID: snap.TicketPriceID,
		}
		cur, exists := byKey[key]
		switch {
		case !exists:
			cand.Reason = HealMissing
		case cur.State == Released:
			cand.Reason = HealReleased
		case cur.DinnerMode != snap.DinnerMode:
			cand.Reason = HealModeChanged
		default:
			continue
		}
		if exists {
			cand.CurrentMode = cur.DinnerMode
			cand.CurrentState = cur.State
		}

		var ticketPriceID *int64
		if snap.TicketPriceID != 0 {
			id := snap.TicketPriceID
			ticketPriceID = &id
		}
		plan.Candidates = append(plan.Candidates, cand)
		plan.Desired = append(plan.Desired, DesiredOrder{
			InhabitantID:  key.InhabitantID,
			DinnerEventID: key.DinnerEventID,
			DinnerMode:    snap.DinnerMode,
			TicketPriceID: ticketPriceID,
			State:         Booked,
		})
	}
	return plan
}
