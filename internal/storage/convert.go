package storage

import (
	"encoding/json"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/pricing"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/scaffold"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

func toOrder(o *repository.Order) scaffold.Order {
	return scaffold.Order{
		ID:             o.ID,
		InhabitantID:   o.InhabitantID,
		DinnerEventID:  o.DinnerEventID,
		TicketPriceID:  o.TicketPriceID,
		DinnerMode:     scaffold.DinnerMode(o.DinnerMode),
		State:          scaffold.OrderState(o.State),
		IsGuestTicket:  o.IsGuestTicket,
		BookedByUserID: o.BookedByUserID,
		PriceAtBooking: o.PriceAtBooking,
		Version:        o.Version,
	}
}

func toOrders(rows []*repository.Order) []scaffold.Order {
	out := make([]scaffold.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, toOrder(r))
	}
	return out
}

func fromOrder(o scaffold.Order) *repository.Order {
	return &repository.Order{
		ID:             o.ID,
		InhabitantID:   o.InhabitantID,
		DinnerEventID:  o.DinnerEventID,
		TicketPriceID:  o.TicketPriceID,
		DinnerMode:     string(o.DinnerMode),
		State:          string(o.State),
		IsGuestTicket:  o.IsGuestTicket,
		BookedByUserID: o.BookedByUserID,
		PriceAtBooking: o.PriceAtBooking,
		Version:        o.Version,
	}
}

func toHistory(rows []*repository.OrderHistory) []scaffold.HistoryRecord {
	out := make([]scaffold.HistoryRecord, 0, len(rows))
	for _, h := range rows {
		out = append(out, scaffold.HistoryRecord{
			ID:            h.ID,
			InhabitantID:  h.InhabitantID,
			DinnerEventID: h.DinnerEventID,
			SeasonID:      h.SeasonID,
			Action:        scaffold.Action(h.Action),
			Snapshot:      h.Snapshot,
			CreatedAt:     h.CreatedAt,
		})
	}
	return out
}

// decodePreferences reads the stored jsonb column. SQL NULL and JSON null
// both mean "no preferences".
func decodePreferences(raw json.RawMessage) (*weekday.Map[scaffold.DinnerMode], error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var prefs weekday.Map[scaffold.DinnerMode]
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, fmt.Errorf("decode dinner preferences: %w", err)
	}
	return &prefs, nil
}

func encodePreferences(prefs *weekday.Map[scaffold.DinnerMode]) (json.RawMessage, error) {
	if prefs == nil {
		return nil, nil
	}
	for _, mode := range prefs {
		if mode != "" && !mode.Valid() {
			return nil, fmt.Errorf("%w: mode %q", ErrInvalidPreferences, mode)
		}
	}
	raw, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("encode dinner preferences: %w", err)
	}
	return raw, nil
}

func toInhabitant(row *repository.Inhabitant) (scaffold.Inhabitant, error) {
	prefs, err := decodePreferences(row.DinnerPreferences)
	if err != nil {
		return scaffold.Inhabitant{}, fmt.Errorf("inhabitant %d: %w", row.ID, err)
	}
	return scaffold.Inhabitant{
		ID:          row.ID,
		HouseholdID: row.HouseholdID,
		BirthDate:   row.BirthDate,
		Preferences: prefs,
	}, nil
}

func toInhabitants(rows []*repository.Inhabitant) ([]scaffold.Inhabitant, error) {
	out := make([]scaffold.Inhabitant, 0, len(rows))
	for _, r := range rows {
		inh, err := toInhabitant(r)
		if err != nil {
			return nil, err
		}
		out = append(out, inh)
	}
	return out, nil
}

func inhabitantIndex(inhabitants []scaffold.Inhabitant) map[int64]scaffold.Inhabitant {
	out := make(map[int64]scaffold.Inhabitant, len(inhabitants))
	for _, inh := range inhabitants {
		out[inh.ID] = inh
	}
	return out
}

func toPrices(rows []*repository.TicketPrice) []pricing.TicketPrice {
	out := make([]pricing.TicketPrice, 0, len(rows))
	for _, r := range rows {
		out = append(out, pricing.TicketPrice{
			ID:              r.ID,
			SeasonID:        r.SeasonID,
			TicketType:      pricing.TicketType(r.TicketType),
			Price:           r.Price,
			MaximumAgeLimit: r.MaximumAgeLimit,
			Description:     r.Description,
		})
	}
	return out
}

func toScaffoldSeason(snap *cache.SeasonSnapshot) scaffold.Season {
	return scaffold.Season{
		ID:                                snap.Season.ID,
		TicketIsCancellableDaysBefore:     snap.Season.TicketIsCancellableDaysBefore,
		DiningModeIsEditableMinutesBefore: snap.Season.DiningModeIsEditableMinutesBefore,
		Prices:                            toPrices(snap.Prices),
	}
}

func eventIndex(rows []*repository.DinnerEvent) map[int64]scaffold.Event {
	out := make(map[int64]scaffold.Event, len(rows))
	for _, e := range rows {
		out[e.ID] = scaffold.Event{ID: e.ID, SeasonID: e.SeasonID, Date: e.Date}
	}
	return out
}

func eventIDs(rows []*repository.DinnerEvent) []int64 {
	out := make([]int64, 0, len(rows))
	for _, e := range rows {
		out = append(out, e.ID)
	}
	return out
}

func toScheduleEvents(rows []*repository.DinnerEvent) []schedule.Event {
	out := make([]schedule.Event, 0, len(rows))
	for _, e := range rows {
		out = append(out, schedule.Event{ID: e.ID, Date: e.Date, CookingTeamID: e.CookingTeamID})
	}
	return out
}

func decodeAffinity(raw json.RawMessage) (*weekday.Map[bool], error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var affinity weekday.Map[bool]
	if err := json.Unmarshal(raw, &affinity); err != nil {
		return nil, fmt.Errorf("decode affinity: %w", err)
	}
	return &affinity, nil
}

func toTeams(rows []*repository.CookingTeam) ([]schedule.Team, error) {
	out := make([]schedule.Team, 0, len(rows))
	for _, r := range rows {
		affinity, err := decodeAffinity(r.Affinity)
		if err != nil {
			return nil, fmt.Errorf("cooking team %d: %w", r.ID, err)
		}
		out = append(out, schedule.Team{ID: r.ID, Name: r.Name, Affinity: affinity})
	}
	return out, nil
}
