package scaffold

import (
	"sort"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

// DesiredFromPreferences derives one desired order per dinner event whose
// weekday carries a preference. An unset weekday yields nothing, leaving any
// stored order for that day as it is.
func DesiredFromPreferences(inh Inhabitant, events []Event) []DesiredOrder {
	if inh.Preferences == nil {
		return nil
	}
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	var out []DesiredOrder
	for _, ev := range sorted {
		mode := inh.Preferences.Get(ev.Date.Weekday())
		if mode == "" {
			continue
		}
		out = append(out, DesiredOrder{
			InhabitantID:  inh.ID,
			DinnerEventID: ev.ID,
			DinnerMode:    mode,
		})
	}
	return out
}

type Headcount map[DinnerMode]int

// AggregatePreferences counts, per weekday, how many inhabitants want each
// mode. An unset weekday counts as DINEIN.
func AggregatePreferences(inhabitants []Inhabitant) weekday.Map[Headcount] {
	var out weekday.Map[Headcount]
	for i := range out {
		out[i] = Headcount{}
	}
	for _, inh := range inhabitants {
		for i := 0; i < weekday.Days; i++ {
			mode := DineIn
			if inh.Preferences != nil && inh.Preferences[i] != "" {
				mode = inh.Preferences[i]
			}
			out[i][mode]++
		}
	}
	return out
}
