package schedule

import (
	"sort"
	"strings"
	"time"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

type Team struct {
	ID       int64
	Name     string
	Affinity *weekday.Map[bool]
}

type Event struct {
	ID            int64
	Date          time.Time
	CookingTeamID *int64
}

// AssignAffinities gives every team without an affinity a contiguous block of
// consecutiveCookingDays cooking weekdays. Blocks follow each other around the
// cooking week starting at the weekday of the first cooking date. Teams that
// already carry an affinity are returned untouched.
func AssignAffinities(teams []Team, cookingDays weekday.Map[bool], consecutiveCookingDays int, firstCookingDate time.Time) []Team {
	out := make([]Team, len(teams))
	copy(out, teams)

	days := weekday.Selected(cookingDays)
	if len(days) == 0 {
		return out
	}
	if consecutiveCookingDays < 1 {
		consecutiveCookingDays = 1
	}

	startOffset := 0
	for i, d := range days {
		if d == firstCookingDate.Weekday() {
			startOffset = i
			break
		}
	}

	var pending []int
	for i, t := range out {
		if t.Affinity == nil {
			pending = append(pending, i)
		}
	}
	sort.SliceStable(pending, func(a, b int) bool {
		return out[pending[a]].ID < out[pending[b]].ID
	})

	for n, idx := range pending {
		var affinity weekday.Map[bool]
		base := startOffset + n*consecutiveCookingDays
		for k := 0; k < consecutiveCookingDays; k++ {
			affinity.Set(days[(base+k)%len(days)], true)
		}
		out[idx].Affinity = &affinity
	}
	return out
}

// CreateTeamRoster buckets teams by the first weekday of their affinity,
// orders buckets by circular distance from startDay and interleaves them
// round by round. Teams without an affinity are left out.
func CreateTeamRoster(teams []Team, startDay time.Weekday) []Team {
	type bucket struct {
		distance int
		teams    []Team
	}

	byDay := make(map[time.Weekday]*bucket)
	var buckets []*bucket
	for _, t := range teams {
		if t.Affinity == nil {
			continue
		}
		distance := weekday.Days
		first, ok := weekday.FirstSelected(*t.Affinity)
		if ok {
			distance = (weekday.Index(first) - weekday.Index(startDay) + weekday.Days) % weekday.Days
		} else {
			first = time.Weekday(-1)
		}
		b, found := byDay[first]
		if !found {
			b = &bucket{distance: distance}
			byDay[first] = b
			buckets = append(buckets, b)
		}
		b.teams = append(b.teams, t)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].distance < buckets[j].distance
	})

	longest := 0
	for _, b := range buckets {
		sort.SliceStable(b.teams, func(i, j int) bool {
			return strings.ToLower(b.teams[i].Name) < strings.ToLower(b.teams[j].Name)
		})
		if len(b.teams) > longest {
			longest = len(b.teams)
		}
	}

	roster := make([]Team, 0, len(teams))
	for round := 0; round < longest; round++ {
		for _, b := range buckets {
			if round < len(b.teams) {
				roster = append(roster, b.teams[round])
			}
		}
	}
	return roster
}

// AssignTeamsToEvents fills in the cooking team of every event that has none.
// Teams whose affinity covers the event's weekday take turns, in id order,
// by how many times that weekday has occurred since the first cooking date.
// Holidays therefore skip a turn rather than shift the rotation.
func AssignTeamsToEvents(events []Event, teams []Team, firstCookingDate time.Time) []Event {
	out := make([]Event, len(events))
	copy(out, events)

	var eligible weekday.Map[[]Team]
	sorted := make([]Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, t := range sorted {
		if t.Affinity == nil {
			continue
		}
		for _, d := range weekday.Selected(*t.Affinity) {
			eligible.Set(d, append(eligible.Get(d), t))
		}
	}

	for i, e := range out {
		if e.CookingTeamID != nil {
			continue
		}
		candidates := eligible.Get(e.Date.Weekday())
		if len(candidates) == 0 {
			continue
		}
		team := candidates[occurrence(firstCookingDate, e.Date)%len(candidates)]
		id := team.ID
		out[i].CookingTeamID = &id
	}
	return out
}
