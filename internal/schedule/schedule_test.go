package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func affinity(days ...time.Weekday) *weekday.Map[bool] {
	m := weekday.FromWeekdays(days...)
	return &m
}

func teamIDs(teams []Team) []int64 {
	ids := make([]int64, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}

func TestPolicy_CanModifyOrders(t *testing.T) {
	cph, err := time.LoadLocation("Europe/Copenhagen")
	require.NoError(t, err)
	p := NewPolicy(18, 0, cph)
	dinner := day(2025, time.March, 17)

	start := p.DinnerStart(dinner)
	assert.Equal(t, time.Date(2025, time.March, 17, 18, 0, 0, 0, cph), start)

	deadline := p.Deadline(dinner, 8, 0)
	assert.Equal(t, time.Date(2025, time.March, 9, 18, 0, 0, 0, cph), deadline)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "ten days before", now: start.AddDate(0, 0, -10), want: true},
		{name: "one second before deadline", now: deadline.Add(-time.Second), want: true},
		{name: "exactly at deadline", now: deadline, want: false},
		{name: "two days before", now: start.AddDate(0, 0, -2), want: false},
		{name: "after dinner", now: start.Add(time.Hour), want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.CanModifyOrders(tc.now, dinner, 8, 0))
		})
	}
}

func TestPolicy_CanEditDiningMode(t *testing.T) {
	p := NewPolicy(18, 0, nil)
	dinner := day(2025, time.March, 17)
	start := p.DinnerStart(dinner)

	assert.True(t, p.CanEditDiningMode(start.Add(-91*time.Minute), dinner, 90))
	assert.False(t, p.CanEditDiningMode(start.Add(-90*time.Minute), dinner, 90))
	assert.False(t, p.CanEditDiningMode(start.Add(-time.Minute), dinner, 90))
}

func TestDinnerDates(t *testing.T) {
	cooking := weekday.FromWeekdays(time.Monday, time.Wednesday, time.Friday)
	holidays := []DateRange{{Start: day(2025, time.January, 8), End: day(2025, time.January, 10)}}

	got := DinnerDates(day(2025, time.January, 6), day(2025, time.January, 15), cooking, holidays)

	assert.Equal(t, []time.Time{
		day(2025, time.January, 6),
		day(2025, time.January, 13),
		day(2025, time.January, 15),
	}, got)

	assert.Empty(t, DinnerDates(day(2025, time.January, 6), day(2025, time.January, 15), weekday.Map[bool]{}, nil))

	first, ok := FirstCookingDate(day(2025, time.January, 7), day(2025, time.January, 15), cooking, holidays)
	require.True(t, ok)
	assert.Equal(t, day(2025, time.January, 13), first)
}

func TestAssignAffinities(t *testing.T) {
	cooking := weekday.FromWeekdays(time.Monday, time.Wednesday, time.Friday)
	monday := day(2025, time.January, 6)

	t.Run("one day rotation from a monday", func(t *testing.T) {
		teams := []Team{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

		got := AssignAffinities(teams, cooking, 1, monday)

		byID := map[int64]*weekday.Map[bool]{}
		for _, tm := range got {
			byID[tm.ID] = tm.Affinity
		}
		assert.Equal(t, affinity(time.Monday), byID[1])
		assert.Equal(t, affinity(time.Wednesday), byID[2])
		assert.Equal(t, affinity(time.Friday), byID[3])
		assert.Nil(t, teams[0].Affinity)
	})

	t.Run("start offset follows first cooking date", func(t *testing.T) {
		teams := []Team{{ID: 1}, {ID: 2}, {ID: 3}}
		wednesday := day(2025, time.January, 8)

		got := AssignAffinities(teams, cooking, 1, wednesday)

		assert.Equal(t, affinity(time.Wednesday), got[0].Affinity)
		assert.Equal(t, affinity(time.Friday), got[1].Affinity)
		assert.Equal(t, affinity(time.Monday), got[2].Affinity)
	})

	t.Run("blocks wrap around the cooking week", func(t *testing.T) {
		teams := []Team{{ID: 1}, {ID: 2}, {ID: 3}}

		got := AssignAffinities(teams, cooking, 2, monday)

		assert.Equal(t, affinity(time.Monday, time.Wednesday), got[0].Affinity)
		assert.Equal(t, affinity(time.Friday, time.Monday), got[1].Affinity)
		assert.Equal(t, affinity(time.Wednesday, time.Friday), got[2].Affinity)
	})

	t.Run("manual affinities are preserved and skipped", func(t *testing.T) {
		manual := affinity(time.Sunday)
		teams := []Team{{ID: 1, Affinity: manual}, {ID: 2}, {ID: 3}}

		got := AssignAffinities(teams, cooking, 1, monday)

		assert.Same(t, manual, got[0].Affinity)
		assert.Equal(t, affinity(time.Sunday), got[0].Affinity)
		assert.Equal(t, affinity(time.Monday), got[1].Affinity)
		assert.Equal(t, affinity(time.Wednesday), got[2].Affinity)
	})

	t.Run("no cooking days is a no-op", func(t *testing.T) {
		teams := []Team{{ID: 1}}
		got := AssignAffinities(teams, weekday.Map[bool]{}, 1, monday)
		assert.Nil(t, got[0].Affinity)
	})

	t.Run("blocks never overlap while teams fit the week", func(t *testing.T) {
		week := weekday.FromWeekdays(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday)
		teams := []Team{{ID: 1}, {ID: 2}, {ID: 3}}

		got := AssignAffinities(teams, week, 2, monday)

		seen := map[time.Weekday]int64{}
		for _, tm := range got {
			require.NotNil(t, tm.Affinity)
			days := weekday.Selected(*tm.Affinity)
			assert.Len(t, days, 2)
			for _, d := range days {
				_, dup := seen[d]
				assert.False(t, dup, "weekday %s assigned twice", d)
				seen[d] = tm.ID
			}
		}
		assert.Len(t, seen, 6)
	})
}

func TestCreateTeamRoster(t *testing.T) {
	teams := []Team{
		{ID: 1, Name: "Mon B", Affinity: affinity(time.Monday)},
		{ID: 2, Name: "Mon A", Affinity: affinity(time.Monday)},
		{ID: 3, Name: "Wed A", Affinity: affinity(time.Wednesday)},
		{ID: 4, Name: "Fri A", Affinity: affinity(time.Friday)},
		{ID: 5, Name: "Wed B", Affinity: affinity(time.Wednesday, time.Friday)},
		{ID: 6, Name: "Loose"},
		{ID: 7, Name: "Empty", Affinity: affinity()},
		{ID: 8, Name: "Mon C", Affinity: affinity(time.Monday)},
	}

	t.Run("zig-zag from monday", func(t *testing.T) {
		got := CreateTeamRoster(teams, time.Monday)
		assert.Equal(t, []int64{2, 3, 4, 7, 1, 5, 8}, teamIDs(got))
	})

	t.Run("circular distance from wednesday", func(t *testing.T) {
		got := CreateTeamRoster(teams, time.Wednesday)
		assert.Equal(t, []int64{3, 4, 2, 7, 5, 1, 8}, teamIDs(got))
	})

	t.Run("same bucket never adjacent while others remain", func(t *testing.T) {
		got := CreateTeamRoster(teams, time.Monday)
		for i := 1; i < len(got)-1; i++ {
			a, _ := weekday.FirstSelected(*got[i-1].Affinity)
			b, _ := weekday.FirstSelected(*got[i].Affinity)
			if a == b {
				t.Fatalf("teams %d and %d share a bucket at positions %d/%d", got[i-1].ID, got[i].ID, i-1, i)
			}
		}
	})
}

func TestAssignTeamsToEvents(t *testing.T) {
	cooking := weekday.FromWeekdays(time.Monday, time.Wednesday, time.Friday)
	first := day(2025, time.January, 6)
	dates := DinnerDates(first, day(2025, time.January, 19), cooking, nil)
	require.Len(t, dates, 6)

	events := make([]Event, len(dates))
	for i, d := range dates {
		events[i] = Event{ID: int64(i + 1), Date: d}
	}

	t.Run("two day blocks stay consecutive", func(t *testing.T) {
		teams := AssignAffinities([]Team{{ID: 1}, {ID: 2}, {ID: 3}}, cooking, 2, first)

		got := AssignTeamsToEvents(events, teams, first)

		var assigned []int64
		for _, e := range got {
			require.NotNil(t, e.CookingTeamID)
			assigned = append(assigned, *e.CookingTeamID)
		}
		assert.Equal(t, []int64{1, 1, 2, 2, 3, 3}, assigned)
	})

	t.Run("existing assignments and uncovered weekdays", func(t *testing.T) {
		manual := int64(42)
		withManual := make([]Event, len(events))
		copy(withManual, events)
		withManual[0].CookingTeamID = &manual

		teams := []Team{{ID: 1, Affinity: affinity(time.Monday)}, {ID: 2, Affinity: affinity(time.Monday)}}

		got := AssignTeamsToEvents(withManual, teams, first)

		assert.Equal(t, int64(42), *got[0].CookingTeamID)
		assert.Nil(t, got[1].CookingTeamID)
		assert.Nil(t, got[2].CookingTeamID)
		require.NotNil(t, got[3].CookingTeamID)
		assert.Equal(t, int64(2), *got[3].CookingTeamID)
		assert.Nil(t, events[0].CookingTeamID)
	})
}
