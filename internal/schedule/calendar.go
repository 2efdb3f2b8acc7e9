package schedule

import (
	"time"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r DateRange) Contains(d time.Time) bool {
	day := Day(d)
	return !day.Before(Day(r.Start)) && !day.After(Day(r.End))
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DinnerDates lists every cooking day in [start, end] that no holiday covers.
func DinnerDates(start, end time.Time, cookingDays weekday.Map[bool], holidays []DateRange) []time.Time {
	var out []time.Time
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		if !cookingDays.Get(d.Weekday()) {
			continue
		}
		if inHoliday(d, holidays) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func inHoliday(d time.Time, holidays []DateRange) bool {
	for _, h := range holidays {
		if h.Contains(d) {
			return true
		}
	}
	return false
}

// FirstCookingDate returns the earliest scheduled dinner date.
func FirstCookingDate(start, end time.Time, cookingDays weekday.Map[bool], holidays []DateRange) (time.Time, bool) {
	dates := DinnerDates(start, end, cookingDays, holidays)
	if len(dates) == 0 {
		return time.Time{}, false
	}
	return dates[0], true
}

// occurrence counts how many times d's weekday has come round since from.
func occurrence(from, d time.Time) int {
	from, d = Day(from), Day(d)
	offset := (int(d.Weekday()) - int(from.Weekday()) + weekday.Days) % weekday.Days
	first := from.AddDate(0, 0, offset)
	if d.Before(first) {
		return 0
	}
	return int(d.Sub(first).Hours()/24) / weekday.Days
}
