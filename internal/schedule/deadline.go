package schedule

import "time"

// Policy knows when a dinner starts. Lead times are subtracted from that
// instant to decide whether orders may still change.
type Policy struct {
	StartHour   int
	StartMinute int
	Location    *time.Location
}

func NewPolicy(startHour, startMinute int, loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	return Policy{StartHour: startHour, StartMinute: startMinute, Location: loc}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// DinnerStart places the calendar date of a dinner at the configured start time.
func (p Policy) DinnerStart(dinnerDate time.Time) time.Time {
	y, m, d := dinnerDate.Date()
	return time.Date(y, m, d, p.StartHour, p.StartMinute, 0, 0, p.location())
}

func (p Policy) Deadline(dinnerDate time.Time, leadDays, leadMinutes int) time.Time {
	return p.DinnerStart(dinnerDate).
		AddDate(0, 0, -leadDays).
		Add(-time.Duration(leadMinutes) * time.Minute)
}

// CanModifyOrders reports whether now is strictly before the deadline.
func (p Policy) CanModifyOrders(now, dinnerDate time.Time, leadDays, leadMinutes int) bool {
	return now.Before(p.Deadline(dinnerDate, leadDays, leadMinutes))
}

func (p Policy) CanEditDiningMode(now, dinnerDate time.Time, leadMinutes int) bool {
	return p.CanModifyOrders(now, dinnerDate, 0, leadMinutes)
}
