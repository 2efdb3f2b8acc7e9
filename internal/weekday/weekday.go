// Package weekday holds a fixed seven slot map keyed by weekday, Monday first.
package weekday

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const Days = 7

var names = [Days]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type Map[T any] [Days]T

// Index returns the Monday-first slot of a weekday.
func Index(d time.Weekday) int {
	return (int(d) + 6) % Days
}

func WeekdayAt(i int) time.Weekday {
	return time.Weekday((((i % Days) + Days + 1) % Days))
}

// All returns every weekday in canonical Monday-first order.
func All() []time.Weekday {
	out := make([]time.Weekday, Days)
	for i := range out {
		out[i] = WeekdayAt(i)
	}
	return out
}

func Name(d time.Weekday) string {
	return names[Index(d)]
}

func Parse(name string) (time.Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range names {
		if candidate == n {
			return WeekdayAt(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

func Fill[T any](v T) Map[T] {
	var m Map[T]
	for i := range m {
		m[i] = v
	}
	return m
}

func (m Map[T]) Get(d time.Weekday) T {
	return m[Index(d)]
}

func (m *Map[T]) Set(d time.Weekday, v T) {
	m[Index(d)] = v
}

func FromWeekdays(days ...time.Weekday) Map[bool] {
	var m Map[bool]
	for _, d := range days {
		m.Set(d, true)
	}
	return m
}

// Selected lists the weekdays flagged true, Monday first.
func Selected(m Map[bool]) []time.Weekday {
	var out []time.Weekday
	for i, on := range m {
		if on {
			out = append(out, WeekdayAt(i))
		}
	}
	return out
}

func FirstSelected(m Map[bool]) (time.Weekday, bool) {
	for i, on := range m {
		if on {
			return WeekdayAt(i), true
		}
	}
	return 0, false
}

func Any(m Map[bool]) bool {
	_, ok := FirstSelected(m)
	return ok
}

func Equal[T comparable](a, b Map[T]) bool {
	return a == b
}

func (m Map[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", names[i], err)
		}
		buf.WriteString(`"` + names[i] + `":`)
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Map[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*m = Map[T]{}
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var out Map[T]
	for key, value := range raw {
		d, err := Parse(key)
		if err != nil {
			return err
		}
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			continue
		}
		var v T
		if err := json.Unmarshal(value, &v); err != nil {
			return fmt.Errorf("unmarshal %s: %w", key, err)
		}
		out.Set(d, v)
	}
	*m = out
	return nil
}

// Value stores the map in a jsonb column.
func (m Map[T]) Value() (driver.Value, error) {
	return m.MarshalJSON()
}

func (m *Map[T]) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = Map[T]{}
		return nil
	case []byte:
		return m.UnmarshalJSON(v)
	case string:
		return m.UnmarshalJSON([]byte(v))
	default:
		return errors.New("weekday: unsupported scan source")
	}
}
