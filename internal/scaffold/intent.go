package scaffold

import (
	"errors"
	"sort"
)

// LatestUserActions returns, per key, the most recent history record written
// on behalf of a person. System rows never count as intent. Guest tickets
// share their host's key and are ignored.
func LatestUserActions(history []HistoryRecord) map[Key]HistoryRecord {
	sorted := make([]HistoryRecord, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	latest := make(map[Key]HistoryRecord)
	for _, h := range sorted {
		if !h.Action.ByUser() || isGuestRecord(h) {
			continue
		}
		latest[h.Key()] = h
	}
	return latest
}

// ConfirmedKeys are keys whose last deliberate act was a booking or claim.
func ConfirmedKeys(history []HistoryRecord) map[Key]bool {
	out := make(map[Key]bool)
	for key, h := range LatestUserActions(history) {
		if h.Action == UserBooked || h.Action == UserClaimed {
			out[key] = true
		}
	}
	return out
}

// CancelledKeys are keys whose last deliberate act was a cancellation.
func CancelledKeys(history []HistoryRecord) map[Key]bool {
	out := make(map[Key]bool)
	for key, h := range LatestUserActions(history) {
		if h.Action == UserCancelled {
			out[key] = true
		}
	}
	return out
}

func isGuestRecord(h HistoryRecord) bool {
	s, _, err := DecodeSnapshot(h.Snapshot)
	if err != nil && !errors.Is(err, ErrSnapshotMissingDinnerMode) {
		return false
	}
	return s.IsGuestTicket
}
