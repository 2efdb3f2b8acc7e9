package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

const SnapshotVersion = 2

var (
	ErrInvalidSnapshot           = errors.New("invalid order snapshot")
	ErrSnapshotMissingDinnerMode = errors.New("order snapshot has no dinnerMode")
)

// Era names the payload layout a snapshot was written with.
type Era string

const (
	EraEnvelope      Era = "envelope"
	EraOrderSnapshot Era = "orderSnapshot"
	EraOrderData     Era = "orderData"
	EraDirect        Era = "direct"
)

type Snapshot struct {
	OrderID        int64      `json:"orderId"`
	InhabitantID   int64      `json:"inhabitantId"`
	DinnerEventID  int64      `json:"dinnerEventId"`
	TicketPriceID  int64      `json:"ticketPriceId"`
	DinnerMode     DinnerMode `json:"dinnerMode"`
	State          OrderState `json:"state"`
	IsGuestTicket  bool       `json:"isGuestTicket"`
	BookedByUserID *int64     `json:"bookedByUserId,omitempty"`
	PriceAtBooking int        `json:"priceAtBooking"`
}

type envelope struct {
	Version int      `json:"version"`
	Order   Snapshot `json:"order"`
}

func SnapshotOf(o Order) Snapshot {
	return Snapshot{
		OrderID:        o.ID,
		InhabitantID:   o.InhabitantID,
		DinnerEventID:  o.DinnerEventID,
		TicketPriceID:  o.TicketPriceID,
		DinnerMode:     o.DinnerMode,
		State:          o.State,
		IsGuestTicket:  o.IsGuestTicket,
		BookedByUserID: o.BookedByUserID,
		PriceAtBooking: o.PriceAtBooking,
	}
}

// EncodeSnapshot writes the current envelope layout.
func EncodeSnapshot(o Order) (json.RawMessage, error) {
	raw, err := json.Marshal(envelope{Version: SnapshotVersion, Order: SnapshotOf(o)})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return raw, nil
}

// DecodeSnapshot reads any layout the audit table has held over time.
func DecodeSnapshot(raw []byte) (Snapshot, Era, error) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return Snapshot{}, "", ErrInvalidSnapshot
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return Snapshot{}, "", ErrInvalidSnapshot
	}

	payload, era := root, EraDirect
	switch {
	case root.Get("version").Exists() && root.Get("order").IsObject():
		payload, era = root.Get("order"), EraEnvelope
	case root.Get("orderSnapshot").IsObject():
		payload, era = root.Get("orderSnapshot"), EraOrderSnapshot
	case root.Get("orderData").IsObject():
		payload, era = root.Get("orderData"), EraOrderData
	}

	var s Snapshot
	if err := json.Unmarshal([]byte(payload.Raw), &s); err != nil {
		return Snapshot{}, era, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if mode := payload.Get("dinnerMode"); !mode.Exists() || mode.String() == "" {
		return s, era, ErrSnapshotMissingDinnerMode
	}
	return s, era, nil
}
