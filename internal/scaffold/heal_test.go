package scaffold

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanHeal(t *testing.T) {
	base := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	missing := Key{InhabitantID: 1, DinnerEventID: 10}
	drifted := Key{InhabitantID: 1, DinnerEventID: 11}
	released := Key{InhabitantID: 2, DinnerEventID: 10}
	intact := Key{InhabitantID: 2, DinnerEventID: 11}
	cancelled := Key{InhabitantID: 3, DinnerEventID: 10}
	broken := Key{InhabitantID: 3, DinnerEventID: 11}
	systemOnly := Key{InhabitantID: 4, DinnerEventID: 10}

	history := []HistoryRecord{
		historyRow(1, missing, UserBooked, Takeaway, base),
		historyRow(2, drifted, UserBooked, DineIn, base),
		historyRow(3, drifted, SystemUpdated, Takeaway, base.Add(time.Hour)),
		historyRow(4, released, UserClaimed, DineInLate, base),
		historyRow(5, released, SystemReleased, DineInLate, base.Add(time.Hour)),
		historyRow(6, intact, UserBooked, DineIn, base),
		historyRow(7, cancelled, UserBooked, DineIn, base),
		historyRow(8, cancelled, UserCancelled, DineIn, base.Add(time.Hour)),
		{ID: 9, InhabitantID: broken.InhabitantID, DinnerEventID: broken.DinnerEventID, Action: UserBooked,
			Snapshot: json.RawMessage(`{"orderData":{"inhabitantId":3,"dinnerEventId":11}}`), CreatedAt: base},
		historyRow(10, systemOnly, SystemCreated, DineIn, base),
	}

	relOrder := booked(21, released.InhabitantID, released.DinnerEventID, DineInLate)
	relOrder.State = Released
	orders := []Order{
		booked(20, drifted.InhabitantID, drifted.DinnerEventID, Takeaway),
		relOrder,
		booked(22, intact.InhabitantID, intact.DinnerEventID, DineIn),
	}

	plan := PlanHeal(history, orders)

	require.Len(t, plan.Candidates, 3)
	assert.Equal(t, missing, plan.Candidates[0].Key)
	assert.Equal(t, HealMissing, plan.Candidates[0].Reason)
	assert.Equal(t, Takeaway, plan.Candidates[0].SnapshotMode)
	assert.Equal(t, EraEnvelope, plan.Candidates[0].SnapshotEra)

	assert.Equal(t, drifted, plan.Candidates[1].Key)
	assert.Equal(t, HealModeChanged, plan.Candidates[1].Reason)
	assert.Equal(t, Takeaway, plan.Candidates[1].CurrentMode)
	assert.Equal(t, DineIn, plan.Candidates[1].SnapshotMode)

	assert.Equal(t, released, plan.Candidates[2].Key)
	assert.Equal(t, HealReleased, plan.Candidates[2].Reason)
	assert.Equal(t, UserClaimed, plan.Candidates[2].ConfirmedBy)

	require.Len(t, plan.Errors, 1)
	assert.Equal(t, broken, plan.Errors[0].Key)
	assert.ErrorIs(t, plan.Errors[0].Err, ErrSnapshotMissingDinnerMode)

	require.Len(t, plan.Desired, 3)
	for i, d := range plan.Desired {
		assert.Equal(t, plan.Candidates[i].Key, d.Key())
		assert.Equal(t, plan.Candidates[i].SnapshotMode, d.DinnerMode)
		assert.Equal(t, Booked, d.State)
		require.NotNil(t, d.TicketPriceID)
		assert.Equal(t, int64(1), *d.TicketPriceID)
	}
}

func TestHealThroughPlan(t *testing.T) {
	key := Key{InhabitantID: adultID, DinnerEventID: farEventID}
	history := []HistoryRecord{historyRow(1, key, UserBooked, Takeaway, now.Add(-time.Hour))}
	orders := []Order{booked(30, adultID, farEventID, DineIn)}

	heal := PlanHeal(history, orders)
	require.Len(t, heal.Desired, 1)

	res, err := Plan(testInput(ModeHeal, heal.Desired, orders, history))
	require.NoError(t, err)
	require.Len(t, res.Operations, 1)
	assert.Equal(t, OpUpdateMode, res.Operations[0].Kind)
	assert.Equal(t, SystemUpdated, res.Operations[0].Action)
	assert.Equal(t, Takeaway, res.Operations[0].Order.DinnerMode)

	healed := apply(orders, res.Operations)
	assert.Empty(t, PlanHeal(history, healed).Candidates)
}
