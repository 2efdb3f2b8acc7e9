package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/scaffold"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/weekday"
)

// householdState is what a reconciliation reads under lock before planning.
type householdState struct {
	Inhabitants map[int64]scaffold.Inhabitant
	Orders      []scaffold.Order
	History     []scaffold.HistoryRecord
}

type reconcileRequest struct {
	snap        *cache.SeasonSnapshot
	householdID int64
	mode        scaffold.Mode
	actorID     *int64
	dryRun      bool
	// before runs first in the transaction, ahead of the locked reads.
	before func(tx db.Tx) error
	// desired is called inside the transaction once the household is locked.
	desired func(st householdState) ([]scaffold.DesiredOrder, error)
}

// ReconcileHousehold brings the household's orders in line with desired for
// the active season.
func (s *PostgresStorage) ReconcileHousehold(ctx context.Context, householdID int64, desired []scaffold.DesiredOrder, mode scaffold.Mode, actorID *int64) (*ReconcileResult, error) {
	snap, err := s.activeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.reconcile(ctx, reconcileRequest{
		snap:        snap,
		householdID: householdID,
		mode:        mode,
		actorID:     actorID,
		desired: func(householdState) ([]scaffold.DesiredOrder, error) {
			return desired, nil
		},
	})
}

func (s *PostgresStorage) reconcile(ctx context.Context, req reconcileRequest) (*ReconcileResult, error) {
	now := s.now()
	log := s.logger.With(
		zap.Int64("household_id", req.householdID),
		zap.Int64("season_id", req.snap.Season.ID),
		zap.String("mode", string(req.mode)),
	)

	var plan scaffold.Result
	err := db.InTx(ctx, s.db, func(tx db.Tx) error {
		if req.before != nil {
			if err := req.before(tx); err != nil {
				return err
			}
		}
		inhRows, err := s.inhabitantRepo.GetByHouseholdTx(ctx, tx, req.householdID)
		if err != nil {
			return fmt.Errorf("get inhabitants of household %d: %w", req.householdID, err)
		}
		inhabitants, err := toInhabitants(inhRows)
		if err != nil {
			return err
		}
		orderRows, err := s.orderRepo.GetByHouseholdTx(ctx, tx, req.householdID, eventIDs(req.snap.Events))
		if err != nil {
			return fmt.Errorf("lock orders of household %d: %w", req.householdID, err)
		}
		historyRows, err := s.historyRepo.GetByHouseholdTx(ctx, tx, req.householdID, req.snap.Season.ID)
		if err != nil {
			return fmt.Errorf("get order history of household %d: %w", req.householdID, err)
		}

		st := householdState{
			Inhabitants: inhabitantIndex(inhabitants),
			Orders:      toOrders(orderRows),
			History:     toHistory(historyRows),
		}
		desired, err := req.desired(st)
		if err != nil {
			return err
		}
		if len(desired) == 0 {
			return nil
		}

		plan, err = scaffold.Plan(scaffold.Input{
			HouseholdID: req.householdID,
			Desired:     desired,
			Orders:      st.Orders,
			History:     st.History,
			Events:      eventIndex(req.snap.Events),
			Inhabitants: st.Inhabitants,
			Season:      toScaffoldSeason(req.snap),
			Policy:      s.policy,
			Now:         now,
			Mode:        req.mode,
			ActorID:     req.actorID,
		})
		if err != nil {
			return fmt.Errorf("plan household %d: %w", req.householdID, err)
		}
		if req.dryRun {
			return nil
		}
		return s.applyTx(ctx, tx, req.snap.Season.ID, req.householdID, plan.Operations, now)
	})
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("reconcile").Inc()
		return nil, conflict(err)
	}

	for _, w := range plan.Warnings {
		log.Warn("desired order skipped", zap.Error(w))
	}
	if !req.dryRun {
		recordOutcome(req.mode, plan)
	}
	if plan.Mutations() > 0 {
		log.Info("household reconciled",
			zap.Int("created", plan.Created),
			zap.Int("mode_updated", plan.ModeUpdated),
			zap.Int("released", plan.Released),
			zap.Int("claimed", plan.Claimed),
			zap.Int("deleted", plan.Deleted),
			zap.Bool("dry_run", req.dryRun),
		)
	}
	return buildResult(req.householdID, plan), nil
}

// applyTx performs the planned writes, then appends one history row per
// operation and queues the matching outbox events.
func (s *PostgresStorage) applyTx(ctx context.Context, tx db.Tx, seasonID, householdID int64, ops []scaffold.Operation, now time.Time) error {
	if len(ops) == 0 {
		return nil
	}

	var creates []*repository.Order
	var createIdx []int
	for i, op := range ops {
		switch op.Kind {
		case scaffold.OpCreate:
			row := fromOrder(op.Order)
			row.CreatedAt = now
			row.UpdatedAt = now
			creates = append(creates, row)
			createIdx = append(createIdx, i)
		case scaffold.OpDelete:
			if err := s.orderRepo.DeleteTx(ctx, tx, op.Order.ID, op.Order.Version); err != nil {
				return fmt.Errorf("delete order %d: %w", op.Order.ID, err)
			}
		default:
			row := fromOrder(op.Order)
			row.UpdatedAt = now
			if err := s.orderRepo.UpdateTx(ctx, tx, row); err != nil {
				return fmt.Errorf("%s order %d: %w", op.Kind, op.Order.ID, err)
			}
			ops[i].Order.Version = row.Version
		}
	}
	if len(creates) > 0 {
		if err := s.orderRepo.CreateBatchTx(ctx, tx, creates); err != nil {
			return fmt.Errorf("create orders: %w", err)
		}
		for k, row := range creates {
			ops[createIdx[k]].Order.ID = row.ID
			ops[createIdx[k]].Order.Version = row.Version
		}
	}

	entries := make([]*repository.OrderHistory, 0, len(ops))
	for _, op := range ops {
		snapshot, err := scaffold.EncodeSnapshot(op.Order)
		if err != nil {
			return err
		}
		orderID := op.Order.ID
		entries = append(entries, &repository.OrderHistory{
			OrderID:       &orderID,
			InhabitantID:  op.Order.InhabitantID,
			DinnerEventID: op.Order.DinnerEventID,
			SeasonID:      seasonID,
			Action:        string(op.Action),
			Snapshot:      snapshot,
			CreatedAt:     now,
		})
	}
	if err := s.historyRepo.CreateBatchTx(ctx, tx, entries); err != nil {
		return fmt.Errorf("append order history: %w", err)
	}
	return s.enqueueHistoryTx(ctx, tx, householdID, entries)
}

func recordOutcome(mode scaffold.Mode, r scaffold.Result) {
	m := string(mode)
	for outcome, n := range map[string]int{
		"created":      r.Created,
		"mode_updated": r.ModeUpdated,
		"released":     r.Released,
		"claimed":      r.Claimed,
		"deleted":      r.Deleted,
		"unchanged":    r.Unchanged,
		"skipped":      r.Skipped,
	} {
		if n > 0 {
			metrics.ReconcileOperationsTotal.WithLabelValues(m, outcome).Add(float64(n))
		}
	}
	if len(r.Warnings) > 0 {
		metrics.ReconcileWarningsTotal.Add(float64(len(r.Warnings)))
	}
}

func buildResult(householdID int64, plan scaffold.Result) *ReconcileResult {
	res := &ReconcileResult{
		HouseholdID: householdID,
		Counts:      plan,
		Mutations:   make([]Mutation, 0, len(plan.Operations)),
	}
	for _, op := range plan.Operations {
		res.Mutations = append(res.Mutations, Mutation{Kind: op.Kind, Action: op.Action, Order: op.Order})
	}
	for _, w := range plan.Warnings {
		res.Warnings = append(res.Warnings, w.Error())
	}
	return res
}

func addCounts(dst *scaffold.Result, src scaffold.Result) {
	dst.Created += src.Created
	dst.ModeUpdated += src.ModeUpdated
	dst.Released += src.Released
	dst.Claimed += src.Claimed
	dst.Deleted += src.Deleted
	dst.Unchanged += src.Unchanged
	dst.Skipped += src.Skipped
}

// upcomingEvents are the events preferences still apply to: not yet started,
// not consumed and not cancelled.
func (s *PostgresStorage) upcomingEvents(snap *cache.SeasonSnapshot, now time.Time) []scaffold.Event {
	var out []scaffold.Event
	for _, e := range snap.Events {
		if e.State != repository.EventScheduled && e.State != repository.EventAnnounced {
			continue
		}
		if !s.policy.DinnerStart(e.Date).After(now) {
			continue
		}
		out = append(out, scaffold.Event{ID: e.ID, SeasonID: e.SeasonID, Date: e.Date})
	}
	return out
}

// scaffoldHousehold turns stored preferences into orders. With only set,
// other inhabitants of the household are left alone. before, if not nil,
// runs in the same transaction ahead of the reads.
func (s *PostgresStorage) scaffoldHousehold(ctx context.Context, snap *cache.SeasonSnapshot, householdID int64, only *int64, before func(tx db.Tx) error) (*ReconcileResult, error) {
	events := s.upcomingEvents(snap, s.now())
	return s.reconcile(ctx, reconcileRequest{
		snap:        snap,
		householdID: householdID,
		mode:        scaffold.ModeSystem,
		before:      before,
		desired: func(st householdState) ([]scaffold.DesiredOrder, error) {
			ids := make([]int64, 0, len(st.Inhabitants))
			for id := range st.Inhabitants {
				if only == nil || *only == id {
					ids = append(ids, id)
				}
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

			var desired []scaffold.DesiredOrder
			for _, id := range ids {
				desired = append(desired, scaffold.DesiredFromPreferences(st.Inhabitants[id], events)...)
			}
			return desired, nil
		},
	})
}

func (s *PostgresStorage) ScaffoldHousehold(ctx context.Context, householdID int64) (*ReconcileResult, error) {
	snap, err := s.activeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.scaffoldHousehold(ctx, snap, householdID, nil, nil)
}

// ScaffoldAll re-runs preference scaffolding for every household. A failing
// household is reported and does not stop the others.
func (s *PostgresStorage) ScaffoldAll(ctx context.Context) (*ScaffoldSummary, error) {
	snap, err := s.activeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := s.inhabitantRepo.ListHouseholdIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}

	summary := &ScaffoldSummary{Households: len(ids), Failures: make(map[int64]string)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			res, err := s.scaffoldHousehold(gctx, snap, id, nil, nil)
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failures[id] = err.Error()
				s.logger.Warn("scaffold household failed", zap.Int64("household_id", id), zap.Error(err))
				return nil
			}
			addCounts(&summary.Counts, res.Counts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}

	s.logger.Debug("scaffold pass finished",
		zap.Int("households", summary.Households),
		zap.Int("failures", len(summary.Failures)),
		zap.Int("created", summary.Counts.Created),
		zap.Int("deleted", summary.Counts.Deleted),
	)
	return summary, nil
}

// UpdatePreferences stores the inhabitant's weekly preferences and scaffolds
// their orders for the active season in the same transaction, so a failed
// scaffold leaves the old preferences in place. Without an active season
// only the preferences are saved.
func (s *PostgresStorage) UpdatePreferences(ctx context.Context, inhabitantID int64, prefs *weekday.Map[scaffold.DinnerMode]) (*ReconcileResult, error) {
	raw, err := encodePreferences(prefs)
	if err != nil {
		return nil, err
	}
	inh, err := s.inhabitantRepo.GetByID(ctx, inhabitantID)
	if err != nil {
		return nil, notFound(err, "inhabitant %d", inhabitantID)
	}

	save := func(tx db.Tx) error {
		if err := s.inhabitantRepo.UpdatePreferencesTx(ctx, tx, inhabitantID, raw, s.now()); err != nil {
			return fmt.Errorf("update preferences of inhabitant %d: %w", inhabitantID, err)
		}
		return nil
	}

	snap, err := s.activeSnapshot(ctx)
	if errors.Is(err, ErrNoActiveSeason) {
		if err := db.InTx(ctx, s.db, save); err != nil {
			return nil, err
		}
		return &ReconcileResult{HouseholdID: inh.HouseholdID, Mutations: []Mutation{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.scaffoldHousehold(ctx, snap, inh.HouseholdID, &inhabitantID, save)
}

// Book applies one explicit user action: booking, changing the mode of,
// cancelling or claiming a single order.
func (s *PostgresStorage) Book(ctx context.Context, req BookingRequest) (*ReconcileResult, error) {
	inh, err := s.inhabitantRepo.GetByID(ctx, req.InhabitantID)
	if err != nil {
		return nil, notFound(err, "inhabitant %d", req.InhabitantID)
	}
	snap, err := s.activeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	d := scaffold.DesiredOrder{
		InhabitantID:    req.InhabitantID,
		DinnerEventID:   req.DinnerEventID,
		DinnerMode:      req.DinnerMode,
		TicketPriceID:   req.TicketPriceID,
		IsGuestTicket:   req.IsGuestTicket,
		ExistingOrderID: req.OrderID,
	}
	if req.Cancel {
		d.State = scaffold.Released
	}
	actor := req.ActorID
	return s.reconcile(ctx, reconcileRequest{
		snap:        snap,
		householdID: inh.HouseholdID,
		mode:        scaffold.ModeUser,
		actorID:     &actor,
		desired: func(householdState) ([]scaffold.DesiredOrder, error) {
			return []scaffold.DesiredOrder{d}, nil
		},
	})
}

// HouseholdOrders lists the household's orders in the active season by date.
func (s *PostgresStorage) HouseholdOrders(ctx context.Context, householdID int64) ([]OrderView, error) {
	snap, err := s.activeSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.orderRepo.GetByHousehold(ctx, householdID, snap.Season.ID)
	if err != nil {
		return nil, fmt.Errorf("get orders of household %d: %w", householdID, err)
	}

	events := eventIndex(snap.Events)
	out := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderView{Order: toOrder(r), Date: events[r.DinnerEventID].Date})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].InhabitantID < out[j].InhabitantID
	})
	return out, nil
}

// OrderHistory returns the audit trail of one key, oldest first. Snapshots
// that no longer decode are returned without a body.
func (s *PostgresStorage) OrderHistory(ctx context.Context, inhabitantID, dinnerEventID int64) ([]HistoryView, error) {
	rows, err := s.historyRepo.GetByKey(ctx, inhabitantID, dinnerEventID)
	if err != nil {
		return nil, fmt.Errorf("get order history: %w", err)
	}
	out := make([]HistoryView, 0, len(rows))
	for _, h := range rows {
		view := HistoryView{ID: h.ID, OrderID: h.OrderID, Action: scaffold.Action(h.Action), CreatedAt: h.CreatedAt}
		snap, era, err := scaffold.DecodeSnapshot(h.Snapshot)
		if err != nil {
			s.logger.Debug("undecodable order snapshot", zap.Int64("history_id", h.ID), zap.Error(err))
		} else {
			view.Snapshot = &snap
			view.Era = era
		}
		out = append(out, view)
	}
	return out, nil
}

// Headcount sums the household's weekday preferences by dinner mode.
func (s *PostgresStorage) Headcount(ctx context.Context, householdID int64) (weekday.Map[scaffold.Headcount], error) {
	rows, err := s.inhabitantRepo.GetByHousehold(ctx, householdID)
	if err != nil {
		return weekday.Map[scaffold.Headcount]{}, fmt.Errorf("get inhabitants of household %d: %w", householdID, err)
	}
	if len(rows) == 0 {
		return weekday.Map[scaffold.Headcount]{}, fmt.Errorf("household %d: %w", householdID, ErrNotFound)
	}
	inhabitants, err := toInhabitants(rows)
	if err != nil {
		return weekday.Map[scaffold.Headcount]{}, err
	}
	return scaffold.AggregatePreferences(inhabitants), nil
}
