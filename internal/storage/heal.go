package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/scaffold"
)

// Heal re-applies confirmed user bookings of the season that the stored
// orders no longer reflect. With dryRun nothing is written and the report
// shows what a real run would do.
func (s *PostgresStorage) Heal(ctx context.Context, seasonID int64, dryRun bool) (*HealReport, error) {
	snap, err := s.seasonSnapshot(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	ids, err := s.inhabitantRepo.ListHouseholdIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list households: %w", err)
	}

	events := eventIndex(snap.Events)
	report := &HealReport{SeasonID: seasonID, DryRun: dryRun, Failures: make(map[int64]string)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, id := range ids {
		g.Go(func() error {
			hh := HouseholdHeal{HouseholdID: id}
			res, err := s.reconcile(gctx, reconcileRequest{
				snap:        snap,
				householdID: id,
				mode:        scaffold.ModeHeal,
				dryRun:      dryRun,
				desired: func(st householdState) ([]scaffold.DesiredOrder, error) {
					plan := scaffold.PlanHeal(st.History, st.Orders)
					hh.Candidates = plan.Candidates
					hh.Errors = nil
					for _, e := range plan.Errors {
						hh.Errors = append(hh.Errors, e.Error())
					}

					desired := make([]scaffold.DesiredOrder, 0, len(plan.Desired))
					for _, d := range plan.Desired {
						if _, ok := events[d.DinnerEventID]; !ok {
							hh.Errors = append(hh.Errors, scaffold.HealError{Key: d.Key(), Err: scaffold.ErrDinnerEventNotFound}.Error())
							continue
						}
						if _, ok := st.Inhabitants[d.InhabitantID]; !ok {
							hh.Errors = append(hh.Errors, scaffold.HealError{Key: d.Key(), Err: scaffold.ErrInhabitantNotFound}.Error())
							continue
						}
						desired = append(desired, d)
					}
					return desired, nil
				},
			})
			if err != nil && gctx.Err() != nil {
				return gctx.Err()
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures[id] = err.Error()
				s.logger.Warn("heal household failed", zap.Int64("household_id", id), zap.Error(err))
				return nil
			}
			if len(hh.Candidates) == 0 && len(hh.Errors) == 0 {
				return nil
			}
			hh.Counts = res.Counts
			report.Candidates += len(hh.Candidates)
			report.Households = append(report.Households, hh)
			for _, c := range hh.Candidates {
				metrics.HealCandidatesTotal.WithLabelValues(string(c.Reason)).Inc()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	sort.Slice(report.Households, func(i, j int) bool {
		return report.Households[i].HouseholdID < report.Households[j].HouseholdID
	})
	s.logger.Info("heal finished",
		zap.Int64("season_id", seasonID),
		zap.Bool("dry_run", dryRun),
		zap.Int("candidates", report.Candidates),
		zap.Int("households", len(report.Households)),
		zap.Int("failures", len(report.Failures)),
	)
	return report, nil
}
