//go:generate mockgen -source ./maintenance.go -destination=./mocks/maintenance.go -package=mock_maintenance
package maintenance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

const (
	JobScaffold     = "scaffold"
	JobTeamSchedule = "team_schedule"
)

type Storage interface {
	ActiveSeasonID(ctx context.Context) (int64, error)
	ScaffoldAll(ctx context.Context) (*storage.ScaffoldSummary, error)
	RebuildTeamSchedule(ctx context.Context, seasonID int64) (*storage.ScheduleResult, error)
}

// Scheduler re-applies every household's preferences to the active season
// and fills in missing cooking team assignments on a fixed interval. Both
// runs are idempotent so overlapping or repeated runs only cost reads.
type Scheduler struct {
	storage  Storage
	logger   *zap.Logger
	interval time.Duration
	sched    gocron.Scheduler
}

func New(storage Storage, logger *zap.Logger, interval time.Duration) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("maintenance interval must be positive, got %s", interval)
	}
	logger = logger.Named("maintenance")
	sched, err := gocron.NewScheduler(
		gocron.WithLogger(zapLogger{logger.Sugar()}),
		gocron.WithStopTimeout(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{storage: storage, logger: logger, interval: interval, sched: sched}, nil
}

// Start registers the jobs and starts the scheduler. The team schedule job
// runs first so new events have their team before anyone books.
func (s *Scheduler) Start(ctx context.Context) error {
	jobs := []struct {
		name string
		run  func(context.Context) error
	}{
		{JobTeamSchedule, s.RunTeamSchedule},
		{JobScaffold, s.RunScaffold},
	}
	for _, j := range jobs {
		run := j.run
		_, err := s.sched.NewJob(
			gocron.DurationJob(s.interval),
			gocron.NewTask(func() {
				_ = run(ctx)
			}),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
			gocron.WithStartAt(gocron.WithStartImmediately()),
		)
		if err != nil {
			return fmt.Errorf("register %s job: %w", j.name, err)
		}
	}

	s.sched.Start()
	s.logger.Info("maintenance scheduler started", zap.Duration("interval", s.interval), zap.Int("jobs", len(s.sched.Jobs())))
	return nil
}

func (s *Scheduler) Shutdown() error {
	if err := s.sched.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	s.logger.Info("maintenance scheduler stopped")
	return nil
}

// RunScaffold reconciles every household of the active season once.
func (s *Scheduler) RunScaffold(ctx context.Context) error {
	started := time.Now()
	summary, err := s.storage.ScaffoldAll(ctx)
	if err != nil {
		return s.finish(JobScaffold, err)
	}

	fields := []zap.Field{
		zap.Int("households", summary.Households),
		zap.Int("created", summary.Counts.Created),
		zap.Int("mode_updated", summary.Counts.ModeUpdated),
		zap.Int("released", summary.Counts.Released),
		zap.Int("claimed", summary.Counts.Claimed),
		zap.Int("deleted", summary.Counts.Deleted),
		zap.Int("unchanged", summary.Counts.Unchanged),
		zap.Duration("took", time.Since(started)),
	}
	if len(summary.Failures) > 0 {
		s.logger.Warn("scaffold pass finished with failures", append(fields, zap.Int("failures", len(summary.Failures)))...)
		metrics.MaintenanceRunsTotal.WithLabelValues(JobScaffold, "partial").Inc()
		return nil
	}
	s.logger.Info("scaffold pass finished", fields...)
	metrics.MaintenanceRunsTotal.WithLabelValues(JobScaffold, "ok").Inc()
	return nil
}

// RunTeamSchedule assigns affinities and teams for the active season where
// they are still missing.
func (s *Scheduler) RunTeamSchedule(ctx context.Context) error {
	seasonID, err := s.storage.ActiveSeasonID(ctx)
	if err != nil {
		return s.finish(JobTeamSchedule, err)
	}
	res, err := s.storage.RebuildTeamSchedule(ctx, seasonID)
	if err != nil {
		return s.finish(JobTeamSchedule, err)
	}
	if res.AffinitiesAssigned > 0 || res.EventsAssigned > 0 {
		s.logger.Info("team schedule updated",
			zap.Int64("season_id", seasonID),
			zap.Int("affinities_assigned", res.AffinitiesAssigned),
			zap.Int("events_assigned", res.EventsAssigned),
		)
	}
	metrics.MaintenanceRunsTotal.WithLabelValues(JobTeamSchedule, "ok").Inc()
	return nil
}

// finish records a run that ended in err. Having no active season is a
// normal state between seasons and is not reported as a failure.
func (s *Scheduler) finish(job string, err error) error {
	if errors.Is(err, storage.ErrNoActiveSeason) {
		s.logger.Debug("no active season, nothing to do", zap.String("job", job))
		metrics.MaintenanceRunsTotal.WithLabelValues(job, "skipped").Inc()
		return nil
	}
	s.logger.Error("maintenance run failed", zap.String("job", job), zap.Error(err))
	metrics.MaintenanceRunsTotal.WithLabelValues(job, "error").Inc()
	return err
}

type zapLogger struct {
	*zap.SugaredLogger
}

func (l zapLogger) Debug(msg string, args ...any) { l.Debugw(msg, args...) }
func (l zapLogger) Info(msg string, args ...any)  { l.Infow(msg, args...) }
func (l zapLogger) Warn(msg string, args ...any)  { l.Warnw(msg, args...) }
func (l zapLogger) Error(msg string, args ...any) { l.Errorw(msg, args...) }
