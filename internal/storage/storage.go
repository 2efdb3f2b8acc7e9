package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
)

var (
	ErrNotFound               = errors.New("not found")
	ErrNoActiveSeason         = errors.New("no active season")
	ErrInvalidSeason          = errors.New("invalid season")
	ErrInvalidPreferences     = errors.New("invalid dinner preferences")
	ErrConcurrentModification = errors.New("orders were modified concurrently, retry")
)

type Repositories struct {
	Seasons     SeasonRepository
	Prices      TicketPriceRepository
	Events      DinnerEventRepository
	Teams       CookingTeamRepository
	Inhabitants InhabitantRepository
	Orders      OrderRepository
	History     HistoryRepository
	Outbox      OutboxTaskRepository
}

type PostgresStorage struct {
	db             db.DB
	seasonRepo     SeasonRepository
	priceRepo      TicketPriceRepository
	eventRepo      DinnerEventRepository
	teamRepo       CookingTeamRepository
	inhabitantRepo InhabitantRepository
	orderRepo      OrderRepository
	historyRepo    HistoryRepository
	outboxRepo     OutboxTaskRepository

	seasons     *cache.SeasonCache
	policy      schedule.Policy
	logger      *zap.Logger
	concurrency int
	timeNow     func() time.Time
}

type Option func(*PostgresStorage)

// WithConcurrency bounds how many households ScaffoldAll and Heal work on at once.
func WithConcurrency(n int) Option {
	return func(s *PostgresStorage) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithSeasonCache(c *cache.SeasonCache) Option {
	return func(s *PostgresStorage) {
		s.seasons = c
	}
}

func NewStorage(database db.DB, repos Repositories, policy schedule.Policy, logger *zap.Logger, opts ...Option) *PostgresStorage {
	s := &PostgresStorage{
		db:             database,
		seasonRepo:     repos.Seasons,
		priceRepo:      repos.Prices,
		eventRepo:      repos.Events,
		teamRepo:       repos.Teams,
		inhabitantRepo: repos.Inhabitants,
		orderRepo:      repos.Orders,
		historyRepo:    repos.History,
		outboxRepo:     repos.Outbox,
		seasons:        cache.NewSeasonCache(),
		policy:         policy,
		logger:         logger,
		concurrency:    4,
		timeNow:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PostgresStorage) now() time.Time {
	return s.timeNow().UTC()
}

// activeSnapshot returns the active season with its prices and events.
func (s *PostgresStorage) activeSnapshot(ctx context.Context) (*cache.SeasonSnapshot, error) {
	if snap, ok := s.seasons.Active(); ok {
		return snap, nil
	}
	season, err := s.seasonRepo.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNoActiveSeason
		}
		return nil, fmt.Errorf("get active season: %w", err)
	}
	return s.loadSnapshot(ctx, season)
}

// ActiveSeasonID returns the id of the active season, or ErrNoActiveSeason.
func (s *PostgresStorage) ActiveSeasonID(ctx context.Context) (int64, error) {
	snap, err := s.activeSnapshot(ctx)
	if err != nil {
		return 0, err
	}
	return snap.Season.ID, nil
}

func (s *PostgresStorage) seasonSnapshot(ctx context.Context, seasonID int64) (*cache.SeasonSnapshot, error) {
	if snap, ok := s.seasons.Get(seasonID); ok {
		return snap, nil
	}
	season, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return nil, notFound(err, "season %d", seasonID)
	}
	return s.loadSnapshot(ctx, season)
}

func (s *PostgresStorage) loadSnapshot(ctx context.Context, season *repository.Season) (*cache.SeasonSnapshot, error) {
	prices, err := s.priceRepo.GetBySeason(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("get ticket prices for season %d: %w", season.ID, err)
	}
	events, err := s.eventRepo.GetBySeason(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("get dinner events for season %d: %w", season.ID, err)
	}
	snap := &cache.SeasonSnapshot{Season: season, Prices: prices, Events: events}
	s.seasons.Set(snap)
	return snap, nil
}

// notFound turns a repository miss into ErrNotFound and wraps anything else.
func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, repository.ErrObjectNotFound) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("get %s: %w", what, err)
}

// conflict maps a lost optimistic-lock race to ErrConcurrentModification.
func conflict(err error) error {
	if errors.Is(err, repository.ErrConflict) {
		metrics.ConcurrentModificationsTotal.Inc()
		return fmt.Errorf("%w: %v", ErrConcurrentModification, err)
	}
	return err
}
