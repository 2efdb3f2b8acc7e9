package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

var errShutdown = errors.New("publisher shutdown during batch processing")

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Publisher drains the outbox table into a Producer. Tasks are claimed in
// one transaction and sent outside of it, so a crash between the two leaves
// them PROCESSING rather than sending twice.
type Publisher struct {
	db             db.DB
	repo           storage.OutboxTaskRepository
	producer       Producer
	config         PublisherConfig
	logger         *zap.Logger
	timeNow        func() time.Time
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewPublisher(database db.DB, repo storage.OutboxTaskRepository, producer Producer, config PublisherConfig, logger *zap.Logger) *Publisher {
	return &Publisher{
		db:             database,
		repo:           repo,
		producer:       producer,
		config:         config,
		logger:         logger.Named("outbox"),
		timeNow:        time.Now,
		shutdownSignal: make(chan struct{}),
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.logger.Info("starting outbox publisher",
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("batch_size", p.config.BatchSize),
	)
	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := p.ProcessBatch(ctx); err != nil && !errors.Is(err, errShutdown) && ctx.Err() == nil {
				p.logger.Error("process outbox batch", zap.Error(err))
			}
		case <-p.shutdownSignal:
			p.logger.Info("outbox publisher stopping")
			return
		case <-ctx.Done():
			p.logger.Info("outbox publisher context cancelled")
			return
		}
	}
}

// Shutdown stops Run and closes the producer. It is safe to call more than once.
func (p *Publisher) Shutdown() {
	p.stopOnce.Do(func() {
		close(p.shutdownSignal)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			p.logger.Info("outbox publisher stopped")
		case <-time.After(30 * time.Second):
			p.logger.Warn("outbox publisher shutdown timed out")
		}

		if err := p.producer.Close(); err != nil {
			p.logger.Error("close producer", zap.Error(err))
		}
	})
}

// ProcessBatch claims up to BatchSize tasks and sends them. It returns how
// many were sent successfully.
func (p *Publisher) ProcessBatch(ctx context.Context) (int, error) {
	var tasks []*repository.OutboxTask
	err := db.InTx(ctx, p.db, func(tx db.Tx) error {
		var err error
		tasks, err = p.repo.GetProcessableTasks(ctx, tx, p.config.BatchSize, p.config.MaxAttempts)
		if err != nil {
			return fmt.Errorf("get processable tasks: %w", err)
		}
		for _, task := range tasks {
			err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessing, task.Attempts, nil, nil)
			if err != nil {
				return fmt.Errorf("mark task %s as processing: %w", task.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	p.logger.Debug("claimed outbox tasks", zap.Int("count", len(tasks)))

	sent := 0
	for _, task := range tasks {
		select {
		case <-p.shutdownSignal:
			return sent, errShutdown
		case <-ctx.Done():
			return sent, ctx.Err()
		default:
		}

		if err := p.processSingleTask(ctx, task); err != nil {
			p.logger.Warn("outbox task failed", zap.Stringer("task_id", task.ID), zap.Error(err))
			continue
		}
		sent++
	}
	return sent, nil
}

func (p *Publisher) processSingleTask(ctx context.Context, task *repository.OutboxTask) error {
	err := p.producer.SendMessage(ctx, task.Topic, messageKey(task), task.Payload)
	if err != nil {
		attempts := task.Attempts + 1
		errMsg := err.Error()
		result := "retry"
		if attempts >= p.config.MaxAttempts {
			result = "dead"
			p.logger.Error("outbox task reached max attempts",
				zap.Stringer("task_id", task.ID),
				zap.Int("attempts", attempts),
			)
		}
		metrics.OutboxMessagesTotal.WithLabelValues(result).Inc()

		if updateErr := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusFailed, attempts, &errMsg, nil); updateErr != nil {
			return fmt.Errorf("update task status after send failure %v: %w", err, updateErr)
		}
		return err
	}

	metrics.OutboxMessagesTotal.WithLabelValues("sent").Inc()
	now := p.timeNow().UTC()
	if err := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusDone, task.Attempts, nil, &now); err != nil {
		return fmt.Errorf("update task status after send: %w", err)
	}
	return nil
}

// messageKey keys order events by household so one household's history
// lands on one partition in order.
func messageKey(task *repository.OutboxTask) []byte {
	if household := gjson.GetBytes(task.Payload, "household_id"); household.Exists() {
		return []byte(household.Raw)
	}
	return []byte(task.ID.String())
}
