package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	mock_database "gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db/mocks"
	mock_kafka "gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/kafka/mocks"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	mock_storage "gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage/mocks"
)

type publisherFixture struct {
	db        *mock_database.MockDB
	tx        *mock_database.MockTx
	repo      *mock_storage.MockOutboxTaskRepository
	producer  *mock_kafka.MockProducer
	publisher *Publisher
}

var fixedNow = time.Date(2025, time.March, 8, 12, 0, 0, 0, time.UTC)

func newPublisherFixture(t *testing.T) *publisherFixture {
	ctrl := gomock.NewController(t)
	f := &publisherFixture{
		db:       mock_database.NewMockDB(ctrl),
		tx:       mock_database.NewMockTx(ctrl),
		repo:     mock_storage.NewMockOutboxTaskRepository(ctrl),
		producer: mock_kafka.NewMockProducer(ctrl),
	}
	f.publisher = NewPublisher(f.db, f.repo, f.producer, PublisherConfig{
		PollInterval: time.Second,
		BatchSize:    10,
		MaxAttempts:  3,
	}, zap.NewNop())
	f.publisher.timeNow = func() time.Time { return fixedNow }
	return f
}

func task(householdID int64, attempts int) *repository.OutboxTask {
	payload, _ := json.Marshal(repository.OrderEventPayload{HistoryID: 1, HouseholdID: householdID, Action: "USER_BOOKED"})
	return &repository.OutboxTask{
		ID:       uuid.New(),
		Status:   repository.TaskStatusCreated,
		Payload:  payload,
		Topic:    repository.TopicOrderHistory,
		Attempts: attempts,
	}
}

func TestPublisher_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("sends claimed tasks and records failures", func(t *testing.T) {
		f := newPublisherFixture(t)
		ok, failing := task(7, 0), task(8, 2)

		f.db.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
		f.repo.EXPECT().GetProcessableTasks(gomock.Any(), f.tx, 10, 3).
			Return([]*repository.OutboxTask{ok, failing}, nil)
		f.repo.EXPECT().UpdateTaskStatusTx(gomock.Any(), f.tx, ok.ID, repository.TaskStatusProcessing, 0, nil, nil).Return(nil)
		f.repo.EXPECT().UpdateTaskStatusTx(gomock.Any(), f.tx, failing.ID, repository.TaskStatusProcessing, 2, nil, nil).Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		f.producer.EXPECT().SendMessage(gomock.Any(), repository.TopicOrderHistory, []byte("7"), []byte(ok.Payload)).Return(nil)
		f.repo.EXPECT().UpdateTaskStatus(gomock.Any(), f.db, ok.ID, repository.TaskStatusDone, 0, nil, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DB, _ uuid.UUID, _ repository.TaskStatus, _ int, _ *string, completedAt *time.Time) error {
				require.NotNil(t, completedAt)
				assert.Equal(t, fixedNow, *completedAt)
				return nil
			})

		f.producer.EXPECT().SendMessage(gomock.Any(), repository.TopicOrderHistory, []byte("8"), []byte(failing.Payload)).
			Return(errors.New("leader not available"))
		f.repo.EXPECT().UpdateTaskStatus(gomock.Any(), f.db, failing.ID, repository.TaskStatusFailed, 3, gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ db.DB, _ uuid.UUID, _ repository.TaskStatus, _ int, lastError *string, _ *time.Time) error {
				require.NotNil(t, lastError)
				assert.Contains(t, *lastError, "leader not available")
				return nil
			})

		sent, err := f.publisher.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("empty outbox", func(t *testing.T) {
		f := newPublisherFixture(t)

		f.db.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
		f.repo.EXPECT().GetProcessableTasks(gomock.Any(), f.tx, 10, 3).Return(nil, nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		sent, err := f.publisher.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("claim failure rolls back", func(t *testing.T) {
		f := newPublisherFixture(t)

		f.db.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
		f.repo.EXPECT().GetProcessableTasks(gomock.Any(), f.tx, 10, 3).Return(nil, errors.New("relation does not exist"))
		f.tx.EXPECT().Rollback(gomock.Any()).Return(nil)

		_, err := f.publisher.ProcessBatch(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "get processable tasks")
	})

	t.Run("stops after shutdown", func(t *testing.T) {
		f := newPublisherFixture(t)
		first := task(7, 0)

		f.db.EXPECT().BeginTx(gomock.Any()).Return(f.tx, nil)
		f.repo.EXPECT().GetProcessableTasks(gomock.Any(), f.tx, 10, 3).Return([]*repository.OutboxTask{first}, nil)
		f.repo.EXPECT().UpdateTaskStatusTx(gomock.Any(), f.tx, first.ID, repository.TaskStatusProcessing, 0, nil, nil).Return(nil)
		f.tx.EXPECT().Commit(gomock.Any()).Return(nil)
		f.tx.EXPECT().Rollback(gomock.Any()).Return(nil)
		f.producer.EXPECT().Close().Return(nil)

		f.publisher.Shutdown()
		sent, err := f.publisher.ProcessBatch(ctx)

		assert.ErrorIs(t, err, errShutdown)
		assert.Zero(t, sent)
	})
}

func TestMessageKey(t *testing.T) {
	withHousehold := task(42, 0)
	assert.Equal(t, []byte("42"), messageKey(withHousehold))

	raw := &repository.OutboxTask{ID: uuid.New(), Payload: json.RawMessage(`{"other":true}`)}
	assert.Equal(t, []byte(raw.ID.String()), messageKey(raw))
}

func TestConsoleProducer(t *testing.T) {
	p := NewConsoleProducer(zap.NewNop())
	require.NoError(t, p.SendMessage(context.Background(), "order_history", []byte("1"), []byte(`{}`)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.SendMessage(ctx, "order_history", nil, nil), context.Canceled)
	assert.NoError(t, p.Close())
}
