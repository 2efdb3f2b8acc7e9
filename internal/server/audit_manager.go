package server

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AuditManager batches request audit entries and writes them through zap
// from a small worker pool.
type AuditManager struct {
	logger      *zap.Logger
	workerCount int
	batchSize   int
	timeout     time.Duration

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once

	wg           sync.WaitGroup
	pendingMu    sync.Mutex
	pendingCount int
}

func NewAuditManager(logger *zap.Logger, workerCount, batchSize int, timeout time.Duration) *AuditManager {
	return &AuditManager{
		logger:      logger.Named("audit"),
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Debug("audit manager shutting down")
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Debug("audit manager stopped", zap.Int("pending", m.Pending()))
		case <-ctx.Done():
			m.logger.Warn("audit manager shutdown interrupted", zap.Int("pending", m.Pending()))
		}
	})
}

func (m *AuditManager) monitorShutdown(ctx context.Context) {
	select {
	case <-ctx.Done():
		m.Shutdown(context.Background())
	case <-m.shutdownCh:
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}

	go m.monitorShutdown(ctx)
}

func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	m.updatePendingCount(1)

	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.emergencyLog(entry)
	case <-m.shutdownCh:
		m.emergencyLog(entry)
	}
}

// Pending counts entries accepted but not yet written.
func (m *AuditManager) Pending() int {
	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	return m.pendingCount
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		// drain what was accepted before the stop signal
		for {
			select {
			case entry := <-m.inputChan:
				batch = append(batch, entry)
				continue
			default:
			}
			break
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		m.writeBatch(-1, batchCopy)
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for batch := range m.batchChan {
		m.writeBatch(id, batch)
	}
}

func (m *AuditManager) emergencyLog(entry AuditLogEntry) {
	m.logger.Warn("audit entry written directly", zap.Object("entry", entry))
	m.updatePendingCount(-1)
}

func (m *AuditManager) writeBatch(workerID int, batch []AuditLogEntry) {
	m.logger.Info("audit batch", zap.Int("worker", workerID), zap.Int("size", len(batch)), batchField(batch))
	m.updatePendingCount(-len(batch))
}

func (m *AuditManager) updatePendingCount(delta int) {
	m.pendingMu.Lock()
	defer m.pendingMu.Unlock()
	m.pendingCount += delta
}
