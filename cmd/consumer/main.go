package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/logger"
)

// The consumer tails the order_history topic and logs each order event. It
// is the reference reader for billing and the community calendar.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, _, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		config.Exitf("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()
	log = log.Named("consumer")

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal("KAFKA_BROKERS is not set")
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("close kafka reader", zap.Error(err))
		}
	}()

	log.Info("consumer connected", zap.String("topic", cfg.Kafka.Topic), zap.Strings("brokers", cfg.Kafka.Brokers))

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Info("consumer stopped")
				return
			}
			log.Error("read message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		event := gjson.ParseBytes(m.Value)
		log.Info("order event",
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.Time("time", m.Time),
			zap.Int64("household_id", event.Get("household_id").Int()),
			zap.Int64("inhabitant_id", event.Get("inhabitant_id").Int()),
			zap.Int64("dinner_event_id", event.Get("dinner_event_id").Int()),
			zap.String("action", event.Get("action").String()),
			zap.String("dinner_mode", event.Get("snapshot.order.dinnerMode").String()),
		)
	}
}
