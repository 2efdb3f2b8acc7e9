package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/maintenance"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, envPath, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		config.Exitf("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()
	if envPath != "" {
		log.Info("loaded env file", zap.String("path", envPath))
	}

	loc, err := cfg.Dinner.Location()
	if err != nil {
		log.Fatal("dinner timezone", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DB.DSN())
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	defer database.Close()

	created, err := db.InitAdmin(ctx, database, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal("init admin", zap.Error(err))
	}
	if created {
		log.Info("admin user created", zap.String("username", cfg.AdminUsername))
	}

	outboxRepo := postgresql.NewOutboxTaskRepo()
	stg := storage.NewStorage(database, storage.Repositories{
		Seasons:     postgresql.NewSeasonRepo(database),
		Prices:      postgresql.NewTicketPriceRepo(database),
		Events:      postgresql.NewDinnerEventRepo(database),
		Teams:       postgresql.NewCookingTeamRepo(database),
		Inhabitants: postgresql.NewInhabitantRepo(database),
		Orders:      postgresql.NewOrderRepo(database),
		History:     postgresql.NewHistoryRepo(database),
		Outbox:      outboxRepo,
	},
		schedule.NewPolicy(cfg.Dinner.StartHour, cfg.Dinner.StartMinute, loc),
		log.Named("storage"),
		storage.WithConcurrency(cfg.Maintenance.Concurrency),
	)

	var producer kafka.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		producer = kafka.NewKafkaProducer(cfg.Kafka.Brokers, log)
	} else {
		producer = kafka.NewConsoleProducer(log)
	}
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: cfg.Kafka.Poll,
		BatchSize:    cfg.Kafka.BatchSize,
		MaxAttempts:  cfg.Kafka.MaxAttempts,
	}, log)
	go publisher.Run(ctx)
	defer publisher.Shutdown()

	if cfg.Maintenance.Enabled {
		sched, err := maintenance.New(stg, log, cfg.Maintenance.Interval)
		if err != nil {
			log.Fatal("maintenance scheduler", zap.Error(err))
		}
		if err := sched.Start(ctx); err != nil {
			log.Fatal("start maintenance scheduler", zap.Error(err))
		}
		defer func() {
			if err := sched.Shutdown(); err != nil {
				log.Error("maintenance shutdown", zap.Error(err))
			}
		}()
	}

	srv := server.New(stg, postgresql.NewUserRepo(database), log.Named("http"))
	if err := srv.Run(ctx, cfg.HTTPPort); err != nil {
		log.Error("server stopped", zap.Error(err))
		return
	}
	log.Info("server gracefully stopped")
}
