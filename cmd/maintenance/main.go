// Command maintenance runs operator repairs against the dinner database:
// healing a season from its order history or a one-off scaffold pass.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/schedule"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

func main() {
	var (
		heal      bool
		scaffold  bool
		write     bool
		seasonID  int64
		household int64
	)
	flag.BoolVar(&heal, "heal", false, "restore orders from confirmed user actions in the order history")
	flag.BoolVar(&write, "write", false, "apply the heal instead of reporting it (default is a dry run)")
	flag.Int64Var(&seasonID, "season", 0, "season to heal (0 = active season)")
	flag.BoolVar(&scaffold, "scaffold", false, "reconcile households against their weekly preferences")
	flag.Int64Var(&household, "household", 0, "scaffold only this household (0 = all)")
	flag.Parse()

	if heal == scaffold {
		fmt.Fprintln(os.Stderr, "exactly one of -heal or -scaffold is required")
		flag.Usage()
		os.Exit(2)
	}

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

	loc, err := cfg.Dinner.Location()
	if err != nil {
		config.Exitf("%v", err)
	}
	database, err := db.NewDb(ctx, cfg.DB.DSN())
	if err != nil {
		config.Exitf("database: %v", err)
	}
	defer database.Close()

	stg := storage.NewStorage(database, storage.Repositories{
		Seasons:     postgresql.NewSeasonRepo(database),
		Prices:      postgresql.NewTicketPriceRepo(database),
		Events:      postgresql.NewDinnerEventRepo(database),
		Teams:       postgresql.NewCookingTeamRepo(database),
		Inhabitants: postgresql.NewInhabitantRepo(database),
		Orders:      postgresql.NewOrderRepo(database),
		History:     postgresql.NewHistoryRepo(database),
		Outbox:      postgresql.NewOutboxTaskRepo(),
	},
		schedule.NewPolicy(cfg.Dinner.StartHour, cfg.Dinner.StartMinute, loc),
		log.Named("storage"),
		storage.WithConcurrency(cfg.Maintenance.Concurrency),
	)

	var report any
	switch {
	case heal:
		if seasonID == 0 {
			if seasonID, err = stg.ActiveSeasonID(ctx); err != nil {
				config.Exitf("active season: %v", err)
			}
		}
		log.Info("healing season", zap.Int64("season_id", seasonID), zap.Bool("dry_run", !write))
		report, err = stg.Heal(ctx, seasonID, !write)
	case household != 0:
		report, err = stg.ScaffoldHousehold(ctx, household)
	default:
		report, err = stg.ScaffoldAll(ctx)
	}
	if err != nil {
		config.Exitf("maintenance failed: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		config.Exitf("write report: %v", err)
	}
}
