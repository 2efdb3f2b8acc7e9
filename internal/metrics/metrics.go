package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ReconcileOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinnerclub_reconcile_operations_total",
		Help: "Order reconciliation outcomes by mode (system, user, heal) and outcome.",
	},
		[]string{"mode", "outcome"},
	)

	ReconcileWarningsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dinnerclub_reconcile_warnings_total",
		Help: "Desired orders skipped because no ticket price could be resolved.",
	})

	ConcurrentModificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dinnerclub_concurrent_modifications_total",
		Help: "Reconciliations aborted by a stale order version.",
	})

	HealCandidatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinnerclub_heal_candidates_total",
		Help: "Confirmed bookings found out of sync during healing, by reason.",
	},
		[]string{"reason"},
	)

	MaintenanceRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinnerclub_maintenance_runs_total",
		Help: "Rolling maintenance job runs by job and status.",
	},
		[]string{"job", "status"},
	)

	OutboxMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinnerclub_outbox_messages_total",
		Help: "Outbox tasks handed to the producer, by result.",
	},
		[]string{"result"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinnerclub_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dinnerclub_db_query_duration_seconds",
		Help:    "Postgres round trips by statement kind and whether they ran in a transaction.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	},
		[]string{"kind", "scope"},
	)

	DBTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dinnerclub_db_transactions_total",
		Help: "Finished transactions by outcome (commit, rollback).",
	},
		[]string{"outcome"},
	)

	SeasonCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dinnerclub_season_cache_items",
		Help: "Current number of seasons held in the snapshot cache.",
	})
)
