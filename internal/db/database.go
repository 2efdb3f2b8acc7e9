//go:generate mockgen -source ./database.go -destination=./mocks/database.go -package=mock_database
package db

import (
	"context"
	"time"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/metrics"
)

// DB is the pool-level handle repositories read through. Writes that must
// be atomic go through BeginTx.
type DB interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	ExecQueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	BeginTx(ctx context.Context) (Tx, error)
}

type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	ExecQueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

const (
	scopePool = "pool"
	scopeTx   = "tx"
)

// querier is what pgxscan and the exec helpers need from a pool or a pgx.Tx.
type querier interface {
	pgxscan.Querier
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func observe(kind, scope string, started time.Time) {
	metrics.DBQueryDuration.WithLabelValues(kind, scope).Observe(time.Since(started).Seconds())
}

func get(ctx context.Context, q querier, scope string, dest interface{}, query string, args ...interface{}) error {
	defer observe("get", scope, time.Now())
	return pgxscan.Get(ctx, q, dest, query, args...)
}

func selectAll(ctx context.Context, q querier, scope string, dest interface{}, query string, args ...interface{}) error {
	defer observe("select", scope, time.Now())
	return pgxscan.Select(ctx, q, dest, query, args...)
}

func exec(ctx context.Context, q querier, scope string, query string, args ...interface{}) (pgconn.CommandTag, error) {
	defer observe("exec", scope, time.Now())
	return q.Exec(ctx, query, args...)
}

// timedRow observes a QueryRow when it is scanned.
type timedRow struct {
	row     pgx.Row
	scope   string
	started time.Time
}

func (r timedRow) Scan(dest ...interface{}) error {
	defer observe("query_row", r.scope, r.started)
	return r.row.Scan(dest...)
}

type Database struct {
	cluster *pgxpool.Pool
}

func NewDatabase(cluster *pgxpool.Pool) *Database {
	return &Database{cluster: cluster}
}

func (db Database) GetPool() *pgxpool.Pool {
	return db.cluster
}

func (db Database) Close() {
	db.cluster.Close()
}

func (db Database) Ping(ctx context.Context) error {
	return db.cluster.Ping(ctx)
}

func (db Database) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return get(ctx, db.cluster, scopePool, dest, query, args...)
}

func (db Database) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return selectAll(ctx, db.cluster, scopePool, dest, query, args...)
}

func (db Database) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	return exec(ctx, db.cluster, scopePool, query, args...)
}

func (db Database) ExecQueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	return timedRow{row: db.cluster.QueryRow(ctx, query, args...), scope: scopePool, started: time.Now()}
}

// BeginTx opens a read committed transaction. Order writes are guarded by
// SELECT ... FOR UPDATE and row versions.
func (db *Database) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := db.cluster.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	return &Transaction{tx: tx}, nil
}

type Transaction struct {
	tx   pgx.Tx
	done bool
}

func (t *Transaction) Commit(ctx context.Context) error {
	err := t.tx.Commit(ctx)
	if err == nil {
		t.done = true
		metrics.DBTransactionsTotal.WithLabelValues("commit").Inc()
	}
	return err
}

// Rollback after a successful Commit is a no-op.
func (t *Transaction) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	metrics.DBTransactionsTotal.WithLabelValues("rollback").Inc()
	return t.tx.Rollback(ctx)
}

func (t *Transaction) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	return exec(ctx, t.tx, scopeTx, query, args...)
}

func (t *Transaction) ExecQueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	return timedRow{row: t.tx.QueryRow(ctx, query, args...), scope: scopeTx, started: time.Now()}
}

func (t *Transaction) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return get(ctx, t.tx, scopeTx, dest, query, args...)
}

func (t *Transaction) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return selectAll(ctx, t.tx, scopeTx, dest, query, args...)
}
