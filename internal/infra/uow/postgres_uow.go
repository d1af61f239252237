package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"dealhub/internal/infra/repository"
	sqlc "dealhub/internal/infra/sqlc/generated"
	"dealhub/internal/pkg/errs"
	"dealhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// retryPolicy retries serialization failures and deadlocks with jittered
// exponential backoff.
type retryPolicy struct {
	maxRetries int
	base       time.Duration
}

var defaultRetry = retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

func (p retryPolicy) backoff(attempt int) time.Duration {
	wait := p.base << attempt
	if jitter := int64(wait / 5); jitter > 0 {
		wait += time.Duration(rand.Int64N(jitter))
	}
	return wait
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// serialization_failure, deadlock_detected
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

type PostgresUoW struct {
	pool   *pgxpool.Pool
	q      *sqlc.Queries
	logger *slog.Logger
	retry  retryPolicy
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) *PostgresUoW {
	return &PostgresUoW{pool: pool, q: q, logger: logger, retry: defaultRetry}
}

// Within runs fn in a ReadCommitted transaction. fn may run more than once.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := 0; ; attempt++ {
		if err = u.attempt(ctx, opts, fn); err == nil || !retryable(err) {
			return err
		}
		if attempt == u.retry.maxRetries {
			break
		}

		wait := u.retry.backoff(attempt)
		u.logger.WarnContext(ctx, "retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	u.logger.ErrorContext(ctx, "transaction failed after max retries",
		"attempts", u.retry.maxRetries+1,
		"error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// attempt owns one pgx transaction from begin to commit or rollback.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.logger.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type pgTx struct {
	dbtx  sqlc.DBTX
	q     *sqlc.Queries
	deals shared.DealRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Deals() shared.DealRepository {
	if t.deals == nil {
		t.deals = repository.NewDealRepository(t.q)
	}
	return t.deals
}
