package shared

import (
	"context"
	"log/slog"
	"time"

	"guest-conversion/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

const defaultMaxRetries = 3

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TxFunc func(ctx context.Context, tx pgx.Tx) error

func RunInTx(ctx context.Context, db TxBeginner, fn TxFunc) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}

	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errs.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("ロールバックに失敗しました", "error", rbErr)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionCommit)
	}
	return nil
}

// RunInTxWithRetry retries serialization failures and deadlocks with a linear backoff.
func RunInTxWithRetry(ctx context.Context, db TxBeginner, maxRetries int, fn TxFunc) error {
	for attempt := 0; ; attempt++ {
		err := RunInTx(ctx, db, fn)
		if err == nil || !isRetryableError(err) {
			return err
		}
		if attempt >= maxRetries {
			slog.Error("トランザクションが最大リトライ回数を超えました", "attempts", attempt+1, "error", err)
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		wait := time.Duration(attempt+1) * 100 * time.Millisecond
		slog.Warn("リトライ可能なエラーのためトランザクションを再実行します",
			"attempt", attempt+1, "wait_time", wait, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func WithDefaultRetry(ctx context.Context, db TxBeginner, fn TxFunc) error {
	return RunInTxWithRetry(ctx, db, defaultMaxRetries, fn)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	// 40001: serialization_failure, 40P01: deadlock_detected
	switch pgErr.Code {
	case "40001", "40P01":
		return true
	default:
		return false
	}
}
