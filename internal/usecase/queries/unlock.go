package queries

import (
	"context"
	"log/slog"

	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var ErrUnlockRefresh = errs.New("failed to refresh unlock records")

type UnlockQueries interface {
	// Refresh re-fetches the whole set from the marketplace and replaces the cache.
	Refresh(ctx context.Context, guest uuid.UUID) (*unlock.Snapshot, error)
	// Reload is Refresh for use after a mutation: it never joins a fetch that
	// was already running, and such a fetch can no longer overwrite its result.
	Reload(ctx context.Context, guest uuid.UUID) (*unlock.Snapshot, error)
	Invalidate(guest uuid.UUID)
	// Current returns the cached snapshot, refreshing when the cache is cold.
	Current(ctx context.Context, guest uuid.UUID) (*unlock.Snapshot, error)
	Find(ctx context.Context, guest uuid.UUID, unlockID string) (*unlock.Record, error)
}

type unlockQueriesImpl struct {
	gateway shared.MarketplaceGateway
	store   shared.UnlockStore
	clock   clock.Clock
	logger  *slog.Logger
	group   singleflight.Group
	epochs  *fetchEpochs
}

func NewUnlockQueries(gateway shared.MarketplaceGateway, store shared.UnlockStore, clk clock.Clock, logger *slog.Logger) UnlockQueries {
	return &unlockQueriesImpl{
		gateway: gateway,
		store:   store,
		clock:   clk,
		logger:  logger,
		epochs:  newFetchEpochs(),
	}
}

func (q *unlockQueriesImpl) Refresh(ctx context.Context, guest uuid.UUID) (*unlock.Snapshot, error) {
	// 同一ゲストの同時リフレッシュは1回のリクエストにまとめる
	v, err, _ := q.group.Do(guest.String(), func() (any, error) {
		return q.fetch(ctx, guest, q.epochs.begin(guest))
	})
	if err != nil {
		return nil, err
	}
	return v.(*unlock.Snapshot), nil
}

func (q *unlockQueriesImpl) Reload(ctx context.Context, guest uuid.UUID) (*unlock.Snapshot, error) {
	q.group.Forget(guest.String())
	return q.fetch(ctx, guest, q.epochs.beginReload(guest))
}

func (q *unlockQueriesImpl) fetch(ctx context.Context, guest uuid.UUID, gen uint64) (*unlock.Snapshot, error) {
	defer q.epochs.end(guest)

	stats, err := q.gateway.UnlockStats(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrUnlockRefresh)
	}
	snap := unlock.NewSnapshot(q.buildRecords(guest, stats.Records), stats.Stats, q.clock.Now())
	if !q.epochs.commit(guest, gen, func() { q.store.Put(guest, snap) }) {
		q.logger.Debug("操作後の再取得が先行したため古い結果を破棄しました", "guest_id", guest)
	}
	return snap, nil
}

func (q *unlockQueriesImpl) Current(ctx context.Context, guest uuid.UUID) (*unlock.Snapshot, error) {
	if snap, ok := q.store.Get(guest); ok {
		return snap, nil
	}
	return q.Refresh(ctx, guest)
}

func (q *unlockQueriesImpl) Find(ctx context.Context, guest uuid.UUID, unlockID string) (*unlock.Record, error) {
	snap, err := q.Current(ctx, guest)
	if err != nil {
		return nil, err
	}
	if r, ok := snap.Find(unlockID); ok {
		return r, nil
	}
	return nil, errs.Wrapf(errs.ErrUnlockNotFound, "unlock %s", unlockID)
}

// buildRecords drops records that violate an invariant instead of failing the whole set.
func (q *unlockQueriesImpl) buildRecords(guest uuid.UUID, specs []unlock.RecordSpec) []*unlock.Record {
	records := make([]*unlock.Record, 0, len(specs))
	for _, spec := range specs {
		r, err := unlock.NewRecord(spec)
		if err != nil {
			q.logger.Warn("不整合なアンロック記録を除外しました",
				"guest_id", guest, "unlock_id", spec.ID, "error", err)
			continue
		}
		records = append(records, r)
	}
	return records
}

func (q *unlockQueriesImpl) Invalidate(guest uuid.UUID) {
	q.store.Invalidate(guest)
}
