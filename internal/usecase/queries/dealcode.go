package queries

import (
	"context"
	"log/slog"

	"guest-conversion/internal/domain/dealcode"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

var ErrDealCodeRefresh = errs.New("failed to refresh deal codes")

type DealCodeQueries interface {
	Refresh(ctx context.Context, guest uuid.UUID) (*dealcode.Ledger, error)
	Reload(ctx context.Context, guest uuid.UUID) (*dealcode.Ledger, error)
	Invalidate(guest uuid.UUID)
	Current(ctx context.Context, guest uuid.UUID) (*dealcode.Ledger, error)
}

type dealCodeQueriesImpl struct {
	gateway shared.MarketplaceGateway
	store   shared.DealCodeStore
	clock   clock.Clock
	logger  *slog.Logger
	group   singleflight.Group
	epochs  *fetchEpochs
}

func NewDealCodeQueries(gateway shared.MarketplaceGateway, store shared.DealCodeStore, clk clock.Clock, logger *slog.Logger) DealCodeQueries {
	return &dealCodeQueriesImpl{
		gateway: gateway,
		store:   store,
		clock:   clk,
		logger:  logger,
		epochs:  newFetchEpochs(),
	}
}

func (q *dealCodeQueriesImpl) Refresh(ctx context.Context, guest uuid.UUID) (*dealcode.Ledger, error) {
	v, err, _ := q.group.Do(guest.String(), func() (any, error) {
		return q.fetch(ctx, guest, q.epochs.begin(guest))
	})
	if err != nil {
		return nil, err
	}
	return v.(*dealcode.Ledger), nil
}

func (q *dealCodeQueriesImpl) Reload(ctx context.Context, guest uuid.UUID) (*dealcode.Ledger, error) {
	q.group.Forget(guest.String())
	return q.fetch(ctx, guest, q.epochs.beginReload(guest))
}

func (q *dealCodeQueriesImpl) fetch(ctx context.Context, guest uuid.UUID, gen uint64) (*dealcode.Ledger, error) {
	defer q.epochs.end(guest)

	specs, err := q.gateway.DealCodes(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDealCodeRefresh)
	}
	codes := make([]*dealcode.DealCode, 0, len(specs))
	for _, spec := range specs {
		d, derr := dealcode.NewDealCode(spec)
		if derr != nil {
			q.logger.Warn("不正なディールコードを除外しました", "guest_id", guest, "error", derr)
			continue
		}
		codes = append(codes, d)
	}
	ledger := dealcode.NewLedger(codes, q.clock.Now())
	q.epochs.commit(guest, gen, func() { q.store.Put(guest, ledger) })
	return ledger, nil
}

func (q *dealCodeQueriesImpl) Current(ctx context.Context, guest uuid.UUID) (*dealcode.Ledger, error) {
	if ledger, ok := q.store.Get(guest); ok {
		return ledger, nil
	}
	return q.Refresh(ctx, guest)
}

func (q *dealCodeQueriesImpl) Invalidate(guest uuid.UUID) {
	q.store.Invalidate(guest)
}
