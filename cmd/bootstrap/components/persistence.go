package components

import (
	"guest-conversion/internal/infra/cache"
	"guest-conversion/internal/pkg/config"
	"guest-conversion/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	cacheModule,
)

var baseOption = fx.Provide(
	fx.Annotate(
		NewTxBeginner,
		fx.As(new(shared.TxBeginner)),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			NewUnlockRecordStore,
			fx.As(new(shared.UnlockStore)),
		),
		fx.Annotate(
			NewDealCodeLedger,
			fx.As(new(shared.DealCodeStore)),
		),
	),
)

func NewTxBeginner(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}

func NewUnlockRecordStore(cfg config.Config) (*cache.UnlockRecordStore, error) {
	return cache.NewUnlockRecordStore(cfg.Cache.UnlockSize)
}

func NewDealCodeLedger(cfg config.Config) (*cache.DealCodeLedger, error) {
	return cache.NewDealCodeLedger(cfg.Cache.DealCodeSize)
}
