package bootstrap

import (
	"context"
	"log/slog"

	"guest-conversion/internal/infra/db"
	"guest-conversion/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool backing the notification outbox.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("データベースに接続しました", "host", cfg.DB.Host, "db", cfg.DB.DBName, "outbox", cfg.Notify.Outbox)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cleanup()
			return nil
		},
	})
	return pool, nil
}
