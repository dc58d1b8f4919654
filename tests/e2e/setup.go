//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"guest-conversion/cmd/bootstrap"
	"guest-conversion/cmd/bootstrap/components"
	"guest-conversion/internal/pkg/config"
	"guest-conversion/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite wires the full fx graph against a disposable Postgres and a
// fake marketplace. Subtests start from an empty outbox and no stubs.
type SharedSuite struct {
	suite.Suite
	Router      *gin.Engine
	DB          *pgxpool.Pool
	Config      config.Config
	Marketplace *FakeMarketplace
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pool, dbConfig := createDatabase(t, startPostgres(t))
	s.DB = pool

	s.Marketplace = NewFakeMarketplace()
	t.Cleanup(s.Marketplace.Close)

	s.Config = testConfig(dbConfig, s.Marketplace.URL())
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "アウトボックスの初期化に失敗")
	s.Marketplace.Reset()
}

func testConfig(dbConfig config.DBConfig, marketplaceURL string) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbConfig
	cfg.Marketplace.BaseURL = marketplaceURL
	cfg.Notify.Outbox = true
	return cfg
}

// startApp builds the production graph with the pool and config swapped in.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(gin.New),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.MarketplaceModule,
		components.NotificationModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗しました", "error", err)
		}
	})
	return router
}
