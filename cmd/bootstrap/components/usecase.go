package components

import (
	"context"
	"log/slog"

	"guest-conversion/internal/domain/appreciation"
	"guest-conversion/internal/domain/checkin"
	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/pkg/config"
	"guest-conversion/internal/usecase"
	"guest-conversion/internal/usecase/commands"
	"guest-conversion/internal/usecase/queries"
	"guest-conversion/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	appreciation.NewEngine,
	commands.NewInFlight,
	commands.NewSessionRegistry,
	fx.Annotate(
		checkin.NewRoleCheckoutRouter,
		fx.As(new(checkin.CheckoutRouter)),
	),
	NewGateRegistry,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewUnlockCommands,
		NewCheckInCommands,
		commands.NewPaymentGateCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUnlockQueries,
		queries.NewDealCodeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewGateRegistry stops every running countdown on shutdown.
func NewGateRegistry(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, redirector paymentgate.Redirector, logger *slog.Logger) *paymentgate.Registry {
	registry := paymentgate.NewRegistry(cfg.PaymentGate.CountdownSeconds, clk, redirector, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			registry.CloseAll()
			return nil
		},
	})
	return registry
}

func NewUnlockCommands(
	cfg config.Config,
	gateway shared.MarketplaceGateway,
	unlocks queries.UnlockQueries,
	dealCodes queries.DealCodeQueries,
	engine *appreciation.Engine,
	inflight *commands.InFlight,
	registry *paymentgate.Registry,
	n shared.Notifier,
	logger *slog.Logger,
) commands.UnlockCommands {
	return commands.NewUnlockCommands(gateway, unlocks, dealCodes, engine, inflight, registry, cfg.PaymentGate.TriggerPhrase, n, logger)
}

func NewCheckInCommands(
	cfg config.Config,
	gateway shared.MarketplaceGateway,
	sessions *commands.SessionRegistry,
	router checkin.CheckoutRouter,
	inflight *commands.InFlight,
	registry *paymentgate.Registry,
	n shared.Notifier,
	logger *slog.Logger,
) commands.CheckInCommands {
	return commands.NewCheckInCommands(gateway, sessions, router, inflight, registry, cfg.PaymentGate.TriggerPhrase, n, logger)
}
