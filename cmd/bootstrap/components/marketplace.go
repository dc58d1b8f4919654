package components

import (
	"log/slog"
	"net/http"

	"guest-conversion/internal/infra/marketplace"
	"guest-conversion/internal/pkg/config"
	"guest-conversion/internal/usecase/shared"

	"go.uber.org/fx"
)

var MarketplaceModule = fx.Module("marketplace",
	fx.Provide(
		NewHTTPClient,
		fx.Annotate(
			NewMarketplaceClient,
			fx.As(new(shared.MarketplaceGateway)),
		),
	),
)

func NewHTTPClient(cfg config.Config) *http.Client {
	return &http.Client{Timeout: cfg.Marketplace.Timeout}
}

func NewMarketplaceClient(cfg config.Config, httpClient *http.Client, logger *slog.Logger) (*marketplace.Client, error) {
	return marketplace.NewClient(cfg.Marketplace, httpClient, logger)
}
