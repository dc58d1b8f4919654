package bootstrap

import (
	"guest-conversion/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.MarketplaceModule,
	components.NotificationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
