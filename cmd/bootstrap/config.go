package bootstrap

import (
	"log/slog"

	"guest-conversion/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// 秘密情報は出力しない
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("設定を読み込みました",
		"port", cfg.Server.Port,
		"marketplace_base_url", cfg.Marketplace.BaseURL,
		"marketplace_timeout", cfg.Marketplace.Timeout,
		"payment_gate_countdown", cfg.PaymentGate.CountdownSeconds,
		"notify_outbox", cfg.Notify.Outbox,
		"cache_unlock_size", cfg.Cache.UnlockSize,
		"cache_deal_code_size", cfg.Cache.DealCodeSize,
	)
}
