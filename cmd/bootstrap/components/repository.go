package components

import (
	"log/slog"

	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/infra/notify"
	"guest-conversion/internal/infra/repository"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/pkg/config"
	"guest-conversion/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotificationModule = fx.Module("notification",
	fx.Provide(
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notify.JobCreator)),
		),
		NewNotifier,
		fx.Annotate(
			notify.NewPaymentRedirector,
			fx.As(new(paymentgate.Redirector)),
		),
	),
)

// NewNotifier always logs; the outbox is added when NOTIFY_OUTBOX is set.
func NewNotifier(cfg config.Config, logger *slog.Logger, db shared.TxBeginner, jobs notify.JobCreator, clk clock.Clock) shared.Notifier {
	targets := notify.Multi{notify.NewLogNotifier(logger)}
	if cfg.Notify.Outbox {
		targets = append(targets, notify.NewOutboxNotifier(db, jobs, clk))
	}
	return targets
}
