package components

import (
	"guest-conversion/internal/handler"
	"guest-conversion/internal/handler/api"
	"guest-conversion/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUnlockHandler,
		api.NewDealCodeHandler,
		api.NewCheckInHandler,
		api.NewPaymentGateHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(unlocks *api.UnlockHandler, dealCodes *api.DealCodeHandler, checkIn *api.CheckInHandler, gate *api.PaymentGateHandler) handler.Handlers {
	return handler.Handlers{
		Unlocks:     unlocks,
		DealCodes:   dealCodes,
		CheckIn:     checkIn,
		PaymentGate: gate,
	}
}
