package commands

import (
	"context"
	"log/slog"

	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/pkg/fingerprint"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
)

// GateVerifyResult.Refetched is false when the gated record could not be
// reloaded; the payment itself is still confirmed.
type GateVerifyResult struct {
	State     paymentgate.State
	Refetched bool
	Dismissed bool
}

type PaymentGateCommands interface {
	Status(owner uuid.UUID) paymentgate.State
	Verify(ctx context.Context, owner uuid.UUID, reference string) (*GateVerifyResult, error)
	Dismiss(owner uuid.UUID) bool
}

type paymentGateCommandsImpl struct {
	registry *paymentgate.Registry
	gateway  shared.MarketplaceGateway
	notify   notifier
	logger   *slog.Logger
}

func NewPaymentGateCommands(registry *paymentgate.Registry, gateway shared.MarketplaceGateway, n shared.Notifier, logger *slog.Logger) PaymentGateCommands {
	return &paymentGateCommandsImpl{
		registry: registry,
		gateway:  gateway,
		notify:   notifier{target: n, logger: logger},
		logger:   logger,
	}
}

func (c *paymentGateCommandsImpl) Status(owner uuid.UUID) paymentgate.State {
	if g, ok := c.registry.Get(owner); ok {
		return g.State()
	}
	return paymentgate.HiddenState(owner)
}

func (c *paymentGateCommandsImpl) Verify(ctx context.Context, owner uuid.UUID, reference string) (*GateVerifyResult, error) {
	g, ok := c.registry.Get(owner)
	if !ok {
		return nil, errs.ErrGateNotFound
	}

	// ダイアログが閉じられても支払い確認は中断しない
	res, err := g.Verify(context.WithoutCancel(ctx), reference, c.gateway)
	switch {
	case err == nil:
	case errs.Is(err, paymentgate.ErrEmptyReference):
		return nil, errs.Validation(err)
	case errs.Is(err, paymentgate.ErrVerificationInFlight):
		return nil, errs.Mark(err, ErrOperationInFlight)
	case errs.Is(err, paymentgate.ErrGateClosed), errs.Is(err, paymentgate.ErrAlreadyVerified):
		return nil, guardRefused(err)
	default:
		c.notify.failure(ctx, owner, err)
		return nil, err
	}

	c.registry.Release(g)
	subject := g.Subject()
	c.logger.Info("現地払いを確認しました",
		"owner", owner, "subject", subject.String(), "reference_fp", fingerprint.Reference(reference))

	if res.RefetchErr != nil {
		c.logger.Warn("支払い確認後の再取得に失敗しました", "subject", subject.String(), "error", res.RefetchErr)
	}
	if !res.Dismissed {
		c.notify.send(ctx, owner, shared.LevelSuccess, shared.TopicPaymentVerified, "Payment verified",
			map[string]string{"subject": subject.String()})
	}
	return &GateVerifyResult{
		State:     res.State,
		Refetched: !res.Dismissed && res.RefetchErr == nil,
		Dismissed: res.Dismissed,
	}, nil
}

func (c *paymentGateCommandsImpl) Dismiss(owner uuid.UUID) bool {
	return c.registry.Close(owner)
}

// gateOpener opens a gate when a marketplace response carries the
// payment-at-property signal.
type gateOpener struct {
	registry *paymentgate.Registry
	trigger  string
	notify   notifier
}

func paymentSignal(ack *shared.Ack, err error) (string, string) {
	if err != nil {
		var ps shared.PaymentSignaler
		if errs.As(err, &ps) {
			return ps.PaymentSignal()
		}
		return "", ""
	}
	if ack == nil {
		return "", ""
	}
	return ack.Message, ack.PaymentURL
}

func (o gateOpener) open(ctx context.Context, owner uuid.UUID, subject paymentgate.Subject, ack *shared.Ack, callErr error, refetch paymentgate.RefetchFunc) (*paymentgate.State, bool) {
	msg, url := paymentSignal(ack, callErr)
	if !paymentgate.Detect(msg, url, o.trigger) {
		return nil, false
	}
	g := o.registry.Open(owner, subject, url, refetch)
	o.notify.send(ctx, owner, shared.LevelInfo, shared.TopicPaymentRequired, msg,
		map[string]string{"subject": subject.String()})
	st := g.State()
	return &st, true
}
