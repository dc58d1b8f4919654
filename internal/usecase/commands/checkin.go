package commands

import (
	"context"
	"log/slog"

	"guest-conversion/internal/domain/checkin"
	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/domain/user"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
)

// LookupResult.Discarded is set when the session was reset while the lookup
// was outstanding; the fetched details were not applied.
type LookupResult struct {
	Session   checkin.Session
	Gate      *paymentgate.State
	Message   string
	Discarded bool
}

type CheckInResult struct {
	Message               string
	InstructionsDelivered bool
	Gate                  *paymentgate.State
	Session               checkin.Session
}

type CheckOutResult struct {
	Message  string
	Endpoint checkin.CheckoutEndpoint
}

type CheckInCommands interface {
	LookupBooking(ctx context.Context, staff uuid.UUID, bookingID string) (*LookupResult, error)
	ConfirmCheckIn(ctx context.Context, staff uuid.UUID, bookingID, code, instructions string) (*CheckInResult, error)
	ConfirmCheckOut(ctx context.Context, staff uuid.UUID, role user.Role, bookingID string) (*CheckOutResult, error)
	ResendCode(ctx context.Context, staff uuid.UUID, bookingID string) (string, error)
	Session(staff uuid.UUID) checkin.Session
	Reset(staff uuid.UUID) checkin.Session
}

type checkInCommandsImpl struct {
	gateway  shared.MarketplaceGateway
	sessions *SessionRegistry
	router   checkin.CheckoutRouter
	inflight *InFlight
	gates    gateOpener
	notify   notifier
	logger   *slog.Logger
}

func NewCheckInCommands(
	gateway shared.MarketplaceGateway,
	sessions *SessionRegistry,
	router checkin.CheckoutRouter,
	inflight *InFlight,
	registry *paymentgate.Registry,
	trigger string,
	n shared.Notifier,
	logger *slog.Logger,
) CheckInCommands {
	nt := notifier{target: n, logger: logger}
	return &checkInCommandsImpl{
		gateway:  gateway,
		sessions: sessions,
		router:   router,
		inflight: inflight,
		gates:    gateOpener{registry: registry, trigger: trigger, notify: nt},
		notify:   nt,
		logger:   logger,
	}
}

func (c *checkInCommandsImpl) LookupBooking(ctx context.Context, staff uuid.UUID, bookingID string) (*LookupResult, error) {
	id, err := checkin.NewBookingID(bookingID)
	if err != nil {
		return nil, errs.Validation(err)
	}

	_, gen := c.sessions.Get(staff)

	v, callErr := c.gateway.VerifyBooking(ctx, id)
	var ack *shared.Ack
	if v != nil {
		ack = &v.Ack
	}
	subject := paymentgate.Subject{Kind: paymentgate.SubjectBooking, ID: id.String()}
	gate, gated := c.gates.open(ctx, staff, subject, ack, callErr, func(ctx context.Context) error {
		_, err := c.LookupBooking(ctx, staff, id.String())
		return err
	})
	if gated {
		// 支払い確認まで詳細は表示しない
		s := checkin.NewSession()
		c.sessions.ApplyIf(staff, gen, s)
		msg, _ := paymentSignal(ack, callErr)
		c.logger.Info("予約確認で現地払いが必要です", "staff_id", staff, "booking_id", id)
		return &LookupResult{Session: s, Gate: gate, Message: msg}, nil
	}
	if callErr != nil {
		c.notify.failure(ctx, staff, callErr)
		return nil, callErr
	}
	if v.Payload == nil {
		return nil, errs.Wrapf(ErrMissingBookingDetails, "booking %s", id)
	}

	payload := *v.Payload
	if payload.BookingID == "" {
		payload.BookingID = id.String()
	}
	details, err := checkin.MapDetails(payload)
	if err != nil {
		return nil, err
	}

	current, _ := c.sessions.Get(staff)
	next := current.Load(details)
	if !c.sessions.ApplyIf(staff, gen, next) {
		c.logger.Info("セッションが変更されたため予約確認結果を破棄しました", "staff_id", staff, "booking_id", id)
		latest, _ := c.sessions.Get(staff)
		return &LookupResult{Session: latest, Message: v.Message, Discarded: true}, nil
	}
	return &LookupResult{Session: next, Message: v.Message}, nil
}

func (c *checkInCommandsImpl) ConfirmCheckIn(ctx context.Context, staff uuid.UUID, bookingID, code, instructions string) (*CheckInResult, error) {
	id, err := checkin.NewBookingID(bookingID)
	if err != nil {
		return nil, errs.Validation(err)
	}
	confirmation, err := checkin.NewConfirmationCode(code)
	if err != nil {
		return nil, errs.Validation(err)
	}
	ins := checkin.NewInstructions(instructions)

	// 確認できるのは照会済みの予約のみ
	if session, _ := c.sessions.Get(staff); !session.HasLoaded(id) {
		return nil, errs.Wrapf(errs.ErrSessionNotFound, "booking %s is not loaded", id)
	}

	release, err := c.inflight.Acquire(bookingKey(id.String()))
	if err != nil {
		return nil, err
	}
	defer release()

	mctx := context.WithoutCancel(ctx)
	ack, callErr := c.gateway.ConfirmCheckIn(mctx, id, confirmation, ins)

	subject := paymentgate.Subject{Kind: paymentgate.SubjectBooking, ID: id.String()}
	gate, gated := c.gates.open(mctx, staff, subject, ack, callErr, func(ctx context.Context) error {
		_, err := c.LookupBooking(ctx, staff, id.String())
		return err
	})
	if gated {
		session, _ := c.sessions.Get(staff)
		msg, _ := paymentSignal(ack, callErr)
		return &CheckInResult{Message: msg, Gate: gate, Session: session}, nil
	}
	if callErr != nil {
		c.notify.failure(mctx, staff, callErr)
		return nil, callErr
	}

	session := checkin.NewSession()
	c.sessions.Replace(staff, session)

	delivered := ins.Deliverable()
	c.logger.Info("チェックインを確認しました",
		"staff_id", staff, "booking_id", id, "instructions_delivered", delivered)
	c.notify.send(mctx, staff, shared.LevelSuccess, shared.TopicCheckInConfirmed, ack.Message,
		map[string]string{"booking_id": id.String()})

	return &CheckInResult{
		Message:               ack.Message,
		InstructionsDelivered: delivered,
		Session:               session,
	}, nil
}

func (c *checkInCommandsImpl) ConfirmCheckOut(ctx context.Context, staff uuid.UUID, role user.Role, bookingID string) (*CheckOutResult, error) {
	id, err := checkin.NewBookingID(bookingID)
	if err != nil {
		return nil, errs.Validation(err)
	}
	endpoint, err := c.router.Resolve(role)
	switch {
	case err == nil:
	case errs.Is(err, checkin.ErrRoleRequired):
		return nil, errs.Validation(err)
	default:
		return nil, guardRefused(err)
	}

	release, err := c.inflight.Acquire(bookingKey(id.String()))
	if err != nil {
		return nil, err
	}
	defer release()

	mctx := context.WithoutCancel(ctx)
	ack, err := c.gateway.CheckOut(mctx, endpoint, id)
	if err != nil {
		c.notify.failure(mctx, staff, err)
		return nil, err
	}
	c.logger.Info("チェックアウトを確認しました", "staff_id", staff, "booking_id", id, "endpoint", endpoint)
	c.notify.send(mctx, staff, shared.LevelSuccess, shared.TopicCheckOutConfirmed, ack.Message,
		map[string]string{"booking_id": id.String()})

	return &CheckOutResult{Message: ack.Message, Endpoint: endpoint}, nil
}

func (c *checkInCommandsImpl) ResendCode(ctx context.Context, staff uuid.UUID, bookingID string) (string, error) {
	id, err := checkin.NewBookingID(bookingID)
	if err != nil {
		return "", errs.Validation(err)
	}
	session, _ := c.sessions.Get(staff)
	if !session.HasLoaded(id) {
		return "", guardRefused(ErrResendNotAvailable)
	}

	release, err := c.inflight.Acquire(bookingKey(id.String()))
	if err != nil {
		return "", err
	}
	defer release()

	mctx := context.WithoutCancel(ctx)
	ack, err := c.gateway.ResendCode(mctx, id)
	if err != nil {
		c.notify.failure(mctx, staff, err)
		return "", err
	}
	c.notify.send(mctx, staff, shared.LevelInfo, shared.TopicCodeResent, ack.Message,
		map[string]string{"booking_id": id.String()})
	return ack.Message, nil
}

func (c *checkInCommandsImpl) Session(staff uuid.UUID) checkin.Session {
	s, _ := c.sessions.Get(staff)
	return s
}

func (c *checkInCommandsImpl) Reset(staff uuid.UUID) checkin.Session {
	s := checkin.NewSession()
	c.sessions.Replace(staff, s)
	return s
}
