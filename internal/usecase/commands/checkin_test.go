//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"guest-conversion/internal/domain/checkin"
	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/domain/user"
	"guest-conversion/internal/infra/marketplace"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/usecase/commands"
	"guest-conversion/internal/usecase/shared"
	"guest-conversion/tests/common/builder"
	sharedmock "guest-conversion/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckInCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	gateway    *sharedmock.MockMarketplaceGateway
	sent       *sentNotifications
	clock      *clock.MockClock
	redirector *recordingRedirector
	registry   *paymentgate.Registry
	inflight   *commands.InFlight
	cmds       commands.CheckInCommands
	gates      commands.PaymentGateCommands
	staff      uuid.UUID
}

func (s *CheckInCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = sharedmock.NewMockMarketplaceGateway(s.ctrl)
	notifier := sharedmock.NewMockNotifier(s.ctrl)
	s.sent = &sentNotifications{}
	s.sent.record(notifier)

	logger := silentLogger()
	s.clock = clock.NewMockClock(fixedNow)
	s.redirector = &recordingRedirector{}
	s.registry = paymentgate.NewRegistry(paymentgate.DefaultCountdown, s.clock, s.redirector, logger)
	s.inflight = commands.NewInFlight()
	s.cmds = commands.NewCheckInCommands(
		s.gateway, commands.NewSessionRegistry(), checkin.NewRoleCheckoutRouter(),
		s.inflight, s.registry, paymentgate.DefaultTriggerPhrase, notifier, logger,
	)
	s.gates = commands.NewPaymentGateCommands(s.registry, s.gateway, notifier, logger)
	s.staff = uuid.New()
}

func (s *CheckInCommandsTestSuite) TearDownTest() {
	s.registry.CloseAll()
	s.ctrl.Finish()
}

func TestCheckInCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckInCommandsTestSuite))
}

func verification(payload checkin.Payload, msg string) *shared.BookingVerification {
	return &shared.BookingVerification{Payload: &payload, Ack: shared.Ack{Message: msg}}
}

func gatedVerification(url string) *shared.BookingVerification {
	return &shared.BookingVerification{Ack: shared.Ack{Message: paymentMessage, PaymentURL: url}}
}

// ================================================================================
// LookupBooking
// ================================================================================

func (s *CheckInCommandsTestSuite) TestLookupBooking() {
	ctx := context.Background()

	s.Run("success: details are loaded", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), checkin.BookingID("BK-1")).
			Return(verification(builder.NewBookingBuilder().Payload, "Booking found"), nil)

		res, err := s.cmds.LookupBooking(ctx, s.staff, " BK-1 ")

		s.Require().NoError(err)
		s.Nil(res.Gate)
		s.Equal(checkin.StepDetailsLoaded, res.Session.Step().Name())
		details, ok := res.Session.Details()
		s.Require().True(ok)
		s.Equal("Aiko Tanaka", details.GuestName)
		s.True(s.cmds.Session(s.staff).HasLoaded("BK-1"))
	})

	s.Run("success: payment-at-property message enters the gate instead of DetailsLoaded", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), checkin.BookingID("BK-1")).
			Return(gatedVerification("https://pay.example/bk1"), nil)

		res, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")

		s.Require().NoError(err)
		s.Require().NotNil(res.Gate)
		s.Equal(20, res.Gate.Countdown)
		s.Equal(paymentgate.PhaseShown, res.Gate.Phase)
		s.Equal("https://pay.example/bk1", res.Gate.PaymentURL)
		s.Equal(checkin.StepAwaitingID, res.Session.Step().Name())
		s.Equal(paymentMessage, res.Message)
		s.Equal(paymentgate.PhaseShown, s.gates.Status(s.staff).Phase)
	})

	s.Run("success: a URL without the trigger phrase is an ordinary response", func() {
		s.SetupTest()
		v := verification(builder.NewBookingBuilder().Payload, "Booking found")
		v.PaymentURL = "https://pay.example/ignored"
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).Return(v, nil)

		res, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")

		s.Require().NoError(err)
		s.Nil(res.Gate)
		s.Equal(paymentgate.PhaseHidden, s.gates.Status(s.staff).Phase)
	})

	s.Run("success: lookup outstanding across a reset is discarded", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, checkin.BookingID) (*shared.BookingVerification, error) {
				s.cmds.Reset(s.staff)
				return verification(builder.NewBookingBuilder().Payload, "Booking found"), nil
			})

		res, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")

		s.Require().NoError(err)
		s.True(res.Discarded)
		s.Equal(checkin.StepAwaitingID, s.cmds.Session(s.staff).Step().Name())
	})

	s.Run("error: empty booking id never reaches the network", func() {
		s.SetupTest()
		_, err := s.cmds.LookupBooking(ctx, s.staff, "  ")
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("error: business failure leaves the session unchanged", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).
			Return(nil, &marketplace.BusinessError{Status: 404, Message: "Booking not found"})

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-404")

		s.Require().Error(err)
		s.Equal("Booking not found", shared.UserMessage(err))
		s.Equal(checkin.StepAwaitingID, s.cmds.Session(s.staff).Step().Name())
		s.Equal("Booking not found", s.sent.last().Message)
	})
}

// ================================================================================
// ConfirmCheckIn
// ================================================================================

func (s *CheckInCommandsTestSuite) TestConfirmCheckIn() {
	ctx := context.Background()

	s.Run("error: codes of length other than 6 are rejected without a call", func() {
		for _, code := range []string{"", "12345", "1234567"} {
			s.SetupTest()
			_, err := s.cmds.ConfirmCheckIn(ctx, s.staff, "BK-1", code, "")
			s.True(errs.Is(err, errs.ErrValidation), code)
			s.True(errs.Is(err, checkin.ErrInvalidCodeLength), code)
		}
	})

	s.Run("success: confirmation resets the session", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).
			Return(verification(builder.NewBookingBuilder().Payload, ""), nil)
		s.gateway.EXPECT().ConfirmCheckIn(gomock.Any(), checkin.BookingID("BK-1"), checkin.ConfirmationCode("123456"), checkin.NewInstructions("Gate code 4321")).
			Return(&shared.Ack{Message: "Guest checked in"}, nil)

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)

		res, err := s.cmds.ConfirmCheckIn(ctx, s.staff, "BK-1", "123456", "Gate code 4321")

		s.Require().NoError(err)
		s.Equal("Guest checked in", res.Message)
		s.True(res.InstructionsDelivered)
		s.Equal(checkin.StepAwaitingID, res.Session.Step().Name())
		s.Contains(s.sent.topics(), shared.TopicCheckInConfirmed)
	})

	s.Run("error: failure keeps the loaded details", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).
			Return(verification(builder.NewBookingBuilder().Payload, ""), nil)
		s.gateway.EXPECT().ConfirmCheckIn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &marketplace.BusinessError{Status: 400, Message: "Invalid check-in code"})

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)

		_, err = s.cmds.ConfirmCheckIn(ctx, s.staff, "BK-1", "000000", "")

		s.Equal("Invalid check-in code", shared.UserMessage(err))
		s.True(s.cmds.Session(s.staff).HasLoaded("BK-1"))
	})

	s.Run("error: booking that was never looked up is rejected without a call", func() {
		s.SetupTest()

		_, err := s.cmds.ConfirmCheckIn(ctx, s.staff, "BK-1", "123456", "")

		s.True(errs.Is(err, errs.ErrSessionNotFound))
		s.Equal(checkin.StepAwaitingID, s.cmds.Session(s.staff).Step().Name())
	})

	s.Run("error: a different loaded booking is kept", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).
			Return(verification(builder.NewBookingBuilder().Payload, ""), nil)

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)

		_, err = s.cmds.ConfirmCheckIn(ctx, s.staff, "BK-2", "123456", "")

		s.True(errs.Is(err, errs.ErrSessionNotFound))
		s.True(s.cmds.Session(s.staff).HasLoaded("BK-1"))
	})

	s.Run("error: concurrent confirmation for the same booking", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).
			Return(verification(builder.NewBookingBuilder().Payload, ""), nil)
		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)

		release, err := s.inflight.Acquire("booking:BK-1")
		s.Require().NoError(err)
		defer release()

		_, err = s.cmds.ConfirmCheckIn(ctx, s.staff, "BK-1", "123456", "")
		s.True(errs.Is(err, commands.ErrOperationInFlight))
	})
}

// ================================================================================
// ConfirmCheckOut / ResendCode
// ================================================================================

func (s *CheckInCommandsTestSuite) TestConfirmCheckOut() {
	ctx := context.Background()

	s.Run("success: tour guide routes to the tour-guide endpoint", func() {
		s.SetupTest()
		s.gateway.EXPECT().CheckOut(gomock.Any(), checkin.CheckoutTourGuide, checkin.BookingID("BK-1")).
			Return(&shared.Ack{Message: "Checked out"}, nil)

		res, err := s.cmds.ConfirmCheckOut(ctx, s.staff, user.RoleTourGuide, "BK-1")

		s.Require().NoError(err)
		s.Equal(checkin.CheckoutTourGuide, res.Endpoint)
		s.Equal("Checked out", res.Message)
	})

	s.Run("success: host routes to the host endpoint", func() {
		s.SetupTest()
		s.gateway.EXPECT().CheckOut(gomock.Any(), checkin.CheckoutHost, checkin.BookingID("BK-1")).
			Return(&shared.Ack{Message: "Checked out"}, nil)

		res, err := s.cmds.ConfirmCheckOut(ctx, s.staff, user.RoleHost, "BK-1")

		s.Require().NoError(err)
		s.Equal(checkin.CheckoutHost, res.Endpoint)
	})

	s.Run("error: guests cannot confirm checkout", func() {
		s.SetupTest()
		_, err := s.cmds.ConfirmCheckOut(ctx, s.staff, user.RoleGuest, "BK-1")
		s.True(errs.Is(err, commands.ErrGuardRefused))
	})

	s.Run("error: missing role is a validation error", func() {
		s.SetupTest()
		_, err := s.cmds.ConfirmCheckOut(ctx, s.staff, "", "BK-1")
		s.True(errs.Is(err, errs.ErrValidation))
	})
}

func (s *CheckInCommandsTestSuite) TestResendCode() {
	ctx := context.Background()

	s.Run("error: only available for the loaded booking", func() {
		s.SetupTest()
		_, err := s.cmds.ResendCode(ctx, s.staff, "BK-1")
		s.True(errs.Is(err, commands.ErrResendNotAvailable))
	})

	s.Run("success: resends for the loaded booking", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).
			Return(verification(builder.NewBookingBuilder().Payload, ""), nil)
		s.gateway.EXPECT().ResendCode(gomock.Any(), checkin.BookingID("BK-1")).
			Return(&shared.Ack{Message: "Code sent to guest"}, nil)

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)

		msg, err := s.cmds.ResendCode(ctx, s.staff, "BK-1")

		s.Require().NoError(err)
		s.Equal("Code sent to guest", msg)
		s.Contains(s.sent.topics(), shared.TopicCodeResent)
	})
}

// ================================================================================
// Payment gate
// ================================================================================

func (s *CheckInCommandsTestSuite) TestPaymentGate() {
	ctx := context.Background()

	s.Run("success: verifying the reference re-fetches the booking", func() {
		s.SetupTest()
		gomock.InOrder(
			s.gateway.EXPECT().VerifyBooking(gomock.Any(), checkin.BookingID("BK-1")).
				Return(gatedVerification("https://pay.example/bk1"), nil),
			s.gateway.EXPECT().CollectPayment(gomock.Any(), "TX-9").Return(nil),
			s.gateway.EXPECT().VerifyBooking(gomock.Any(), checkin.BookingID("BK-1")).
				Return(verification(builder.NewBookingBuilder().Payload, "Booking found"), nil),
		)

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)
		for i := 0; i < 5; i++ {
			s.Require().True(s.clock.Tick())
		}
		s.Eventually(func() bool { return s.gates.Status(s.staff).Countdown == 15 }, time.Second, 5*time.Millisecond)

		res, err := s.gates.Verify(ctx, s.staff, " TX-9 ")

		s.Require().NoError(err)
		s.True(res.Refetched)
		s.False(res.Dismissed)
		s.Equal(paymentgate.PhaseVerified, res.State.Phase)
		s.True(s.cmds.Session(s.staff).HasLoaded("BK-1"))
		s.Equal(paymentgate.PhaseHidden, s.gates.Status(s.staff).Phase)
		s.Contains(s.sent.topics(), shared.TopicPaymentVerified)
		s.Empty(s.redirector.calls)
	})

	s.Run("error: empty reference is rejected and the gate stays open", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).Return(gatedVerification("https://pay.example/bk1"), nil)

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)

		_, err = s.gates.Verify(ctx, s.staff, "  ")

		s.True(errs.Is(err, errs.ErrValidation))
		s.True(s.gates.Status(s.staff).Phase.IsOpen())
	})

	s.Run("error: collection failure keeps the gate open", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).Return(gatedVerification("https://pay.example/bk1"), nil)
		s.gateway.EXPECT().CollectPayment(gomock.Any(), "TX-0").
			Return(&marketplace.BusinessError{Status: 400, Message: "Unknown transaction reference"})

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)

		_, err = s.gates.Verify(ctx, s.staff, "TX-0")

		s.Equal("Unknown transaction reference", shared.UserMessage(err))
		s.Equal(paymentgate.PhaseShown, s.gates.Status(s.staff).Phase)
	})

	s.Run("success: countdown reaching zero redirects once", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).Return(gatedVerification("https://pay.example/bk1"), nil)

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)
		for i := 0; i < paymentgate.DefaultCountdown; i++ {
			s.Require().True(s.clock.Tick())
		}

		s.Eventually(func() bool {
			s.redirector.mu.Lock()
			defer s.redirector.mu.Unlock()
			return len(s.redirector.calls) == 1
		}, time.Second, 10*time.Millisecond)
		s.Equal(paymentgate.PhaseAutoRedirected, s.gates.Status(s.staff).Phase)
	})

	s.Run("success: dismiss closes the gate", func() {
		s.SetupTest()
		s.gateway.EXPECT().VerifyBooking(gomock.Any(), gomock.Any()).Return(gatedVerification("https://pay.example/bk1"), nil)

		_, err := s.cmds.LookupBooking(ctx, s.staff, "BK-1")
		s.Require().NoError(err)

		s.True(s.gates.Dismiss(s.staff))
		s.False(s.gates.Dismiss(s.staff))
		s.Equal(paymentgate.PhaseHidden, s.gates.Status(s.staff).Phase)

		_, err = s.gates.Verify(ctx, s.staff, "TX-9")
		s.True(errs.Is(err, errs.ErrGateNotFound))
	})
}
