//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"guest-conversion/internal/domain/appreciation"
	"guest-conversion/internal/domain/dealcode"
	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/handler/api"
	reqdto "guest-conversion/internal/handler/dto/request"
	resdto "guest-conversion/internal/handler/dto/response"
	"guest-conversion/internal/infra/marketplace"
	"guest-conversion/internal/pkg/clock"
	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/pkg/money"
	"guest-conversion/internal/usecase/commands"
	"guest-conversion/tests/common/builder"
	"guest-conversion/tests/common/httptest"
	"guest-conversion/tests/common/testutil"
	commandsmock "guest-conversion/tests/mock/commands"
	queriesmock "guest-conversion/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const guestToken = "guest"

type UnlockHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockUnlockCommands
	mockUnlocks   *queriesmock.MockUnlockQueries
	mockDealCodes *queriesmock.MockDealCodeQueries
	guestID       uuid.UUID
}

func (s *UnlockHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUnlockCommands(s.mockCtrl)
	s.mockUnlocks = queriesmock.NewMockUnlockQueries(s.mockCtrl)
	s.mockDealCodes = queriesmock.NewMockDealCodeQueries(s.mockCtrl)
	s.guestID = uuid.New()

	clk := clock.NewMockClock(fixedNow)
	unlocks := api.NewUnlockHandler(s.mockCommands, s.mockUnlocks, clk)
	dealCodes := api.NewDealCodeHandler(s.mockDealCodes, clk)

	auth := fakeAuth(s.guestID)
	s.router.GET("/unlocks", auth, unlocks.List)
	s.router.POST("/unlocks/:id/cancel", auth, unlocks.Cancel)
	s.router.POST("/unlocks/:id/appreciation", auth, unlocks.Appreciate)
	s.router.POST("/unlocks/:id/booking", auth, unlocks.Book)
	s.router.GET("/deal-codes", auth, dealCodes.List)
}

func (s *UnlockHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUnlockHandlerSuite(t *testing.T) {
	suite.Run(t, new(UnlockHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *UnlockHandlerTestSuite) TestList() {
	s.Run("success: returns snapshot with phases", func() {
		s.SetupTest()
		snap := snapshotOf(
			builder.NewUnlockBuilder().WithID("U1"),
			builder.NewUnlockBuilder().WithID("U2").NonRefundable(),
		)
		s.mockUnlocks.EXPECT().Refresh(gomock.Any(), s.guestID).Return(snap, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unlocks", nil, guestToken)

		var body resdto.UnlockSnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Unlocks, 2)
		s.Equal("U1", body.Unlocks[0].ID)
		s.Equal(string(unlock.PhaseFeedbackPending), body.Unlocks[0].Phase)
		s.True(body.Unlocks[0].Guards.CanCancel)
		s.Equal(string(unlock.PhaseUnlocked), body.Unlocks[1].Phase)
		s.False(body.Unlocks[1].Guards.CanCancel)
		s.Equal(2, body.Stats.Total)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unlocks", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps refresh errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queryErr       error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "business error keeps marketplace wording",
				queryErr:       &marketplace.BusinessError{Status: http.StatusBadRequest, Message: "Guest profile is incomplete"},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Guest profile is incomplete",
			},
			{
				name:           "expired session passes through",
				queryErr:       &marketplace.BusinessError{Status: http.StatusUnauthorized, Message: "Session expired"},
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Session expired",
			},
			{
				name:           "transport error",
				queryErr:       &marketplace.TransportError{Message: "Network error, please try again", Err: errors.New("dial tcp")},
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Network error",
			},
			{
				name:           "unexpected error",
				queryErr:       errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.SetupTest()
				s.mockUnlocks.EXPECT().Refresh(gomock.Any(), s.guestID).Return(nil, tc.queryErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/unlocks", nil, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *UnlockHandlerTestSuite) TestCancel() {
	url := "/unlocks/U1/cancel"
	reqBody := reqdto.CancelUnlockRequest{Reason: "Plans changed"}

	s.Run("success: returns message and refreshed unlocks", func() {
		s.SetupTest()
		snap := snapshotOf(builder.NewUnlockBuilder().WithID("U1").Cancelled())
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.guestID, "U1", "Plans changed").
			Return(&commands.CancelResult{Message: "Unlock cancelled", Snapshot: snap}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.CancelUnlockResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Unlock cancelled", body.Message)
		s.Require().NotNil(body.Unlocks)
		s.Equal(string(unlock.PhaseCancelled), body.Unlocks.Unlocks[0].Phase)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate testutil.Mutation
		}{
			{name: "missing field: reason (required)", mutate: testutil.Without("reason")},
			{name: "reason length invalid (1001 chars)", mutate: testutil.Set("reason", strings.Repeat("a", 1001))},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				requestMap := testutil.RequestMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "guard refused",
				commandsError:  errs.Mark(unlock.ErrCancelNotAllowed, commands.ErrGuardRefused),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "unlock cannot be cancelled",
			},
			{
				name:           "operation in flight",
				commandsError:  commands.ErrOperationInFlight,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "operation already in progress",
			},
			{
				name:           "unlock not found",
				commandsError:  errs.Wrap(errs.ErrUnlockNotFound, "unlock U1"),
				expectedStatus: http.StatusNotFound,
			},
			{
				name:           "blank reason",
				commandsError:  errs.Validation(commands.ErrEmptyReason),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "cancellation reason is required",
			},
			{
				name:           "business error",
				commandsError:  &marketplace.BusinessError{Status: http.StatusBadRequest, Message: "Unlock already refunded"},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unlock already refunded",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.SetupTest()
				s.mockCommands.EXPECT().Cancel(gomock.Any(), s.guestID, "U1", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAppreciate
// ================================================================================

func (s *UnlockHandlerTestSuite) TestAppreciate() {
	url := "/unlocks/U1/appreciation"
	reqBody := reqdto.AppreciationRequest{PropertyID: "P1", Level: "not_appreciated", Feedback: "  too noisy  "}

	s.Run("success: returns minted deal code and ledger", func() {
		s.SetupTest()
		code := builder.NewDealCodeBuilder().WithCode("ABC123").MustBuild()
		ledger := dealcode.NewLedger([]*dealcode.DealCode{code}, fixedNow)
		expected := commands.AppreciationRequest{UnlockID: "U1", PropertyID: "P1", Level: "not_appreciated", Feedback: "too noisy"}

		s.mockCommands.EXPECT().SubmitAppreciation(gomock.Any(), s.guestID, expected).
			Return(&commands.AppreciationResult{
				DealCode: "ABC123",
				Outcome:  appreciation.Outcome{Reward: appreciation.RewardDealCode, DealCode: "ABC123"},
				Message:  "Thanks for the feedback",
				Ledger:   ledger,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.AppreciationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ABC123", body.DealCode)
		s.Equal(string(appreciation.RewardDealCode), body.Reward)
		s.Nil(body.RefundAmount)
		s.Require().NotNil(body.DealCodes)
		s.Require().Len(body.DealCodes.DealCodes, 1)
		s.True(body.DealCodes.DealCodes[0].Usable)
	})

	s.Run("success: refund amount is reported", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().SubmitAppreciation(gomock.Any(), s.guestID, gomock.Any()).
			Return(&commands.AppreciationResult{
				Outcome: appreciation.Outcome{Reward: appreciation.RewardRefund, RefundAmount: money.MustParse("25.00")},
				Message: "Refund issued",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.AppreciationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.DealCode)
		s.Require().NotNil(body.RefundAmount)
		s.Equal("25.00", body.RefundAmount.String())
	})

	s.Run("error: 400 Bad Request for unknown level", func() {
		s.SetupTest()
		requestMap := testutil.RequestMap(s.T(), reqBody, testutil.Set("level", "ecstatic"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 422 when appreciation was already submitted", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().SubmitAppreciation(gomock.Any(), s.guestID, gomock.Any()).
			Return(nil, errs.Mark(unlock.ErrAppreciationAlreadySubmitted, commands.ErrGuardRefused)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "appreciation already submitted")
	})
}

// ================================================================================
// TestBook
// ================================================================================

func (s *UnlockHandlerTestSuite) TestBook() {
	url := "/unlocks/U1/booking"
	total := money.MustParse("480.00")
	reqBody := reqdto.BookingRequest{CheckIn: "2026-04-10", CheckOut: "2026-04-13", Guests: 2, TotalPrice: &total}

	s.Run("success: returns 201 Created with booking id", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().ConvertToBooking(gomock.Any(), s.guestID, "U1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, req commands.BookingRequest) (*commands.BookingResult, error) {
				s.Equal(2, req.Guests)
				s.Equal(10, req.CheckIn.Day())
				s.True(req.TotalPrice.Equal(total))
				return &commands.BookingResult{BookingID: "BK-9", Message: "Booking created"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("BK-9", body.BookingID)
		s.Nil(body.PaymentGate)
	})

	s.Run("success: returns 202 Accepted when payment at property is required", func() {
		s.SetupTest()
		gate := paymentgate.State{
			ID:         uuid.New(),
			Owner:      s.guestID,
			Subject:    paymentgate.Subject{Kind: paymentgate.SubjectUnlock, ID: "U1"},
			PaymentURL: "https://pay.example.com/x",
			Countdown:  20,
			Phase:      paymentgate.PhaseShown,
			OpenedAt:   fixedNow,
		}
		s.mockCommands.EXPECT().ConvertToBooking(gomock.Any(), s.guestID, "U1", gomock.Any()).
			Return(&commands.BookingResult{Message: "This booking requires payment at the property", Gate: &gate}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &body)
		s.Require().NotNil(body.PaymentGate)
		s.Equal("shown", body.PaymentGate.Phase)
		s.Equal(20, body.PaymentGate.Countdown)
		s.Equal("https://pay.example.com/x", body.PaymentGate.PaymentURL)
		s.Equal("unlock", body.PaymentGate.Subject.Kind)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate testutil.Mutation
		}{
			{name: "missing field: checkIn (required)", mutate: testutil.Without("checkIn")},
			{name: "guests boundary invalid (0)", mutate: testutil.Set("guests", 0)},
			{name: "malformed checkOut", mutate: testutil.Set("checkOut", "13/04/2026")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				requestMap := testutil.RequestMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, guestToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 when unlock is not appreciated", func() {
		s.SetupTest()
		s.mockCommands.EXPECT().ConvertToBooking(gomock.Any(), s.guestID, "U1", gomock.Any()).
			Return(nil, errs.Mark(unlock.ErrBookingRequiresAppreciation, commands.ErrGuardRefused)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "booking requires an appreciated unlock")
	})
}

// ================================================================================
// TestDealCodes
// ================================================================================

func (s *UnlockHandlerTestSuite) TestDealCodes() {
	s.Run("success: usability is evaluated at request time", func() {
		s.SetupTest()
		usable := builder.NewDealCodeBuilder().WithCode("ABC123").MustBuild()
		spent := builder.NewDealCodeBuilder().WithCode("ZZZ999").WithRemaining(0).MustBuild()
		s.mockDealCodes.EXPECT().Refresh(gomock.Any(), s.guestID).
			Return(dealcode.NewLedger([]*dealcode.DealCode{usable, spent}, fixedNow), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deal-codes", nil, guestToken)

		var body resdto.DealCodeLedgerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.DealCodes, 2)
		byCode := map[string]bool{}
		for _, c := range body.DealCodes {
			byCode[c.Code] = c.Usable
		}
		s.True(byCode["ABC123"])
		s.False(byCode["ZZZ999"])
		s.Equal(1, body.Summary.Usable)
	})

	s.Run("error: business error keeps marketplace wording", func() {
		s.SetupTest()
		s.mockDealCodes.EXPECT().Refresh(gomock.Any(), s.guestID).
			Return(nil, &marketplace.BusinessError{Status: http.StatusBadRequest, Message: "Deal codes unavailable"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/deal-codes", nil, guestToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Deal codes unavailable")
	})
}
