//go:build e2e

package conversion_test

import (
	"net/http"
	"testing"
	"time"

	"guest-conversion/internal/domain/user"
	"guest-conversion/internal/handler/dto/request"
	"guest-conversion/internal/handler/dto/response"
	"guest-conversion/internal/usecase/shared"
	"guest-conversion/tests/common/authtest"
	"guest-conversion/tests/common/dbtest"
	"guest-conversion/tests/common/httptest"
	"guest-conversion/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	statsPath        = "/api/guest/unlocks/stats"
	dealCodesPath    = "/api/guest/deal-codes"
	appreciationPath = "/api/guest/unlocks/appreciation"
)

type ConversionSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ConversionSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestConversionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ConversionSuite))
}

func unlockWire(id, method string, overrides map[string]any) map[string]any {
	w := map[string]any{
		"id":                 id,
		"propertyId":         "P-" + id,
		"propertyTitle":      "Seaside Loft",
		"paymentMethod":      method,
		"amountPaid":         "25.00",
		"currency":           "usd",
		"status":             "unlocked",
		"canCancel":          method == "monthly_booking",
		"canRequestDealCode": method == "monthly_booking",
		"unlockedAt":         "2026-03-01T10:00:00Z",
	}
	for k, v := range overrides {
		w[k] = v
	}
	return w
}

func statsEnvelope(unlocks ...map[string]any) map[string]any {
	return e2e.Envelope(true, "", map[string]any{
		"unlocks": unlocks,
		"stats":   map[string]any{"total": len(unlocks), "active": len(unlocks), "totalSpent": "25.00"},
	})
}

// =============================================================================
// TestAppreciation - not_appreciated mints a deal code and enqueues notifications
// =============================================================================

func (s *ConversionSuite) TestAppreciation() {
	s.Run("not_appreciated mints a deal code visible in the ledger", func() {
		guest, token := s.jwt.Issue(s.T(), user.RoleGuest)

		s.Marketplace.On(http.MethodGet, statsPath, http.StatusOK, statsEnvelope(unlockWire("U1", "monthly_booking", nil)))
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/unlocks", nil, token)
		var before response.UnlockSnapshotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &before)
		require.Len(s.T(), before.Unlocks, 1)
		s.Equal("feedback_pending", before.Unlocks[0].Phase)

		s.Marketplace.On(http.MethodPost, appreciationPath, http.StatusOK, e2e.Envelope(true, "Sorry it missed the mark. Here is a deal code.", map[string]any{
			"dealCodeGenerated": true,
			"dealCode":          map[string]any{"code": "ABC123"},
		}))
		s.Marketplace.On(http.MethodGet, statsPath, http.StatusOK, statsEnvelope(unlockWire("U1", "monthly_booking", map[string]any{
			"appreciationSubmitted": true,
			"appreciationLevel":     "not_appreciated",
			"dealCodeIssued":        true,
			"canCancel":             false,
			"canRequestDealCode":    false,
		})))
		s.Marketplace.On(http.MethodGet, dealCodesPath, http.StatusOK, e2e.Envelope(true, "", map[string]any{
			"dealCodes": []map[string]any{{
				"code":             "ABC123",
				"remainingUnlocks": 3,
				"totalUnlocks":     3,
				"expiryDate":       time.Now().AddDate(0, 3, 0).UTC().Format(time.RFC3339),
				"createdDate":      time.Now().UTC().Format(time.RFC3339),
				"isActive":         true,
				"source":           "not_appreciated_feedback",
			}},
		}))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/unlocks/U1/appreciation",
			request.AppreciationRequest{PropertyID: "P-U1", Level: "not_appreciated", Feedback: "Too noisy"}, token)

		var body response.AppreciationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ABC123", body.DealCode)
		s.Equal("Sorry it missed the mark. Here is a deal code.", body.Message)
		require.NotNil(s.T(), body.Unlocks)
		s.Equal("deal_code_issued", body.Unlocks.Unlocks[0].Phase)
		require.NotNil(s.T(), body.DealCodes)
		require.Len(s.T(), body.DealCodes.DealCodes, 1)
		s.True(body.DealCodes.DealCodes[0].Usable)

		calls := s.Marketplace.Calls(http.MethodPost, appreciationPath)
		require.Len(s.T(), calls, 1)
		s.Equal("Bearer "+token, calls[0].Authorization)
		if diff := cmp.Diff(map[string]any{
			"unlockId":          "U1",
			"propertyId":        "P-U1",
			"appreciationLevel": "not_appreciated",
			"feedback":          "Too noisy",
		}, calls[0].Body); diff != "" {
			s.T().Errorf("appreciation body mismatch (-want +got):\n%s", diff)
		}

		topics := dbtest.NotificationTopics(s.T(), s.DB, guest)
		s.Contains(topics, shared.TopicDealCodeIssued)
		for _, job := range dbtest.NotificationJobs(s.T(), s.DB, guest) {
			s.Equal("dashboard", job.Kind)
			s.Equal("queued", job.Status)
		}
	})

	s.Run("second submission is refused without a marketplace call", func() {
		_, token := s.jwt.Issue(s.T(), user.RoleGuest)
		s.Marketplace.On(http.MethodGet, statsPath, http.StatusOK, statsEnvelope(unlockWire("U1", "monthly_booking", map[string]any{
			"appreciationSubmitted": true,
			"appreciationLevel":     "neutral",
			"refundIssued":          true,
			"canRequestDealCode":    false,
		})))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/unlocks/U1/appreciation",
			request.AppreciationRequest{PropertyID: "P-U1", Level: "appreciated"}, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "appreciation already submitted")
		s.Empty(s.Marketplace.Calls(http.MethodPost, appreciationPath))
	})
}

// =============================================================================
// TestCancel - guards are enforced before the network
// =============================================================================

func (s *ConversionSuite) TestCancel() {
	s.Run("non-refundable unlock is refused locally", func() {
		_, token := s.jwt.Issue(s.T(), user.RoleGuest)
		s.Marketplace.On(http.MethodGet, statsPath, http.StatusOK, statsEnvelope(unlockWire("U2", "non_refundable", nil)))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/unlocks/U2/cancel",
			request.CancelUnlockRequest{Reason: "Changed my mind"}, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "unlock cannot be cancelled")
		s.Empty(s.Marketplace.Calls(http.MethodPost, "/api/guest/unlocks/U2/cancel"))
	})

	s.Run("marketplace refusal is surfaced verbatim and logged to the outbox", func() {
		guest, token := s.jwt.Issue(s.T(), user.RoleGuest)
		s.Marketplace.On(http.MethodGet, statsPath, http.StatusOK, statsEnvelope(unlockWire("U1", "monthly_booking", nil)))
		s.Marketplace.On(http.MethodPost, "/api/guest/unlocks/U1/cancel", http.StatusBadRequest,
			e2e.Envelope(false, "Cancellation window has closed", nil))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/unlocks/U1/cancel",
			request.CancelUnlockRequest{Reason: "Plans changed"}, token)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Cancellation window has closed")
		jobs := dbtest.NotificationJobs(s.T(), s.DB, guest)
		require.NotEmpty(s.T(), jobs)
		last := jobs[len(jobs)-1]
		s.Equal(shared.TopicOperationFailed, last.Topic)
		s.Equal("Cancellation window has closed", last.Payload["message"])
	})
}

// =============================================================================
// TestBookingPaymentGate - payment at the property opens the countdown gate
// =============================================================================

func (s *ConversionSuite) TestBookingPaymentGate() {
	s.Run("gated booking is verified by transaction reference", func() {
		guest, token := s.jwt.Issue(s.T(), user.RoleGuest)
		appreciated := unlockWire("U1", "monthly_booking", map[string]any{
			"appreciationSubmitted": true,
			"appreciationLevel":     "appreciated",
			"canRequestDealCode":    false,
			"canBook":               true,
		})
		s.Marketplace.On(http.MethodGet, statsPath, http.StatusOK, statsEnvelope(appreciated))
		s.Marketplace.On(http.MethodPost, "/api/guest/unlocks/U1/booking", http.StatusPaymentRequired,
			e2e.PaymentRequired("This booking requires payment at the property", "https://pay.example.com/U1"))
		s.Marketplace.On(http.MethodPost, "/api/payments/property/collect", http.StatusOK,
			e2e.Envelope(true, "Payment collected", nil))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/unlocks/U1/booking",
			request.BookingRequest{CheckIn: "2026-04-10", CheckOut: "2026-04-13", Guests: 2}, token)

		var booking response.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &booking)
		require.NotNil(s.T(), booking.PaymentGate)
		s.Equal("shown", booking.PaymentGate.Phase)
		s.Equal("https://pay.example.com/U1", booking.PaymentGate.PaymentURL)
		s.LessOrEqual(booking.PaymentGate.Countdown, s.Config.PaymentGate.CountdownSeconds)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payment-gate/verify",
			request.VerifyPaymentRequest{Reference: "TX-9"}, token)

		var verified response.VerifyPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &verified)
		s.True(verified.PaymentGate.Verified)
		s.True(verified.Refetched)

		collect := s.Marketplace.Calls(http.MethodPost, "/api/payments/property/collect")
		require.Len(s.T(), collect, 1)
		s.Equal("TX-9", collect[0].Body["transactionReference"])

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/payment-gate", nil, token)
		var after response.PaymentGateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &after)
		s.Equal("hidden", after.Phase)

		topics := dbtest.NotificationTopics(s.T(), s.DB, guest)
		s.Contains(topics, shared.TopicPaymentRequired)
		s.Contains(topics, shared.TopicPaymentVerified)
		for _, job := range dbtest.NotificationJobs(s.T(), s.DB, guest) {
			s.NotContains(job.Payload, "TX-9")
		}
	})

	s.Run("dismissed gate cannot be verified", func() {
		_, token := s.jwt.Issue(s.T(), user.RoleGuest)
		s.Marketplace.On(http.MethodGet, statsPath, http.StatusOK, statsEnvelope(unlockWire("U1", "monthly_booking", map[string]any{
			"appreciationSubmitted": true,
			"appreciationLevel":     "appreciated",
			"canRequestDealCode":    false,
			"canBook":               true,
		})))
		s.Marketplace.On(http.MethodPost, "/api/guest/unlocks/U1/booking", http.StatusPaymentRequired,
			e2e.PaymentRequired("This booking requires payment at the property", "https://pay.example.com/U1"))

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/unlocks/U1/booking",
			request.BookingRequest{CheckIn: "2026-04-10", CheckOut: "2026-04-13", Guests: 2}, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, nil)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/payment-gate", nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payment-gate/verify",
			request.VerifyPaymentRequest{Reference: "TX-9"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
		s.Empty(s.Marketplace.Calls(http.MethodPost, "/api/payments/property/collect"))
	})
}
