package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"guest-conversion/internal/domain/appreciation"
	"guest-conversion/internal/domain/checkin"
	"guest-conversion/internal/domain/dealcode"
	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/usecase/shared"
)

var _ shared.MarketplaceGateway = (*Client)(nil)

func (c *Client) UnlockStats(ctx context.Context) (*shared.UnlockStats, error) {
	env, err := c.doRequest(ctx, http.MethodGet, "/api/guest/unlocks/stats", nil)
	if err != nil {
		return nil, err
	}
	var data unlockStatsWire
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	specs := make([]unlock.RecordSpec, 0, len(data.Unlocks))
	for _, w := range data.Unlocks {
		specs = append(specs, w.toSpec())
	}
	return &shared.UnlockStats{Records: specs, Stats: data.toStats()}, nil
}

func (c *Client) DealCodes(ctx context.Context) ([]dealcode.Spec, error) {
	env, err := c.doRequest(ctx, http.MethodGet, "/api/guest/deal-codes", nil)
	if err != nil {
		return nil, err
	}
	var data dealCodesWire
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	specs := make([]dealcode.Spec, 0, len(data.DealCodes))
	for _, w := range data.DealCodes {
		specs = append(specs, w.toSpec())
	}
	return specs, nil
}

func (c *Client) CancelUnlock(ctx context.Context, unlockID, reason string) (*shared.Ack, error) {
	path := fmt.Sprintf("/api/guest/unlocks/%s/cancel", url.PathEscape(unlockID))
	env, err := c.doRequest(ctx, http.MethodPost, path, cancelWire{Reason: reason})
	if err != nil {
		return nil, err
	}
	ack := env.ack()
	return &ack, nil
}

func (c *Client) SubmitAppreciation(ctx context.Context, in shared.AppreciationInput) (*appreciation.Response, error) {
	env, err := c.doRequest(ctx, http.MethodPost, "/api/guest/unlocks/appreciation", appreciationRequestWire{
		UnlockID:          in.UnlockID,
		PropertyID:        in.PropertyID,
		AppreciationLevel: in.Level.String(),
		Feedback:          in.Feedback,
	})
	if err != nil {
		return nil, err
	}
	var data appreciationResultWire
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	return &appreciation.Response{
		Message:           env.Message,
		DealCodeGenerated: data.DealCodeGenerated,
		DealCode:          data.DealCode.Code,
		RefundIssued:      data.RefundIssued,
		RefundAmount:      data.RefundAmount,
	}, nil
}

func (c *Client) CreateBooking(ctx context.Context, unlockID string, in shared.BookingInput) (*shared.BookingCreated, error) {
	path := fmt.Sprintf("/api/guest/unlocks/%s/booking", url.PathEscape(unlockID))
	env, err := c.doRequest(ctx, http.MethodPost, path, bookingRequestWire{
		CheckIn:         in.CheckIn.Format(dateLayout),
		CheckOut:        in.CheckOut.Format(dateLayout),
		Guests:          in.Guests,
		SpecialRequests: in.SpecialRequests,
		TotalPrice:      in.TotalPrice,
	})
	if err != nil {
		return nil, err
	}
	var data bookingCreatedWire
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	return &shared.BookingCreated{BookingID: data.BookingID, Ack: env.ack()}, nil
}

func (c *Client) VerifyBooking(ctx context.Context, bookingID checkin.BookingID) (*shared.BookingVerification, error) {
	env, err := c.doRequest(ctx, http.MethodPost, "/api/bookings/verify", bookingIDWire{BookingID: bookingID.String()})
	if err != nil {
		return nil, err
	}
	var data verifyResultWire
	if err := env.decodeData(&data); err != nil {
		return nil, err
	}
	result := &shared.BookingVerification{Ack: env.ack()}
	if data.Booking != nil {
		payload := data.Booking.toPayload()
		result.Payload = &payload
	}
	return result, nil
}

func (c *Client) ConfirmCheckIn(ctx context.Context, bookingID checkin.BookingID, code checkin.ConfirmationCode, instructions checkin.Instructions) (*shared.Ack, error) {
	env, err := c.doRequest(ctx, http.MethodPost, "/api/bookings/confirm-checkin", confirmCheckInWire{
		BookingID:    bookingID.String(),
		Code:         code.String(),
		Instructions: instructions.String(),
	})
	if err != nil {
		return nil, err
	}
	ack := env.ack()
	return &ack, nil
}

func (c *Client) ResendCode(ctx context.Context, bookingID checkin.BookingID) (*shared.Ack, error) {
	path := fmt.Sprintf("/api/bookings/%s/resend-code", url.PathEscape(bookingID.String()))
	env, err := c.doRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}
	ack := env.ack()
	return &ack, nil
}

func (c *Client) CheckOut(ctx context.Context, endpoint checkin.CheckoutEndpoint, bookingID checkin.BookingID) (*shared.Ack, error) {
	var prefix string
	switch endpoint {
	case checkin.CheckoutHost:
		prefix = "/api/host/bookings/"
	case checkin.CheckoutTourGuide:
		prefix = "/api/tour-guide/bookings/"
	default:
		return nil, fmt.Errorf("marketplace: unknown checkout endpoint %q", endpoint)
	}
	env, err := c.doRequest(ctx, http.MethodPost, prefix+url.PathEscape(bookingID.String())+"/checkout", nil)
	if err != nil {
		return nil, err
	}
	ack := env.ack()
	return &ack, nil
}

// CollectPayment also satisfies paymentgate.Collector.
func (c *Client) CollectPayment(ctx context.Context, reference string) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/api/payments/property/collect", collectWire{TransactionReference: reference})
	return err
}
