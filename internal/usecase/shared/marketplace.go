package shared

import (
	"context"
	"time"

	"guest-conversion/internal/domain/appreciation"
	"guest-conversion/internal/domain/checkin"
	"guest-conversion/internal/domain/dealcode"
	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/pkg/money"
)

// MarketplaceGateway is the marketplace REST API as the core sees it.
// Every call forwards the access token carried by ctx.
type MarketplaceGateway interface {
	UnlockStats(ctx context.Context) (*UnlockStats, error)
	DealCodes(ctx context.Context) ([]dealcode.Spec, error)
	CancelUnlock(ctx context.Context, unlockID, reason string) (*Ack, error)
	SubmitAppreciation(ctx context.Context, in AppreciationInput) (*appreciation.Response, error)
	CreateBooking(ctx context.Context, unlockID string, in BookingInput) (*BookingCreated, error)
	VerifyBooking(ctx context.Context, bookingID checkin.BookingID) (*BookingVerification, error)
	ConfirmCheckIn(ctx context.Context, bookingID checkin.BookingID, code checkin.ConfirmationCode, instructions checkin.Instructions) (*Ack, error)
	ResendCode(ctx context.Context, bookingID checkin.BookingID) (*Ack, error)
	CheckOut(ctx context.Context, endpoint checkin.CheckoutEndpoint, bookingID checkin.BookingID) (*Ack, error)
	CollectPayment(ctx context.Context, reference string) error
}

// Ack is a successful envelope with no data of interest.
type Ack struct {
	Message    string
	PaymentURL string
}

type UnlockStats struct {
	Records []unlock.RecordSpec
	Stats   unlock.Stats
}

type AppreciationInput struct {
	UnlockID   string
	PropertyID string
	Level      unlock.AppreciationLevel
	Feedback   string
}

type BookingInput struct {
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
	TotalPrice      money.Amount
}

type BookingCreated struct {
	BookingID string
	Ack
}

// BookingVerification carries either the booking payload or, when the
// booking is gated, only the envelope message and payment URL.
type BookingVerification struct {
	Payload *checkin.Payload
	Ack
}

// PaymentSignaler is implemented by marketplace errors whose envelope
// carried a payment URL.
type PaymentSignaler interface {
	PaymentSignal() (message, paymentURL string)
}
