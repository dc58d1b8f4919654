package shared

import (
	"context"

	"guest-conversion/internal/pkg/errs"

	"github.com/google/uuid"
)

type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

const (
	TopicUnlockCancelled       = "unlock_cancelled"
	TopicAppreciationSubmitted = "appreciation_submitted"
	TopicDealCodeIssued        = "deal_code_issued"
	TopicBookingCreated        = "booking_created"
	TopicCheckInConfirmed      = "checkin_confirmed"
	TopicCheckOutConfirmed     = "checkout_confirmed"
	TopicCodeResent            = "code_resent"
	TopicPaymentRequired       = "payment_required"
	TopicPaymentRedirect       = "payment_redirect"
	TopicPaymentVerified       = "payment_verified"
	TopicOperationFailed       = "operation_failed"
)

// Notification is a user-facing message; Message is shown verbatim.
type Notification struct {
	UserID  uuid.UUID
	Level   NotificationLevel
	Topic   string
	Message string
	Data    map[string]string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// UserFacing is implemented by errors whose message may be shown to the user as is.
type UserFacing interface {
	UserMessage() string
}

// UserMessage prefers the marketplace's own wording over the Go error text.
func UserMessage(err error) string {
	var uf UserFacing
	if errs.As(err, &uf) {
		if msg := uf.UserMessage(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
