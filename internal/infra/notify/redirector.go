package notify

import (
	"context"

	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/usecase/shared"

	"github.com/google/uuid"
)

const redirectMessage = "Redirecting you to the payment page"

// PaymentRedirector hands the payment page to the guest's client through the
// notification channel.
type PaymentRedirector struct {
	target shared.Notifier
}

func NewPaymentRedirector(target shared.Notifier) *PaymentRedirector {
	return &PaymentRedirector{target: target}
}

func (r *PaymentRedirector) Redirect(ctx context.Context, owner uuid.UUID, subject paymentgate.Subject, paymentURL string) error {
	return r.target.Notify(ctx, shared.Notification{
		UserID:  owner,
		Level:   shared.LevelInfo,
		Topic:   shared.TopicPaymentRedirect,
		Message: redirectMessage,
		Data: map[string]string{
			"url":     paymentURL,
			"subject": subject.String(),
		},
	})
}

var _ paymentgate.Redirector = (*PaymentRedirector)(nil)
