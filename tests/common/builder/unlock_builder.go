//go:build unit || e2e

package builder

import (
	"time"

	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/pkg/money"
)

type UnlockBuilder struct {
	Spec unlock.RecordSpec
}

// NewUnlockBuilder は返金可能（monthly_booking）で未評価の解除記録を返す
func NewUnlockBuilder() *UnlockBuilder {
	return &UnlockBuilder{
		Spec: unlock.RecordSpec{
			ID:            "U1",
			PropertyID:    "P1",
			PropertyTitle: "Seaside Loft",
			PaymentMethod: unlock.PaymentMonthlyBooking,
			AmountPaid:    money.MustParse("25.00"),
			Currency:      "USD",
			Guards: unlock.Guards{
				CanCancel:          true,
				CanRequestDealCode: true,
			},
			Status:     unlock.StatusUnlocked,
			UnlockedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		},
	}
}

func (b *UnlockBuilder) With(mutate func(*UnlockBuilder)) *UnlockBuilder {
	mutate(b)
	return b
}

func (b *UnlockBuilder) WithID(id string) *UnlockBuilder {
	b.Spec.ID = id
	return b
}

func (b *UnlockBuilder) NonRefundable() *UnlockBuilder {
	b.Spec.PaymentMethod = unlock.PaymentNonRefundable
	b.Spec.Guards = unlock.Guards{}
	return b
}

func (b *UnlockBuilder) Appreciated(level unlock.AppreciationLevel) *UnlockBuilder {
	b.Spec.AppreciationSubmitted = true
	b.Spec.AppreciationLevel = level
	b.Spec.Guards.CanRequestDealCode = false
	b.Spec.Guards.CanBook = level == unlock.LevelAppreciated
	return b
}

func (b *UnlockBuilder) Cancelled() *UnlockBuilder {
	b.Spec.Status = unlock.StatusCancelled
	b.Spec.Guards = unlock.Guards{}
	return b
}

func (b *UnlockBuilder) Booked(bookingID string) *UnlockBuilder {
	b.Spec.BookingID = bookingID
	b.Spec.BookingCompleted = true
	b.Spec.Guards = unlock.Guards{}
	return b
}

func (b *UnlockBuilder) BuildDomain() (*unlock.Record, error) {
	return unlock.NewRecord(b.Spec)
}

func (b *UnlockBuilder) MustBuild() *unlock.Record {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
