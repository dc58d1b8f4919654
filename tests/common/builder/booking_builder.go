//go:build unit || e2e

package builder

import (
	"time"

	"guest-conversion/internal/domain/checkin"
	"guest-conversion/internal/pkg/money"
)

type BookingBuilder struct {
	Payload checkin.Payload
}

func NewBookingBuilder() *BookingBuilder {
	first, last := "Aiko", "Tanaka"
	email, phone := "aiko@example.com", "+81-90-0000-0000"
	guests := 2
	in := time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC)
	out := time.Date(2026, 4, 13, 11, 0, 0, 0, time.UTC)
	title, status, currency := "Seaside Loft", "paid", "usd"
	total := money.MustParse("360.00")
	return &BookingBuilder{
		Payload: checkin.Payload{
			BookingID:      "BK-1",
			GuestFirstName: &first,
			GuestLastName:  &last,
			GuestEmail:     &email,
			GuestPhone:     &phone,
			Guests:         &guests,
			CheckIn:        &in,
			CheckOut:       &out,
			PropertyTitle:  &title,
			PaymentStatus:  &status,
			TotalAmount:    &total,
			Currency:       &currency,
			Rules:          []string{"No smoking", "Quiet after 22:00"},
		},
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.Payload.BookingID = id
	return b
}

func (b *BookingBuilder) AsTour(title string) *BookingBuilder {
	b.Payload.TourTitle = &title
	b.Payload.PropertyTitle = nil
	return b
}

func (b *BookingBuilder) Sparse() *BookingBuilder {
	b.Payload = checkin.Payload{BookingID: b.Payload.BookingID}
	return b
}

func (b *BookingBuilder) BuildDomain() (checkin.BookingDetails, error) {
	return checkin.MapDetails(b.Payload)
}

func (b *BookingBuilder) MustBuild() checkin.BookingDetails {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}
