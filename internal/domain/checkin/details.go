package checkin

import (
	"fmt"
	"strings"
	"time"

	"guest-conversion/internal/pkg/money"
	"guest-conversion/internal/pkg/patch"
)

const (
	PlaceholderPhone   = "Not provided"
	PlaceholderRules   = "No specific rules"
	PlaceholderTitle   = "Untitled"
	PlaceholderGuest   = "Guest"
	PlaceholderNoDates = "Dates not provided"
)

type ListingKind string

const (
	ListingProperty ListingKind = "property"
	ListingTour     ListingKind = "tour"
)

// Payload is the booking as the marketplace returns it; any field may be absent.
type Payload struct {
	BookingID        string
	GuestFirstName   *string
	GuestLastName    *string
	GuestEmail       *string
	GuestPhone       *string
	Guests           *int
	CheckIn          *time.Time
	CheckOut         *time.Time
	PropertyTitle    *string
	TourTitle        *string
	PaymentStatus    *string
	TotalAmount      *money.Amount
	Currency         *string
	Rules            []string
	AlreadyCheckedIn bool
}

type BookingDetails struct {
	BookingID        BookingID
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	Guests           int
	CheckIn          time.Time
	CheckOut         time.Time
	StayDuration     string
	Kind             ListingKind
	ListingTitle     string
	PaymentStatus    string
	TotalAmount      money.Amount
	Currency         string
	Rules            []string
	AlreadyCheckedIn bool
}

// MapDetails normalises a payload; absent fields fall back to placeholders.
func MapDetails(p Payload) (BookingDetails, error) {
	id, err := NewBookingID(p.BookingID)
	if err != nil {
		return BookingDetails{}, err
	}

	d := BookingDetails{
		BookingID:        id,
		GuestName:        guestName(p.GuestFirstName, p.GuestLastName),
		GuestEmail:       patch.Coalesce(p.GuestEmail, ""),
		GuestPhone:       patch.CoalesceString(p.GuestPhone, PlaceholderPhone),
		Guests:           patch.Coalesce(p.Guests, 1),
		CheckIn:          patch.Coalesce(p.CheckIn, time.Time{}),
		CheckOut:         patch.Coalesce(p.CheckOut, time.Time{}),
		PaymentStatus:    patch.CoalesceString(p.PaymentStatus, "unknown"),
		TotalAmount:      patch.Coalesce(p.TotalAmount, money.Zero()),
		Currency:         money.NormalizeCurrency(patch.Coalesce(p.Currency, "")),
		AlreadyCheckedIn: p.AlreadyCheckedIn,
	}

	if p.TourTitle != nil && strings.TrimSpace(*p.TourTitle) != "" {
		d.Kind = ListingTour
		d.ListingTitle = *p.TourTitle
	} else {
		d.Kind = ListingProperty
		d.ListingTitle = patch.CoalesceString(p.PropertyTitle, PlaceholderTitle)
	}

	d.StayDuration = FormatStay(d.CheckIn, d.CheckOut)

	for _, r := range p.Rules {
		if r = strings.TrimSpace(r); r != "" {
			d.Rules = append(d.Rules, r)
		}
	}
	if len(d.Rules) == 0 {
		d.Rules = []string{PlaceholderRules}
	}
	return d, nil
}

func guestName(first, last *string) string {
	name := strings.TrimSpace(patch.Coalesce(first, "") + " " + patch.Coalesce(last, ""))
	if name == "" {
		return PlaceholderGuest
	}
	return name
}

// FormatStay counts calendar nights between the two dates.
func FormatStay(checkIn, checkOut time.Time) string {
	if checkIn.IsZero() || checkOut.IsZero() {
		return PlaceholderNoDates
	}
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	nights := int(out.Sub(in).Hours() / 24)
	switch {
	case nights <= 0:
		return "Same day"
	case nights == 1:
		return "1 night"
	default:
		return fmt.Sprintf("%d nights", nights)
	}
}
