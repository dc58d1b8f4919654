package marketplace

import (
	"bytes"
	"encoding/json"
	"time"

	"guest-conversion/internal/domain/checkin"
	"guest-conversion/internal/domain/dealcode"
	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/pkg/money"
)

type unlockRecordWire struct {
	ID                    string       `json:"id"`
	PropertyID            string       `json:"propertyId"`
	PropertyTitle         string       `json:"propertyTitle"`
	PaymentMethod         string       `json:"paymentMethod"`
	AmountPaid            money.Amount `json:"amountPaid"`
	Currency              string       `json:"currency"`
	AppreciationSubmitted bool         `json:"appreciationSubmitted"`
	AppreciationLevel     string       `json:"appreciationLevel"`
	DealCodeIssued        bool         `json:"dealCodeIssued"`
	RefundIssued          bool         `json:"refundIssued"`
	BookingID             string       `json:"bookingId"`
	BookingCompleted      bool         `json:"bookingCompleted"`
	CanCancel             bool         `json:"canCancel"`
	CanRequestDealCode    bool         `json:"canRequestDealCode"`
	CanBook               bool         `json:"canBook"`
	Status                string       `json:"status"`
	UnlockedAt            *time.Time   `json:"unlockedAt"`
}

func (w unlockRecordWire) toSpec() unlock.RecordSpec {
	spec := unlock.RecordSpec{
		ID:                    w.ID,
		PropertyID:            w.PropertyID,
		PropertyTitle:         w.PropertyTitle,
		PaymentMethod:         unlock.PaymentMethod(w.PaymentMethod),
		AmountPaid:            w.AmountPaid,
		Currency:              w.Currency,
		AppreciationSubmitted: w.AppreciationSubmitted,
		AppreciationLevel:     unlock.AppreciationLevel(w.AppreciationLevel),
		DealCodeIssued:        w.DealCodeIssued,
		RefundIssued:          w.RefundIssued,
		BookingID:             w.BookingID,
		BookingCompleted:      w.BookingCompleted,
		Guards: unlock.Guards{
			CanCancel:          w.CanCancel,
			CanRequestDealCode: w.CanRequestDealCode,
			CanBook:            w.CanBook,
		},
		Status: unlock.Status(w.Status),
	}
	if w.UnlockedAt != nil {
		spec.UnlockedAt = *w.UnlockedAt
	}
	return spec
}

type statsWire struct {
	Total           int          `json:"total"`
	Active          int          `json:"active"`
	Cancelled       int          `json:"cancelled"`
	Converted       int          `json:"converted"`
	PendingFeedback int          `json:"pendingFeedback"`
	TotalSpent      money.Amount `json:"totalSpent"`
}

type unlockStatsWire struct {
	Unlocks []unlockRecordWire `json:"unlocks"`
	Stats   statsWire          `json:"stats"`
}

func (w unlockStatsWire) toStats() unlock.Stats {
	return unlock.Stats{
		Total:           w.Stats.Total,
		Active:          w.Stats.Active,
		Cancelled:       w.Stats.Cancelled,
		Converted:       w.Stats.Converted,
		PendingFeedback: w.Stats.PendingFeedback,
		TotalSpent:      w.Stats.TotalSpent,
	}
}

type dealCodeWire struct {
	Code             string     `json:"code"`
	RemainingUnlocks int        `json:"remainingUnlocks"`
	TotalUnlocks     int        `json:"totalUnlocks"`
	ExpiryDate       *time.Time `json:"expiryDate"`
	CreatedDate      *time.Time `json:"createdDate"`
	IsActive         bool       `json:"isActive"`
	Source           string     `json:"source"`
}

func (w dealCodeWire) toSpec() dealcode.Spec {
	spec := dealcode.Spec{
		Code:             w.Code,
		RemainingUnlocks: w.RemainingUnlocks,
		TotalUnlocks:     w.TotalUnlocks,
		IsActive:         w.IsActive,
		Source:           w.Source,
	}
	if w.ExpiryDate != nil {
		spec.ExpiryDate = *w.ExpiryDate
	}
	if w.CreatedDate != nil {
		spec.CreatedDate = *w.CreatedDate
	}
	return spec
}

type dealCodesWire struct {
	DealCodes []dealCodeWire `json:"dealCodes"`
}

type appreciationRequestWire struct {
	UnlockID          string `json:"unlockId"`
	PropertyID        string `json:"propertyId"`
	AppreciationLevel string `json:"appreciationLevel"`
	Feedback          string `json:"feedback,omitempty"`
}

type appreciationResultWire struct {
	DealCodeGenerated bool           `json:"dealCodeGenerated"`
	DealCode          issuedCodeWire `json:"dealCode"`
	RefundIssued      bool           `json:"refundIssued"`
	RefundAmount      money.Amount   `json:"refundAmount"`
}

// issuedCodeWire is the minted deal code. The marketplace sends an object
// with a code field; older deployments sent the bare code string.
type issuedCodeWire struct {
	Code string `json:"code"`
}

func (w *issuedCodeWire) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		w.Code = ""
		return nil
	case b[0] == '"':
		return json.Unmarshal(b, &w.Code)
	}
	var obj struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	w.Code = obj.Code
	return nil
}

type bookingRequestWire struct {
	CheckIn         string       `json:"checkIn"`
	CheckOut        string       `json:"checkOut"`
	Guests          int          `json:"guests"`
	SpecialRequests string       `json:"specialRequests,omitempty"`
	TotalPrice      money.Amount `json:"totalPrice"`
}

type bookingCreatedWire struct {
	BookingID string `json:"bookingId"`
}

type guestWire struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

type listingWire struct {
	Title *string  `json:"title"`
	Rules []string `json:"rules"`
}

type bookingWire struct {
	BookingID     string        `json:"bookingId"`
	Guest         *guestWire    `json:"guest"`
	Guests        *int          `json:"guests"`
	CheckIn       *time.Time    `json:"checkIn"`
	CheckOut      *time.Time    `json:"checkOut"`
	Property      *listingWire  `json:"property"`
	Tour          *listingWire  `json:"tour"`
	PaymentStatus *string       `json:"paymentStatus"`
	TotalAmount   *money.Amount `json:"totalAmount"`
	Currency      *string       `json:"currency"`
	CheckedIn     bool          `json:"checkedIn"`
}

func (w bookingWire) toPayload() checkin.Payload {
	p := checkin.Payload{
		BookingID:        w.BookingID,
		Guests:           w.Guests,
		CheckIn:          w.CheckIn,
		CheckOut:         w.CheckOut,
		PaymentStatus:    w.PaymentStatus,
		TotalAmount:      w.TotalAmount,
		Currency:         w.Currency,
		AlreadyCheckedIn: w.CheckedIn,
	}
	if w.Guest != nil {
		p.GuestFirstName = w.Guest.FirstName
		p.GuestLastName = w.Guest.LastName
		p.GuestEmail = w.Guest.Email
		p.GuestPhone = w.Guest.Phone
	}
	if w.Property != nil {
		p.PropertyTitle = w.Property.Title
		p.Rules = w.Property.Rules
	}
	if w.Tour != nil {
		p.TourTitle = w.Tour.Title
		if len(p.Rules) == 0 {
			p.Rules = w.Tour.Rules
		}
	}
	return p
}

type verifyResultWire struct {
	Booking *bookingWire `json:"booking"`
}

type bookingIDWire struct {
	BookingID string `json:"bookingId"`
}

type confirmCheckInWire struct {
	BookingID    string `json:"bookingId"`
	Code         string `json:"code"`
	Instructions string `json:"instructions"`
}

type cancelWire struct {
	Reason string `json:"reason"`
}

type collectWire struct {
	TransactionReference string `json:"transactionReference"`
}

const dateLayout = "2006-01-02"
