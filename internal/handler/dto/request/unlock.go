package request

import (
	"strings"
	"time"

	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/pkg/money"
	"guest-conversion/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type CancelUnlockRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type AppreciationRequest struct {
	PropertyID string `json:"propertyId"`
	Level      string `json:"level" binding:"required,oneof=appreciated neutral not_appreciated"`
	Feedback   string `json:"feedback" binding:"max=2000"`
}

func (r AppreciationRequest) ToCommand(unlockID string) (commands.AppreciationRequest, error) {
	var out commands.AppreciationRequest
	if err := copier.Copy(&out, &r); err != nil {
		return commands.AppreciationRequest{}, errs.Wrap(err, "failed to map appreciation request")
	}
	out.UnlockID = unlockID
	out.Feedback = strings.TrimSpace(out.Feedback)
	return out, nil
}

// Dates are calendar days (YYYY-MM-DD).
type BookingRequest struct {
	CheckIn         string        `json:"checkIn" binding:"required"`
	CheckOut        string        `json:"checkOut" binding:"required"`
	Guests          int           `json:"guests" binding:"required,min=1,max=50"`
	SpecialRequests string        `json:"specialRequests" binding:"max=2000"`
	TotalPrice      *money.Amount `json:"totalPrice"`
}

func (r BookingRequest) ToCommand() (commands.BookingRequest, error) {
	in, err := time.Parse(dateLayout, strings.TrimSpace(r.CheckIn))
	if err != nil {
		return commands.BookingRequest{}, errs.Validation(errs.Wrap(err, "invalid checkIn"))
	}
	out, err := time.Parse(dateLayout, strings.TrimSpace(r.CheckOut))
	if err != nil {
		return commands.BookingRequest{}, errs.Validation(errs.Wrap(err, "invalid checkOut"))
	}
	total := money.Zero()
	if r.TotalPrice != nil {
		total = *r.TotalPrice
	}
	return commands.BookingRequest{
		CheckIn:         in,
		CheckOut:        out,
		Guests:          r.Guests,
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
		TotalPrice:      total,
	}, nil
}
