package response

import (
	"time"

	"guest-conversion/internal/domain/checkin"
	"guest-conversion/internal/pkg/money"
	"guest-conversion/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type BookingDetailsResponse struct {
	BookingID        string       `json:"bookingId"`
	GuestName        string       `json:"guestName"`
	GuestEmail       string       `json:"guestEmail"`
	GuestPhone       string       `json:"guestPhone"`
	Guests           int          `json:"guests"`
	CheckIn          time.Time    `json:"checkIn"`
	CheckOut         time.Time    `json:"checkOut"`
	StayDuration     string       `json:"stayDuration"`
	Kind             string       `json:"kind"`
	ListingTitle     string       `json:"listingTitle"`
	PaymentStatus    string       `json:"paymentStatus"`
	TotalAmount      money.Amount `json:"totalAmount"`
	Currency         string       `json:"currency"`
	Rules            []string     `json:"rules"`
	AlreadyCheckedIn bool         `json:"alreadyCheckedIn"`
}

type SessionResponse struct {
	Step    string                  `json:"step"`
	Booking *BookingDetailsResponse `json:"booking,omitempty"`
}

type LookupResponse struct {
	Message     string               `json:"message,omitempty"`
	Session     SessionResponse      `json:"session"`
	PaymentGate *PaymentGateResponse `json:"paymentGate,omitempty"`
	Discarded   bool                 `json:"discarded,omitempty"`
}

type CheckInResponse struct {
	Message               string               `json:"message"`
	InstructionsDelivered bool                 `json:"instructionsDelivered"`
	Session               SessionResponse      `json:"session"`
	PaymentGate           *PaymentGateResponse `json:"paymentGate,omitempty"`
}

type CheckOutResponse struct {
	Message  string `json:"message"`
	Endpoint string `json:"endpoint"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromSession(s checkin.Session) (SessionResponse, error) {
	resp := SessionResponse{Step: string(s.Step().Name())}
	details, ok := s.Details()
	if !ok {
		return resp, nil
	}
	var booking BookingDetailsResponse
	if err := copier.Copy(&booking, &details); err != nil {
		return SessionResponse{}, err
	}
	if booking.Rules == nil {
		booking.Rules = []string{}
	}
	resp.Booking = &booking
	return resp, nil
}

func FromLookupResult(res *commands.LookupResult) (*LookupResponse, error) {
	session, err := FromSession(res.Session)
	if err != nil {
		return nil, err
	}
	return &LookupResponse{
		Message:     res.Message,
		Session:     session,
		PaymentGate: FromGateState(res.Gate),
		Discarded:   res.Discarded,
	}, nil
}

func FromCheckInResult(res *commands.CheckInResult) (*CheckInResponse, error) {
	session, err := FromSession(res.Session)
	if err != nil {
		return nil, err
	}
	return &CheckInResponse{
		Message:               res.Message,
		InstructionsDelivered: res.InstructionsDelivered,
		Session:               session,
		PaymentGate:           FromGateState(res.Gate),
	}, nil
}

func FromCheckOutResult(res *commands.CheckOutResult) *CheckOutResponse {
	return &CheckOutResponse{Message: res.Message, Endpoint: res.Endpoint.String()}
}
