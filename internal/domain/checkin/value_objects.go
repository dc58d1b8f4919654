package checkin

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyBookingID     = errors.New("booking id is required")
	ErrInvalidCodeLength  = errors.New("check-in code must be exactly 6 characters")
	ErrRoleRequired       = errors.New("role is required for checkout")
	ErrRoleCannotCheckout = errors.New("role cannot confirm checkout")
)

const CodeLength = 6

type BookingID string

func NewBookingID(s string) (BookingID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyBookingID
	}
	return BookingID(s), nil
}

func (b BookingID) String() string { return string(b) }

// ConfirmationCode is the 6 character code the guest shows on arrival.
// Input is case-insensitive and stored upper-cased.
type ConfirmationCode string

func NewConfirmationCode(s string) (ConfirmationCode, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) != CodeLength {
		return "", ErrInvalidCodeLength
	}
	return ConfirmationCode(strings.ToUpper(s)), nil
}

func (c ConfirmationCode) String() string { return string(c) }

// Instructions are passed to the guest verbatim.
type Instructions struct {
	value string
}

func NewInstructions(s string) Instructions {
	return Instructions{value: s}
}

func (i Instructions) String() string { return i.value }

// Deliverable reports whether anything will reach the guest.
func (i Instructions) Deliverable() bool {
	return strings.TrimSpace(i.value) != ""
}
