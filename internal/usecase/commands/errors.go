package commands

import "guest-conversion/internal/pkg/errs"

var (
	// ガードが false の操作は呼び出し前に拒否する
	ErrGuardRefused      = errs.New("operation not allowed in current state")
	ErrOperationInFlight = errs.New("operation already in progress")

	ErrEmptyReason           = errs.New("cancellation reason is required")
	ErrEmptyUnlockID         = errs.New("unlock id is required")
	ErrInvalidStayDates      = errs.New("check-out must be after check-in")
	ErrInvalidGuestCount     = errs.New("guests must be at least 1")
	ErrResendNotAvailable    = errs.New("code can be resent only for the loaded booking")
	ErrAppreciationNoLevel   = errs.New("appreciation level is required")
	ErrMissingBookingDetails = errs.New("marketplace returned no booking details")
)

func guardRefused(err error) error {
	return errs.Mark(err, ErrGuardRefused)
}
