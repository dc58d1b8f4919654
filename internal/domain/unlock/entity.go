package unlock

import (
	"errors"
	"strings"
	"time"

	"guest-conversion/internal/pkg/errs"
	"guest-conversion/internal/pkg/money"
)

var (
	ErrInconsistentRecord = errors.New("unlock record violates an invariant")
	ErrMissingID          = errors.New("unlock id is required")

	// ガード拒否。いずれもネットワーク呼び出し前に返す
	ErrAlreadyCancelled             = errors.New("unlock is already cancelled")
	ErrAlreadyBooked                = errors.New("unlock is already converted to a booking")
	ErrCancelNotAllowed             = errors.New("unlock cannot be cancelled")
	ErrAppreciationAlreadySubmitted = errors.New("appreciation already submitted")
	ErrAppreciationNotApplicable    = errors.New("appreciation applies only to monthly booking unlocks")
	ErrBookingNotAllowed            = errors.New("unlock is not eligible for booking")
	ErrBookingRequiresAppreciation  = errors.New("booking requires an appreciated unlock")
)

// Guards are computed by the marketplace and consumed read-only.
type Guards struct {
	CanCancel          bool
	CanRequestDealCode bool
	CanBook            bool
}

// RecordSpec carries the raw fields of an unlock record as delivered.
type RecordSpec struct {
	ID                    string
	PropertyID            string
	PropertyTitle         string
	PaymentMethod         PaymentMethod
	AmountPaid            money.Amount
	Currency              string
	AppreciationSubmitted bool
	AppreciationLevel     AppreciationLevel
	DealCodeIssued        bool
	RefundIssued          bool
	BookingID             string
	BookingCompleted      bool
	Guards                Guards
	Status                Status
	UnlockedAt            time.Time
}

// Record is immutable; a refresh replaces it wholesale.
type Record struct {
	id                    string
	propertyID            string
	propertyTitle         string
	paymentMethod         PaymentMethod
	amountPaid            money.Amount
	currency              string
	appreciationSubmitted bool
	appreciationLevel     AppreciationLevel
	dealCodeIssued        bool
	refundIssued          bool
	bookingID             string
	bookingCompleted      bool
	guards                Guards
	status                Status
	unlockedAt            time.Time
}

func NewRecord(spec RecordSpec) (*Record, error) {
	if strings.TrimSpace(spec.ID) == "" {
		return nil, ErrMissingID
	}
	if !spec.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}
	if !spec.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if spec.AppreciationLevel != LevelNone && !spec.AppreciationLevel.IsValid() {
		return nil, ErrInvalidAppreciationLevel
	}
	if err := checkInvariants(spec); err != nil {
		return nil, err
	}

	return &Record{
		id:                    spec.ID,
		propertyID:            spec.PropertyID,
		propertyTitle:         spec.PropertyTitle,
		paymentMethod:         spec.PaymentMethod,
		amountPaid:            spec.AmountPaid,
		currency:              money.NormalizeCurrency(spec.Currency),
		appreciationSubmitted: spec.AppreciationSubmitted,
		appreciationLevel:     spec.AppreciationLevel,
		dealCodeIssued:        spec.DealCodeIssued,
		refundIssued:          spec.RefundIssued,
		bookingID:             spec.BookingID,
		bookingCompleted:      spec.BookingCompleted,
		guards:                spec.Guards,
		status:                spec.Status,
		unlockedAt:            spec.UnlockedAt,
	}, nil
}

func checkInvariants(spec RecordSpec) error {
	switch {
	case spec.BookingCompleted && strings.TrimSpace(spec.BookingID) == "":
		return errs.Join(ErrInconsistentRecord, errs.New("booking completed without booking id"))
	case spec.AppreciationSubmitted && spec.AppreciationLevel == LevelNone:
		return errs.Join(ErrInconsistentRecord, errs.New("appreciation submitted without level"))
	case spec.Status == StatusCancelled && spec.BookingCompleted:
		return errs.Join(ErrInconsistentRecord, errs.New("cancelled unlock marked as booked"))
	}

	// ガードがステータスと矛盾しないこと（再計算ではなく整合性の確認のみ）
	open := spec.Status == StatusUnlocked && !spec.BookingCompleted
	if spec.Guards.CanCancel && (!open || spec.PaymentMethod != PaymentMonthlyBooking) {
		return errs.Join(ErrInconsistentRecord, errs.New("cancel guard contradicts record state"))
	}
	if spec.Guards.CanBook && !open {
		return errs.Join(ErrInconsistentRecord, errs.New("booking guard contradicts record state"))
	}
	return nil
}

// CheckCancel enforces the delivered cancel guard.
func (r *Record) CheckCancel() error {
	switch {
	case r.status == StatusCancelled:
		return ErrAlreadyCancelled
	case r.bookingCompleted:
		return ErrAlreadyBooked
	case !r.guards.CanCancel:
		return ErrCancelNotAllowed
	}
	return nil
}

func (r *Record) CheckAppreciation() error {
	switch {
	case r.appreciationSubmitted:
		return ErrAppreciationAlreadySubmitted
	case r.paymentMethod != PaymentMonthlyBooking:
		return ErrAppreciationNotApplicable
	}
	return nil
}

func (r *Record) CheckBooking() error {
	switch {
	case r.status == StatusCancelled:
		return ErrAlreadyCancelled
	case r.bookingCompleted:
		return ErrAlreadyBooked
	case !r.guards.CanBook:
		return ErrBookingNotAllowed
	case r.appreciationLevel != LevelAppreciated:
		return ErrBookingRequiresAppreciation
	}
	return nil
}

func (r *Record) Phase() Phase {
	switch {
	case r.status == StatusCancelled:
		return PhaseCancelled
	case r.bookingCompleted:
		return PhaseBookingConverted
	case r.appreciationSubmitted && r.dealCodeIssued:
		return PhaseDealCodeIssued
	case r.appreciationSubmitted && r.refundIssued:
		return PhaseRefundIssued
	case r.appreciationSubmitted:
		return PhaseNoReward
	case r.paymentMethod == PaymentMonthlyBooking:
		return PhaseFeedbackPending
	default:
		return PhaseUnlocked
	}
}

func (r *Record) ID() string                           { return r.id }
func (r *Record) PropertyID() string                   { return r.propertyID }
func (r *Record) PropertyTitle() string                { return r.propertyTitle }
func (r *Record) PaymentMethod() PaymentMethod         { return r.paymentMethod }
func (r *Record) AmountPaid() money.Amount             { return r.amountPaid }
func (r *Record) Currency() string                     { return r.currency }
func (r *Record) AppreciationSubmitted() bool          { return r.appreciationSubmitted }
func (r *Record) AppreciationLevel() AppreciationLevel { return r.appreciationLevel }
func (r *Record) DealCodeIssued() bool                 { return r.dealCodeIssued }
func (r *Record) RefundIssued() bool                   { return r.refundIssued }
func (r *Record) BookingID() string                    { return r.bookingID }
func (r *Record) BookingCompleted() bool               { return r.bookingCompleted }
func (r *Record) Guards() Guards                       { return r.guards }
func (r *Record) Status() Status                       { return r.status }
func (r *Record) UnlockedAt() time.Time                { return r.unlockedAt }
