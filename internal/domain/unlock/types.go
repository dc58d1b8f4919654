package unlock

import "errors"

var (
	ErrInvalidPaymentMethod     = errors.New("invalid payment method")
	ErrInvalidAppreciationLevel = errors.New("invalid appreciation level")
	ErrInvalidStatus            = errors.New("invalid unlock status")
)

type PaymentMethod string

const (
	PaymentNonRefundable  PaymentMethod = "non_refundable"
	PaymentMonthlyBooking PaymentMethod = "monthly_booking"
	PaymentDealCode       PaymentMethod = "deal_code"
)

func (p PaymentMethod) String() string { return string(p) }

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentNonRefundable, PaymentMonthlyBooking, PaymentDealCode:
		return true
	default:
		return false
	}
}

func NewPaymentMethod(s string) (PaymentMethod, error) {
	p := PaymentMethod(s)
	if !p.IsValid() {
		return "", ErrInvalidPaymentMethod
	}
	return p, nil
}

// AppreciationLevel の空文字は「未評価」を表す
type AppreciationLevel string

const (
	LevelNone           AppreciationLevel = ""
	LevelAppreciated    AppreciationLevel = "appreciated"
	LevelNeutral        AppreciationLevel = "neutral"
	LevelNotAppreciated AppreciationLevel = "not_appreciated"
)

func (l AppreciationLevel) String() string { return string(l) }

func (l AppreciationLevel) IsValid() bool {
	switch l {
	case LevelAppreciated, LevelNeutral, LevelNotAppreciated:
		return true
	default:
		return false
	}
}

// NewAppreciationLevel rejects the empty level; use LevelNone for "not yet rated".
func NewAppreciationLevel(s string) (AppreciationLevel, error) {
	l := AppreciationLevel(s)
	if !l.IsValid() {
		return LevelNone, ErrInvalidAppreciationLevel
	}
	return l, nil
}

type Status string

const (
	StatusUnlocked  Status = "unlocked"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusUnlocked, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Phase is the lifecycle position shown on the guest dashboard.
type Phase string

const (
	PhaseUnlocked         Phase = "unlocked"
	PhaseFeedbackPending  Phase = "feedback_pending"
	PhaseDealCodeIssued   Phase = "deal_code_issued"
	PhaseRefundIssued     Phase = "refund_issued"
	PhaseNoReward         Phase = "no_reward"
	PhaseBookingConverted Phase = "booking_converted"
	PhaseCancelled        Phase = "cancelled"
)

func (p Phase) String() string { return string(p) }

func (p Phase) IsTerminal() bool {
	return p == PhaseCancelled || p == PhaseBookingConverted
}
