package paymentgate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyReference       = errors.New("transaction reference is required")
	ErrGateClosed           = errors.New("payment gate is closed")
	ErrAlreadyVerified      = errors.New("payment gate is already verified")
	ErrVerificationInFlight = errors.New("payment verification already in progress")
)

const (
	DefaultCountdown     = 20
	DefaultTriggerPhrase = "requires payment at the property"
	TickInterval         = time.Second
)

type Phase string

const (
	PhaseHidden         Phase = "hidden"
	PhaseShown          Phase = "shown"
	PhaseAutoRedirected Phase = "auto_redirected"
	PhaseVerified       Phase = "verified"
	PhaseClosed         Phase = "closed"
)

func (p Phase) String() string { return string(p) }

// IsOpen reports whether the gate still blocks its parent flow.
func (p Phase) IsOpen() bool {
	return p == PhaseShown || p == PhaseAutoRedirected
}

type SubjectKind string

const (
	SubjectBooking SubjectKind = "booking"
	SubjectUnlock  SubjectKind = "unlock"
)

// Subject is the record the gate blocks; it is re-fetched after verification.
type Subject struct {
	Kind SubjectKind
	ID   string
}

func (s Subject) String() string { return string(s.Kind) + ":" + s.ID }

// Redirector opens the payment URL for the gate's owner.
type Redirector interface {
	Redirect(ctx context.Context, owner uuid.UUID, subject Subject, paymentURL string) error
}

// Collector confirms an on-site payment by its transaction reference.
type Collector interface {
	CollectPayment(ctx context.Context, reference string) error
}

// RefetchFunc reloads the gated record once payment is verified.
type RefetchFunc func(ctx context.Context) error

// State is a point-in-time copy of a gate.
type State struct {
	ID                   uuid.UUID
	Owner                uuid.UUID
	Subject              Subject
	PaymentURL           string
	Countdown            int
	Phase                Phase
	Verified             bool
	ReferenceFingerprint string
	OpenedAt             time.Time
	RedirectedAt         *time.Time
}

// HiddenState is reported when the owner has no gate.
func HiddenState(owner uuid.UUID) State {
	return State{Owner: owner, Phase: PhaseHidden}
}

// Detect reports whether a response demands payment at the property. The
// message phrase is the trigger; the URL is a structural precondition.
func Detect(message, paymentURL, trigger string) bool {
	if trigger == "" {
		trigger = DefaultTriggerPhrase
	}
	if strings.TrimSpace(paymentURL) == "" {
		return false
	}
	return strings.Contains(strings.ToLower(message), strings.ToLower(trigger))
}
