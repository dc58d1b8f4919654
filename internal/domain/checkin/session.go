package checkin

// StepName identifies the session variant.
type StepName string

const (
	StepAwaitingID    StepName = "awaiting_id"
	StepDetailsLoaded StepName = "details_loaded"
)

// Step is closed: only AwaitingID and DetailsLoaded implement it, so
// "details without DetailsLoaded" cannot be represented.
type Step interface {
	Name() StepName
	isStep()
}

type AwaitingID struct{}

func (AwaitingID) Name() StepName { return StepAwaitingID }
func (AwaitingID) isStep()        {}

type DetailsLoaded struct {
	Details BookingDetails
}

func (DetailsLoaded) Name() StepName { return StepDetailsLoaded }
func (DetailsLoaded) isStep()        {}

// Session is a value; transitions return a new Session.
type Session struct {
	step Step
}

func NewSession() Session {
	return Session{step: AwaitingID{}}
}

func (s Session) Step() Step {
	if s.step == nil {
		return AwaitingID{}
	}
	return s.step
}

func (s Session) Load(details BookingDetails) Session {
	return Session{step: DetailsLoaded{Details: details}}
}

func (s Session) Reset() Session {
	return NewSession()
}

// Details returns the loaded booking, if any.
func (s Session) Details() (BookingDetails, bool) {
	if d, ok := s.step.(DetailsLoaded); ok {
		return d.Details, true
	}
	return BookingDetails{}, false
}

// HasLoaded reports whether the session holds details for the given booking.
func (s Session) HasLoaded(id BookingID) bool {
	d, ok := s.Details()
	return ok && d.BookingID == id
}
