package marketplace

import (
	"fmt"
	"net/http"
)

// GenericFailureMessage is used only when the marketplace gave no message of its own.
const GenericFailureMessage = "Something went wrong. Please try again."

// BusinessError is a well-formed envelope that reported failure. Message is
// the marketplace's wording and is shown to the user verbatim.
type BusinessError struct {
	Status     int
	Message    string
	PaymentURL string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("marketplace: %d %s", e.Status, e.Message)
}

func (e *BusinessError) UserMessage() string { return e.Message }

func (e *BusinessError) PaymentSignal() (string, string) {
	return e.Message, e.PaymentURL
}

// TransportError covers network failures and responses that are not a
// readable envelope.
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), msg)
	}
	if e.Err != nil {
		return "marketplace transport: " + msg + ": " + e.Err.Error()
	}
	return "marketplace transport: " + msg
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) UserMessage() string {
	if e.Message == "" {
		return GenericFailureMessage
	}
	return e.Message
}
