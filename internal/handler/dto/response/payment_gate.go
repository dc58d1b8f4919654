package response

import (
	"time"

	"guest-conversion/internal/domain/paymentgate"
	"guest-conversion/internal/usecase/commands"
)

type GateSubjectResponse struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// The transaction reference itself is never echoed back.
type PaymentGateResponse struct {
	ID           string              `json:"id,omitempty"`
	Phase        string              `json:"phase"`
	Subject      GateSubjectResponse `json:"subject"`
	PaymentURL   string              `json:"paymentUrl,omitempty"`
	Countdown    int                 `json:"countdown"`
	Verified     bool                `json:"verified"`
	OpenedAt     *time.Time          `json:"openedAt,omitempty"`
	RedirectedAt *time.Time          `json:"redirectedAt,omitempty"`
}

type VerifyPaymentResponse struct {
	PaymentGate PaymentGateResponse `json:"paymentGate"`
	Refetched   bool                `json:"refetched"`
	Dismissed   bool                `json:"dismissed"`
}

func FromGateState(st *paymentgate.State) *PaymentGateResponse {
	if st == nil {
		return nil
	}
	resp := &PaymentGateResponse{
		Phase:        st.Phase.String(),
		Subject:      GateSubjectResponse{Kind: string(st.Subject.Kind), ID: st.Subject.ID},
		PaymentURL:   st.PaymentURL,
		Countdown:    st.Countdown,
		Verified:     st.Verified,
		RedirectedAt: st.RedirectedAt,
	}
	if st.Phase != paymentgate.PhaseHidden {
		resp.ID = st.ID.String()
		opened := st.OpenedAt
		resp.OpenedAt = &opened
	}
	return resp
}

func FromGateVerifyResult(res *commands.GateVerifyResult) *VerifyPaymentResponse {
	return &VerifyPaymentResponse{
		PaymentGate: *FromGateState(&res.State),
		Refetched:   res.Refetched,
		Dismissed:   res.Dismissed,
	}
}
