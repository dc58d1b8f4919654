package response

import (
	"time"

	"guest-conversion/internal/domain/dealcode"
)

type DealCodeResponse struct {
	Code             string    `json:"code"`
	RemainingUnlocks int       `json:"remainingUnlocks"`
	TotalUnlocks     int       `json:"totalUnlocks"`
	ExpiryDate       time.Time `json:"expiryDate"`
	CreatedDate      time.Time `json:"createdDate"`
	IsActive         bool      `json:"isActive"`
	Usable           bool      `json:"usable"`
	Source           string    `json:"source,omitempty"`
}

type DealCodeSummaryResponse struct {
	Total            int `json:"total"`
	Usable           int `json:"usable"`
	Inactive         int `json:"inactive"`
	RemainingUnlocks int `json:"remainingUnlocks"`
}

type DealCodeLedgerResponse struct {
	DealCodes []DealCodeResponse      `json:"dealCodes"`
	Summary   DealCodeSummaryResponse `json:"summary"`
	FetchedAt time.Time               `json:"fetchedAt"`
}

// FromDealCodeLedger evaluates usability at now; a code with no remaining
// unlocks is never usable.
func FromDealCodeLedger(l *dealcode.Ledger, now time.Time) *DealCodeLedgerResponse {
	if l == nil {
		return nil
	}
	codes := l.Codes()
	resp := &DealCodeLedgerResponse{
		DealCodes: make([]DealCodeResponse, 0, len(codes)),
		FetchedAt: l.FetchedAt(),
	}
	for _, c := range codes {
		resp.DealCodes = append(resp.DealCodes, DealCodeResponse{
			Code:             c.Code().String(),
			RemainingUnlocks: c.RemainingUnlocks(),
			TotalUnlocks:     c.TotalUnlocks(),
			ExpiryDate:       c.ExpiryDate(),
			CreatedDate:      c.CreatedDate(),
			IsActive:         c.IsActive(),
			Usable:           c.IsUsable(now),
			Source:           c.Source(),
		})
	}
	s := l.Summarize(now)
	resp.Summary = DealCodeSummaryResponse{
		Total:            s.Total,
		Usable:           s.Usable,
		Inactive:         s.Inactive,
		RemainingUnlocks: s.RemainingUnlocks,
	}
	return resp
}
