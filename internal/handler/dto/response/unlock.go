package response

import (
	"time"

	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/pkg/money"
	"guest-conversion/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type GuardsResponse struct {
	CanCancel          bool `json:"canCancel"`
	CanRequestDealCode bool `json:"canRequestDealCode"`
	CanBook            bool `json:"canBook"`
}

type UnlockRecordResponse struct {
	ID                    string         `json:"id"`
	PropertyID            string         `json:"propertyId"`
	PropertyTitle         string         `json:"propertyTitle"`
	PaymentMethod         string         `json:"paymentMethod"`
	AmountPaid            money.Amount   `json:"amountPaid"`
	Currency              string         `json:"currency"`
	AppreciationSubmitted bool           `json:"appreciationSubmitted"`
	AppreciationLevel     string         `json:"appreciationLevel,omitempty"`
	DealCodeIssued        bool           `json:"dealCodeIssued"`
	RefundIssued          bool           `json:"refundIssued"`
	BookingID             string         `json:"bookingId,omitempty"`
	BookingCompleted      bool           `json:"bookingCompleted"`
	Guards                GuardsResponse `json:"guards"`
	Status                string         `json:"status"`
	Phase                 string         `json:"phase"`
	UnlockedAt            time.Time      `json:"unlockedAt"`
}

type UnlockStatsResponse struct {
	Total           int          `json:"total"`
	Active          int          `json:"active"`
	Cancelled       int          `json:"cancelled"`
	Converted       int          `json:"converted"`
	PendingFeedback int          `json:"pendingFeedback"`
	TotalSpent      money.Amount `json:"totalSpent"`
}

type UnlockSnapshotResponse struct {
	Unlocks   []UnlockRecordResponse `json:"unlocks"`
	Stats     UnlockStatsResponse    `json:"stats"`
	FetchedAt time.Time              `json:"fetchedAt"`
}

type CancelUnlockResponse struct {
	Message string                  `json:"message"`
	Unlocks *UnlockSnapshotResponse `json:"unlocks,omitempty"`
}

type AppreciationResponse struct {
	Message         string                  `json:"message"`
	DealCode        string                  `json:"dealCode,omitempty"`
	Reward          string                  `json:"reward"`
	RefundAmount    *money.Amount           `json:"refundAmount,omitempty"`
	BookingEligible bool                    `json:"bookingEligible"`
	Unlocks         *UnlockSnapshotResponse `json:"unlocks,omitempty"`
	DealCodes       *DealCodeLedgerResponse `json:"dealCodes,omitempty"`
}

type BookingResponse struct {
	BookingID   string                  `json:"bookingId,omitempty"`
	Message     string                  `json:"message"`
	PaymentGate *PaymentGateResponse    `json:"paymentGate,omitempty"`
	Unlocks     *UnlockSnapshotResponse `json:"unlocks,omitempty"`
}

func FromUnlockRecord(r *unlock.Record) UnlockRecordResponse {
	g := r.Guards()
	return UnlockRecordResponse{
		ID:                    r.ID(),
		PropertyID:            r.PropertyID(),
		PropertyTitle:         r.PropertyTitle(),
		PaymentMethod:         r.PaymentMethod().String(),
		AmountPaid:            r.AmountPaid(),
		Currency:              r.Currency(),
		AppreciationSubmitted: r.AppreciationSubmitted(),
		AppreciationLevel:     string(r.AppreciationLevel()),
		DealCodeIssued:        r.DealCodeIssued(),
		RefundIssued:          r.RefundIssued(),
		BookingID:             r.BookingID(),
		BookingCompleted:      r.BookingCompleted(),
		Guards:                GuardsResponse{CanCancel: g.CanCancel, CanRequestDealCode: g.CanRequestDealCode, CanBook: g.CanBook},
		Status:                string(r.Status()),
		Phase:                 r.Phase().String(),
		UnlockedAt:            r.UnlockedAt(),
	}
}

func FromUnlockSnapshot(s *unlock.Snapshot) (*UnlockSnapshotResponse, error) {
	if s == nil {
		return nil, nil
	}
	resp := &UnlockSnapshotResponse{
		Unlocks:   make([]UnlockRecordResponse, 0, s.Len()),
		FetchedAt: s.FetchedAt(),
	}
	for _, r := range s.Records() {
		resp.Unlocks = append(resp.Unlocks, FromUnlockRecord(r))
	}
	stats := s.Stats()
	if err := copier.Copy(&resp.Stats, &stats); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromCancelResult(res *commands.CancelResult) (*CancelUnlockResponse, error) {
	snap, err := FromUnlockSnapshot(res.Snapshot)
	if err != nil {
		return nil, err
	}
	return &CancelUnlockResponse{Message: res.Message, Unlocks: snap}, nil
}

func FromAppreciationResult(res *commands.AppreciationResult, now time.Time) (*AppreciationResponse, error) {
	snap, err := FromUnlockSnapshot(res.Snapshot)
	if err != nil {
		return nil, err
	}
	resp := &AppreciationResponse{
		Message:         res.Message,
		DealCode:        res.DealCode,
		Reward:          string(res.Outcome.Reward),
		BookingEligible: res.Outcome.BookingEligible,
		Unlocks:         snap,
		DealCodes:       FromDealCodeLedger(res.Ledger, now),
	}
	if !res.Outcome.RefundAmount.IsZero() {
		amount := res.Outcome.RefundAmount
		resp.RefundAmount = &amount
	}
	return resp, nil
}

func FromBookingResult(res *commands.BookingResult) (*BookingResponse, error) {
	snap, err := FromUnlockSnapshot(res.Snapshot)
	if err != nil {
		return nil, err
	}
	return &BookingResponse{
		BookingID:   res.BookingID,
		Message:     res.Message,
		PaymentGate: FromGateState(res.Gate),
		Unlocks:     snap,
	}, nil
}
