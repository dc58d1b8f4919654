package appreciation

import (
	"strings"

	"guest-conversion/internal/domain/unlock"
	"guest-conversion/internal/pkg/money"
)

type Reward string

const (
	RewardNone              Reward = "none"
	RewardDealCode          Reward = "deal_code"
	RewardRefund            Reward = "refund"
	RewardDealCodeAndRefund Reward = "deal_code_and_refund"
)

// Response is what the marketplace answered to an appreciation submission.
type Response struct {
	Message           string
	DealCodeGenerated bool
	DealCode          string
	RefundIssued      bool
	RefundAmount      money.Amount
}

type Outcome struct {
	Reward          Reward
	DealCode        string
	RefundAmount    money.Amount
	BookingEligible bool
	// UserMessage is the server's message, passed through untouched.
	UserMessage string
	// ExpectedCodeMissing is set only for not_appreciated when the server
	// claimed a code was generated but did not send one.
	ExpectedCodeMissing bool
}

func (o Outcome) HasDealCode() bool {
	return o.DealCode != ""
}

func (o Outcome) Phase() unlock.Phase {
	switch o.Reward {
	case RewardDealCode, RewardDealCodeAndRefund:
		return unlock.PhaseDealCodeIssued
	case RewardRefund:
		return unlock.PhaseRefundIssued
	default:
		return unlock.PhaseNoReward
	}
}

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Decide(level unlock.AppreciationLevel, resp Response) Outcome {
	out := Outcome{
		Reward:      RewardNone,
		UserMessage: resp.Message,
	}

	switch level {
	case unlock.LevelAppreciated:
		// 予約への転換が可能になる。コードは発行されない
		out.BookingEligible = true
	case unlock.LevelNeutral:
	case unlock.LevelNotAppreciated:
		code := strings.ToUpper(strings.TrimSpace(resp.DealCode))
		if code != "" {
			out.DealCode = code
			out.Reward = RewardDealCode
		} else if resp.DealCodeGenerated {
			out.ExpectedCodeMissing = true
		}
	}

	if resp.RefundIssued {
		out.RefundAmount = resp.RefundAmount
		if out.Reward == RewardDealCode {
			out.Reward = RewardDealCodeAndRefund
		} else {
			out.Reward = RewardRefund
		}
	}
	return out
}
