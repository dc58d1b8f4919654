package dealcode

import (
	"errors"
	"time"
)

var (
	ErrNegativeRemaining = errors.New("remaining unlocks cannot be negative")
	ErrRemainingExceeds  = errors.New("remaining unlocks exceed total unlocks")
)

type Spec struct {
	Code             string
	RemainingUnlocks int
	TotalUnlocks     int
	ExpiryDate       time.Time
	CreatedDate      time.Time
	IsActive         bool
	Source           string
}

type DealCode struct {
	code             Code
	remainingUnlocks int
	totalUnlocks     int
	expiryDate       time.Time
	createdDate      time.Time
	isActive         bool
	source           string
}

func NewDealCode(spec Spec) (*DealCode, error) {
	code, err := NewCode(spec.Code)
	if err != nil {
		return nil, err
	}
	if spec.RemainingUnlocks < 0 {
		return nil, ErrNegativeRemaining
	}
	if spec.TotalUnlocks > 0 && spec.RemainingUnlocks > spec.TotalUnlocks {
		return nil, ErrRemainingExceeds
	}
	return &DealCode{
		code:             code,
		remainingUnlocks: spec.RemainingUnlocks,
		totalUnlocks:     spec.TotalUnlocks,
		expiryDate:       spec.ExpiryDate,
		createdDate:      spec.CreatedDate,
		isActive:         spec.IsActive,
		source:           spec.Source,
	}, nil
}

// IsUsable requires all three: active, not expired, unlocks remaining.
func (d *DealCode) IsUsable(now time.Time) bool {
	return d.isActive && now.Before(d.expiryDate) && d.remainingUnlocks > 0
}

func (d *DealCode) IsExpired(now time.Time) bool {
	return !now.Before(d.expiryDate)
}

func (d *DealCode) Code() Code             { return d.code }
func (d *DealCode) RemainingUnlocks() int  { return d.remainingUnlocks }
func (d *DealCode) TotalUnlocks() int      { return d.totalUnlocks }
func (d *DealCode) ExpiryDate() time.Time  { return d.expiryDate }
func (d *DealCode) CreatedDate() time.Time { return d.createdDate }
func (d *DealCode) IsActive() bool         { return d.isActive }
func (d *DealCode) Source() string         { return d.source }
