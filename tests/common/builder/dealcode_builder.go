//go:build unit || e2e

package builder

import (
	"time"

	"guest-conversion/internal/domain/dealcode"
)

type DealCodeBuilder struct {
	Spec dealcode.Spec
}

func NewDealCodeBuilder() *DealCodeBuilder {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &DealCodeBuilder{
		Spec: dealcode.Spec{
			Code:             "ABC123",
			RemainingUnlocks: 3,
			TotalUnlocks:     3,
			ExpiryDate:       created.AddDate(0, 3, 0),
			CreatedDate:      created,
			IsActive:         true,
			Source:           dealcode.SourceNotAppreciatedFeedback,
		},
	}
}

func (b *DealCodeBuilder) With(mutate func(*DealCodeBuilder)) *DealCodeBuilder {
	mutate(b)
	return b
}

func (b *DealCodeBuilder) WithCode(code string) *DealCodeBuilder {
	b.Spec.Code = code
	return b
}

func (b *DealCodeBuilder) WithRemaining(remaining int) *DealCodeBuilder {
	b.Spec.RemainingUnlocks = remaining
	return b
}

func (b *DealCodeBuilder) ExpiringAt(t time.Time) *DealCodeBuilder {
	b.Spec.ExpiryDate = t
	return b
}

func (b *DealCodeBuilder) Inactive() *DealCodeBuilder {
	b.Spec.IsActive = false
	return b
}

func (b *DealCodeBuilder) BuildDomain() (*dealcode.DealCode, error) {
	return dealcode.NewDealCode(b.Spec)
}

func (b *DealCodeBuilder) MustBuild() *dealcode.DealCode {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}
