package money

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount cannot be negative")

const DefaultCurrency = "USD"

// Amount is a non-negative monetary value as the marketplace reports it.
// JSON accepts both numbers and numeric strings.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, ErrNegativeAmount
	}
	return Amount{value: d}, nil
}

func MustParse(s string) Amount {
	return Amount{value: decimal.RequireFromString(s)}
}

func Zero() Amount { return Amount{value: decimal.Zero} }

func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) IsZero() bool             { return a.value.IsZero() }
func (a Amount) String() string           { return a.value.StringFixed(2) }

func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		a.value = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	if d.IsNegative() {
		return ErrNegativeAmount
	}
	a.value = d
	return nil
}

// NormalizeCurrency upper-cases the ISO code and falls back to DefaultCurrency.
func NormalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return DefaultCurrency
	}
	return code
}
