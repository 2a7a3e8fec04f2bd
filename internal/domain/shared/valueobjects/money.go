// Package valueobjects contains immutable value objects shared across
// domain aggregates. Value objects compare by their full field tuple and
// are never mutated after construction.
package valueobjects

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidAmount   = errors.New("invalid monetary amount")
)

// Currency is the ISO 4217 code of a supported currency.
type Currency string

const (
	CurrencyBRL Currency = "BRL"
	CurrencyUSD Currency = "USD"
)

var validCurrencies = map[Currency]bool{
	CurrencyBRL: true,
	CurrencyUSD: true,
}

// ParseCurrency validates and normalizes a currency code.
func ParseCurrency(value string) (Currency, error) {
	currency := Currency(strings.ToUpper(strings.TrimSpace(value)))
	if !validCurrencies[currency] {
		return "", fmt.Errorf("%w: %s", ErrInvalidCurrency, value)
	}
	return currency, nil
}

func (c Currency) String() string {
	return string(c)
}

// MonetaryValue is an immutable amount and currency pair. Any change
// requires constructing a new instance.
type MonetaryValue struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMonetaryValue parses the amount as an arbitrary-precision decimal
// and validates the currency code.
func NewMonetaryValue(amount, currency string) (MonetaryValue, error) {
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return MonetaryValue{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if parsed.IsNegative() {
		return MonetaryValue{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}

	c, err := ParseCurrency(currency)
	if err != nil {
		return MonetaryValue{}, err
	}

	return MonetaryValue{amount: parsed, currency: c}, nil
}

// NewMonetaryValueFromDecimal builds a MonetaryValue from an already
// parsed decimal.
func NewMonetaryValueFromDecimal(amount decimal.Decimal, currency Currency) (MonetaryValue, error) {
	if !validCurrencies[currency] {
		return MonetaryValue{}, fmt.Errorf("%w: %s", ErrInvalidCurrency, currency)
	}
	return MonetaryValue{amount: amount, currency: currency}, nil
}

// Amount returns the decimal amount.
func (m MonetaryValue) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code.
func (m MonetaryValue) Currency() Currency {
	return m.currency
}

// Equals reports structural equality: same numeric amount and currency.
func (m MonetaryValue) Equals(other MonetaryValue) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m MonetaryValue) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}
