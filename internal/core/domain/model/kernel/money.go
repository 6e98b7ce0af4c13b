package kernel

import (
	"fmt"
	"math"

	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is an immutable amount of a single currency, held in minor units
// (cents for decimal currencies). Arithmetic is only defined between
// amounts of the same currency; mixing units is a validation error rather
// than a silent conversion.
//
// Example:
//
//	unitPrice, _ := kernel.NewMoney(200, currency.USD)
//	total, _ := unitPrice.MulInt(5)            // 1000 minor units
//	display := total.Format(language.AmericanEnglish)
type Money struct {
	minorUnits int64
	unit       currency.Unit

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value of minorUnits in the given currency.
// The amount must be non-negative and the currency unit must be set.
func NewMoney(minorUnits int64, unit currency.Unit) (Money, error) {
	if unit == (currency.Unit{}) {
		return Money{}, errs.NewValueIsRequiredError("currency unit")
	}
	if minorUnits < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%d is less than 0", minorUnits),
		)
	}
	return Money{
		minorUnits: minorUnits,
		unit:       unit,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Money was created via NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// MinorUnits returns the amount in minor units.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// Currency returns the currency unit of the amount.
func (m Money) Currency() currency.Unit {
	return m.unit
}

// IsEqual reports whether two amounts have the same currency and value.
func (m Money) IsEqual(other Money) bool {
	return m.unit == other.unit && m.minorUnits == other.minorUnits
}

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.unit != other.unit {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money currency",
			fmt.Errorf("cannot add %v to %v", other.unit, m.unit),
		)
	}
	return NewMoney(m.minorUnits+other.minorUnits, m.unit)
}

// MulInt returns the amount multiplied by a non-negative factor.
func (m Money) MulInt(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money factor",
			fmt.Errorf("%d is less than 0", factor),
		)
	}
	return NewMoney(m.minorUnits*int64(factor), m.unit)
}

// Format renders the amount for display in the given locale, narrow currency
// symbol first with no separator, e.g. "$13.00" for en-US/USD. Digits,
// grouping, and the decimal mark follow the locale; the fraction width
// follows the currency's minor-unit scale, so "¥1,300" for JPY.
func (m Money) Format(lang language.Tag) string {
	scale, _ := currency.Standard.Rounding(m.unit)
	value := float64(m.minorUnits) / math.Pow10(scale)

	p := message.NewPrinter(lang)
	symbol := p.Sprint(currency.NarrowSymbol(m.unit))
	return symbol + p.Sprint(number.Decimal(value, number.Scale(scale)))
}
