package order

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"
	"checkout/internal/pkg/guard"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Default pricing used when no explicit settings are supplied: two dollars
// per item plus a three dollar same-day surcharge, displayed in US English.
const (
	DefaultUnitPriceMinorUnits        = 200
	DefaultSameDaySurchargeMinorUnits = 300
)

// ErrTariffIsNotConstructed is returned when a Tariff was not created via
// NewTariff.
var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff")

// Tariff is the pricing policy for an order: the price of a single item,
// the fixed surcharge for same-day pickup, and the locale used to render
// amounts for display.
//
// The price of an order is a pure function of quantity and pickup choice:
//
//	total = quantity * unitPrice            (pickup on a later day)
//	total = quantity * unitPrice + surcharge (same-day pickup)
type Tariff struct {
	unitPrice        kernel.Money
	sameDaySurcharge kernel.Money
	locale           language.Tag

	guard guard.ConstructorGuard
}

// NewTariff creates a Tariff from a unit price, a same-day surcharge, and a
// display locale. Both amounts must be constructed and share one currency;
// the locale must not be the undefined tag.
func NewTariff(unitPrice, sameDaySurcharge kernel.Money, locale language.Tag) (Tariff, error) {
	if err := unitPrice.Validate(); err != nil {
		return Tariff{}, err
	}
	if err := sameDaySurcharge.Validate(); err != nil {
		return Tariff{}, err
	}
	if unitPrice.Currency() != sameDaySurcharge.Currency() {
		return Tariff{}, errs.NewValueIsInvalidErrorWithCause(
			"tariff currency",
			fmt.Errorf("unit price is %v but surcharge is %v", unitPrice.Currency(), sameDaySurcharge.Currency()),
		)
	}
	if locale == language.Und {
		return Tariff{}, errs.NewValueIsRequiredError("tariff locale")
	}

	return Tariff{
		unitPrice:        unitPrice,
		sameDaySurcharge: sameDaySurcharge,
		locale:           locale,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// NewDefaultTariff returns the stock tariff: USD amounts from the package
// constants, rendered in US English.
func NewDefaultTariff() Tariff {
	unitPrice, _ := kernel.NewMoney(DefaultUnitPriceMinorUnits, currency.USD)
	surcharge, _ := kernel.NewMoney(DefaultSameDaySurchargeMinorUnits, currency.USD)
	tariff, _ := NewTariff(unitPrice, surcharge, language.AmericanEnglish)
	return tariff
}

// Validate ensures the Tariff was created via NewTariff.
func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

// UnitPrice returns the price of a single item.
func (t Tariff) UnitPrice() kernel.Money {
	return t.unitPrice
}

// SameDaySurcharge returns the fixed surcharge for same-day pickup.
func (t Tariff) SameDaySurcharge() kernel.Money {
	return t.sameDaySurcharge
}

// Locale returns the display locale for formatted amounts.
func (t Tariff) Locale() language.Tag {
	return t.locale
}

// Quote derives the order total from a quantity and whether the same-day
// option was chosen. Negative quantities are rejected.
func (t Tariff) Quote(quantity int, sameDay bool) (kernel.Money, error) {
	if err := t.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total, err := t.unitPrice.MulInt(quantity)
	if err != nil {
		return kernel.Money{}, err
	}

	if sameDay {
		total, err = total.Add(t.sameDaySurcharge)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// Display renders an amount in the tariff's locale.
func (t Tariff) Display(amount kernel.Money) string {
	return amount.Format(t.locale)
}
