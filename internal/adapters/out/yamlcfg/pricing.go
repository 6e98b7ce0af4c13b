// Package yamlcfg loads pricing settings from a YAML file and turns them
// into a domain tariff.
package yamlcfg

import (
	"fmt"
	"os"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"
	"checkout/internal/pkg/errs"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// PricingSettings mirrors the pricing YAML file. All fields are optional;
// omitted ones fall back to the stock tariff values.
//
//	currency: USD
//	locale: en-US
//	unit_price_cents: 200
//	same_day_surcharge_cents: 300
type PricingSettings struct {
	Currency              string `yaml:"currency"`
	Locale                string `yaml:"locale"`
	UnitPriceCents        *int64 `yaml:"unit_price_cents"`
	SameDaySurchargeCents *int64 `yaml:"same_day_surcharge_cents"`
}

// LoadTariff reads the pricing file at path and builds the tariff it
// describes. An empty path yields the stock tariff without touching the
// filesystem.
func LoadTariff(path string) (order.Tariff, error) {
	if path == "" {
		return order.NewDefaultTariff(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return order.Tariff{}, fmt.Errorf("read pricing settings: %w", err)
	}

	var settings PricingSettings
	if err = yaml.Unmarshal(data, &settings); err != nil {
		return order.Tariff{}, fmt.Errorf("parse pricing settings: %w", err)
	}

	return settings.Tariff()
}

// Tariff converts the settings into a validated domain tariff.
func (s PricingSettings) Tariff() (order.Tariff, error) {
	unit := currency.USD
	if s.Currency != "" {
		parsed, err := currency.ParseISO(s.Currency)
		if err != nil {
			return order.Tariff{}, errs.NewValueIsInvalidErrorWithCause("pricing currency", err)
		}
		unit = parsed
	}

	locale := language.AmericanEnglish
	if s.Locale != "" {
		parsed, err := language.Parse(s.Locale)
		if err != nil {
			return order.Tariff{}, errs.NewValueIsInvalidErrorWithCause("pricing locale", err)
		}
		locale = parsed
	}

	unitPriceCents := int64(order.DefaultUnitPriceMinorUnits)
	if s.UnitPriceCents != nil {
		unitPriceCents = *s.UnitPriceCents
	}
	surchargeCents := int64(order.DefaultSameDaySurchargeMinorUnits)
	if s.SameDaySurchargeCents != nil {
		surchargeCents = *s.SameDaySurchargeCents
	}

	unitPrice, err := kernel.NewMoney(unitPriceCents, unit)
	if err != nil {
		return order.Tariff{}, err
	}
	surcharge, err := kernel.NewMoney(surchargeCents, unit)
	if err != nil {
		return order.Tariff{}, err
	}

	return order.NewTariff(unitPrice, surcharge, locale)
}
