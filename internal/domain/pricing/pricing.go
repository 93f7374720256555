package pricing

import (
	"errors"
	"fmt"

	"solar_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrDegenerateMargin   = errors.New("degenerate margin rate")
	ErrNegativeImportCost = errors.New("negative import cost")
)

// DefaultGranularity rounds prices to the nearest thousand currency units.
var DefaultGranularity = decimal.NewFromInt(1000)

// DefaultMarginRate applies when the catalog does not publish a margin for an
// item. It is a documented product default, not a fallback for bad data.
var DefaultMarginRate = decimal.NewFromInt(10)

var hundred = decimal.NewFromInt(100)

// SellPrice inverts a margin: importCost / (1 - marginRate/100).
//
// The margin must lie in [0, 100). Anything else yields ErrDegenerateMargin
// rather than an infinite or negative price.
func SellPrice(importCost, marginRatePercent decimal.Decimal) (decimal.Decimal, error) {
	if importCost.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegativeImportCost, importCost)
	}
	if marginRatePercent.IsNegative() || marginRatePercent.GreaterThanOrEqual(hundred) {
		return decimal.Zero, fmt.Errorf("%w: %s%%", ErrDegenerateMargin, marginRatePercent)
	}
	denominator := decimal.NewFromInt(1).Sub(marginRatePercent.Div(hundred))
	return importCost.Div(denominator), nil
}

// RoundToGranularity rounds to the nearest multiple of granularity, halves
// going up. A non-positive granularity leaves the amount untouched.
func RoundToGranularity(amount, granularity decimal.Decimal) decimal.Decimal {
	if !granularity.IsPositive() {
		return amount
	}
	// Round(0) on decimal rounds half away from zero; amounts here are never negative.
	return amount.Div(granularity).Round(0).Mul(granularity)
}

// Calculator prices catalog items with a fixed rounding granularity.
type Calculator struct {
	Granularity       decimal.Decimal
	DefaultMarginRate decimal.Decimal
}

func NewCalculator(granularity, defaultMargin decimal.Decimal) *Calculator {
	return &Calculator{Granularity: granularity, DefaultMarginRate: defaultMargin}
}

// DefaultCalculator rounds to the thousand and assumes a 10% margin.
func DefaultCalculator() *Calculator {
	return NewCalculator(DefaultGranularity, DefaultMarginRate)
}

// MarginFor returns the item margin, or the default when the catalog omits it.
func (c *Calculator) MarginFor(item entities.CatalogItem) decimal.Decimal {
	if item.MarginRate.Valid {
		return item.MarginRate.Decimal
	}
	return c.DefaultMarginRate
}

// Price is the rounded sell price of a catalog item.
func (c *Calculator) Price(item entities.CatalogItem) (decimal.Decimal, error) {
	price, err := SellPrice(item.ImportCost, c.MarginFor(item))
	if err != nil {
		return decimal.Zero, fmt.Errorf("catalog item %d: %w", item.ID, err)
	}
	return c.Round(price), nil
}

// Round applies the calculator granularity.
func (c *Calculator) Round(amount decimal.Decimal) decimal.Decimal {
	return RoundToGranularity(amount, c.Granularity)
}
