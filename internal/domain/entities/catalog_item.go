package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category partitions the sellable catalog.
//
// Presentation order of a finalized quote follows SectionOrder, not the
// declaration order below.

type Category string

const (
	CategoryPanel     Category = "PANEL"
	CategoryInverter  Category = "INVERTER"
	CategoryBattery   Category = "BATTERY"
	CategoryAccessory Category = "ACCESSORY"
)

// Categories lists every catalog category.
var Categories = []Category{CategoryPanel, CategoryInverter, CategoryBattery, CategoryAccessory}

// ParseCategory accepts any casing and surrounding spaces.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(raw)))
	return c, c.Valid()
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPanel, CategoryInverter, CategoryBattery, CategoryAccessory:
		return true
	}
	return false
}

// CatalogItem is a piece of merchandise as published by the product source.
//
// Monetary representation:
//   - ImportCost is the agent's purchase cost.
//   - MarginRate is a percent in [0, 100). When the source omits it the
//     pricing calculator applies its documented default instead.
//
// Instances are treated as immutable once fetched.
type CatalogItem struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Category      Category            `json:"category"`
	Unit          string              `json:"unit"`
	ImportCost    decimal.Decimal     `json:"import_cost"`
	MarginRate    decimal.NullDecimal `json:"margin_rate"`
	WarrantyYears *int                `json:"warranty_years,omitempty"`
	ImageURL      string              `json:"image_url,omitempty"`
	Specs         map[string]string   `json:"specs,omitempty"`
}
