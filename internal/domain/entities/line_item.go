package entities

import "github.com/shopspring/decimal"

// LineItem is one selected catalog item inside a quotation.
//
// The line is keyed by CatalogItemID: a selection never holds two lines for the
// same catalog item. SellPrice is captured when the item is added and is not
// recomputed if the catalog margin changes later.
//
// Category is empty when the catalog link could not be resolved (for example a
// line restored from a snapshot after the item left the catalog).
type LineItem struct {
	CatalogItemID int64           `json:"catalog_item_id"`
	Name          string          `json:"name,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	Category      Category        `json:"category,omitempty"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	Quantity      int             `json:"quantity"`
}

// Total is SellPrice * Quantity, unrounded.
func (l LineItem) Total() decimal.Decimal {
	return l.SellPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// EffectiveCategory maps an unresolved category to the accessory bucket.
func (l LineItem) EffectiveCategory() Category {
	if l.Category.Valid() {
		return l.Category
	}
	return CategoryAccessory
}
