package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteSnapshot is the persisted projection of an in-progress quotation.
//
// Storage model (key/value):
//   - key: quote_snapshot:<session id>
//   - value: the whole snapshot, replaced atomically on every save
//
// Revision increases with every save of the same session. GrandTotal is stored
// for display on resume; it is recomputed from the lines once restored.
type QuoteSnapshot struct {
	SessionID    string             `json:"session_id"`
	Revision     uint64             `json:"revision"`
	Lines        []SnapshotLine     `json:"lines"`
	Installation InstallationChoice `json:"installation"`
	GrandTotal   decimal.Decimal    `json:"grand_total"`
	Customer     CustomerLink       `json:"customer"`
	CreatedAt    time.Time          `json:"created_at"`
	SavedAt      time.Time          `json:"saved_at"`
}

// SnapshotLine is a persisted line item. Category is deliberately absent: it is
// re-resolved against the catalog on resume.
type SnapshotLine struct {
	CatalogItemID int64           `json:"catalog_item_id"`
	Name          string          `json:"name,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	Quantity      int             `json:"quantity"`
	SellPrice     decimal.Decimal `json:"sell_price"`
}
