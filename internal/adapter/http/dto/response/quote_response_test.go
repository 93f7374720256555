package response

import (
	"testing"
	"time"

	"solar_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromCatalogItem(t *testing.T) {
	item := entities.CatalogItem{
		ID:         1,
		Name:       "Mono 550W",
		Category:   entities.CategoryPanel,
		Unit:       "panel",
		ImportCost: decimal.NewFromInt(9000000),
	}
	res := FromCatalogItem(item, decimal.NewFromInt(10000000))
	if res.MarginRate != nil || res.Category != "PANEL" || !res.SellPrice.Equal(decimal.NewFromInt(10000000)) {
		t.Fatalf("unexpected response: %+v", res)
	}

	item.MarginRate = decimal.NewNullDecimal(decimal.NewFromInt(15))
	if res := FromCatalogItem(item, decimal.Zero); res.MarginRate == nil || !res.MarginRate.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("expected margin rate, got %+v", res.MarginRate)
	}
}

func TestFromQuoteDraft(t *testing.T) {
	now := time.Now().UTC()
	d := entities.QuoteDraft{
		SessionID: "s-1",
		State:     entities.QuoteStateBuilding,
		Revision:  3,
		Lines: []entities.LineItem{
			{CatalogItemID: 1, Name: "Mono 550W", Category: entities.CategoryPanel, SellPrice: decimal.NewFromInt(10000000), Quantity: 3},
			{CatalogItemID: 99, Name: "Legacy bracket", SellPrice: decimal.NewFromInt(500000), Quantity: 1},
		},
		Installation: entities.RoofMount(),
		GrandTotal:   decimal.NewFromInt(30500000),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromQuoteDraft(d)
	if res.SessionID != "s-1" || res.State != "BUILDING" || res.Revision != 3 || res.Installation.Type != "ROOF_MOUNT" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if len(res.Lines) != 2 || !res.Lines[0].Total.Equal(decimal.NewFromInt(30000000)) || res.Lines[1].Category != "ACCESSORY" {
		t.Fatalf("unexpected lines: %+v", res.Lines)
	}
}

func TestFromPricedQuote(t *testing.T) {
	q := entities.PricedQuote{
		ID: "q-1",
		Groups: []entities.QuoteGroup{
			{Section: entities.QuoteSection(entities.CategoryPanel), Quantity: 4, Subtotal: decimal.NewFromInt(40000000)},
			{Section: entities.SectionInstallation, Quantity: 1, Subtotal: decimal.NewFromInt(2500000)},
		},
		GrandTotal: decimal.NewFromInt(42500000),
	}

	res := FromPricedQuote(q)
	if res.QuoteID != "q-1" || res.AgentID != nil || len(res.Groups) != 2 || res.Groups[1].Section != "INSTALLATION" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Groups[1].Lines == nil {
		t.Fatalf("groups must always carry a lines array")
	}
	if list := FromPricedQuotes(nil); list == nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}
