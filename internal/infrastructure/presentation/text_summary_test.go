package presentation

import (
	"context"
	"strings"
	"testing"
	"time"

	"solar_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0",
		"999":       "999",
		"1000":      "1,000",
		"32500000":  "32,500,000",
		"-1234567":  "-1,234,567",
		"1000.6":    "1,001",
		"123456789": "123,456,789",
		"-0.4":      "0",
	}
	for in, want := range cases {
		if got := formatMoney(decimal.RequireFromString(in)); got != want {
			t.Errorf("formatMoney(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestTextSummarySink_Render(t *testing.T) {
	agent := int64(7)
	q := entities.PricedQuote{
		ID:       "q-1",
		AgentID:  &agent,
		Customer: entities.CustomerLink{Name: "Tran Van A", Phone: "0900000000"},
		Groups: []entities.QuoteGroup{
			{
				Section:  entities.QuoteSection(entities.CategoryPanel),
				Lines:    []entities.LineItem{{CatalogItemID: 1, Name: "Mono 550W", Unit: "panel", SellPrice: decimal.NewFromInt(10000000), Quantity: 3}},
				Quantity: 3,
				Subtotal: decimal.NewFromInt(30000000),
			},
			{Section: entities.SectionInstallation, Quantity: 1, Subtotal: decimal.NewFromInt(2500000)},
		},
		GrandTotal:  decimal.NewFromInt(32500000),
		GeneratedAt: time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC),
	}

	doc, err := NewTextSummarySink().Render(context.Background(), q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.FileName != "quote-q-1.txt" || !strings.HasPrefix(doc.ContentType, "text/plain") {
		t.Fatalf("unexpected document header: %+v", doc)
	}
	body := string(doc.Body)
	for _, want := range []string{"Quote q-1", "Agent 7", "Tran Van A", "PANEL", "Mono 550W", "30,000,000", "INSTALLATION", "2,500,000", "Grand total", "32,500,000"} {
		if !strings.Contains(body, want) {
			t.Errorf("summary is missing %q:\n%s", want, body)
		}
	}
	if strings.Index(body, "PANEL") > strings.Index(body, "INSTALLATION") {
		t.Errorf("sections out of order:\n%s", body)
	}
}
