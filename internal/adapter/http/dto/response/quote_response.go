package response

import (
	"time"

	"solar_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	CatalogItemID int64           `json:"catalog_item_id"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Category      string          `json:"category"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	Quantity      int             `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
}

type InstallationResponse struct {
	Type            string           `json:"type"`
	FrameSellPrice  *decimal.Decimal `json:"frame_sell_price,omitempty"`
	FrameLaborPrice *decimal.Decimal `json:"frame_labor_price,omitempty"`
}

type QuoteDraftResponse struct {
	SessionID         string                `json:"session_id"`
	State             string                `json:"state"`
	Revision          uint64                `json:"revision"`
	Lines             []LineItemResponse    `json:"lines"`
	Installation      InstallationResponse  `json:"installation"`
	Customer          entities.CustomerLink `json:"customer"`
	Subtotal          decimal.Decimal       `json:"subtotal"`
	InstallationTotal decimal.Decimal       `json:"installation_total"`
	GrandTotal        decimal.Decimal       `json:"grand_total"`
	QuoteID           string                `json:"quote_id,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type QuoteGroupResponse struct {
	Section  string             `json:"section"`
	Lines    []LineItemResponse `json:"lines"`
	Quantity int                `json:"quantity"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}

type PricedQuoteResponse struct {
	QuoteID           string                `json:"quote_id"`
	SessionID         string                `json:"session_id"`
	AgentID           *int64                `json:"agent_id"`
	Customer          entities.CustomerLink `json:"customer"`
	Groups            []QuoteGroupResponse  `json:"groups"`
	Installation      InstallationResponse  `json:"installation"`
	Subtotal          decimal.Decimal       `json:"subtotal"`
	InstallationTotal decimal.Decimal       `json:"installation_total"`
	GrandTotal        decimal.Decimal       `json:"grand_total"`
	GeneratedAt       time.Time             `json:"generated_at"`
}

func FromLineItems(lines []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineItemResponse{
			CatalogItemID: l.CatalogItemID,
			Name:          l.Name,
			Unit:          l.Unit,
			Category:      string(l.EffectiveCategory()),
			SellPrice:     l.SellPrice,
			Quantity:      l.Quantity,
			Total:         l.Total(),
		})
	}
	return out
}

func FromInstallation(c entities.InstallationChoice) InstallationResponse {
	return InstallationResponse{
		Type:            string(c.Type),
		FrameSellPrice:  c.FrameSellPrice,
		FrameLaborPrice: c.FrameLaborPrice,
	}
}

func FromQuoteDraft(d entities.QuoteDraft) QuoteDraftResponse {
	return QuoteDraftResponse{
		SessionID:         d.SessionID,
		State:             string(d.State),
		Revision:          d.Revision,
		Lines:             FromLineItems(d.Lines),
		Installation:      FromInstallation(d.Installation),
		Customer:          d.Customer,
		Subtotal:          d.Subtotal,
		InstallationTotal: d.InstallationTotal,
		GrandTotal:        d.GrandTotal,
		QuoteID:           d.QuoteID,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func FromPricedQuote(q entities.PricedQuote) PricedQuoteResponse {
	groups := make([]QuoteGroupResponse, 0, len(q.Groups))
	for _, g := range q.Groups {
		groups = append(groups, QuoteGroupResponse{
			Section:  string(g.Section),
			Lines:    FromLineItems(g.Lines),
			Quantity: g.Quantity,
			Subtotal: g.Subtotal,
		})
	}
	return PricedQuoteResponse{
		QuoteID:           q.ID,
		SessionID:         q.SessionID,
		AgentID:           q.AgentID,
		Customer:          q.Customer,
		Groups:            groups,
		Installation:      FromInstallation(q.Installation),
		Subtotal:          q.Subtotal,
		InstallationTotal: q.InstallationTotal,
		GrandTotal:        q.GrandTotal,
		GeneratedAt:       q.GeneratedAt,
	}
}

func FromPricedQuotes(quotes []entities.PricedQuote) []PricedQuoteResponse {
	out := make([]PricedQuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromPricedQuote(q))
	}
	return out
}
