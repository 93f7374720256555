package response

import (
	"solar_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CatalogItemResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Unit          string            `json:"unit"`
	ImportCost    decimal.Decimal   `json:"import_cost"`
	MarginRate    *decimal.Decimal  `json:"margin_rate,omitempty"`
	SellPrice     decimal.Decimal   `json:"sell_price"`
	WarrantyYears *int              `json:"warranty_years,omitempty"`
	ImageURL      string            `json:"image_url,omitempty"`
	Specs         map[string]string `json:"specs,omitempty"`
}

func FromCatalogItem(item entities.CatalogItem, sellPrice decimal.Decimal) CatalogItemResponse {
	res := CatalogItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Category:      string(item.Category),
		Unit:          item.Unit,
		ImportCost:    item.ImportCost,
		SellPrice:     sellPrice,
		WarrantyYears: item.WarrantyYears,
		ImageURL:      item.ImageURL,
		Specs:         item.Specs,
	}
	if item.MarginRate.Valid {
		m := item.MarginRate.Decimal
		res.MarginRate = &m
	}
	return res
}
