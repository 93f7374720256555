package request

import (
	"errors"
	"strings"

	"solar_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInstallationType = errors.New("invalid installation type")
	ErrInvalidCatalogItemID    = errors.New("invalid catalog item id")
)

type AddressRequest struct {
	ProvinceID int64  `json:"province_id"`
	DistrictID int64  `json:"district_id"`
	WardID     int64  `json:"ward_id"`
	Street     string `json:"street"`
}

type CustomerRequest struct {
	CustomerID string         `json:"customer_id"`
	Name       string         `json:"name"`
	Phone      string         `json:"phone"`
	Address    AddressRequest `json:"address"`
}

func (r CustomerRequest) ToEntity() entities.CustomerLink {
	return entities.CustomerLink{
		CustomerID: strings.TrimSpace(r.CustomerID),
		Name:       strings.TrimSpace(r.Name),
		Phone:      strings.TrimSpace(r.Phone),
		Address: entities.Address{
			ProvinceID: r.Address.ProvinceID,
			DistrictID: r.Address.DistrictID,
			WardID:     r.Address.WardID,
			Street:     strings.TrimSpace(r.Address.Street),
		},
	}
}

// OpenSessionRequest opens a new wizard or resumes session_id. The body is
// optional.
type OpenSessionRequest struct {
	SessionID string           `json:"session_id"`
	Customer  *CustomerRequest `json:"customer"`
}

func (r OpenSessionRequest) ResolveCustomer() entities.CustomerLink {
	if r.Customer == nil {
		return entities.CustomerLink{}
	}
	return r.Customer.ToEntity()
}

type AddItemRequest struct {
	CatalogItemID int64 `json:"catalog_item_id" binding:"required"`
}

func (r AddItemRequest) ResolveCatalogItemID() (int64, error) {
	if r.CatalogItemID <= 0 {
		return 0, ErrInvalidCatalogItemID
	}
	return r.CatalogItemID, nil
}

// InstallationRequest accepts amounts as JSON numbers or decimal strings.
type InstallationRequest struct {
	Type            string           `json:"type" binding:"required"`
	FrameSellPrice  *decimal.Decimal `json:"frame_sell_price"`
	FrameLaborPrice *decimal.Decimal `json:"frame_labor_price"`
}

func (r InstallationRequest) ToEntity() (entities.InstallationChoice, error) {
	t := entities.InstallationType(strings.ToUpper(strings.TrimSpace(r.Type)))
	if !t.Valid() {
		return entities.InstallationChoice{}, ErrInvalidInstallationType
	}
	return entities.InstallationChoice{
		Type:            t,
		FrameSellPrice:  r.FrameSellPrice,
		FrameLaborPrice: r.FrameLaborPrice,
	}, nil
}
