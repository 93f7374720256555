package request

import (
	"encoding/json"
	"errors"
	"testing"

	"solar_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestOpenSessionRequest_ResolveCustomer(t *testing.T) {
	if got := (OpenSessionRequest{}).ResolveCustomer(); got != (entities.CustomerLink{}) {
		t.Fatalf("expected empty customer, got %+v", got)
	}

	r := OpenSessionRequest{Customer: &CustomerRequest{
		CustomerID: " c-1 ",
		Name:       " Tran Van A ",
		Address:    AddressRequest{ProvinceID: 79, WardID: 26734, Street: " 12 Nguyen Hue "},
	}}
	got := r.ResolveCustomer()
	if got.CustomerID != "c-1" || got.Name != "Tran Van A" || got.Address.Street != "12 Nguyen Hue" || got.Address.ProvinceID != 79 {
		t.Fatalf("unexpected customer: %+v", got)
	}
}

func TestAddItemRequest_ResolveCatalogItemID(t *testing.T) {
	if id, err := (AddItemRequest{CatalogItemID: 3}).ResolveCatalogItemID(); err != nil || id != 3 {
		t.Fatalf("expected 3, got %d err=%v", id, err)
	}
	if _, err := (AddItemRequest{CatalogItemID: -1}).ResolveCatalogItemID(); !errors.Is(err, ErrInvalidCatalogItemID) {
		t.Fatalf("expected ErrInvalidCatalogItemID, got %v", err)
	}
}

func TestInstallationRequest_ToEntity(t *testing.T) {
	var r InstallationRequest
	if err := json.Unmarshal([]byte(`{"type":"ground_frame","frame_sell_price":2000000,"frame_labor_price":"500000"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	choice, err := r.ToEntity()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if choice.Type != entities.InstallationGroundFrame ||
		!choice.FrameSellPrice.Equal(decimal.NewFromInt(2000000)) ||
		!choice.FrameLaborPrice.Equal(decimal.NewFromInt(500000)) {
		t.Fatalf("unexpected choice: %+v", choice)
	}

	if _, err := (InstallationRequest{Type: "pole"}).ToEntity(); !errors.Is(err, ErrInvalidInstallationType) {
		t.Fatalf("expected ErrInvalidInstallationType, got %v", err)
	}
}
