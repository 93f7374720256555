package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"solar_quote/internal/adapter/http/handlers/mocks"
	"solar_quote/internal/domain/entities"
	"solar_quote/internal/domain/pricing"
	"solar_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newCatalogRouter(h *CatalogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/catalog", h.ListByCategory)
	r.GET("/v1/catalog/:id", h.GetByID)
	r.POST("/v1/catalog/refresh", h.Refresh)
	return r
}

func TestCatalogHandler_ListByCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		panel := entities.CatalogItem{ID: 1, Name: "Mono 550W", Category: entities.CategoryPanel, ImportCost: decimal.NewFromInt(9000000)}
		uc.EXPECT().FindByCategory(gomock.Any(), entities.CategoryPanel).Return([]entities.CatalogItem{panel}, nil)
		uc.EXPECT().SellPrice(gomock.Any()).Return(decimal.NewFromInt(10000000), nil)

		w := serve(r, http.MethodGet, "/v1/catalog?category=panel", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["sell_price"] != "10000000" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		if w := serve(r, http.MethodGet, "/v1/catalog?category=roof", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("catalog unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		r := newCatalogRouter(NewCatalogHandler(uc))

		uc.EXPECT().FindByCategory(gomock.Any(), entities.CategoryBattery).Return(nil, fmt.Errorf("%w: timeout", usecase.ErrCatalogUnavailable))

		if w := serve(r, http.MethodGet, "/v1/catalog?category=BATTERY", ""); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		path string
		err  error
		want int
	}{
		{name: "found", path: "/v1/catalog/1", want: http.StatusOK},
		{name: "not a number", path: "/v1/catalog/x", want: http.StatusBadRequest},
		{name: "missing", path: "/v1/catalog/1", err: usecase.ErrCatalogItemNotFound, want: http.StatusNotFound},
		{name: "degenerate margin", path: "/v1/catalog/1", err: pricing.ErrDegenerateMargin, want: http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockICatalogUseCase(ctrl)
			r := newCatalogRouter(NewCatalogHandler(uc))

			if tc.want != http.StatusBadRequest {
				uc.EXPECT().FindByID(gomock.Any(), int64(1)).Return(entities.CatalogItem{ID: 1}, tc.err)
			}
			if tc.err == nil && tc.want == http.StatusOK {
				uc.EXPECT().SellPrice(gomock.Any()).Return(decimal.NewFromInt(1000), nil)
			}

			if w := serve(r, http.MethodGet, tc.path, ""); w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestCatalogHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	r := newCatalogRouter(NewCatalogHandler(uc))

	uc.EXPECT().Refresh(gomock.Any()).Return(nil)
	uc.EXPECT().Refresh(gomock.Any()).Return(errors.New("boom"))

	if w := serve(r, http.MethodPost, "/v1/catalog/refresh", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := serve(r, http.MethodPost, "/v1/catalog/refresh", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
