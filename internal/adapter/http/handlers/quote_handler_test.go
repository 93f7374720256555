package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"solar_quote/internal/adapter/http/handlers/mocks"
	"solar_quote/internal/domain/entities"
	"solar_quote/internal/usecase"
	"solar_quote/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/quotes", h.ListByCustomer)
	r.GET("/v1/quotes/:quote_id", h.GetQuote)
	r.GET("/v1/quotes/:quote_id/summary", h.GetSummary)
	return r
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		agent := int64(7)
		uc.EXPECT().GetQuote(gomock.Any(), "q-1").Return(entities.PricedQuote{ID: "q-1", AgentID: &agent}, nil)

		w := serve(r, http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "q-1" || body["agent_id"] != float64(7) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().GetQuote(gomock.Any(), "q-9").Return(entities.PricedQuote{}, usecase.ErrQuoteNotFound)

		if w := serve(r, http.MethodGet, "/v1/quotes/q-9", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListByCustomer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().ListByCustomer(gomock.Any(), "c-1").Return([]entities.PricedQuote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		w := serve(r, http.MethodGet, "/v1/quotes?customer_id=c-1", "")
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || len(body) != 2 {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		r := newQuoteRouter(NewQuoteHandler(uc))

		uc.EXPECT().ListByCustomer(gomock.Any(), "").Return(nil, usecase.ErrInvalidCustomerID)

		if w := serve(r, http.MethodGet, "/v1/quotes", ""); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	r := newQuoteRouter(NewQuoteHandler(uc))

	uc.EXPECT().RenderSummary(gomock.Any(), "q-1").Return(interfaces.Document{
		ContentType: "text/plain; charset=utf-8",
		FileName:    "quote-q-1.txt",
		Body:        []byte("Quote q-1"),
	}, nil)

	w := serve(r, http.MethodGet, "/v1/quotes/q-1/summary", "")
	if w.Code != http.StatusOK || w.Body.String() != "Quote q-1" {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
	if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain") || !strings.Contains(w.Header().Get("Content-Disposition"), "quote-q-1.txt") {
		t.Fatalf("unexpected headers: %v", w.Header())
	}
}
