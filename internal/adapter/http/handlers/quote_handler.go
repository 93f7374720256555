package handlers

import (
	"net/http"

	response "solar_quote/internal/adapter/http/dto/response"
	"solar_quote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves finalized quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetQuote godoc
// @Summary      Get a finalized quote
// @Tags         quotes
// @Produce      json
// @Param        quote_id  path      string  true  "Quote id"
// @Success      200       {object}  response.PricedQuoteResponse
// @Failure      404       {object}  pkg.HTTPError
// @Router       /quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricedQuote(q))
}

// ListByCustomer godoc
// @Summary      List finalized quotes of a customer
// @Tags         quotes
// @Produce      json
// @Param        customer_id  query     string  true  "Customer id"
// @Success      200          {array}   response.PricedQuoteResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListByCustomer(c *gin.Context) {
	quotes, err := h.usecase.ListByCustomer(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricedQuotes(quotes))
}

// GetSummary godoc
// @Summary      Render a finalized quote as a printable summary
// @Tags         quotes
// @Produce      plain
// @Param        quote_id  path  string  true  "Quote id"
// @Success      200
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{quote_id}/summary [get]
func (h *QuoteHandler) GetSummary(c *gin.Context) {
	doc, err := h.usecase.RenderSummary(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if doc.FileName != "" {
		c.Header("Content-Disposition", `inline; filename="`+doc.FileName+`"`)
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
