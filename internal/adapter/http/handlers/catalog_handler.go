package handlers

import (
	"net/http"
	"strconv"

	response "solar_quote/internal/adapter/http/dto/response"
	"solar_quote/internal/domain/entities"
	"solar_quote/internal/infrastructure/logging"
	"solar_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the sellable catalog with computed sell prices.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListByCategory godoc
// @Summary      List sellable catalog items of a category
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  true  "PANEL, INVERTER, BATTERY or ACCESSORY"
// @Success      200       {array}   response.CatalogItemResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      503       {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *CatalogHandler) ListByCategory(c *gin.Context) {
	category, ok := entities.ParseCategory(c.Query("category"))
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	items, err := h.usecase.FindByCategory(c.Request.Context(), category)
	if err != nil {
		logging.L().Warn("[catalog][handler] list failed", zap.String("category", string(category)), zap.Error(err))
		abortWithError(c, err)
		return
	}

	out := make([]response.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		price, err := h.usecase.SellPrice(it)
		if err != nil {
			continue
		}
		out = append(out, response.FromCatalogItem(it, price))
	}
	c.JSON(http.StatusOK, out)
}

// GetByID godoc
// @Summary      Get a catalog item
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "Catalog item id"
// @Success      200  {object}  response.CatalogItemResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /catalog/{id} [get]
func (h *CatalogHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	item, err := h.usecase.FindByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	price, err := h.usecase.SellPrice(item)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogItem(item, price))
}

// Refresh godoc
// @Summary      Reload the catalog from the product source
// @Tags         catalog
// @Success      204
// @Failure      503  {object}  pkg.HTTPError
// @Router       /catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.usecase.Refresh(c.Request.Context()); err != nil {
		logging.L().Warn("[catalog][handler] refresh failed", zap.Error(err))
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
