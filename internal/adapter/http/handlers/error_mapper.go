package handlers

import (
	"errors"
	"net/http"

	"solar_quote/internal/domain/installation"
	"solar_quote/internal/domain/pricing"
	"solar_quote/internal/domain/selection"
	"solar_quote/internal/usecase"
	"solar_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidCatalogItemID),
		errors.Is(err, usecase.ErrInvalidCategory), errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidRequest
	case errors.Is(err, installation.ErrUnknownInstallationType), errors.Is(err, installation.ErrNegativeFrameCost):
		return pkg.NewDomainErrorSimple("INVALID_INSTALLATION", "Invalid installation choice", http.StatusBadRequest)
	case errors.Is(err, selection.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Removing the last unit requires confirmation; delete the line item instead", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteFinalized), errors.Is(err, selection.ErrSelectionFrozen):
		return pkg.NewDomainErrorSimple("QUOTE_FINALIZED", "Quote session already finalized", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Quote session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, selection.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, pricing.ErrDegenerateMargin), errors.Is(err, pricing.ErrNegativeImportCost):
		return pkg.NewDomainErrorSimple("ITEM_NOT_SELLABLE", "Catalog item has invalid pricing data", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEmptySelection):
		return pkg.NewDomainErrorSimple("EMPTY_SELECTION", "Quote session has no line items", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return pkg.NewDomainError("CATALOG_UNAVAILABLE", "Catalog is unavailable, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
