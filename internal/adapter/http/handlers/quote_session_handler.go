package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "solar_quote/internal/adapter/http/dto/request"
	response "solar_quote/internal/adapter/http/dto/response"
	"solar_quote/internal/domain/entities"
	"solar_quote/internal/domain/selection"
	"solar_quote/internal/infrastructure/logging"
	"solar_quote/internal/usecase"
	"solar_quote/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidInstallationPayload = pkg.NewDomainErrorSimple("INVALID_INSTALLATION", "Invalid installation choice", http.StatusBadRequest)
)

// QuoteSessionHandler exposes the quotation wizard. Every mutating endpoint
// answers with the updated draft once its snapshot has been written.

type QuoteSessionHandler struct {
	usecase usecase.IQuoteSessionUseCase
}

func NewQuoteSessionHandler(uc usecase.IQuoteSessionUseCase) *QuoteSessionHandler {
	return &QuoteSessionHandler{usecase: uc}
}

// Open godoc
// @Summary      Open a new quotation session or resume an existing one
// @Tags         quote-sessions
// @Accept       json
// @Produce      json
// @Param        payload  body      request.OpenSessionRequest  false  "Session to resume and customer link"
// @Success      200      {object}  response.QuoteDraftResponse
// @Router       /quote-sessions [post]
func (h *QuoteSessionHandler) Open(c *gin.Context) {
	var payload request.OpenSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	draft, err := h.usecase.Open(c.Request.Context(), payload.SessionID, payload.ResolveCustomer())
	if err != nil {
		logging.L().Error("[quote][handler] open failed", zap.String("session_id", payload.SessionID), zap.Error(err))
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDraft(draft))
}

// Get godoc
// @Summary      Get the current draft of a quotation session
// @Tags         quote-sessions
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Success      200         {object}  response.QuoteDraftResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /quote-sessions/{session_id} [get]
func (h *QuoteSessionHandler) Get(c *gin.Context) {
	draft, err := h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDraft(draft))
}

// AddItem godoc
// @Summary      Add one unit of a catalog item
// @Tags         quote-sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                  true  "Session id"
// @Param        payload     body      request.AddItemRequest  true  "Catalog item"
// @Success      200         {object}  response.QuoteDraftResponse
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /quote-sessions/{session_id}/items [post]
func (h *QuoteSessionHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	id, err := payload.ResolveCatalogItemID()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	h.respondDraft(c, func(ctx context.Context, sessionID string) (entities.QuoteDraft, error) {
		return h.usecase.AddItem(ctx, sessionID, id)
	})
}

// IncreaseItem godoc
// @Summary      Add one unit to a selected line item
// @Tags         quote-sessions
// @Produce      json
// @Param        session_id       path      string  true  "Session id"
// @Param        catalog_item_id  path      int     true  "Catalog item id"
// @Success      200              {object}  response.QuoteDraftResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /quote-sessions/{session_id}/items/{catalog_item_id}/increase [post]
func (h *QuoteSessionHandler) IncreaseItem(c *gin.Context) {
	h.lineItemAction(c, h.usecase.IncreaseItem)
}

// DecreaseItem godoc
// @Summary      Remove one unit from a selected line item
// @Description  The last unit is never removed here: the call answers 409 CONFIRMATION_REQUIRED and the client confirms with DELETE.
// @Tags         quote-sessions
// @Produce      json
// @Param        session_id       path      string  true  "Session id"
// @Param        catalog_item_id  path      int     true  "Catalog item id"
// @Success      200              {object}  response.QuoteDraftResponse
// @Failure      409              {object}  pkg.HTTPError
// @Router       /quote-sessions/{session_id}/items/{catalog_item_id}/decrease [post]
func (h *QuoteSessionHandler) DecreaseItem(c *gin.Context) {
	h.lineItemAction(c, h.usecase.DecreaseItem)
}

// RemoveItem godoc
// @Summary      Delete a line item
// @Tags         quote-sessions
// @Produce      json
// @Param        session_id       path      string  true  "Session id"
// @Param        catalog_item_id  path      int     true  "Catalog item id"
// @Success      200              {object}  response.QuoteDraftResponse
// @Failure      404              {object}  pkg.HTTPError
// @Router       /quote-sessions/{session_id}/items/{catalog_item_id} [delete]
func (h *QuoteSessionHandler) RemoveItem(c *gin.Context) {
	h.lineItemAction(c, h.usecase.RemoveItem)
}

// SetInstallation godoc
// @Summary      Choose the installation method
// @Tags         quote-sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                       true  "Session id"
// @Param        payload     body      request.InstallationRequest  true  "Installation choice"
// @Success      200         {object}  response.QuoteDraftResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /quote-sessions/{session_id}/installation [put]
func (h *QuoteSessionHandler) SetInstallation(c *gin.Context) {
	var payload request.InstallationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInstallationPayload.HTTPStatus, errInvalidInstallationPayload.ToHTTPError())
		return
	}
	choice, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidInstallationPayload.HTTPStatus, errInvalidInstallationPayload.ToHTTPError())
		return
	}
	h.respondDraft(c, func(ctx context.Context, sessionID string) (entities.QuoteDraft, error) {
		return h.usecase.SetInstallation(ctx, sessionID, choice)
	})
}

// SetCustomer godoc
// @Summary      Link the quotation to a customer and site address
// @Tags         quote-sessions
// @Accept       json
// @Produce      json
// @Param        session_id  path      string                   true  "Session id"
// @Param        payload     body      request.CustomerRequest  true  "Customer"
// @Success      200         {object}  response.QuoteDraftResponse
// @Router       /quote-sessions/{session_id}/customer [put]
func (h *QuoteSessionHandler) SetCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	h.respondDraft(c, func(ctx context.Context, sessionID string) (entities.QuoteDraft, error) {
		return h.usecase.SetCustomer(ctx, sessionID, payload.ToEntity())
	})
}

// Finalize godoc
// @Summary      Price and freeze the quotation
// @Tags         quote-sessions
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Success      201         {object}  response.PricedQuoteResponse
// @Failure      422         {object}  pkg.HTTPError
// @Router       /quote-sessions/{session_id}/finalize [post]
func (h *QuoteSessionHandler) Finalize(c *gin.Context) {
	sessionID := c.Param("session_id")
	logging.L().Info("[quote][handler] finalize start", zap.String("session_id", sessionID))

	q, err := h.usecase.Finalize(c.Request.Context(), sessionID)
	if err != nil {
		logging.L().Warn("[quote][handler] finalize failed", zap.String("session_id", sessionID), zap.Error(err))
		abortWithError(c, err)
		return
	}
	logging.L().Info("[quote][handler] finalize success", zap.String("session_id", sessionID), zap.String("quote_id", q.ID))
	c.JSON(http.StatusCreated, response.FromPricedQuote(q))
}

// Reset godoc
// @Summary      Discard the quotation and start over
// @Tags         quote-sessions
// @Produce      json
// @Param        session_id  path      string  true  "Session id"
// @Success      200         {object}  response.QuoteDraftResponse
// @Router       /quote-sessions/{session_id}/reset [post]
func (h *QuoteSessionHandler) Reset(c *gin.Context) {
	h.respondDraft(c, h.usecase.Reset)
}

func (h *QuoteSessionHandler) lineItemAction(
	c *gin.Context,
	action func(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error),
) {
	id, err := strconv.ParseInt(c.Param("catalog_item_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	h.respondDraft(c, func(ctx context.Context, sessionID string) (entities.QuoteDraft, error) {
		return action(ctx, sessionID, id)
	})
}

func (h *QuoteSessionHandler) respondDraft(
	c *gin.Context,
	run func(ctx context.Context, sessionID string) (entities.QuoteDraft, error),
) {
	sessionID := c.Param("session_id")
	draft, err := run(c.Request.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, selection.ErrConfirmationRequired) {
			logging.L().Warn("[quote][handler] request failed",
				zap.String("session_id", sessionID), zap.String("path", c.FullPath()), zap.Error(err))
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDraft(draft))
}
