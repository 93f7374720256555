package routes

import (
	"solar_quote/internal/adapter/http/handlers"
	"solar_quote/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog       = "/catalog"
	PathQuoteSessions = "/quote-sessions"
	PathQuotes        = "/quotes"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	sessionHandler *handlers.QuoteSessionHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.ListByCategory)
		catalog.GET("/:id", catalogHandler.GetByID)
		catalog.POST("/refresh", catalogHandler.Refresh)
	}

	sessions := rg.Group(PathQuoteSessions, middleware.AgentIdentity())
	{
		sessions.POST("", sessionHandler.Open)
		sessions.GET("/:session_id", sessionHandler.Get)
		sessions.POST("/:session_id/items", sessionHandler.AddItem)
		sessions.POST("/:session_id/items/:catalog_item_id/increase", sessionHandler.IncreaseItem)
		sessions.POST("/:session_id/items/:catalog_item_id/decrease", sessionHandler.DecreaseItem)
		sessions.DELETE("/:session_id/items/:catalog_item_id", sessionHandler.RemoveItem)
		sessions.PUT("/:session_id/installation", sessionHandler.SetInstallation)
		sessions.PUT("/:session_id/customer", sessionHandler.SetCustomer)
		sessions.POST("/:session_id/finalize", sessionHandler.Finalize)
		sessions.POST("/:session_id/reset", sessionHandler.Reset)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListByCustomer)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.GET("/:quote_id/summary", quoteHandler.GetSummary)
	}
}
