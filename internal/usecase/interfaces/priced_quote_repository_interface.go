package interfaces

import (
	"context"
	"solar_quote/internal/domain/entities"
)

//go:generate mockgen -source=priced_quote_repository_interface.go -destination=mocks/priced_quote_repository_mock.go -package=mock_interfaces

// IPricedQuoteRepository stores finalized quotes.
//
// GetByID returns a zero PricedQuote (empty ID) when nothing is stored under id.
type IPricedQuoteRepository interface {
	Create(ctx context.Context, q entities.PricedQuote) (entities.PricedQuote, error)
	GetByID(ctx context.Context, id string) (entities.PricedQuote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.PricedQuote, error)
}
