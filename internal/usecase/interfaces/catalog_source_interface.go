package interfaces

import (
	"context"
	"solar_quote/internal/domain/entities"
)

//go:generate mockgen -source=catalog_source_interface.go -destination=mocks/catalog_source_mock.go -package=mock_interfaces

// ICatalogSource abstracts the remote product listing.
//
// A nil category lists the whole catalog. Implementations make a single
// attempt; retry policy is not theirs to decide.
type ICatalogSource interface {
	FetchAll(ctx context.Context, category *entities.Category) ([]entities.CatalogItem, error)
}
