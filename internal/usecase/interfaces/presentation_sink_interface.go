package interfaces

import (
	"context"
	"solar_quote/internal/domain/entities"
)

//go:generate mockgen -source=presentation_sink_interface.go -destination=mocks/presentation_sink_mock.go -package=mock_interfaces

// Document is a rendered quote ready to be served.
type Document struct {
	ContentType string
	FileName    string
	Body        []byte
}

// IPresentationSink turns a priced quote into a document (summary, PDF, ...).
type IPresentationSink interface {
	Render(ctx context.Context, q entities.PricedQuote) (Document, error)
}
