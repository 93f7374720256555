package interfaces

import (
	"context"
	"solar_quote/internal/domain/entities"
)

//go:generate mockgen -source=quote_snapshot_repository_interface.go -destination=mocks/quote_snapshot_repository_mock.go -package=mock_interfaces

// IQuoteSnapshotRepository persists in-progress quotation sessions.
//
// Load never fails on missing or unreadable data: both come back as found=false.
// Errors are reserved for the storage itself being unreachable.
type IQuoteSnapshotRepository interface {
	Save(ctx context.Context, snapshot entities.QuoteSnapshot) error
	Load(ctx context.Context, sessionID string) (snapshot entities.QuoteSnapshot, found bool, err error)
	Delete(ctx context.Context, sessionID string) error
}
