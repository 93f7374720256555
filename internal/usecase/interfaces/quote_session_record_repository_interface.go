package interfaces

import (
	"context"
	"solar_quote/internal/domain/entities"
)

//go:generate mockgen -source=quote_session_record_repository_interface.go -destination=mocks/quote_session_record_repository_mock.go -package=mock_interfaces

// IQuoteSessionRecordRepository persists the lifecycle record of a session.
//
// Like snapshots, unreadable records load as found=false.
type IQuoteSessionRecordRepository interface {
	Save(ctx context.Context, record entities.QuoteSessionRecord) error
	Load(ctx context.Context, sessionID string) (record entities.QuoteSessionRecord, found bool, err error)
}
