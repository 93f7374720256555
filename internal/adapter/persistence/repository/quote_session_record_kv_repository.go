package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/infrastructure/logging"
	"solar_quote/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const sessionRecordKeyPrefix = "quote_session:"

var ErrSessionRecordCorrupt = errors.New("quote session record corrupt")

// QuoteSessionRecordKVRepository stores the lifecycle record of every session
// next to its snapshot, with the same revision rule: a save that is not newer
// than the stored record is skipped.
type QuoteSessionRecordKVRepository struct {
	kv interfaces.IKeyValueStore
	mu sync.Mutex
}

var _ interfaces.IQuoteSessionRecordRepository = (*QuoteSessionRecordKVRepository)(nil)

func NewQuoteSessionRecordKVRepository(kv interfaces.IKeyValueStore) *QuoteSessionRecordKVRepository {
	return &QuoteSessionRecordKVRepository{kv: kv}
}

func (r *QuoteSessionRecordKVRepository) Save(ctx context.Context, rec entities.QuoteSessionRecord) error {
	sessionID := strings.TrimSpace(rec.SessionID)
	if sessionID == "" {
		return ErrInvalidSnapshotOwner
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, found, err := r.load(ctx, sessionID); err != nil {
		return err
	} else if found && stored.Revision >= rec.Revision {
		logging.L().Info("[session][repository] skipping outdated record",
			zap.String("session_id", sessionID), zap.Uint64("stored_revision", stored.Revision), zap.Uint64("revision", rec.Revision))
		return nil
	}
	return r.kv.Set(ctx, sessionRecordKeyPrefix+sessionID, data)
}

func (r *QuoteSessionRecordKVRepository) Load(ctx context.Context, sessionID string) (entities.QuoteSessionRecord, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.QuoteSessionRecord{}, false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx, sessionID)
}

func (r *QuoteSessionRecordKVRepository) load(ctx context.Context, sessionID string) (entities.QuoteSessionRecord, bool, error) {
	raw, found, err := r.kv.Get(ctx, sessionRecordKeyPrefix+sessionID)
	if err != nil {
		return entities.QuoteSessionRecord{}, false, err
	}
	if !found || len(raw) == 0 {
		return entities.QuoteSessionRecord{}, false, nil
	}
	rec, err := decodeSessionRecord(raw, sessionID)
	if err != nil {
		logging.L().Warn("[session][repository] ignoring unreadable record",
			zap.String("session_id", sessionID), zap.Int("bytes", len(raw)), zap.Error(err))
		return entities.QuoteSessionRecord{}, false, nil
	}
	return rec, true, nil
}

func decodeSessionRecord(raw []byte, sessionID string) (entities.QuoteSessionRecord, error) {
	var rec entities.QuoteSessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return entities.QuoteSessionRecord{}, fmt.Errorf("%w: %v", ErrSessionRecordCorrupt, err)
	}
	if rec.SessionID != sessionID {
		return entities.QuoteSessionRecord{}, fmt.Errorf("%w: stored for session %q", ErrSessionRecordCorrupt, rec.SessionID)
	}
	switch rec.State {
	case entities.QuoteStateEmpty:
	case entities.QuoteStateFinalized:
		if strings.TrimSpace(rec.QuoteID) == "" {
			return entities.QuoteSessionRecord{}, fmt.Errorf("%w: finalized without quote id", ErrSessionRecordCorrupt)
		}
	default:
		return entities.QuoteSessionRecord{}, fmt.Errorf("%w: state %q", ErrSessionRecordCorrupt, rec.State)
	}
	return rec, nil
}
