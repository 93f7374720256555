package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/domain/installation"
	"solar_quote/internal/infrastructure/logging"
	"solar_quote/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const snapshotKeyPrefix = "quote_snapshot:"

var (
	ErrSnapshotCorrupt      = errors.New("quote snapshot corrupt")
	ErrInvalidSnapshotOwner = errors.New("quote snapshot has no session id")
)

// QuoteSnapshotKVRepository stores one JSON record per quotation session in a
// key/value store.
//
// Each save replaces the record as a whole. A save carrying a revision that is
// not newer than the stored one is skipped, so the latest mutation always wins
// even if an older save arrives late.
type QuoteSnapshotKVRepository struct {
	kv interfaces.IKeyValueStore
	mu sync.Mutex
}

var _ interfaces.IQuoteSnapshotRepository = (*QuoteSnapshotKVRepository)(nil)

func NewQuoteSnapshotKVRepository(kv interfaces.IKeyValueStore) *QuoteSnapshotKVRepository {
	return &QuoteSnapshotKVRepository{kv: kv}
}

func (r *QuoteSnapshotKVRepository) Save(ctx context.Context, s entities.QuoteSnapshot) error {
	sessionID := strings.TrimSpace(s.SessionID)
	if sessionID == "" {
		return ErrInvalidSnapshotOwner
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, found, err := r.load(ctx, sessionID); err != nil {
		return err
	} else if found && stored.Revision >= s.Revision {
		logging.L().Info("[snapshot][repository] skipping outdated save",
			zap.String("session_id", sessionID), zap.Uint64("stored_revision", stored.Revision), zap.Uint64("revision", s.Revision))
		return nil
	}
	return r.kv.Set(ctx, snapshotKey(sessionID), data)
}

func (r *QuoteSnapshotKVRepository) Load(ctx context.Context, sessionID string) (entities.QuoteSnapshot, bool, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.QuoteSnapshot{}, false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx, sessionID)
}

func (r *QuoteSnapshotKVRepository) Delete(ctx context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSnapshotOwner
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.kv.Delete(ctx, snapshotKey(sessionID))
}

// load reads a snapshot; corrupt data is logged and reported as absent.
func (r *QuoteSnapshotKVRepository) load(ctx context.Context, sessionID string) (entities.QuoteSnapshot, bool, error) {
	raw, found, err := r.kv.Get(ctx, snapshotKey(sessionID))
	if err != nil {
		return entities.QuoteSnapshot{}, false, err
	}
	if !found || len(raw) == 0 {
		return entities.QuoteSnapshot{}, false, nil
	}
	s, err := decodeSnapshot(raw, sessionID)
	if err != nil {
		logging.L().Warn("[snapshot][repository] ignoring unreadable snapshot",
			zap.String("session_id", sessionID), zap.Int("bytes", len(raw)), zap.Error(err))
		return entities.QuoteSnapshot{}, false, nil
	}
	return s, true, nil
}

func decodeSnapshot(raw []byte, sessionID string) (entities.QuoteSnapshot, error) {
	var s entities.QuoteSnapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.QuoteSnapshot{}, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	if s.SessionID != sessionID {
		return entities.QuoteSnapshot{}, fmt.Errorf("%w: stored for session %q", ErrSnapshotCorrupt, s.SessionID)
	}
	seen := make(map[int64]struct{}, len(s.Lines))
	for _, l := range s.Lines {
		if l.CatalogItemID <= 0 || l.Quantity < 1 || l.SellPrice.IsNegative() {
			return entities.QuoteSnapshot{}, fmt.Errorf("%w: invalid line for catalog item %d", ErrSnapshotCorrupt, l.CatalogItemID)
		}
		if _, dup := seen[l.CatalogItemID]; dup {
			return entities.QuoteSnapshot{}, fmt.Errorf("%w: catalog item %d listed twice", ErrSnapshotCorrupt, l.CatalogItemID)
		}
		seen[l.CatalogItemID] = struct{}{}
	}
	choice, err := installation.Normalize(s.Installation)
	if err != nil {
		return entities.QuoteSnapshot{}, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	s.Installation = choice
	return s, nil
}

func snapshotKey(sessionID string) string {
	return snapshotKeyPrefix + sessionID
}
