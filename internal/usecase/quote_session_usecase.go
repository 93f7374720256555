package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/domain/installation"
	"solar_quote/internal/domain/pricing"
	"solar_quote/internal/domain/quote"
	"solar_quote/internal/domain/selection"
	"solar_quote/internal/infrastructure/logging"
	"solar_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotFound  = errors.New("quote session not found")
	ErrQuoteFinalized   = errors.New("quote session already finalized")
	ErrEmptySelection   = errors.New("quote session has no line items")
)

// IQuoteSessionUseCase drives one quotation wizard per session id.
//
//	EMPTY -> BUILDING -> FINALIZED
//
// Every accepted mutation moves the session to BUILDING and is snapshotted
// before the call returns; a mutation whose snapshot cannot be written is
// rolled back. FINALIZED is terminal until Reset, which returns the session to
// EMPTY and deletes the snapshot.
//
// While a session has no snapshot (EMPTY or FINALIZED) a session record keeps
// it resolvable, so eviction from the in-process cache never loses it.

type IQuoteSessionUseCase interface {
	Open(ctx context.Context, sessionID string, customer entities.CustomerLink) (entities.QuoteDraft, error)
	Get(ctx context.Context, sessionID string) (entities.QuoteDraft, error)
	AddItem(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error)
	IncreaseItem(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error)
	DecreaseItem(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error)
	RemoveItem(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error)
	SetInstallation(ctx context.Context, sessionID string, choice entities.InstallationChoice) (entities.QuoteDraft, error)
	SetCustomer(ctx context.Context, sessionID string, customer entities.CustomerLink) (entities.QuoteDraft, error)
	Finalize(ctx context.Context, sessionID string) (entities.PricedQuote, error)
	Reset(ctx context.Context, sessionID string) (entities.QuoteDraft, error)
}

type quoteSession struct {
	mu sync.Mutex

	id           string
	state        entities.QuoteState
	revision     uint64
	selection    *selection.Store
	installation entities.InstallationChoice
	customer     entities.CustomerLink
	quote        *entities.PricedQuote
	createdAt    time.Time
	updatedAt    time.Time
}

// sessionState is the mutable part of a session, captured to undo a mutation.
type sessionState struct {
	lines        []entities.LineItem
	state        entities.QuoteState
	revision     uint64
	installation entities.InstallationChoice
	customer     entities.CustomerLink
	updatedAt    time.Time
}

func (s *quoteSession) capture() sessionState {
	return sessionState{
		lines:        s.selection.Lines(),
		state:        s.state,
		revision:     s.revision,
		installation: s.installation,
		customer:     s.customer,
		updatedAt:    s.updatedAt,
	}
}

func (s *quoteSession) rollback(prev sessionState) error {
	if err := s.selection.Restore(prev.lines); err != nil {
		return err
	}
	s.state = prev.state
	s.revision = prev.revision
	s.installation = prev.installation
	s.customer = prev.customer
	s.updatedAt = prev.updatedAt
	return nil
}

var errSnapshotUnusable = errors.New("stored session cannot be restored")

// QuoteSessionUseCase keeps live sessions in a bounded LRU. A session pushed
// out of the cache is rebuilt from its snapshot or session record on the next
// call.
type QuoteSessionUseCase struct {
	catalog   ICatalogUseCase
	snapshots interfaces.IQuoteSnapshotRepository
	records   interfaces.IQuoteSessionRecordRepository
	quotes    interfaces.IPricedQuoteRepository
	identity  interfaces.IIdentityProvider
	calc      *pricing.Calculator
	now       func() time.Time
	newID     func() string

	mu       sync.Mutex
	sessions *lru.Cache[string, *quoteSession]
}

var _ IQuoteSessionUseCase = (*QuoteSessionUseCase)(nil)

func NewQuoteSessionUseCase(
	catalog ICatalogUseCase,
	snapshots interfaces.IQuoteSnapshotRepository,
	records interfaces.IQuoteSessionRecordRepository,
	quotes interfaces.IPricedQuoteRepository,
	identity interfaces.IIdentityProvider,
	calc *pricing.Calculator,
	cacheSize int,
) (*QuoteSessionUseCase, error) {
	sessions, err := lru.New[string, *quoteSession](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	return &QuoteSessionUseCase{
		catalog:   catalog,
		snapshots: snapshots,
		records:   records,
		quotes:    quotes,
		identity:  identity,
		calc:      calc,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		sessions:  sessions,
	}, nil
}

// Open resumes the session from memory or from storage. An unknown (or empty)
// session id starts a fresh EMPTY session linked to customer; an existing
// session is returned as-is.
func (u *QuoteSessionUseCase) Open(ctx context.Context, sessionID string, customer entities.CustomerLink) (entities.QuoteDraft, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = u.newID()
	}

	s, found, err := u.lookup(ctx, sessionID)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	if !found {
		now := u.now()
		fresh := &quoteSession{
			id:           sessionID,
			state:        entities.QuoteStateEmpty,
			selection:    selection.NewStore(u.calc),
			installation: entities.RoofMount(),
			customer:     customer,
			createdAt:    now,
			updatedAt:    now,
		}
		if err := u.records.Save(ctx, u.record(fresh)); err != nil {
			return entities.QuoteDraft{}, fmt.Errorf("save session record: %w", err)
		}
		s = u.admit(fresh)
		logging.L().Info("[quote][usecase] session opened", zap.String("session_id", sessionID))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return u.draft(s), nil
}

func (u *QuoteSessionUseCase) Get(ctx context.Context, sessionID string) (entities.QuoteDraft, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return u.draft(s), nil
}

// AddItem prices the catalog item at add time. Adding an item already in the
// selection bumps its quantity instead.
func (u *QuoteSessionUseCase) AddItem(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error) {
	return u.mutate(ctx, sessionID, func(s *quoteSession) error {
		item, err := u.catalog.FindByID(ctx, catalogItemID)
		if err != nil {
			return err
		}
		_, err = s.selection.Add(item)
		return err
	})
}

func (u *QuoteSessionUseCase) IncreaseItem(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error) {
	return u.mutate(ctx, sessionID, func(s *quoteSession) error {
		_, err := s.selection.Increase(catalogItemID)
		return err
	})
}

// DecreaseItem never removes the last unit: it returns the unchanged draft
// together with selection.ErrConfirmationRequired, and the caller confirms
// with RemoveItem.
func (u *QuoteSessionUseCase) DecreaseItem(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error) {
	return u.mutate(ctx, sessionID, func(s *quoteSession) error {
		_, err := s.selection.Decrease(catalogItemID)
		return err
	})
}

func (u *QuoteSessionUseCase) RemoveItem(ctx context.Context, sessionID string, catalogItemID int64) (entities.QuoteDraft, error) {
	return u.mutate(ctx, sessionID, func(s *quoteSession) error {
		return s.selection.Remove(catalogItemID)
	})
}

func (u *QuoteSessionUseCase) SetInstallation(ctx context.Context, sessionID string, choice entities.InstallationChoice) (entities.QuoteDraft, error) {
	return u.mutate(ctx, sessionID, func(s *quoteSession) error {
		normalized, err := installation.Normalize(choice)
		if err != nil {
			return err
		}
		s.installation = normalized
		return nil
	})
}

func (u *QuoteSessionUseCase) SetCustomer(ctx context.Context, sessionID string, customer entities.CustomerLink) (entities.QuoteDraft, error) {
	return u.mutate(ctx, sessionID, func(s *quoteSession) error {
		s.customer = customer
		return nil
	})
}

// Finalize prices the session, stores the quote and freezes the session.
// Calling it again on a finalized session returns the same quote.
//
// The agent id is left nil when the identity provider cannot resolve it.
func (u *QuoteSessionUseCase) Finalize(ctx context.Context, sessionID string) (entities.PricedQuote, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == entities.QuoteStateFinalized && s.quote != nil {
		return *s.quote, nil
	}
	if s.selection.Len() == 0 {
		return entities.PricedQuote{}, ErrEmptySelection
	}

	// Price a copy so a failed write leaves the session editable.
	lines := s.selection.Lines()
	for i := range lines {
		if lines[i].Category.Valid() {
			continue
		}
		if category, ok := u.catalog.CategoryOf(ctx, lines[i].CatalogItemID); ok {
			lines[i].Category = category
		}
	}
	working := selection.NewStore(u.calc)
	if err := working.Restore(lines); err != nil {
		return entities.PricedQuote{}, err
	}

	meta := quote.Meta{
		QuoteID:     u.newID(),
		SessionID:   s.id,
		Customer:    s.customer,
		GeneratedAt: u.now(),
	}
	if agentID, ok := u.identity.CurrentAgentID(ctx); ok {
		meta.AgentID = &agentID
	} else {
		logging.L().Info("[quote][usecase] agent identity unresolved; agent id deferred", zap.String("session_id", s.id))
	}

	priced, err := quote.Finalize(working, s.installation, u.calc, meta)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	if _, err := u.quotes.Create(ctx, priced); err != nil {
		logging.L().Error("[quote][usecase] failed to store priced quote", zap.String("session_id", s.id), zap.Error(err))
		return entities.PricedQuote{}, err
	}

	s.selection.Freeze()
	s.state = entities.QuoteStateFinalized
	s.revision++
	s.quote = &priced
	s.updatedAt = meta.GeneratedAt

	// The record outranks the snapshot from here on, so a failed delete below
	// can never bring the draft back.
	if err := u.records.Save(ctx, u.record(s)); err != nil {
		logging.L().Error("[quote][usecase] failed to save finalized session record",
			zap.String("session_id", s.id), zap.String("quote_id", priced.ID), zap.Error(err))
	}
	if err := u.snapshots.Delete(ctx, s.id); err != nil {
		logging.L().Warn("[quote][usecase] failed to delete snapshot after finalize", zap.String("session_id", s.id), zap.Error(err))
	}
	logging.L().Info("[quote][usecase] quote finalized",
		zap.String("session_id", s.id), zap.String("quote_id", priced.ID), zap.String("grand_total", priced.GrandTotal.String()))
	return priced, nil
}

// Reset clears the session from any state back to EMPTY and deletes its
// snapshot. A quote finalized earlier stays stored.
func (u *QuoteSessionUseCase) Reset(ctx context.Context, sessionID string) (entities.QuoteDraft, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := u.now()
	cleared := &quoteSession{
		id:           s.id,
		state:        entities.QuoteStateEmpty,
		revision:     s.revision + 1,
		selection:    selection.NewStore(u.calc),
		installation: entities.RoofMount(),
		createdAt:    now,
		updatedAt:    now,
	}
	if err := u.records.Save(ctx, u.record(cleared)); err != nil {
		return u.draft(s), fmt.Errorf("save session record: %w", err)
	}
	if err := u.snapshots.Delete(ctx, s.id); err != nil {
		logging.L().Warn("[quote][usecase] failed to delete snapshot on reset", zap.String("session_id", s.id), zap.Error(err))
	}

	s.state = cleared.state
	s.revision = cleared.revision
	s.selection = cleared.selection
	s.installation = cleared.installation
	s.customer = entities.CustomerLink{}
	s.quote = nil
	s.createdAt = now
	s.updatedAt = now
	logging.L().Info("[quote][usecase] session reset", zap.String("session_id", s.id))
	return u.draft(s), nil
}

// mutate runs fn under the session lock and snapshots the result. A failing
// fn leaves the session untouched and nothing is saved; a failing save undoes
// what fn did.
func (u *QuoteSessionUseCase) mutate(ctx context.Context, sessionID string, fn func(s *quoteSession) error) (entities.QuoteDraft, error) {
	s, err := u.session(ctx, sessionID)
	if err != nil {
		return entities.QuoteDraft{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == entities.QuoteStateFinalized {
		return u.draft(s), ErrQuoteFinalized
	}
	prev := s.capture()
	if err := fn(s); err != nil {
		return u.draft(s), err
	}

	s.state = entities.QuoteStateBuilding
	s.revision++
	s.updatedAt = u.now()
	if err := u.snapshots.Save(ctx, u.snapshot(s)); err != nil {
		logging.L().Error("[quote][usecase] failed to save snapshot; mutation rolled back",
			zap.String("session_id", s.id), zap.Uint64("revision", s.revision), zap.Error(err))
		if rbErr := s.rollback(prev); rbErr != nil {
			logging.L().Error("[quote][usecase] rollback failed", zap.String("session_id", s.id), zap.Error(rbErr))
		}
		return u.draft(s), fmt.Errorf("save snapshot: %w", err)
	}
	return u.draft(s), nil
}

func (u *QuoteSessionUseCase) session(ctx context.Context, sessionID string) (*quoteSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	s, found, err := u.lookup(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return s, nil
}

// lookup serves the cache and falls back to storage. Storage and catalog
// calls run without u.mu held.
func (u *QuoteSessionUseCase) lookup(ctx context.Context, sessionID string) (*quoteSession, bool, error) {
	u.mu.Lock()
	s, ok := u.sessions.Get(sessionID)
	u.mu.Unlock()
	if ok {
		return s, true, nil
	}

	s, found, err := u.restore(ctx, sessionID)
	if err != nil || !found {
		return nil, false, err
	}
	return u.admit(s), true, nil
}

// admit caches s unless another caller cached the same session first.
func (u *QuoteSessionUseCase) admit(s *quoteSession) *quoteSession {
	u.mu.Lock()
	defer u.mu.Unlock()
	if cached, ok := u.sessions.Get(s.id); ok {
		return cached
	}
	u.sessions.Add(s.id, s)
	return s
}

// restore rebuilds a session from whichever of its snapshot and session
// record carries the higher revision.
func (u *QuoteSessionUseCase) restore(ctx context.Context, sessionID string) (*quoteSession, bool, error) {
	snap, hasSnap, err := u.snapshots.Load(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	rec, hasRec, err := u.records.Load(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	if hasSnap && (!hasRec || snap.Revision > rec.Revision) {
		s, err := u.rehydrate(ctx, snap)
		if err == nil {
			logging.L().Info("[quote][usecase] session resumed from snapshot",
				zap.String("session_id", sessionID), zap.Uint64("revision", snap.Revision), zap.Int("lines", len(snap.Lines)))
			return s, true, nil
		}
		if !errors.Is(err, errSnapshotUnusable) {
			return nil, false, err
		}
		logging.L().Warn("[quote][usecase] snapshot could not be restored; discarding it",
			zap.String("session_id", sessionID), zap.Error(err))
		if err := u.snapshots.Delete(ctx, sessionID); err != nil {
			return nil, false, err
		}
	}
	if !hasRec {
		return nil, false, nil
	}

	s, err := u.fromRecord(ctx, rec)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// rehydrate restores captured prices as they were and re-resolves each line's
// category against the catalog. Lines the catalog no longer knows keep an
// empty category and are grouped as ACCESSORY.
func (u *QuoteSessionUseCase) rehydrate(ctx context.Context, snap entities.QuoteSnapshot) (*quoteSession, error) {
	lines := make([]entities.LineItem, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		category, _ := u.catalog.CategoryOf(ctx, l.CatalogItemID)
		lines = append(lines, entities.LineItem{
			CatalogItemID: l.CatalogItemID,
			Name:          l.Name,
			Unit:          l.Unit,
			Category:      category,
			SellPrice:     l.SellPrice,
			Quantity:      l.Quantity,
		})
	}
	store := selection.NewStore(u.calc)
	if err := store.Restore(lines); err != nil {
		return nil, fmt.Errorf("%w: %v", errSnapshotUnusable, err)
	}
	choice, err := installation.Normalize(snap.Installation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errSnapshotUnusable, err)
	}
	updatedAt := snap.SavedAt
	if updatedAt.IsZero() {
		updatedAt = u.now()
	}
	return &quoteSession{
		id:           snap.SessionID,
		state:        entities.QuoteStateBuilding,
		revision:     snap.Revision,
		selection:    store,
		installation: choice,
		customer:     snap.Customer,
		createdAt:    snap.CreatedAt,
		updatedAt:    updatedAt,
	}, nil
}

// fromRecord rebuilds an EMPTY session, or a frozen FINALIZED one around its
// stored quote. A finalized session whose quote cannot be restored comes back
// EMPTY at the record's revision.
func (u *QuoteSessionUseCase) fromRecord(ctx context.Context, rec entities.QuoteSessionRecord) (*quoteSession, error) {
	s := &quoteSession{
		id:           rec.SessionID,
		state:        rec.State,
		revision:     rec.Revision,
		selection:    selection.NewStore(u.calc),
		installation: entities.RoofMount(),
		customer:     rec.Customer,
		createdAt:    rec.CreatedAt,
		updatedAt:    rec.UpdatedAt,
	}
	if rec.State != entities.QuoteStateFinalized {
		return s, nil
	}

	q, err := u.quotes.GetByID(ctx, rec.QuoteID)
	if err != nil {
		return nil, err
	}
	var lines []entities.LineItem
	for _, g := range q.Groups {
		lines = append(lines, g.Lines...)
	}
	if q.ID == "" {
		err = fmt.Errorf("quote %s is not stored", rec.QuoteID)
	} else {
		err = s.selection.Restore(lines)
	}
	if err != nil {
		logging.L().Warn("[quote][usecase] finalized quote could not be restored; starting fresh",
			zap.String("session_id", rec.SessionID), zap.String("quote_id", rec.QuoteID), zap.Error(err))
		s.state = entities.QuoteStateEmpty
		s.selection = selection.NewStore(u.calc)
		return s, nil
	}
	s.selection.Freeze()
	s.installation = q.Installation
	s.customer = q.Customer
	s.quote = &q
	return s, nil
}

func (u *QuoteSessionUseCase) record(s *quoteSession) entities.QuoteSessionRecord {
	rec := entities.QuoteSessionRecord{
		SessionID: s.id,
		State:     s.state,
		Revision:  s.revision,
		Customer:  s.customer,
		CreatedAt: s.createdAt,
		UpdatedAt: s.updatedAt,
	}
	if s.quote != nil {
		rec.QuoteID = s.quote.ID
	}
	return rec
}

func (u *QuoteSessionUseCase) snapshot(s *quoteSession) entities.QuoteSnapshot {
	lines := s.selection.Lines()
	out := make([]entities.SnapshotLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entities.SnapshotLine{
			CatalogItemID: l.CatalogItemID,
			Name:          l.Name,
			Unit:          l.Unit,
			Quantity:      l.Quantity,
			SellPrice:     l.SellPrice,
		})
	}
	return entities.QuoteSnapshot{
		SessionID:    s.id,
		Revision:     s.revision,
		Lines:        out,
		Installation: s.installation,
		GrandTotal:   u.draft(s).GrandTotal,
		Customer:     s.customer,
		CreatedAt:    s.createdAt,
		SavedAt:      s.updatedAt,
	}
}

func (u *QuoteSessionUseCase) draft(s *quoteSession) entities.QuoteDraft {
	subtotal := s.selection.Subtotal()
	surcharge := u.calc.Round(installation.Total(s.installation))
	d := entities.QuoteDraft{
		SessionID:         s.id,
		State:             s.state,
		Revision:          s.revision,
		Lines:             s.selection.Lines(),
		Installation:      s.installation,
		Customer:          s.customer,
		Subtotal:          subtotal,
		InstallationTotal: surcharge,
		GrandTotal:        u.calc.Round(subtotal.Add(surcharge)),
		CreatedAt:         s.createdAt,
		UpdatedAt:         s.updatedAt,
	}
	if s.quote != nil {
		d.QuoteID = s.quote.ID
	}
	return d
}
