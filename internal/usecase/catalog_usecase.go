package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/domain/pricing"
	"solar_quote/internal/infrastructure/logging"
	"solar_quote/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCatalogUnavailable   = errors.New("catalog unavailable")
	ErrCatalogItemNotFound  = errors.New("catalog item not found")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidCatalogItemID = errors.New("invalid catalog item id")
)

// ICatalogUseCase is the read side of the product catalog.
//
// Items with a degenerate margin are never sellable: FindByCategory leaves them
// out and FindByID reports pricing.ErrDegenerateMargin.

type ICatalogUseCase interface {
	FindByCategory(ctx context.Context, category entities.Category) ([]entities.CatalogItem, error)
	FindByID(ctx context.Context, id int64) (entities.CatalogItem, error)
	CategoryOf(ctx context.Context, id int64) (entities.Category, bool)
	SellPrice(item entities.CatalogItem) (decimal.Decimal, error)
	Refresh(ctx context.Context) error
}

type catalogIndex struct {
	byCategory map[entities.Category][]entities.CatalogItem
	byID       map[int64]entities.CatalogItem
	excluded   map[int64]error
	fetchedAt  time.Time
}

// CatalogUseCase caches the whole catalog in-process after one fetch.
//
// The category index is built once per fetch. A ttl of zero keeps the cache
// until Refresh is called.
type CatalogUseCase struct {
	source interfaces.ICatalogSource
	calc   *pricing.Calculator
	ttl    time.Duration
	now    func() time.Time

	guard SequenceGuard
	mu    sync.RWMutex
	index *catalogIndex
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(source interfaces.ICatalogSource, calc *pricing.Calculator, ttl time.Duration) *CatalogUseCase {
	return &CatalogUseCase{source: source, calc: calc, ttl: ttl, now: time.Now}
}

func (u *CatalogUseCase) FindByCategory(ctx context.Context, category entities.Category) ([]entities.CatalogItem, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}
	idx, err := u.current(ctx)
	if err != nil {
		return nil, err
	}
	items := idx.byCategory[category]
	out := make([]entities.CatalogItem, len(items))
	copy(out, items)
	return out, nil
}

func (u *CatalogUseCase) FindByID(ctx context.Context, id int64) (entities.CatalogItem, error) {
	if id <= 0 {
		return entities.CatalogItem{}, ErrInvalidCatalogItemID
	}
	idx, err := u.current(ctx)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if cause, ok := idx.excluded[id]; ok {
		return entities.CatalogItem{}, cause
	}
	item, ok := idx.byID[id]
	if !ok {
		return entities.CatalogItem{}, fmt.Errorf("%w: %d", ErrCatalogItemNotFound, id)
	}
	return item, nil
}

// CategoryOf resolves the category of any known item, sellable or not.
// It reports false when the catalog cannot be reached or does not list id.
func (u *CatalogUseCase) CategoryOf(ctx context.Context, id int64) (entities.Category, bool) {
	idx, err := u.current(ctx)
	if err != nil {
		return "", false
	}
	item, ok := idx.byID[id]
	if !ok {
		return "", false
	}
	return item.Category, true
}

func (u *CatalogUseCase) SellPrice(item entities.CatalogItem) (decimal.Decimal, error) {
	return u.calc.Price(item)
}

// Refresh fetches the catalog regardless of the cache state.
func (u *CatalogUseCase) Refresh(ctx context.Context) error {
	_, err := u.fetch(ctx)
	return err
}

func (u *CatalogUseCase) current(ctx context.Context) (*catalogIndex, error) {
	u.mu.RLock()
	idx := u.index
	u.mu.RUnlock()
	if idx != nil && (u.ttl <= 0 || u.now().Sub(idx.fetchedAt) < u.ttl) {
		return idx, nil
	}
	return u.fetch(ctx)
}

// fetch makes a single attempt. On failure a previously cached catalog is
// served instead; without one the caller gets ErrCatalogUnavailable.
func (u *CatalogUseCase) fetch(ctx context.Context) (*catalogIndex, error) {
	seq := u.guard.Begin()
	items, err := u.source.FetchAll(ctx, nil)
	if err != nil {
		u.mu.RLock()
		cached := u.index
		u.mu.RUnlock()
		if cached != nil {
			logging.L().Warn("[catalog][usecase] fetch failed; serving cached catalog",
				zap.Uint64("seq", seq), zap.Time("fetched_at", cached.fetchedAt), zap.Error(err))
			return cached, nil
		}
		logging.L().Error("[catalog][usecase] fetch failed", zap.Uint64("seq", seq), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	idx := u.build(items)

	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.guard.Complete(seq) {
		logging.L().Info("[catalog][usecase] discarding stale catalog fetch", zap.Uint64("seq", seq))
		if u.index != nil {
			return u.index, nil
		}
	}
	u.index = idx
	logging.L().Info("[catalog][usecase] catalog loaded",
		zap.Uint64("seq", seq), zap.Int("items", len(idx.byID)), zap.Int("excluded", len(idx.excluded)))
	return idx, nil
}

func (u *CatalogUseCase) build(items []entities.CatalogItem) *catalogIndex {
	idx := &catalogIndex{
		byCategory: make(map[entities.Category][]entities.CatalogItem, len(entities.Categories)),
		byID:       make(map[int64]entities.CatalogItem, len(items)),
		excluded:   map[int64]error{},
		fetchedAt:  u.now(),
	}
	for _, it := range items {
		if _, dup := idx.byID[it.ID]; dup {
			logging.L().Warn("[catalog][usecase] duplicate catalog id ignored", zap.Int64("id", it.ID))
			continue
		}
		if !it.Category.Valid() {
			it.Category = entities.CategoryAccessory
		}
		idx.byID[it.ID] = it
		if _, err := u.calc.Price(it); err != nil {
			logging.L().Warn("[catalog][usecase] item excluded from sellable set", zap.Int64("id", it.ID), zap.Error(err))
			idx.excluded[it.ID] = err
			continue
		}
		idx.byCategory[it.Category] = append(idx.byCategory[it.Category], it)
	}
	return idx
}
