package selection

import (
	"errors"
	"fmt"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var (
	ErrLineItemNotFound = errors.New("line item not found")
	// ErrConfirmationRequired is a control-flow signal, not a failure: the
	// caller must confirm with the user and then call Remove.
	ErrConfirmationRequired = errors.New("confirmation required to remove line item")
	ErrSelectionFrozen      = errors.New("selection is frozen")
	ErrInvalidLine          = errors.New("invalid line item")
)

// Store is the in-memory cart of one quotation session.
//
// Lines keep insertion order and are keyed by catalog item id. A store is owned
// by a single session and is not safe for concurrent use.
type Store struct {
	calc   *pricing.Calculator
	lines  []entities.LineItem
	index  map[int64]int
	frozen bool
}

func NewStore(calc *pricing.Calculator) *Store {
	return &Store{calc: calc, index: map[int64]int{}}
}

// Add puts one unit of the catalog item in the selection. An item already
// selected gets its quantity bumped; its captured price is left alone.
func (s *Store) Add(item entities.CatalogItem) (entities.LineItem, error) {
	if s.frozen {
		return entities.LineItem{}, ErrSelectionFrozen
	}
	if i, ok := s.index[item.ID]; ok {
		s.lines[i].Quantity++
		return s.lines[i], nil
	}

	price, err := s.calc.Price(item)
	if err != nil {
		return entities.LineItem{}, err
	}
	line := entities.LineItem{
		CatalogItemID: item.ID,
		Name:          item.Name,
		Unit:          item.Unit,
		Category:      item.Category,
		SellPrice:     price,
		Quantity:      1,
	}
	s.index[item.ID] = len(s.lines)
	s.lines = append(s.lines, line)
	return line, nil
}

func (s *Store) Increase(catalogItemID int64) (entities.LineItem, error) {
	i, err := s.mutable(catalogItemID)
	if err != nil {
		return entities.LineItem{}, err
	}
	s.lines[i].Quantity++
	return s.lines[i], nil
}

// Decrease drops one unit. The last unit is never removed here: the call
// fails with ErrConfirmationRequired and the selection is left unchanged.
func (s *Store) Decrease(catalogItemID int64) (entities.LineItem, error) {
	i, err := s.mutable(catalogItemID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if s.lines[i].Quantity <= 1 {
		return s.lines[i], ErrConfirmationRequired
	}
	s.lines[i].Quantity--
	return s.lines[i], nil
}

func (s *Store) Remove(catalogItemID int64) error {
	i, err := s.mutable(catalogItemID)
	if err != nil {
		return err
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.reindex()
	return nil
}

// ByCategory returns copies of the lines in a category. Lines whose category
// could not be resolved are listed under ACCESSORY.
func (s *Store) ByCategory(category entities.Category) []entities.LineItem {
	out := make([]entities.LineItem, 0)
	for _, l := range s.lines {
		if l.EffectiveCategory() == category {
			out = append(out, l)
		}
	}
	return out
}

// Subtotal is the rounded sum of sellPrice * quantity over every line.
func (s *Store) Subtotal() decimal.Decimal {
	return s.calc.Round(SumLines(s.lines))
}

// SumLines adds line totals without rounding.
func SumLines(lines []entities.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total
}

// Lines returns a copy of every line in insertion order.
func (s *Store) Lines() []entities.LineItem {
	out := make([]entities.LineItem, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Len() int { return len(s.lines) }

func (s *Store) Get(catalogItemID int64) (entities.LineItem, bool) {
	i, ok := s.index[catalogItemID]
	if !ok {
		return entities.LineItem{}, false
	}
	return s.lines[i], true
}

// Restore replaces the whole selection with previously captured lines.
// Restoring the same lines twice yields the same selection. Nothing is changed
// when a line is invalid.
func (s *Store) Restore(lines []entities.LineItem) error {
	if s.frozen {
		return ErrSelectionFrozen
	}
	index := make(map[int64]int, len(lines))
	restored := make([]entities.LineItem, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return fmt.Errorf("%w: catalog item %d has quantity %d", ErrInvalidLine, l.CatalogItemID, l.Quantity)
		}
		if l.SellPrice.IsNegative() {
			return fmt.Errorf("%w: catalog item %d has negative price", ErrInvalidLine, l.CatalogItemID)
		}
		if _, dup := index[l.CatalogItemID]; dup {
			return fmt.Errorf("%w: catalog item %d listed twice", ErrInvalidLine, l.CatalogItemID)
		}
		index[l.CatalogItemID] = len(restored)
		restored = append(restored, l)
	}
	s.lines = restored
	s.index = index
	return nil
}

// Freeze stops all further mutation.
func (s *Store) Freeze() { s.frozen = true }

func (s *Store) Frozen() bool { return s.frozen }

func (s *Store) mutable(catalogItemID int64) (int, error) {
	if s.frozen {
		return 0, ErrSelectionFrozen
	}
	i, ok := s.index[catalogItemID]
	if !ok {
		return 0, fmt.Errorf("%w: catalog item %d", ErrLineItemNotFound, catalogItemID)
	}
	return i, nil
}

func (s *Store) reindex() {
	s.index = make(map[int64]int, len(s.lines))
	for i, l := range s.lines {
		s.index[l.CatalogItemID] = i
	}
}
