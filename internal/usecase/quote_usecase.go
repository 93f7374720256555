package usecase

import (
	"context"
	"errors"
	"strings"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidCustomerID = errors.New("invalid customer id")
)

// IQuoteUseCase is the read side of finalized quotes.

type IQuoteUseCase interface {
	GetQuote(ctx context.Context, quoteID string) (entities.PricedQuote, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.PricedQuote, error)
	RenderSummary(ctx context.Context, quoteID string) (interfaces.Document, error)
}

type QuoteUseCase struct {
	repo interfaces.IPricedQuoteRepository
	sink interfaces.IPresentationSink
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IPricedQuoteRepository, sink interfaces.IPresentationSink) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, sink: sink}
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, quoteID string) (entities.PricedQuote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.PricedQuote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.PricedQuote{}, err
	}
	if q.ID == "" {
		return entities.PricedQuote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByCustomer(ctx context.Context, customerID string) ([]entities.PricedQuote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	quotes, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if quotes == nil {
		quotes = []entities.PricedQuote{}
	}
	return quotes, nil
}

func (u *QuoteUseCase) RenderSummary(ctx context.Context, quoteID string) (interfaces.Document, error) {
	q, err := u.GetQuote(ctx, quoteID)
	if err != nil {
		return interfaces.Document{}, err
	}
	return u.sink.Render(ctx, q)
}
