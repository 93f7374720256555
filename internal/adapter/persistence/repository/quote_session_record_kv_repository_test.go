package repository

import (
	"context"
	"testing"
	"time"

	"solar_quote/internal/domain/entities"
	"solar_quote/internal/infrastructure/kvstore"
)

func TestQuoteSessionRecordKVRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewQuoteSessionRecordKVRepository(kvstore.NewMemoryStore())
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	in := entities.QuoteSessionRecord{
		SessionID: "s-1",
		State:     entities.QuoteStateEmpty,
		Customer:  entities.CustomerLink{CustomerID: "c-1"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, found, err := repo.Load(ctx, "s-1")
	if err != nil || !found || out.State != entities.QuoteStateEmpty || out.Customer.CustomerID != "c-1" || !out.CreatedAt.Equal(now) {
		t.Fatalf("unexpected record %+v found=%v err=%v", out, found, err)
	}

	finalized := entities.QuoteSessionRecord{SessionID: "s-1", State: entities.QuoteStateFinalized, Revision: 4, QuoteID: "q-1"}
	if err := repo.Save(ctx, finalized); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, entities.QuoteSessionRecord{SessionID: "s-1", State: entities.QuoteStateEmpty, Revision: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _, _ = repo.Load(ctx, "s-1")
	if out.State != entities.QuoteStateFinalized || out.Revision != 4 || out.QuoteID != "q-1" {
		t.Fatalf("older record replaced newer one: %+v", out)
	}
}

func TestQuoteSessionRecordKVRepository_TolerantLoad(t *testing.T) {
	ctx := context.Background()

	cases := map[string]string{
		"not json":           `{"session_id":`,
		"other session":      `{"session_id":"s-2","state":"EMPTY"}`,
		"building state":     `{"session_id":"s-1","state":"BUILDING"}`,
		"finalized no quote": `{"session_id":"s-1","state":"FINALIZED"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			kv := kvstore.NewMemoryStore()
			_ = kv.Set(ctx, "quote_session:s-1", []byte(raw))
			repo := NewQuoteSessionRecordKVRepository(kv)

			_, found, err := repo.Load(ctx, "s-1")
			if err != nil || found {
				t.Fatalf("expected empty result, found=%v err=%v", found, err)
			}
		})
	}

	t.Run("missing owner", func(t *testing.T) {
		repo := NewQuoteSessionRecordKVRepository(kvstore.NewMemoryStore())
		if err := repo.Save(ctx, entities.QuoteSessionRecord{State: entities.QuoteStateEmpty}); err == nil {
			t.Fatalf("expected error for record without session id")
		}
	})
}
