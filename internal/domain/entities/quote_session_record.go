package entities

import "time"

// QuoteSessionRecord keeps a session resolvable while it has no draft
// snapshot: right after it is opened or reset (EMPTY) and once its quote is
// finalized (FINALIZED).
//
// Revision shares its sequence with QuoteSnapshot.Revision; when both exist
// for a session the higher revision describes the current state.
type QuoteSessionRecord struct {
	SessionID string       `json:"session_id"`
	State     QuoteState   `json:"state"`
	Revision  uint64       `json:"revision"`
	QuoteID   string       `json:"quote_id,omitempty"`
	Customer  CustomerLink `json:"customer"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
