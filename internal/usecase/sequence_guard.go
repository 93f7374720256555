package usecase

import "sync"

// SequenceGuard orders results of overlapping async calls.
//
// Every call takes a ticket from Begin before it starts. When it finishes,
// Complete accepts the result only if no call started later has already
// completed; otherwise the result is stale and must be dropped.
type SequenceGuard struct {
	mu        sync.Mutex
	issued    uint64
	completed uint64
}

// Begin issues the next ticket.
func (g *SequenceGuard) Begin() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.issued++
	return g.issued
}

// Complete reports whether the result of ticket seq may be applied.
func (g *SequenceGuard) Complete(seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if seq <= g.completed {
		return false
	}
	g.completed = seq
	return true
}

// Latest is the last ticket issued.
func (g *SequenceGuard) Latest() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.issued
}
