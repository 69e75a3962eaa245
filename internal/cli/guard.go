package cli

import (
	"context"
	"sync"
)

// VoteGuard keeps a second vote for an idea from being sent while the
// first one is still waiting for the service. The engagement core does not
// deduplicate votes; this is the presentation's "disabled button".
type VoteGuard struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewVoteGuard() *VoteGuard {
	return &VoteGuard{pending: make(map[string]struct{})}
}

// Acquire marks id pending. It returns false if it already was.
func (g *VoteGuard) Acquire(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.pending[id]; busy {
		return false
	}
	g.pending[id] = struct{}{}
	return true
}

func (g *VoteGuard) Release(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.pending, id)
}

// Submit runs vote for id unless a vote for id is pending. skipped is true
// when the call was suppressed.
func (g *VoteGuard) Submit(ctx context.Context, id string, vote func(ctx context.Context, id string) (int, error)) (count int, skipped bool, err error) {
	if !g.Acquire(id) {
		return 0, true, nil
	}
	defer g.Release(id)

	count, err = vote(ctx, id)
	return count, false, err
}
