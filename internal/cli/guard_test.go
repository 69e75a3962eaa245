package cli

import (
	"context"
	"errors"
	"testing"
)

func isPending(g *VoteGuard, id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.pending[id]
	return busy
}

func TestVoteGuardSuppressesPendingVote(t *testing.T) {
	g := NewVoteGuard()
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		n, skipped, err := g.Submit(ctx, "1", func(ctx context.Context, id string) (int, error) {
			close(entered)
			<-release
			return 6, nil
		})
		if n != 6 || skipped || err != nil {
			t.Errorf("first vote: expected 6, but was %d (skipped %v, err %v)", n, skipped, err)
		}
	}()
	<-entered

	if !isPending(g, "1") {
		t.Errorf("expected vote for 1 to be pending")
	}

	calls := 0
	vote := func(ctx context.Context, id string) (int, error) {
		calls++
		return 1, nil
	}

	if _, skipped, _ := g.Submit(ctx, "1", vote); !skipped {
		t.Errorf("expected second vote for 1 to be skipped")
	}
	if n, skipped, err := g.Submit(ctx, "2", vote); skipped || err != nil || n != 1 {
		t.Errorf("vote for 2: expected 1, but was %d (skipped %v, err %v)", n, skipped, err)
	}

	close(release)
	<-done

	if isPending(g, "1") {
		t.Errorf("expected vote for 1 to be released")
	}
	if _, skipped, _ := g.Submit(ctx, "1", vote); skipped {
		t.Errorf("expected 1 to be votable again")
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, but was %d", calls)
	}
}

func TestVoteGuardReleasesOnError(t *testing.T) {
	g := NewVoteGuard()
	boom := errors.New("boom")

	_, skipped, err := g.Submit(context.Background(), "1", func(ctx context.Context, id string) (int, error) {
		return 0, boom
	})
	if skipped || !errors.Is(err, boom) {
		t.Fatalf("expected boom, but was %v (skipped %v)", err, skipped)
	}
	if isPending(g, "1") {
		t.Errorf("expected vote for 1 to be released after failure")
	}
}

func TestVoteGuardAcquireRelease(t *testing.T) {
	g := NewVoteGuard()

	if !g.Acquire("a") {
		t.Fatalf("expected first acquire to succeed")
	}
	if g.Acquire("a") {
		t.Errorf("expected second acquire to fail")
	}
	g.Release("a")
	g.Release("a")
	if !g.Acquire("a") {
		t.Errorf("expected acquire after release to succeed")
	}
}
