// Package engagement holds the idea projections shown to the user: the
// current generated idea and the popular and recent listings.
//
// Ideas are stored once, keyed by id, and every projection is a list of
// ids resolved against that table. An idea that appears in several
// projections therefore always shows the same upvote count.
package engagement

import (
	"sync"

	"github.com/letieu/idea-board/internal/idea"
)

// Ticket identifies one issued load of a ranked projection.
type Ticket struct {
	Rank idea.Rank
	Seq  uint64
}

type view struct {
	ids    []string
	total  int
	issued uint64
}

type Store struct {
	mu      sync.RWMutex
	ideas   map[string]idea.Idea
	current string
	views   map[idea.Rank]*view
}

func New() *Store {
	return &Store{
		ideas: make(map[string]idea.Idea),
		views: map[idea.Rank]*view{
			idea.Popular: {},
			idea.Recent:  {},
		},
	}
}

// Begin issues a ticket for a new load of rank. Only the most recently
// issued ticket may complete.
func (s *Store) Begin(rank idea.Rank) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view(rank)
	v.issued++
	return Ticket{Rank: rank, Seq: v.issued}
}

// Complete replaces the projection of t.Rank with page unless a newer
// ticket has been issued since. It reports whether the page was applied.
func (s *Store) Complete(t Ticket, page idea.Page) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.view(t.Rank)
	if t.Seq != v.issued {
		return false
	}

	ids := make([]string, 0, len(page.Ideas))
	for _, rec := range page.Ideas {
		s.merge(rec)
		ids = append(ids, string(rec.ID))
	}
	v.ids = ids
	v.total = page.Total
	s.prune()
	return true
}

// SetCurrent replaces the current idea.
func (s *Store) SetCurrent(rec idea.Idea) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.merge(rec)
	s.current = string(rec.ID)
	s.prune()
}

// ApplyUpvote records a confirmed upvote count for id in every projection
// holding it. It reports whether any projection held the idea; a count
// lower than the one held is reported as held but not applied.
func (s *Store) ApplyUpvote(id string, count int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.ideas[id]
	if !ok {
		return false
	}
	// counts only grow server side; a late acknowledgement never rolls back
	if count > rec.Upvotes {
		rec.Upvotes = count
		s.ideas[id] = rec
	}
	return true
}

func (s *Store) Current() (idea.Idea, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == "" {
		return idea.Idea{}, false
	}
	return s.ideas[s.current], true
}

func (s *Store) Popular() []idea.Idea {
	return s.Projection(idea.Popular)
}

func (s *Store) Recent() []idea.Idea {
	return s.Projection(idea.Recent)
}

// Projection returns a copy of the ranked projection in server order.
func (s *Store) Projection(rank idea.Rank) []idea.Idea {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.resolve(s.views[rank])
}

// Total is the service-wide idea count reported with the last applied page.
func (s *Store) Total(rank idea.Rank) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.views[rank]; ok {
		return v.total
	}
	return 0
}

// Snapshot is a consistent copy of every projection.
type Snapshot struct {
	Current      *idea.Idea
	Popular      []idea.Idea
	Recent       []idea.Idea
	PopularTotal int
	RecentTotal  int
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Popular:      s.resolve(s.views[idea.Popular]),
		Recent:       s.resolve(s.views[idea.Recent]),
		PopularTotal: s.views[idea.Popular].total,
		RecentTotal:  s.views[idea.Recent].total,
	}
	if s.current != "" {
		cur := s.ideas[s.current]
		snap.Current = &cur
	}
	return snap
}

func (s *Store) view(rank idea.Rank) *view {
	v, ok := s.views[rank]
	if !ok {
		v = &view{}
		s.views[rank] = v
	}
	return v
}

// merge stores rec, keeping the higher upvote count when the id is known.
func (s *Store) merge(rec idea.Idea) {
	id := string(rec.ID)
	if held, ok := s.ideas[id]; ok && held.Upvotes > rec.Upvotes {
		rec.Upvotes = held.Upvotes
	}
	s.ideas[id] = rec
}

// prune drops ideas no projection refers to.
func (s *Store) prune() {
	live := make(map[string]struct{}, len(s.ideas))
	if s.current != "" {
		live[s.current] = struct{}{}
	}
	for _, v := range s.views {
		for _, id := range v.ids {
			live[id] = struct{}{}
		}
	}
	for id := range s.ideas {
		if _, ok := live[id]; !ok {
			delete(s.ideas, id)
		}
	}
}

func (s *Store) resolve(v *view) []idea.Idea {
	if v == nil {
		return []idea.Idea{}
	}
	out := make([]idea.Idea, 0, len(v.ids))
	for _, id := range v.ids {
		out = append(out, s.ideas[id])
	}
	return out
}
