// Package coordinator wires the idea service to the engagement store and
// the selection controller. It is the only API the presentation layer uses.
package coordinator

//go:generate mockgen -source=coordinator.go -destination=mock_service.go -package=coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/letieu/idea-board/internal/engagement"
	"github.com/letieu/idea-board/internal/idea"
	"github.com/letieu/idea-board/internal/selection"
	"github.com/letieu/idea-board/internal/taxonomy"
)

// IdeaService is the remote idea service.
type IdeaService interface {
	Generate(ctx context.Context, filter idea.Filter) (idea.Idea, error)
	List(ctx context.Context, rank idea.Rank, limit int) (idea.Page, error)
	Upvote(ctx context.Context, id string) (int, error)
	ResolveShared(ctx context.Context, hash string) (idea.Idea, error)
}

const defaultLimit = 10

type Coordinator struct {
	svc      IdeaService
	registry *taxonomy.Registry
	store    *engagement.Store
	logger   *zap.SugaredLogger

	popularLimit int
	recentLimit  int

	// guards selection; the store has its own lock
	mu  sync.Mutex
	sel *selection.Controller
}

type Option func(c *Coordinator)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLimits sets the page sizes Init uses.
func WithLimits(popular, recent int) Option {
	return func(c *Coordinator) {
		if popular > 0 {
			c.popularLimit = popular
		}
		if recent > 0 {
			c.recentLimit = recent
		}
	}
}

func New(svc IdeaService, registry *taxonomy.Registry, opts ...Option) *Coordinator {
	c := &Coordinator{
		svc:          svc,
		registry:     registry,
		store:        engagement.New(),
		logger:       zap.NewNop().Sugar(),
		popularLimit: defaultLimit,
		recentLimit:  defaultLimit,
		sel:          selection.New(registry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init fetches the popular and recent projections concurrently. Each load
// succeeds or fails on its own; the returned error joins the failures.
func (c *Coordinator) Init(ctx context.Context) error {
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		_, err := c.LoadPopular(ctx, c.popularLimit)
		return err
	})
	p.Go(func(ctx context.Context) error {
		_, err := c.LoadRecent(ctx, c.recentLimit)
		return err
	})
	return p.Wait()
}

func (c *Coordinator) LoadPopular(ctx context.Context, limit int) (bool, error) {
	return c.load(ctx, idea.Popular, limit)
}

func (c *Coordinator) LoadRecent(ctx context.Context, limit int) (bool, error) {
	return c.load(ctx, idea.Recent, limit)
}

// load reports whether the fetched page was applied; a page overtaken by a
// newer load of the same projection is dropped without error.
func (c *Coordinator) load(ctx context.Context, rank idea.Rank, limit int) (bool, error) {
	ticket := c.store.Begin(rank)

	page, err := c.svc.List(ctx, rank, limit)
	if err != nil {
		c.logger.Warnw("loading ideas failed", "rank", rank, "error", err)
		return false, fmt.Errorf("load %s ideas: %w", rank, err)
	}
	for _, rec := range page.Ideas {
		if err := c.check("list "+string(rank), rec); err != nil {
			return false, err
		}
	}

	applied := c.store.Complete(ticket, page)
	if !applied {
		c.logger.Debugw("discarding stale page", "rank", rank, "seq", ticket.Seq)
	}
	return applied, nil
}

// Generate requests a new idea for the active selection and makes it the
// current idea. On failure the current idea is left as it was.
func (c *Coordinator) Generate(ctx context.Context) (idea.Idea, error) {
	c.mu.Lock()
	filter := c.sel.Filter()
	c.mu.Unlock()

	rec, err := c.svc.Generate(ctx, filter)
	if err != nil {
		c.logger.Warnw("generating idea failed", "category", filter.Category, "topics", filter.Topics, "error", err)
		return idea.Idea{}, fmt.Errorf("generate idea: %w", err)
	}
	if err := c.check("generate", rec); err != nil {
		return idea.Idea{}, err
	}

	c.store.SetCurrent(rec)
	c.logger.Infow("generated idea", "id", rec.ID, "topic", rec.Topic)
	return rec, nil
}

// Upvote votes for id and, once the service confirms, shows the new count
// in every projection holding the idea. A failed vote changes nothing.
func (c *Coordinator) Upvote(ctx context.Context, id string) (int, error) {
	count, err := c.svc.Upvote(ctx, id)
	if err != nil {
		c.logger.Warnw("upvote failed", "id", id, "error", err)
		return 0, fmt.Errorf("upvote %s: %w", id, err)
	}
	if count < 0 {
		return 0, &idea.ServiceError{Op: "upvote", Message: fmt.Sprintf("negative upvote count %d", count)}
	}

	if !c.store.ApplyUpvote(id, count) {
		c.logger.Debugw("upvoted idea not on screen", "id", id)
	}
	return count, nil
}

// ResolveShared looks up a shared idea. The result is not part of any
// projection. Use idea.IsNotFound to tell a missing idea from a failed lookup.
func (c *Coordinator) ResolveShared(ctx context.Context, ref string) (idea.Idea, error) {
	hash, err := idea.ParseShareHash(ref)
	if err != nil {
		return idea.Idea{}, err
	}

	rec, err := c.svc.ResolveShared(ctx, hash)
	if err != nil {
		if !idea.IsNotFound(err) {
			c.logger.Warnw("resolving shared idea failed", "hash", hash, "error", err)
		}
		return idea.Idea{}, fmt.Errorf("resolve shared idea %s: %w", hash, err)
	}
	if err := c.check("resolve share", rec); err != nil {
		return idea.Idea{}, err
	}
	return rec, nil
}

// check enforces the Idea invariants on records received from the service.
func (c *Coordinator) check(op string, rec idea.Idea) error {
	if err := idea.Validate(rec); err != nil {
		c.logger.Errorw("service returned malformed idea", "op", op, "id", rec.ID, "error", err)
		return &idea.ValidationError{Op: op, Err: err}
	}
	if _, err := c.registry.CategoryOf(rec.Topic); err != nil {
		var lookupErr *taxonomy.LookupError
		if errors.As(err, &lookupErr) {
			c.logger.Errorw("idea topic missing from taxonomy", "op", op, "id", rec.ID, "topic", lookupErr.Topic)
		}
		return &idea.ValidationError{Op: op, Err: err}
	}
	return nil
}

func (c *Coordinator) Current() (idea.Idea, bool) {
	return c.store.Current()
}

func (c *Coordinator) Popular() []idea.Idea {
	return c.store.Popular()
}

func (c *Coordinator) Recent() []idea.Idea {
	return c.store.Recent()
}

func (c *Coordinator) Total(rank idea.Rank) int {
	return c.store.Total(rank)
}

func (c *Coordinator) Snapshot() engagement.Snapshot {
	return c.store.Snapshot()
}

func (c *Coordinator) SelectCategory(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel.SelectCategory(name)
}

func (c *Coordinator) SelectTopic(topic string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel.SelectTopic(topic)
}

func (c *Coordinator) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sel.Clear()
}

func (c *Coordinator) Selection() selection.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sel.Snapshot()
}

func (c *Coordinator) Categories() []taxonomy.Category {
	return c.registry.Categories()
}

// FeaturedCategories returns the first n categories in declaration order.
func (c *Coordinator) FeaturedCategories(n int) []taxonomy.Category {
	return c.registry.Featured(n)
}

func (c *Coordinator) SortedCategories(by taxonomy.SortBy) ([]taxonomy.Category, error) {
	return c.registry.Sort(by)
}

func (c *Coordinator) TopicsOf(category string) ([]string, error) {
	return c.registry.TopicsOf(category)
}

// CategoryOf reports the category that owns topic.
func (c *Coordinator) CategoryOf(topic string) (taxonomy.Category, error) {
	return c.registry.CategoryOf(topic)
}

// ResolveCategory finds a category by name or slug.
func (c *Coordinator) ResolveCategory(ref string) (taxonomy.Category, bool) {
	return c.registry.Resolve(ref)
}
