// Package taxonomy maps the fixed set of generation topics onto the
// browsable categories. A Registry is immutable once built.
package taxonomy

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
)

// Category is a display group of topics. Name is its unique key.
type Category struct {
	Name        string
	Icon        string
	Color       string
	HoverColor  string
	Description string
	Topics      []string
	Examples    []string
	Popularity  int
	Trending    bool
}

// LookupError means a topic is not mapped to any category.
type LookupError struct {
	Topic string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("topic %q is not mapped to any category", e.Topic)
}

var ErrUnknownCategory = errors.New("unknown category")

type SortBy string

const (
	SortPopularity   SortBy = "popularity"
	SortTrending     SortBy = "trending"
	SortAlphabetical SortBy = "alphabetical"
)

func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(strings.ToLower(strings.TrimSpace(s))) {
	case SortPopularity:
		return SortPopularity, nil
	case SortTrending:
		return SortTrending, nil
	case SortAlphabetical:
		return SortAlphabetical, nil
	}
	return "", fmt.Errorf("unknown sort order %q (want popularity, trending or alphabetical)", s)
}

type Registry struct {
	categories []Category
	byName     map[string]int
	bySlug     map[string]int
	byTopic    map[string]int
}

// New builds a registry from categories in declaration order. Every topic
// must appear in exactly one category and category names must be unique;
// all violations are reported together.
func New(categories []Category) (*Registry, error) {
	r := &Registry{
		categories: make([]Category, 0, len(categories)),
		byName:     make(map[string]int, len(categories)),
		bySlug:     make(map[string]int, len(categories)),
		byTopic:    make(map[string]int),
	}

	var errs error
	for _, c := range categories {
		if c.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("category without name"))
			continue
		}
		if _, dup := r.byName[c.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate category %q", c.Name))
			continue
		}
		slug := Slug(c.Name)
		if prev, dup := r.bySlug[slug]; dup {
			errs = multierr.Append(errs, fmt.Errorf("categories %q and %q share slug %q", r.categories[prev].Name, c.Name, slug))
			continue
		}

		idx := len(r.categories)
		r.byName[c.Name] = idx
		r.bySlug[slug] = idx
		r.categories = append(r.categories, clone(c))
		for _, topic := range c.Topics {
			if prev, dup := r.byTopic[topic]; dup {
				errs = multierr.Append(errs, fmt.Errorf("topic %q in both %q and %q", topic, r.categories[prev].Name, c.Name))
				continue
			}
			r.byTopic[topic] = idx
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid taxonomy: %w", errs)
	}
	return r, nil
}

func MustNew(categories []Category) *Registry {
	r, err := New(categories)
	if err != nil {
		panic(err)
	}
	return r
}

// Categories returns all categories in declaration order.
func (r *Registry) Categories() []Category {
	out := make([]Category, len(r.categories))
	for i, c := range r.categories {
		out[i] = clone(c)
	}
	return out
}

// Featured returns the first n categories.
func (r *Registry) Featured(n int) []Category {
	all := r.Categories()
	if n < 0 || n >= len(all) {
		return all
	}
	return all[:n]
}

func (r *Registry) Lookup(name string) (Category, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Category{}, false
	}
	return clone(r.categories[idx]), true
}

// CategoryOf returns the single category holding topic.
func (r *Registry) CategoryOf(topic string) (Category, error) {
	idx, ok := r.byTopic[topic]
	if !ok {
		return Category{}, &LookupError{Topic: topic}
	}
	return clone(r.categories[idx]), nil
}

// TopicsOf returns the topics of a category in declared order.
func (r *Registry) TopicsOf(name string) ([]string, error) {
	idx, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return append([]string(nil), r.categories[idx].Topics...), nil
}

// Topics returns the whole topic universe, category by category.
func (r *Registry) Topics() []string {
	out := make([]string, 0, len(r.byTopic))
	for _, c := range r.categories {
		out = append(out, c.Topics...)
	}
	return out
}

// Sort orders categories by the given key. Ties keep declaration order.
func (r *Registry) Sort(by SortBy) ([]Category, error) {
	out := r.Categories()

	var less func(a, b Category) bool
	switch by {
	case SortPopularity:
		less = func(a, b Category) bool { return a.Popularity > b.Popularity }
	case SortTrending:
		less = func(a, b Category) bool { return a.Trending && !b.Trending }
	case SortAlphabetical:
		less = func(a, b Category) bool { return a.Name < b.Name }
	default:
		return nil, fmt.Errorf("unknown sort order %q", by)
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

func clone(c Category) Category {
	c.Topics = append([]string(nil), c.Topics...)
	c.Examples = append([]string(nil), c.Examples...)
	return c
}
