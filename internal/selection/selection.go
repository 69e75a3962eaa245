// Package selection tracks the category and topic filter the user is
// building for the next generation request.
//
// A Controller is not safe for concurrent use; its owner serializes calls.
package selection

import (
	"errors"
	"fmt"

	"github.com/letieu/idea-board/internal/idea"
	"github.com/letieu/idea-board/internal/taxonomy"
)

type State int

const (
	NoSelection State = iota
	CategorySelected
	CategoryAndTopicsSelected
)

func (s State) String() string {
	switch s {
	case NoSelection:
		return "NoSelection"
	case CategorySelected:
		return "CategorySelected"
	case CategoryAndTopicsSelected:
		return "CategoryAndTopicsSelected"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// InvalidSelectionError rejects an action; the selection is left unchanged.
type InvalidSelectionError struct {
	Category string
	Topic    string
	Reason   string
	Err      error
}

func (e *InvalidSelectionError) Error() string {
	if e.Topic != "" {
		return fmt.Sprintf("invalid selection of topic %q: %s", e.Topic, e.Reason)
	}
	return fmt.Sprintf("invalid selection of category %q: %s", e.Category, e.Reason)
}

func (e *InvalidSelectionError) Unwrap() error {
	return e.Err
}

// IsInvalidSelection reports whether err rejected a selection action.
func IsInvalidSelection(err error) bool {
	var target *InvalidSelectionError
	return errors.As(err, &target)
}

// Snapshot is a read-only copy of the selection.
type Snapshot struct {
	State    State
	Category string
	Topics   []string
}

type Controller struct {
	registry *taxonomy.Registry
	category string
	topics   map[string]struct{}
}

func New(registry *taxonomy.Registry) *Controller {
	return &Controller{
		registry: registry,
		topics:   make(map[string]struct{}),
	}
}

func (c *Controller) State() State {
	switch {
	case c.category == "":
		return NoSelection
	case len(c.topics) == 0:
		return CategorySelected
	default:
		return CategoryAndTopicsSelected
	}
}

// SelectCategory makes name the active category and resets the topics.
// Selecting the active category again clears the selection.
func (c *Controller) SelectCategory(name string) error {
	if _, ok := c.registry.Lookup(name); !ok {
		return &InvalidSelectionError{Category: name, Reason: "no such category", Err: taxonomy.ErrUnknownCategory}
	}

	if c.category == name {
		c.Clear()
		return nil
	}

	c.category = name
	c.topics = make(map[string]struct{})
	return nil
}

// SelectTopic toggles topic within the active category.
func (c *Controller) SelectTopic(topic string) error {
	if c.category == "" {
		return &InvalidSelectionError{Topic: topic, Reason: "no category selected"}
	}

	cat, err := c.registry.CategoryOf(topic)
	if err != nil {
		return &InvalidSelectionError{Category: c.category, Topic: topic, Reason: "topic is not mapped to a category", Err: err}
	}
	if cat.Name != c.category {
		return &InvalidSelectionError{
			Category: c.category,
			Topic:    topic,
			Reason:   fmt.Sprintf("belongs to %q, not %q", cat.Name, c.category),
		}
	}

	if _, on := c.topics[topic]; on {
		delete(c.topics, topic)
	} else {
		c.topics[topic] = struct{}{}
	}
	return nil
}

// Clear drops category and topics. Calling it twice is harmless.
func (c *Controller) Clear() {
	c.category = ""
	c.topics = make(map[string]struct{})
}

func (c *Controller) Category() string {
	return c.category
}

// Topics returns the selected topics in the category's declared order.
func (c *Controller) Topics() []string {
	if c.category == "" || len(c.topics) == 0 {
		return nil
	}

	declared, err := c.registry.TopicsOf(c.category)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(c.topics))
	for _, t := range declared {
		if _, on := c.topics[t]; on {
			out = append(out, t)
		}
	}
	return out
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{State: c.State(), Category: c.category, Topics: c.Topics()}
}

// Filter is the generation filter for the current selection.
func (c *Controller) Filter() idea.Filter {
	return idea.Filter{Category: c.category, Topics: c.Topics()}
}
