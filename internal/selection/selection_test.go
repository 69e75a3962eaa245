package selection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/letieu/idea-board/internal/idea"
	"github.com/letieu/idea-board/internal/taxonomy"
)

func newController() *Controller {
	return New(taxonomy.Default())
}

func TestCategoryToggle(t *testing.T) {
	c := newController()

	if err := c.SelectCategory("Food"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.State() != CategorySelected {
		t.Errorf("expected %v, but was %v", CategorySelected, c.State())
	}

	if err := c.SelectCategory("Food"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.State() != NoSelection || c.Category() != "" {
		t.Errorf("expected %v, but was %v (%q)", NoSelection, c.State(), c.Category())
	}
}

func TestSwitchCategoryResetsTopics(t *testing.T) {
	c := newController()
	c.SelectCategory("Food")
	c.SelectTopic("cooking")

	if err := c.SelectCategory("Travel"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.State() != CategorySelected || len(c.Topics()) != 0 {
		t.Errorf("expected empty topics in %v, but was %v %v", CategorySelected, c.State(), c.Topics())
	}
}

func TestSelectTopic(t *testing.T) {
	c := newController()
	c.SelectCategory("Food")

	if err := c.SelectTopic("cooking"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.State() != CategoryAndTopicsSelected {
		t.Errorf("expected %v, but was %v", CategoryAndTopicsSelected, c.State())
	}
	if !reflect.DeepEqual(c.Topics(), []string{"cooking"}) {
		t.Errorf("unexpected topics %v", c.Topics())
	}

	want := idea.Filter{Category: "Food", Topics: []string{"cooking"}}
	if got := c.Filter(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected filter %+v, but was %+v", want, got)
	}

	// declared order, not click order
	c.SelectTopic("recipes")
	c.SelectTopic("food")
	if got := c.Topics(); !reflect.DeepEqual(got, []string{"food", "cooking", "recipes"}) {
		t.Errorf("unexpected topic order %v", got)
	}

	// toggling everything off falls back to CategorySelected
	c.SelectTopic("food")
	c.SelectTopic("cooking")
	c.SelectTopic("recipes")
	if c.State() != CategorySelected {
		t.Errorf("expected %v, but was %v", CategorySelected, c.State())
	}
}

func TestInvalidSelectionLeavesStateUnchanged(t *testing.T) {
	cases := []struct {
		name      string
		prepare   func(c *Controller)
		act       func(c *Controller) error
		wantState State
		isLookup  bool
	}{
		{
			name:      "TopicWithoutCategory",
			prepare:   func(c *Controller) {},
			act:       func(c *Controller) error { return c.SelectTopic("cooking") },
			wantState: NoSelection,
		},
		{
			name:      "TopicOutsideCategory",
			prepare:   func(c *Controller) { c.SelectCategory("Food"); c.SelectTopic("cooking") },
			act:       func(c *Controller) error { return c.SelectTopic("travel") },
			wantState: CategoryAndTopicsSelected,
		},
		{
			name:      "UnmappedTopic",
			prepare:   func(c *Controller) { c.SelectCategory("Food") },
			act:       func(c *Controller) error { return c.SelectTopic("astrology") },
			wantState: CategorySelected,
			isLookup:  true,
		},
		{
			name:      "UnknownCategory",
			prepare:   func(c *Controller) { c.SelectCategory("Food") },
			act:       func(c *Controller) error { return c.SelectCategory("Cars") },
			wantState: CategorySelected,
		},
	}

	for i, tc := range cases {
		c := newController()
		tc.prepare(c)
		before := c.Snapshot()

		err := tc.act(c)
		if !IsInvalidSelection(err) {
			t.Errorf("test #%d %s fail, expected InvalidSelectionError, but was %v", i, tc.name, err)
		}
		var lookupErr *taxonomy.LookupError
		if errors.As(err, &lookupErr) != tc.isLookup {
			t.Errorf("test #%d %s fail, lookup error expected: %v, but was %v", i, tc.name, tc.isLookup, err)
		}
		if after := c.Snapshot(); !reflect.DeepEqual(before, after) || after.State != tc.wantState {
			t.Errorf("test #%d %s fail, expected state: %+v, but was: %+v", i, tc.name, before, after)
		}
	}
}

func TestClearIsIdempotent(t *testing.T) {
	c := newController()
	c.SelectCategory("Finance")
	c.SelectTopic("finance")

	c.Clear()
	c.Clear()
	if c.State() != NoSelection || c.Topics() != nil || !c.Filter().IsZero() {
		t.Errorf("selection not cleared: %+v", c.Snapshot())
	}
}
