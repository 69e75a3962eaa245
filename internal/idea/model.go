package idea

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ID identifies an idea. The service may send it as a JSON string or a
// number; either way it is kept as its decimal or literal text.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case string:
		*id = ID(v)
	case json.Number:
		*id = ID(v.String())
	case nil:
		*id = ""
	default:
		return fmt.Errorf("idea id must be a string or number, got %s", data)
	}
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Idea is a generated website idea as served by the idea service.
type Idea struct {
	ID        ID        `json:"id" validate:"required"`
	Text      string    `json:"idea_text" validate:"required"`
	Topic     string    `json:"topic" validate:"required"`
	Theme     string    `json:"theme"`
	Template  string    `json:"template,omitempty"`
	Upvotes   int       `json:"upvotes" validate:"gte=0"`
	ShareURL  string    `json:"share_url" validate:"required,startswith=/idea/"`
	CreatedAt Timestamp `json:"created_at"`
}

// Rank selects one of the server-ranked listings.
type Rank string

const (
	Popular Rank = "popular"
	Recent  Rank = "recent"
)

func (r Rank) Valid() bool {
	return r == Popular || r == Recent
}

// Filter narrows generation to a category and some of its topics.
type Filter struct {
	Category string   `json:"category,omitempty"`
	Topics   []string `json:"topics,omitempty"`
}

func (f Filter) IsZero() bool {
	return f.Category == "" && len(f.Topics) == 0
}

// Page is one ranked listing response.
type Page struct {
	Ideas []Idea
	Total int
}

// Timestamp accepts both RFC 3339 and the zone-less ISO format the
// idea service emits for created_at. Zone-less values are read as UTC.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}

	var lastErr error
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}
