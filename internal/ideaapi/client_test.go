package ideaapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	http "github.com/bogdanfinn/fhttp"

	"github.com/letieu/idea-board/internal/idea"
)

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const ideaJSON = `{"id":"abc","idea_text":"Airbnb for pets","topic":"pets","theme":"luxury","template":"{famous_site} for {field}","upvotes":4,"share_url":"/idea/1a2b3c4d","created_at":"2024-05-01T10:20:30.123456"}`

type call struct {
	method string
	path   string
	query  string
	body   string
}

func recordingClient(status int, body string, calls *[]call) *Client {
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		c := call{method: req.Method, path: req.URL.Path, query: req.URL.RawQuery}
		if req.Body != nil {
			raw, _ := io.ReadAll(req.Body)
			c.body = string(raw)
		}
		if req.Header.Get("X-Request-ID") == "" {
			c.body += " <missing request id>"
		}
		*calls = append(*calls, c)
		return respond(status, body), nil
	})
	return NewClient(doer, "http://ideas.local/", nil)
}

func TestGenerate(t *testing.T) {
	var calls []call
	c := recordingClient(200, `{"success":true,"idea":`+ideaJSON+`}`, &calls)

	got, err := c.Generate(context.Background(), idea.Filter{Category: "Social Impact", Topics: []string{"pets"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "abc" || got.Upvotes != 4 || got.ShareHash() != "1a2b3c4d" {
		t.Errorf("unexpected idea %+v", got)
	}

	want := call{method: "POST", path: "/api/ideas/generate", body: `{"category":"Social Impact","topics":["pets"]}`}
	if !reflect.DeepEqual(calls, []call{want}) {
		t.Errorf("expected: %+v, but was: %+v", want, calls)
	}
}

func TestGenerateWithoutFilterSendsNoBody(t *testing.T) {
	var calls []call
	c := recordingClient(200, `{"success":true,"idea":`+ideaJSON+`}`, &calls)

	if _, err := c.Generate(context.Background(), idea.Filter{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 1 || calls[0].body != "" {
		t.Errorf("unexpected calls %+v", calls)
	}
}

func TestList(t *testing.T) {
	var calls []call
	c := recordingClient(200, `{"success":true,"ideas":[`+ideaJSON+`],"total":31}`, &calls)

	page, err := c.List(context.Background(), idea.Recent, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Ideas) != 1 || page.Total != 31 {
		t.Errorf("unexpected page %+v", page)
	}
	if calls[0].method != "GET" || calls[0].path != "/api/ideas/recent" || calls[0].query != "limit=10" {
		t.Errorf("unexpected call %+v", calls[0])
	}

	if _, err := c.List(context.Background(), idea.Rank("hot"), 10); err == nil {
		t.Errorf("expected error for unknown rank")
	}
}

func TestListNumericIDs(t *testing.T) {
	var calls []call
	body := `{"success":true,"total":2,"ideas":[` +
		`{"id":1,"idea_text":"Uber for books","topic":"books","theme":"retro","upvotes":5,"share_url":"/idea/c4ca4238"},` +
		`{"id":"2","idea_text":"Etsy for art","topic":"art","theme":"bold","upvotes":3,"share_url":"/idea/c81e728d"}]}`
	c := recordingClient(200, body, &calls)

	page, err := c.List(context.Background(), idea.Popular, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []idea.ID
	for _, rec := range page.Ideas {
		ids = append(ids, rec.ID)
	}
	if want := []idea.ID{"1", "2"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("expected: %v, but was: %v", want, ids)
	}
}

func TestUpvote(t *testing.T) {
	var calls []call
	c := recordingClient(200, `{"success":true,"upvotes":6,"error":null}`, &calls)

	n, err := c.Upvote(context.Background(), "abc")
	if err != nil || n != 6 {
		t.Errorf("expected 6, but was %d (%v)", n, err)
	}
	if calls[0].method != "POST" || calls[0].path != "/api/ideas/abc/upvote" {
		t.Errorf("unexpected call %+v", calls[0])
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		transport  error
		call       func(c *Client) error
		isNotFound bool
		isService  bool
		isNetwork  bool
	}{
		{
			name:   "ShareNotFound",
			status: 404, body: `{"detail":"Idea not found"}`,
			call: func(c *Client) error {
				_, err := c.ResolveShared(context.Background(), "deadbeef")
				return err
			},
			isNotFound: true,
		},
		{
			name:   "UpvoteNotFound",
			status: 404, body: `{"detail":"Idea not found"}`,
			call: func(c *Client) error {
				_, err := c.Upvote(context.Background(), "missing")
				return err
			},
			isNotFound: true,
		},
		{
			name:   "ListRouteMissingIsServiceError",
			status: 404, body: `Not Found`,
			call: func(c *Client) error {
				_, err := c.List(context.Background(), idea.Popular, 10)
				return err
			},
			isService: true,
		},
		{
			name:   "UpvoteUnsuccessful",
			status: 200, body: `{"success":false,"upvotes":0,"error":"db down"}`,
			call: func(c *Client) error {
				_, err := c.Upvote(context.Background(), "abc")
				return err
			},
			isService: true,
		},
		{
			name:   "ServerError",
			status: 500, body: `boom`,
			call: func(c *Client) error {
				_, err := c.Generate(context.Background(), idea.Filter{})
				return err
			},
			isService: true,
		},
		{
			name:      "TransportFailure",
			transport: errors.New("connection refused"),
			call: func(c *Client) error {
				_, err := c.ResolveShared(context.Background(), "deadbeef")
				return err
			},
			isNetwork: true,
		},
		{
			name:   "GarbageBody",
			status: 200, body: `<html>`,
			call: func(c *Client) error {
				_, err := c.List(context.Background(), idea.Recent, 5)
				return err
			},
			isService: true,
		},
	}

	for i, tc := range cases {
		doer := doerFunc(func(req *http.Request) (*http.Response, error) {
			if tc.transport != nil {
				return nil, tc.transport
			}
			return respond(tc.status, tc.body), nil
		})
		err := tc.call(NewClient(doer, "http://ideas.local", nil))

		var serviceErr *idea.ServiceError
		var networkErr *idea.NetworkError
		if idea.IsNotFound(err) != tc.isNotFound ||
			errors.As(err, &serviceErr) != tc.isService ||
			errors.As(err, &networkErr) != tc.isNetwork {
			t.Errorf("test #%d %s fail, unexpected error kind: %v", i, tc.name, err)
		}
	}
}

func TestFilterWireFormat(t *testing.T) {
	raw, _ := json.Marshal(idea.Filter{Category: "Food"})
	if string(raw) != `{"category":"Food"}` {
		t.Errorf("unexpected filter json %s", raw)
	}
}
