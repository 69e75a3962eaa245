package ideaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/letieu/idea-board/internal/idea"
)

const userAgent = "idea-board/1.0 (+https://github.com/letieu/idea-board)"

// Doer sends one HTTP request. tls_client.HttpClient satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the website idea service over its JSON API.
type Client struct {
	httpClient Doer
	baseURL    string
	logger     *zap.SugaredLogger
}

type ideaEnvelope struct {
	Success bool       `json:"success"`
	Idea    *idea.Idea `json:"idea"`
	Error   string     `json:"error"`
}

type listEnvelope struct {
	Success bool        `json:"success"`
	Ideas   []idea.Idea `json:"ideas"`
	Total   int         `json:"total"`
	Error   string      `json:"error"`
}

type upvoteEnvelope struct {
	Success bool   `json:"success"`
	Upvotes int    `json:"upvotes"`
	Error   string `json:"error"`
}

// NewTransport builds the tls-client used in production. Unknown profile
// names fall back to the library default.
func NewTransport(profileName string, timeoutSecs int) (tls_client.HttpClient, error) {
	profile, ok := profiles.MappedTLSClients[profileName]
	if !ok {
		profile = profiles.DefaultClientProfile
	}

	options := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(timeoutSecs),
		tls_client.WithClientProfile(profile),
	}
	return tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
}

func NewClient(httpClient Doer, baseURL string, logger *zap.SugaredLogger) *Client {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		logger:     logger,
	}
}

// Generate asks the service for a new idea, narrowed by filter when set.
func (c *Client) Generate(ctx context.Context, filter idea.Filter) (idea.Idea, error) {
	var body any
	if !filter.IsZero() {
		body = filter
	}

	var env ideaEnvelope
	if err := c.do(ctx, "generate", http.MethodPost, "/ideas/generate", body, false, &env); err != nil {
		return idea.Idea{}, err
	}
	if !env.Success || env.Idea == nil {
		return idea.Idea{}, &idea.ServiceError{Op: "generate", Message: failure(env.Error)}
	}
	return *env.Idea, nil
}

// List fetches one ranked listing.
func (c *Client) List(ctx context.Context, rank idea.Rank, limit int) (idea.Page, error) {
	if !rank.Valid() {
		return idea.Page{}, fmt.Errorf("list: unknown rank %q", rank)
	}
	op := "list " + string(rank)
	path := "/ideas/" + string(rank) + "?limit=" + strconv.Itoa(limit)

	var env listEnvelope
	if err := c.do(ctx, op, http.MethodGet, path, nil, false, &env); err != nil {
		return idea.Page{}, err
	}
	if !env.Success {
		return idea.Page{}, &idea.ServiceError{Op: op, Message: failure(env.Error)}
	}
	if env.Ideas == nil {
		env.Ideas = []idea.Idea{}
	}
	return idea.Page{Ideas: env.Ideas, Total: env.Total}, nil
}

// Upvote adds one vote and returns the new authoritative count.
func (c *Client) Upvote(ctx context.Context, id string) (int, error) {
	var env upvoteEnvelope
	path := "/ideas/" + url.PathEscape(id) + "/upvote"
	if err := c.do(ctx, "upvote", http.MethodPost, path, nil, true, &env); err != nil {
		return 0, err
	}
	if !env.Success {
		return 0, &idea.ServiceError{Op: "upvote", Message: failure(env.Error)}
	}
	return env.Upvotes, nil
}

// ResolveShared looks an idea up by its share hash.
func (c *Client) ResolveShared(ctx context.Context, hash string) (idea.Idea, error) {
	var env ideaEnvelope
	path := "/ideas/share/" + url.PathEscape(hash)
	if err := c.do(ctx, "resolve share", http.MethodGet, path, nil, true, &env); err != nil {
		return idea.Idea{}, err
	}
	if !env.Success || env.Idea == nil {
		return idea.Idea{}, &idea.ServiceError{Op: "resolve share", Message: failure(env.Error)}
	}
	return *env.Idea, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body any, notFound bool, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnw("idea service unreachable", "op", op, "request_id", requestID, "error", err)
		return &idea.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debugw("idea service call", "op", op, "method", method, "path", path,
		"status", resp.StatusCode, "request_id", requestID)

	if notFound && resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, idea.ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &idea.ServiceError{Op: op, Status: resp.StatusCode, Message: strings.TrimSpace(string(errBody))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &idea.ServiceError{Op: op, Status: resp.StatusCode, Message: fmt.Sprintf("malformed response: %v", err)}
	}
	return nil
}

func failure(msg string) string {
	if msg == "" {
		return "request was not successful"
	}
	return msg
}
