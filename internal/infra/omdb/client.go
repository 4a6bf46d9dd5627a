package infra_omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/humanbelnik/moviefav/internal/model"
)

const DefaultBaseURL = "https://www.omdbapi.com/"

// Error describes a failed exchange with the catalog: the request never
// completed, came back with a non-2xx status, or had an unreadable body.
type Error struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("omdb %s: status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("omdb %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// SearchResult mirrors the s= response. Response is "True" or "False".
type SearchResult struct {
	Search       []model.SearchItem `json:"Search"`
	TotalResults string             `json:"totalResults"`
	Response     string             `json:"Response"`
	Error        string             `json:"Error"`
}

func (r SearchResult) Found() bool {
	return r.Response == model.ResponseTrue
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs a free-text query (s=).
func (c *Client) Search(ctx context.Context, query string) (SearchResult, error) {
	var res SearchResult
	if err := c.get(ctx, "search", url.Values{"s": {query}}, &res); err != nil {
		return SearchResult{}, err
	}
	return res, nil
}

// Lookup fetches one full record by exact title (t=).
func (c *Client) Lookup(ctx context.Context, title string) (model.Movie, error) {
	var m model.Movie
	if err := c.get(ctx, "lookup", url.Values{"t": {title}}, &m); err != nil {
		return model.Movie{}, err
	}
	return m, nil
}

func (c *Client) get(ctx context.Context, op string, params url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	for k, vv := range params {
		for _, v := range vv {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &Error{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("omdb request failed", slog.String("op", op), slog.String("error", err.Error()))
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("omdb returned non-2xx", slog.String("op", op), slog.Int("status", resp.StatusCode))
		return &Error{Op: op, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
