// Package client is the fetch-and-cache data layer used by catalog front ends.
// Every request is a GET keyed by its path; the latest outcome per key is kept
// until Invalidate is called.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/andybalholm/brotli"
	"golang.org/x/sync/singleflight"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// Query is the observable state of one key. Data is the raw JSON body of the
// last successful response and must not be modified.
type Query struct {
	State     State
	Data      []byte
	Err       error
	UpdatedAt time.Time
}

// HTTPError is returned for non-2xx answers. Message comes from the API's
// {"message": ...} body, or a trimmed copy of the body when it is not JSON.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d message=%s", e.Method, e.URL, e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	queries map[string]Query
	// bumped by Invalidate; a request started under an older generation
	// does not record its outcome
	generations map[string]uint64
}

type Option func(*Client)

// WithHTTPClient replaces the default client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        &http.Client{Timeout: 30 * time.Second},
		now:         time.Now,
		queries:     make(map[string]Query),
		generations: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key joins path segments, escaping all but the first.
//
//	Key("/api/courses", "course-1", "lessons") == "/api/courses/course-1/lessons"
func Key(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Fetch returns the body for key. A recorded success is returned without a
// request. Concurrent calls for the same key share one request, which is not
// cancelled when ctx is: a caller that gives up gets ctx.Err() while the others
// keep waiting and the outcome is still recorded. Failures are recorded and
// returned but never retried; the next Fetch asks again.
func (c *Client) Fetch(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	q := c.queries[key]
	if q.State == StateSuccess {
		c.mu.Unlock()
		return q.Data, nil
	}
	c.queries[key] = Query{State: StatePending, Data: q.Data, UpdatedAt: q.UpdatedAt}
	gen := c.generations[key]
	c.mu.Unlock()

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		data, err := c.get(shared, key)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.generations[key] != gen {
			return data, err
		}
		if err != nil {
			c.queries[key] = Query{State: StateError, Err: err, UpdatedAt: c.now()}
		} else {
			c.queries[key] = Query{State: StateSuccess, Data: data, UpdatedAt: c.now()}
		}
		return data, err
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Status reports the state of key without issuing a request.
func (c *Client) Status(key string) Query {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.queries[key]
}

// Invalidate forgets the recorded outcome of key so the next Fetch goes to the
// server. A request already in flight for key still answers its callers but
// leaves no record.
func (c *Client) Invalidate(key string) {
	c.mu.Lock()
	delete(c.queries, key)
	c.generations[key]++
	c.mu.Unlock()
	c.group.Forget(key)
}

func (c *Client) get(ctx context.Context, key string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+key, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.URL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
	}
	return body, nil
}

// readBody drains and closes the body so the connection can be reused,
// undoing brotli transfer compression when the server applied it.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	var r io.Reader = resp.Body
	switch enc := strings.ToLower(resp.Header.Get("Content-Encoding")); enc {
	case "", "identity":
	case "br":
		r = brotli.NewReader(resp.Body)
	default:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unsupported content encoding %q", enc)
	}
	return io.ReadAll(r)
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
