package httputil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/qscope/pkg/cache"
	"github.com/matzehuels/qscope/pkg/errors"
	"github.com/matzehuels/qscope/pkg/observability"
)

// maxFetchBytes bounds remote circuit downloads. Circuit files are tiny;
// anything larger is a wrong URL.
const maxFetchBytes = 4 << 20

// IsRemote reports whether a circuit argument is a fetchable URL rather
// than a local path.
func IsRemote(arg string) bool {
	return strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://")
}

// Client fetches remote circuit files with conditional-GET caching and
// retry on transient failures. The zero value is not usable; construct
// with [NewClient].
type Client struct {
	http  *http.Client
	cache cache.Cache
	keyer cache.Keyer
	ttl   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache sets the response cache. Without one, every fetch hits the
// network.
func WithCache(cc cache.Cache) Option {
	return func(c *Client) {
		if cc != nil {
			c.cache = cc
		}
	}
}

// WithKeyer replaces the cache key generator.
func WithKeyer(k cache.Keyer) Option {
	return func(c *Client) {
		if k != nil {
			c.keyer = k
		}
	}
}

// WithTTL sets how long cached responses and their validators persist.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// NewClient creates a fetcher with a 30-second request timeout and no
// cache.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:  &http.Client{Timeout: 30 * time.Second},
		cache: cache.NewNullCache(),
		keyer: cache.NewDefaultKeyer(),
		ttl:   cache.HTTPTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// cachedResponse is the cache entry for one URL.
type cachedResponse struct {
	Body         []byte `json:"body"`
	ETag         string `json:"etag,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// Fetch retrieves the resource at url. Cached responses are revalidated
// with a conditional request; a 304 answer returns the cached body and
// refreshes its lifetime.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := errors.ValidateURL(url); err != nil {
		return nil, err
	}

	key := c.keyer.HTTPKey("remote:", url)
	var cached *cachedResponse
	if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		var entry cachedResponse
		if json.Unmarshal(data, &entry) == nil {
			cached = &entry
		}
	}

	var body []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		b, err := c.fetchOnce(ctx, url, key, cached)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) fetchOnce(ctx context.Context, url, key string, cached *cachedResponse) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", url)
	}
	if cached != nil {
		if cached.ETag != "" {
			req.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			req.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	observability.HTTP().OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return nil, cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url))
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotModified && cached != nil:
		observability.Cache().OnCacheHit(ctx, "http")
		c.store(ctx, key, cached)
		return cached.Body, nil

	case resp.StatusCode == http.StatusOK:
		observability.Cache().OnCacheMiss(ctx, "http")
		body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
		if err != nil {
			return nil, cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "read %s", url))
		}
		if len(body) > maxFetchBytes {
			return nil, errors.New(errors.ErrCodeInvalidInput, "remote circuit %s exceeds %d bytes", url, maxFetchBytes)
		}
		c.store(ctx, key, &cachedResponse{
			Body:         body,
			ETag:         resp.Header.Get("ETag"),
			LastModified: resp.Header.Get("Last-Modified"),
		})
		return body, nil

	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.New(errors.ErrCodeFileNotFound, "remote circuit %s not found", url)

	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return nil, cache.Retryable(&errors.RateLimitedError{RetryAfter: retryAfter})

	case resp.StatusCode >= 500:
		return nil, cache.Retryable(errors.New(errors.ErrCodeNetwork, "fetch %s: server returned %s", url, resp.Status))

	default:
		return nil, errors.New(errors.ErrCodeNetwork, "fetch %s: unexpected status %s", url, resp.Status)
	}
}

// store saves a response entry. Cache write failures don't fail the
// fetch; the body is already in hand.
func (c *Client) store(ctx context.Context, key string, entry *cachedResponse) {
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	if c.cache.Set(ctx, key, data, c.ttl) == nil {
		observability.Cache().OnCacheSet(ctx, "http", len(data))
	}
}
