// Package pexels is a small client for the Pexels photo search endpoint.
package pexels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"pexview/internal/domain"
)

const maxErrorBody = 512

var (
	// ErrUnauthorized is returned when the API rejects the configured key.
	ErrUnauthorized = errors.New("pexels: unauthorized, check api_key")

	// ErrMalformedResponse is returned when the body is not a photos listing.
	ErrMalformedResponse = errors.New("pexels: malformed response")
)

// StatusError reports a non-2xx answer that is not an authorization failure.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("pexels: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("pexels: unexpected status %d: %s", e.Code, e.Body)
}

// Searcher runs a photo search for a topic.
// It exists so the search service can be tested without a network.
type Searcher interface {
	Search(ctx context.Context, topic string) ([]domain.Photo, error)
}

// Options configures a Client.
type Options struct {
	Endpoint    string
	APIKey      string
	Orientation string
	Size        string
	PerPage     int

	// LegacyQueryParams sends "orentation" and "pen_page" instead of the
	// documented "orientation" and "per_page".
	LegacyQueryParams bool

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client talks to the search endpoint.
type Client struct {
	opts Options
	http *http.Client
}

// NewClient creates a new search client.
func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{opts: opts, http: hc}
}

// SearchURL builds the request URL for topic. Parameter order is fixed.
func (c *Client) SearchURL(topic string) string {
	orientationKey, perPageKey := "orientation", "per_page"
	if c.opts.LegacyQueryParams {
		orientationKey, perPageKey = "orentation", "pen_page"
	}

	sep := "?"
	if strings.Contains(c.opts.Endpoint, "?") {
		sep = "&"
	}

	var b strings.Builder
	b.WriteString(c.opts.Endpoint)
	b.WriteString(sep)
	b.WriteString("query=")
	b.WriteString(url.QueryEscape(topic))
	if c.opts.Orientation != "" {
		b.WriteString("&" + orientationKey + "=" + url.QueryEscape(c.opts.Orientation))
	}
	if c.opts.Size != "" {
		b.WriteString("&size=" + url.QueryEscape(c.opts.Size))
	}
	if c.opts.PerPage > 0 {
		b.WriteString("&" + perPageKey + "=" + strconv.Itoa(c.opts.PerPage))
	}
	return b.String()
}

// Search issues one GET for topic and returns the photos in response order.
// A photo whose id was already seen earlier in the listing is dropped.
func (c *Client) Search(ctx context.Context, topic string) ([]domain.Photo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(topic), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.opts.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if parsed.Photos == nil {
		return nil, fmt.Errorf("%w: no photos field", ErrMalformedResponse)
	}

	return uniquePhotos(*parsed.Photos), nil
}

func uniquePhotos(photos []domain.Photo) []domain.Photo {
	seen := mapset.NewThreadUnsafeSetWithSize[int64](len(photos))
	out := make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		if !seen.Add(p.ID) {
			continue
		}
		out = append(out, p)
	}
	return out
}
