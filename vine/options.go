package vine

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request debugging. The default
// logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithBaseURL overrides the API origin. Intended for tests; production
// callers use the default.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/") + "/"
		}
	}
}

// Options holds per-call query parameters, keyed by parameter name.
// Recognized keys include "page" and "size"; anything else is passed
// through untouched. Options live for a single call.
type Options map[string]any

// values renders the options as a query string, applying the pagination
// default: a page without an explicit size gets size=20.
func (o Options) values() url.Values {
	if len(o) == 0 {
		return nil
	}
	query := url.Values{}
	for key, value := range o {
		query.Set(key, fmt.Sprint(value))
	}
	if query.Has("page") && !query.Has("size") {
		query.Set("size", strconv.Itoa(defaultPageSize))
	}
	return query
}
