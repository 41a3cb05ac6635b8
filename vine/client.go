package vine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL  = "https://api.vineapp.com/"
	userAgent       = "iphone/1.3.1 (iPhone; iOS 6.1.3; Scale/2.00) (Redvine)"
	acceptLanguage  = "en;q=1, fr;q=0.9, de;q=0.8, ja;q=0.7, nl;q=0.6, it;q=0.5"
	sessionHeader   = "vine-session-id"
	defaultPageSize = 20
)

// Client talks to the Vine API. The zero value is not usable; construct
// with NewClient. A Client is safe for concurrent reads, but Connect
// mutates session state and must not race with other calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	session    session
}

// NewClient creates an unauthenticated Vine client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// headers returns the fixed header set sent with every read request,
// plus the session credential when authenticated.
func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("User-Agent", userAgent)
	h.Set("Accept", "*/*")
	h.Set("Accept-Language", acceptLanguage)
	if c.session.key != "" {
		h.Set(sessionHeader, c.session.key)
	}
	return h
}

// get runs the shared read pipeline: build the request, send it, and
// classify the outcome into the uniform envelope. Timeouts are folded
// into the envelope; other transport faults are returned as errors.
func (c *Client) get(ctx context.Context, endpoint string, opts Options) (Result, error) {
	requestURL := c.baseURL + endpoint
	if query := opts.values(); len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.headers()

	c.logger.Debug().Str("url", requestURL).Msg("Making Vine API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Debug().Str("url", requestURL).Msg("Request timed out, returning failure envelope")
			return failureResult(), nil
		}
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return failureResult(), nil
		}
		return Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	result := classify(body)
	if !result.Success() {
		c.logger.Debug().Str("url", requestURL).Str("message", result.Message()).Msg("Vine API reported failure")
	}
	return result, nil
}

// isTimeout reports whether a transport fault is a timeout. Only these
// are normalized into the envelope; everything else propagates.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

var numericIDPattern = regexp.MustCompile(`^[+-]?[0-9]+$`)

// numericID reports whether an identifier looks like a numeric account
// or post id, as opposed to a vanity name or shortcode.
func numericID(id string) bool {
	return numericIDPattern.MatchString(id)
}
