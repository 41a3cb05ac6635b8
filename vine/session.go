package vine

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// session holds the authentication state of one client. It starts empty
// and is set at most once, by a successful Connect.
type session struct {
	key      string
	username string
	userID   string
}

// Credentials selects one of the two authentication paths: a pre-issued
// APIKey (stored as-is, no network call) or an Email/Password pair sent
// to the authentication endpoint. SkipError suppresses ConnectionError
// on a rejected login, leaving the session unauthenticated.
type Credentials struct {
	Email     string
	Password  string
	APIKey    string
	SkipError bool
}

// authResponse covers the fields consumed from users/authenticate.
type authResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
	Data    struct {
		Key string `json:"key"`
	} `json:"data"`
}

// Connect authenticates the client and returns the session key.
//
// With Credentials.APIKey set, the key is stored directly. Otherwise an
// authentication request is issued with the process device token; a
// rejected login returns *ConnectionError carrying the API's code and
// message, unless SkipError is set. Transport faults on this path are
// not normalized and propagate as errors.
func (c *Client) Connect(ctx context.Context, creds Credentials) (string, error) {
	if creds.APIKey != "" {
		c.session.key = creds.APIKey
		return creds.APIKey, nil
	}
	if creds.Email == "" || creds.Password == "" {
		return "", fmt.Errorf("%w: you must specify both Email and Password, or APIKey", ErrInvalidArgument)
	}

	form := url.Values{
		"username":    {creds.Email},
		"password":    {creds.Password},
		"deviceToken": {DeviceToken()},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"users/authenticate", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug().Str("email", creds.Email).Msg("Authenticating with Vine")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("authentication request failed: %w", err)
	}
	defer resp.Body.Close()

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if auth.Success || creds.SkipError {
		// A failure body carries no key, so with SkipError the session
		// simply stays unauthenticated.
		c.session.key = auth.Data.Key
		return c.session.key, nil
	}

	code, _ := strconv.Atoi(auth.Code)
	return "", &ConnectionError{Code: code, Message: auth.Error}
}

// IsAuthenticated reports whether a session key is stored.
func (c *Client) IsAuthenticated() bool {
	return c.session.key != ""
}

// Token returns the stored session key, or "" when unauthenticated.
func (c *Client) Token() string {
	return c.session.key
}

// Username returns the session username. This layer never populates it;
// it stays empty unless set by a future profile integration.
func (c *Client) Username() string {
	return c.session.username
}

// UserID returns the session user id. Like Username, unset in current scope.
func (c *Client) UserID() string {
	return c.session.userID
}
