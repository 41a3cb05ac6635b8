package vine

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectWithAPIKey(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	token, err := client.Connect(context.Background(), Credentials{APIKey: "pre-issued-key"})
	require.NoError(t, err)

	assert.Equal(t, "pre-issued-key", token)
	assert.Equal(t, "pre-issued-key", client.Token())
	assert.True(t, client.IsAuthenticated())
	assert.Zero(t, requests, "api key connect must not hit the network")
}

func TestConnectValidatesCredentials(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	tests := []struct {
		name  string
		creds Credentials
	}{
		{"empty", Credentials{}},
		{"email only", Credentials{Email: "user@example.com"}},
		{"password only", Credentials{Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Connect(ctx, tt.creds)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.False(t, client.IsAuthenticated())
		})
	}
}

func TestConnectWithPassword(t *testing.T) {
	hexToken := regexp.MustCompile(`^[0-9a-f]{64}$`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/authenticate", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "user@example.com", r.PostForm.Get("username"))
		assert.Equal(t, "secret", r.PostForm.Get("password"))
		assert.Regexp(t, hexToken, r.PostForm.Get("deviceToken"))

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"key": "issued-session-key"},
		})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	token, err := client.Connect(context.Background(), Credentials{
		Email:    "user@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "issued-session-key", token)
	assert.Equal(t, "issued-session-key", client.Token())
	assert.True(t, client.IsAuthenticated())
	assert.Empty(t, client.Username())
	assert.Empty(t, client.UserID())
}

func TestConnectFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"code":    "101",
			"error":   "That password was incorrect.",
		})
	}))
	defer server.Close()

	t.Run("returns ConnectionError", func(t *testing.T) {
		client := NewClient(WithBaseURL(server.URL))
		_, err := client.Connect(context.Background(), Credentials{
			Email:    "fake@example.com",
			Password: "nope",
		})

		var connErr *ConnectionError
		require.ErrorAs(t, err, &connErr)
		assert.Equal(t, 101, connErr.Code)
		assert.Equal(t, "That password was incorrect.", connErr.Message)
		assert.False(t, client.IsAuthenticated())
	})

	t.Run("SkipError suppresses the error", func(t *testing.T) {
		client := NewClient(WithBaseURL(server.URL))
		token, err := client.Connect(context.Background(), Credentials{
			Email:     "fake@example.com",
			Password:  "nope",
			SkipError: true,
		})

		require.NoError(t, err)
		assert.Empty(t, token, "failure bodies carry no key")
		assert.False(t, client.IsAuthenticated())
	})
}

// Connect does not normalize transport faults; read methods do. The
// asymmetry is inherited behavior and pinned here.
func TestConnectTimeoutPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	_, err := client.Connect(context.Background(), Credentials{
		Email:    "user@example.com",
		Password: "secret",
	})
	require.Error(t, err)

	var connErr *ConnectionError
	assert.False(t, errors.As(err, &connErr), "transport faults are not ConnectionErrors")
	assert.False(t, client.IsAuthenticated())
}
