package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) Config {
	return Config{BaseURL: url, Timeout: 5 * time.Second}
}

func staticToken(tok string) TokenFunc {
	return func() (string, bool) { return tok, tok != "" }
}

func TestDoSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), staticToken("tok-1"))
	var out map[string]any
	require.NoError(t, c.Get(t.Context(), "/api/v1/auth/profile", &out))
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestDoOmitsBearerWithoutSession(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), staticToken(""))
	var out map[string]any
	require.NoError(t, c.Get(t.Context(), "/", &out))
	assert.Empty(t, gotAuth)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"Unauthorized", http.StatusUnauthorized, `{"error":"token expired"}`, ErrAuthInvalid},
		{"Forbidden", http.StatusForbidden, `{"error":"premium_required"}`, ErrForbidden},
		{"ServerError", http.StatusInternalServerError, ``, ErrTransient},
		{"BadGateway", http.StatusBadGateway, `not json at all`, ErrTransient},
		{"NotFound", http.StatusNotFound, `{"message":"no such item"}`, ErrMutationFailed},
		{"Conflict", http.StatusConflict, `{}`, ErrMutationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := New(testConfig(srv.URL), nil)
			err := c.Get(t.Context(), "/x", nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestForbiddenPremiumMarker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"premium_required","upgradeUrl":"/pricing"}`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), nil)
	err := c.Get(t.Context(), "/api/v1/action-items/doc-1", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.PremiumRequired())
	assert.Equal(t, "/pricing", apiErr.UpgradeURL)
	assert.False(t, errors.Is(err, ErrAuthInvalid), "403 must never classify as auth failure")
}

func TestTransportErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(testConfig(srv.URL), nil)
	err := c.Get(t.Context(), "/x", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransient))
}

func TestMalformedSuccessBodyIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user": truncated`))
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL), nil)
	var out map[string]any
	err := c.Get(t.Context(), "/x", &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransient))
}

func TestProfileNormalization(t *testing.T) {
	t.Run("NestedUserWithLegacyID", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"user":{"_id":"u-42","email":"vet@example.com","firstName":"Ada","isPremium":true},"token":"tok-2","expiresIn":3600}`))
		}))
		defer srv.Close()

		c := New(testConfig(srv.URL), staticToken("tok-1"))
		got, err := c.Profile(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "u-42", got.User.ID)
		assert.Equal(t, "vet@example.com", got.User.Email)
		assert.True(t, got.User.IsPremium)
		assert.Equal(t, "tok-2", got.Token)
		assert.Equal(t, int64(3600), got.ExpiresIn)
	})

	t.Run("InlineUser", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":"u-7","email":"vet@example.com","lastName":"Lovelace"}`))
		}))
		defer srv.Close()

		c := New(testConfig(srv.URL), staticToken("tok-1"))
		got, err := c.Profile(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "u-7", got.User.ID)
		assert.Equal(t, "Lovelace", got.User.LastName)
		assert.Empty(t, got.Token)
	})

	t.Run("CanonicalIDWinsOverLegacy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"user":{"id":"u-new","_id":"u-old","email":"vet@example.com"}}`))
		}))
		defer srv.Close()

		c := New(testConfig(srv.URL), nil)
		got, err := c.Profile(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "u-new", got.User.ID)
	})
}
