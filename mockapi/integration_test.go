package mockapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimready/claimready/client"
	"github.com/claimready/claimready/dashboard"
	"github.com/claimready/claimready/session"
	"github.com/claimready/claimready/storage/memory"
)

// These tests run the real client, session manager, and dashboard
// features against the mock backend, end to end.

func newStack(t *testing.T, opts ...Option) (*API, *client.Client, *session.Manager) {
	t.Helper()
	api := New(opts...)
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)

	store := memory.NewStore()
	c := client.New(client.Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, session.TokenSource(store))
	mgr := session.NewManager(store, c)
	return api, c, mgr
}

func TestLoginThroughSessionManager(t *testing.T) {
	_, c, mgr := newStack(t)

	prof, err := c.Login(t.Context(), "vet@example.com", "anchors-aweigh-1945")
	require.NoError(t, err)
	mgr.Login(prof.Token, time.Duration(prof.ExpiresIn)*time.Second, &prof.User)

	require.True(t, mgr.IsAuthenticated())

	user := mgr.ValidateSession(t.Context())
	require.NotNil(t, user)
	assert.Equal(t, "vet@example.com", user.Email)
	assert.Equal(t, "user-1", user.ID)
}

func TestForcedUnauthorizedClearsSession(t *testing.T) {
	api, c, mgr := newStack(t)

	prof, err := c.Login(t.Context(), "vet@example.com", "anchors-aweigh-1945")
	require.NoError(t, err)
	mgr.Login(prof.Token, time.Duration(prof.ExpiresIn)*time.Second, &prof.User)

	api.ForceProfileStatus(http.StatusUnauthorized)
	assert.Nil(t, mgr.ValidateSession(t.Context()))
	assert.False(t, mgr.IsAuthenticated())
}

func TestForbiddenKeepsSession(t *testing.T) {
	api, c, mgr := newStack(t)

	prof, err := c.Login(t.Context(), "vet@example.com", "anchors-aweigh-1945")
	require.NoError(t, err)
	mgr.Login(prof.Token, time.Duration(prof.ExpiresIn)*time.Second, &prof.User)

	api.ForceProfileStatus(http.StatusForbidden)
	assert.Nil(t, mgr.ValidateSession(t.Context()))
	assert.True(t, mgr.IsAuthenticated(), "a 403 is not an auth failure")
}

func TestOptimisticToggleAgainstMockBackend(t *testing.T) {
	api, c, mgr := newStack(t)

	prof, err := c.Login(t.Context(), "vet@example.com", "anchors-aweigh-1945")
	require.NoError(t, err)
	mgr.Login(prof.Token, time.Duration(prof.ExpiresIn)*time.Second, &prof.User)

	adapter := dashboard.NewAPIAdapter(c)
	list := dashboard.NewActionList(adapter, nil)
	require.NoError(t, list.Load(t.Context()))

	// Commit path.
	require.NoError(t, list.SetCompleted(t.Context(), "act-2", true))
	item, ok := list.Item("act-2")
	require.True(t, ok)
	assert.True(t, item.Completed)

	// Rejection path: the injected 502 rolls the flag back.
	api.FailNextMutation(http.StatusBadGateway, "upstream_down")
	err = list.SetCompleted(t.Context(), "act-1", true)
	require.ErrorIs(t, err, client.ErrTransient)
	item, ok = list.Item("act-1")
	require.True(t, ok)
	assert.False(t, item.Completed)
}

func TestPremiumErrorMarker(t *testing.T) {
	_, c, mgr := newStack(t)

	prof, err := c.Login(t.Context(), "vet@example.com", "anchors-aweigh-1945")
	require.NoError(t, err)
	mgr.Login(prof.Token, time.Duration(prof.ExpiresIn)*time.Second, &prof.User)

	err = c.Get(t.Context(), "/api/v1/documents/doc-1/download", nil)
	require.ErrorIs(t, err, client.ErrForbidden)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.PremiumRequired())
}
