package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterClaims(t *testing.T) {
	mock := NewMockAdapter()
	claims, err := mock.Claims(t.Context())
	require.NoError(t, err)

	assert.Len(t, FilterClaims(claims, FilterAll), 2)
	assert.Len(t, FilterClaims(claims, ""), 2)

	active := FilterClaims(claims, FilterActive)
	require.Len(t, active, 1)
	assert.Equal(t, "claim-1", active[0].ID)

	decided := FilterClaims(claims, FilterCompleted)
	require.Len(t, decided, 1)
	assert.Equal(t, "claim-2", decided[0].ID)

	assert.Empty(t, FilterClaims(claims, FilterAppeals))
}

func TestSummarize(t *testing.T) {
	mock := NewMockAdapter()
	claims, err := mock.Claims(t.Context())
	require.NoError(t, err)

	s := Summarize(claims)
	assert.Equal(t, ClaimSummary{Total: 2, Active: 1, Decided: 1}, s)
}
