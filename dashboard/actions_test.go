package dashboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claimready/claimready/client"
	"github.com/claimready/claimready/optimistic"
)

func loadedActionList(t *testing.T, adapter ActionsAdapter, onAuthInvalid func()) *ActionList {
	t.Helper()
	list := NewActionList(adapter, onAuthInvalid)
	require.NoError(t, list.Load(t.Context()))
	return list
}

func TestActionListOrdering(t *testing.T) {
	list := loadedActionList(t, NewMockAdapter(), nil)

	items := list.Items()
	require.Len(t, items, 4)
	// Open items lead, high priority first, completed items trail.
	assert.Equal(t, "act-1", items[0].ID)
	assert.Equal(t, "act-2", items[1].ID)
	assert.Equal(t, "act-3", items[2].ID)
	assert.Equal(t, "act-4", items[3].ID)
	assert.True(t, items[3].Completed)
}

func TestActionListToggleCommits(t *testing.T) {
	mock := NewMockAdapter()
	list := loadedActionList(t, mock, nil)

	require.NoError(t, list.SetCompleted(t.Context(), "act-1", true))

	item, ok := list.Item("act-1")
	require.True(t, ok)
	assert.True(t, item.Completed)

	// The adapter saw the change too.
	persisted, err := mock.SetCompleted(t.Context(), "act-1", true)
	require.NoError(t, err)
	assert.True(t, persisted.Completed)
}

func TestActionListToggleRollsBackOnRejection(t *testing.T) {
	mock := NewMockAdapter()
	list := loadedActionList(t, mock, nil)
	mock.RejectMutations()

	err := list.SetCompleted(t.Context(), "act-1", true)
	require.Error(t, err)
	if !errors.Is(err, client.ErrMutationFailed) {
		t.Fatalf("want mutation failure, got %v", err)
	}

	item, ok := list.Item("act-1")
	require.True(t, ok)
	assert.False(t, item.Completed, "rejected toggle must revert")
}

func TestActionListUnknownTarget(t *testing.T) {
	list := loadedActionList(t, NewMockAdapter(), nil)

	err := list.SetCompleted(t.Context(), "no-such-item", true)
	require.ErrorIs(t, err, optimistic.ErrUnknownTarget)
}

func TestActionListAuthInvalidHook(t *testing.T) {
	mock := NewMockAdapter()
	var fired int
	list := loadedActionList(t, mock, func() { fired++ })
	mock.FailMutations(client.ErrAuthInvalid)

	err := list.SetCompleted(t.Context(), "act-1", true)
	require.ErrorIs(t, err, client.ErrAuthInvalid)
	assert.Equal(t, 1, fired)

	item, _ := list.Item("act-1")
	assert.False(t, item.Completed)
}

func TestActionListProgressAndPackageFilter(t *testing.T) {
	list := loadedActionList(t, NewMockAdapter(), nil)

	completed, total := list.Progress()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 4, total)

	forPkg := list.ForPackage("pkg-1")
	require.Len(t, forPkg, 1)
	assert.Equal(t, "act-1", forPkg[0].ID)

	require.NoError(t, list.SetCompleted(t.Context(), "act-1", true))
	assert.Empty(t, list.ForPackage("pkg-1"))
	completed, _ = list.Progress()
	assert.Equal(t, 2, completed)
}
