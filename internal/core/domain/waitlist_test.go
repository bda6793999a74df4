package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/warehouse-be/internal/core/domain"
)

func TestWaitlist_Append(t *testing.T) {
	w := domain.NewWaitlist()
	now := time.Now()

	entry, err := w.Append("P1", "C1", 5, now)
	require.NoError(t, err)
	assert.Equal(t, "P1", entry.ProductID)
	assert.Equal(t, "C1", entry.ClientID)
	assert.Equal(t, 5, entry.Qty)
	assert.Equal(t, now, entry.RequestedAt)
	assert.NotEqual(t, entry.ID.String(), "00000000-0000-0000-0000-000000000000")

	_, err = w.Append("P1", "C1", 0, now)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, 1, w.CountFor("P1"))
}

func TestWaitlist_FIFOOrder(t *testing.T) {
	w := domain.NewWaitlist()
	now := time.Now()

	first, err := w.Append("P1", "C1", 5, now)
	require.NoError(t, err)
	second, err := w.Append("P1", "C2", 3, now)
	require.NoError(t, err)

	head, ok := w.PeekHead("P1")
	require.True(t, ok)
	assert.Equal(t, first.ID, head.ID, "peek must not remove the head")
	assert.Equal(t, 2, w.CountFor("P1"))

	popped, ok := w.PopHead("P1")
	require.True(t, ok)
	assert.Equal(t, first.ID, popped.ID)

	popped, ok = w.PopHead("P1")
	require.True(t, ok)
	assert.Equal(t, second.ID, popped.ID)

	_, ok = w.PopHead("P1")
	assert.False(t, ok)
	assert.Equal(t, 0, w.CountFor("P1"))
}

func TestWaitlist_QueuesAreIndependentPerProduct(t *testing.T) {
	w := domain.NewWaitlist()
	now := time.Now()

	_, err := w.Append("P1", "C1", 2, now)
	require.NoError(t, err)
	_, err = w.Append("P2", "C2", 4, now)
	require.NoError(t, err)

	popped, ok := w.PopHead("P1")
	require.True(t, ok)
	assert.Equal(t, "C1", popped.ClientID)

	assert.Equal(t, 0, w.CountFor("P1"))
	assert.Equal(t, 1, w.CountFor("P2"))
}

func TestWaitlist_ForClient(t *testing.T) {
	w := domain.NewWaitlist()
	now := time.Now()

	_, err := w.Append("P1", "C1", 2, now)
	require.NoError(t, err)
	_, err = w.Append("P2", "c1", 4, now) // lookup is case-insensitive
	require.NoError(t, err)
	_, err = w.Append("P1", "C2", 1, now)
	require.NoError(t, err)

	entries := w.ForClient("C1")
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEqual(t, "C2", e.ClientID)
	}

	assert.Empty(t, w.ForClient("C99"))
}

func TestWaitlist_SnapshotIsolation(t *testing.T) {
	w := domain.NewWaitlist()
	_, err := w.Append("P1", "C1", 2, time.Now())
	require.NoError(t, err)

	snapshot := w.ForProduct("P1")
	require.Len(t, snapshot, 1)

	// Mutating the queue must not change an earlier snapshot.
	_, ok := w.PopHead("P1")
	require.True(t, ok)
	assert.Len(t, snapshot, 1)
	assert.Empty(t, w.ForProduct("P1"))
}

func TestWaitlist_AllAndRestore(t *testing.T) {
	w := domain.NewWaitlist()
	now := time.Now()

	_, err := w.Append("P2", "C1", 1, now)
	require.NoError(t, err)
	_, err = w.Append("P1", "C2", 2, now)
	require.NoError(t, err)
	_, err = w.Append("P1", "C3", 3, now)
	require.NoError(t, err)

	all := w.All()
	require.Len(t, all, 3)

	restored := domain.NewWaitlist()
	restored.Restore(all)

	assert.Equal(t, 2, restored.CountFor("P1"))
	assert.Equal(t, 1, restored.CountFor("P2"))

	head, ok := restored.PeekHead("P1")
	require.True(t, ok)
	assert.Equal(t, "C2", head.ClientID, "restore must preserve FIFO order")
}
