package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(t *testing.T, date, clock string) time.Time {
	t.Helper()
	k, err := ParseTimeKey(date, clock)
	require.NoError(t, err)
	return k
}

func TestChronoIndex_InOrderTraversal(t *testing.T) {
	x := newChronoIndex()
	x.insert(1, key(t, "2025-07-15", "10:00"))
	x.insert(2, key(t, "2025-07-10", "15:00"))
	x.insert(3, key(t, "2025-07-20", "09:00"))
	x.insert(4, key(t, "2025-07-01", "08:00"))

	got := x.traverse(FilterAll, time.Time{})
	assert.Equal(t, []int64{4, 2, 1, 3}, got)
}

func TestChronoIndex_EqualKeysKeepInsertionOrder(t *testing.T) {
	x := newChronoIndex()
	shared := key(t, "2025-07-10", "15:00")
	x.insert(1, shared)
	x.insert(2, shared)
	x.insert(3, key(t, "2025-07-09", "15:00"))
	x.insert(4, shared)

	// Ties descend right, so later-inserted equal keys traverse later.
	got := x.traverse(FilterAll, time.Time{})
	assert.Equal(t, []int64{3, 1, 2, 4}, got)
}

func TestChronoIndex_UpcomingPastFilters(t *testing.T) {
	x := newChronoIndex()
	x.insert(1, key(t, "2025-07-10", "15:00"))
	x.insert(2, key(t, "2025-07-15", "10:00"))
	x.insert(3, key(t, "2025-06-01", "09:00"))

	now := key(t, "2025-07-01", "00:00")
	assert.Equal(t, []int64{1, 2}, x.traverse(FilterUpcoming, now))
	assert.Equal(t, []int64{3}, x.traverse(FilterPast, now))

	boundary := key(t, "2025-07-10", "15:00")
	assert.Contains(t, x.traverse(FilterUpcoming, boundary), int64(1),
		"an event starting exactly now counts as upcoming")
}

func TestChronoIndex_Delete(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		x := newChronoIndex()
		x.insert(1, key(t, "2025-07-10", "15:00"))
		x.insert(2, key(t, "2025-07-05", "15:00"))

		require.True(t, x.delete(2))
		assert.Equal(t, []int64{1}, x.traverse(FilterAll, time.Time{}))
		assert.False(t, x.contains(2))
	})

	t.Run("single child", func(t *testing.T) {
		x := newChronoIndex()
		x.insert(1, key(t, "2025-07-10", "15:00"))
		x.insert(2, key(t, "2025-07-05", "15:00"))
		x.insert(3, key(t, "2025-07-01", "15:00"))

		require.True(t, x.delete(2))
		assert.Equal(t, []int64{3, 1}, x.traverse(FilterAll, time.Time{}))
	})

	t.Run("two children replaced by in-order successor", func(t *testing.T) {
		x := newChronoIndex()
		x.insert(1, key(t, "2025-07-10", "15:00"))
		x.insert(2, key(t, "2025-07-05", "15:00"))
		x.insert(3, key(t, "2025-07-20", "15:00"))
		x.insert(4, key(t, "2025-07-15", "15:00"))
		x.insert(5, key(t, "2025-07-25", "15:00"))

		require.True(t, x.delete(1))
		assert.Equal(t, []int64{2, 4, 3, 5}, x.traverse(FilterAll, time.Time{}))
	})

	t.Run("root until empty", func(t *testing.T) {
		x := newChronoIndex()
		x.insert(1, key(t, "2025-07-10", "15:00"))
		x.insert(2, key(t, "2025-07-05", "15:00"))
		x.insert(3, key(t, "2025-07-20", "15:00"))

		require.True(t, x.delete(1))
		require.True(t, x.delete(3))
		require.True(t, x.delete(2))
		assert.Empty(t, x.traverse(FilterAll, time.Time{}))
		assert.Equal(t, 0, x.size)
	})

	t.Run("missing id", func(t *testing.T) {
		x := newChronoIndex()
		x.insert(1, key(t, "2025-07-10", "15:00"))

		assert.False(t, x.delete(42))
		assert.Equal(t, 1, x.size)
	})
}

func TestChronoIndex_ArenaReusesFreedSlots(t *testing.T) {
	x := newChronoIndex()
	x.insert(1, key(t, "2025-07-10", "15:00"))
	x.insert(2, key(t, "2025-07-05", "15:00"))
	x.insert(3, key(t, "2025-07-20", "15:00"))

	require.True(t, x.delete(2))
	require.True(t, x.delete(3))
	x.insert(4, key(t, "2025-07-01", "15:00"))
	x.insert(5, key(t, "2025-07-30", "15:00"))

	assert.Len(t, x.nodes, 3, "freed slots must be reused before the arena grows")
	assert.Equal(t, []int64{4, 1, 5}, x.traverse(FilterAll, time.Time{}))
}

func TestChronoIndex_Reposition(t *testing.T) {
	x := newChronoIndex()
	x.insert(1, key(t, "2025-07-10", "15:00"))
	x.insert(2, key(t, "2025-07-15", "10:00"))

	// Move event 1 later than event 2.
	x.reposition(1, key(t, "2025-07-20", "09:00"))
	assert.Equal(t, []int64{2, 1}, x.traverse(FilterAll, time.Time{}))

	// Repositioning an unknown id is a no-op.
	x.reposition(99, key(t, "2025-07-01", "09:00"))
	assert.Equal(t, 2, x.size)
}
