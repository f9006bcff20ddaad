package planner

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditHistory_LIFORetrieval(t *testing.T) {
	h := newEditHistory(10)
	h.push(Event{ID: 1, Name: "first"})
	h.push(Event{ID: 2, Name: "second"})

	snap, ok := h.pop()
	require.True(t, ok)
	assert.Equal(t, int64(2), snap.ID)

	snap, ok = h.pop()
	require.True(t, ok)
	assert.Equal(t, int64(1), snap.ID)

	_, ok = h.pop()
	assert.False(t, ok)
}

func TestEditHistory_OverflowEvictsOldest(t *testing.T) {
	h := newEditHistory(10)
	for i := 1; i <= 11; i++ {
		h.push(Event{ID: int64(i), Name: fmt.Sprintf("event %d", i)})
	}

	assert.Equal(t, 10, h.len(), "history never exceeds its capacity")

	snaps := h.list()
	assert.Equal(t, int64(2), snaps[0].ID, "the oldest snapshot is evicted, not the newest")
	assert.Equal(t, int64(11), snaps[len(snaps)-1].ID)
}

func TestEditHistory_ListIsOldestFirstCopy(t *testing.T) {
	h := newEditHistory(10)
	h.push(Event{ID: 1})
	h.push(Event{ID: 2})

	snaps := h.list()
	require.Len(t, snaps, 2)
	assert.Equal(t, int64(1), snaps[0].ID)

	snaps[0].ID = 99
	again := h.list()
	assert.Equal(t, int64(1), again[0].ID, "list must return a copy")
}

func TestEditHistory_NonPositiveCapacityFallsBackToDefault(t *testing.T) {
	h := newEditHistory(0)
	for i := 1; i <= 15; i++ {
		h.push(Event{ID: int64(i)})
	}
	assert.Equal(t, defaultHistoryCapacity, h.len())
}
