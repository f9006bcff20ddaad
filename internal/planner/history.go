package planner

const defaultHistoryCapacity = 10

// editHistory is a bounded stack of event snapshots. Retrieval is LIFO, but
// overflow evicts the oldest snapshot, not the newest: it is a capped history
// of recent edits, not a fixed window of the first ten.
type editHistory struct {
	snaps    []Event
	capacity int
}

func newEditHistory(capacity int) *editHistory {
	if capacity <= 0 {
		capacity = defaultHistoryCapacity
	}
	return &editHistory{capacity: capacity}
}

func (h *editHistory) push(snap Event) {
	h.snaps = append(h.snaps, snap)
	if len(h.snaps) > h.capacity {
		n := copy(h.snaps, h.snaps[1:])
		h.snaps = h.snaps[:n]
	}
}

func (h *editHistory) pop() (Event, bool) {
	if len(h.snaps) == 0 {
		return Event{}, false
	}
	snap := h.snaps[len(h.snaps)-1]
	h.snaps = h.snaps[:len(h.snaps)-1]
	return snap, true
}

// list returns the stacked snapshots, oldest first.
func (h *editHistory) list() []Event {
	out := make([]Event, len(h.snaps))
	copy(out, h.snaps)
	return out
}

func (h *editHistory) len() int {
	return len(h.snaps)
}
