package planner

// reminderQueue holds the ids of events awaiting a reminder, in enqueue
// order. An id appears at most once.
type reminderQueue struct {
	ids []int64
}

func newReminderQueue() *reminderQueue {
	return &reminderQueue{}
}

func (q *reminderQueue) contains(id int64) bool {
	for _, queued := range q.ids {
		if queued == id {
			return true
		}
	}
	return false
}

// enqueue appends id unless it is already queued.
func (q *reminderQueue) enqueue(id int64) bool {
	if q.contains(id) {
		return false
	}
	q.ids = append(q.ids, id)
	return true
}

func (q *reminderQueue) remove(id int64) bool {
	for i, queued := range q.ids {
		if queued == id {
			q.ids = append(q.ids[:i], q.ids[i+1:]...)
			return true
		}
	}
	return false
}

// sweep removes and returns every queued id for which due reports true,
// preserving FIFO order among the survivors. A fired id is gone for good;
// enqueueing again is the only way it can fire twice.
func (q *reminderQueue) sweep(due func(id int64) bool) []int64 {
	fired := []int64{}
	rest := q.ids[:0]
	for _, id := range q.ids {
		if due(id) {
			fired = append(fired, id)
		} else {
			rest = append(rest, id)
		}
	}
	q.ids = rest
	return fired
}

// pending returns the queued ids in FIFO order.
func (q *reminderQueue) pending() []int64 {
	out := make([]int64, len(q.ids))
	copy(out, q.ids)
	return out
}

func (q *reminderQueue) len() int {
	return len(q.ids)
}
