package planner

// Task is one checklist entry of an event.
type Task struct {
	Text string
	Done bool
}

type taskNode struct {
	text string
	done bool
	next *taskNode
}

// taskBoard keeps a singly linked task list per event id. An event with no
// tasks has no entry at all; an empty list is never represented by a node.
type taskBoard struct {
	lists map[int64]*taskNode
}

func newTaskBoard() *taskBoard {
	return &taskBoard{lists: make(map[int64]*taskNode)}
}

// add appends text at the tail, preserving insertion order.
func (b *taskBoard) add(id int64, text string) {
	node := &taskNode{text: text}
	head := b.lists[id]
	if head == nil {
		b.lists[id] = node
		return
	}
	cur := head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = node
}

// remove unlinks the first node whose text matches exactly.
func (b *taskBoard) remove(id int64, text string) bool {
	cur := b.lists[id]
	if cur == nil {
		return false
	}
	if cur.text == text {
		if cur.next == nil {
			delete(b.lists, id)
		} else {
			b.lists[id] = cur.next
		}
		return true
	}
	for cur.next != nil {
		if cur.next.text == text {
			cur.next = cur.next.next
			return true
		}
		cur = cur.next
	}
	return false
}

// complete marks the first exact-text match done.
func (b *taskBoard) complete(id int64, text string) bool {
	for cur := b.lists[id]; cur != nil; cur = cur.next {
		if cur.text == text {
			cur.done = true
			return true
		}
	}
	return false
}

// list materializes the tasks for id in insertion order.
func (b *taskBoard) list(id int64) []Task {
	tasks := []Task{}
	for cur := b.lists[id]; cur != nil; cur = cur.next {
		tasks = append(tasks, Task{Text: cur.text, Done: cur.done})
	}
	return tasks
}

// drop discards the whole list for id, used when the event is deleted.
func (b *taskBoard) drop(id int64) {
	delete(b.lists, id)
}
