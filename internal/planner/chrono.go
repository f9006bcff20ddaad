package planner

import "time"

// Filter selects which events an in-order traversal reports.
type Filter int

const (
	FilterAll Filter = iota
	FilterUpcoming
	FilterPast
)

const nilNode = int32(-1)

// chronoNode is one slot of the index arena. Links are arena indices, not
// pointers, so deleted slots can be reused safely.
type chronoNode struct {
	eventID int64
	key     time.Time
	left    int32
	right   int32
}

// chronoIndex is an unbalanced binary search tree over event start times.
// Depth is unbounded; the O(n) worst case is accepted. Equal keys always
// descend right, so events sharing a timestamp traverse in insertion order.
type chronoIndex struct {
	nodes []chronoNode
	free  []int32
	root  int32
	size  int
}

func newChronoIndex() *chronoIndex {
	return &chronoIndex{root: nilNode}
}

func (x *chronoIndex) alloc(id int64, key time.Time) int32 {
	n := chronoNode{eventID: id, key: key, left: nilNode, right: nilNode}
	if l := len(x.free); l > 0 {
		i := x.free[l-1]
		x.free = x.free[:l-1]
		x.nodes[i] = n
		return i
	}
	x.nodes = append(x.nodes, n)
	return int32(len(x.nodes) - 1)
}

func (x *chronoIndex) release(i int32) {
	x.nodes[i] = chronoNode{left: nilNode, right: nilNode}
	x.free = append(x.free, i)
}

// insert places id at its in-order position for key.
func (x *chronoIndex) insert(id int64, key time.Time) {
	x.root = x.insertAt(x.root, id, key)
	x.size++
}

func (x *chronoIndex) insertAt(i int32, id int64, key time.Time) int32 {
	if i == nilNode {
		return x.alloc(id, key)
	}
	// alloc may grow the arena; never hold a node pointer across recursion.
	if key.Before(x.nodes[i].key) {
		l := x.insertAt(x.nodes[i].left, id, key)
		x.nodes[i].left = l
	} else {
		r := x.insertAt(x.nodes[i].right, id, key)
		x.nodes[i].right = r
	}
	return i
}

// contains reports whether id is present. The tree is keyed by time, not id,
// so this is a full search in the worst case.
func (x *chronoIndex) contains(id int64) bool {
	return x.findAt(x.root, id) != nilNode
}

func (x *chronoIndex) findAt(i int32, id int64) int32 {
	if i == nilNode {
		return nilNode
	}
	if x.nodes[i].eventID == id {
		return i
	}
	if l := x.findAt(x.nodes[i].left, id); l != nilNode {
		return l
	}
	return x.findAt(x.nodes[i].right, id)
}

// delete removes the node holding id, if any. The target is located by the
// same both-subtree search contains uses; key comparison plays no part in
// finding it. A node with two children takes over its in-order successor's
// payload, and the successor node is deleted from the right subtree.
func (x *chronoIndex) delete(id int64) bool {
	if x.findAt(x.root, id) == nilNode {
		return false
	}
	x.root = x.removeAt(x.root, id)
	x.size--
	return true
}

func (x *chronoIndex) removeAt(i int32, id int64) int32 {
	if i == nilNode {
		return nilNode
	}
	if x.nodes[i].eventID != id {
		l := x.removeAt(x.nodes[i].left, id)
		x.nodes[i].left = l
		r := x.removeAt(x.nodes[i].right, id)
		x.nodes[i].right = r
		return i
	}

	left, right := x.nodes[i].left, x.nodes[i].right
	if left == nilNode {
		x.release(i)
		return right
	}
	if right == nilNode {
		x.release(i)
		return left
	}

	s := x.minAt(right)
	x.nodes[i].eventID = x.nodes[s].eventID
	x.nodes[i].key = x.nodes[s].key
	r := x.removeAt(right, x.nodes[i].eventID)
	x.nodes[i].right = r
	return i
}

func (x *chronoIndex) minAt(i int32) int32 {
	for x.nodes[i].left != nilNode {
		i = x.nodes[i].left
	}
	return i
}

// reposition moves id to the slot its new key demands. Required whenever an
// event's date or time changes, since the ordering key changed with it.
func (x *chronoIndex) reposition(id int64, key time.Time) {
	if x.delete(id) {
		x.insert(id, key)
	}
}

// traverse materializes a full in-order walk, filtered against now. The
// result is in nondecreasing key order.
func (x *chronoIndex) traverse(filter Filter, now time.Time) []int64 {
	ids := make([]int64, 0, x.size)
	x.inorder(x.root, filter, now, &ids)
	return ids
}

func (x *chronoIndex) inorder(i int32, filter Filter, now time.Time, out *[]int64) {
	if i == nilNode {
		return
	}
	x.inorder(x.nodes[i].left, filter, now, out)
	switch filter {
	case FilterUpcoming:
		if !x.nodes[i].key.Before(now) {
			*out = append(*out, x.nodes[i].eventID)
		}
	case FilterPast:
		if x.nodes[i].key.Before(now) {
			*out = append(*out, x.nodes[i].eventID)
		}
	default:
		*out = append(*out, x.nodes[i].eventID)
	}
	x.inorder(x.nodes[i].right, filter, now, out)
}
