// Package planner implements an in-memory event-scheduling index.
//
// A single Planner owns four structures around one mutable event store: an
// unbalanced binary search tree ordered by event start time, a bounded stack
// of edit snapshots for undo, a per-event singly linked task list, and a
// pending-reminder queue. Every mutation keeps all four consistent.
//
// The planner is single-threaded by design: one logical owner, no concurrent
// callers. Callers that need shared access must serialize externally, since
// the store and the time index have to be updated atomically together.
package planner
