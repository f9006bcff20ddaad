package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/agenda/internal/common"
	"github.com/dmitrijs2005/agenda/internal/logging"
)

const defaultReminderLead = 15 * time.Minute

// Planner orchestrates the event store, the time index, the edit history,
// the task board and the reminder queue. Mutations go through it so the
// structures never diverge: validation first, then store, index, history and
// queue in that order. A failed validation leaves no partial state behind.
type Planner struct {
	log       logging.Logger
	store     *eventStore
	index     *chronoIndex
	history   *editHistory
	tasks     *taskBoard
	reminders *reminderQueue
	lead      time.Duration
}

// Option customizes a Planner at construction time.
type Option func(*Planner)

// WithHistoryCapacity bounds the undo stack. Values below 1 keep the default.
func WithHistoryCapacity(n int) Option {
	return func(p *Planner) {
		p.history = newEditHistory(n)
	}
}

// WithReminderLead sets how far ahead of an event's start a reminder fires.
func WithReminderLead(d time.Duration) Option {
	return func(p *Planner) {
		if d > 0 {
			p.lead = d
		}
	}
}

// New constructs an empty Planner. A nil logger is replaced with a no-op one.
func New(log logging.Logger, opts ...Option) *Planner {
	if log == nil {
		log = logging.NewNopLogger()
	}
	p := &Planner{
		log:       log,
		store:     newEventStore(),
		index:     newChronoIndex(),
		history:   newEditHistory(defaultHistoryCapacity),
		tasks:     newTaskBoard(),
		reminders: newReminderQueue(),
		lead:      defaultReminderLead,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReminderLead returns the configured sweep lead time.
func (p *Planner) ReminderLead() time.Duration {
	return p.lead
}

// CreateEvent validates params, assigns the next id and wires the event into
// the index, the history and (when the reminder flag is set) the queue.
// On a validation failure nothing changes, the id counter included.
func (p *Planner) CreateEvent(ctx context.Context, params EventParams) (Event, error) {
	key, err := ParseTimeKey(params.Date, params.Time)
	if err != nil {
		p.log.Error(ctx, "event rejected", "name", params.Name, "err", err)
		return Event{}, err
	}

	ev := p.store.create(params)
	p.index.insert(ev.ID, key)
	p.history.push(*ev)
	if ev.Reminder {
		p.reminders.enqueue(ev.ID)
	}

	p.log.Info(ctx, "event created", "id", ev.ID, "name", ev.Name, "date", ev.Date, "time", ev.Time)
	return *ev, nil
}

// UpdateEvent applies a partial update. The merged date/time is validated
// before any field changes; the pre-update state is pushed onto the history;
// the index is repositioned when the schedule changed; the reminder queue
// follows flag transitions.
func (p *Planner) UpdateEvent(ctx context.Context, id int64, patch Patch) (Event, error) {
	ev, ok := p.store.get(id)
	if !ok {
		p.log.Warn(ctx, "event not found", "id", id)
		return Event{}, fmt.Errorf("event %d: %w", id, common.ErrorNotFound)
	}

	date, clock := ev.Date, ev.Time
	if patch.Date != nil {
		date = *patch.Date
	}
	if patch.Time != nil {
		clock = *patch.Time
	}
	key, err := ParseTimeKey(date, clock)
	if err != nil {
		p.log.Error(ctx, "update rejected", "id", id, "err", err)
		return Event{}, err
	}

	prev := *ev

	if patch.Name != nil {
		ev.Name = *patch.Name
	}
	if patch.Date != nil {
		ev.Date = *patch.Date
	}
	if patch.Time != nil {
		ev.Time = *patch.Time
	}
	if patch.Location != nil {
		ev.Location = *patch.Location
	}
	if patch.Description != nil {
		ev.Description = *patch.Description
	}
	if patch.Attendees != nil {
		ev.Attendees = *patch.Attendees
	}
	if patch.Reminder != nil && *patch.Reminder != prev.Reminder {
		if *patch.Reminder {
			p.reminders.enqueue(id)
		} else {
			p.reminders.remove(id)
		}
		ev.Reminder = *patch.Reminder
	}

	if patch.touchesSchedule() {
		p.index.reposition(id, key)
	}
	p.history.push(prev)

	p.log.Info(ctx, "event updated", "id", id, "name", ev.Name)
	return *ev, nil
}

// DeleteEvent removes the event from every structure. Its history snapshots
// stay; undoing one later reports not found rather than resurrecting the id.
func (p *Planner) DeleteEvent(ctx context.Context, id int64) error {
	ev, ok := p.store.get(id)
	if !ok {
		p.log.Warn(ctx, "event not found", "id", id)
		return fmt.Errorf("event %d: %w", id, common.ErrorNotFound)
	}

	p.index.delete(id)
	p.store.delete(id)
	p.tasks.drop(id)
	p.reminders.remove(id)

	p.log.Info(ctx, "event deleted", "id", id, "name", ev.Name)
	return nil
}

// Event returns a copy of the event with the given id.
func (p *Planner) Event(ctx context.Context, id int64) (Event, error) {
	ev, ok := p.store.get(id)
	if !ok {
		return Event{}, fmt.Errorf("event %d: %w", id, common.ErrorNotFound)
	}
	return *ev, nil
}

// Events walks the time index in order and returns copies of the events the
// filter admits, judged against now.
func (p *Planner) Events(ctx context.Context, filter Filter, now time.Time) []Event {
	ids := p.index.traverse(filter, now)
	out := make([]Event, 0, len(ids))
	for _, id := range ids {
		if ev, ok := p.store.get(id); ok {
			out = append(out, *ev)
		}
	}
	p.log.Debug(ctx, "events listed", "filter", filter, "count", len(out))
	return out
}

// Undo pops the most recent snapshot and restores its field values onto the
// live event, repositioning the index when the timestamp differs and keeping
// the reminder queue in step with the restored flag. A snapshot whose id is
// no longer live reports not found; undo never reverses a delete.
func (p *Planner) Undo(ctx context.Context) (Event, error) {
	snap, ok := p.history.pop()
	if !ok {
		p.log.Warn(ctx, "undo requested with empty history")
		return Event{}, common.ErrorEmptyHistory
	}

	live, ok := p.store.get(snap.ID)
	if !ok {
		p.log.Warn(ctx, "undo target no longer exists", "id", snap.ID)
		return Event{}, fmt.Errorf("event %d: %w", snap.ID, common.ErrorNotFound)
	}

	liveKey, err := live.Key()
	if err != nil {
		return Event{}, err
	}
	snapKey, err := ParseTimeKey(snap.Date, snap.Time)
	if err != nil {
		return Event{}, err
	}

	if snap.Reminder != live.Reminder {
		if snap.Reminder {
			p.reminders.enqueue(snap.ID)
		} else {
			p.reminders.remove(snap.ID)
		}
	}

	*live = snap
	if !snapKey.Equal(liveKey) {
		p.index.reposition(snap.ID, snapKey)
	}

	p.log.Info(ctx, "event restored", "id", snap.ID, "name", snap.Name)
	return snap, nil
}

// History returns the undo stack's snapshots, oldest first.
func (p *Planner) History(ctx context.Context) []Event {
	return p.history.list()
}

// AddTask appends a checklist entry to a live event.
func (p *Planner) AddTask(ctx context.Context, id int64, text string) error {
	if !p.store.has(id) {
		p.log.Warn(ctx, "event not found", "id", id)
		return fmt.Errorf("event %d: %w", id, common.ErrorNotFound)
	}
	p.tasks.add(id, text)
	p.log.Info(ctx, "task added", "id", id, "task", text)
	return nil
}

// RemoveTask deletes the first task whose text matches exactly.
func (p *Planner) RemoveTask(ctx context.Context, id int64, text string) error {
	if !p.store.has(id) {
		p.log.Warn(ctx, "event not found", "id", id)
		return fmt.Errorf("event %d: %w", id, common.ErrorNotFound)
	}
	if !p.tasks.remove(id, text) {
		p.log.Warn(ctx, "task not found", "id", id, "task", text)
		return fmt.Errorf("task %q: %w", text, common.ErrorNotFound)
	}
	p.log.Info(ctx, "task removed", "id", id, "task", text)
	return nil
}

// CompleteTask marks the first task whose text matches exactly as done.
func (p *Planner) CompleteTask(ctx context.Context, id int64, text string) error {
	if !p.store.has(id) {
		p.log.Warn(ctx, "event not found", "id", id)
		return fmt.Errorf("event %d: %w", id, common.ErrorNotFound)
	}
	if !p.tasks.complete(id, text) {
		p.log.Warn(ctx, "task not found", "id", id, "task", text)
		return fmt.Errorf("task %q: %w", text, common.ErrorNotFound)
	}
	p.log.Info(ctx, "task completed", "id", id, "task", text)
	return nil
}

// Tasks returns the event's checklist in insertion order.
func (p *Planner) Tasks(ctx context.Context, id int64) ([]Task, error) {
	if !p.store.has(id) {
		return nil, fmt.Errorf("event %d: %w", id, common.ErrorNotFound)
	}
	return p.tasks.list(id), nil
}

// SweepReminders fires every queued reminder whose event starts at or before
// now plus the configured lead, removes them from the queue and returns the
// fired events. Events left queued keep their order; a fired reminder never
// fires again unless the flag is re-set.
func (p *Planner) SweepReminders(ctx context.Context, now time.Time) []Event {
	threshold := now.Add(p.lead)
	ids := p.reminders.sweep(func(id int64) bool {
		ev, ok := p.store.get(id)
		if !ok {
			return true
		}
		key, err := ev.Key()
		if err != nil {
			return false
		}
		return !key.After(threshold)
	})

	fired := make([]Event, 0, len(ids))
	for _, id := range ids {
		if ev, ok := p.store.get(id); ok {
			fired = append(fired, *ev)
			p.log.Info(ctx, "reminder fired", "id", ev.ID, "name", ev.Name, "date", ev.Date, "time", ev.Time)
		}
	}
	p.log.Info(ctx, "reminders processed", "fired", len(fired), "remaining", p.reminders.len())
	return fired
}

// PendingReminders returns the queued events in FIFO order.
func (p *Planner) PendingReminders(ctx context.Context) []Event {
	ids := p.reminders.pending()
	out := make([]Event, 0, len(ids))
	for _, id := range ids {
		if ev, ok := p.store.get(id); ok {
			out = append(out, *ev)
		}
	}
	return out
}
