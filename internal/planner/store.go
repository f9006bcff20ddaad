package planner

// eventStore is the arena that owns every live Event. All other structures
// refer to events by id and resolve through the store.
type eventStore struct {
	events map[int64]*Event
	// nextID grows monotonically and survives deletes; ids are never reused.
	nextID int64
}

func newEventStore() *eventStore {
	return &eventStore{
		events: make(map[int64]*Event),
		nextID: 1,
	}
}

// create assigns the next id and stores the event. Time-key validation is the
// caller's job and must happen first: a rejected create never touches the
// counter.
func (s *eventStore) create(p EventParams) *Event {
	ev := &Event{
		ID:          s.nextID,
		Name:        p.Name,
		Date:        p.Date,
		Time:        p.Time,
		Reminder:    p.Reminder,
		Location:    p.Location,
		Description: p.Description,
		Attendees:   p.Attendees,
	}
	s.events[ev.ID] = ev
	s.nextID++
	return ev
}

func (s *eventStore) get(id int64) (*Event, bool) {
	ev, ok := s.events[id]
	return ev, ok
}

func (s *eventStore) has(id int64) bool {
	_, ok := s.events[id]
	return ok
}

func (s *eventStore) delete(id int64) bool {
	if _, ok := s.events[id]; !ok {
		return false
	}
	delete(s.events, id)
	return true
}

func (s *eventStore) len() int {
	return len(s.events)
}
