package physics

import "sort"

// ActorID is an opaque handle to an actor owned by an ActorManager
type ActorID uint32

// ActorEntry pairs an id with a copy of its actor (snapshot form)
type ActorEntry struct {
	ID    ActorID `msgpack:"id"`
	Actor Actor   `msgpack:"a"`
}

// ActorManager owns every actor. Entities hold ActorIDs, never pointers,
// so one entity can mutate another's body without aliasing its own.
type ActorManager struct {
	nextID ActorID
	actors map[ActorID]*Actor
}

// NewActorManager creates an empty manager; the first id issued is 0
func NewActorManager() *ActorManager {
	return &ActorManager{
		actors: make(map[ActorID]*Actor),
	}
}

// Spawn stores a copy of actor and returns its new id.
// Ids are monotonic; if the counter wraps, ids still live are skipped.
// With all 2^32 ids live it never returns.
func (m *ActorManager) Spawn(actor Actor) ActorID {
	id := m.nextID
	for m.live(id) {
		id++
	}
	m.nextID = id + 1

	stored := actor
	m.actors[id] = &stored
	return id
}

// Actor returns a copy of the actor with the given id
func (m *ActorManager) Actor(id ActorID) (Actor, bool) {
	a, ok := m.actors[id]
	if !ok {
		return Actor{}, false
	}
	return *a, true
}

// ActorMut returns the actor with the given id for in-place mutation.
// The pointer is valid until the actor is despawned.
func (m *ActorManager) ActorMut(id ActorID) (*Actor, bool) {
	a, ok := m.actors[id]
	return a, ok
}

// Despawn removes the actor. Its id is not handed out again by the counter.
func (m *ActorManager) Despawn(id ActorID) bool {
	if !m.live(id) {
		return false
	}
	delete(m.actors, id)
	return true
}

// Len returns the number of live actors
func (m *ActorManager) Len() int {
	return len(m.actors)
}

// NextID returns the id the next Spawn will try first
func (m *ActorManager) NextID() ActorID {
	return m.nextID
}

// IDs returns live ids in ascending order
func (m *ActorManager) IDs() []ActorID {
	ids := make([]ActorID, 0, len(m.actors))
	for id := range m.actors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Entries returns copies of all actors in ascending id order
func (m *ActorManager) Entries() []ActorEntry {
	ids := m.IDs()
	entries := make([]ActorEntry, len(ids))
	for i, id := range ids {
		entries[i] = ActorEntry{ID: id, Actor: *m.actors[id]}
	}
	return entries
}

// Restore replaces the manager's contents with the given entries and counter.
// Pointers obtained from ActorMut before the call are no longer tracked.
func (m *ActorManager) Restore(nextID ActorID, entries []ActorEntry) {
	m.nextID = nextID
	m.actors = make(map[ActorID]*Actor, len(entries))
	for _, e := range entries {
		a := e.Actor
		m.actors[e.ID] = &a
	}
}

// Clone returns a deep copy of the manager
func (m *ActorManager) Clone() *ActorManager {
	c := NewActorManager()
	c.Restore(m.nextID, m.Entries())
	return c
}

func (m *ActorManager) live(id ActorID) bool {
	_, ok := m.actors[id]
	return ok
}
