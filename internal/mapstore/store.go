// Package mapstore owns the collection of maps, their order, and which map
// is open in the editor.
package mapstore

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"mapdraw/internal/pubsub"
)

// Subscription releases a store subscription.
type Subscription = pubsub.Subscription

// Store is the authoritative in-memory map collection. Callers always get
// copies; the only way to change a map is to hand a modified copy back to
// Update.
type Store struct {
	maps   []Map
	active *Map
	// highest id ever handed out, so ids are not reused after a delete
	lastID int

	list    pubsub.Topic[[]Map]
	current pubsub.Topic[*Map]

	now func() time.Time
	log *logrus.Entry
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a logger; mutations are logged at debug level.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Store) { s.log = log }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.log = logrus.NewEntry(l)
	}
	return s
}

// Seed appends n sample maps named "Map 1".."Map n", marked selected.
func (s *Store) Seed(n int) {
	for i := 0; i < n; i++ {
		now := s.now()
		s.lastID = s.nextID()
		s.maps = append(s.maps, Map{
			ID:        s.lastID,
			Name:      fmt.Sprintf("Map %d", s.lastID),
			Selected:  true,
			Points:    []Point{},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	if n > 0 {
		s.log.WithField("count", n).Debug("seeded sample maps")
		s.publish()
	}
}

// List returns the maps in display order.
func (s *Store) List() []Map { return cloneAll(s.maps) }

// Len is the number of maps held.
func (s *Store) Len() int { return len(s.maps) }

// SubscribeList calls fn with the current list right away and again after
// every mutation. Each subscriber gets its own copy of the list.
func (s *Store) SubscribeList(fn func([]Map)) Subscription {
	sub := s.list.Subscribe(func(ms []Map) { fn(cloneAll(ms)) })
	fn(s.List())
	return sub
}

// Get returns a copy of the map with the given id.
func (s *Store) Get(id int) (Map, error) {
	i := s.index(id)
	if i < 0 {
		return Map{}, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return s.maps[i].Clone(), nil
}

// Create appends a new empty map and returns it.
func (s *Store) Create(name string) Map {
	now := s.now()
	s.lastID = s.nextID()
	m := Map{
		ID:        s.lastID,
		Name:      name,
		Points:    []Point{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.maps = append(s.maps, m)
	s.log.WithFields(logrus.Fields{"map_id": m.ID, "name": name}).Debug("map created")
	s.publish()
	return m.Clone()
}

// Update replaces the stored map that has m.ID with a copy of m and stamps
// UpdatedAt. Unknown ids are ignored; the return value says whether
// anything was stored.
func (s *Store) Update(m Map) bool {
	i := s.index(m.ID)
	if i < 0 {
		s.log.WithField("map_id", m.ID).Debug("update ignored: unknown map")
		return false
	}
	c := m.Clone()
	c.CreatedAt = s.maps[i].CreatedAt
	c.UpdatedAt = s.now()
	s.maps[i] = c
	s.log.WithFields(logrus.Fields{"map_id": m.ID, "points": len(c.Points)}).Debug("map updated")
	s.publish()
	if s.active != nil && s.active.ID == c.ID {
		a := c.Clone()
		s.active = &a
		s.publishActive()
	}
	return true
}

// ToggleSelection flips the selected flag of a map.
func (s *Store) ToggleSelection(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.maps[i].Selected = !s.maps[i].Selected
	s.maps[i].UpdatedAt = s.now()
	s.log.WithFields(logrus.Fields{"map_id": id, "selected": s.maps[i].Selected}).Debug("selection toggled")
	s.publish()
	return true
}

// Reorder replaces the stored order with seq. seq is expected to be a
// permutation of the current maps.
func (s *Store) Reorder(seq []Map) {
	s.maps = cloneAll(seq)
	for _, m := range s.maps {
		if m.ID > s.lastID {
			s.lastID = m.ID
		}
	}
	s.log.WithField("count", len(seq)).Debug("maps reordered")
	s.publish()
}

// Move shifts the map at index from to index to, the way a drag and drop in
// the list does. Out of range indexes are ignored.
func (s *Store) Move(from, to int) bool {
	n := len(s.maps)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	seq := s.List()
	m := seq[from]
	seq = append(seq[:from], seq[from+1:]...)
	seq = append(seq[:to], append([]Map{m}, seq[to:]...)...)
	s.Reorder(seq)
	return true
}

// Delete removes a map. Deleting the active map clears it.
func (s *Store) Delete(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.maps = append(s.maps[:i:i], s.maps[i+1:]...)
	s.log.WithField("map_id", id).Debug("map deleted")
	s.publish()
	if s.active != nil && s.active.ID == id {
		s.active = nil
		s.publishActive()
	}
	return true
}

// SetActive records which map is being edited; nil clears it.
func (s *Store) SetActive(m *Map) {
	if m == nil {
		s.active = nil
	} else {
		c := m.Clone()
		s.active = &c
	}
	s.publishActive()
}

// Active returns a copy of the active map, or nil.
func (s *Store) Active() *Map {
	if s.active == nil {
		return nil
	}
	c := s.active.Clone()
	return &c
}

// SubscribeActive calls fn with the active map right away and whenever it
// changes. fn receives nil once no map is active.
func (s *Store) SubscribeActive(fn func(*Map)) Subscription {
	sub := s.current.Subscribe(fn)
	fn(s.Active())
	return sub
}

func (s *Store) nextID() int {
	id := s.lastID
	for _, m := range s.maps {
		if m.ID > id {
			id = m.ID
		}
	}
	return id + 1
}

func (s *Store) index(id int) int {
	for i, m := range s.maps {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) publish() { s.list.Publish(s.List()) }

func (s *Store) publishActive() { s.current.Publish(s.Active()) }
