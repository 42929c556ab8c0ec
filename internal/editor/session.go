package editor

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"mapdraw/internal/mapstore"
	"mapdraw/internal/pubsub"
	"mapdraw/internal/settings"
)

// NewMapName is the name given to maps created by opening the editor
// without an id.
const NewMapName = "New Map"

// Session is one editing visit to a map. It owns the store and settings
// subscriptions that live as long as the editor is open.
type Session struct {
	*Controller

	store    *mapstore.Store
	settings *settings.Store
	subs     []pubsub.Subscription
	ended    bool
	closed   bool
	log      *logrus.Entry
}

// Open starts editing. With id nil a new map is created; an id the store
// does not know yields mapstore.ErrNotFound and the caller should go back to
// the list. redraw runs on every change that affects the canvas, including
// settings changes.
func Open(store *mapstore.Store, cfg *settings.Store, id *int, redraw func(), log *logrus.Entry) (*Session, error) {
	var m mapstore.Map
	if id == nil {
		m = store.Create(NewMapName)
	} else {
		got, err := store.Get(*id)
		if err != nil {
			return nil, fmt.Errorf("open editor: %w", err)
		}
		m = got
	}
	if redraw == nil {
		redraw = func() {}
	}

	s := &Session{
		Controller: NewController(store, m, func() int { return cfg.Get().GridSize }, redraw),
		store:      store,
		settings:   cfg,
	}
	if log != nil {
		s.log = log.WithField("map_id", m.ID)
		s.Controller.SetLogger(log)
	} else {
		s.log = s.Controller.log
	}

	store.SetActive(&m)
	s.subs = append(s.subs,
		cfg.Subscribe(func(settings.Settings) { s.Controller.Refresh() }),
		store.SubscribeActive(func(a *mapstore.Map) {
			if a == nil || a.ID != m.ID {
				s.ended = true
			}
		}),
	)
	s.log.Info("editor opened")
	return s, nil
}

// View returns the render parameters from the current settings.
func (s *Session) View() View { return ViewOf(s.settings.Get()) }

// Render draws the working map onto c.
func (s *Session) Render(c Canvas) { Redraw(c, s.Points(), s.View()) }

// Ended reports that the edited map stopped being the active map, usually
// because it was deleted.
func (s *Session) Ended() bool { return s.ended }

// Close releases the subscriptions and clears the active map. It is safe to
// call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Controller.EndStroke()
	for _, sub := range s.subs {
		sub.Close()
	}
	s.subs = nil
	if a := s.store.Active(); a != nil && a.ID == s.working.ID {
		s.store.SetActive(nil)
	}
	s.log.Info("editor closed")
}
