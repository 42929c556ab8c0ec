package settings

import (
	"encoding/json"
	"io"

	"github.com/sirupsen/logrus"

	"mapdraw/internal/pubsub"
)

// StorageKey is the key the settings blob lives under.
const StorageKey = "rpi5_map_drawer_settings"

// Subscription releases a settings subscription.
type Subscription = pubsub.Subscription

// Store holds the process-wide settings. Every update is published and
// written through to the KV immediately.
type Store struct {
	kv   KV
	cur  Settings
	subs pubsub.Topic[Settings]
	log  *logrus.Entry
}

// NewStore returns a store holding the defaults. Call Load to read the blob.
func NewStore(kv KV, log *logrus.Entry) *Store {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Store{kv: kv, cur: Defaults(), log: log}
}

// Load reads the blob and overlays it on the defaults. Fields missing from
// the blob keep their default; values are not re-validated. Read or decode
// failures are logged and leave the current settings in place.
func (s *Store) Load() Settings {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.log.WithError(err).Error("failed to read settings")
		return s.cur
	}
	if !ok || raw == "" {
		return s.cur
	}
	next := Defaults()
	if err := json.Unmarshal([]byte(raw), &next); err != nil {
		s.log.WithError(err).Error("failed to parse stored settings")
		return s.cur
	}
	s.cur = next
	s.log.WithFields(logrus.Fields{
		"grid_size":  next.GridSize,
		"point_size": next.PointSize,
		"theme":      next.Theme,
	}).Info("settings loaded")
	s.subs.Publish(s.cur)
	return s.cur
}

// Get returns the current settings.
func (s *Store) Get() Settings { return s.cur }

// Update replaces the settings, notifies subscribers and persists.
func (s *Store) Update(next Settings) {
	s.cur = next
	s.subs.Publish(next)
	s.save(next)
}

// Patch applies fn to a copy of the current settings and stores the result.
func (s *Store) Patch(fn func(*Settings)) {
	next := s.cur
	fn(&next)
	s.Update(next)
}

// Subscribe calls fn with the current settings and after every change.
func (s *Store) Subscribe(fn func(Settings)) Subscription {
	sub := s.subs.Subscribe(fn)
	fn(s.cur)
	return sub
}

func (s *Store) save(v Settings) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.WithError(err).Error("failed to encode settings")
		return
	}
	if err := s.kv.Set(StorageKey, string(data)); err != nil {
		s.log.WithError(err).Error("failed to save settings")
		return
	}
	s.log.Debug("settings saved")
}
