package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapdraw/internal/mapstore"
	"mapdraw/internal/settings"
)

func TestOpenWithoutIDCreatesMap(t *testing.T) {
	store := mapstore.New()
	cfg := settings.NewStore(settings.MemKV{}, nil)

	s, err := Open(store, cfg, nil, nil, nil)
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, 1, store.Len())
	assert.Equal(t, NewMapName, s.Map().Name)
	require.NotNil(t, store.Active())
	assert.Equal(t, s.Map().ID, store.Active().ID)
}

func TestOpenUnknownID(t *testing.T) {
	store := mapstore.New()
	cfg := settings.NewStore(settings.MemKV{}, nil)
	id := 12

	_, err := Open(store, cfg, &id, nil, nil)
	assert.True(t, errors.Is(err, mapstore.ErrNotFound))
	assert.Nil(t, store.Active())
}

func TestSessionUsesLiveGridSize(t *testing.T) {
	store := mapstore.New()
	m := store.Create("a")
	cfg := settings.NewStore(settings.MemKV{}, nil)

	redraws := 0
	s, err := Open(store, cfg, &m.ID, func() { redraws++ }, nil)
	require.NoError(t, err)
	defer s.Close()
	base := redraws

	cfg.Patch(func(v *settings.Settings) { v.GridSize = 50 })
	assert.Equal(t, base+1, redraws, "settings change redraws")

	s.BeginStroke(30, 30)
	s.EndStroke()
	got, _ := store.Get(m.ID)
	assert.Equal(t, []mapstore.Point{{X: 50, Y: 50, Type: mapstore.Path}}, got.Points)
	assert.Equal(t, 50, s.View().GridSize)
}

func TestSessionEndsWhenMapDeleted(t *testing.T) {
	store := mapstore.New()
	m := store.Create("a")
	cfg := settings.NewStore(settings.MemKV{}, nil)

	s, err := Open(store, cfg, &m.ID, nil, nil)
	require.NoError(t, err)
	assert.False(t, s.Ended())

	store.Delete(m.ID)
	assert.True(t, s.Ended())
	s.Close()
	s.Close()
}

func TestSessionCloseReleasesSubscriptions(t *testing.T) {
	store := mapstore.New()
	m := store.Create("a")
	cfg := settings.NewStore(settings.MemKV{}, nil)

	redraws := 0
	s, err := Open(store, cfg, &m.ID, func() { redraws++ }, nil)
	require.NoError(t, err)
	s.Close()
	assert.Nil(t, store.Active())

	before := redraws
	cfg.Patch(func(v *settings.Settings) { v.PointSize = 9 })
	assert.Equal(t, before, redraws)
}

func TestSessionRender(t *testing.T) {
	store := mapstore.New()
	cfg := settings.NewStore(settings.MemKV{}, nil)
	s, err := Open(store, cfg, nil, nil, nil)
	require.NoError(t, err)
	defer s.Close()

	s.BeginStroke(20, 20)
	s.ExtendStroke(40, 20)
	s.EndStroke()

	rec := &recorder{w: 60, h: 40}
	s.Render(rec)
	assert.Len(t, rec.disks, 2)
	assert.Equal(t, []segment{{20, 20, 40, 20}}, rec.lines)
}
