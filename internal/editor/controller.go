// Package editor turns pointer input into point placements on a map and
// renders a map onto a canvas.
package editor

import (
	"io"

	"github.com/sirupsen/logrus"

	"mapdraw/internal/grid"
	"mapdraw/internal/mapstore"
)

// State is the stroke state of a controller.
type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Updater commits a map. *mapstore.Store satisfies it.
type Updater interface {
	Update(m mapstore.Map) bool
}

// Controller edits one map. It keeps a working copy, changes it in place
// and commits every change through Updater.Update.
type Controller struct {
	maps     Updater
	gridSize func() int
	redraw   func()
	log      *logrus.Entry

	working mapstore.Map
	tool    mapstore.PointType
	state   State
	last    *mapstore.Point
}

// NewController edits m. gridSize is read on every placement so a settings
// change applies to the next point; redraw may be nil.
func NewController(maps Updater, m mapstore.Map, gridSize func() int, redraw func()) *Controller {
	if redraw == nil {
		redraw = func() {}
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Controller{
		maps:     maps,
		gridSize: gridSize,
		redraw:   redraw,
		log:      logrus.NewEntry(l),
		working:  m.Clone(),
		tool:     mapstore.Path,
	}
}

// SetLogger replaces the discard logger.
func (c *Controller) SetLogger(log *logrus.Entry) {
	c.log = log.WithField("map_id", c.working.ID)
}

// Map returns a copy of the working map.
func (c *Controller) Map() mapstore.Map { return c.working.Clone() }

// Points returns the working points without copying; callers must not
// modify the slice.
func (c *Controller) Points() []mapstore.Point { return c.working.Points }

func (c *Controller) Tool() mapstore.PointType { return c.tool }

func (c *Controller) State() State { return c.state }

// Last is the most recently placed point of the current stroke.
func (c *Controller) Last() (mapstore.Point, bool) {
	if c.last == nil {
		return mapstore.Point{}, false
	}
	return *c.last, true
}

// SelectTool sets the type of future points. It never changes the map.
func (c *Controller) SelectTool(t mapstore.PointType) {
	if !t.Valid() {
		return
	}
	c.tool = t
}

// Snap aligns a raw canvas position to the current grid.
func (c *Controller) Snap(x, y float64) (int, int) {
	return grid.SnapXY(x, y, c.gridSize())
}

// BeginStroke places a point of the current tool at the snapped position
// and starts a stroke. Start and end points replace any earlier point of the
// same type.
func (c *Controller) BeginStroke(x, y float64) {
	gx, gy := c.Snap(x, y)
	p := mapstore.Point{X: gx, Y: gy, Type: c.tool}
	c.state = Drawing
	if c.tool.Unique() {
		c.removeType(c.tool)
	}
	c.place(p)
}

// ExtendStroke continues a path stroke. Other tools place one point per
// stroke, so movement is ignored for them.
func (c *Controller) ExtendStroke(x, y float64) {
	if c.state != Drawing || c.last == nil || c.tool != mapstore.Path {
		return
	}
	gx, gy := c.Snap(x, y)
	if gx == c.last.X && gy == c.last.Y {
		return
	}
	c.place(mapstore.Point{X: gx, Y: gy, Type: c.tool})
}

// EndStroke finishes the current stroke.
func (c *Controller) EndStroke() {
	c.state = Idle
	c.last = nil
}

// LeaveSurface handles the pointer leaving the canvas; it ends the stroke.
func (c *Controller) LeaveSurface() { c.EndStroke() }

// Clear removes every point, cancelling any stroke in progress.
func (c *Controller) Clear() {
	c.EndStroke()
	c.working.Points = []mapstore.Point{}
	c.commit()
	c.log.Debug("map cleared")
	c.redraw()
}

// Rename changes the map name.
func (c *Controller) Rename(name string) {
	c.working.Name = name
	c.commit()
}

// Save commits the working copy. It reports false if the map no longer
// exists in the store.
func (c *Controller) Save() bool {
	c.EndStroke()
	return c.commit()
}

// Refresh asks for a redraw without touching the map.
func (c *Controller) Refresh() { c.redraw() }

func (c *Controller) place(p mapstore.Point) {
	c.working.Points = append(c.working.Points, p)
	c.commit()
	c.last = &p
	c.log.WithField("point", p.String()).Debug("point placed")
	c.redraw()
}

func (c *Controller) removeType(t mapstore.PointType) {
	kept := c.working.Points[:0:0]
	for _, p := range c.working.Points {
		if p.Type != t {
			kept = append(kept, p)
		}
	}
	c.working.Points = kept
}

func (c *Controller) commit() bool {
	return c.maps.Update(c.working)
}
