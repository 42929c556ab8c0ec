package mapstore

import (
	"fmt"
	"time"
)

// PointType tags a point with its meaning on the map.
type PointType string

const (
	Path     PointType = "path"
	Obstacle PointType = "obstacle"
	Marker   PointType = "marker"
	Start    PointType = "start"
	End      PointType = "end"
)

// PointTypes lists every point type in tool-bar order.
var PointTypes = []PointType{Path, Obstacle, Marker, Start, End}

// Valid reports whether t is one of the known point types.
func (t PointType) Valid() bool {
	switch t {
	case Path, Obstacle, Marker, Start, End:
		return true
	}
	return false
}

// Unique reports whether a map may hold at most one point of this type.
func (t PointType) Unique() bool { return t == Start || t == End }

// Label is the tool name shown to the user.
func (t PointType) Label() string {
	switch t {
	case Path:
		return "Path"
	case Obstacle:
		return "Obstacle"
	case Marker:
		return "Marker"
	case Start:
		return "Start"
	case End:
		return "End"
	}
	return string(t)
}

// Point is a grid-aligned coordinate in canvas space.
type Point struct {
	X    int       `json:"x"`
	Y    int       `json:"y"`
	Type PointType `json:"type"`
}

func (p Point) String() string { return fmt.Sprintf("%s(%d,%d)", p.Type, p.X, p.Y) }

// Map is a named, ordered collection of points.
type Map struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Selected  bool      `json:"selected"`
	Points    []Point   `json:"points"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Clone returns a copy that shares no point storage with m.
func (m Map) Clone() Map {
	c := m
	if m.Points != nil {
		c.Points = make([]Point, len(m.Points))
		copy(c.Points, m.Points)
	}
	return c
}

// Count returns how many points of type t the map holds.
func (m Map) Count(t PointType) int {
	n := 0
	for _, p := range m.Points {
		if p.Type == t {
			n++
		}
	}
	return n
}

func cloneAll(ms []Map) []Map {
	out := make([]Map, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}
