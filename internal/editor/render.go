package editor

import (
	"mapdraw/internal/mapstore"
	"mapdraw/internal/settings"
)

// Canvas is a drawing surface in canvas coordinates.
type Canvas interface {
	Size() (w, h int)
	Clear()
	Dot(x, y int, color string)
	Disk(x, y, r int, color string)
	Line(x0, y0, x1, y1 int, color string)
}

// View carries the render-time parameters. They come from the live
// settings, so a settings change rescales how stored points are drawn
// without moving them.
type View struct {
	GridSize  int
	PointSize int
	Palette   settings.Palette
}

// ViewOf builds a View from settings.
func ViewOf(s settings.Settings) View {
	return View{
		GridSize:  s.GridSize,
		PointSize: s.PointSize,
		Palette:   settings.PaletteFor(s.Theme),
	}
}

// Redraw paints the grid, every point, then the path polylines.
func Redraw(c Canvas, points []mapstore.Point, v View) {
	c.Clear()
	w, h := c.Size()
	if v.GridSize > 0 {
		for x := 0; x <= w; x += v.GridSize {
			for y := 0; y <= h; y += v.GridSize {
				c.Dot(x, y, v.Palette.Grid)
			}
		}
	}
	for _, p := range points {
		c.Disk(p.X, p.Y, v.PointSize, v.Palette.Color(p.Type))
	}
	for _, run := range PathRuns(points) {
		for i := 1; i < len(run); i++ {
			a, b := run[i-1], run[i]
			c.Line(a.X, a.Y, b.X, b.Y, v.Palette.Stroke)
		}
	}
}

// PathRuns splits points into maximal runs of consecutive path points. Any
// other point type ends the current run. A run may hold a single point, in
// which case no segment is drawn for it.
func PathRuns(points []mapstore.Point) [][]mapstore.Point {
	var runs [][]mapstore.Point
	var cur []mapstore.Point
	for _, p := range points {
		if p.Type != mapstore.Path {
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p)
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// Segments counts the line segments Redraw draws for points.
func Segments(points []mapstore.Point) int {
	n := 0
	for _, run := range PathRuns(points) {
		n += len(run) - 1
	}
	return n
}
