package tui

// Fixed chrome around the content area.
const (
	headerHeight  = 1
	toolbarHeight = 1
	footerHeight  = 2
)

// layout is the screen split shared by Update (mouse hit testing) and View.
type layout struct {
	width         int
	contentHeight int
	canvasX       int
	canvasY       int
	canvasW       int // cells
	canvasH       int // cells
}

func (m Model) layout() layout {
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	width := max(10, m.width)
	canvasH := contentHeight - toolbarHeight
	if canvasH < 2 {
		canvasH = 2
	}
	return layout{
		width:         width,
		contentHeight: contentHeight,
		canvasX:       0,
		canvasY:       headerHeight + toolbarHeight,
		canvasW:       width,
		canvasH:       canvasH,
	}
}

// canvasCell converts a terminal position to a cell inside the canvas.
func (l layout) canvasCell(x, y int) (int, int, bool) {
	cx, cy := x-l.canvasX, y-l.canvasY
	if cx < 0 || cy < 0 || cx >= l.canvasW || cy >= l.canvasH {
		return 0, 0, false
	}
	return cx, cy, true
}

// cellToCanvas is the pixel a terminal cell stands for: the centre of its
// upper left braille dot quadrant, kept off the rounding midpoint.
func cellToCanvas(cx, cy int) (float64, float64) {
	x := float64(cx*cellPxW) + float64(dotPx)/2
	y := float64(cy*cellPxH) + float64(dotPx)*1.5
	return x, y
}
