package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Canvas space is measured in pixels. Each braille dot covers dotPx pixels
// in both directions and a terminal cell holds 2x4 dots, so a cell is
// cellPxW x cellPxH pixels.
const (
	dotPx   = 5
	cellPxW = 2 * dotPx
	cellPxH = 4 * dotPx
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotBit is the braille mask bit for a dot inside a cell.
func dotBit(rx, ry int) uint8 {
	if rx == 0 {
		switch ry {
		case 0:
			return 0x01
		case 1:
			return 0x02
		case 2:
			return 0x04
		case 3:
			return 0x40
		}
	} else {
		switch ry {
		case 0:
			return 0x08
		case 1:
			return 0x10
		case 2:
			return 0x20
		case 3:
			return 0x80
		}
	}
	return 0
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) and reports
// whether it fell inside the buffer.
func (b *brailleBuf) setPixel(mx, my int) bool {
	if mx < 0 || my < 0 || mx/2 >= b.w || my/4 >= b.h {
		return false
	}
	b.m[my/4][mx/2] |= dotBit(mx%2, my%4)
	return true
}

func (b *brailleBuf) pixel(mx, my int) bool {
	if mx < 0 || my < 0 || mx/2 >= b.w || my/4 >= b.h {
		return false
	}
	return b.m[my/4][mx/2]&dotBit(mx%2, my%4) != 0
}

// drawLineMicro draws a line on the microgrid using Bresenham and calls
// plot for every dot it sets.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, plot func(mx, my int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if b.setPixel(x0, y0) && plot != nil {
			plot(x0, y0)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) glyph(cx, cy int) rune {
	mask := b.m[cy][cx]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.glyph(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// layer ranks what coloured a cell; higher layers keep their colour.
type layer uint8

const (
	layerNone layer = iota
	layerGrid
	layerStroke
	layerPoint
)

// brailleCanvas is an editor.Canvas drawn with braille dots and one
// foreground colour per terminal cell.
type brailleCanvas struct {
	buf    *brailleBuf
	color  [][]string
	rank   [][]layer
	bg     string
	cw, ch int // cells
}

func newBrailleCanvas(cw, ch int, bg string) *brailleCanvas {
	c := &brailleCanvas{cw: cw, ch: ch, bg: bg}
	c.Clear()
	return c
}

// Size is the canvas extent in pixels.
func (c *brailleCanvas) Size() (int, int) { return c.cw * cellPxW, c.ch * cellPxH }

func (c *brailleCanvas) Clear() {
	c.buf = newBrailleBuf(c.cw, c.ch)
	c.color = make([][]string, c.ch)
	c.rank = make([][]layer, c.ch)
	for y := range c.color {
		c.color[y] = make([]string, c.cw)
		c.rank[y] = make([]layer, c.cw)
	}
}

func (c *brailleCanvas) paint(mx, my int, col string, l layer) {
	cx, cy := mx/2, my/4
	if cx < 0 || cy < 0 || cx >= c.cw || cy >= c.ch {
		return
	}
	if l >= c.rank[cy][cx] {
		c.rank[cy][cx] = l
		c.color[cy][cx] = col
	}
}

func (c *brailleCanvas) Dot(x, y int, col string) {
	mx, my := pxToDot(x), pxToDot(y)
	if c.buf.setPixel(mx, my) {
		c.paint(mx, my, col, layerGrid)
	}
}

// Disk fills every dot whose centre lies within r pixels of (x, y). The
// centre dot is always set so small radii stay visible.
func (c *brailleCanvas) Disk(x, y, r int, col string) {
	cmx, cmy := pxToDot(x), pxToDot(y)
	if c.buf.setPixel(cmx, cmy) {
		c.paint(cmx, cmy, col, layerPoint)
	}
	rd := r/dotPx + 1
	for my := cmy - rd; my <= cmy+rd; my++ {
		for mx := cmx - rd; mx <= cmx+rd; mx++ {
			dx := mx*dotPx - x
			dy := my*dotPx - y
			if dx*dx+dy*dy > r*r {
				continue
			}
			if c.buf.setPixel(mx, my) {
				c.paint(mx, my, col, layerPoint)
			}
		}
	}
}

func (c *brailleCanvas) Line(x0, y0, x1, y1 int, col string) {
	c.buf.drawLineMicro(pxToDot(x0), pxToDot(y0), pxToDot(x1), pxToDot(y1), func(mx, my int) {
		c.paint(mx, my, col, layerStroke)
	})
}

// String renders the canvas, one styled run per colour change.
func (c *brailleCanvas) String() string {
	base := lipgloss.NewStyle()
	if c.bg != "" {
		base = base.Background(lipgloss.Color(c.bg))
	}
	rows := c.buf.toLines()
	lines := make([]string, c.ch)
	for y := 0; y < c.ch; y++ {
		glyphs := []rune(rows[y])
		var sb strings.Builder
		var run []rune
		runCol := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			st := base
			if runCol != "" {
				st = st.Foreground(lipgloss.Color(runCol))
			}
			sb.WriteString(st.Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < c.cw; x++ {
			col := c.color[y][x]
			if col != runCol {
				flush()
				runCol = col
			}
			run = append(run, glyphs[x])
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// pxToDot maps a pixel coordinate to the braille dot containing it,
// rounding to the nearest dot.
func pxToDot(v int) int {
	if v < 0 {
		return -((-v + dotPx/2) / dotPx)
	}
	return (v + dotPx/2) / dotPx
}
