// Package grid converts raw canvas coordinates into grid-aligned ones.
package grid

import "math"

// Snap returns the multiple of cell nearest to raw. Halfway values round up,
// so Snap(10, 20) == 20 and Snap(-10, 20) == 0.
func Snap(raw float64, cell int) int {
	if cell <= 0 {
		return int(math.Floor(raw + 0.5))
	}
	c := float64(cell)
	return int(math.Floor(raw/c+0.5)) * cell
}

// SnapXY snaps both axes with the same cell size.
func SnapXY(x, y float64, cell int) (int, int) {
	return Snap(x, cell), Snap(y, cell)
}

// Aligned reports whether v sits on the grid.
func Aligned(v, cell int) bool {
	if cell <= 0 {
		return true
	}
	return v%cell == 0
}
