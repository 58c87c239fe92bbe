package window

import "github.com/gdamore/tcell/v2"

// Point represents a 2D surface coordinate, origin top-left, y down.
type Point struct {
	X, Y int
}

// Cell is a single drawable unit of the surface.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Surface is the drawable target an engine renders into: a 2D grid of
// cells with dirty tracking so a flush only touches what changed.
//
// A Surface belongs to exactly one Window and lives as long as it does;
// resizes reallocate the grid in place rather than producing a new handle.
// Not safe for concurrent use; the loop goroutine owns it.
type Surface struct {
	width  int
	height int
	lines  [][]Cell
	dirty  map[Point]bool
}

// NewSurface creates a blank surface with the given dimensions.
func NewSurface(width, height int) *Surface {
	s := &Surface{dirty: make(map[Point]bool)}
	s.alloc(width, height)
	return s
}

func (s *Surface) alloc(width, height int) {
	lines := make([][]Cell, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			lines[y][x] = Cell{Rune: ' ', Style: tcell.StyleDefault}
		}
	}
	s.width = width
	s.height = height
	s.lines = lines
}

// Width returns the surface width in cells.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in cells.
func (s *Surface) Height() int {
	return s.height
}

// Contains reports whether the point lies inside the surface.
func (s *Surface) Contains(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell writes one cell and marks it dirty. Out-of-bounds writes are
// ignored so engines can draw without clipping themselves.
func (s *Surface) SetCell(x, y int, r rune, style tcell.Style) {
	if !s.Contains(x, y) {
		return
	}
	c := Cell{Rune: r, Style: style}
	if s.lines[y][x] == c {
		return
	}
	s.lines[y][x] = c
	s.dirty[Point{x, y}] = true
}

// Cell returns the cell at x,y and whether the position is in bounds.
func (s *Surface) Cell(x, y int) (Cell, bool) {
	if !s.Contains(x, y) {
		return Cell{}, false
	}
	return s.lines[y][x], true
}

// SetString writes a run of cells starting at x,y, clipped to the surface.
func (s *Surface) SetString(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetCell(x, y, r, style)
		x++
	}
}

// Fill sets every cell to r with the given style.
func (s *Surface) Fill(r rune, style tcell.Style) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.SetCell(x, y, r, style)
		}
	}
}

// Clear blanks the surface.
func (s *Surface) Clear() {
	s.Fill(' ', tcell.StyleDefault)
}

// Resize reallocates the grid, preserving content where it still fits.
// Everything is marked dirty so the next flush repaints in full.
func (s *Surface) Resize(width, height int) {
	old := s.lines
	oldW, oldH := s.width, s.height
	s.alloc(width, height)
	for y := 0; y < height && y < oldH; y++ {
		for x := 0; x < width && x < oldW; x++ {
			s.lines[y][x] = old[y][x]
		}
	}
	s.markAllDirty()
}

func (s *Surface) markAllDirty() {
	s.dirty = make(map[Point]bool, s.width*s.height)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.dirty[Point{x, y}] = true
		}
	}
}

// Flush blits dirty cells to the screen and shows the result.
func (s *Surface) Flush(screen tcell.Screen) {
	for p := range s.dirty {
		c := s.lines[p.Y][p.X]
		screen.SetContent(p.X, p.Y, c.Rune, nil, c.Style)
	}
	s.dirty = make(map[Point]bool)
	screen.Show()
}
