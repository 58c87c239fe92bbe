package window

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

// TestSurfaceSetCell verifies in-bounds writes and out-of-bounds clipping.
func TestSurfaceSetCell(t *testing.T) {
	s := NewSurface(10, 5)

	s.SetCell(3, 2, 'x', tcell.StyleDefault)
	c, ok := s.Cell(3, 2)
	if !ok || c.Rune != 'x' {
		t.Errorf("Expected 'x' at (3,2), got %+v ok=%v", c, ok)
	}

	// Out of bounds: ignored, not panicking
	s.SetCell(-1, 0, 'y', tcell.StyleDefault)
	s.SetCell(10, 0, 'y', tcell.StyleDefault)
	s.SetCell(0, 5, 'y', tcell.StyleDefault)

	if _, ok := s.Cell(10, 0); ok {
		t.Error("Expected out-of-bounds Cell to report !ok")
	}
}

// TestSurfaceSetString verifies strings clip at the right edge.
func TestSurfaceSetString(t *testing.T) {
	s := NewSurface(5, 1)
	s.SetString(2, 0, "hello", tcell.StyleDefault)

	c, _ := s.Cell(2, 0)
	if c.Rune != 'h' {
		t.Errorf("Expected 'h' at (2,0), got %q", c.Rune)
	}
	c, _ = s.Cell(4, 0)
	if c.Rune != 'l' {
		t.Errorf("Expected 'l' at (4,0), got %q", c.Rune)
	}
}

// TestSurfaceResizePreservesContent verifies resize keeps what still fits.
func TestSurfaceResizePreservesContent(t *testing.T) {
	s := NewSurface(10, 5)
	s.SetCell(2, 2, 'a', tcell.StyleDefault)
	s.SetCell(9, 4, 'b', tcell.StyleDefault)

	s.Resize(5, 3)
	if s.Width() != 5 || s.Height() != 3 {
		t.Fatalf("Expected 5x3, got %dx%d", s.Width(), s.Height())
	}
	c, ok := s.Cell(2, 2)
	if !ok || c.Rune != 'a' {
		t.Errorf("Expected 'a' preserved at (2,2), got %+v", c)
	}
	if _, ok := s.Cell(9, 4); ok {
		t.Error("Expected (9,4) out of bounds after shrink")
	}

	s.Resize(12, 6)
	c, ok = s.Cell(2, 2)
	if !ok || c.Rune != 'a' {
		t.Errorf("Expected 'a' preserved after grow, got %+v", c)
	}
	c, ok = s.Cell(11, 5)
	if !ok || c.Rune != ' ' {
		t.Errorf("Expected blank new cell, got %+v", c)
	}
}

// TestSurfaceFlush verifies dirty cells reach the screen.
func TestSurfaceFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("sim init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 10)

	s := NewSurface(20, 10)
	s.SetString(1, 1, "ok", tcell.StyleDefault)
	s.Flush(screen)

	r, _, _, _ := screen.GetContent(1, 1)
	if r != 'o' {
		t.Errorf("Expected 'o' on screen at (1,1), got %q", r)
	}
	r, _, _, _ = screen.GetContent(2, 1)
	if r != 'k' {
		t.Errorf("Expected 'k' on screen at (2,1), got %q", r)
	}
}
