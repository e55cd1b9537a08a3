package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0, 0) = %q, expected space", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '●', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '●' {
		t.Errorf("GetCell rune = %q, expected '●'", cell.Rune)
	}
	if cell.Color != ColorRed {
		t.Errorf("GetCell color = %v, expected ColorRed", cell.Color)
	}

	// Plain Set leaves the default color
	s.Set(2, 1, 'x')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %v", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// These should not panic
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Out-of-bounds Get should return space, got %q", got)
	}
	if cell := s.GetCell(10, 0); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Out-of-bounds GetCell should return a plain space, got %+v", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, 'X', ColorBlue)
	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", got)
	}

	// Clipped text should not panic
	s.DrawText(18, 1, "clipped")
	if got := s.Get(19, 1); got != 'l' {
		t.Errorf("Get(19, 1) = %q, expected 'l'", got)
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextColored(0, 0, "hi", ColorGreen)

	if c := s.GetCell(0, 0).Color; c != ColorGreen {
		t.Errorf("Colored text color = %v, expected ColorGreen", c)
	}
	if c := s.GetCell(1, 0).Color; c != ColorGreen {
		t.Errorf("Colored text color = %v, expected ColorGreen", c)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 2), '#', ColorYellow)

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != '#' || cell.Color != ColorYellow {
				t.Errorf("Cell (%d, %d) = %+v, expected yellow '#'", x, y, cell)
			}
		}
	}

	// Outside the rect is untouched
	if got := s.Get(5, 2); got != ' ' {
		t.Errorf("Cell outside rect should be space, got %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetCell(3, 3, 'X', ColorRed)

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize dimensions = %dx%d, expected 20x10", s.Width(), s.Height())
	}

	// Content preserved
	cell := s.GetCell(3, 3)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("Resize should preserve content, got %+v", cell)
	}

	// Shrink clips content
	s.Resize(2, 2)
	if got := s.Get(3, 3); got != ' ' {
		t.Errorf("Shrunk screen should clip, got %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	expected := "a  \n  b"
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
