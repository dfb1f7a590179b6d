package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '●', ColorYellow)

	cell := s.GetCell(3, 2)
	if cell.Rune != '●' {
		t.Errorf("GetCell rune = %q, expected '●'", cell.Rune)
	}
	if cell.Color != ColorYellow {
		t.Errorf("GetCell color = %v, expected ColorYellow", cell.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(0, 0, 4, 3, '█')
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("cell (%d,%d) not cleared: %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	expected := "abc\nde "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestScreenVLine(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawVLine(2, 1, 3, '█', ColorGreen)

	for y := 1; y <= 3; y++ {
		if s.Get(2, y) != '█' {
			t.Errorf("VLine missing at y=%d", y)
		}
	}
	if s.Get(2, 0) != ' ' || s.Get(2, 4) != ' ' {
		t.Error("VLine drew outside its range")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("Resize gave %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if strings.ContainsFunc(s.String(), func(r rune) bool { return r != ' ' && r != '\n' }) {
		t.Error("resized screen should be blank")
	}
}
