package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorBrightRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell(5, 5).Color = %v, expected ColorBrightRed", cell.Color)
	}

	// Out-of-bounds writes are silent, reads return blanks
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(8, 8)
	s.FillRect(NewRect(0, 0, 8, 8), '#', ColorBlue)

	s.Clear()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("after Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello", ColorWhite)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Error("centered text not at expected position")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorGreen)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("FillRect should not affect cells outside the rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {5, 1, '┐'}, {1, 4, '└'}, {5, 4, '┘'},
	}
	for _, c := range corners {
		if got := s.Get(c.x, c.y); got != c.want {
			t.Errorf("corner at (%d, %d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize, dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should survive enlarging, row 0 = %q", s.Row(0))
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len([]rune(row)) != 10 {
		t.Errorf("row length should be 10, got %d", len([]rune(row)))
	}

	if s.Row(-1) != "          " {
		t.Errorf("out-of-bounds row should be spaces, got %q", s.Row(-1))
	}
}
