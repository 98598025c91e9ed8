package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat("      \n", 2) + "      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenClipsWrites(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(2, 0, "card")
	s.SetColor(-1, 0, 'X', ColorRed)
	s.SetColor(0, 5, 'X', ColorRed)

	if got := s.String(); got != "  ca\n    " {
		t.Errorf("String() = %q", got)
	}
	if s.At(-1, 0) != blank || s.At(9, 9) != blank {
		t.Error("At off screen should return a blank cell")
	}
}

func TestScreenDrawCard(t *testing.T) {
	s := NewScreen(8, 3)
	card := NewRect(1, 0, 6, 3)
	s.DrawBox(card, ColorGreen)
	face := card.Inner()
	s.DrawTextColor(face.X+1, face.Y, "★", ColorYellow)

	want := " ┌────┐ \n" +
		" │ ★  │ \n" +
		" └────┘ "
	if got := s.String(); got != want {
		t.Errorf("card:\n%s\nwant:\n%s", got, want)
	}
	if c := s.At(1, 0); c.Color != ColorGreen {
		t.Errorf("border color = %v, want green", c.Color)
	}
	if c := s.At(3, 1); c.Rune != '★' || c.Color != ColorYellow {
		t.Errorf("face cell = %+v", c)
	}
}

func TestScreenFillAndCenter(t *testing.T) {
	s := NewScreen(10, 3)
	s.Fill(NewRect(0, 0, 10, 3), '.', ColorGray)
	s.DrawTextCentered(1, "WIN", ColorDefault)

	if got := strings.Split(s.String(), "\n")[1]; got != "...WIN...." {
		t.Errorf("middle row = %q", got)
	}

	s.Clear()
	if s.At(0, 0) != blank {
		t.Error("Clear left a cell behind")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink width = %q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after grow width = %q", got)
	}

	s.Resize(0, 0)
	if s.String() != "" {
		t.Error("empty screen should render as empty string")
	}
}
