package mapfile

import (
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) *Map {
	t.Helper()
	m, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func TestParse_WallsFloorsAndOrigin(t *testing.T) {
	m := mustParse(t, "###\n#@#\n###\n")
	if m.Width != 3 || m.Height != 3 {
		t.Fatalf("dims = %dx%d, want 3x3", m.Width, m.Height)
	}
	if len(m.Origins) != 1 || m.Origins[0] != (Point{X: 1, Y: 1}) {
		t.Fatalf("Origins = %v, want [{1 1}]", m.Origins)
	}
	if !m.Transparent(1, 1) {
		t.Error("origin cell must be transparent")
	}
	if m.Transparent(0, 0) {
		t.Error("'#' cell must be opaque")
	}
}

func TestParse_WidestLineSetsWidth(t *testing.T) {
	m := mustParse(t, "..\n....\n.\n")
	if m.Width != 4 {
		t.Fatalf("Width = %d, want 4 (widest line)", m.Width)
	}
	if m.Height != 3 {
		t.Fatalf("Height = %d, want 3", m.Height)
	}
	// Short lines pad with transparent cells.
	if !m.Transparent(3, 0) {
		t.Error("padded cell on short line must be transparent")
	}
}

func TestParse_TrailingBlankLinesStripped(t *testing.T) {
	m := mustParse(t, "...\n...\n\n\n")
	if m.Height != 2 {
		t.Fatalf("Height = %d, want 2 after stripping trailing blank lines", m.Height)
	}
}

func TestParse_MultipleOriginsInOrder(t *testing.T) {
	m := mustParse(t, "@..\n..@\n")
	want := []Point{{X: 0, Y: 0}, {X: 2, Y: 1}}
	if len(m.Origins) != 2 || m.Origins[0] != want[0] || m.Origins[1] != want[1] {
		t.Fatalf("Origins = %v, want %v", m.Origins, want)
	}
}

func TestParse_EmptyInputErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	if err == nil {
		t.Fatal("Parse(empty) should error")
	}
}

func TestMap_TransparentOutOfBoundsIsFalse(t *testing.T) {
	m := mustParse(t, "...\n...\n")
	coords := [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}}
	for _, c := range coords {
		if m.Transparent(c[0], c[1]) {
			t.Errorf("Transparent(%d,%d) = true, want false out of bounds", c[0], c[1])
		}
	}
}

func TestMap_GridMatchesTransparent(t *testing.T) {
	m := mustParse(t, "#.#\n...\n")
	g := m.Grid()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if g.GetBool(x, y) != m.Transparent(x, y) {
				t.Errorf("Grid().GetBool(%d,%d) != Transparent(%d,%d)", x, y, x, y)
			}
		}
	}
	// The grid view is read-only; writes through it must be silently dropped.
	g.SetBool(0, 0, true)
	if g.GetBool(0, 0) {
		t.Error("write through the read-only map grid must be a no-op")
	}
}
