package line

import "testing"

func assertSeq(t *testing.T, got, want [][2]int, label string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length = %d, want %d (%v vs %v)", label, len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: position %d = %v, want %v\nfull: got=%v want=%v", label, i, got[i], want[i], got, want)
		}
	}
}

// S1: Bresenham (0,0)->(11,3).
func TestBresenham_S1(t *testing.T) {
	want := [][2]int{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 1}, {5, 1},
		{6, 2}, {7, 2}, {8, 2}, {9, 2}, {10, 3}, {11, 3},
	}
	got := Line(0, 0, 11, 3)
	assertSeq(t, got, want, "forward")

	reverseWant := make([][2]int, len(want))
	for i, p := range want {
		reverseWant[len(want)-1-i] = p
	}
	gotRev := Line(11, 3, 0, 0)
	assertSeq(t, gotRev, reverseWant, "reverse")
}

func TestBresenham_LenMatchesSequence(t *testing.T) {
	b := NewBresenham(0, 0, 11, 3)
	if b.Len() != 12 {
		t.Errorf("Len() = %d, want 12", b.Len())
	}
	got := Line(0, 0, 11, 3)
	if len(got) != b.Len() {
		t.Errorf("sequence length %d != Len() %d", len(got), b.Len())
	}
}

// Universal invariant 6: reversed traversal is a set-equal reversal.
func TestBresenham_ReversalSetEquality(t *testing.T) {
	cases := [][4]int{{0, 0, 11, 3}, {5, 5, -3, 8}, {0, 0, 0, 5}, {0, 0, 5, 0}, {2, 2, 2, 2}}
	for _, c := range cases {
		fwd := Line(c[0], c[1], c[2], c[3])
		rev := Line(c[2], c[3], c[0], c[1])
		if len(fwd) != len(rev) {
			t.Fatalf("case %v: length mismatch %d vs %d", c, len(fwd), len(rev))
		}
		seen := map[[2]int]bool{}
		for _, p := range fwd {
			seen[p] = true
		}
		for _, p := range rev {
			if !seen[p] {
				t.Fatalf("case %v: reverse point %v not present in forward set", c, p)
			}
		}
	}
}

func TestBresenham_DegenerateSamePoint(t *testing.T) {
	got := Line(4, 4, 4, 4)
	assertSeq(t, got, [][2]int{{4, 4}}, "degenerate")
}

// S2: DDA (0,0)->(11,3) matches Bresenham S1.
func TestDDA_S2(t *testing.T) {
	want := [][2]int{
		{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 1}, {5, 1},
		{6, 2}, {7, 2}, {8, 2}, {9, 2}, {10, 3}, {11, 3},
	}
	got := DDA(0, 0, 11, 3, nil)
	assertSeq(t, got, want, "DDA")
}

// Universal invariant 7.
func TestDDACount(t *testing.T) {
	cases := []struct {
		bx, by, ex, ey float64
		want           int
	}{
		{0, 0, 11, 3, 12},
		{0, 0, 0, 0, 1},
		{0.9, 0.9, 3.1, 0.1, 4}, // floor(3.1)-floor(0.9)=3-0=3, floor(0.1)-floor(0.9)=0-0=0 -> max 3 -> count 4
	}
	for _, c := range cases {
		got := DDACount(c.bx, c.by, c.ex, c.ey)
		if got != c.want {
			t.Errorf("DDACount(%v,%v,%v,%v) = %d, want %d", c.bx, c.by, c.ex, c.ey, got, c.want)
		}
	}
}

func TestDDA_ZeroLengthEmitsOrigin(t *testing.T) {
	got := DDA(2.5, 3.5, 2.5, 3.5, nil)
	assertSeq(t, got, [][2]int{{3, 4}}, "zero-length")
}

func TestDDA_TwoPassBufferSizing(t *testing.T) {
	n := DDACount(0, 0, 11, 3)
	buf := make([][2]int, n)
	got := DDA(0, 0, 11, 3, buf)
	if len(got) != n {
		t.Fatalf("filled buffer length = %d, want %d", len(got), n)
	}
}

func TestDDA_SmallerBufferTruncates(t *testing.T) {
	buf := make([][2]int, 3)
	got := DDA(0, 0, 11, 3, buf)
	full := DDA(0, 0, 11, 3, nil)
	assertSeq(t, got, full[:3], "truncated")
}

// S3: Orthogonal DDA (0,0)->(11,3).
func TestOrthogonal_S3(t *testing.T) {
	want := [][2]int{
		{0, 0}, {1, 0}, {2, 0}, {2, 1}, {3, 1}, {4, 1}, {5, 1},
		{5, 2}, {6, 2}, {7, 2}, {8, 2}, {9, 2}, {9, 3}, {10, 3}, {11, 3},
	}
	got := Orthogonal(0, 0, 11, 3)
	assertSeq(t, got, want, "orthogonal")
}

// Universal invariant 8: every consecutive pair differs by exactly one unit
// along exactly one axis.
func TestOrthogonal_AxisAlignedSteps(t *testing.T) {
	cases := [][4]float64{{0, 0, 11, 3}, {0, 0, -7, 9}, {1.2, 1.8, 8.4, 2.1}, {0, 0, 0, 0}}
	for _, c := range cases {
		pts := Orthogonal(c[0], c[1], c[2], c[3])
		for i := 1; i < len(pts); i++ {
			dx := abs(pts[i][0] - pts[i-1][0])
			dy := abs(pts[i][1] - pts[i-1][1])
			if !((dx == 1 && dy == 0) || (dx == 0 && dy == 1)) {
				t.Fatalf("case %v: step %d->%d is (%d,%d) dx=%d dy=%d, not single-axis unit",
					c, i-1, i, pts[i-1], pts[i], dx, dy)
			}
		}
	}
}

func TestOrthogonal_Count(t *testing.T) {
	pts := Orthogonal(0, 0, 11, 3)
	want := 1 + 11 + 3
	if len(pts) != want {
		t.Errorf("len = %d, want %d", len(pts), want)
	}
}
