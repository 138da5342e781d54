package fov

import (
	"testing"

	"github.com/fovgrid/fov/internal/grid"
)

func allTransparent(w, h int) *grid.Bitpacked {
	return grid.NewBitpacked(w, h, true)
}

var allEngines = []Algorithm{CircularRaycast, DiamondRaycast, RecursiveShadow, SymmetricShadow, Restrictive, Permissive}

// S4: 3x3 all-transparent grid, origin (1,1), unlimited radius: every
// engine marks all 9 cells visible.
func TestS4_AllTransparentMarksEverything(t *testing.T) {
	for _, algo := range allEngines {
		transparent := allTransparent(3, 3)
		v := grid.NewBitpacked(3, 3, false)
		opts := Options{LightWalls: true, Permissiveness: 8}
		if _, err := Compute(algo, transparent, v, 1, 1, opts); err != nil {
			t.Fatalf("%v: Compute returned %v", algo, err)
		}
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				if !v.GetBool(x, y) {
					t.Errorf("%v: cell (%d,%d) not visible", algo, x, y)
				}
			}
		}
	}
}

// S5: 5x5 grid, single wall at (2,1), origin (2,2), light_walls=true:
// symmetric shadowcasting marks (2,1) visible and (2,0) not visible.
func TestS5_SymmetricShadowWallBoundary(t *testing.T) {
	transparent := allTransparent(5, 5)
	transparent.SetBool(2, 1, false)
	v := grid.NewBitpacked(5, 5, false)

	if _, err := Compute(SymmetricShadow, transparent, v, 2, 2, Options{LightWalls: true}); err != nil {
		t.Fatalf("Compute returned %v", err)
	}
	if !v.GetBool(2, 1) {
		t.Error("(2,1) wall should be visible with light_walls=true")
	}
	if v.GetBool(2, 0) {
		t.Error("(2,0) should not be visible: blocked by the wall at (2,1)")
	}
}

// S6: a "pillars" style fixture (a handful of isolated single-tile walls)
// with two origins; the symmetric property (invariant 4) must hold between
// them.
func TestS6_PillarsSymmetryBetweenTwoOrigins(t *testing.T) {
	const w, h = 9, 7
	transparent := allTransparent(w, h)
	walls := [][2]int{{2, 2}, {2, 4}, {6, 2}, {6, 4}, {4, 3}}
	for _, wall := range walls {
		transparent.SetBool(wall[0], wall[1], false)
	}

	a := [2]int{1, 1}
	b := [2]int{7, 5}

	vFromA := grid.NewBitpacked(w, h, false)
	if _, err := Compute(SymmetricShadow, transparent, vFromA, a[0], a[1], Options{LightWalls: true}); err != nil {
		t.Fatalf("Compute from A returned %v", err)
	}
	vFromB := grid.NewBitpacked(w, h, false)
	if _, err := Compute(SymmetricShadow, transparent, vFromB, b[0], b[1], Options{LightWalls: true}); err != nil {
		t.Fatalf("Compute from B returned %v", err)
	}

	if vFromA.GetBool(b[0], b[1]) != vFromB.GetBool(a[0], a[1]) {
		t.Errorf("asymmetric visibility between A=%v and B=%v", a, b)
	}
}

// Universal invariant 3: origin is always marked visible on Ok.
func TestInvariant3_OriginAlwaysVisible(t *testing.T) {
	for _, algo := range allEngines {
		transparent := allTransparent(4, 4)
		transparent.SetBool(1, 1, false) // origin itself opaque; must still be marked
		v := grid.NewBitpacked(4, 4, false)
		if _, err := Compute(algo, transparent, v, 1, 1, Options{LightWalls: true, Permissiveness: 8}); err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		if !v.GetBool(1, 1) {
			t.Errorf("%v: origin not marked visible", algo)
		}
	}
}

// Universal invariant 4: symmetric shadowcasting is symmetric.
func TestInvariant4_SymmetricShadowSymmetry(t *testing.T) {
	const w, h = 8, 8
	transparent := allTransparent(w, h)
	for _, wall := range [][2]int{{3, 3}, {3, 4}, {4, 3}, {5, 5}, {1, 6}} {
		transparent.SetBool(wall[0], wall[1], false)
	}
	points := [][2]int{{0, 0}, {7, 7}, {0, 7}, {7, 0}, {4, 4}}
	for _, a := range points {
		for _, b := range points {
			if a == b {
				continue
			}
			vA := grid.NewBitpacked(w, h, false)
			if _, err := Compute(SymmetricShadow, transparent, vA, a[0], a[1], Options{LightWalls: true}); err != nil {
				t.Fatalf("%v: %v", a, err)
			}
			vB := grid.NewBitpacked(w, h, false)
			if _, err := Compute(SymmetricShadow, transparent, vB, b[0], b[1], Options{LightWalls: true}); err != nil {
				t.Fatalf("%v: %v", b, err)
			}
			if vA.GetBool(b[0], b[1]) != vB.GetBool(a[0], a[1]) {
				t.Errorf("asymmetric: A=%v B=%v", a, b)
			}
		}
	}
}

// Universal invariant 5: for circular/diamond raycasting with
// light_walls=true, every lit wall has a lit transparent 4-neighbor on the
// side facing the origin. Walls on an axis through the origin are exempt,
// since the wall-lighting pass keeps a ray's lighting there.
func TestInvariant5_LitWallsHaveFacingLitNeighbor(t *testing.T) {
	const w, h = 11, 11
	for _, algo := range []Algorithm{CircularRaycast, DiamondRaycast} {
		transparent := allTransparent(w, h)
		for _, wall := range [][2]int{{7, 5}, {3, 3}, {8, 8}, {2, 7}} {
			transparent.SetBool(wall[0], wall[1], false)
		}
		v := grid.NewBitpacked(w, h, false)
		px, py := 5, 5
		if _, err := Compute(algo, transparent, v, px, py, Options{LightWalls: true}); err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if transparent.GetBool(x, y) || !v.GetBool(x, y) {
					continue
				}
				if !hasLitNearNeighbor(transparent, v, px, py, x, y) && !(x == px || y == py) {
					t.Errorf("%v: lit wall (%d,%d) has no facing lit neighbor", algo, x, y)
				}
			}
		}
	}
}

// Universal invariant 9: triage is an over-approximation — every tile
// triage marks unreachable must also be left not-visible by every exact
// engine.
func TestInvariant9_TriageIsOverApproximation(t *testing.T) {
	const w, h = 9, 9
	transparent := allTransparent(w, h)
	for _, wall := range [][2]int{{4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6}} {
		transparent.SetBool(wall[0], wall[1], false)
	}
	px, py := 2, 4

	triageOut := grid.NewContiguous(w, h, grid.DTypeU8)
	if _, err := Triage(transparent, triageOut, px, py); err != nil {
		t.Fatalf("Triage: %v", err)
	}

	for _, algo := range allEngines {
		v := grid.NewBitpacked(w, h, false)
		if _, err := Compute(algo, transparent, v, px, py, Options{LightWalls: true, Permissiveness: 8}); err != nil {
			t.Fatalf("%v: %v", algo, err)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if triageOut.GetU8(x, y) == TriageUnreachable && v.GetBool(x, y) {
					t.Errorf("%v: triage marked (%d,%d) unreachable but engine marked it visible", algo, x, y)
				}
			}
		}
	}
}

func TestPascalDiffusion_OriginIsFullIntensity(t *testing.T) {
	transparent := allTransparent(5, 5)
	out := grid.NewContiguous(5, 5, grid.DTypeF64)
	if _, err := PascalDiffusion(transparent, out, 2, 2); err != nil {
		t.Fatalf("PascalDiffusion: %v", err)
	}
	if got := out.GetF64(2, 2); got != 1.0 {
		t.Errorf("origin intensity = %v, want 1.0", got)
	}
}

func TestPascalDiffusion_FullyBlockedIsZeroBeyondWall(t *testing.T) {
	transparent := allTransparent(5, 5)
	transparent.SetBool(2, 1, false)
	out := grid.NewContiguous(5, 5, grid.DTypeF64)
	if _, err := PascalDiffusion(transparent, out, 2, 2); err != nil {
		t.Fatalf("PascalDiffusion: %v", err)
	}
	if got := out.GetF64(2, 0); got != 0.0 {
		t.Errorf("intensity beyond wall = %v, want 0.0", got)
	}
}

func TestCompute_OriginOutOfBoundsFails(t *testing.T) {
	transparent := allTransparent(3, 3)
	v := grid.NewBitpacked(3, 3, false)
	_, err := Compute(SymmetricShadow, transparent, v, 10, 10, Options{})
	if err == nil {
		t.Fatal("expected an error for an out-of-bounds origin")
	}
}

func TestRestrictive_BlocksBehindWall(t *testing.T) {
	transparent := allTransparent(7, 7)
	transparent.SetBool(3, 2, false)
	v := grid.NewBitpacked(7, 7, false)
	if _, err := Compute(Restrictive, transparent, v, 3, 3, Options{LightWalls: true}); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !v.GetBool(3, 2) {
		t.Error("wall at (3,2) should be lit")
	}
	if v.GetBool(3, 0) {
		t.Error("(3,0) directly behind the wall should not be visible")
	}
}

func TestPermissive_RespectsMaxRadius(t *testing.T) {
	transparent := allTransparent(21, 21)
	v := grid.NewBitpacked(21, 21, false)
	if _, err := Compute(Permissive, transparent, v, 10, 10, Options{MaxRadius: 3, Permissiveness: 8}); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if v.GetBool(10, 18) {
		t.Error("tile far outside max_radius should not be visible")
	}
	if !v.GetBool(10, 11) {
		t.Error("tile adjacent to the origin should be visible")
	}
}
