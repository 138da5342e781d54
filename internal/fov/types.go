// Package fov implements the family of field-of-view and line-of-sight
// algorithms: circular and diamond raycasting, recursive and symmetric
// shadowcasting, restrictive precise angle shadowcasting, permissive FOV,
// Pascal diffusion, and triage reachability pre-filtering. Each engine reads
// a transparency grid and writes a visibility grid under a shared contract;
// Compute dispatches to one by tag, the same way the teacher's format-tag
// encoders are selected by string.
package fov

import (
	"github.com/fovgrid/fov/internal/grid"
	"github.com/fovgrid/fov/internal/status"
)

// Algorithm names one of the six engines reachable through Compute. Pascal
// diffusion and triage are not part of this set: they require a scalar
// output grid and are invoked directly via PascalDiffusion and Triage.
type Algorithm int

const (
	CircularRaycast Algorithm = iota
	DiamondRaycast
	RecursiveShadow
	SymmetricShadow
	Restrictive
	Permissive
)

func (a Algorithm) String() string {
	switch a {
	case CircularRaycast:
		return "circular"
	case DiamondRaycast:
		return "diamond"
	case RecursiveShadow:
		return "recursive"
	case SymmetricShadow:
		return "symmetric"
	case Restrictive:
		return "restrictive"
	case Permissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// Options carries the per-call parameters shared by all engines.
// MaxRadius of 0 means unlimited. Permissiveness is only consulted by the
// Permissive algorithm and must be in 1..8.
type Options struct {
	MaxRadius      int
	LightWalls     bool
	Permissiveness int
}

// Compute dispatches to one of the six boolean FOV engines. It marks the
// origin visible in V before running the engine, validating the origin
// against V's bounds first.
func Compute(algo Algorithm, t, v grid.Grid2D, px, py int, opts Options) (status.Status, error) {
	if s, err := checkOrigin(v, px, py); err != nil {
		return s, err
	}
	v.SetBool(px, py, true)

	switch algo {
	case CircularRaycast:
		computeCircularRaycast(t, v, px, py, opts)
	case DiamondRaycast:
		computeDiamondRaycast(t, v, px, py, opts)
	case RecursiveShadow:
		computeRecursiveShadow(t, v, px, py, opts)
	case SymmetricShadow:
		computeSymmetricShadow(t, v, px, py, opts)
	case Restrictive:
		return computeRestrictive(t, v, px, py, opts)
	case Permissive:
		computePermissive(t, v, px, py, opts)
	default:
		s, err := status.Fail(status.InvalidArgument, "unknown FOV algorithm tag %d", int(algo))
		return s, err
	}
	return status.Ok, nil
}

// checkOrigin validates the single entry precondition shared by every
// engine: the origin must be in bounds of the visibility grid.
func checkOrigin(v grid.Grid2D, px, py int) (status.Status, error) {
	if !v.InBounds(px, py) {
		return status.Fail(status.InvalidArgument, "origin {%d, %d} is out of bounds", px, py)
	}
	return status.Ok, nil
}

// window clamps the axis-aligned radius box [px-r,px+r]x[py-r,py+r] against
// a grid's bounds. A radius of 0 means unlimited: the window is the full
// grid, with no squared-radius test implied (callers check radius>0
// separately before applying radiusSq).
func window(g grid.Grid2D, px, py, radius int) (minX, minY, maxX, maxY int) {
	w, h := g.Width(), g.Height()
	if radius <= 0 {
		return 0, 0, w - 1, h - 1
	}
	minX, minY = px-radius, py-radius
	maxX, maxY = px+radius, py+radius
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if maxY > h-1 {
		maxY = h - 1
	}
	return
}

