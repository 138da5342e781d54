package grid

import "fmt"

// DType selects the cell type a Contiguous grid stores.
type DType int

const (
	DTypeBool DType = iota
	DTypeU8
	DTypeF32
	DTypeF64
)

// Contiguous stores one typed cell per tile in a flat, row-major (by y)
// array. It is the only variant with full scalar fidelity, so it is the one
// whose output keeps Pascal diffusion's fractional intensity and triage's
// multi-level classification; other ScalarGrid2D variants collapse both to
// a single bit.
type Contiguous struct {
	width  int
	height int
	dtype  DType

	boolCells []bool
	u8Cells   []uint8
	f32Cells  []float32
	f64Cells  []float64
}

// NewContiguous allocates a width*height array of the given cell type.
func NewContiguous(width, height int, dtype DType) *Contiguous {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := &Contiguous{width: width, height: height, dtype: dtype}
	n := width * height
	switch dtype {
	case DTypeBool:
		g.boolCells = make([]bool, n)
	case DTypeU8:
		g.u8Cells = make([]uint8, n)
	case DTypeF32:
		g.f32Cells = make([]float32, n)
	case DTypeF64:
		g.f64Cells = make([]float64, n)
	default:
		panic(fmt.Sprintf("grid: unknown dtype %d", dtype))
	}
	return g
}

// BindContiguousU8 wraps an existing width*height uint8 buffer without
// copying, the way the teacher's image.RGBA wraps a caller-owned Pix slice.
func BindContiguousU8(width, height int, buf []uint8) *Contiguous {
	return &Contiguous{width: width, height: height, dtype: DTypeU8, u8Cells: buf}
}

// BindContiguousF64 wraps an existing width*height float64 buffer without
// copying.
func BindContiguousF64(width, height int, buf []float64) *Contiguous {
	return &Contiguous{width: width, height: height, dtype: DTypeF64, f64Cells: buf}
}

func (g *Contiguous) Width() int  { return g.width }
func (g *Contiguous) Height() int { return g.height }

func (g *Contiguous) InBounds(x, y int) bool {
	return InBounds(g.width, g.height, x, y)
}

func (g *Contiguous) index(x, y int) int { return y*g.width + x }

func (g *Contiguous) GetBool(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	i := g.index(x, y)
	switch g.dtype {
	case DTypeBool:
		return g.boolCells[i]
	case DTypeU8:
		return g.u8Cells[i] != 0
	case DTypeF32:
		return g.f32Cells[i] >= 0.5
	case DTypeF64:
		return g.f64Cells[i] >= 0.5
	default:
		return false
	}
}

func (g *Contiguous) SetBool(x, y int, v bool) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	switch g.dtype {
	case DTypeBool:
		g.boolCells[i] = v
	case DTypeU8:
		g.u8Cells[i] = boolToU8(v)
	case DTypeF32:
		if v {
			g.f32Cells[i] = 1
		} else {
			g.f32Cells[i] = 0
		}
	case DTypeF64:
		g.f64Cells[i] = boolToF64(v)
	}
}

func (g *Contiguous) GetU8(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return 0
	}
	i := g.index(x, y)
	switch g.dtype {
	case DTypeU8:
		return g.u8Cells[i]
	case DTypeBool:
		return boolToU8(g.boolCells[i])
	case DTypeF32:
		return uint8(clamp01(float64(g.f32Cells[i])) * 255)
	case DTypeF64:
		return uint8(clamp01(g.f64Cells[i]) * 255)
	default:
		return 0
	}
}

func (g *Contiguous) SetU8(x, y int, v uint8) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	switch g.dtype {
	case DTypeU8:
		g.u8Cells[i] = v
	case DTypeBool:
		g.boolCells[i] = v != 0
	case DTypeF32:
		g.f32Cells[i] = float32(v) / 255
	case DTypeF64:
		g.f64Cells[i] = float64(v) / 255
	}
}

func (g *Contiguous) GetF64(x, y int) float64 {
	if !g.InBounds(x, y) {
		return 0
	}
	i := g.index(x, y)
	switch g.dtype {
	case DTypeF64:
		return g.f64Cells[i]
	case DTypeF32:
		return float64(g.f32Cells[i])
	case DTypeU8:
		return float64(g.u8Cells[i]) / 255
	case DTypeBool:
		return boolToF64(g.boolCells[i])
	default:
		return 0
	}
}

func (g *Contiguous) SetF64(x, y int, v float64) {
	if !g.InBounds(x, y) {
		return
	}
	i := g.index(x, y)
	switch g.dtype {
	case DTypeF64:
		g.f64Cells[i] = v
	case DTypeF32:
		g.f32Cells[i] = float32(v)
	case DTypeU8:
		g.u8Cells[i] = uint8(clamp01(v) * 255)
	case DTypeBool:
		g.boolCells[i] = v != 0
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var (
	_ Grid2D       = (*Contiguous)(nil)
	_ ScalarGrid2D = (*Contiguous)(nil)
)
