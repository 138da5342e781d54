package grid

// Bitpacked stores one bit per cell, row-major by y, with a byte stride of
// ceil(width/8). Bit x%8 of byte x/8 holds the cell's value; unused high
// bits in the last byte of a row are unspecified and must never be exposed
// through GetBool.
//
// The bit-reader convention here (MSB-agnostic, LSB-first within a byte)
// mirrors the manual bit-position arithmetic used when decoding a packed
// bitstream one symbol at a time: advance a byte index and a bit-within-byte
// offset instead of reaching for a bitset library.
type Bitpacked struct {
	width  int
	height int
	stride int
	bits   []byte
}

// NewBitpacked allocates a ceil(width/8)*height byte buffer. fill, when
// true, initializes every cell to true (all-ones); otherwise every cell
// starts false (all-zeros).
func NewBitpacked(width, height int, fill bool) *Bitpacked {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := (width + 7) / 8
	bits := make([]byte, stride*height)
	if fill {
		for i := range bits {
			bits[i] = 0xFF
		}
	}
	return &Bitpacked{width: width, height: height, stride: stride, bits: bits}
}

func (g *Bitpacked) Width() int  { return g.width }
func (g *Bitpacked) Height() int { return g.height }

func (g *Bitpacked) InBounds(x, y int) bool {
	return InBounds(g.width, g.height, x, y)
}

func (g *Bitpacked) GetBool(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	byteIdx := y*g.stride + x/8
	bit := byte(1) << uint(x%8)
	return g.bits[byteIdx]&bit != 0
}

func (g *Bitpacked) SetBool(x, y int, v bool) {
	if !g.InBounds(x, y) {
		return
	}
	byteIdx := y*g.stride + x/8
	bit := byte(1) << uint(x%8)
	if v {
		g.bits[byteIdx] |= bit
	} else {
		g.bits[byteIdx] &^= bit
	}
}

// GetU8 coerces the stored bit to the 0/255 scalar convention.
func (g *Bitpacked) GetU8(x, y int) uint8 { return boolToU8(g.GetBool(x, y)) }

// SetU8 coerces v via v != 0 before storing.
func (g *Bitpacked) SetU8(x, y int, v uint8) { g.SetBool(x, y, v != 0) }

// GetF64 coerces the stored bit to the 0.0/1.0 scalar convention.
func (g *Bitpacked) GetF64(x, y int) float64 { return boolToF64(g.GetBool(x, y)) }

// SetF64 coerces v via v != 0 before storing.
func (g *Bitpacked) SetF64(x, y int, v float64) { g.SetBool(x, y, v != 0) }

var (
	_ Grid2D       = (*Bitpacked)(nil)
	_ ScalarGrid2D = (*Bitpacked)(nil)
)
