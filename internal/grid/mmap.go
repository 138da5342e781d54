package grid

import (
	"fmt"
	"os"
)

// MMapBacked is a read-only transparency grid backed by a memory-mapped
// file: one byte per cell, row-major by y, zero meaning opaque and any
// non-zero byte meaning transparent. It exists for large saved maps where
// copying the whole file into a Contiguous grid up front would be wasteful;
// callers that need to mutate cells should copy into a Bitpacked or
// Contiguous grid first (for example via CopyInto).
//
// MMapBacked implements Grid2D only: the backing file is opened read-only,
// so SetBool is always a no-op regardless of bounds.
type MMapBacked struct {
	width  int
	height int
	data   []byte
	file   *os.File
}

// OpenMMap memory-maps path as a width*height single-byte-per-cell
// transparency grid. The file must be at least width*height bytes.
func OpenMMap(path string, width, height int) (*MMapBacked, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("grid: negative dimensions %dx%d", width, height)
	}
	size := width * height
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("grid: stat %s: %w", path, err)
	}
	if int64(size) > info.Size() {
		f.Close()
		return nil, fmt.Errorf("grid: %s is %d bytes, need at least %d for a %dx%d grid", path, info.Size(), size, width, height)
	}

	data, err := mmapFile(f.Fd(), size)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("grid: mmap %s: %w", path, err)
	}

	return &MMapBacked{width: width, height: height, data: data, file: f}, nil
}

// Close releases the memory mapping and the underlying file handle.
func (g *MMapBacked) Close() error {
	if g.data != nil {
		if err := munmapFile(g.data); err != nil {
			g.file.Close()
			return err
		}
		g.data = nil
	}
	return g.file.Close()
}

func (g *MMapBacked) Width() int  { return g.width }
func (g *MMapBacked) Height() int { return g.height }

func (g *MMapBacked) InBounds(x, y int) bool {
	return InBounds(g.width, g.height, x, y)
}

func (g *MMapBacked) GetBool(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.data[y*g.width+x] != 0
}

// SetBool is always a no-op: the backing file is opened read-only.
func (g *MMapBacked) SetBool(x, y int, v bool) {}

// CopyInto copies every cell of g into dst via SetBool, for callers that
// opened an mmap-backed map for fast loading but need a mutable grid (for
// example the deprecated legacy layout, or a Bitpacked grid to pass as an
// owned transparency source beyond the mapped file's lifetime).
func (g *MMapBacked) CopyInto(dst Grid2D) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			dst.SetBool(x, y, g.GetBool(x, y))
		}
	}
}

var _ Grid2D = (*MMapBacked)(nil)
