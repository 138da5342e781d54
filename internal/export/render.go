// Package export renders a computed visibility grid to a raster image and
// writes it through one of a small set of tile-image codecs, mirroring the
// teacher's tile-encoding layer but consuming an FOV result instead of a
// reprojected GeoTIFF sample.
package export

import (
	"image"
	"image/color"

	"github.com/fovgrid/fov/internal/grid"
)

// Palette names the four colors a snapshot distinguishes: the origin
// tile, a visible transparent tile, a visible (lit) wall, and everything
// not currently visible.
type Palette struct {
	Origin     color.Color
	Visible    color.Color
	LitWall    color.Color
	NotVisible color.Color
}

// DefaultPalette mirrors the CLI's four-symbol output (@, ., #, space) in
// color: origin in red, visible floor in pale yellow, lit walls in gray,
// everything else in near-black.
var DefaultPalette = Palette{
	Origin:     color.RGBA{R: 220, G: 40, B: 40, A: 255},
	Visible:    color.RGBA{R: 235, G: 220, B: 150, A: 255},
	LitWall:    color.RGBA{R: 110, G: 110, B: 120, A: 255},
	NotVisible: color.RGBA{R: 10, G: 10, B: 14, A: 255},
}

// Render rasterizes one cell per pixel into an RGBA image. transparent
// supplies wall/floor classification; visible supplies the FOV result;
// (px,py) is drawn with the palette's Origin color regardless of the
// other two grids' values at that cell.
func Render(transparent, visible grid.Grid2D, px, py int, palette Palette) *image.RGBA {
	w, h := visible.Width(), visible.Height()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, cellColor(transparent, visible, px, py, x, y, palette))
		}
	}
	return img
}

func cellColor(transparent, visible grid.Grid2D, px, py, x, y int, palette Palette) color.Color {
	if x == px && y == py {
		return palette.Origin
	}
	if !visible.GetBool(x, y) {
		return palette.NotVisible
	}
	if transparent.GetBool(x, y) {
		return palette.Visible
	}
	return palette.LitWall
}
