// Command fovsnapshot is a small inspection tool: it loads a map (either
// the CLI's ASCII grammar or a raw binary transparency dump loaded via a
// memory-mapped grid), runs one named FOV algorithm for one origin, and
// writes a single image file, the way coginfo sits beside the main
// pipeline tool as a standalone debug utility rather than a part of the
// library itself.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fovgrid/fov/internal/export"
	"github.com/fovgrid/fov/internal/fov"
	"github.com/fovgrid/fov/internal/grid"
	"github.com/fovgrid/fov/internal/mapfile"
)

func main() {
	var (
		mapPath    string
		binaryPath string
		width      int
		height     int
		originIdx  int
		originX    int
		originY    int
		algoName   string
		outPath    string
		quality    int
	)

	flag.StringVar(&mapPath, "map", "", "ASCII map file (mutually exclusive with --binary)")
	flag.StringVar(&binaryPath, "binary", "", "Raw transparency dump: one byte per cell, row-major, 0=opaque/non-zero=transparent; loaded via a memory-mapped grid instead of parsing ASCII")
	flag.IntVar(&width, "width", 0, "Grid width (required with --binary)")
	flag.IntVar(&height, "height", 0, "Grid height (required with --binary)")
	flag.IntVar(&originIdx, "origin-index", 0, "Which '@' origin to use, in map order (--map only)")
	flag.IntVar(&originX, "origin-x", 0, "Origin x (--binary only)")
	flag.IntVar(&originY, "origin-y", 0, "Origin y (--binary only)")
	flag.StringVar(&algoName, "algo", "symmetric", "FOV algorithm: circular, diamond, recursive, symmetric, restrictive, permissive")
	flag.StringVar(&outPath, "output", "", "Output image path (format inferred from extension: .png, .jpg/.jpeg, .webp)")
	flag.IntVar(&quality, "quality", 85, "JPEG/WebP quality 1-100")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fovsnapshot --map <file> --output <file> [--algo <name>] [--origin-index <n>]\n")
		fmt.Fprintf(os.Stderr, "   or: fovsnapshot --binary <file> --width <n> --height <n> --origin-x <n> --origin-y <n> --output <file> [--algo <name>]\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if outPath == "" || (mapPath == "" && binaryPath == "") {
		flag.Usage()
		os.Exit(1)
	}

	algo, permissiveness, err := parseAlgo(algoName)
	if err != nil {
		fail(err)
	}

	var (
		transparent grid.Grid2D
		w, h        int
		ox, oy      int
	)

	if binaryPath != "" {
		if width <= 0 || height <= 0 {
			fmt.Fprintf(os.Stderr, "ERROR: --binary requires --width and --height\n")
			os.Exit(1)
		}
		src, err := grid.OpenMMap(binaryPath, width, height)
		if err != nil {
			fail(err)
		}
		defer src.Close()
		// Copy into an owned Bitpacked grid: the mmap source only needs to
		// live for the duration of the load, and fov.Compute's T argument
		// has no lifetime guarantee beyond one call.
		owned := grid.NewBitpacked(width, height, false)
		src.CopyInto(owned)
		transparent, w, h, ox, oy = owned, width, height, originX, originY
	} else {
		m, err := mapfile.Load(mapPath)
		if err != nil {
			fail(err)
		}
		if originIdx < 0 || originIdx >= len(m.Origins) {
			fmt.Fprintf(os.Stderr, "ERROR: map has %d origin(s), index %d out of range\n", len(m.Origins), originIdx)
			os.Exit(1)
		}
		origin := m.Origins[originIdx]
		transparent, w, h, ox, oy = m.Grid(), m.Width, m.Height, origin.X, origin.Y
	}

	visible := grid.NewBitpacked(w, h, false)
	opts := fov.Options{LightWalls: true, Permissiveness: permissiveness}
	if _, err := fov.Compute(algo, transparent, visible, ox, oy, opts); err != nil {
		fail(err)
	}

	format := formatFromExtension(outPath)
	if err := export.Snapshot(outPath, format, quality, transparent, visible, ox, oy); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s (%dx%d, origin %d,%d, %s)\n", outPath, w, h, ox, oy, algoName)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}

func parseAlgo(name string) (fov.Algorithm, int, error) {
	switch name {
	case "circular":
		return fov.CircularRaycast, 0, nil
	case "diamond":
		return fov.DiamondRaycast, 0, nil
	case "recursive":
		return fov.RecursiveShadow, 0, nil
	case "symmetric", "":
		return fov.SymmetricShadow, 0, nil
	case "restrictive":
		return fov.Restrictive, 0, nil
	case "permissive":
		return fov.Permissive, 3, nil
	default:
		return 0, 0, fmt.Errorf("unknown algorithm %q", name)
	}
}

func formatFromExtension(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			switch path[i+1:] {
			case "jpg", "jpeg":
				return "jpeg"
			case "webp":
				return "webp"
			default:
				return "png"
			}
		}
	}
	return "png"
}
