// Command fovtool loads an ASCII map, runs an FOV algorithm for every '@'
// origin in the map, and prints the resulting visibility grid.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/fovgrid/fov/internal/batch"
	"github.com/fovgrid/fov/internal/export"
	"github.com/fovgrid/fov/internal/fov"
	"github.com/fovgrid/fov/internal/grid"
	"github.com/fovgrid/fov/internal/mapfile"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	var (
		inputPath   string
		algoName    string
		radius      int
		snapshotDir string
		format      string
		concurrency int
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&inputPath, "input", "", "Path to the ASCII map file")
	flag.StringVar(&algoName, "algo", "symmetric", "FOV algorithm: circular, diamond, recursive, symmetric, restrictive, permissive")
	flag.IntVar(&radius, "radius", 0, "Max radius (0 = unlimited)")
	flag.StringVar(&snapshotDir, "snapshot", "", "Directory to additionally write one snapshot image per origin, in --format (empty = skip)")
	flag.StringVar(&format, "format", "png", "Snapshot image format: png, jpeg, webp")
	flag.IntVar(&concurrency, "concurrency", runtime.NumCPU(), "Worker count when the map has more than one origin")
	flag.BoolVar(&verbose, "verbose", false, "Verbose progress output")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fovtool --input <file> [--algo <name>]\n\n")
		fmt.Fprintf(os.Stderr, "Compute field-of-view from an ASCII map and print the visibility grid.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("fovtool %s\n", version)
		os.Exit(0)
	}

	if inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	algo, permissiveness, err := parseAlgo(algoName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	m, err := mapfile.Load(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if len(m.Origins) == 0 {
		fmt.Fprintf(os.Stderr, "ERROR: map %s contains no '@' origin\n", inputPath)
		os.Exit(1)
	}

	transparent := m.Grid()
	opts := fov.Options{MaxRadius: radius, LightWalls: true, Permissiveness: permissiveness}

	visible := make([]*grid.Bitpacked, len(m.Origins))
	for i := range m.Origins {
		visible[i] = grid.NewBitpacked(m.Width, m.Height, false)
	}

	if len(m.Origins) == 1 {
		o := m.Origins[0]
		if _, err := fov.Compute(algo, transparent, visible[0], o.X, o.Y, opts); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	} else {
		jobs := make([]batch.Job, len(m.Origins))
		for i, o := range m.Origins {
			jobs[i] = batch.Job{
				ID:          i,
				Transparent: transparent,
				Visible:     visible[i],
				OriginX:     o.X,
				OriginY:     o.Y,
				Algorithm:   algo,
				Options:     opts,
			}
		}
		if _, err := batch.Run(batch.Config{Concurrency: concurrency, Verbose: verbose, Label: "fovtool"}, jobs); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			os.Exit(1)
		}
	}

	// Each origin's FOV is computed into its own isolated grid above (so the
	// batch runner's disjoint-(T,V) concurrency applies), but the printed
	// result must match the original tool: one shared visibility grid
	// accumulates every origin's contribution in turn, and every origin is
	// rendered as '@' on every print regardless of which origins have been
	// folded in so far.
	shared := grid.NewBitpacked(m.Width, m.Height, false)
	for i, o := range m.Origins {
		mergeVisible(shared, visible[i])
		printGrid(m, shared, m.Origins)
		if snapshotDir != "" {
			path := fmt.Sprintf("%s/origin-%d-%d%s", snapshotDir, o.X, o.Y, extensionFor(format))
			if err := export.Snapshot(path, format, 85, transparent, shared, o.X, o.Y); err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
				os.Exit(1)
			}
		}
	}
}

// mergeVisible ORs every lit cell of src into dst, the Go equivalent of the
// original tool reusing one shared visibility grid across successive
// fov_compute calls instead of allocating a fresh one per origin.
func mergeVisible(dst *grid.Bitpacked, src *grid.Bitpacked) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if src.GetBool(x, y) {
				dst.SetBool(x, y, true)
			}
		}
	}
}

// parseAlgo maps the CLI's algorithm name to a dispatcher tag. "permissive"
// always runs with a permissiveness of 3; no other form of the name is
// accepted.
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

// printGrid renders the shared visibility grid in the CLI's ASCII grammar:
// '@' for any map origin (all of them, on every call, regardless of which
// have contributed visibility yet), '.' for visible transparent, '#' for a
// lit wall, space for not visible.
func printGrid(m *mapfile.Map, v grid.Grid2D, origins []mapfile.Point) {
	isOrigin := func(x, y int) bool {
		for _, o := range origins {
			if o.X == x && o.Y == y {
				return true
			}
		}
		return false
	}
	for y := 0; y < m.Height; y++ {
		row := make([]byte, m.Width)
		for x := 0; x < m.Width; x++ {
			switch {
			case isOrigin(x, y):
				row[x] = '@'
			case !v.GetBool(x, y):
				row[x] = ' '
			case m.Transparent(x, y):
				row[x] = '.'
			default:
				row[x] = '#'
			}
		}
		fmt.Println(string(row))
	}
}

func extensionFor(format string) string {
	switch format {
	case "jpeg", "jpg":
		return ".jpg"
	case "webp":
		return ".webp"
	default:
		return ".png"
	}
}
