package batch

import (
	"testing"

	"github.com/fovgrid/fov/internal/fov"
	"github.com/fovgrid/fov/internal/grid"
)

func TestRun_ProcessesAllJobsOnDisjointGrids(t *testing.T) {
	const n = 6
	jobs := make([]Job, n)
	for i := 0; i < n; i++ {
		jobs[i] = Job{
			ID:          i,
			Transparent: grid.NewBitpacked(10, 10, true),
			Visible:     grid.NewBitpacked(10, 10, false),
			OriginX:     i % 10,
			OriginY:     (i * 3) % 10,
			Algorithm:   fov.SymmetricShadow,
			Options:     fov.Options{LightWalls: true},
		}
	}
	stats, err := Run(Config{Concurrency: 3}, jobs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Completed != n {
		t.Errorf("Completed = %d, want %d", stats.Completed, n)
	}
	for _, j := range jobs {
		v := j.Visible.(*grid.Bitpacked)
		if !v.GetBool(j.OriginX, j.OriginY) {
			t.Errorf("job %d: origin not marked visible", j.ID)
		}
	}
}

func TestRun_ReportsErrorForBadOrigin(t *testing.T) {
	jobs := []Job{{
		ID:          0,
		Transparent: grid.NewBitpacked(4, 4, true),
		Visible:     grid.NewBitpacked(4, 4, false),
		OriginX:     99,
		OriginY:     99,
		Algorithm:   fov.SymmetricShadow,
	}}
	_, err := Run(Config{Concurrency: 2}, jobs)
	if err == nil {
		t.Fatal("expected an error for an out-of-bounds origin")
	}
}

func TestRun_EmptyJobsIsNoOp(t *testing.T) {
	stats, err := Run(Config{}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Completed != 0 {
		t.Errorf("Completed = %d, want 0", stats.Completed)
	}
}
