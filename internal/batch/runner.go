// Package batch runs many independent FOV computations concurrently. Each
// job targets its own disjoint transparency/visibility grid pair, matching
// the concurrency contract that a single V must never be mutated by two
// calls at once while T may be shared read-only.
package batch

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/fovgrid/fov/internal/fov"
	"github.com/fovgrid/fov/internal/grid"
)

// Job is one fov.Compute invocation to run as part of a batch.
type Job struct {
	ID          int
	Transparent grid.Grid2D
	Visible     grid.Grid2D
	OriginX     int
	OriginY     int
	Algorithm   fov.Algorithm
	Options     fov.Options
}

// Config controls a Run call.
type Config struct {
	Concurrency int
	Verbose     bool
	Label       string
}

// Stats summarizes a completed Run.
type Stats struct {
	Completed int64
	Failed    int64
}

// Run executes every job in jobs using up to cfg.Concurrency workers. A
// failing job does not stop the others; once all jobs have run, Run returns
// the first error encountered, if any. A terminal progress
// bar tracks completions the way the teacher's tile pipeline does.
func Run(cfg Config, jobs []Job) (Stats, error) {
	if len(jobs) == 0 {
		return Stats{}, nil
	}
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	label := cfg.Label
	if label == "" {
		label = "FOV batch"
	}
	pb := newProgressBar(label, int64(len(jobs)))

	jobCh := make(chan Job, concurrency*2)
	errCh := make(chan error, 1)
	var completed, failed atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				_, err := fov.Compute(job.Algorithm, job.Transparent, job.Visible, job.OriginX, job.OriginY, job.Options)
				if err != nil {
					failed.Add(1)
					select {
					case errCh <- fmt.Errorf("job %d (origin %d,%d): %w", job.ID, job.OriginX, job.OriginY, err):
					default:
					}
					pb.IncrementFailed()
					continue
				}
				completed.Add(1)
				pb.Increment()
			}
		}()
	}

	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)
	wg.Wait()
	pb.Finish()

	if cfg.Verbose {
		log.Printf("batch: %d completed, %d failed", completed.Load(), failed.Load())
	}

	select {
	case err := <-errCh:
		return Stats{Completed: completed.Load(), Failed: failed.Load()}, err
	default:
	}
	return Stats{Completed: completed.Load(), Failed: failed.Load()}, nil
}
