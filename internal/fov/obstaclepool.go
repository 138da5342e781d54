package fov

import "sync"

// obstacleSlices holds the running list of blocked angular slices
// maintained within one quadrant's octant scan of the restrictive
// algorithm: parallel start/end slope arrays, reused across the four
// quadrants of a single Compute call the way the teacher's frame pool
// reuses a fixed-size scratch buffer across tile jobs of the same size.
type obstacleSlices struct {
	start []float64
	end   []float64
}

func (o *obstacleSlices) reset() {
	o.start = o.start[:0]
	o.end = o.end[:0]
}

var obstaclePool = sync.Pool{
	New: func() any { return &obstacleSlices{} },
}

// acquireObstacles returns a zeroed-length obstacle slice pair sized at
// least to capHint, reusing a pooled allocation when one of sufficient
// capacity is already available.
func acquireObstacles(capHint int) *obstacleSlices {
	o := obstaclePool.Get().(*obstacleSlices)
	o.reset()
	if cap(o.start) < capHint {
		o.start = make([]float64, 0, capHint)
		o.end = make([]float64, 0, capHint)
	}
	return o
}

func releaseObstacles(o *obstacleSlices) {
	obstaclePool.Put(o)
}
