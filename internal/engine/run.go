package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/leengari/relq/internal/exercises"
)

// runCounter numbers runs within the process
var runCounter uint64

// Run is the record of one exercise execution
type Run struct {
	ID        string    // Unique run identifier (UUID)
	Seq       uint64    // Process-local sequence number
	Exercise  exercises.Exercise
	StartTime time.Time
	Duration  time.Duration
	Result    exercises.Result
	Err       error
}

// newRun creates a run with a unique ID
func newRun(ex exercises.Exercise) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&runCounter, 1),
		Exercise:  ex,
		StartTime: time.Now(),
	}
}

// OK reports whether the run succeeded
func (r *Run) OK() bool {
	return r.Err == nil
}
