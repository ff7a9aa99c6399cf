package executor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-runz/runz/internal/planner"
)

// JobState is a Job's position in the pending → running → done-ok/done-err
// lifecycle, the same shape as a MarkRunning/MarkCompleted/MarkFailed/
// MarkSkipped state machine collapsed to two terminal states since a Job
// has no separate "skipped" status of its own (Skipped just tags which
// cause produced JobDoneErr).
type JobState int32

const (
	JobPending JobState = iota
	JobRunning
	JobDoneOK
	JobDoneErr
)

func (s JobState) String() string {
	switch s {
	case JobRunning:
		return "running"
	case JobDoneOK:
		return "done-ok"
	case JobDoneErr:
		return "done-err"
	default:
		return "pending"
	}
}

// Job is the runtime projection of a Call: its current state, timing, and
// terminal error, if any.
type Job struct {
	Call *planner.Call

	StartedAt  time.Time
	FinishedAt time.Time
	Err        error
	// Skipped is true if Err is a cancellation symptom (an upstream failure
	// skipped this not-yet-started Job) rather than a root cause.
	Skipped bool

	state    atomic.Int32
	skipOnce sync.Once
}

func newJob(call *planner.Call) *Job {
	return &Job{Call: call}
}

func (j *Job) State() JobState { return JobState(j.state.Load()) }

func (j *Job) setState(s JobState) { j.state.Store(int32(s)) }

// skip marks a not-yet-started Job as done-err due to an upstream failure,
// exactly once, decrementing wg and returning whether this call was the one
// that performed the transition.
func (j *Job) skip(err error, wg *sync.WaitGroup) bool {
	var did bool
	j.skipOnce.Do(func() {
		j.setState(JobDoneErr)
		j.Err = err
		j.Skipped = true
		j.FinishedAt = time.Now()
		wg.Done()
		did = true
	})
	return did
}
