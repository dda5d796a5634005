package animation

import "time"

// Clock is the time source for a Stopwatch. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Stopwatch accumulates running time. Stop pauses it and Start resumes from where it
// stopped.
type Stopwatch struct {
	clock   Clock
	running bool
	started time.Time
	total   time.Duration
}

// NewStopwatch returns a stopped stopwatch reading zero. A nil clock means SystemClock.
func NewStopwatch(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock
	}
	return &Stopwatch{clock: clock}
}

// Start resumes timing. Starting a running stopwatch does nothing.
func (w *Stopwatch) Start() {
	if w.running {
		return
	}
	w.started = w.clock.Now()
	w.running = true
}

// Stop pauses timing, keeping the accumulated time.
func (w *Stopwatch) Stop() {
	if !w.running {
		return
	}
	w.total += w.clock.Now().Sub(w.started)
	w.running = false
}

// Running reports whether the stopwatch is timing.
func (w *Stopwatch) Running() bool { return w.running }

// Elapsed returns the accumulated running time.
func (w *Stopwatch) Elapsed() time.Duration {
	if w.running {
		return w.total + w.clock.Now().Sub(w.started)
	}
	return w.total
}
