// Package animation derives each object's rendered transform from its base transform and
// its idle behaviour.
package animation

import (
	"math"

	"scene-viewer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// PulseFactor is the enlarged scale of a pulsing object on its "up" frames.
const PulseFactor = 1.015

// Engine holds the global animation switch, the stopwatch feeding rotation and the
// shared pulse phase.
//
// The pulse phase flips once per advanced frame, not per unit of time, so pulse speed
// follows the frame rate.
type Engine struct {
	running bool
	pulse   bool
	watch   *Stopwatch
}

// New returns a running engine whose stopwatch has just started.
func New(clock Clock) *Engine {
	e := &Engine{
		running: true,
		pulse:   true,
		watch:   NewStopwatch(clock),
	}
	e.watch.Start()
	return e
}

// Running reports whether idle animation is on.
func (e *Engine) Running() bool { return e.running }

// Elapsed returns the animation time in seconds.
func (e *Engine) Elapsed() float64 { return e.watch.Elapsed().Seconds() }

// PulsePhase reports whether pulsing objects are drawn enlarged on the last advanced frame.
func (e *Engine) PulsePhase() bool { return e.pulse }

// Toggle flips animation on or off and moves the selection to the next object; the two
// are one user action. The stopwatch is started or stopped to match.
func (e *Engine) Toggle(store *scene.Store) {
	e.running = !e.running
	store.CycleSelection()
	if e.running {
		e.watch.Start()
	} else {
		e.watch.Stop()
	}
}

// Advance recomputes every object's current transform for this frame. While animation
// is off it does nothing, leaving current transforms frozen.
func (e *Engine) Advance(store *scene.Store) {
	if !e.running {
		return
	}
	e.pulse = !e.pulse
	angle := float32(math.Mod(e.Elapsed(), 2*math.Pi))
	spin := mgl32.HomogRotate3DY(angle)
	pulse := mgl32.Ident4()
	if e.pulse {
		pulse = mgl32.Scale3D(PulseFactor, PulseFactor, PulseFactor)
	}
	for _, obj := range store.All() {
		switch obj.Behavior {
		case scene.ContinuousRotate:
			obj.Current = obj.Base.Mul4(spin)
		case scene.PulseScale:
			obj.Current = obj.Base.Mul4(pulse)
		}
	}
}
