package animation

import (
	"math"
	"testing"
	"time"

	"scene-viewer/internal/primitives"
	"scene-viewer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time          { return c.now }
func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func TestStopwatchResumes(t *testing.T) {
	clk := newManualClock()
	w := NewStopwatch(clk)
	assert.False(t, w.Running())
	clk.Advance(time.Second)
	assert.Zero(t, w.Elapsed())

	w.Start()
	clk.Advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, w.Elapsed())

	w.Stop()
	clk.Advance(5 * time.Second)
	assert.Equal(t, 2*time.Second, w.Elapsed())

	w.Start()
	w.Start()
	clk.Advance(time.Second)
	assert.Equal(t, 3*time.Second, w.Elapsed())
}

func newStore(shapes ...primitives.Shape) (*scene.Store, []*scene.Object) {
	store := scene.NewStore()
	var objs []*scene.Object
	base := mgl32.Translate3D(0, 0.2, 0).Mul4(mgl32.Scale3D(0.4, 0.4, 0.4))
	for _, s := range shapes {
		o := scene.NewObject(s, base, nil, scene.Submesh{})
		store.Add(o)
		objs = append(objs, o)
	}
	return store, objs
}

func TestPulseAlternatesEveryFrame(t *testing.T) {
	store, objs := newStore(primitives.Box)
	box := objs[0]
	e := New(newManualClock())
	enlarged := box.Base.Mul4(mgl32.Scale3D(PulseFactor, PulseFactor, PulseFactor))

	for frame := 0; frame < 6; frame++ {
		e.Advance(store)
		if frame%2 == 0 {
			assert.Equal(t, box.Base, box.Current, "frame %d", frame)
		} else {
			assert.True(t, enlarged.ApproxEqual(box.Current), "frame %d", frame)
		}
	}
}

func TestPulsePhaseSharedAcrossObjects(t *testing.T) {
	store, objs := newStore(primitives.Box, primitives.Grid, primitives.Globe)
	e := New(newManualClock())
	e.Advance(store)
	e.Advance(store)
	require.True(t, e.PulsePhase())
	for _, o := range objs {
		assert.InDelta(t, 0.4*PulseFactor, o.Current.At(0, 0), 1e-6)
	}
}

func TestRotationFollowsStopwatch(t *testing.T) {
	store, objs := newStore(primitives.Sphere)
	sphere := objs[0]
	clk := newManualClock()
	e := New(clk)

	for _, s := range []float64{0.5, 1.25, 3, 7.5} {
		clk.now = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(seconds(s))
		e.Advance(store)
		angle := float32(math.Mod(s, 2*math.Pi))
		want := sphere.Base.Mul4(mgl32.HomogRotate3DY(angle))
		assert.True(t, want.ApproxEqualThreshold(sphere.Current, 1e-5), "t=%v", s)
	}
}

func TestPausedFreezesCurrent(t *testing.T) {
	store, objs := newStore(primitives.Box, primitives.Sphere)
	clk := newManualClock()
	e := New(clk)

	clk.Advance(time.Second)
	e.Advance(store)
	e.Advance(store)
	frozen := []mgl32.Mat4{objs[0].Current, objs[1].Current}

	e.Toggle(store)
	require.False(t, e.Running())
	for i := 0; i < 5; i++ {
		clk.Advance(time.Second)
		objs[0].Base = mgl32.Translate3D(1, 0, 0).Mul4(objs[0].Base)
		e.Advance(store)
	}
	assert.Equal(t, frozen[0], objs[0].Current)
	assert.Equal(t, frozen[1], objs[1].Current)
	assert.InDelta(t, 1.0, e.Elapsed(), 1e-9, "stopwatch paused with animation")
}

func TestToggleCyclesSelectionAndResumes(t *testing.T) {
	store, _ := newStore(primitives.Grid, primitives.Box, primitives.Sphere)
	clk := newManualClock()
	e := New(clk)
	require.True(t, e.Running())

	clk.Advance(2 * time.Second)
	e.Toggle(store)
	sel, _ := store.Selection()
	assert.Equal(t, 0, sel, "selection wrapped from 2 to 0")
	assert.False(t, e.Running())

	clk.Advance(10 * time.Second)
	e.Toggle(store)
	sel, _ = store.Selection()
	assert.Equal(t, 1, sel)
	assert.True(t, e.Running())

	clk.Advance(time.Second)
	assert.InDelta(t, 3.0, e.Elapsed(), 1e-9)
}

func TestToggleOnEmptyStore(t *testing.T) {
	store := scene.NewStore()
	e := New(newManualClock())
	e.Toggle(store)
	assert.False(t, e.Running())
	assert.Zero(t, store.Len())
	e.Advance(store)
}
