package camera

import (
	"math/rand"
	"testing"

	"scene-viewer/internal/input"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-4

func drag(c *Orbit, key input.Key, dx, dy float32) {
	var in input.Snapshot
	in.Hold(key)
	in.PointerX = c.lastX + dx
	in.PointerY = c.lastY + dy
	c.Update(in)
}

func TestNewClamps(t *testing.T) {
	c := New(0, 0, 100)
	assert.Equal(t, float32(PhiMin), c.Phi)
	assert.Equal(t, float32(RadiusMax), c.Radius)

	c = New(0, 10, 0)
	assert.Equal(t, float32(PhiMax), c.Phi)
	assert.Equal(t, float32(RadiusMin), c.Radius)
}

func TestOrbitDrag(t *testing.T) {
	c := New(math32.Pi/4, 1.3, 5)
	c.SetPointer(100, 100)
	drag(c, input.KeyOrbit, 40, 0)

	assert.InDelta(t, math32.Pi/4+0.1745, c.Theta, tol)
	assert.InDelta(t, 1.3, c.Phi, 1e-6)
	assert.InDelta(t, 5, c.Radius, 1e-6)
}

func TestDollyDrag(t *testing.T) {
	c := New(0, 1, 5)
	drag(c, input.KeyDolly, 10, 0)
	assert.InDelta(t, 5.5, c.Radius, tol)

	drag(c, input.KeyDolly, 0, 20)
	assert.InDelta(t, 4.5, c.Radius, tol)

	drag(c, input.KeyDolly, -1000, 0)
	assert.Equal(t, float32(RadiusMin), c.Radius)
}

func TestOrbitWinsOverDolly(t *testing.T) {
	c := New(0, 1, 5)
	var in input.Snapshot
	in.Hold(input.KeyOrbit).Hold(input.KeyDolly)
	in.PointerX = 40
	c.Update(in)

	assert.InDelta(t, 40*orbitRate, c.Theta, tol)
	assert.Equal(t, float32(5), c.Radius)
}

func TestPointerTrackedWithoutDrag(t *testing.T) {
	c := New(0, 1, 5)
	c.Update(input.Snapshot{PointerX: 300, PointerY: 200})
	assert.Equal(t, float32(0), c.Theta)

	// the next drag starts from the tracked position, not from the origin
	drag(c, input.KeyOrbit, 4, 0)
	assert.InDelta(t, 4*orbitRate, c.Theta, tol)
}

func TestClampsHoldForRandomDrags(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := New(math32.Pi/4, 1.3, 5)
	for i := 0; i < 5000; i++ {
		key := input.KeyOrbit
		if rng.Intn(2) == 0 {
			key = input.KeyDolly
		}
		drag(c, key, float32(rng.Intn(801)-400), float32(rng.Intn(801)-400))
		assert.GreaterOrEqual(t, c.Phi, float32(PhiMin))
		assert.LessOrEqual(t, c.Phi, float32(PhiMax))
		assert.GreaterOrEqual(t, c.Radius, float32(RadiusMin))
		assert.LessOrEqual(t, c.Radius, float32(RadiusMax))
	}
}

func TestPosition(t *testing.T) {
	c := New(0, math32.Pi/2, 5)
	p := c.Position()
	assert.InDelta(t, 5, p.X(), tol)
	assert.InDelta(t, 0, p.Y(), tol)
	assert.InDelta(t, 0, p.Z(), tol)

	c.Set(math32.Pi/2, math32.Pi/2, 4)
	p = c.Position()
	assert.InDelta(t, 0, p.X(), tol)
	assert.InDelta(t, 4, p.Z(), tol)
}

func TestViewLooksAtOrigin(t *testing.T) {
	c := New(math32.Pi/4, 1.3, 5)
	v := c.View()

	// the origin lands straight ahead on the view axis, radius units away
	origin := v.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, origin.X(), tol)
	assert.InDelta(t, 0, origin.Y(), tol)
	assert.InDelta(t, -5, origin.Z(), tol)

	// the eye maps to the view-space origin
	eye := c.Position()
	e := v.Mul4x1(eye.Vec4(1))
	assert.InDelta(t, 0, e.Len()-1, tol)
}
