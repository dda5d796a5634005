package camera

import (
	"scene-viewer/internal/input"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// PhiMin and PhiMax keep the polar angle away from the poles so look-at never degenerates.
	PhiMin = 0.1
	PhiMax = math32.Pi - 0.1

	RadiusMin = 3
	RadiusMax = 15

	// orbitRate is one pixel of pointer motion as an angle: a quarter of a degree.
	orbitRate = 0.25 * math32.Pi / 180
	// dollyRate is one pixel of pointer motion in world units.
	dollyRate = 0.05
)

// Orbit is a camera on a sphere around the origin. Theta (azimuth) is unbounded,
// Phi (polar) and Radius are clamped after every change.
type Orbit struct {
	Theta  float32
	Phi    float32
	Radius float32

	FovY float32 // vertical field of view, radians
	Near float32
	Far  float32

	lastX, lastY float32
}

// New returns an orbit camera with a 45° perspective and clip planes at 1 and 100.
// phi and radius are clamped into range.
func New(theta, phi, radius float32) *Orbit {
	c := &Orbit{
		Theta:  theta,
		Phi:    phi,
		Radius: radius,
		FovY:   mgl32.DegToRad(45),
		Near:   1,
		Far:    100,
	}
	c.clamp()
	return c
}

// SetPointer records the pointer position used as the origin of the next drag delta.
func (c *Orbit) SetPointer(x, y float32) {
	c.lastX, c.lastY = x, y
}

// Update applies one frame of pointer input. Orbit takes precedence over dolly when both
// controls are held. The pointer position is always recorded, even when nothing is held.
func (c *Orbit) Update(in input.Snapshot) {
	dx := in.PointerX - c.lastX
	dy := in.PointerY - c.lastY
	switch {
	case in.Held(input.KeyOrbit):
		c.Orbit(dx, dy)
	case in.Held(input.KeyDolly):
		c.Dolly(dx, dy)
	}
	c.lastX, c.lastY = in.PointerX, in.PointerY
}

// Orbit rotates the camera by a pointer delta in pixels.
func (c *Orbit) Orbit(dx, dy float32) {
	c.Theta += orbitRate * dx
	c.Phi += orbitRate * dy
	c.clamp()
}

// Dolly moves the camera toward or away from the origin by a pointer delta in pixels.
// Dragging right or up moves it away.
func (c *Orbit) Dolly(dx, dy float32) {
	c.Radius += dollyRate * (dx - dy)
	c.clamp()
}

// Set replaces the spherical coordinates, clamping phi and radius.
func (c *Orbit) Set(theta, phi, radius float32) {
	c.Theta, c.Phi, c.Radius = theta, phi, radius
	c.clamp()
}

func (c *Orbit) clamp() {
	c.Phi = mgl32.Clamp(c.Phi, PhiMin, PhiMax)
	c.Radius = mgl32.Clamp(c.Radius, RadiusMin, RadiusMax)
}

// Position converts the spherical coordinates to a Cartesian eye position.
func (c *Orbit) Position() mgl32.Vec3 {
	sinPhi, cosPhi := math32.Sincos(c.Phi)
	sinTheta, cosTheta := math32.Sincos(c.Theta)
	return mgl32.Vec3{
		c.Radius * sinPhi * cosTheta,
		c.Radius * cosPhi,
		c.Radius * sinPhi * sinTheta,
	}
}

// View returns the look-at matrix from Position toward the origin with +Y up.
func (c *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given width/height ratio.
func (c *Orbit) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}
