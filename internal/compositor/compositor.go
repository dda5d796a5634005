// Package compositor turns the scene into one frame of draw calls: it picks the raster
// mode, builds each object's world-view-projection matrix, uploads it to the object's
// uniform slot and draws the object.
package compositor

import (
	"fmt"

	"scene-viewer/internal/input"
	"scene-viewer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// PipelineMode is the rasterizer fill mode.
type PipelineMode int

const (
	Wireframe PipelineMode = iota
	Solid
)

func (m PipelineMode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Solid:
		return "solid"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ModeFor picks the fill mode from this frame's input alone. Wireframe is the default;
// holding the solid control selects Solid, and wins if both controls are held.
func ModeFor(in input.Snapshot) PipelineMode {
	mode := Wireframe
	if in.Held(input.KeyWireframe) {
		mode = Wireframe
	}
	if in.Held(input.KeySolid) {
		mode = Solid
	}
	return mode
}

// Backend is the rendering device as the compositor sees it.
type Backend interface {
	SetPipeline(mode PipelineMode)
	Clear()
	Present()
}

// Compositor draws a scene through a Backend.
type Compositor struct {
	backend    Backend
	projection mgl32.Mat4
	transpose  bool
	mode       PipelineMode
}

// New returns a compositor in Wireframe mode.
// transpose writes uniforms row-major, for shaders that expect the transposed layout;
// GL-style column-major targets leave it false.
func New(backend Backend, projection mgl32.Mat4, transpose bool) *Compositor {
	return &Compositor{
		backend:    backend,
		projection: projection,
		transpose:  transpose,
	}
}

// SetProjection replaces the projection matrix, e.g. after a resize.
func (c *Compositor) SetProjection(p mgl32.Mat4) { c.projection = p }

// Mode returns the fill mode the next frame will use.
func (c *Compositor) Mode() PipelineMode { return c.mode }

// SelectMode recomputes the fill mode from this frame's input. It reports whether the
// mode differs from the previous frame's.
func (c *Compositor) SelectMode(in input.Snapshot) bool {
	prev := c.mode
	c.mode = ModeFor(in)
	return prev != c.mode
}

// WorldViewProj returns the matrix written to an object's uniform slot.
func (c *Compositor) WorldViewProj(current, view mgl32.Mat4) mgl32.Mat4 {
	wvp := c.projection.Mul4(view).Mul4(current)
	if c.transpose {
		wvp = wvp.Transpose()
	}
	return wvp
}

// Frame renders every object in store order with the given view matrix.
func (c *Compositor) Frame(store *scene.Store, view mgl32.Mat4) {
	c.backend.SetPipeline(c.mode)
	c.backend.Clear()
	for _, obj := range store.All() {
		if obj.Mesh == nil {
			continue
		}
		obj.Mesh.WriteUniform(scene.Constants{WorldViewProj: c.WorldViewProj(obj.Current, view)})
		obj.Mesh.Draw(obj.Submesh)
	}
	c.backend.Present()
}
