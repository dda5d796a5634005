// Package session ties the scene state together. A Session owns the camera, the object
// store, the animation engine and the compositor, and is driven once per frame by
// Update then Draw.
package session

import (
	"errors"
	"fmt"

	"scene-viewer/internal/animation"
	"scene-viewer/internal/camera"
	"scene-viewer/internal/compositor"
	"scene-viewer/internal/editor"
	"scene-viewer/internal/geometry"
	"scene-viewer/internal/input"
	"scene-viewer/internal/logger"
	"scene-viewer/internal/primitives"
	"scene-viewer/internal/scene"
	"scene-viewer/internal/viewerconfig"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoSelection is returned by operations that need a selected object when the scene is empty.
var ErrNoSelection = errors.New("no object selected")

// MeshFactory uploads built geometry and returns the handle the new object will own.
type MeshFactory interface {
	CreateMesh(data geometry.MeshData) (scene.Mesh, error)
}

// spawnKeys maps the spawn controls to shapes.
var spawnKeys = []struct {
	key   input.Key
	shape primitives.Shape
}{
	{input.KeySpawnBox, primitives.Box},
	{input.KeySpawnCylinder, primitives.Cylinder},
	{input.KeySpawnSphere, primitives.Sphere},
	{input.KeySpawnGlobe, primitives.Globe},
	{input.KeySpawnGrid, primitives.Grid},
}

// Session is the viewer's state. It is not safe for concurrent use.
type Session struct {
	Camera *camera.Orbit
	Store  *scene.Store
	Anim   *animation.Engine

	// ShowHUD is read by the status overlay and flipped by the hud command.
	ShowHUD bool

	log     *logger.Logger
	comp    *compositor.Compositor
	catalog *primitives.Catalog
	meshes  MeshFactory
}

// Status is what the status overlay shows.
type Status struct {
	Objects   int
	Selection int // -1 when empty
	Current   primitives.Shape
	Mode      compositor.PipelineMode
	Animating bool
}

// New builds a session from prefs and spawns prefs.InitialScene in order.
// A failure to build the catalog or any initial object is returned and leaves nothing allocated.
func New(prefs viewerconfig.Prefs, backend compositor.Backend, meshes MeshFactory, clock animation.Clock, log *logger.Logger) (*Session, error) {
	catalog, err := prefs.Catalog()
	if err != nil {
		return nil, fmt.Errorf("primitive catalog: %w", err)
	}

	cam := camera.New(prefs.Camera.Theta, prefs.Camera.Phi, prefs.Camera.Radius)
	cam.FovY = mgl32.DegToRad(prefs.Camera.FovY)
	cam.Near = prefs.Camera.Near
	cam.Far = prefs.Camera.Far

	s := &Session{
		Camera:  cam,
		Store:   scene.NewStore(),
		Anim:    animation.New(clock),
		ShowHUD: prefs.ShowHUD,
		log:     log,
		comp:    compositor.New(backend, cam.Projection(prefs.Window.Aspect()), prefs.TransposeUniforms),
		catalog: catalog,
		meshes:  meshes,
	}
	for _, shape := range prefs.InitialScene {
		if err := s.Spawn(shape); err != nil {
			s.Close()
			return nil, fmt.Errorf("initial scene: %w", err)
		}
	}
	return s, nil
}

// BaseFor returns the starting transform of a new object: grids lie at the origin at
// full size, everything else is shrunk to 0.4 and lifted 0.2 above the grid.
func BaseFor(shape primitives.Shape) mgl32.Mat4 {
	if shape == primitives.Grid {
		return mgl32.Ident4()
	}
	return mgl32.Translate3D(0, 0.2, 0).Mul4(mgl32.Scale3D(0.4, 0.4, 0.4))
}

// Spawn builds shape from the catalog, uploads it and appends it to the store, selecting it.
// Shapes that build to empty geometry (Globe) still get an object; it has no mesh and draws nothing.
func (s *Session) Spawn(shape primitives.Shape) error {
	def, ok := s.catalog.Def(shape)
	if !ok {
		return fmt.Errorf("spawn %s: %w", shape, primitives.ErrUnknownShape)
	}
	data, err := geometry.Build(def)
	if err != nil {
		return fmt.Errorf("spawn %s: %w", shape, err)
	}

	var (
		mesh scene.Mesh
		sub  scene.Submesh
	)
	if !data.Empty() {
		mesh, err = s.meshes.CreateMesh(data)
		if err != nil {
			return fmt.Errorf("spawn %s: %w", shape, err)
		}
		sub = scene.Submesh{IndexCount: uint32(data.IndexCount())}
	}

	idx := s.Store.Add(scene.NewObject(shape, BaseFor(shape), mesh, sub))
	s.log.Logf("spawned %s #%d (%d vertices)", shape, idx, data.VertexCount())
	return nil
}

// Delete removes the selected object.
func (s *Session) Delete() error {
	sel, ok := s.Store.Selection()
	if !ok {
		return ErrNoSelection
	}
	return s.DeleteAt(sel)
}

// DeleteAt removes the object at index.
func (s *Session) DeleteAt(index int) error {
	obj := s.Store.At(index)
	if obj == nil {
		return fmt.Errorf("delete: no object #%d", index)
	}
	shape := obj.Shape
	s.Store.Remove(index)
	s.log.Logf("deleted %s #%d, %d left", shape, index, s.Store.Len())
	return nil
}

// ToggleAnimation pauses or resumes idle animation and moves the selection to the next object.
func (s *Session) ToggleAnimation() {
	s.Anim.Toggle(s.Store)
	state := "paused"
	if s.Anim.Running() {
		state = "running"
	}
	if sel, ok := s.Store.Selection(); ok {
		s.log.Logf("animation %s, selected #%d", state, sel)
		return
	}
	s.log.Logf("animation %s", state)
}

// Update applies one frame of input. It returns true when the user asked to quit.
func (s *Session) Update(in input.Snapshot) (quit bool) {
	if in.Pressed(input.KeyQuit) {
		return true
	}

	s.Camera.Update(in)

	if in.Pressed(input.KeyDelete) {
		if err := s.Delete(); err != nil && !errors.Is(err, ErrNoSelection) {
			s.log.Log(err.Error())
		}
	}
	if in.Pressed(input.KeyToggleAnimation) {
		s.ToggleAnimation()
	}
	for _, sk := range spawnKeys {
		if in.Pressed(sk.key) {
			if err := s.Spawn(sk.shape); err != nil {
				s.log.Log(err.Error())
			}
		}
	}

	editor.Apply(s.Store, in)
	s.Anim.Advance(s.Store)

	if s.comp.SelectMode(in) {
		s.log.Logf("mode %s", s.comp.Mode())
	}
	return false
}

// Draw renders the scene through the backend.
func (s *Session) Draw() {
	s.comp.Frame(s.Store, s.Camera.View())
}

// Resize rebuilds the projection for a new framebuffer size.
func (s *Session) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	s.comp.SetProjection(s.Camera.Projection(float32(width) / float32(height)))
}

// Status reports the counters shown by the overlay.
func (s *Session) Status() Status {
	st := Status{
		Objects:   s.Store.Len(),
		Selection: -1,
		Mode:      s.comp.Mode(),
		Animating: s.Anim.Running(),
	}
	if sel, ok := s.Store.Selection(); ok {
		st.Selection = sel
		st.Current = s.Store.At(sel).Shape
	}
	return st
}

// Close releases every mesh. The session must not be used afterwards.
func (s *Session) Close() {
	s.Store.Clear()
}
