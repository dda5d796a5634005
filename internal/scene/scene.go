package scene

import (
	"fmt"
	"iter"

	"scene-viewer/internal/primitives"

	"github.com/go-gl/mathgl/mgl32"
)

// Behavior selects the idle animation applied on top of an object's base transform.
type Behavior int

const (
	PulseScale       Behavior = iota // scale flickers between 1 and 1.015 on alternate frames
	ContinuousRotate                 // rotates about Y at one radian per second of animation time
)

func (b Behavior) String() string {
	switch b {
	case PulseScale:
		return "pulse"
	case ContinuousRotate:
		return "rotate"
	}
	return fmt.Sprintf("behavior(%d)", int(b))
}

// BehaviorFor returns the idle behaviour objects of shape s get: round shapes rotate, the rest pulse.
func BehaviorFor(s primitives.Shape) Behavior {
	if s.Round() {
		return ContinuousRotate
	}
	return PulseScale
}

// Submesh is the slice of a mesh's index buffer one draw call consumes.
type Submesh struct {
	IndexCount uint32
	StartIndex uint32
	BaseVertex int32
}

// Constants is the per-object uniform block: the combined world-view-projection matrix
// for the current frame, laid out as the shader expects it.
type Constants struct {
	WorldViewProj mgl32.Mat4
}

// Mesh is an object's GPU-side geometry plus its uniform slot. The object owns it:
// Release is called exactly once, when the object leaves the store.
type Mesh interface {
	WriteUniform(c Constants)
	Draw(sub Submesh)
	Release()
}

// Object is one entry in the scene.
//
// Base is the persistent, user-edited transform. Current is what gets rendered;
// the animation engine derives it from Base each frame and it is never edited directly.
type Object struct {
	Shape    primitives.Shape
	Behavior Behavior
	Base     mgl32.Mat4
	Current  mgl32.Mat4
	Mesh     Mesh
	Submesh  Submesh
}

// NewObject returns an object whose current transform starts equal to base.
func NewObject(shape primitives.Shape, base mgl32.Mat4, mesh Mesh, sub Submesh) *Object {
	return &Object{
		Shape:    shape,
		Behavior: BehaviorFor(shape),
		Base:     base,
		Current:  base,
		Mesh:     mesh,
		Submesh:  sub,
	}
}

func (o *Object) release() {
	if o.Mesh != nil {
		o.Mesh.Release()
		o.Mesh = nil
	}
}

// Store is the ordered list of scene objects plus a selection cursor.
// Insertion order is draw order. While the store is non-empty the selection always
// indexes a live object; when empty there is no selection.
//
// Store is not safe for concurrent use: the frame loop mutates it in Update and reads it in Draw.
type Store struct {
	objects   []*Object
	selection int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{selection: -1}
}

// Len returns the number of objects.
func (s *Store) Len() int { return len(s.objects) }

// At returns the object at index i, or nil if i is out of range.
func (s *Store) At(i int) *Object {
	if i < 0 || i >= len(s.objects) {
		return nil
	}
	return s.objects[i]
}

// All iterates objects in draw order.
func (s *Store) All() iter.Seq2[int, *Object] {
	return func(yield func(int, *Object) bool) {
		for i, o := range s.objects {
			if !yield(i, o) {
				return
			}
		}
	}
}

// Add appends obj and selects it. It returns the new object's index.
func (s *Store) Add(obj *Object) int {
	s.objects = append(s.objects, obj)
	s.selection = len(s.objects) - 1
	return s.selection
}

// Remove releases and erases the object at index. Removing the selected object moves the
// selection back one (stopping at 0); removing an object before it keeps the same object
// selected. Returns false, doing nothing, if index is out of range or the store is empty.
func (s *Store) Remove(index int) bool {
	if index < 0 || index >= len(s.objects) {
		return false
	}
	s.objects[index].release()
	s.objects[index] = nil
	s.objects = append(s.objects[:index], s.objects[index+1:]...)

	switch {
	case len(s.objects) == 0:
		s.selection = -1
	case index == s.selection:
		s.selection = max(s.selection-1, 0)
	case index < s.selection:
		s.selection--
	}
	return true
}

// RemoveSelected removes the selected object. No-op on an empty store.
func (s *Store) RemoveSelected() bool {
	return s.Remove(s.selection)
}

// CycleSelection advances the selection to the next object, wrapping around. No-op when empty.
func (s *Store) CycleSelection() {
	if len(s.objects) == 0 {
		return
	}
	s.selection = (s.selection + 1) % len(s.objects)
}

// Select moves the selection to index. Returns false if index is out of range.
func (s *Store) Select(index int) bool {
	if index < 0 || index >= len(s.objects) {
		return false
	}
	s.selection = index
	return true
}

// Selection returns the selected index; ok is false when the store is empty.
func (s *Store) Selection() (index int, ok bool) {
	if len(s.objects) == 0 {
		return -1, false
	}
	return s.selection, true
}

// Current returns the selected object, or nil when the store is empty.
func (s *Store) Current() *Object {
	if len(s.objects) == 0 {
		return nil
	}
	return s.objects[s.selection]
}

// Clear releases every object and empties the store.
func (s *Store) Clear() {
	for _, o := range s.objects {
		o.release()
	}
	s.objects = nil
	s.selection = -1
}
