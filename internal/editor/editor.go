// Package editor turns held and pressed edit keys into an incremental transform for the
// selected object.
//
// Steps are fixed per frame, not scaled by frame time, so editing speed follows the frame rate.
package editor

import (
	"scene-viewer/internal/input"
	"scene-viewer/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	Step         = 0.003 // translation per frame, world units
	GrowFactor   = 1.001
	ShrinkFactor = 0.999
	RotateStep   = 15.0 // degrees per key press
)

// Delta composes this frame's edit steps into one matrix, in this order:
// X translation, Z or Y translation (or uniform scale while the scale modifier is held),
// then X/Y/Z rotations on key press. ok is false when no edit key is active.
func Delta(in input.Snapshot) (delta mgl32.Mat4, ok bool) {
	delta = mgl32.Ident4()
	then := func(m mgl32.Mat4) {
		delta = m.Mul4(delta)
		ok = true
	}

	if in.Held(input.KeyLeft) {
		then(mgl32.Translate3D(Step, 0, 0))
	}
	if in.Held(input.KeyRight) {
		then(mgl32.Translate3D(-Step, 0, 0))
	}

	scaling := in.Held(input.KeyScale)
	vertical := in.Held(input.KeyVertical)
	if !scaling {
		if !vertical {
			if in.Held(input.KeyDown) {
				then(mgl32.Translate3D(0, 0, Step))
			}
			if in.Held(input.KeyUp) {
				then(mgl32.Translate3D(0, 0, -Step))
			}
		} else {
			if in.Held(input.KeyUp) {
				then(mgl32.Translate3D(0, Step, 0))
			}
			if in.Held(input.KeyDown) {
				then(mgl32.Translate3D(0, -Step, 0))
			}
		}
	} else {
		if in.Held(input.KeyUp) {
			then(mgl32.Scale3D(GrowFactor, GrowFactor, GrowFactor))
		}
		if in.Held(input.KeyDown) {
			then(mgl32.Scale3D(ShrinkFactor, ShrinkFactor, ShrinkFactor))
		}
	}

	// Shift+X would collide with the vertical binding, so X rotation ignores it.
	if in.Pressed(input.KeyRotateX) && !vertical {
		then(mgl32.HomogRotate3DX(mgl32.DegToRad(RotateStep)))
	}
	if in.Pressed(input.KeyRotateY) {
		then(mgl32.HomogRotate3DY(mgl32.DegToRad(RotateStep)))
	}
	if in.Pressed(input.KeyRotateZ) {
		then(mgl32.HomogRotate3DZ(mgl32.DegToRad(RotateStep)))
	}
	return delta, ok
}

// Apply left-multiplies this frame's delta onto the selected object's base transform.
// It reports whether anything changed; with no selection or no active edit key it does nothing.
func Apply(store *scene.Store, in input.Snapshot) bool {
	obj := store.Current()
	if obj == nil {
		return false
	}
	delta, ok := Delta(in)
	if !ok {
		return false
	}
	obj.Base = delta.Mul4(obj.Base)
	return true
}
