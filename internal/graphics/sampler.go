package graphics

import (
	"scene-viewer/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// binding maps one symbolic control to the physical keys or mouse buttons that drive it.
type binding struct {
	key     input.Key
	keys    []int32
	buttons []rl.MouseButton
}

var bindings = []binding{
	{key: input.KeyOrbit, buttons: []rl.MouseButton{rl.MouseLeftButton}},
	{key: input.KeyDolly, buttons: []rl.MouseButton{rl.MouseRightButton}},
	{key: input.KeyLeft, keys: []int32{rl.KeyLeft}},
	{key: input.KeyRight, keys: []int32{rl.KeyRight}},
	{key: input.KeyUp, keys: []int32{rl.KeyUp}},
	{key: input.KeyDown, keys: []int32{rl.KeyDown}},
	{key: input.KeyScale, keys: []int32{rl.KeyLeftControl, rl.KeyRightControl}},
	{key: input.KeyVertical, keys: []int32{rl.KeyLeftShift, rl.KeyRightShift}},
	{key: input.KeyRotateX, keys: []int32{rl.KeyX}},
	{key: input.KeyRotateY, keys: []int32{rl.KeyY}},
	{key: input.KeyRotateZ, keys: []int32{rl.KeyZ}},
	{key: input.KeyWireframe, keys: []int32{rl.KeyW}},
	{key: input.KeySolid, keys: []int32{rl.KeyS}},
	{key: input.KeyToggleAnimation, keys: []int32{rl.KeyTab}},
	{key: input.KeyDelete, keys: []int32{rl.KeyDelete}},
	{key: input.KeySpawnBox, keys: []int32{rl.KeyB}},
	{key: input.KeySpawnCylinder, keys: []int32{rl.KeyC}},
	{key: input.KeySpawnSphere, keys: []int32{rl.KeyE}},
	{key: input.KeySpawnGlobe, keys: []int32{rl.KeyG}},
	{key: input.KeySpawnGrid, keys: []int32{rl.KeyP}},
	{key: input.KeyQuit, keys: []int32{rl.KeyEscape}},
	{key: input.KeyConsole, keys: []int32{rl.KeyGrave}},
}

// device is the slice of raylib's input API the sampler reads.
type device interface {
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
	IsMouseButtonDown(b rl.MouseButton) bool
	IsMouseButtonPressed(b rl.MouseButton) bool
	MousePosition() (x, y float32)
}

type raylibDevice struct{}

func (raylibDevice) IsKeyDown(key int32) bool                   { return rl.IsKeyDown(key) }
func (raylibDevice) IsKeyPressed(key int32) bool                { return rl.IsKeyPressed(key) }
func (raylibDevice) IsMouseButtonDown(b rl.MouseButton) bool    { return rl.IsMouseButtonDown(b) }
func (raylibDevice) IsMouseButtonPressed(b rl.MouseButton) bool { return rl.IsMouseButtonPressed(b) }
func (raylibDevice) MousePosition() (float32, float32) {
	p := rl.GetMousePosition()
	return p.X, p.Y
}

// Sampler reads raylib's keyboard and mouse state into an input.Snapshot once per frame.
type Sampler struct {
	dev device
}

// NewSampler returns a sampler over the live window's input.
func NewSampler() *Sampler {
	return &Sampler{dev: raylibDevice{}}
}

// Sample implements input.Sampler.
func (s *Sampler) Sample() input.Snapshot {
	var in input.Snapshot
	for _, b := range bindings {
		for _, k := range b.keys {
			if s.dev.IsKeyPressed(k) {
				in.Press(b.key)
			} else if s.dev.IsKeyDown(k) {
				in.Hold(b.key)
			}
		}
		for _, btn := range b.buttons {
			if s.dev.IsMouseButtonPressed(btn) {
				in.Press(b.key)
			} else if s.dev.IsMouseButtonDown(btn) {
				in.Hold(b.key)
			}
		}
	}
	in.PointerX, in.PointerY = s.dev.MousePosition()
	return in
}
