package input

// Key is a symbolic control. Platform key codes are mapped onto this set by a Sampler
// (see graphics.Sampler) so camera and edit logic never see raw codes.
type Key int

const (
	KeyOrbit  Key = iota // held: pointer drag orbits the camera (left mouse)
	KeyDolly             // held: pointer drag moves the camera in/out (right mouse)
	KeyLeft              // arrow keys drive translation/scale of the selected object
	KeyRight
	KeyUp
	KeyDown
	KeyScale    // modifier: up/down scale instead of translate (Ctrl)
	KeyVertical // modifier: up/down translate along Y instead of Z (Shift)
	KeyRotateX
	KeyRotateY
	KeyRotateZ
	KeyWireframe
	KeySolid
	KeyToggleAnimation // also cycles the selection (Tab)
	KeyDelete
	KeySpawnBox
	KeySpawnCylinder
	KeySpawnSphere
	KeySpawnGlobe
	KeySpawnGrid
	KeyQuit
	KeyConsole

	keyCount
)

var keyNames = [keyCount]string{
	"orbit", "dolly", "left", "right", "up", "down", "scale", "vertical",
	"rotate-x", "rotate-y", "rotate-z", "wireframe", "solid", "toggle-animation",
	"delete", "spawn-box", "spawn-cylinder", "spawn-sphere", "spawn-globe", "spawn-grid",
	"quit", "console",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Snapshot is the input state for one frame: which keys went down this frame (edge),
// which are currently down (level), and the absolute pointer position.
// The zero value has nothing pressed and the pointer at (0,0).
type Snapshot struct {
	pressed  [keyCount]bool
	held     [keyCount]bool
	PointerX float32
	PointerY float32
}

// Pressed reports whether k went down this frame.
func (s Snapshot) Pressed(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.pressed[k]
}

// Held reports whether k is currently down.
func (s Snapshot) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.held[k]
}

// Press marks k as pressed this frame. A key pressed this frame is also held.
func (s *Snapshot) Press(k Key) *Snapshot {
	if k >= 0 && k < keyCount {
		s.pressed[k] = true
		s.held[k] = true
	}
	return s
}

// Hold marks k as held without a rising edge.
func (s *Snapshot) Hold(k Key) *Snapshot {
	if k >= 0 && k < keyCount {
		s.held[k] = true
	}
	return s
}

// PointerOnly returns a snapshot with the same pointer position and no keys.
// Used while the console owns the keyboard so the camera keeps tracking the pointer.
func (s Snapshot) PointerOnly() Snapshot {
	return Snapshot{PointerX: s.PointerX, PointerY: s.PointerY}
}

// Sampler produces one Snapshot per frame.
type Sampler interface {
	Sample() Snapshot
}
