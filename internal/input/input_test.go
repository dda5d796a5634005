package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressImpliesHeld(t *testing.T) {
	var s Snapshot
	s.Press(KeyRotateY).Hold(KeyScale)

	assert.True(t, s.Pressed(KeyRotateY))
	assert.True(t, s.Held(KeyRotateY))
	assert.True(t, s.Held(KeyScale))
	assert.False(t, s.Pressed(KeyScale))
	assert.False(t, s.Held(KeyUp))
}

func TestOutOfRangeKeys(t *testing.T) {
	var s Snapshot
	s.Press(Key(-1)).Hold(keyCount)
	assert.False(t, s.Pressed(Key(-1)))
	assert.False(t, s.Held(keyCount))
	assert.Equal(t, "unknown", Key(99).String())
}

func TestPointerOnly(t *testing.T) {
	s := Snapshot{PointerX: 10, PointerY: 20}
	s.Press(KeyDelete).Hold(KeyOrbit)

	p := s.PointerOnly()
	assert.Equal(t, Snapshot{PointerX: 10, PointerY: 20}, p)
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "orbit", KeyOrbit.String())
	assert.Equal(t, "toggle-animation", KeyToggleAnimation.String())
	assert.Equal(t, "console", KeyConsole.String())
}
