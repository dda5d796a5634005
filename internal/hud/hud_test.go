package hud

import (
	"testing"

	"scene-viewer/internal/compositor"
	"scene-viewer/internal/primitives"
	"scene-viewer/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	lines := Lines(session.Status{
		Objects:   3,
		Selection: 2,
		Current:   primitives.Sphere,
		Mode:      compositor.Solid,
		Animating: true,
	})
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "objects: 3  selected: #2 sphere", lines[0])
	assert.Equal(t, "mode: solid", lines[1])
	assert.Equal(t, "animation: running", lines[2])
}

func TestLinesEmptyScene(t *testing.T) {
	lines := Lines(session.Status{Selection: -1})
	assert.Equal(t, "objects: 0  selected: none", lines[0])
	assert.Equal(t, "mode: wireframe", lines[1])
	assert.Equal(t, "animation: paused", lines[2])
}
