package viewerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"scene-viewer/internal/primitives"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFileIsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := write(t, `
window:
  title: Scene
camera:
  radius: 8
transpose_uniforms: true
initial_scene: [box, cylinder]
primitives:
  - shape: box
    color: teal
`)
	p, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, "Scene", p.Window.Title)
	assert.Equal(t, def.Window.Width, p.Window.Width, "untouched keys keep defaults")
	assert.Equal(t, float32(8), p.Camera.Radius)
	assert.Equal(t, def.Camera.Phi, p.Camera.Phi)
	assert.True(t, p.TransposeUniforms)
	assert.Equal(t, []primitives.Shape{primitives.Box, primitives.Cylinder}, p.InitialScene)

	cat, err := p.Catalog()
	require.NoError(t, err)
	d, _ := cat.Def(primitives.Box)
	assert.Equal(t, "teal", d.Color)
}

func TestLoadInvalid(t *testing.T) {
	p, err := Load(write(t, "initial_scene: [torus]\n"))
	assert.ErrorIs(t, err, primitives.ErrUnknownShape)
	assert.Equal(t, Default(), p)

	_, err = Load(write(t, "window: [not, a, map]\n"))
	assert.Error(t, err)

	p, err = Load(write(t, "primitives:\n  - color: teal\n"))
	assert.ErrorIs(t, err, primitives.ErrUnknownShape)
	assert.Equal(t, Default(), p)
}

func TestDefaultScene(t *testing.T) {
	p := Default()
	assert.Equal(t, []primitives.Shape{primitives.Grid, primitives.Box, primitives.Sphere}, p.InitialScene)
	assert.InDelta(t, 1024.0/720.0, p.Window.Aspect(), 1e-6)
}
