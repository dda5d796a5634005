package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseShape(t *testing.T) {
	for _, s := range Shapes {
		got, err := ParseShape(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseShape("  Sphere ")
	require.NoError(t, err)
	assert.Equal(t, Sphere, got)

	_, err = ParseShape("torus")
	assert.ErrorIs(t, err, ErrUnknownShape)
}

func TestRound(t *testing.T) {
	assert.True(t, Cylinder.Round())
	assert.True(t, Sphere.Round())
	assert.False(t, Box.Round())
	assert.False(t, Globe.Round())
	assert.False(t, Grid.Round())
}

func TestShapeYAML(t *testing.T) {
	var d Def
	require.NoError(t, yaml.Unmarshal([]byte("shape: cylinder\nslices: 8\ncolor: gold\n"), &d))
	assert.Equal(t, Cylinder, d.Shape)
	assert.Equal(t, 8, d.Slices)

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), "shape: cylinder")

	assert.Error(t, yaml.Unmarshal([]byte("shape: torus\n"), &d))
}

func TestDefRequiresShapeKey(t *testing.T) {
	var defs []Def
	err := yaml.Unmarshal([]byte("- color: teal\n"), &defs)
	assert.ErrorIs(t, err, ErrUnknownShape)

	require.NoError(t, yaml.Unmarshal([]byte("- shape: box\n  color: teal\n"), &defs))
	require.Len(t, defs, 1)
	assert.Equal(t, Box, defs[0].Shape)
	assert.Equal(t, "teal", defs[0].Color)
}

func TestCatalogIsPrivateCopy(t *testing.T) {
	a := NewCatalog()
	require.NoError(t, a.Override(Def{Shape: Box, Color: "teal"}))

	d, ok := a.Def(Box)
	require.True(t, ok)
	assert.Equal(t, "teal", d.Color)
	assert.Equal(t, [3]float32{1, 1, 1}, d.Size, "zero fields keep defaults")

	b := NewCatalog()
	d, _ = b.Def(Box)
	assert.Equal(t, "orange", d.Color)
}

func TestCatalogOverrideUnknown(t *testing.T) {
	c := NewCatalog()
	assert.ErrorIs(t, c.Override(Def{Shape: Shape(42)}), ErrUnknownShape)
}
