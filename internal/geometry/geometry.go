// Package geometry generates vertex and index data for the primitive shapes.
package geometry

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"scene-viewer/internal/primitives"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

var (
	ErrUnknownShape = errors.New("geometry: unknown shape")
	ErrInvalidDef   = errors.New("geometry: invalid definition")
)

// Vertex is a position with a flat colour; it is the only vertex layout the viewer draws.
type Vertex struct {
	Position mgl32.Vec3
	Color    color.RGBA
}

// MeshData is indexed triangle-list geometry. Every three indices form one triangle.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m MeshData) VertexCount() int { return len(m.Vertices) }

// IndexCount returns the number of indices.
func (m MeshData) IndexCount() int { return len(m.Indices) }

// Empty reports whether there is nothing to draw.
func (m MeshData) Empty() bool { return len(m.Indices) == 0 }

// Build returns the mesh for def, painted in def.Color.
// Globe is accepted but has no geometry: it yields empty data and no error.
func Build(def primitives.Def) (MeshData, error) {
	col, err := parseColor(def.Color)
	if err != nil {
		return MeshData{}, err
	}
	var m MeshData
	switch def.Shape {
	case primitives.Box:
		m, err = box(def.Size[0], def.Size[1], def.Size[2])
	case primitives.Cylinder:
		m, err = cylinder(def.Size[0], def.Size[1], def.Size[2], def.Slices, def.Stacks)
	case primitives.Sphere:
		m, err = sphere(def.Size[0], def.Slices, def.Stacks)
	case primitives.Globe:
		return MeshData{}, nil
	case primitives.Grid:
		m, err = grid(def.Size[0], def.Size[1], def.Slices, def.Stacks)
	default:
		return MeshData{}, fmt.Errorf("%w: %v", ErrUnknownShape, def.Shape)
	}
	if err != nil {
		return MeshData{}, fmt.Errorf("build %v: %w", def.Shape, err)
	}
	for i := range m.Vertices {
		m.Vertices[i].Color = col
	}
	return m, nil
}

func parseColor(name string) (color.RGBA, error) {
	if name == "" {
		return colornames.White, nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: unknown colour %q", ErrInvalidDef, name)
	}
	return c, nil
}

// box is an axis-aligned box centred on the origin with four vertices per face.
func box(w, h, d float32) (MeshData, error) {
	if w <= 0 || h <= 0 || d <= 0 {
		return MeshData{}, fmt.Errorf("%w: box size %vx%vx%v", ErrInvalidDef, w, h, d)
	}
	x, y, z := w/2, h/2, d/2
	faces := [6][4]mgl32.Vec3{
		{{-x, -y, -z}, {-x, +y, -z}, {+x, +y, -z}, {+x, -y, -z}}, // front
		{{-x, -y, +z}, {+x, -y, +z}, {+x, +y, +z}, {-x, +y, +z}}, // back
		{{-x, +y, -z}, {-x, +y, +z}, {+x, +y, +z}, {+x, +y, -z}}, // top
		{{-x, -y, -z}, {+x, -y, -z}, {+x, -y, +z}, {-x, -y, +z}}, // bottom
		{{-x, -y, +z}, {-x, +y, +z}, {-x, +y, -z}, {-x, -y, -z}}, // left
		{{+x, -y, -z}, {+x, +y, -z}, {+x, +y, +z}, {+x, -y, +z}}, // right
	}
	m := MeshData{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, p := range f {
			m.Vertices = append(m.Vertices, Vertex{Position: p})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m, nil
}

// cylinder is a (possibly truncated) cone along Y centred on the origin, with capped ends.
// Each ring repeats its first vertex so the seam can be textured later.
func cylinder(bottomRadius, topRadius, height float32, slices, stacks int) (MeshData, error) {
	if height <= 0 || bottomRadius < 0 || topRadius < 0 || slices < 3 || stacks < 1 {
		return MeshData{}, fmt.Errorf("%w: cylinder r=%v..%v h=%v %dx%d", ErrInvalidDef, bottomRadius, topRadius, height, slices, stacks)
	}
	var m MeshData
	stackHeight := height / float32(stacks)
	radiusStep := (topRadius - bottomRadius) / float32(stacks)
	dTheta := 2 * math32.Pi / float32(slices)

	for i := 0; i <= stacks; i++ {
		y := -height/2 + float32(i)*stackHeight
		r := bottomRadius + float32(i)*radiusStep
		for j := 0; j <= slices; j++ {
			s, c := math32.Sincos(float32(j) * dTheta)
			m.Vertices = append(m.Vertices, Vertex{Position: mgl32.Vec3{r * c, y, r * s}})
		}
	}
	ring := uint32(slices + 1)
	for i := uint32(0); i < uint32(stacks); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			m.Indices = append(m.Indices,
				i*ring+j, (i+1)*ring+j, (i+1)*ring+j+1,
				i*ring+j, (i+1)*ring+j+1, i*ring+j+1,
			)
		}
	}
	m.addCap(topRadius, height/2, slices, true)
	m.addCap(bottomRadius, -height/2, slices, false)
	return m, nil
}

// addCap appends a triangle fan closing one end of a cylinder.
func (m *MeshData) addCap(radius, y float32, slices int, top bool) {
	base := uint32(len(m.Vertices))
	dTheta := 2 * math32.Pi / float32(slices)
	for j := 0; j <= slices; j++ {
		s, c := math32.Sincos(float32(j) * dTheta)
		m.Vertices = append(m.Vertices, Vertex{Position: mgl32.Vec3{radius * c, y, radius * s}})
	}
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Position: mgl32.Vec3{0, y, 0}})
	for j := uint32(0); j < uint32(slices); j++ {
		if top {
			m.Indices = append(m.Indices, center, base+j+1, base+j)
		} else {
			m.Indices = append(m.Indices, center, base+j, base+j+1)
		}
	}
}

// sphere is a UV sphere: one vertex at each pole and stacks-1 rings between them.
func sphere(radius float32, slices, stacks int) (MeshData, error) {
	if radius <= 0 || slices < 3 || stacks < 2 {
		return MeshData{}, fmt.Errorf("%w: sphere r=%v %dx%d", ErrInvalidDef, radius, slices, stacks)
	}
	var m MeshData
	m.Vertices = append(m.Vertices, Vertex{Position: mgl32.Vec3{0, radius, 0}})
	dPhi := math32.Pi / float32(stacks)
	dTheta := 2 * math32.Pi / float32(slices)
	for i := 1; i < stacks; i++ {
		sp, cp := math32.Sincos(float32(i) * dPhi)
		for j := 0; j <= slices; j++ {
			st, ct := math32.Sincos(float32(j) * dTheta)
			m.Vertices = append(m.Vertices, Vertex{Position: mgl32.Vec3{radius * sp * ct, radius * cp, radius * sp * st}})
		}
	}
	m.Vertices = append(m.Vertices, Vertex{Position: mgl32.Vec3{0, -radius, 0}})

	ring := uint32(slices + 1)
	for j := uint32(1); j <= uint32(slices); j++ {
		m.Indices = append(m.Indices, 0, j+1, j)
	}
	for i := uint32(0); i < uint32(stacks-2); i++ {
		for j := uint32(0); j < uint32(slices); j++ {
			a := 1 + i*ring + j
			b := 1 + (i+1)*ring + j
			m.Indices = append(m.Indices, a, a+1, b, b, a+1, b+1)
		}
	}
	south := uint32(len(m.Vertices) - 1)
	last := south - ring
	for j := uint32(0); j < uint32(slices); j++ {
		m.Indices = append(m.Indices, south, last+j, last+j+1)
	}
	return m, nil
}

// grid is a flat cols×rows vertex lattice on the XZ plane centred on the origin.
func grid(width, depth float32, cols, rows int) (MeshData, error) {
	if width <= 0 || depth <= 0 || cols < 2 || rows < 2 {
		return MeshData{}, fmt.Errorf("%w: grid %vx%v %dx%d", ErrInvalidDef, width, depth, cols, rows)
	}
	m := MeshData{
		Vertices: make([]Vertex, 0, cols*rows),
		Indices:  make([]uint32, 0, (cols-1)*(rows-1)*6),
	}
	dx := width / float32(cols-1)
	dz := depth / float32(rows-1)
	for i := 0; i < rows; i++ {
		z := depth/2 - float32(i)*dz
		for j := 0; j < cols; j++ {
			m.Vertices = append(m.Vertices, Vertex{Position: mgl32.Vec3{-width/2 + float32(j)*dx, 0, z}})
		}
	}
	n := uint32(cols)
	for i := uint32(0); i < uint32(rows-1); i++ {
		for j := uint32(0); j < n-1; j++ {
			m.Indices = append(m.Indices,
				i*n+j, i*n+j+1, (i+1)*n+j,
				(i+1)*n+j, i*n+j+1, (i+1)*n+j+1,
			)
		}
	}
	return m, nil
}
