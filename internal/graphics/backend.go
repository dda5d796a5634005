package graphics

import (
	"errors"
	"fmt"
	"image/color"
	"unsafe"

	"scene-viewer/internal/compositor"
	"scene-viewer/internal/geometry"
	"scene-viewer/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrTooManyVertices is returned by CreateMesh for geometry that 16-bit indices cannot address.
var ErrTooManyVertices = errors.New("mesh exceeds 65536 vertices")

const maxVertices = 1 << 16

// The shader does no lighting: position goes through the object's world-view-projection
// matrix and the vertex colour is passed straight to the fragment.
const (
	colorVS = `#version 330
in vec3 vertexPosition;
in vec4 vertexColor;
uniform mat4 objectWVP;
out vec4 fragColor;
void main() {
    fragColor = vertexColor;
    gl_Position = objectWVP * vec4(vertexPosition, 1.0);
}
`
	colorFS = `#version 330
in vec4 fragColor;
out vec4 finalColor;
void main() {
    finalColor = fragColor;
}
`
)

// Backend renders through raylib. It implements compositor.Backend and creates scene meshes.
// All methods must be called on the thread that owns the GL context.
type Backend struct {
	material   rl.Material
	wvpLoc     int32
	background color.RGBA
}

// NewBackend compiles the colour shader. It fails if the program is invalid or lacks the
// matrix uniform; the viewer cannot draw anything without either.
func NewBackend(background color.RGBA) (*Backend, error) {
	shader := rl.LoadShaderFromMemory(colorVS, colorFS)
	if !rl.IsShaderValid(shader) {
		return nil, errors.New("color shader failed to compile or link")
	}
	loc := rl.GetShaderLocation(shader, "objectWVP")
	if loc < 0 {
		rl.UnloadShader(shader)
		return nil, errors.New("color shader has no objectWVP uniform")
	}
	mat := rl.LoadMaterialDefault()
	mat.Shader = shader
	return &Backend{material: mat, wvpLoc: loc, background: background}, nil
}

// SetPipeline switches the rasterizer between line and fill mode.
func (b *Backend) SetPipeline(mode compositor.PipelineMode) {
	if mode == compositor.Wireframe {
		rl.EnableWireMode()
		return
	}
	rl.DisableWireMode()
}

// Clear clears colour and depth and sets the state the scene draws with.
// Culling is off because the grid and cylinder caps are viewed from both sides.
func (b *Backend) Clear() {
	rl.ClearBackground(b.background)
	rl.EnableDepthTest()
	rl.DisableBackfaceCulling()
}

// Present restores the default 2D state so overlays drawn after the scene are filled and
// unaffected by depth. The buffer swap itself happens in EndDrawing.
func (b *Backend) Present() {
	rl.DisableWireMode()
	rl.DisableDepthTest()
	rl.EnableBackfaceCulling()
}

// Close unloads the shader and material.
func (b *Backend) Close() {
	rl.UnloadMaterial(b.material)
}

// CreateMesh uploads data to the GPU. Buffers are allocated with raylib's allocator so
// UnloadMesh can free them on Release.
func (b *Backend) CreateMesh(data geometry.MeshData) (scene.Mesh, error) {
	n := data.VertexCount()
	if n > maxVertices {
		return nil, fmt.Errorf("%w: %d", ErrTooManyVertices, n)
	}
	if n == 0 || data.IndexCount() == 0 {
		return nil, errors.New("mesh has no geometry")
	}

	mesh := rl.Mesh{
		VertexCount:   int32(n),
		TriangleCount: int32(data.IndexCount() / 3),
	}
	positions := unsafe.Slice((*float32)(rl.MemAlloc(uint32(n*3*4))), n*3)
	colors := unsafe.Slice((*uint8)(rl.MemAlloc(uint32(n*4))), n*4)
	indices := unsafe.Slice((*uint16)(rl.MemAlloc(uint32(data.IndexCount()*2))), data.IndexCount())
	packVertices(data, positions, colors, indices)
	mesh.Vertices = &positions[0]
	mesh.Colors = &colors[0]
	mesh.Indices = &indices[0]

	rl.UploadMesh(&mesh, false)
	return &gpuMesh{backend: b, mesh: mesh}, nil
}

// packVertices flattens data into raylib's attribute layout: xyz floats, rgba bytes, u16 indices.
func packVertices(data geometry.MeshData, positions []float32, colors []uint8, indices []uint16) {
	for i, v := range data.Vertices {
		copy(positions[i*3:], v.Position[:])
		colors[i*4+0] = v.Color.R
		colors[i*4+1] = v.Color.G
		colors[i*4+2] = v.Color.B
		colors[i*4+3] = v.Color.A
	}
	for i, idx := range data.Indices {
		indices[i] = uint16(idx)
	}
}

// gpuMesh is one uploaded object. raylib uniforms live on the program, so WriteUniform
// must be followed by this mesh's Draw before the next object writes its own.
type gpuMesh struct {
	backend *Backend
	mesh    rl.Mesh
}

func (m *gpuMesh) WriteUniform(c scene.Constants) {
	rl.SetShaderValueMatrix(m.backend.material.Shader, m.backend.wvpLoc, toMatrix(c.WorldViewProj))
}

// Draw issues the submesh's index range. Only whole-buffer ranges are supported: raylib
// always draws from the first index with no vertex offset.
func (m *gpuMesh) Draw(sub scene.Submesh) {
	mesh := m.mesh
	mesh.TriangleCount = int32(sub.IndexCount / 3)
	rl.DrawMesh(mesh, m.backend.material, rl.MatrixIdentity())
}

func (m *gpuMesh) Release() {
	rl.UnloadMesh(&m.mesh)
}

// toMatrix converts a column-major mgl32 matrix to raylib's field layout, which is also
// column-major (M0..M3 is the first column).
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
