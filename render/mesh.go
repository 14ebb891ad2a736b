package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"mesh-instancing/scene"
)

// MeshBuffer is a GPU vertex buffer holding a triangle list of positions.
type MeshBuffer struct {
	VBO         uint32
	VertexCount int32
}

// MeshSet holds the vertex array object and one buffer per selectable mesh.
type MeshSet struct {
	VAO     uint32
	Cube    MeshBuffer
	Pyramid MeshBuffer
}

// UploadMesh copies positions into a new static vertex buffer.
func UploadMesh(gl GL, positions []mgl32.Vec3) MeshBuffer {
	data := make([]float32, 0, len(positions)*3)
	for _, p := range positions {
		data = append(data, p[0], p[1], p[2])
	}

	vbo := gl.GenBuffer()
	gl.BindArrayBuffer(vbo)
	gl.StaticArrayBufferData(data)

	return MeshBuffer{VBO: vbo, VertexCount: int32(len(positions))}
}

// NewMeshSet creates the shared vertex array and uploads the cube and the
// pyramid, in that order.
func NewMeshSet(gl GL) *MeshSet {
	vao := gl.GenVertexArray()
	gl.BindVertexArray(vao)

	return &MeshSet{
		VAO:     vao,
		Cube:    UploadMesh(gl, scene.Cube()),
		Pyramid: UploadMesh(gl, scene.Pyramid()),
	}
}

// Buffer returns the buffer drawn for kind.
func (m *MeshSet) Buffer(kind scene.MeshKind) MeshBuffer {
	if kind == scene.MeshPyramid {
		return m.Pyramid
	}
	return m.Cube
}
