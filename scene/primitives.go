package scene

import "github.com/go-gl/mathgl/mgl32"

// Vertex counts of the built-in triangle lists.
const (
	CubeVertexCount    = 36
	PyramidVertexCount = 18
)

// Cube returns the 36 positions of a 2x2x2 cube centred on the origin, two
// counter-clockwise triangles per face. The slice is freshly allocated.
func Cube() []mgl32.Vec3 {
	return []mgl32.Vec3{
		// front
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1},
		{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1},
		// back
		{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1},
		{1, 1, -1}, {1, -1, -1}, {-1, -1, -1},
		// left
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, -1},
		// right
		{1, -1, -1}, {1, 1, -1}, {1, 1, 1},
		{1, 1, 1}, {1, -1, 1}, {1, -1, -1},
		// top
		{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1},
		{1, 1, 1}, {1, 1, -1}, {-1, 1, -1},
		// bottom
		{-1, -1, -1}, {1, -1, -1}, {1, -1, 1},
		{1, -1, 1}, {-1, -1, 1}, {-1, -1, -1},
	}
}

// Pyramid returns the 18 positions of a square-based pyramid with its apex
// at (0, 1, 0): four sides plus a base split into two triangles.
func Pyramid() []mgl32.Vec3 {
	apex := mgl32.Vec3{0, 1, 0}
	return []mgl32.Vec3{
		// front
		apex, {-1, -1, 1}, {1, -1, 1},
		// right
		apex, {1, -1, 1}, {1, -1, -1},
		// back
		apex, {1, -1, -1}, {-1, -1, -1},
		// left
		apex, {-1, -1, -1}, {-1, -1, 1},
		// base
		{-1, -1, 1}, {1, -1, 1}, {1, -1, -1},
		{1, -1, -1}, {-1, -1, -1}, {-1, -1, 1},
	}
}
