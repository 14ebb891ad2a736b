package scene

import "github.com/go-gl/mathgl/mgl32"

// Fixed projection parameters.
const (
	FieldOfView float32 = 1.0472 // 60 degrees in radians
	NearPlane   float32 = 0.1
	FarPlane    float32 = 1000.0
)

// Camera is a translation-only view camera with a perspective projection.
// Its position is fixed at construction; only the aspect ratio follows the
// framebuffer.
type Camera struct {
	Position    mgl32.Vec3
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	// Cached matrices
	viewMatrix       mgl32.Mat4
	projectionMatrix mgl32.Mat4
	dirty            bool
}

func NewCamera(position mgl32.Vec3) *Camera {
	return &Camera{
		Position:    position,
		FOV:         FieldOfView,
		AspectRatio: 1,
		NearPlane:   NearPlane,
		FarPlane:    FarPlane,
		dirty:       true,
	}
}

// UpdateAspectRatio keeps the previous ratio when the framebuffer has no
// area, which happens while the window is minimized.
func (c *Camera) UpdateAspectRatio(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	aspect := float32(width) / float32(height)
	if aspect != c.AspectRatio {
		c.AspectRatio = aspect
		c.dirty = true
	}
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) updateMatrices() {
	c.viewMatrix = View(c.Position)
	c.projectionMatrix = mgl32.Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
	c.dirty = false
}

// View moves the world opposite to the camera. There is no rotation.
func View(position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(-position.X(), -position.Y(), -position.Z())
}
