package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"mesh-instancing/scene"
)

// DefaultInstances is the number of copies drawn per frame.
const DefaultInstances = 100000

// positionAttrib is the vertex attribute index of the position input.
const positionAttrib = 0

// Options configures a RendererContext.
type Options struct {
	Camera    mgl32.Vec3
	Instances int32
}

// DefaultOptions places the camera 420 units back along +Z.
func DefaultOptions() Options {
	return Options{
		Camera:    mgl32.Vec3{0, 0, 420},
		Instances: DefaultInstances,
	}
}

// RendererContext owns everything the per-frame draw needs. It must only be
// used from the thread that owns the GL context.
type RendererContext struct {
	gl      GL
	program *Program
	meshes  *MeshSet

	camera    *scene.Camera
	instances int32

	// modelView is uploaded to mv_matrix every frame. Per-instance placement
	// is computed in the vertex shader, so this stays identity.
	modelView mgl32.Mat4
}

// NewRendererContext wires a built program and uploaded meshes together and
// sets the fixed pipeline state.
func NewRendererContext(gl GL, program *Program, meshes *MeshSet, opts Options) *RendererContext {
	if opts.Instances <= 0 {
		opts.Instances = DefaultInstances
	}

	gl.EnableDepthTest()

	return &RendererContext{
		gl:        gl,
		program:   program,
		meshes:    meshes,
		camera:    scene.NewCamera(opts.Camera),
		instances: opts.Instances,
		modelView: mgl32.Ident4(),
	}
}

// Camera returns the view camera.
func (r *RendererContext) Camera() *scene.Camera {
	return r.camera
}

// Instances returns the number of copies drawn per frame.
func (r *RendererContext) Instances() int32 {
	return r.instances
}

// RenderFrame clears the framebuffer and draws the selected mesh instanced.
// elapsed is the time in seconds since startup and drives the shader's
// per-instance animation.
func (r *RendererContext) RenderFrame(elapsed float64, width, height int, selected scene.MeshKind) {
	gl := r.gl

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(DepthBufferBit | ColorBufferBit)

	gl.UseProgram(r.program.Handle)

	r.camera.UpdateAspectRatio(width, height)
	proj := r.camera.GetProjectionMatrix()
	view := r.camera.GetViewMatrix()

	gl.UniformMatrix4fv(r.program.ModelViewLoc, r.modelView)
	gl.UniformMatrix4fv(r.program.ProjectionLoc, proj)
	gl.UniformMatrix4fv(r.program.ViewLoc, view)
	gl.Uniform1f(r.program.TimeLoc, float32(elapsed))

	mesh := r.meshes.Buffer(selected)
	gl.BindArrayBuffer(mesh.VBO)
	gl.VertexAttribPointer(positionAttrib, 3)
	gl.EnableVertexAttribArray(positionAttrib)
	gl.DrawTrianglesInstanced(0, mesh.VertexCount, r.instances)
}
