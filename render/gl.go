package render

import "github.com/go-gl/mathgl/mgl32"

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// ClearMask selects the framebuffer planes cleared by GL.Clear.
type ClearMask uint32

const (
	ColorBufferBit ClearMask = 1 << iota
	DepthBufferBit
)

// GL is the subset of the OpenGL 4.1 core API the renderer drives.
// internal/opengl implements it on top of go-gl; tests use a recorder.
//
// The *InfoLogLength / *InfoLog pairs mirror the two-step driver protocol:
// the length (including the terminating NUL) is queried first and the log
// is then fetched into a caller-owned buffer of exactly that size.
type GL interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLogLength(shader uint32) int32
	ShaderInfoLog(shader uint32, buf []byte)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLogLength(program uint32) int32
	ProgramInfoLog(program uint32, buf []byte)
	UseProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, m mgl32.Mat4)
	Uniform1f(location int32, v float32)

	// GetError pops one code off the driver error queue; 0 means empty.
	GetError() uint32

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	GenBuffer() uint32
	BindArrayBuffer(vbo uint32)
	StaticArrayBufferData(data []float32)
	VertexAttribPointer(index uint32, size int32)
	EnableVertexAttribArray(index uint32)
	DrawTrianglesInstanced(first, count, instances int32)

	Viewport(x, y, width, height int32)
	Clear(mask ClearMask)
	// EnableDepthTest turns on depth testing with a less-or-equal compare.
	EnableDepthTest()
}
