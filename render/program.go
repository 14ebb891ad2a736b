package render

// Uniform names shared with glsl/vertShader.glsl.
const (
	UniformModelView  = "mv_matrix"
	UniformProjection = "p_matrix"
	UniformView       = "v_matrix"
	UniformTime       = "tf"
)

// Program is a linked shader program with its uniform locations resolved
// once at build time. A location of -1 means the uniform is not active in
// the program; GL ignores uploads to it.
type Program struct {
	Handle uint32

	ModelViewLoc  int32
	ProjectionLoc int32
	ViewLoc       int32
	TimeLoc       int32

	linked bool
}

func newProgram(gl GL, handle uint32, linked bool) *Program {
	return &Program{
		Handle:        handle,
		ModelViewLoc:  gl.GetUniformLocation(handle, UniformModelView),
		ProjectionLoc: gl.GetUniformLocation(handle, UniformProjection),
		ViewLoc:       gl.GetUniformLocation(handle, UniformView),
		TimeLoc:       gl.GetUniformLocation(handle, UniformTime),
		linked:        linked,
	}
}

// Linked reports whether the driver linked the program successfully.
func (p *Program) Linked() bool {
	return p.linked
}
