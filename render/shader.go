package render

import (
	"fmt"
	"strings"
)

// BuildProgram compiles the vertex and fragment sources and links them into
// a program.
//
// Compile and link failures are logged together with the driver's info log
// but never returned: a Program is always produced and may reference a
// program object that cannot be drawn with. Callers that need a hard
// failure check Program.Linked.
func BuildProgram(gl GL, vertexSource, fragmentSource string) *Program {
	vert := compileStage(gl, VertexStage, vertexSource)
	frag := compileStage(gl, FragmentStage, fragmentSource)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	DrainErrors(gl, "link program")
	linked := gl.ProgramLinked(prog)
	if !linked {
		Logger().Error("linking failed", "program", prog)
		logProgramInfo(gl, prog)
	}

	// The program keeps its own copy of the compiled stages.
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	return newProgram(gl, prog, linked)
}

func compileStage(gl GL, stage ShaderStage, source string) uint32 {
	shader := gl.CreateShader(stage)
	gl.ShaderSource(shader, source)
	gl.CompileShader(shader)

	DrainErrors(gl, "compile "+stage.String()+" shader")
	if !gl.ShaderCompiled(shader) {
		Logger().Error(stage.String()+" compilation failed", "stage", stage.String(), "shader", shader)
		logShaderInfo(gl, stage, shader)
	}
	return shader
}

func logShaderInfo(gl GL, stage ShaderStage, shader uint32) {
	withInfoLog(gl.ShaderInfoLogLength(shader), func(buf []byte) {
		gl.ShaderInfoLog(shader, buf)
		Logger().Error("shader info log", "stage", stage.String(), "log", infoLogText(buf))
	})
}

func logProgramInfo(gl GL, program uint32) {
	withInfoLog(gl.ProgramInfoLogLength(program), func(buf []byte) {
		gl.ProgramInfoLog(program, buf)
		Logger().Error("program info log", "program", program, "log", infoLogText(buf))
	})
}

// withInfoLog hands fn a buffer of exactly length bytes for the duration of
// the call. Nothing is allocated or fetched when the driver reports an
// empty log.
func withInfoLog(length int32, fn func(buf []byte)) {
	if length <= 0 {
		return
	}
	fn(make([]byte, length))
}

// infoLogText trims the NUL terminator and trailing newlines drivers append.
func infoLogText(buf []byte) string {
	s := string(buf)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "\r\n")
}

// DrainErrors pops every pending code off the GL error queue, logging each
// one against op. It reports whether any error was pending.
func DrainErrors(gl GL, op string) bool {
	found := false
	for code := gl.GetError(); code != 0; code = gl.GetError() {
		Logger().Error("gl error", "op", op, "code", fmt.Sprintf("0x%04X", code))
		found = true
	}
	return found
}
