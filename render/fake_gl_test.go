package render

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// syntaxError marks a source the fake compiler rejects.
const syntaxError = "@@"

type fakeShader struct {
	stage    ShaderStage
	source   string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	shaders []uint32
	linked  bool
	log     string
}

type drawCall struct {
	vbo       uint32
	first     int32
	count     int32
	instances int32
}

// fakeGL records the calls the renderer makes. Sources containing
// syntaxError, or empty sources, fail to compile; a program links only when
// every attached shader compiled.
type fakeGL struct {
	nextID   uint32
	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	// emptyLogs makes the driver report a zero-length info log on failure.
	emptyLogs bool

	// logFetches counts info log retrievals; zeroFetches counts the ones
	// attempted with an empty buffer.
	logFetches  int
	zeroFetches int

	errorQueue []uint32

	// errorsOnCompile is pushed onto errorQueue by every CompileShader.
	errorsOnCompile []uint32

	uniformLocs map[string]int32
	lookups     int
	matrices    map[int32]mgl32.Mat4
	floats      map[int32]float32

	boundVAO    uint32
	boundVBO    uint32
	buffers     map[uint32][]float32
	attribs     map[uint32]int32
	enabled     map[uint32]bool
	depthTest   bool
	usedProgram uint32
	viewport    [4]int32
	clears      []ClearMask
	draws       []drawCall
	calls       []string
}

var _ GL = (*fakeGL)(nil)

func newFakeGL() *fakeGL {
	return &fakeGL{
		shaders:  make(map[uint32]*fakeShader),
		programs: make(map[uint32]*fakeProgram),
		uniformLocs: map[string]int32{
			UniformModelView:  0,
			UniformProjection: 1,
			UniformView:       2,
			UniformTime:       3,
		},
		matrices: make(map[int32]mgl32.Mat4),
		floats:   make(map[int32]float32),
		buffers:  make(map[uint32][]float32),
		attribs:  make(map[uint32]int32),
		enabled:  make(map[uint32]bool),
	}
}

func (f *fakeGL) id() uint32 {
	f.nextID++
	return f.nextID
}

func (f *fakeGL) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGL) CreateShader(stage ShaderStage) uint32 {
	id := f.id()
	f.shaders[id] = &fakeShader{stage: stage}
	f.record("CreateShader(%s)", stage)
	return id
}

func (f *fakeGL) ShaderSource(shader uint32, source string) {
	f.shaders[shader].source = source
}

func (f *fakeGL) CompileShader(shader uint32) {
	s := f.shaders[shader]
	switch {
	case strings.TrimSpace(s.source) == "":
		s.log = "0:1(1): error: syntax error, unexpected end of file\n"
	case strings.Contains(s.source, syntaxError):
		s.log = fmt.Sprintf("0:3(1): error: syntax error, unexpected '%s'\n", syntaxError)
	default:
		s.compiled = true
	}
	f.errorQueue = append(f.errorQueue, f.errorsOnCompile...)
	f.record("CompileShader(%d)", shader)
}

func (f *fakeGL) ShaderCompiled(shader uint32) bool { return f.shaders[shader].compiled }

func (f *fakeGL) ShaderInfoLogLength(shader uint32) int32 {
	if f.emptyLogs || f.shaders[shader].log == "" {
		return 0
	}
	return int32(len(f.shaders[shader].log) + 1)
}

func (f *fakeGL) ShaderInfoLog(shader uint32, buf []byte) {
	f.logFetches++
	if len(buf) == 0 {
		f.zeroFetches++
		return
	}
	copy(buf, f.shaders[shader].log+"\x00")
}

func (f *fakeGL) DeleteShader(shader uint32) {
	f.shaders[shader].deleted = true
	f.record("DeleteShader(%d)", shader)
}

func (f *fakeGL) CreateProgram() uint32 {
	id := f.id()
	f.programs[id] = &fakeProgram{}
	return id
}

func (f *fakeGL) AttachShader(program, shader uint32) {
	p := f.programs[program]
	p.shaders = append(p.shaders, shader)
}

func (f *fakeGL) LinkProgram(program uint32) {
	p := f.programs[program]
	p.linked = len(p.shaders) == 2
	for _, s := range p.shaders {
		if !f.shaders[s].compiled {
			p.linked = false
			p.log = fmt.Sprintf("error: %s shader not compiled\n", f.shaders[s].stage)
		}
	}
	f.record("LinkProgram(%d)", program)
}

func (f *fakeGL) ProgramLinked(program uint32) bool { return f.programs[program].linked }

func (f *fakeGL) ProgramInfoLogLength(program uint32) int32 {
	if f.emptyLogs || f.programs[program].log == "" {
		return 0
	}
	return int32(len(f.programs[program].log) + 1)
}

func (f *fakeGL) ProgramInfoLog(program uint32, buf []byte) {
	f.logFetches++
	if len(buf) == 0 {
		f.zeroFetches++
		return
	}
	copy(buf, f.programs[program].log+"\x00")
}

func (f *fakeGL) UseProgram(program uint32) {
	f.usedProgram = program
	f.record("UseProgram(%d)", program)
}

func (f *fakeGL) GetUniformLocation(program uint32, name string) int32 {
	f.lookups++
	if loc, ok := f.uniformLocs[name]; ok {
		return loc
	}
	return -1
}

func (f *fakeGL) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	f.matrices[location] = m
	f.record("UniformMatrix4fv(%d)", location)
}

func (f *fakeGL) Uniform1f(location int32, v float32) {
	f.floats[location] = v
	f.record("Uniform1f(%d)", location)
}

func (f *fakeGL) GetError() uint32 {
	if len(f.errorQueue) == 0 {
		return 0
	}
	code := f.errorQueue[0]
	f.errorQueue = f.errorQueue[1:]
	return code
}

func (f *fakeGL) GenVertexArray() uint32 { return f.id() }

func (f *fakeGL) BindVertexArray(vao uint32) {
	f.boundVAO = vao
	f.record("BindVertexArray(%d)", vao)
}

func (f *fakeGL) GenBuffer() uint32 { return f.id() }

func (f *fakeGL) BindArrayBuffer(vbo uint32) {
	f.boundVBO = vbo
	f.record("BindArrayBuffer(%d)", vbo)
}

func (f *fakeGL) StaticArrayBufferData(data []float32) {
	f.buffers[f.boundVBO] = append([]float32(nil), data...)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32) {
	f.attribs[index] = size
	f.record("VertexAttribPointer(%d,%d)", index, size)
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.enabled[index] = true
	f.record("EnableVertexAttribArray(%d)", index)
}

func (f *fakeGL) DrawTrianglesInstanced(first, count, instances int32) {
	f.draws = append(f.draws, drawCall{vbo: f.boundVBO, first: first, count: count, instances: instances})
	f.record("DrawTrianglesInstanced(%d,%d,%d)", first, count, instances)
}

func (f *fakeGL) Viewport(x, y, width, height int32) {
	f.viewport = [4]int32{x, y, width, height}
	f.record("Viewport(%d,%d)", width, height)
}

func (f *fakeGL) Clear(mask ClearMask) {
	f.clears = append(f.clears, mask)
	f.record("Clear(%d)", mask)
}

func (f *fakeGL) EnableDepthTest() { f.depthTest = true }

// captureLogs routes diagnostics into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

// errorLines returns the non-empty error-level records in buf.
func errorLines(buf *bytes.Buffer) []string {
	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "level=ERROR") {
			lines = append(lines, line)
		}
	}
	return lines
}
