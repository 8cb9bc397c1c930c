// Package gltest provides a recording libgl.Api that needs no GPU.
package gltest

import (
	"encoding/binary"
	"math"
	"unsafe"

	"beginner-gl/Beginner/libgl"

	"github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/exp/slices"
)

var _ libgl.Api = (*Api)(nil)

type Call struct {
	Name string
	Args []any
}

type Shader struct {
	Stage    uint32
	Source   string
	Compiled bool
	Log      string
}

type Program struct {
	Shaders   []uint32
	Linked    bool
	Validated bool
	Log       string
}

type Attrib struct {
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Enabled    bool
}

type Draw struct {
	Mode        uint32
	First       int32
	Count       int32
	Program     uint32
	VertexArray uint32
}

// Api records every call and keeps just enough state to answer queries.
type Api struct {
	// CompileFails reports whether a source should fail to compile. Nil
	// compiles everything.
	CompileFails func(stage uint32, source string) bool
	CompileLog   string
	// ValidateFails forces validation to fail even for a linked program.
	ValidateFails bool
	// ZeroProgram makes CreateProgram return 0.
	ZeroProgram bool
	// Errors is drained by GetError, front first.
	Errors []uint32

	Calls        []Call
	Draws        []Draw
	Buffers      map[uint32][]byte
	VertexArrays map[uint32]map[uint32]*Attrib
	Shaders      map[uint32]*Shader
	Programs     map[uint32]*Program

	ArrayBuffer    uint32
	VertexArray    uint32
	CurrentProgram uint32
	ClearRGBA      [4]float32
	ViewportRect   [4]int32

	nextId uint32
}

func New() *Api {
	return &Api{
		Buffers:      map[uint32][]byte{},
		VertexArrays: map[uint32]map[uint32]*Attrib{},
		Shaders:      map[uint32]*Shader{},
		Programs:     map[uint32]*Program{},
	}
}

func (a *Api) record(name string, args ...any) {
	a.Calls = append(a.Calls, Call{Name: name, Args: args})
}

func (a *Api) id() uint32 {
	a.nextId++
	return a.nextId
}

// Count returns how many times the named call was made.
func (a *Api) Count(name string) int {
	n := 0
	for _, c := range a.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Index returns the position of the first call named name at or after from,
// or -1.
func (a *Api) Index(name string, from int) int {
	if from >= len(a.Calls) {
		return -1
	}
	i := slices.IndexFunc(a.Calls[from:], func(c Call) bool {
		return c.Name == name
	})
	if i < 0 {
		return -1
	}
	return from + i
}

// Names lists the recorded call names starting at from.
func (a *Api) Names(from int) []string {
	names := make([]string, 0, len(a.Calls)-from)
	for _, c := range a.Calls[from:] {
		names = append(names, c.Name)
	}
	return names
}

// Floats decodes a buffer's contents as little endian float32 values.
func (a *Api) Floats(buffer uint32) []float32 {
	data := a.Buffers[buffer]
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}

func (a *Api) Viewport(x, y, width, height int32) {
	a.record("Viewport", x, y, width, height)
	a.ViewportRect = [4]int32{x, y, width, height}
}

func (a *Api) ClearColor(r, g, b, alpha float32) {
	a.record("ClearColor", r, g, b, alpha)
	a.ClearRGBA = [4]float32{r, g, b, alpha}
}

func (a *Api) Clear(mask uint32) {
	a.record("Clear", mask)
}

func (a *Api) GetError() uint32 {
	a.record("GetError")
	if len(a.Errors) == 0 {
		return gl.NO_ERROR
	}
	code := a.Errors[0]
	a.Errors = a.Errors[1:]
	return code
}

func (a *Api) GenVertexArray() uint32 {
	id := a.id()
	a.record("GenVertexArray", id)
	a.VertexArrays[id] = map[uint32]*Attrib{}
	return id
}

func (a *Api) BindVertexArray(id uint32) {
	a.record("BindVertexArray", id)
	a.VertexArray = id
}

func (a *Api) GenBuffer() uint32 {
	id := a.id()
	a.record("GenBuffer", id)
	a.Buffers[id] = nil
	return id
}

func (a *Api) BindBuffer(target, id uint32) {
	a.record("BindBuffer", target, id)
	if target == gl.ARRAY_BUFFER {
		a.ArrayBuffer = id
	}
}

func (a *Api) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	a.record("BufferData", target, size, usage)
	if target != gl.ARRAY_BUFFER || a.ArrayBuffer == 0 {
		return
	}
	buf := make([]byte, size)
	if data != nil {
		copy(buf, unsafe.Slice((*byte)(data), size))
	}
	a.Buffers[a.ArrayBuffer] = buf
}

func (a *Api) VertexAttribPointer(index uint32, size int32, dataType uint32, normalized bool, stride int32, offset uintptr) {
	a.record("VertexAttribPointer", index, size, dataType, normalized, stride, offset)
	attribs, ok := a.VertexArrays[a.VertexArray]
	if !ok {
		return
	}
	attrib := attribs[index]
	if attrib == nil {
		attrib = &Attrib{}
		attribs[index] = attrib
	}
	attrib.Buffer = a.ArrayBuffer
	attrib.Size = size
	attrib.Type = dataType
	attrib.Normalized = normalized
	attrib.Stride = stride
	attrib.Offset = offset
}

func (a *Api) EnableVertexAttribArray(index uint32) {
	a.record("EnableVertexAttribArray", index)
	attribs, ok := a.VertexArrays[a.VertexArray]
	if !ok {
		return
	}
	if attribs[index] == nil {
		attribs[index] = &Attrib{}
	}
	attribs[index].Enabled = true
}

func (a *Api) DrawArrays(mode uint32, first, count int32) {
	a.record("DrawArrays", mode, first, count)
	a.Draws = append(a.Draws, Draw{
		Mode:        mode,
		First:       first,
		Count:       count,
		Program:     a.CurrentProgram,
		VertexArray: a.VertexArray,
	})
}

func (a *Api) CreateShader(stage uint32) uint32 {
	id := a.id()
	a.record("CreateShader", stage, id)
	a.Shaders[id] = &Shader{Stage: stage}
	return id
}

func (a *Api) ShaderSource(shader uint32, source string) {
	a.record("ShaderSource", shader)
	if s, ok := a.Shaders[shader]; ok {
		s.Source = source
	}
}

func (a *Api) CompileShader(shader uint32) {
	a.record("CompileShader", shader)
	s, ok := a.Shaders[shader]
	if !ok {
		return
	}
	s.Compiled = a.CompileFails == nil || !a.CompileFails(s.Stage, s.Source)
	if !s.Compiled {
		s.Log = a.CompileLog
	}
}

func (a *Api) GetShaderiv(shader, pname uint32) int32 {
	a.record("GetShaderiv", shader, pname)
	s, ok := a.Shaders[shader]
	if !ok {
		return 0
	}
	switch pname {
	case gl.COMPILE_STATUS:
		if s.Compiled {
			return gl.TRUE
		}
		return gl.FALSE
	case gl.INFO_LOG_LENGTH:
		return logLength(s.Log)
	case gl.SHADER_TYPE:
		return int32(s.Stage)
	}
	return 0
}

func (a *Api) GetShaderInfoLog(shader uint32, length int32) string {
	a.record("GetShaderInfoLog", shader, length)
	if s, ok := a.Shaders[shader]; ok {
		return truncateLog(s.Log, length)
	}
	return ""
}

func (a *Api) AttachShader(program, shader uint32) {
	a.record("AttachShader", program, shader)
	if p, ok := a.Programs[program]; ok {
		p.Shaders = append(p.Shaders, shader)
	}
}

func (a *Api) CreateProgram() uint32 {
	if a.ZeroProgram {
		a.record("CreateProgram", uint32(0))
		return 0
	}
	id := a.id()
	a.record("CreateProgram", id)
	a.Programs[id] = &Program{}
	return id
}

// LinkProgram links when exactly one compiled vertex and one compiled
// fragment shader are attached.
func (a *Api) LinkProgram(program uint32) {
	a.record("LinkProgram", program)
	p, ok := a.Programs[program]
	if !ok {
		return
	}
	var vertex, fragment int
	for _, id := range p.Shaders {
		s := a.Shaders[id]
		if s == nil || !s.Compiled {
			continue
		}
		switch s.Stage {
		case gl.VERTEX_SHADER:
			vertex++
		case gl.FRAGMENT_SHADER:
			fragment++
		}
	}
	p.Linked = vertex == 1 && fragment == 1
	p.Validated = false
	p.Log = ""
	if !p.Linked {
		p.Log = "error: program needs one vertex and one fragment shader\x00"
	}
}

func (a *Api) ValidateProgram(program uint32) {
	a.record("ValidateProgram", program)
	p, ok := a.Programs[program]
	if !ok {
		return
	}
	switch {
	case !p.Linked:
		p.Validated = false
		p.Log = "error: program is not linked\x00"
	case a.VertexArray == 0:
		p.Validated = false
		p.Log = "error: no vertex array object bound\x00"
	case a.ValidateFails:
		p.Validated = false
		p.Log = "error: validation failed\x00"
	default:
		p.Validated = true
		p.Log = ""
	}
}

func (a *Api) GetProgramiv(program, pname uint32) int32 {
	a.record("GetProgramiv", program, pname)
	p, ok := a.Programs[program]
	if !ok {
		return 0
	}
	switch pname {
	case gl.LINK_STATUS:
		return glBool(p.Linked)
	case gl.VALIDATE_STATUS:
		return glBool(p.Validated)
	case gl.INFO_LOG_LENGTH:
		return logLength(p.Log)
	case gl.ATTACHED_SHADERS:
		return int32(len(p.Shaders))
	}
	return 0
}

func (a *Api) GetProgramInfoLog(program uint32, length int32) string {
	a.record("GetProgramInfoLog", program, length)
	if p, ok := a.Programs[program]; ok {
		return truncateLog(p.Log, length)
	}
	return ""
}

func (a *Api) UseProgram(program uint32) {
	a.record("UseProgram", program)
	a.CurrentProgram = program
}

// ReadPixels returns the clear color everywhere; nothing is rasterized.
func (a *Api) ReadPixels(x, y, width, height int32) []byte {
	a.record("ReadPixels", x, y, width, height)
	pix := make([]byte, int(width)*int(height)*4)
	var rgba [4]byte
	for i, c := range a.ClearRGBA {
		rgba[i] = uint8(math.Round(float64(c) * 0xff))
	}
	for i := 0; i < len(pix); i += 4 {
		copy(pix[i:i+4], rgba[:])
	}
	return pix
}

func glBool(v bool) int32 {
	if v {
		return gl.TRUE
	}
	return gl.FALSE
}

// logLength mirrors GL: the terminator counts, an empty log is 0.
func logLength(log string) int32 {
	if log == "" {
		return 0
	}
	n := int32(len(log))
	if log[len(log)-1] != 0 {
		n++
	}
	return n
}

func truncateLog(log string, length int32) string {
	if length <= 0 {
		return ""
	}
	if int(length-1) < len(log) {
		log = log[:length-1]
	}
	return log
}
