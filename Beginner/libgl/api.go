package libgl

import "unsafe"

// Api is the slice of OpenGL 3.3 core this program talks to.
// Object creation returns ids directly instead of filling out-params.
type Api interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	GetError() uint32

	GenVertexArray() uint32
	BindVertexArray(id uint32)
	GenBuffer() uint32
	BindBuffer(target, id uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	VertexAttribPointer(index uint32, size int32, dataType uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)

	CreateShader(stage uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	// GetShaderInfoLog reads at most length bytes of the info log, including the terminator.
	GetShaderInfoLog(shader uint32, length int32) string
	AttachShader(program, shader uint32)

	CreateProgram() uint32
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32, length int32) string
	UseProgram(program uint32)

	// ReadPixels returns tightly packed RGBA8 rows, bottom row first.
	ReadPixels(x, y, width, height int32) []byte
}
