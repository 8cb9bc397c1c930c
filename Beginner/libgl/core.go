package libgl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type coreApi struct{}

// Init resolves the GL entry points for the current context through lookup
// and returns the binding. The context must be current on the calling thread.
func Init(lookup func(name string) unsafe.Pointer) (Api, error) {
	if err := gl.InitWithProcAddrFunc(NewProcLoader(lookup)); err != nil {
		return nil, fmt.Errorf("could not resolve gl entry point: %w", err)
	}
	return &coreApi{}, nil
}

func (*coreApi) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*coreApi) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (*coreApi) Clear(mask uint32) {
	gl.Clear(mask)
}

func (*coreApi) GetError() uint32 {
	return gl.GetError()
}

func (*coreApi) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*coreApi) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (*coreApi) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*coreApi) BindBuffer(target, id uint32) {
	gl.BindBuffer(target, id)
}

func (*coreApi) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*coreApi) VertexAttribPointer(index uint32, size int32, dataType uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, dataType, normalized, stride, gl.PtrOffset(int(offset)))
}

func (*coreApi) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*coreApi) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (*coreApi) CreateShader(stage uint32) uint32 {
	return gl.CreateShader(stage)
}

func (*coreApi) ShaderSource(shader uint32, source string) {
	cStrs, free := gl.Strs(source + "\x00")
	defer free()
	length := int32(len(source))
	gl.ShaderSource(shader, 1, cStrs, &length)
}

func (*coreApi) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*coreApi) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (*coreApi) GetShaderInfoLog(shader uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	buf := make([]uint8, length+1)
	var written int32
	gl.GetShaderInfoLog(shader, length, &written, &buf[0])
	return string(buf[:written])
}

func (*coreApi) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*coreApi) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*coreApi) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*coreApi) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (*coreApi) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (*coreApi) GetProgramInfoLog(program uint32, length int32) string {
	if length <= 0 {
		return ""
	}
	buf := make([]uint8, length+1)
	var written int32
	gl.GetProgramInfoLog(program, length, &written, &buf[0])
	return string(buf[:written])
}

func (*coreApi) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*coreApi) ReadPixels(x, y, width, height int32) []byte {
	pix := make([]byte, int(width)*int(height)*4)
	if len(pix) == 0 {
		return pix
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, Pointer(pix))
	return pix
}
