package libgl

import (
	"encoding/binary"
	"log"
)

type buffer struct {
	state     *StateManager
	glId      uint32
	size      int
	usage     uint32
	allocated bool
}

type UnboundBuffer interface {
	Id() uint32
	Size() int
	Bind(target uint32) BoundBuffer
}

// BoundBuffer is a buffer that is current on a target, which GL 3.3 requires
// before its storage can be touched.
type BoundBuffer interface {
	UnboundBuffer
	// Allocate uploads data once. The buffer cannot be reallocated afterwards.
	Allocate(data any, usage uint32)
}

func NewBuffer(state *StateManager) UnboundBuffer {
	return &buffer{
		state: state,
		glId:  state.api.GenBuffer(),
	}
}

func (vbo *buffer) Id() uint32 {
	return vbo.glId
}

func (vbo *buffer) Size() int {
	return vbo.size
}

type boundBuffer struct {
	*buffer
	target uint32
}

func (vbo *buffer) Bind(target uint32) BoundBuffer {
	vbo.state.BindBuffer(target, vbo.glId)
	return &boundBuffer{buffer: vbo, target: target}
}

func (b *boundBuffer) Allocate(data any, usage uint32) {
	if b.allocated {
		log.Panicf("buffer %d is immutable", b.glId)
	}
	size := binary.Size(data)
	if size == -1 {
		log.Panicf("%T does not have a fixed size", data)
	}
	b.state.api.BufferData(b.target, size, Pointer(data), usage)
	b.size = size
	b.usage = usage
	b.allocated = true
}

type vertexArray struct {
	state *StateManager
	glId  uint32
}

type UnboundVertexArray interface {
	Id() uint32
	Bind() BoundVertexArray
}

type BoundVertexArray interface {
	UnboundVertexArray
	// Layout describes an attribute sourced from the buffer currently bound to
	// GL_ARRAY_BUFFER and enables it.
	Layout(attributeIndex int, size int, dataType uint32, normalized bool, stride int, offset int)
}

func NewVertexArray(state *StateManager) UnboundVertexArray {
	return &vertexArray{
		state: state,
		glId:  state.api.GenVertexArray(),
	}
}

func (vao *vertexArray) Id() uint32 {
	return vao.glId
}

func (vao *vertexArray) Bind() BoundVertexArray {
	vao.state.BindVertexArray(vao.glId)
	return BoundVertexArray(vao)
}

func (vao *vertexArray) Layout(attributeIndex int, size int, dataType uint32, normalized bool, stride int, offset int) {
	if vao.state.VertexArray != vao.glId {
		log.Panicf("vertex array %d is not bound", vao.glId)
	}
	vao.state.api.VertexAttribPointer(uint32(attributeIndex), int32(size), dataType, normalized, int32(stride), uintptr(offset))
	vao.state.api.EnableVertexAttribArray(uint32(attributeIndex))
}
