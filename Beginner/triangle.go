package main

import (
	"beginner-gl/Beginner/libgl"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// TriangleVertices holds three xyz positions in normalized device
// coordinates. The vertex shader halves x and y.
var TriangleVertices = [9]float32{
	-1, -1, 0,
	1, -1, 0,
	0, 1, 0,
}

// Scene owns every GL object the program creates. They live until the
// context is destroyed.
type Scene struct {
	VertexArray  libgl.UnboundVertexArray
	VertexBuffer libgl.UnboundBuffer
	Program      libgl.UnboundProgram
}

func CreateTriangle(state *libgl.StateManager) *Scene {
	vao := libgl.NewVertexArray(state)
	vbo := libgl.NewBuffer(state)

	bound := vao.Bind()
	vbo.Bind(gl.ARRAY_BUFFER).Allocate(&TriangleVertices, gl.STATIC_DRAW)
	bound.Layout(0, 3, gl.FLOAT, false, 0, 0)
	state.BindBuffer(gl.ARRAY_BUFFER, 0)
	state.BindVertexArray(0)

	return &Scene{
		VertexArray:  vao,
		VertexBuffer: vbo,
	}
}
