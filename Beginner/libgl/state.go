package libgl

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// StateManager mirrors the bindings it has issued and drops redundant calls.
// Everything that binds must go through it, or the mirror goes stale.
type StateManager struct {
	api                             Api
	ArrayBuffer, ElementArrayBuffer uint32
	VertexArray                     uint32
	Program                         uint32
	ClearColorRGBA                  [4]float32
	clearColorSet                   bool
	ViewportRect                    [4]int
}

func NewStateManager(api Api) *StateManager {
	return &StateManager{api: api}
}

func (s *StateManager) Api() Api {
	return s.api
}

func (s *StateManager) BindBuffer(target, buffer uint32) {
	switch target {
	case gl.ARRAY_BUFFER:
		if s.ArrayBuffer == buffer {
			return
		}
		s.ArrayBuffer = buffer
	case gl.ELEMENT_ARRAY_BUFFER:
		// The element binding is part of the vertex array state.
		s.ElementArrayBuffer = buffer
	}
	s.api.BindBuffer(target, buffer)
}

func (s *StateManager) BindVertexArray(vao uint32) {
	if s.VertexArray == vao {
		return
	}
	s.api.BindVertexArray(vao)
	s.VertexArray = vao
}

func (s *StateManager) UseProgram(program uint32) {
	if s.Program == program {
		return
	}
	s.api.UseProgram(program)
	s.Program = program
}

func (s *StateManager) ClearColor(r, g, b, a float32) {
	rgba := [4]float32{r, g, b, a}
	if s.clearColorSet && s.ClearColorRGBA == rgba {
		return
	}
	s.api.ClearColor(r, g, b, a)
	s.ClearColorRGBA = rgba
	s.clearColorSet = true
}

func (s *StateManager) Viewport(x, y, width, height int) {
	rect := [4]int{x, y, width, height}
	if s.ViewportRect == rect {
		return
	}
	s.api.Viewport(int32(x), int32(y), int32(width), int32(height))
	s.ViewportRect = rect
}
