package libgl_test

import (
	"testing"

	"beginner-gl/Beginner/libgl"
	"beginner-gl/Beginner/libgl/gltest"

	"github.com/go-gl/gl/v3.3-core/gl"
)

func TestStateManagerDropsRedundantCalls(t *testing.T) {
	tests := []struct {
		name   string
		call   func(s *libgl.StateManager)
		glCall string
		want   int
	}{
		{"vertex array", func(s *libgl.StateManager) { s.BindVertexArray(3) }, "BindVertexArray", 1},
		{"program", func(s *libgl.StateManager) { s.UseProgram(5) }, "UseProgram", 1},
		{"array buffer", func(s *libgl.StateManager) { s.BindBuffer(gl.ARRAY_BUFFER, 2) }, "BindBuffer", 1},
		{"element buffer", func(s *libgl.StateManager) { s.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 2) }, "BindBuffer", 3},
		{"clear color", func(s *libgl.StateManager) { s.ClearColor(1, 1, 1, 1) }, "ClearColor", 1},
		{"viewport", func(s *libgl.StateManager) { s.Viewport(0, 0, 800, 600) }, "Viewport", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := gltest.New()
			state := libgl.NewStateManager(api)
			for i := 0; i < 3; i++ {
				tt.call(state)
			}
			if n := api.Count(tt.glCall); n != tt.want {
				t.Errorf("%s should reach gl %d times but reached it %d times", tt.glCall, tt.want, n)
			}
		})
	}
}

func TestStateManagerAlternatingBinds(t *testing.T) {
	api := gltest.New()
	state := libgl.NewStateManager(api)
	for i := 0; i < 4; i++ {
		state.UseProgram(7)
		state.UseProgram(0)
	}
	if n := api.Count("UseProgram"); n != 8 {
		t.Errorf("every bind and unbind should reach gl, got %d of 8", n)
	}
}

func TestStateManagerClearColorZero(t *testing.T) {
	api := gltest.New()
	state := libgl.NewStateManager(api)
	state.ClearColor(0, 0, 0, 0)
	if n := api.Count("ClearColor"); n != 1 {
		t.Errorf("the first clear color should always reach gl, got %d calls", n)
	}
}
