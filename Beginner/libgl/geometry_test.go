package libgl_test

import (
	"testing"

	"beginner-gl/Beginner/libgl"
	"beginner-gl/Beginner/libgl/gltest"

	"github.com/go-gl/gl/v3.3-core/gl"
)

func TestBufferAllocate(t *testing.T) {
	api := gltest.New()
	state := libgl.NewStateManager(api)

	vbo := libgl.NewBuffer(state)
	vbo.Bind(gl.ARRAY_BUFFER).Allocate([]float32{1, 2, 3, 4}, gl.STATIC_DRAW)

	if vbo.Size() != 16 {
		t.Errorf("buffer size should be 16 bytes but is %d", vbo.Size())
	}
	got := api.Floats(vbo.Id())
	want := []float32{1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("buffer should hold %v but holds %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("buffer[%d] should be %v but is %v", i, want[i], got[i])
		}
	}
}

func TestBufferIsImmutable(t *testing.T) {
	api := gltest.New()
	state := libgl.NewStateManager(api)
	bound := libgl.NewBuffer(state).Bind(gl.ARRAY_BUFFER)
	bound.Allocate([]float32{1}, gl.STATIC_DRAW)

	defer func() {
		if recover() == nil {
			t.Error("a second allocation should panic")
		}
	}()
	bound.Allocate([]float32{2}, gl.STATIC_DRAW)
}

func TestVertexArrayLayout(t *testing.T) {
	api := gltest.New()
	state := libgl.NewStateManager(api)

	vao := libgl.NewVertexArray(state)
	vbo := libgl.NewBuffer(state)
	bound := vao.Bind()
	vbo.Bind(gl.ARRAY_BUFFER).Allocate([]float32{0, 0, 0}, gl.STATIC_DRAW)
	bound.Layout(0, 3, gl.FLOAT, false, 0, 0)

	attrib := api.VertexArrays[vao.Id()][0]
	if attrib == nil {
		t.Fatal("attribute 0 should be described")
	}
	want := gltest.Attrib{Buffer: vbo.Id(), Size: 3, Type: gl.FLOAT, Normalized: false, Stride: 0, Offset: 0, Enabled: true}
	if *attrib != want {
		t.Errorf("attribute 0 should be %+v but is %+v", want, *attrib)
	}
}

func TestVertexArrayLayoutRequiresBinding(t *testing.T) {
	api := gltest.New()
	state := libgl.NewStateManager(api)
	vao := libgl.NewVertexArray(state)
	bound := vao.Bind()
	state.BindVertexArray(0)

	defer func() {
		if recover() == nil {
			t.Error("layout on an unbound vertex array should panic")
		}
	}()
	bound.Layout(0, 3, gl.FLOAT, false, 0, 0)
}
