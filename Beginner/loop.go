package main

import (
	"beginner-gl/Beginner/libgl"
	"beginner-gl/Beginner/libwin"

	"github.com/go-gl/gl/v3.3-core/gl"
)

var clearColor = [4]float32{1, 1, 1, 1}

// RenderLoop draws the scene once per frame until the window is asked to
// close. afterDraw, when set, runs after each draw and before the frame is
// presented.
func RenderLoop(platform libwin.Platform, ctx libwin.Window, state *libgl.StateManager, scene *Scene, afterDraw func(frame int)) {
	for frame := 0; !ctx.ShouldClose(); frame++ {
		platform.PollEvents()

		state.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
		state.Api().Clear(gl.COLOR_BUFFER_BIT)

		DrawScene(state, scene)

		if afterDraw != nil {
			afterDraw(frame)
		}
		ctx.SwapBuffers()
	}
}

func DrawScene(state *libgl.StateManager, scene *Scene) {
	if scene.Program != nil {
		scene.Program.Bind()
	} else {
		state.UseProgram(0)
	}
	scene.VertexArray.Bind()
	state.Api().DrawArrays(gl.TRIANGLES, 0, int32(len(TriangleVertices)/3))
	state.BindVertexArray(0)
	state.UseProgram(0)
}
