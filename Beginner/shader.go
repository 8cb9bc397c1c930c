package main

import (
	"errors"
	"log"

	"beginner-gl/Beginner/libgl"
)

type stageSource struct {
	source string
	stage  libgl.Stage
}

// CompileShaders builds scene.Program from the two stage sources. Every
// failure is logged. A stage that does not compile is left out and linking
// still runs; a failed link skips validation. The returned error lists what
// failed, and the program is kept on the scene either way.
func CompileShaders(state *libgl.StateManager, scene *Scene, vertexSrc, fragmentSrc string) error {
	prog, err := libgl.NewProgram(state)
	if err != nil {
		log.Println("Error creating shader program!")
		return &libgl.ProgramError{Failures: []*libgl.StageError{stageError(err)}}
	}
	scene.Program = prog

	var failures libgl.ProgramError
	for _, s := range []stageSource{
		{vertexSrc, libgl.VertexStage},
		{fragmentSrc, libgl.FragmentStage},
	} {
		if err := prog.Attach(s.source, s.stage); err != nil {
			log.Printf("Error compiling the %v shader: '%v'\n", s.stage, stageError(err).Log)
			failures.Add(err)
		}
	}

	if err := prog.Link(); err != nil {
		log.Printf("Error linking program: '%v'\n", stageError(err).Log)
		failures.Add(err)
		return failures.Err()
	}

	if err := prog.Validate(scene.VertexArray); err != nil {
		log.Printf("Error validating program: '%v'\n", stageError(err).Log)
		failures.Add(err)
	}
	return failures.Err()
}

func stageError(err error) *libgl.StageError {
	var stageErr *libgl.StageError
	if errors.As(err, &stageErr) {
		return stageErr
	}
	return &libgl.StageError{Log: err.Error()}
}
