package libgl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type Stage uint32

const (
	VertexStage   Stage = gl.VERTEX_SHADER
	FragmentStage Stage = gl.FRAGMENT_SHADER
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("0x%X", uint32(s))
}

type program struct {
	state     *StateManager
	glId      uint32
	stages    []Stage
	linked    bool
	validated bool
}

type UnboundProgram interface {
	Id() uint32
	// Stages lists the stages that compiled and were attached, in order.
	Stages() []Stage
	Linked() bool
	Validated() bool
	// Attach compiles source as the given stage and attaches it to the
	// program. A stage that fails to compile is not attached.
	Attach(source string, stage Stage) error
	Link() error
	// Validate checks the program against vao, which stays bound only for
	// the duration of the check.
	Validate(vao UnboundVertexArray) error
	Bind() BoundProgram
}

type BoundProgram interface {
	UnboundProgram
}

func NewProgram(state *StateManager) (UnboundProgram, error) {
	id := state.api.CreateProgram()
	if id == 0 {
		return nil, &StageError{Step: StepCreate}
	}
	return &program{
		state: state,
		glId:  id,
	}, nil
}

func (prog *program) Id() uint32 {
	return prog.glId
}

func (prog *program) Stages() []Stage {
	return prog.stages
}

func (prog *program) Linked() bool {
	return prog.linked
}

func (prog *program) Validated() bool {
	return prog.validated
}

func (prog *program) Attach(source string, stage Stage) error {
	api := prog.state.api
	id := api.CreateShader(uint32(stage))
	api.ShaderSource(id, source)
	api.CompileShader(id)
	if api.GetShaderiv(id, gl.COMPILE_STATUS) == gl.FALSE {
		return &StageError{Step: StepCompile, Stage: stage, Log: readShaderInfoLog(api, id)}
	}
	api.AttachShader(prog.glId, id)
	prog.stages = append(prog.stages, stage)
	return nil
}

func (prog *program) Link() error {
	api := prog.state.api
	api.LinkProgram(prog.glId)
	prog.linked = api.GetProgramiv(prog.glId, gl.LINK_STATUS) != gl.FALSE
	prog.validated = false
	if !prog.linked {
		return &StageError{Step: StepLink, Log: readProgramInfoLog(api, prog.glId)}
	}
	return nil
}

func (prog *program) Validate(vao UnboundVertexArray) error {
	api := prog.state.api
	prev := prog.state.VertexArray
	vao.Bind()
	defer prog.state.BindVertexArray(prev)

	api.ValidateProgram(prog.glId)
	prog.validated = api.GetProgramiv(prog.glId, gl.VALIDATE_STATUS) != gl.FALSE
	if !prog.validated {
		return &StageError{Step: StepValidate, Log: readProgramInfoLog(api, prog.glId)}
	}
	return nil
}

func (prog *program) Bind() BoundProgram {
	prog.state.UseProgram(prog.glId)
	return BoundProgram(prog)
}

func readShaderInfoLog(api Api, id uint32) string {
	length := api.GetShaderiv(id, gl.INFO_LOG_LENGTH)
	return trimInfoLog(api.GetShaderInfoLog(id, length))
}

func readProgramInfoLog(api Api, id uint32) string {
	length := api.GetProgramiv(id, gl.INFO_LOG_LENGTH)
	return trimInfoLog(api.GetProgramInfoLog(id, length))
}

func trimInfoLog(log string) string {
	return strings.TrimRight(log, "\x00 \t\r\n")
}
