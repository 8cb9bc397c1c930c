package libgl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// GlError is a value reported by glGetError.
type GlError uint32

func (e GlError) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "an unacceptable value is specified for an enumerated argument (GL_INVALID_ENUM)"
	case gl.INVALID_VALUE:
		return "a numeric argument is out of range (GL_INVALID_VALUE)"
	case gl.INVALID_OPERATION:
		return "the specified operation is not allowed in the current state (GL_INVALID_OPERATION)"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "the framebuffer object is not complete (GL_INVALID_FRAMEBUFFER_OPERATION)"
	case gl.OUT_OF_MEMORY:
		return "there is not enough memory left to execute the command (GL_OUT_OF_MEMORY)"
	}
	return fmt.Sprintf("unknown gl error: %X", uint32(e))
}

// maxDrainedErrors bounds CheckErrors; a lost context can report errors forever.
const maxDrainedErrors = 32

// CheckErrors drains the GL error queue and joins what it finds.
func CheckErrors(api Api) error {
	var errs []error
	for i := 0; i < maxDrainedErrors; i++ {
		code := api.GetError()
		if code == gl.NO_ERROR {
			break
		}
		errs = append(errs, GlError(code))
	}
	return errors.Join(errs...)
}

type Step string

const (
	StepCreate   Step = "create"
	StepCompile  Step = "compile"
	StepLink     Step = "link"
	StepValidate Step = "validate"
)

// StageError describes one failed step of building a program. Stage is zero
// for steps that concern the whole program.
type StageError struct {
	Step  Step
	Stage Stage
	Log   string
}

func (e *StageError) Error() string {
	if e.Stage != 0 {
		return fmt.Sprintf("failed to %v %v shader: %q", e.Step, e.Stage, e.Log)
	}
	return fmt.Sprintf("failed to %v program: %q", e.Step, e.Log)
}

// ProgramError collects every failed step of one program build.
type ProgramError struct {
	Failures []*StageError
}

func (e *ProgramError) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "; ")
}

func (e *ProgramError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}

func (e *ProgramError) Add(err error) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		e.Failures = append(e.Failures, stageErr)
	}
}

// Err returns nil when nothing failed, so callers can return it directly.
func (e *ProgramError) Err() error {
	if e == nil || len(e.Failures) == 0 {
		return nil
	}
	return e
}
