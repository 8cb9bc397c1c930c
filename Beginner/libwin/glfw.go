package libwin

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwPlatform struct{}

type glfwWindow struct {
	*glfw.Window
	swapInterval int
}

// NewGlfwPlatform returns the GLFW window system. GLFW must only be used from
// the main thread, so the caller locks it with runtime.LockOSThread.
func NewGlfwPlatform() Platform {
	return &glfwPlatform{}
}

func (*glfwPlatform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	return nil
}

func (*glfwPlatform) CreateWindow(cfg Config) (Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	if cfg.CompatProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(cfg.ForwardCompatible))
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(cfg.DebugContext))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	return &glfwWindow{Window: win, swapInterval: cfg.SwapInterval}, nil
}

func (*glfwPlatform) PollEvents() {
	glfw.PollEvents()
}

func (*glfwPlatform) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (*glfwPlatform) Terminate() {
	glfw.Terminate()
}

func (w *glfwWindow) MakeContextCurrent() {
	w.Window.MakeContextCurrent()
	glfw.SwapInterval(w.swapInterval)
}

func (w *glfwWindow) FramebufferSize() (width, height int) {
	return w.GetFramebufferSize()
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
