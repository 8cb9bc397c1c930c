package libwin

import "unsafe"

const WindowWidth, WindowHeight = 800, 600

type Config struct {
	Width, Height     int
	Title             string
	ContextMajor      int
	ContextMinor      int
	CompatProfile     bool
	ForwardCompatible bool
	Resizable         bool
	DebugContext      bool
	SwapInterval      int
}

// DefaultConfig requests a fixed size 3.3 core, forward compatible context.
func DefaultConfig() Config {
	return Config{
		Width:             WindowWidth,
		Height:            WindowHeight,
		Title:             "Test Window",
		ContextMajor:      3,
		ContextMinor:      3,
		ForwardCompatible: true,
		SwapInterval:      1,
	}
}

type Window interface {
	// MakeContextCurrent binds the window's context to the calling thread.
	MakeContextCurrent()
	FramebufferSize() (width, height int)
	ShouldClose() bool
	SwapBuffers()
	Destroy()
}

// Platform is the window system. Init must succeed before anything else is
// called, and Terminate releases every window still alive.
type Platform interface {
	Init() error
	CreateWindow(cfg Config) (Window, error)
	PollEvents()
	// ProcAddress looks up a GL entry point for the current context.
	ProcAddress(name string) unsafe.Pointer
	Terminate()
}
