package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"unsafe"

	"beginner-gl/Beginner/libgl"
	"beginner-gl/Beginner/libwin"
)

//go:embed assets/shaders/triangle.vert
var Res_TriangleVshSrc string

//go:embed assets/shaders/triangle.frag
var Res_TriangleFshSrc string

type arguments struct {
	StrictShaders              bool
	Debug                      bool
	CapturePath                string
	ReferencePath              string
	EnableCompatibilityProfile bool
}

var Arguments = arguments{}

// glLoader resolves GL entry points for the current context.
type glLoader func(lookup func(name string) unsafe.Pointer) (libgl.Api, error)

func init() {
	// GLFW and the GL context belong to the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.BoolVar(&Arguments.StrictShaders, "strict-shaders", Arguments.StrictShaders, "exit when a shader fails to compile, link or validate")
	flag.BoolVar(&Arguments.Debug, "debug", Arguments.Debug, "request a debug context and log gl errors after setup and the first frame")
	flag.StringVar(&Arguments.CapturePath, "capture", Arguments.CapturePath, "write the first frame to this PNG file (.lz4 to compress)")
	flag.StringVar(&Arguments.ReferencePath, "reference", Arguments.ReferencePath, "write the software reference frame to this PNG file (.lz4 to compress)")
	flag.BoolVar(&Arguments.EnableCompatibilityProfile, "enable-compatibility-profile", Arguments.EnableCompatibilityProfile, "")
	flag.Parse()

	os.Exit(run(Arguments, libwin.NewGlfwPlatform(), libgl.Init))
}

// run returns the process exit code: 0 once the window was closed, 1 when
// initialization failed.
func run(args arguments, platform libwin.Platform, loadGl glLoader) int {
	if args.ReferencePath != "" && args.CapturePath == "" {
		if err := writeReference(args.ReferencePath, libwin.WindowWidth, libwin.WindowHeight); err != nil {
			log.Println(err)
			return 1
		}
		return 0
	}

	ctx, err := initWindow(platform, args)
	if err != nil {
		log.Println(err)
		return 1
	}
	defer platform.Terminate()
	defer ctx.Destroy()

	api, err := initGL(platform, loadGl)
	if err != nil {
		log.Println(err)
		return 1
	}
	state := libgl.NewStateManager(api)
	width, height := ctx.FramebufferSize()
	state.Viewport(0, 0, width, height)

	scene := CreateTriangle(state)
	if err := CompileShaders(state, scene, Res_TriangleVshSrc, Res_TriangleFshSrc); err != nil && args.StrictShaders {
		log.Printf("shader program is unusable: %v\n", err)
		return 1
	}
	if args.Debug {
		logGlErrors(api, "setup")
	}

	RenderLoop(platform, ctx, state, scene, func(frame int) {
		if frame != 0 {
			return
		}
		if args.CapturePath != "" {
			if err := captureFrame(api, width, height, args); err != nil {
				log.Println(err)
			}
		}
		if args.Debug {
			logGlErrors(api, "first frame")
		}
	})
	return 0
}

// initWindow brings up the window system and a window with a current
// context. On failure the window system is already terminated.
func initWindow(platform libwin.Platform, args arguments) (libwin.Window, error) {
	if err := platform.Init(); err != nil {
		platform.Terminate()
		return nil, fmt.Errorf("window system initialization failed: %w", err)
	}

	cfg := libwin.DefaultConfig()
	cfg.CompatProfile = args.EnableCompatibilityProfile
	cfg.DebugContext = args.Debug
	ctx, err := platform.CreateWindow(cfg)
	if err != nil {
		platform.Terminate()
		return nil, fmt.Errorf("window creation failed: %w", err)
	}
	ctx.MakeContextCurrent()
	return ctx, nil
}

func initGL(platform libwin.Platform, loadGl glLoader) (libgl.Api, error) {
	api, err := loadGl(platform.ProcAddress)
	if err != nil {
		return nil, fmt.Errorf("gl function loader initialization failed: %w", err)
	}
	return api, nil
}

func logGlErrors(api libgl.Api, when string) {
	if err := libgl.CheckErrors(api); err != nil {
		log.Printf("gl errors after %v: %v\n", when, err)
	}
}
