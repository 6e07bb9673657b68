package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"glwindow/glapi"
	"glwindow/glfwcontext"
	"glwindow/graphics"
	"glwindow/options"
	"glwindow/renderer"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// hooks bundles the setup steps run drives, so setup failures can be
// simulated without a window system.
type hooks struct {
	init       func() error
	terminate  func()
	newSurface func(*options.WindowOptions) (graphics.Surface, error)
	api        graphics.API
}

func glfwHooks() hooks {
	return hooks{
		init:      glfwcontext.Init,
		terminate: glfwcontext.Terminate,
		newSurface: func(opts *options.WindowOptions) (graphics.Surface, error) {
			return glfwcontext.New(opts)
		},
		api: glapi.API{},
	}
}

func main() {
	opts := options.Bind(flag.CommandLine)
	flag.Parse()

	os.Exit(run(opts, glfwHooks()))
}

// run performs the whole setup, loop and teardown sequence and returns the
// process exit status: 0 on a normal close, -1 on any setup failure.
func run(opts *options.WindowOptions, h hooks) int {
	if err := h.init(); err != nil {
		log.Printf("GLFW initialization failed: %v", err)
		return -1
	}
	defer h.terminate()

	surface, err := h.newSurface(opts)
	if err != nil {
		log.Printf("window creation failed: %v", err)
		return -1
	}
	defer surface.Destroy()

	r, err := renderer.New(surface, h.api)
	if err != nil {
		log.Printf("failed to initialize OpenGL: %v", err)
		return -1
	}

	r.Run()
	return 0
}
