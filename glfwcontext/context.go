package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"

	"glwindow/options"
)

// Context wraps a GLFW window whose OpenGL context is current on the
// calling thread. At most one context is current per thread; this program
// only ever creates one.
type Context struct {
	window *glfw.Window
}

// Init initializes GLFW. Must be called from the main thread before any
// other call into this package.
func Init() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	log.Printf("GLFW Initialized")
	return nil
}

// Terminate releases all GLFW resources. Must be called from the main thread.
func Terminate() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}

// New creates the window and makes its OpenGL 3.3 core context current.
func New(opts *options.WindowOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// Required on macOS for a core profile context.
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(*opts.Width, *opts.Height, *opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	win.MakeContextCurrent()

	return &Context{window: win}, nil
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

// ExitRequested reports whether Escape is held down right now. This is a
// level-triggered poll: holding the key keeps reporting true.
func (c *Context) ExitRequested() bool {
	return c.window.GetKey(glfw.KeyEscape) == glfw.Press
}

// EndFrame presents the back buffer and processes pending window events,
// which is what drives the resize callback and OS close requests.
func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) FramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// SetFramebufferSizeCallback registers fn to be invoked from event polling
// whenever the drawable area changes size.
func (c *Context) SetFramebufferSizeCallback(fn func(width, height int)) {
	c.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// Destroy destroys the window. Terminate still has to run afterwards.
func (c *Context) Destroy() {
	c.window.Destroy()
}
