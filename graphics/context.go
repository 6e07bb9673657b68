package graphics

// Surface is a window with a current OpenGL context. The render loop only
// talks to the windowing layer through this interface.
type Surface interface {
	ShouldClose() bool
	SetShouldClose(bool)
	// ExitRequested reports whether the exit key is down right now.
	ExitRequested() bool
	// EndFrame presents the back buffer and processes pending window events.
	EndFrame()
	FramebufferSize() (int, int)
	SetFramebufferSizeCallback(func(width, height int))
	Destroy()
}

// API is the subset of OpenGL the render loop issues.
type API interface {
	// Load resolves the OpenGL entry points against the current context.
	// Must succeed before any other method is called.
	Load() error
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(color, depth bool)
}
