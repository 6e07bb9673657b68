package glapi

import (
	"github.com/go-gl/gl/v3.3-core/gl"
)

// API issues OpenGL commands through the go-gl bindings. The zero value is
// usable once Load has succeeded.
type API struct{}

// Load resolves the OpenGL function pointers against the current context.
// Must run after the context is made current and before any other method.
func (API) Load() error {
	return gl.Init()
}

func (API) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (API) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the selected buffers using the current clear state.
func (API) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}
