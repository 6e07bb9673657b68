package renderer

import (
	"fmt"

	"glwindow/graphics"
)

// Clear color applied every frame, a dedicated reddish-brown.
const (
	clearR = 0.5
	clearG = 0.2
	clearB = 0.3
	clearA = 1.0
)

// Renderer drives the clear-and-swap loop over a surface. It owns no GL
// resources beyond the viewport state it mirrors.
type Renderer struct {
	surface graphics.Surface
	api     graphics.API

	width  int
	height int
}

// New loads the OpenGL entry points, sets the initial viewport to the
// surface's drawable size and registers the resize callback. The surface's
// context must already be current.
func New(surface graphics.Surface, api graphics.API) (*Renderer, error) {
	if err := api.Load(); err != nil {
		return nil, fmt.Errorf("loading OpenGL functions: %w", err)
	}

	r := &Renderer{
		surface: surface,
		api:     api,
	}

	w, h := surface.FramebufferSize()
	r.resize(w, h)
	surface.SetFramebufferSizeCallback(r.resize)

	return r, nil
}

// resize keeps the viewport mapped onto the full drawable area.
func (r *Renderer) resize(width, height int) {
	r.width = width
	r.height = height
	r.api.Viewport(0, 0, int32(width), int32(height))
}

// Size returns the last known drawable size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Run blocks until the window is closed by the user or by the exit key.
// Each iteration polls input, clears the color and depth buffers, presents
// the frame and processes pending window events.
func (r *Renderer) Run() {
	for !r.surface.ShouldClose() {
		r.processInput()

		r.api.ClearColor(clearR, clearG, clearB, clearA)
		r.api.Clear(true, true)

		r.surface.EndFrame()
	}
}

// processInput polls the exit key once per frame. Idempotent: holding the
// key just re-marks should-close.
func (r *Renderer) processInput() {
	if r.surface.ExitRequested() {
		r.surface.SetShouldClose(true)
	}
}
