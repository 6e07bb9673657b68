package options

import "flag"

// WindowOptions holds the flag-backed configuration for the window.
type WindowOptions struct {
	Width  *int
	Height *int
	Title  *string
}

// Bind registers the window flags on fs and returns the options they fill
// once fs is parsed. Defaults are the classic 800x600 windowed setup.
func Bind(fs *flag.FlagSet) *WindowOptions {
	return &WindowOptions{
		Width:  fs.Int("width", 800, "window width in pixels"),
		Height: fs.Int("height", 600, "window height in pixels"),
		Title:  fs.String("title", "OpenGL Window", "window title"),
	}
}
