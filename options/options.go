package options

import (
	"errors"
	"flag"
)

type ViewerOptions struct {
	Width   *int
	Height  *int
	Title   *string
	FPS     *int  // 0 renders only on redraw requests
	VSync   *bool // Swap interval 1 when set
	Samples *int  // MSAA samples requested for the default framebuffer
	Verbose *bool // Debug-level logging from the graphics packages
	Help    *bool
}

// Register defines the viewer flags on fs and returns the options they fill.
func Register(fs *flag.FlagSet) *ViewerOptions {
	return &ViewerOptions{
		Width:   fs.Int("width", 800, "Initial window width"),
		Height:  fs.Int("height", 600, "Initial window height"),
		Title:   fs.String("title", "Demo", "Window title prefix"),
		FPS:     fs.Int("fps", 0, "Fixed frame rate; 0 redraws only when the view changes"),
		VSync:   fs.Bool("vsync", true, "Synchronize buffer swaps with the display"),
		Samples: fs.Int("samples", 4, "Multisample count for the window framebuffer"),
		Verbose: fs.Bool("verbose", false, "Enable debug logging"),
		Help:    fs.Bool("help", false, "Show help message"),
	}
}

func (o *ViewerOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return errors.New("width and height must be positive")
	}
	if *o.FPS < 0 {
		return errors.New("fps must not be negative")
	}
	if *o.Samples < 0 {
		return errors.New("samples must not be negative")
	}
	return nil
}
