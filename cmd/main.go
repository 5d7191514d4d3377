package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goplotview/glfwcontext"
	"github.com/richinsley/goplotview/graphics"
	options "github.com/richinsley/goplotview/options"
	renderer "github.com/richinsley/goplotview/renderer"
	"github.com/richinsley/goplotview/viewport"
	"github.com/richinsley/goplotview/workflow"
)

// actionKeys stands in for the button row.
var actionKeys = map[glfw.Key]workflow.Action{
	glfw.KeyR: workflow.Reset,
	glfw.KeyL: workflow.Load,
	glfw.Key1: workflow.Step1,
	glfw.Key2: workflow.Step2,
	glfw.Key3: workflow.Step3,
	glfw.Key4: workflow.Step4,
}

func runViewer(opts *options.ViewerOptions) error {
	if err := glfwcontext.InitGraphics(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer ctx.Shutdown()

	dev, err := renderer.NewDevice(ctx)
	if err != nil {
		return err
	}
	if *opts.VSync {
		ctx.SetSwapInterval(1)
	} else {
		ctx.SetSwapInterval(0)
	}

	vp := viewport.New(dev, ctx)
	if err := vp.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize viewport: %w", err)
	}
	defer vp.Destroy()
	ctx.SetInputHandler(vp)

	wf := workflow.New()
	updateTitle := func() {
		ctx.SetTitle(fmt.Sprintf("%s - %s", *opts.Title, wf.Summary()))
	}
	for key, action := range actionKeys {
		ctx.RegisterKeyCallback(key, func() {
			if err := wf.Apply(action); err != nil {
				log.Printf("Ignoring %s: %v", action, err)
				return
			}
			if action == workflow.Reset {
				vp.SetViewState(viewport.DefaultViewState())
			}
			log.Printf("Workflow state: %s", wf.State())
			updateTitle()
		})
	}
	updateTitle()

	log.Println("Starting interactive render loop...")
	return run(ctx, vp, *opts.FPS)
}

// run renders whenever a redraw was requested, or on every tick when fps is
// positive, until the window is closed.
func run(ctx *glfwcontext.Context, vp *viewport.Viewport, fps int) error {
	var interval float64
	if fps > 0 {
		interval = 1.0 / float64(fps)
	}

	var frameCount int64
	startTime := ctx.Time()
	for !ctx.ShouldClose() {
		ctx.WaitEvents(interval)
		if pending := ctx.TakeRedraw(); !pending && interval == 0 {
			continue
		}
		if size := vp.Size(); size.Width <= 0 || size.Height <= 0 {
			continue
		}

		if err := vp.Render(); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		ctx.EndFrame()
		frameCount++
	}

	elapsed := ctx.Time() - startTime
	graphics.Logger().Info("render loop finished", slog.Int64("frames", frameCount), slog.Float64("seconds", elapsed))
	return nil
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := options.Register(flag.CommandLine)
	flag.Parse()

	if *opts.Help {
		fmt.Println("Sine curve viewer")
		fmt.Println("Drag to pan, scroll to zoom. Keys: R reset, L load, 1-4 steps, Esc quit.")
		flag.PrintDefaults()
		return
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	if *opts.Verbose {
		graphics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		graphics.SetLogger(slog.Default())
	}

	if err := runViewer(opts); err != nil {
		log.Fatalf("%v", err)
	}
}
