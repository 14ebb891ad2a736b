// Command demo draws 100,000 instances of a cube or a pyramid. Press space
// to switch meshes, escape to quit.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xlab/closer"

	"mesh-instancing/config"
	"mesh-instancing/core"
	"mesh-instancing/internal/opengl"
	"mesh-instancing/io"
	"mesh-instancing/render"
	"mesh-instancing/scene"
)

func main() {
	cfg := config.Load(config.Filename)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)
	render.SetLogger(logger)

	closer.Bind(func() { slog.Debug("shutting down") })
	defer closer.Close()

	window, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: cfg.Window.Resizable,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		closer.Fatalln(err)
	}
	// Runs before closer.Close: GLFW must be torn down on the main thread.
	defer window.Destroy()

	glctx, err := opengl.NewContext()
	if err != nil {
		window.Destroy()
		closer.Fatalln(err)
	}
	slog.Info("OpenGL initialized", "version", glctx.Version(), "renderer", glctx.Renderer())

	toggleKey, ok := core.KeyByName(cfg.Input.ToggleKey)
	if !ok {
		slog.Warn("unknown toggle key, using space", "key", cfg.Input.ToggleKey)
		toggleKey = core.KeySpace
	}

	program := render.BuildProgram(glctx,
		io.ReadShaderSource(cfg.Shaders.Vertex),
		io.ReadShaderSource(cfg.Shaders.Fragment))
	meshes := render.NewMeshSet(glctx)
	renderer := render.NewRendererContext(glctx, program, meshes, render.Options{
		Camera:    io.ArrayToVec3(cfg.Camera),
		Instances: cfg.Render.Instances,
	})

	run(window, renderer, toggleKey, cfg.Window)

	slog.Info("all done")
}

func run(window *core.Window, renderer *render.RendererContext, toggleKey int, wc config.WindowConfig) {
	var toggle scene.MeshToggle
	fps := newFPSCounter(window.Time())

	for !window.ShouldClose() {
		if window.IsKeyPressed(core.KeyEscape) {
			window.SetShouldClose(true)
		}

		selected, changed := toggle.Update(window.IsKeyPressed(toggleKey))
		if changed {
			slog.Info("mesh selected", "mesh", selected.String())
		}

		now := window.Time()
		width, height := window.GetFramebufferSize()
		renderer.RenderFrame(now, width, height, selected)

		window.SwapBuffers()
		window.PollEvents()

		if rate, ok := fps.Tick(now); ok && wc.ShowFPS {
			window.SetTitle(fmt.Sprintf("%s - %s x%d - FPS: %d",
				wc.Title, selected, renderer.Instances(), rate))
		}
	}
}
