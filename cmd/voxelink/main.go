package main

import (
	"runtime"

	"voxelink/internal/graphics/renderables/crosshair"
	"voxelink/internal/graphics/renderables/sky"
	"voxelink/internal/graphics/renderables/voxels"
	renderer "voxelink/internal/graphics/renderer"
	"voxelink/internal/profiling"
	"voxelink/internal/world"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := glfw.Init(); err != nil {
		logger.Fatal("glfw init failed", zap.Error(err))
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		logger.Fatal("window setup failed", zap.Error(err))
	}

	// Build the demo terrain chunk.
	chunk := &world.Chunk{}
	world.NewGenerator(worldSeed).Generate(chunk)

	// Renderables in painter order: sky first, then geometry, then overlay.
	r, err := renderer.NewRenderer(
		sky.NewSky(),
		voxels.NewVoxels(chunk),
		crosshair.NewCrosshair(),
	)
	if err != nil {
		logger.Fatal("renderer init failed", zap.Error(err))
	}
	defer r.Dispose()

	logger.Info("voxel-ink viewer started",
		zap.Int("chunkSize", world.ChunkSize),
		zap.Int64("seed", worldSeed))

	input := newInputState(r.GetCamera())
	window.SetCursorPosCallback(input.onCursorMove)
	window.SetKeyCallback(input.onKey)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		if w > 0 && h > 0 {
			r.UpdateViewport(w, h)
		}
	})

	lastTime := glfw.GetTime()
	lastReport := lastTime
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - lastTime
		lastTime = now

		profiling.ResetFrame()
		input.processMovement(window, dt)
		r.Render(dt)

		if now-lastReport >= profileReportInterval {
			lastReport = now
			if top := profiling.TopN(3); top != "" {
				logger.Info("frame profile", zap.String("top", top))
			}
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}

	logger.Info("viewer shutting down")
}
