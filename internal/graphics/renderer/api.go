package renderer

import (
	"voxelink/internal/graphics"
	"voxelink/internal/shading"
)

// RenderContext provides shared per-frame context for all renderables. Cam
// is the camera uniform contract: built once per frame by the Renderer
// before any draw is issued, read-only afterwards.
type RenderContext struct {
	Camera *graphics.Camera
	Cam    shading.CameraUniform
	DT     float64
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
