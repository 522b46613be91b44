package renderer

import (
	"voxelink/internal/graphics"
	"voxelink/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features. Draw order is
// painter's: sky first (furthest), then voxel geometry, then overlays, in
// the order the renderables were registered.
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera

	// SunDir is the unit direction sunlight travels, fed into the camera
	// uniform each frame.
	SunDir mgl32.Vec3
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)

	renderer := &Renderer{
		renderables: rs,
		camera:      graphics.NewCamera(900, 600),
		SunDir:      mgl32.Vec3{0.45, -0.75, 0.35}.Normalize(),
	}

	// Initialize all renderables
	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render executes one frame: clear, build the camera uniform, draw every
// renderable in registration order.
func (r *Renderer) Render(dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Cam:    r.camera.Uniform(r.SunDir),
		DT:     dt,
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera's viewport dimensions
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.AspectRatio = float32(width) / float32(height)
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
