package sky

import (
	"voxelink/internal/config"
	"voxelink/internal/graphics"
	renderer "voxelink/internal/graphics/renderer"
	"voxelink/internal/profiling"
	"voxelink/internal/shading"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sky draws the full-screen sky pass. It must be registered before the
// voxel renderable: it writes no depth, so later geometry paints over it.
type Sky struct {
	shader *graphics.Shader
	vao    uint32 // empty VAO, core profile requires one bound to draw
}

func NewSky() *Sky {
	return &Sky{}
}

// Init compiles the sky program and creates the attribute-less VAO.
func (s *Sky) Init() error {
	var err error
	s.shader, err = graphics.NewShader(vertexShader, fragmentShader)
	if err != nil {
		return err
	}
	gl.GenVertexArrays(1, &s.vao)
	return nil
}

// Render issues the 3-vertex buffer-less draw. Exactly 3 vertices per the
// full-screen triangle contract.
func (s *Sky) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderSky")()

	mode := config.GetSkyMode()
	p := config.SkyParams()

	sunUV := p.FixedSunUV
	if mode == shading.SkyDynamic {
		sunUV = ctx.Cam.SunScreenUV()
	}

	gl.DepthMask(false)
	defer gl.DepthMask(true)

	s.shader.Use()
	s.shader.SetInt("uSkyMode", int32(mode))
	s.shader.SetVector3("uZenith", p.Zenith.X(), p.Zenith.Y(), p.Zenith.Z())
	s.shader.SetVector3("uHorizon", p.Horizon.X(), p.Horizon.Y(), p.Horizon.Z())
	s.shader.SetVector3("uSunColor", p.SunColor.X(), p.SunColor.Y(), p.SunColor.Z())
	s.shader.SetVector2("uSunUV", sunUV.X(), sunUV.Y())
	s.shader.SetFloat("uSunCoreRadius", p.SunCoreRadius)
	s.shader.SetFloat("uSunGlowRadius", p.SunGlowRadius)
	s.shader.SetFloat("uSunCoreWeight", p.SunCoreWeight)
	s.shader.SetFloat("uSunGlowWeight", p.SunGlowWeight)
	s.shader.SetVector3("uCloudColor", p.CloudColor.X(), p.CloudColor.Y(), p.CloudColor.Z())
	s.shader.SetFloat("uCloudScale1", p.CloudScale1)
	s.shader.SetFloat("uCloudScale2", p.CloudScale2)
	s.shader.SetVector2("uCloudShift1", p.CloudShift1.X(), p.CloudShift1.Y())
	s.shader.SetVector2("uCloudShift2", p.CloudShift2.X(), p.CloudShift2.Y())
	s.shader.SetFloat("uCloudLow", p.CloudLow)
	s.shader.SetFloat("uCloudHigh", p.CloudHigh)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (s *Sky) Dispose() {
	if s.shader != nil {
		s.shader.Dispose()
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
}

// SetViewport is a no-op; the pass is resolution independent.
func (s *Sky) SetViewport(width, height int) {}
