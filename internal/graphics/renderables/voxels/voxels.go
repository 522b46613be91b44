package voxels

import (
	"voxelink/internal/config"
	"voxelink/internal/graphics"
	renderer "voxelink/internal/graphics/renderer"
	"voxelink/internal/profiling"
	"voxelink/internal/shading"
	"voxelink/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

// Voxels draws the chunk geometry pass. The shade mode fixes both the
// shader variant and the vertex layout, so switching modes rebuilds the
// program and re-uploads the mesh.
type Voxels struct {
	chunk *world.Chunk

	shader      *graphics.Shader
	vao         uint32
	vbo         uint32
	vertexCount int32
	mode        shading.VoxelShadeMode

	rebuildFailed bool
	failedMode    shading.VoxelShadeMode
}

func NewVoxels(chunk *world.Chunk) *Voxels {
	return &Voxels{chunk: chunk}
}

// Init builds the program and mesh for the currently configured mode.
func (v *Voxels) Init() error {
	return v.rebuild(config.GetShadeMode())
}

func (v *Voxels) rebuild(mode shading.VoxelShadeMode) error {
	v.disposeGL()

	vertSrc, fragSrc := shaderSources(mode)
	shader, err := graphics.NewShader(vertSrc, fragSrc)
	if err != nil {
		return err
	}
	v.shader = shader
	v.mode = mode

	verts := world.BuildMesh(v.chunk, mode)
	stride := int32(world.VertexStride(mode)) * 4

	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	if len(verts) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	}
	v.vertexCount = int32(len(verts)) / (stride / 4)

	// position + color, then normal (vec3) or faceUV (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	if mode == shading.ShadeFlatOutline {
		gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	} else {
		gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// needsRebuild reports whether the pass must rebuild for the requested
// mode. A mode whose rebuild already failed is not retried until another
// mode is selected, so one broken shader cannot spam rebuilds per frame.
func (v *Voxels) needsRebuild(mode shading.VoxelShadeMode) bool {
	if mode == v.mode {
		return false
	}
	return !v.rebuildFailed || mode != v.failedMode
}

// noteRebuildFailure records the failed mode and reports it once. The
// current mode is set to the failed one so that switching back to a
// previously working mode triggers a fresh rebuild (the old GL objects
// were already disposed).
func (v *Voxels) noteRebuildFailure(mode shading.VoxelShadeMode, err error) {
	v.rebuildFailed = true
	v.failedMode = mode
	v.mode = mode
	zap.L().Error("voxel pass rebuild failed",
		zap.Error(err),
		zap.Int("shadeMode", int(mode)))
}

func shaderSources(mode shading.VoxelShadeMode) (string, string) {
	if mode == shading.ShadeFlatOutline {
		return vertexShaderFlat, fragmentShaderFlat
	}
	return vertexShaderLit, fragmentShaderLit
}

// Render draws the chunk with the camera uniform bound for this frame.
func (v *Voxels) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderVoxels")()

	mode := config.GetShadeMode()
	if v.needsRebuild(mode) {
		// Mode switch invalidates both program and layout.
		if err := v.rebuild(mode); err != nil {
			v.noteRebuildFailure(mode, err)
		} else {
			v.rebuildFailed = false
		}
	}
	if v.mode != mode || v.vertexCount == 0 {
		return
	}

	v.shader.Use()
	viewProj := ctx.Cam.ViewProj
	v.shader.SetMatrix4("uViewProj", &viewProj[0])
	if v.mode == shading.ShadeNormalLit {
		v.shader.SetVector3("uSunDir", ctx.Cam.SunDir.X(), ctx.Cam.SunDir.Y(), ctx.Cam.SunDir.Z())
		v.shader.SetVector3("uCamPos", ctx.Cam.Position.X(), ctx.Cam.Position.Y(), ctx.Cam.Position.Z())
	}

	gl.BindVertexArray(v.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, v.vertexCount)
	gl.BindVertexArray(0)
}

func (v *Voxels) disposeGL() {
	if v.shader != nil {
		v.shader.Dispose()
		v.shader = nil
	}
	if v.vbo != 0 {
		gl.DeleteBuffers(1, &v.vbo)
		v.vbo = 0
	}
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
		v.vao = 0
	}
	v.vertexCount = 0
}

// Dispose cleans up OpenGL resources
func (v *Voxels) Dispose() {
	v.disposeGL()
}

// SetViewport is a no-op; the pass only depends on the camera uniform.
func (v *Voxels) SetViewport(width, height int) {}
