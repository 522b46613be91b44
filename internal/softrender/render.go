package softrender

import (
	"image"

	"voxelink/internal/shading"
	"voxelink/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// Options selects pipelines and output shape for a reference frame.
type Options struct {
	Width, Height int
	// SSAA is the supersampling factor; 1 disables it.
	SSAA int

	SkyMode   shading.SkyMode
	Sky       shading.SkyParams
	ShadeMode shading.VoxelShadeMode
	Voxel     shading.VoxelParams
}

// DefaultOptions mirrors the GL viewer defaults.
func DefaultOptions() Options {
	return Options{
		Width:     900,
		Height:    600,
		SSAA:      2,
		SkyMode:   shading.SkyDynamic,
		Sky:       shading.DynamicSky(),
		ShadeMode: shading.ShadeNormalLit,
		Voxel:     shading.DefaultVoxelParams(),
	}
}

// RenderFrame produces one complete frame on the CPU with the exact same
// shading math as the GL pipelines: sky shaded per pixel first, then the
// depth-tested voxel geometry pass over it, then supersampling resolve.
func RenderFrame(chunk *world.Chunk, cam shading.CameraUniform, opts Options) *image.RGBA {
	ss := opts.SSAA
	if ss < 1 {
		ss = 1
	}
	fb := NewFramebuffer(opts.Width*ss, opts.Height*ss)

	renderSky(fb, &cam, opts)

	verts := world.MeshVertices(world.BuildMesh(chunk, opts.ShadeMode), opts.ShadeMode)
	for i := 0; i+2 < len(verts); i += 3 {
		rasterTriangle(fb, verts[i], verts[i+1], verts[i+2], &cam, opts.Voxel, opts.ShadeMode)
	}

	img := fb.Image()
	if ss == 1 {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.BiLinear.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}

func renderSky(fb *Framebuffer, cam *shading.CameraUniform, opts Options) {
	for y := 0; y < fb.H; y++ {
		for x := 0; x < fb.W; x++ {
			uv := mgl32.Vec2{
				(float32(x) + 0.5) / float32(fb.W),
				(float32(y) + 0.5) / float32(fb.H),
			}
			c := shading.ShadeSky(uv, cam, opts.Sky, opts.SkyMode)
			fb.Set(x, y, c.Vec3())
		}
	}
}
