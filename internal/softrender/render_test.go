package softrender

import (
	"image"
	"testing"

	"voxelink/internal/shading"
	"voxelink/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func testCamera(w, h int) shading.CameraUniform {
	aspect := float32(w) / float32(h)
	fovy := mgl32.DegToRad(60)
	eye := mgl32.Vec3{8, 14, 30}
	look := mgl32.Vec3{8, 4, 8}.Sub(eye).Normalize()
	viewProj := mgl32.Perspective(fovy, aspect, 0.1, 1000).
		Mul4(mgl32.LookAtV(eye, eye.Add(look), mgl32.Vec3{0, 1, 0}))
	sunDir := mgl32.Vec3{0.45, -0.75, 0.35}.Normalize()
	return shading.NewCameraUniform(viewProj, eye, look, mgl32.Vec3{0, 1, 0},
		sunDir, aspect, float32(0.5773503)) // tan(30 deg)
}

// TestRenderFrameSkyOnly verifies an empty chunk renders pure sky: the top
// row matches ShadeSky for the same UV and every pixel is opaque.
func TestRenderFrameSkyOnly(t *testing.T) {
	var empty world.Chunk
	opts := DefaultOptions()
	opts.Width, opts.Height, opts.SSAA = 64, 48, 1
	cam := testCamera(opts.Width, opts.Height)

	img := RenderFrame(&empty, cam, opts)
	if img.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Fatalf("frame bounds %v, expected 64x48", img.Bounds())
	}

	for _, x := range []int{0, 31, 63} {
		uv := mgl32.Vec2{(float32(x) + 0.5) / 64, 0.5 / 48}
		want := shading.ShadeSky(uv, &cam, opts.Sky, opts.SkyMode)
		got := img.RGBAAt(x, 0)
		if got.A != 255 {
			t.Errorf("pixel (%d,0) alpha %d, expected 255", x, got.A)
		}
		if d := int(got.R) - int(toByte(want.X())); d > 1 || d < -1 {
			t.Errorf("pixel (%d,0) R=%d, expected ~%d from ShadeSky", x, got.R, toByte(want.X()))
		}
	}
}

// TestRenderFrameGeometryVisible verifies terrain actually rasterizes: a
// generated chunk framed by the test camera must change a center pixel
// relative to the sky-only render.
func TestRenderFrameGeometryVisible(t *testing.T) {
	var chunk world.Chunk
	world.NewGenerator(42).Generate(&chunk)

	opts := DefaultOptions()
	opts.Width, opts.Height, opts.SSAA = 96, 64, 1
	cam := testCamera(opts.Width, opts.Height)

	var empty world.Chunk
	skyOnly := RenderFrame(&empty, cam, opts)
	frame := RenderFrame(&chunk, cam, opts)

	diff := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 96; x++ {
			if frame.RGBAAt(x, y) != skyOnly.RGBAAt(x, y) {
				diff++
			}
		}
	}
	if diff < 96*64/10 {
		t.Errorf("terrain changed only %d pixels, expected a substantial footprint", diff)
	}
}

// TestRenderFrameBothModes verifies both voxel variants render without
// panics and produce opaque frames.
func TestRenderFrameBothModes(t *testing.T) {
	var chunk world.Chunk
	world.NewGenerator(7).Generate(&chunk)

	for _, mode := range []shading.VoxelShadeMode{shading.ShadeNormalLit, shading.ShadeFlatOutline} {
		opts := DefaultOptions()
		opts.Width, opts.Height, opts.SSAA = 48, 32, 1
		opts.ShadeMode = mode
		cam := testCamera(opts.Width, opts.Height)

		img := RenderFrame(&chunk, cam, opts)
		for y := 0; y < 32; y += 7 {
			for x := 0; x < 48; x += 7 {
				if img.RGBAAt(x, y).A != 255 {
					t.Fatalf("mode %d: pixel (%d,%d) not opaque", mode, x, y)
				}
			}
		}
	}
}

// TestRenderFrameSupersampled verifies the SSAA path resolves to the
// requested output size.
func TestRenderFrameSupersampled(t *testing.T) {
	var chunk world.Chunk
	world.NewGenerator(7).Generate(&chunk)

	opts := DefaultOptions()
	opts.Width, opts.Height, opts.SSAA = 40, 30, 2
	cam := testCamera(opts.Width, opts.Height)

	img := RenderFrame(&chunk, cam, opts)
	if img.Bounds() != image.Rect(0, 0, 40, 30) {
		t.Errorf("supersampled frame bounds %v, expected 40x30", img.Bounds())
	}
}
