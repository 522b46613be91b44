package softrender

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Framebuffer is a linear-RGB color buffer with a depth buffer, row-major,
// y down (row 0 is the top of the frame, matching the sky UV convention).
type Framebuffer struct {
	W, H  int
	color []mgl32.Vec3
	depth []float32
}

func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{
		W:     w,
		H:     h,
		color: make([]mgl32.Vec3, w*h),
		depth: make([]float32, w*h),
	}
	fb.ClearDepth()
	return fb
}

// ClearDepth resets the depth buffer to the far plane.
func (f *Framebuffer) ClearDepth() {
	for i := range f.depth {
		f.depth[i] = math.MaxFloat32
	}
}

// Set writes a color unconditionally (used by the sky pass).
func (f *Framebuffer) Set(x, y int, c mgl32.Vec3) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	f.color[y*f.W+x] = c
}

// SetDepthTested writes color only if z is nearer than the stored depth.
func (f *Framebuffer) SetDepthTested(x, y int, z float32, c mgl32.Vec3) {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return
	}
	i := y*f.W + x
	if z >= f.depth[i] {
		return
	}
	f.depth[i] = z
	f.color[i] = c
}

// Image converts the linear buffer to an 8-bit RGBA image. Components are
// clamped to [0,1] here; intermediate composition is allowed past 1.0.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := f.color[y*f.W+x]
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(c[0]),
				G: toByte(c[1]),
				B: toByte(c[2]),
				A: 255,
			})
		}
	}
	return img
}

func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
