package softrender

import (
	"voxelink/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// Depth-buffered triangle rasterizer evaluating the voxel fragment stage
// per covered pixel. Attributes are interpolated perspective-correct
// (attribute/w blended barycentrically, divided by interpolated 1/w).

const nearClipW = 1e-3

type projected struct {
	screen mgl32.Vec2
	invW   float32
	ndcZ   float32
	vert   shading.VoxelVertex // attributes pre-divided by w
}

func project(v shading.VoxelVertex, viewProj mgl32.Mat4, w, h int) (projected, bool) {
	clip := viewProj.Mul4x1(v.Position.Vec4(1))
	if clip.W() < nearClipW {
		return projected{}, false
	}
	invW := 1 / clip.W()
	ndc := clip.Vec3().Mul(invW)
	return projected{
		screen: mgl32.Vec2{
			(ndc.X()*0.5 + 0.5) * float32(w),
			(0.5 - ndc.Y()*0.5) * float32(h),
		},
		invW: invW,
		ndcZ: ndc.Z(),
		vert: shading.VoxelVertex{
			Position: v.Position.Mul(invW),
			Color:    v.Color.Mul(invW),
			Normal:   v.Normal.Mul(invW),
			FaceUV:   v.FaceUV.Mul(invW),
		},
	}, true
}

func edgeFn(a, b, p mgl32.Vec2) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// rasterTriangle shades every pixel covered by the triangle v0 v1 v2.
// Triangles crossing the near plane are dropped rather than clipped; the
// reference renderer only needs frames from sensible viewpoints.
func rasterTriangle(fb *Framebuffer, v0, v1, v2 shading.VoxelVertex,
	cam *shading.CameraUniform, params shading.VoxelParams, mode shading.VoxelShadeMode) {

	p0, ok0 := project(v0, cam.ViewProj, fb.W, fb.H)
	p1, ok1 := project(v1, cam.ViewProj, fb.W, fb.H)
	p2, ok2 := project(v2, cam.ViewProj, fb.W, fb.H)
	if !ok0 || !ok1 || !ok2 {
		return
	}

	// The y-down screen mapping flips signed area: CCW front faces in NDC
	// come out negative here, so cull the non-negative ones.
	area := edgeFn(p0.screen, p1.screen, p2.screen)
	if area >= 0 {
		return
	}
	area = -area

	minX := clampi(int(min3(p0.screen[0], p1.screen[0], p2.screen[0])), 0, fb.W-1)
	maxX := clampi(int(max3(p0.screen[0], p1.screen[0], p2.screen[0]))+1, 0, fb.W-1)
	minY := clampi(int(min3(p0.screen[1], p1.screen[1], p2.screen[1])), 0, fb.H-1)
	maxY := clampi(int(max3(p0.screen[1], p1.screen[1], p2.screen[1]))+1, 0, fb.H-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
			w0 := -edgeFn(p1.screen, p2.screen, p)
			w1 := -edgeFn(p2.screen, p0.screen, p)
			w2 := -edgeFn(p0.screen, p1.screen, p)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			b0 := w0 / area
			b1 := w1 / area
			b2 := w2 / area

			invW := b0*p0.invW + b1*p1.invW + b2*p2.invW
			if invW <= 0 {
				continue
			}
			z := b0*p0.ndcZ + b1*p1.ndcZ + b2*p2.ndcZ

			frag := shading.VoxelVertex{
				Position: lerp3(p0.vert.Position, p1.vert.Position, p2.vert.Position, b0, b1, b2).Mul(1 / invW),
				Color:    lerp3(p0.vert.Color, p1.vert.Color, p2.vert.Color, b0, b1, b2).Mul(1 / invW),
				Normal:   lerp3(p0.vert.Normal, p1.vert.Normal, p2.vert.Normal, b0, b1, b2).Mul(1 / invW),
			}
			fuv := p0.vert.FaceUV.Mul(b0).Add(p1.vert.FaceUV.Mul(b1)).Add(p2.vert.FaceUV.Mul(b2))
			frag.FaceUV = fuv.Mul(1 / invW)

			out := shading.ShadeVoxel(frag, cam, params, mode)
			fb.SetDepthTested(x, y, z, out.Vec3())
		}
	}
}

func lerp3(a, b, c mgl32.Vec3, wa, wb, wc float32) mgl32.Vec3 {
	return a.Mul(wa).Add(b.Mul(wb)).Add(c.Mul(wc))
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
