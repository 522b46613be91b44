package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Small GLSL-style scalar helpers shared by the sky and voxel pipelines.
// All of them are total: defined and finite for every finite float32 input.

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Mix linearly interpolates between a and b by t.
func Mix(a, b, t float32) float32 {
	return a + t*(b-a)
}

// MixVec3 linearly interpolates between two colors/vectors by t.
func MixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Smoothstep is the GLSL cubic Hermite soft threshold. Like GLSL, edge0 may
// exceed edge1, in which case the ramp runs in reverse (used for the sun disc
// falloff, smoothstep(radius, 0, dist)).
func Smoothstep(edge0, edge1, x float32) float32 {
	d := edge1 - edge0
	if d == 0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/d, 0, 1)
	return t * t * (3 - 2*t)
}

// Fract returns x - floor(x), always in [0, 1).
func Fract(x float32) float32 {
	return x - math32.Floor(x)
}

func fractVec3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{Fract(v[0]), Fract(v[1]), Fract(v[2])}
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// safeNormalize normalizes v, falling back to fallback for near-zero vectors
// instead of producing NaN.
func safeNormalize(v, fallback mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-6 {
		return fallback
	}
	return v.Mul(1 / l)
}
