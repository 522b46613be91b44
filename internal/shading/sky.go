package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SkyMode selects how much of the sky pipeline runs. The historical
// revisions (flat gradient, gradient + fixed sun, full dynamic sky) are one
// parameterized pipeline here, not three shader programs.
type SkyMode int

const (
	// SkyFlat renders only the vertical gradient.
	SkyFlat SkyMode = iota
	// SkySun adds a sun disc at a fixed screen position.
	SkySun
	// SkyDynamic adds a camera-tracked sun disc and procedural clouds.
	SkyDynamic
)

// SkyParams are the tunable constants of the sky fragment stage.
type SkyParams struct {
	Zenith  mgl32.Vec3
	Horizon mgl32.Vec3

	SunColor mgl32.Vec3
	// FixedSunUV is the disc center for SkySun (screen UV, y down).
	FixedSunUV    mgl32.Vec2
	SunCoreRadius float32
	SunGlowRadius float32
	SunCoreWeight float32
	SunGlowWeight float32

	CloudColor  mgl32.Vec3
	CloudScale1 float32
	CloudScale2 float32
	CloudShift1 mgl32.Vec2
	CloudShift2 mgl32.Vec2
	// Soft coverage threshold edges.
	CloudLow  float32
	CloudHigh float32
}

// FixedSunSky is the screen-fixed preset: small tight disc, sun pinned low
// on the screen regardless of camera orientation.
func FixedSunSky() SkyParams {
	p := baseSky()
	p.SunCoreRadius = 0.07
	p.SunGlowRadius = 0.28
	return p
}

// DynamicSky is the camera-relative preset: larger disc and glow, placement
// driven by CameraUniform.SunScreenUV. Both presets stay selectable; neither
// replaces the other.
func DynamicSky() SkyParams {
	p := baseSky()
	p.SunCoreRadius = 0.12
	p.SunGlowRadius = 0.35
	return p
}

func baseSky() SkyParams {
	return SkyParams{
		Zenith:        mgl32.Vec3{0.25, 0.45, 0.85},
		Horizon:       mgl32.Vec3{0.75, 0.85, 0.95},
		SunColor:      mgl32.Vec3{1.0, 0.9, 0.65},
		FixedSunUV:    mgl32.Vec2{0.74, 0.78},
		SunCoreWeight: 1.0,
		SunGlowWeight: 0.5,
		CloudColor:    mgl32.Vec3{0.96, 0.97, 0.99},
		CloudScale1:   6.0,
		CloudScale2:   14.0,
		CloudShift1:   mgl32.Vec2{3.7, 1.3},
		CloudShift2:   mgl32.Vec2{17.2, 9.6},
		CloudLow:      0.52,
		CloudHigh:     0.72,
	}
}

// FullScreenTriangleVertex returns the clip-space position and interpolated
// UV for vertex index 0..2 of the buffer-less full-screen triangle. The
// triangle (-1,-3) (-1,1) (3,1) strictly covers the clip rectangle, so for
// on-screen pixels the interpolated UV reduces to screen UV in [0,1]^2 with
// uv.y = 0 at the top of the screen.
func FullScreenTriangleVertex(index int) (clip mgl32.Vec2, uv mgl32.Vec2) {
	positions := [3]mgl32.Vec2{{-1, -3}, {-1, 1}, {3, 1}}
	clip = positions[index%3]
	uv = mgl32.Vec2{clip[0]*0.5 + 0.5, 0.5 - clip[1]*0.5}
	return clip, uv
}

// ShadeSky is the sky fragment stage: one screen UV in, one opaque linear
// RGBA color out. cam may be nil for SkyFlat and SkySun; SkyDynamic without
// camera data falls back to the fixed sun position.
func ShadeSky(uv mgl32.Vec2, cam *CameraUniform, p SkyParams, mode SkyMode) mgl32.Vec4 {
	t := Clamp(uv[1], 0, 1)
	col := MixVec3(p.Zenith, p.Horizon, Smoothstep(0, 1, t))

	if mode >= SkySun {
		sunUV := p.FixedSunUV
		if mode == SkyDynamic && cam != nil {
			sunUV = cam.SunScreenUV()
		}
		d := uv.Sub(sunUV).Len()
		core := Smoothstep(p.SunCoreRadius, 0, d)
		glow := Smoothstep(p.SunGlowRadius, 0, d)
		// Additive: intentionally allowed past 1.0, display clamp handles it.
		col = col.Add(p.SunColor.Mul(p.SunCoreWeight*core + p.SunGlowWeight*glow))
	}

	if mode == SkyDynamic {
		n1 := ValueNoise(uv.Mul(p.CloudScale1).Add(p.CloudShift1))
		n2 := ValueNoise(uv.Mul(p.CloudScale2).Add(p.CloudShift2))
		coverage := 0.65*n1 + 0.35*n2
		mask := Smoothstep(p.CloudLow, p.CloudHigh, coverage)
		// Clouds live in a mid-height band, fading out at zenith and horizon.
		fade := Smoothstep(0.06, 0.22, t) * (1 - Smoothstep(0.55, 0.8, t))
		col = MixVec3(col, p.CloudColor, mask*fade)
	}

	return mgl32.Vec4{col[0], col[1], col[2], 1}
}
