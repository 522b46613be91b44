package shading

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraUniform is the per-frame camera contract shared by both pipelines.
// The orchestrator builds one per frame and must keep ViewProj, the basis
// vectors and ProjParams mutually consistent; shading code only reads it.
type CameraUniform struct {
	ViewProj mgl32.Mat4

	// Position is the camera eye position in world space.
	Position mgl32.Vec3

	// SunDir is the unit direction sunlight travels (sun -> scene).
	SunDir mgl32.Vec3

	// Orthonormal camera basis in world space.
	Forward mgl32.Vec3
	Right   mgl32.Vec3
	Up      mgl32.Vec3

	// ProjParams is (aspect ratio, tan(fovy/2)), matching ViewProj.
	ProjParams mgl32.Vec2
}

// forwardEps keeps the perspective divide finite when the sun sits at or
// behind the camera plane. Placement is then meaningless but never NaN/Inf.
const forwardEps = 1e-4

// NewCameraUniform derives the full contract from eye position, look
// direction and projection parameters. worldUp is usually +Y; the basis is
// re-orthogonalized so the invariant holds even for slightly drifted input.
func NewCameraUniform(viewProj mgl32.Mat4, eye, lookDir, worldUp, sunDir mgl32.Vec3, aspect, tanHalfFovY float32) CameraUniform {
	forward := safeNormalize(lookDir, mgl32.Vec3{0, 0, -1})
	right := safeNormalize(forward.Cross(worldUp), mgl32.Vec3{1, 0, 0})
	up := right.Cross(forward)
	return CameraUniform{
		ViewProj:   viewProj,
		Position:   eye,
		SunDir:     safeNormalize(sunDir, mgl32.Vec3{0, -1, 0}),
		Forward:    forward,
		Right:      right,
		Up:         up,
		ProjParams: mgl32.Vec2{aspect, tanHalfFovY},
	}
}

// SunScreenUV projects the direction towards the sun into screen UV space,
// consistent with the projection described by ProjParams. UV y grows
// downward (0.5 - ndc.y*0.5), matching the sky pipeline's uv convention.
//
// When the sun is behind the camera the forward component is clamped to a
// small epsilon: the returned placement is visually wrong but always finite.
func (c *CameraUniform) SunScreenUV() mgl32.Vec2 {
	toSun := c.SunDir.Mul(-1)

	x := toSun.Dot(c.Right)
	y := toSun.Dot(c.Up)
	z := toSun.Dot(c.Forward)
	if z < forwardEps {
		z = forwardEps
	}

	aspect := maxf(c.ProjParams[0], forwardEps)
	tanHalf := maxf(c.ProjParams[1], forwardEps)

	ndcX := x / (z * aspect * tanHalf)
	ndcY := y / (z * tanHalf)

	return mgl32.Vec2{0.5 + 0.5*ndcX, 0.5 - 0.5*ndcY}
}
