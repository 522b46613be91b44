package graphics

import (
	"voxelink/internal/shading"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera handles the view and projection matrices and derives the per-frame
// shading.CameraUniform. Keeping matrix construction and basis extraction in
// one place is what keeps the camera-relative sun disc consistent with the
// projection.
type Camera struct {
	Position    mgl32.Vec3
	Yaw         float32 // degrees, -90 looks down -Z
	Pitch       float32 // degrees
	AspectRatio float32
	FOV         float32 // vertical, degrees
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{8, 12, 24},
		Yaw:         -90,
		Pitch:       -15,
		AspectRatio: float32(width) / float32(height),
		FOV:         60.0,
		NearPlane:   0.1,
		FarPlane:    1000.0,
	}
}

// Front returns the unit look direction from yaw/pitch.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), mgl32.Vec3{0, 1, 0})
}

// Uniform builds the camera contract for this frame. sunDir is the unit
// direction sunlight travels; tan(FOV/2) here and in GetProjectionMatrix
// come from the same FOV so the two stay consistent by construction.
func (c *Camera) Uniform(sunDir mgl32.Vec3) shading.CameraUniform {
	viewProj := c.GetProjectionMatrix().Mul4(c.GetViewMatrix())
	tanHalf := math32.Tan(mgl32.DegToRad(c.FOV) / 2)
	return shading.NewCameraUniform(viewProj, c.Position, c.Front(),
		mgl32.Vec3{0, 1, 0}, sunDir, c.AspectRatio, tanHalf)
}
