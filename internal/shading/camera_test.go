package shading

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func identityCamera(sunDir mgl32.Vec3) CameraUniform {
	return CameraUniform{
		ViewProj:   mgl32.Ident4(),
		Position:   mgl32.Vec3{0, 0, 0},
		SunDir:     sunDir,
		Forward:    mgl32.Vec3{0, 0, -1},
		Right:      mgl32.Vec3{1, 0, 0},
		Up:         mgl32.Vec3{0, 1, 0},
		ProjParams: mgl32.Vec2{1, 1},
	}
}

// TestSunScreenUVCentered verifies a sun straight ahead of an identity
// camera projects to the screen center.
func TestSunScreenUVCentered(t *testing.T) {
	// Sunlight travels toward the camera: the disc sits dead ahead.
	cam := identityCamera(mgl32.Vec3{0, 0, 1})
	uv := cam.SunScreenUV()
	if d := uv.Sub(mgl32.Vec2{0.5, 0.5}).Len(); d > 1e-5 {
		t.Errorf("straight-ahead sun projected to %v, expected (0.5, 0.5)", uv)
	}
}

// TestSunScreenUVDirections verifies the sun moves the right way on screen:
// a sun up and to the right of the view lands in the upper-right UV quadrant
// (uv.x > 0.5, uv.y < 0.5 with y growing downward).
func TestSunScreenUVDirections(t *testing.T) {
	toSun := mgl32.Vec3{0.3, 0.3, -1}.Normalize()
	cam := identityCamera(toSun.Mul(-1))
	uv := cam.SunScreenUV()
	if uv[0] <= 0.5 {
		t.Errorf("sun to the right projected to uv.x = %f, expected > 0.5", uv[0])
	}
	if uv[1] >= 0.5 {
		t.Errorf("sun above projected to uv.y = %f, expected < 0.5", uv[1])
	}
}

// TestSunScreenUVBehindCamera verifies the epsilon clamp: a sun behind the
// camera yields a finite (if meaningless) placement, never NaN/Inf.
func TestSunScreenUVBehindCamera(t *testing.T) {
	cam := identityCamera(mgl32.Vec3{0, 0, -1}) // light travels away: sun behind
	uv := cam.SunScreenUV()
	for i := 0; i < 2; i++ {
		v := float64(uv[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("behind-camera sun produced non-finite uv %v", uv)
		}
	}
}

// TestNewCameraUniformBasis verifies the derived basis is orthonormal even
// when the inputs are not quite orthogonal.
func TestNewCameraUniformBasis(t *testing.T) {
	cam := NewCameraUniform(mgl32.Ident4(),
		mgl32.Vec3{1, 2, 3},
		mgl32.Vec3{0.2, 0.1, -1},
		mgl32.Vec3{0, 1, 0.05},
		mgl32.Vec3{0.3, -1, 0.2},
		16.0/9.0, 0.577)

	const tol = 1e-5
	checkUnit := func(name string, v mgl32.Vec3) {
		if d := v.Len() - 1; d > tol || d < -tol {
			t.Errorf("%s not unit length: |%v| = %f", name, v, v.Len())
		}
	}
	checkUnit("forward", cam.Forward)
	checkUnit("right", cam.Right)
	checkUnit("up", cam.Up)
	checkUnit("sunDir", cam.SunDir)

	if d := cam.Forward.Dot(cam.Right); d > tol || d < -tol {
		t.Errorf("forward.right = %f, expected 0", d)
	}
	if d := cam.Forward.Dot(cam.Up); d > tol || d < -tol {
		t.Errorf("forward.up = %f, expected 0", d)
	}
	if d := cam.Right.Dot(cam.Up); d > tol || d < -tol {
		t.Errorf("right.up = %f, expected 0", d)
	}
}
