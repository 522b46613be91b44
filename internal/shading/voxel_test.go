package shading

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestTriplanarWeightsSum verifies the blend weights sum to 1 for random
// normals and for fully axis-aligned ones.
func TestTriplanarWeightsSum(t *testing.T) {
	const tol = 1e-4
	check := func(n mgl32.Vec3) {
		w := TriplanarWeights(n, 2.2)
		sum := w[0] + w[1] + w[2]
		if d := sum - 1; d > tol || d < -tol {
			t.Errorf("TriplanarWeights(%v) sums to %f, expected 1", n, sum)
		}
		for i := 0; i < 3; i++ {
			if w[i] < 0 {
				t.Errorf("TriplanarWeights(%v)[%d] = %f, expected >= 0", n, i, w[i])
			}
		}
	}

	check(mgl32.Vec3{1, 0, 0})
	check(mgl32.Vec3{0, -1, 0})
	check(mgl32.Vec3{0, 0, 1})

	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 500; i++ {
		n := mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}
		if n.Len() < 1e-3 {
			continue
		}
		check(n.Normalize())
	}
}

// TestTriplanarAxisAligned verifies an axis-aligned normal puts all weight
// on its own projection plane.
func TestTriplanarAxisAligned(t *testing.T) {
	w := TriplanarWeights(mgl32.Vec3{0, 1, 0}, 2.2)
	if w[1] < 0.999 {
		t.Errorf("up normal yz/xz/xy weights %v, expected xz weight ~1", w)
	}
}

// TestEdgeOutlineCenterAndSeam verifies the outline factor is 1 at the cell
// center and falls toward 0 approaching any cell boundary.
func TestEdgeOutlineCenterAndSeam(t *testing.T) {
	up := mgl32.Vec3{0, 1, 0}
	center := EdgeOutline(mgl32.Vec3{4.5, 7, 2.5}, up, 0.018, 0.09)
	if center != 1 {
		t.Errorf("outline at cell center = %f, expected exactly 1", center)
	}

	seam := EdgeOutline(mgl32.Vec3{4.001, 7, 2.5}, up, 0.018, 0.09)
	if seam > 0.01 {
		t.Errorf("outline near seam = %f, expected ~0", seam)
	}

	// Monotonic falloff walking from the center toward an edge.
	prev := float32(2)
	for i := 0; i <= 10; i++ {
		u := 0.5 - 0.05*float32(i)
		f := EdgeOutline(mgl32.Vec3{4, 7, 2}.Add(mgl32.Vec3{u, 0, 0.5}), up, 0.018, 0.09)
		if f > prev {
			t.Fatalf("outline factor increased toward the edge at u=%f: %f > %f", u, f, prev)
		}
		prev = f
	}
}

// TestShadeVoxelTopBrighterThanBottom is the end-to-end lighting scenario:
// under straight-down sunlight a top face must come out strictly brighter
// than the identical bottom face.
func TestShadeVoxelTopBrighterThanBottom(t *testing.T) {
	cam := identityCamera(mgl32.Vec3{0, -1, 0})
	cam.Position = mgl32.Vec3{0, 20, 10}
	p := DefaultVoxelParams()

	v := VoxelVertex{
		Position: mgl32.Vec3{0.5, 10, 0.5}, // cell center: outline factor 1
		Color:    mgl32.Vec3{0.8, 0.6, 0.2},
	}

	v.Normal = mgl32.Vec3{0, 1, 0}
	top := ShadeVoxel(v, &cam, p, ShadeNormalLit)

	v.Normal = mgl32.Vec3{0, -1, 0}
	bottom := ShadeVoxel(v, &cam, p, ShadeNormalLit)

	if lum(top) <= lum(bottom) {
		t.Errorf("top face %v not brighter than bottom face %v", top, bottom)
	}
	if top.W() != 1 || bottom.W() != 1 {
		t.Errorf("voxel alpha not 1: %f, %f", top.W(), bottom.W())
	}
}

// TestShadeVoxelSpecularSurvivesOutline verifies composition order: on a
// cell seam the outline floor darkens the lit base, but the specular
// contribution is added afterwards, undimmed.
func TestShadeVoxelSpecularSurvivesOutline(t *testing.T) {
	// Light and view lined up with the normal maximizes the Blinn term.
	cam := identityCamera(mgl32.Vec3{0, -1, 0})
	cam.Position = mgl32.Vec3{0.0, 30, 0.0}
	p := DefaultVoxelParams()

	seamVert := VoxelVertex{
		Position: mgl32.Vec3{0.0, 10, 0.001}, // on a cell seam
		Color:    mgl32.Vec3{0.8, 0.6, 0.2},
		Normal:   mgl32.Vec3{0, 1, 0},
	}

	withSpec := ShadeVoxel(seamVert, &cam, p, ShadeNormalLit)

	noSpec := p
	noSpec.SpecWeight = 0
	withoutSpec := ShadeVoxel(seamVert, &cam, noSpec, ShadeNormalLit)

	diff := withSpec.Vec3().Sub(withoutSpec.Vec3())

	// Expected full specular: view and light both along +Y, half vector = n.
	want := p.SunColor.Mul(p.SpecWeight)
	if d := diff.Sub(want).Len(); d > 1e-3 {
		t.Errorf("specular at seam = %v, expected undimmed %v", diff, want)
	}
}

// TestShadeVoxelFlatOutline verifies the unlit variant: interior fragments
// keep the vertex color untouched, seam fragments are darkened toward the
// outline color, and no lighting term leaks in.
func TestShadeVoxelFlatOutline(t *testing.T) {
	p := DefaultVoxelParams()
	base := mgl32.Vec3{0.2, 0.8, 0.2}

	interior := ShadeVoxel(VoxelVertex{
		Color:  base,
		FaceUV: mgl32.Vec2{0.5, 0.5},
	}, nil, p, ShadeFlatOutline)
	if interior.Vec3() != base {
		t.Errorf("flat interior color %v, expected untouched %v", interior.Vec3(), base)
	}

	seam := ShadeVoxel(VoxelVertex{
		Color:  base,
		FaceUV: mgl32.Vec2{0.0, 0.5},
	}, nil, p, ShadeFlatOutline)
	want := base.Mul(p.FlatDarken)
	if d := seam.Vec3().Sub(want).Len(); d > 1e-5 {
		t.Errorf("flat seam color %v, expected darkened %v", seam.Vec3(), want)
	}
}

// TestShadeVoxelHeightFadeClamped verifies the height fade bounds: deep
// fragments never drop below the base factor and high ones never exceed max.
func TestShadeVoxelHeightFadeClamped(t *testing.T) {
	cam := identityCamera(mgl32.Vec3{0, -1, 0})
	cam.Position = mgl32.Vec3{0, 500, 0}
	p := DefaultVoxelParams()
	p.SpecWeight = 0 // keep comparison purely multiplicative

	v := VoxelVertex{
		Position: mgl32.Vec3{0.5, 20, 0.5}, // at fade cap: 0.5 + 20*0.03 = 1.1
		Color:    mgl32.Vec3{0.5, 0.5, 0.5},
		Normal:   mgl32.Vec3{0, 1, 0},
	}
	atCap := ShadeVoxel(v, &cam, p, ShadeNormalLit)

	v.Position = mgl32.Vec3{0.5, 200, 0.5} // far above: fade stays clamped
	aboveCap := ShadeVoxel(v, &cam, p, ShadeNormalLit)

	// Triplanar variation depends only on the projected plane; for an up
	// normal that is (x,z), identical here, so the fade clamp is the only
	// possible difference.
	if d := lum(atCap) - lum(aboveCap); d > 1e-4 || d < -1e-4 {
		t.Errorf("height fade not clamped above cap: %v vs %v", atCap, aboveCap)
	}
}
