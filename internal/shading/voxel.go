package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// VoxelShadeMode selects which voxel fragment variant runs. The meshing
// boundary decides the mode and supplies the matching vertex attribute;
// shading never infers it from buffer layout.
type VoxelShadeMode int

const (
	// ShadeNormalLit is the full variant: triplanar albedo variation,
	// cell-edge outline and the layered lighting model. Vertices carry a
	// unit face normal.
	ShadeNormalLit VoxelShadeMode = iota
	// ShadeFlatOutline is the cheap unlit variant: outline from face-local
	// UV only, no lighting terms. Vertices carry a face UV in [0,1]^2.
	ShadeFlatOutline
)

// VoxelVertex is one vertex of the voxel geometry pass. Exactly one of
// Normal or FaceUV is meaningful, matching the active VoxelShadeMode.
type VoxelVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Normal   mgl32.Vec3
	FaceUV   mgl32.Vec2
}

// VoxelParams are the tunable constants of the voxel fragment stage.
type VoxelParams struct {
	// Edge outline (normal-lit variant).
	OutlineInner float32
	OutlineOuter float32
	OutlineFloor float32

	// Edge outline (flat variant).
	FlatInner  float32
	FlatOuter  float32
	FlatDarken float32

	// Triplanar variation.
	TriplanarPower float32
	VariationBase  float32
	VariationSpan  float32

	// Lighting.
	SunColor     mgl32.Vec3
	SkyAmbient   mgl32.Vec3
	AmbientBase  float32
	AmbientUp    float32
	BounceColor  mgl32.Vec3
	BounceWeight float32
	Shininess    float32
	SpecWeight   float32

	// Secondary fill light, attenuated by the self-shadow approximation.
	FillDir    mgl32.Vec3
	FillColor  mgl32.Vec3
	FillWeight float32

	// Height-based brightness gradient (cheap AO substitute).
	HeightFadeBase  float32
	HeightFadeScale float32
	HeightFadeMax   float32
}

// DefaultVoxelParams returns the hand-tuned constants of the inked look.
func DefaultVoxelParams() VoxelParams {
	return VoxelParams{
		OutlineInner: 0.018,
		OutlineOuter: 0.09,
		OutlineFloor: 0.45,

		FlatInner:  0.02,
		FlatOuter:  0.1,
		FlatDarken: 0.55,

		TriplanarPower: 2.2,
		VariationBase:  0.9,
		VariationSpan:  0.18,

		SunColor:     mgl32.Vec3{1.0, 0.96, 0.88},
		SkyAmbient:   mgl32.Vec3{0.45, 0.55, 0.75},
		AmbientBase:  0.35,
		AmbientUp:    0.3,
		BounceColor:  mgl32.Vec3{0.5, 0.4, 0.28},
		BounceWeight: 0.35,
		Shininess:    32,
		SpecWeight:   0.25,

		FillDir:    mgl32.Vec3{-0.5, -0.3, 0.8},
		FillColor:  mgl32.Vec3{0.9, 0.85, 0.8},
		FillWeight: 0.2,

		HeightFadeBase:  0.5,
		HeightFadeScale: 0.03,
		HeightFadeMax:   1.1,
	}
}

// TriplanarWeights converts a surface normal into per-plane blend weights
// (yz, xz, xy order). abs(normal) is sharpened with a power curve and
// renormalized so the weights sum to 1 for any non-zero normal; the
// denominator is epsilon-guarded so a zero normal still yields finite output.
func TriplanarWeights(normal mgl32.Vec3, power float32) mgl32.Vec3 {
	wx := math32.Pow(math32.Abs(normal[0]), power)
	wy := math32.Pow(math32.Abs(normal[1]), power)
	wz := math32.Pow(math32.Abs(normal[2]), power)
	sum := maxf(wx+wy+wz, 1e-4)
	return mgl32.Vec3{wx / sum, wy / sum, wz / sum}
}

// cellPlane projects the in-cell position onto the face-local 2D plane,
// chosen by the dominant axis of abs(normal): x-dominant faces use (y,z),
// y-dominant (x,z), otherwise (x,y).
func cellPlane(cell, normal mgl32.Vec3) (u, v float32) {
	ax := math32.Abs(normal[0])
	ay := math32.Abs(normal[1])
	az := math32.Abs(normal[2])
	switch {
	case ax >= ay && ax >= az:
		return cell[1], cell[2]
	case ay >= az:
		return cell[0], cell[2]
	default:
		return cell[0], cell[1]
	}
}

// edgeDistance is the distance from (u,v) to the nearest unit-cell edge.
func edgeDistance(u, v float32) float32 {
	du := u
	if 1-u < du {
		du = 1 - u
	}
	dv := v
	if 1-v < dv {
		dv = 1 - v
	}
	if dv < du {
		return dv
	}
	return du
}

// EdgeOutline maps a world position and face normal to the outline factor:
// 1 in the cell interior, falling to 0 on cell seams.
func EdgeOutline(worldPos, normal mgl32.Vec3, inner, outer float32) float32 {
	cell := fractVec3(worldPos)
	u, v := cellPlane(cell, normal)
	return Smoothstep(inner, outer, edgeDistance(u, v))
}

// planePattern is one planar procedural pattern: two sine waves at different
// frequencies per axis, centered on 0.5.
func planePattern(a, b float32) float32 {
	return 0.5 + 0.25*math32.Sin(a*7.31+b*0.5) + 0.25*math32.Sin(b*5.17-a*0.37)
}

// surfaceVariation blends the three planar patterns by triplanar weights,
// yielding a seamless scalar in [0,1] with no texture assets.
func surfaceVariation(pos mgl32.Vec3, w mgl32.Vec3) float32 {
	pyz := planePattern(pos[1], pos[2])
	pxz := planePattern(pos[0], pos[2])
	pxy := planePattern(pos[0], pos[1])
	return w[0]*pyz + w[1]*pxz + w[2]*pxy
}

// ShadeVoxel is the voxel fragment stage: interpolated vertex attributes and
// the camera uniform in, one opaque linear RGBA color out.
//
// The composition order of the normal-lit variant is part of the contract:
// outline darkening multiplies the lit base, and specular is added after it
// so highlights are never dimmed by the ink line.
func ShadeVoxel(v VoxelVertex, cam *CameraUniform, p VoxelParams, mode VoxelShadeMode) mgl32.Vec4 {
	if mode == ShadeFlatOutline {
		outline := 1 - Smoothstep(p.FlatInner, p.FlatOuter, edgeDistance(v.FaceUV[0], v.FaceUV[1]))
		col := MixVec3(v.Color, v.Color.Mul(p.FlatDarken), outline)
		return mgl32.Vec4{col[0], col[1], col[2], 1}
	}

	n := safeNormalize(v.Normal, mgl32.Vec3{0, 1, 0})

	outline := EdgeOutline(v.Position, n, p.OutlineInner, p.OutlineOuter)

	w := TriplanarWeights(n, p.TriplanarPower)
	variation := surfaceVariation(v.Position, w)
	albedo := v.Color.Mul(p.VariationBase + p.VariationSpan*(variation-0.5))

	toSun := cam.SunDir.Mul(-1)
	diffuse := maxf(n.Dot(toSun), 0)

	viewDir := safeNormalize(cam.Position.Sub(v.Position), cam.Forward.Mul(-1))
	half := safeNormalize(toSun.Add(viewDir), n)
	specular := p.SunColor.Mul(math32.Pow(maxf(n.Dot(half), 0), p.Shininess) * p.SpecWeight)

	ambient := p.SkyAmbient.Mul(p.AmbientBase + p.AmbientUp*maxf(n[1], 0)).
		Add(p.BounceColor.Mul(p.BounceWeight * maxf(-n[1], 0)))

	// No shadow map: scale the fill light by a diffuse-driven approximation.
	sunShadow := 0.25 + 0.75*diffuse
	toFill := safeNormalize(p.FillDir, mgl32.Vec3{0, -1, 0}).Mul(-1)
	fill := p.FillColor.Mul(p.FillWeight * maxf(n.Dot(toFill), 0) * sunShadow)

	heightFade := Clamp(p.HeightFadeBase+v.Position[1]*p.HeightFadeScale,
		p.HeightFadeBase, p.HeightFadeMax)

	light := ambient.Add(p.SunColor.Mul(diffuse)).Add(fill)
	lit := mulElem(albedo, light).Mul(heightFade)
	final := lit.Mul(Mix(p.OutlineFloor, 1, outline)).Add(specular)

	return mgl32.Vec4{final[0], final[1], final[2], 1}
}
