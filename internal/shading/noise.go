package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Hash-lattice value noise used for cloud coverage. Deterministic and
// unseeded: identical input always yields identical output. Periodicity
// artifacts at very large coordinates are a known property, not a bug.

// Hash2 maps a 2D point to a pseudo-random scalar in [0, 1) via the classic
// fract(sin(dot)) shader hash. The constants are load-bearing: renders only
// match reference frames if they stay exactly 127.1 / 311.7 / 43758.5453.
func Hash2(p mgl32.Vec2) float32 {
	return Fract(math32.Sin(p[0]*127.1+p[1]*311.7) * 43758.5453)
}

// ValueNoise evaluates smooth value noise at uv: Hash2 at the four integer
// lattice corners around uv, blended bilinearly with a smootherstep weight
// f*f*(3-2f) so there is no C1 break on lattice lines. Result is in [0, 1].
func ValueNoise(uv mgl32.Vec2) float32 {
	ix := math32.Floor(uv[0])
	iy := math32.Floor(uv[1])
	fx := uv[0] - ix
	fy := uv[1] - iy

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)

	a := Hash2(mgl32.Vec2{ix, iy})
	b := Hash2(mgl32.Vec2{ix + 1, iy})
	c := Hash2(mgl32.Vec2{ix, iy + 1})
	d := Hash2(mgl32.Vec2{ix + 1, iy + 1})

	return Mix(Mix(a, b, ux), Mix(c, d, ux), uy)
}
