package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeDirt
	BlockTypeGrass
)

// BlockColor returns the linear-RGB albedo for a block type. Air maps to
// black; it is never meshed so the value is irrelevant.
func BlockColor(b BlockType) mgl32.Vec3 {
	switch b {
	case BlockTypeGrass:
		return mgl32.Vec3{0.2, 0.8, 0.2}
	case BlockTypeDirt:
		return mgl32.Vec3{0.55, 0.35, 0.2}
	default:
		return mgl32.Vec3{0, 0, 0}
	}
}
