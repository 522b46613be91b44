package world

import (
	"voxelink/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// Face mesher: one quad (two CCW triangles) per air-exposed block face.
// The vertex layout is a fixed contract with the voxel pipeline and depends
// on the shade mode: normal-lit vertices carry a face normal, flat-outline
// vertices carry a face-local UV. Exactly one of the two, never both.

type cubeFace struct {
	normal  mgl32.Vec3
	offset  [3]int // neighbor direction for visibility test
	corners [4]mgl32.Vec3
}

// cubeFaces returns the six faces of the block with min corner (x,y,z),
// corners wound CCW seen from outside.
func cubeFaces(x, y, z float32) [6]cubeFace {
	return [6]cubeFace{
		{mgl32.Vec3{0, 0, 1}, [3]int{0, 0, 1}, [4]mgl32.Vec3{
			{x, y, z + 1}, {x + 1, y, z + 1}, {x + 1, y + 1, z + 1}, {x, y + 1, z + 1}}},
		{mgl32.Vec3{0, 0, -1}, [3]int{0, 0, -1}, [4]mgl32.Vec3{
			{x + 1, y, z}, {x, y, z}, {x, y + 1, z}, {x + 1, y + 1, z}}},
		{mgl32.Vec3{1, 0, 0}, [3]int{1, 0, 0}, [4]mgl32.Vec3{
			{x + 1, y, z + 1}, {x + 1, y, z}, {x + 1, y + 1, z}, {x + 1, y + 1, z + 1}}},
		{mgl32.Vec3{-1, 0, 0}, [3]int{-1, 0, 0}, [4]mgl32.Vec3{
			{x, y, z}, {x, y, z + 1}, {x, y + 1, z + 1}, {x, y + 1, z}}},
		{mgl32.Vec3{0, 1, 0}, [3]int{0, 1, 0}, [4]mgl32.Vec3{
			{x, y + 1, z + 1}, {x + 1, y + 1, z + 1}, {x + 1, y + 1, z}, {x, y + 1, z}}},
		{mgl32.Vec3{0, -1, 0}, [3]int{0, -1, 0}, [4]mgl32.Vec3{
			{x, y, z}, {x + 1, y, z}, {x + 1, y, z + 1}, {x, y, z + 1}}},
	}
}

var faceUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// quadOrder expands the 4 quad corners into 2 triangles.
var quadOrder = [6]int{0, 1, 2, 2, 3, 0}

// VertexStride returns the number of floats per vertex for a shade mode:
// position+color+normal (9) or position+color+faceUV (8).
func VertexStride(mode shading.VoxelShadeMode) int {
	if mode == shading.ShadeFlatOutline {
		return 8
	}
	return 9
}

// BuildMesh emits the interleaved vertex buffer for every visible face of
// the chunk, laid out per VertexStride(mode).
func BuildMesh(c *Chunk, mode shading.VoxelShadeMode) []float32 {
	stride := VertexStride(mode)
	verts := make([]float32, 0, 4096*stride)

	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				b := c.At(x, y, z)
				if b == BlockTypeAir {
					continue
				}
				color := BlockColor(b)

				for _, face := range cubeFaces(float32(x), float32(y), float32(z)) {
					nx := x + face.offset[0]
					ny := y + face.offset[1]
					nz := z + face.offset[2]
					if c.At(nx, ny, nz) != BlockTypeAir {
						continue
					}

					for _, ci := range quadOrder {
						p := face.corners[ci]
						verts = append(verts, p[0], p[1], p[2], color[0], color[1], color[2])
						if mode == shading.ShadeFlatOutline {
							uv := faceUVs[ci]
							verts = append(verts, uv[0], uv[1])
						} else {
							verts = append(verts, face.normal[0], face.normal[1], face.normal[2])
						}
					}
				}
			}
		}
	}

	return verts
}

// MeshVertices decodes an interleaved buffer back into shading vertices.
// The soft renderer and tests consume this; the GL path uploads the raw
// buffer directly.
func MeshVertices(verts []float32, mode shading.VoxelShadeMode) []shading.VoxelVertex {
	stride := VertexStride(mode)
	out := make([]shading.VoxelVertex, 0, len(verts)/stride)
	for i := 0; i+stride <= len(verts); i += stride {
		v := shading.VoxelVertex{
			Position: mgl32.Vec3{verts[i], verts[i+1], verts[i+2]},
			Color:    mgl32.Vec3{verts[i+3], verts[i+4], verts[i+5]},
		}
		if mode == shading.ShadeFlatOutline {
			v.FaceUV = mgl32.Vec2{verts[i+6], verts[i+7]}
		} else {
			v.Normal = mgl32.Vec3{verts[i+6], verts[i+7], verts[i+8]}
		}
		out = append(out, v)
	}
	return out
}
