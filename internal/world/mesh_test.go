package world

import (
	"testing"

	"voxelink/internal/shading"
)

// TestBuildMeshSingleBlock verifies one isolated block meshes all six faces
// in both vertex layouts.
func TestBuildMeshSingleBlock(t *testing.T) {
	var c Chunk
	c.Set(3, 3, 3, BlockTypeGrass)

	for _, mode := range []shading.VoxelShadeMode{shading.ShadeNormalLit, shading.ShadeFlatOutline} {
		verts := BuildMesh(&c, mode)
		stride := VertexStride(mode)
		if len(verts)%stride != 0 {
			t.Fatalf("mode %d: buffer length %d not a multiple of stride %d", mode, len(verts), stride)
		}
		n := len(verts) / stride
		if n != 36 {
			t.Errorf("mode %d: single block meshed %d vertices, expected 36", mode, n)
		}
	}
}

// TestBuildMeshCullsSharedFaces verifies the face between two touching
// blocks is not emitted: a 2-block column has 10 faces, not 12.
func TestBuildMeshCullsSharedFaces(t *testing.T) {
	var c Chunk
	c.Set(3, 3, 3, BlockTypeDirt)
	c.Set(3, 4, 3, BlockTypeGrass)

	verts := BuildMesh(&c, shading.ShadeNormalLit)
	n := len(verts) / VertexStride(shading.ShadeNormalLit)
	if n != 60 {
		t.Errorf("2-block column meshed %d vertices, expected 60 (10 faces)", n)
	}
}

// TestMeshVerticesRoundTrip verifies decoded vertices carry the attribute
// matching the mode: unit normals for the lit layout, in-range UVs for the
// flat layout, and block colors either way.
func TestMeshVerticesRoundTrip(t *testing.T) {
	var c Chunk
	c.Set(0, 0, 0, BlockTypeGrass)

	lit := MeshVertices(BuildMesh(&c, shading.ShadeNormalLit), shading.ShadeNormalLit)
	if len(lit) != 36 {
		t.Fatalf("decoded %d lit vertices, expected 36", len(lit))
	}
	for i, v := range lit {
		if d := v.Normal.Len() - 1; d > 1e-5 || d < -1e-5 {
			t.Errorf("vertex %d normal %v not unit length", i, v.Normal)
		}
		if v.Color != BlockColor(BlockTypeGrass) {
			t.Errorf("vertex %d color %v, expected grass albedo", i, v.Color)
		}
	}

	flat := MeshVertices(BuildMesh(&c, shading.ShadeFlatOutline), shading.ShadeFlatOutline)
	for i, v := range flat {
		for j := 0; j < 2; j++ {
			if v.FaceUV[j] < 0 || v.FaceUV[j] > 1 {
				t.Errorf("vertex %d faceUV %v outside [0,1]^2", i, v.FaceUV)
			}
		}
	}
}

// TestBuildMeshChunkBoundary verifies faces on the chunk boundary are
// emitted (the out-of-bounds neighbor counts as air).
func TestBuildMeshChunkBoundary(t *testing.T) {
	var c Chunk
	c.Set(0, 0, 0, BlockTypeDirt)
	n := len(BuildMesh(&c, shading.ShadeNormalLit)) / 9
	if n != 36 {
		t.Errorf("corner block meshed %d vertices, expected all 36", n)
	}
}
