package world

// ChunkSize is the edge length of the cubic voxel chunk, in blocks.
const ChunkSize = 16

// Chunk is a fixed-size block volume. Block (x,y,z) occupies the unit cell
// [x,x+1)x[y,y+1)x[z,z+1) in world space, which is what the cell-edge
// outline in the fragment stage assumes.
type Chunk struct {
	blocks [ChunkSize][ChunkSize][ChunkSize]BlockType
}

// At returns the block at (x,y,z); anything outside the chunk is air, so
// boundary faces are always meshed.
func (c *Chunk) At(x, y, z int) BlockType {
	if x < 0 || y < 0 || z < 0 || x >= ChunkSize || y >= ChunkSize || z >= ChunkSize {
		return BlockTypeAir
	}
	return c.blocks[x][y][z]
}

// Set places a block, ignoring out-of-bounds coordinates.
func (c *Chunk) Set(x, y, z int, b BlockType) {
	if x < 0 || y < 0 || z < 0 || x >= ChunkSize || y >= ChunkSize || z >= ChunkSize {
		return
	}
	c.blocks[x][y][z] = b
}
