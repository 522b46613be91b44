package world

import (
	"github.com/aquilax/go-perlin"
)

// Terrain generation constants
const (
	baseHeight  = 7.0
	heightSpan  = 4.0
	noiseScale  = 0.08
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinOct   = 3
)

// Generator builds chunk terrain from a perlin heightfield: dirt columns
// capped with grass, deterministic per seed.
type Generator struct {
	noise *perlin.Perlin
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOct, seed),
	}
}

// HeightAt returns the terrain height for a column, always in [1, ChunkSize].
func (g *Generator) HeightAt(x, z int) int {
	n := g.noise.Noise2D(float64(x)*noiseScale, float64(z)*noiseScale) // ~[-1,1]
	h := int(baseHeight + heightSpan*n)
	if h < 1 {
		h = 1
	}
	if h > ChunkSize {
		h = ChunkSize
	}
	return h
}

// Generate fills the chunk with heightfield terrain.
func (g *Generator) Generate(c *Chunk) {
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			h := g.HeightAt(x, z)
			for y := 0; y < h; y++ {
				if y == h-1 {
					c.Set(x, y, z, BlockTypeGrass)
				} else {
					c.Set(x, y, z, BlockTypeDirt)
				}
			}
		}
	}
}
