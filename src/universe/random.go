package universe

import (
	perlin "github.com/aquilax/go-perlin"
)

//noise field parameters for the random pattern
const (
	noiseAlpha     = 2.0
	noiseBeta      = 2.0
	noiseOctaves   = 3
	noiseScale     = 0.15
	noiseThreshold = 0.05
)

//NewRandomGrid settles the grid of width x height with coherent noise
//the same seed always gives the same grid
func NewRandomGrid(width int, height int, seed int64) *Grid {
	g := NewGrid(width, height)
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	for y, row := range g.cells {
		for x := range row {
			row[x].Alive = p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) > noiseThreshold
		}
	}
	return g
}
