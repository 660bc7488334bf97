package core

import perlin "github.com/aquilax/go-perlin"

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
)

// Noise samples a seeded 2D Perlin field at cell resolution.
type Noise struct {
	p     *perlin.Perlin
	scale float64
}

// NewNoise returns a field whose features span roughly scale cells.
func NewNoise(seed int64, scale float64) *Noise {
	if scale <= 0 {
		scale = 8
	}
	return &Noise{p: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed), scale: scale}
}

// At returns the field value at cell (x, y), roughly in [-1, 1].
func (n *Noise) At(x, y int) float64 {
	return n.p.Noise2D(float64(x)/n.scale, float64(y)/n.scale)
}

// Scatter calls fn for each cell of the w x h window at (x0, y0) whose noise
// exceeds threshold, thinned to the given density.
func Scatter(seed int64, x0, y0, w, h int, threshold, density float64, fn func(x, y int)) {
	rng := NewRNG(seed)
	n := NewNoise(rng.Int63(), 0)
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if n.At(x, y) > threshold && rng.Chance(density) {
				fn(x, y)
			}
		}
	}
}
