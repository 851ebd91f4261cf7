package seed

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
	// noiseScale is the lattice step per cell; smaller values give larger blobs.
	noiseScale = 0.15
)

// Noise builds a width x height gray field from Perlin noise. The same seed
// always yields the same image, which Apply then classifies like any other.
func Noise(width, height int, seed int64) *image.Gray {
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
	img := image.NewGray(image.Rect(0, 0, width, height))

	for y := range height {
		for x := range width {
			n := p.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale)
			v := 127.5 + n*255
			img.SetGray(x, y, color.Gray{Y: uint8(min(max(v, 0), 255))})
		}
	}
	return img
}
