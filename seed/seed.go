// Package seed turns images into initial grid states.
package seed

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/sheikhrachel/seedgol/model"
)

// DefaultThreshold is the luminance at or below which a pixel seeds a live cell.
const DefaultThreshold uint8 = 128

// ErrDimensionMismatch is returned when the image and the grid differ in size.
var ErrDimensionMismatch = errors.New("seed dimensions do not match grid")

// Load opens and decodes an image in any registered format
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open seed: %+v", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to decode seed: %+v", path)
	}
	return img, nil
}

// Apply seeds every cell of g from img: dark pixels (luminance <= threshold)
// are alive. The grid is left untouched if the sizes differ.
func Apply(g *model.Grid, img image.Image, threshold uint8) error {
	b := img.Bounds()
	if b.Dx() != g.GetWidth() || b.Dy() != g.GetHeight() {
		return errors.Wrapf(ErrDimensionMismatch, "[Apply] image is %dx%d, grid is %dx%d",
			b.Dx(), b.Dy(), g.GetWidth(), g.GetHeight())
	}

	for y := range g.GetHeight() {
		for x := range g.GetWidth() {
			g.Set(x, y, Luminance(img.At(b.Min.X+x, b.Min.Y+y)) <= threshold)
		}
	}
	return nil
}

// Luminance converts c to its 8-bit gray value
func Luminance(c color.Color) uint8 {
	return color.GrayModel.Convert(c).(color.Gray).Y
}
