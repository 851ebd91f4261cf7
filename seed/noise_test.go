package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/seedgol/model"
)

func TestNoise_Deterministic(t *testing.T) {
	a := Noise(50, 20, 1)
	b := Noise(50, 20, 1)
	c := Noise(50, 20, 2)

	assert.Equal(t, 50, a.Bounds().Dx())
	assert.Equal(t, 20, a.Bounds().Dy())
	assert.Equal(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestNoise_SeedsMixedGrid(t *testing.T) {
	g := model.NewGrid(50, 20)

	require.NoError(t, Apply(g, Noise(50, 20, 42), DefaultThreshold))

	population := g.CountLivingCells()
	assert.Greater(t, population, 0)
	assert.Less(t, population, 50*20)
}
