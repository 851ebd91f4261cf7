package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_StillLifeRepeats(t *testing.T) {
	g := seedGrid(10, 10, cell{5, 5}, cell{6, 5}, cell{5, 6}, cell{6, 6})
	h := NewHistory(5)

	assert.False(t, h.Repeats(g), "empty history never repeats")
	h.Push(g)
	g.NextGeneration()

	assert.True(t, h.Repeats(g))
}

func TestHistory_BlinkerRepeatsEveryOtherGeneration(t *testing.T) {
	g := seedGrid(5, 5, cell{2, 1}, cell{2, 2}, cell{2, 3})
	h := NewHistory(5)

	h.Push(g)
	g.NextGeneration()
	assert.False(t, h.Repeats(g))

	h.Push(g)
	g.NextGeneration()
	assert.True(t, h.Repeats(g))
}

func TestHistory_EvictsOldestState(t *testing.T) {
	g := seedGrid(5, 5, cell{2, 1}, cell{2, 2}, cell{2, 3})
	h := NewHistory(1)

	h.Push(g)
	g.NextGeneration()
	h.Push(g)
	g.NextGeneration()

	assert.Equal(t, 1, h.Len())
	assert.False(t, h.Repeats(g), "the matching state was evicted")
}

func TestHistory_GliderDoesNotRepeat(t *testing.T) {
	g := seedGrid(20, 20, cell{1, 0}, cell{2, 1}, cell{0, 2}, cell{1, 2}, cell{2, 2})
	h := NewHistory(5)

	for i := range 8 {
		assert.False(t, h.Repeats(g), "generation %d", i)
		h.Push(g)
		g.NextGeneration()
	}
}

func TestNewHistory_MinimumSize(t *testing.T) {
	g := NewGrid(2, 2)
	h := NewHistory(0)

	h.Push(g)
	h.Push(g)

	assert.Equal(t, 1, h.Len())
}
