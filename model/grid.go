package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/seedgol/rules"
)

// ErrOutOfBounds is the cause of the panic raised when a logical coordinate
// falls outside the grid.
var ErrOutOfBounds = errors.New("cell coordinates out of bounds")

// neighborOffsets is the Moore neighborhood as (dx, dy) pairs.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid is the game board. Cells are stored with a one-cell dead border on
// every side, so logical (x, y) lives at cells[y+1][x+1] and neighbor lookups
// at the edges never leave the slice.
type Grid struct {
	width  int
	height int
	cells  [][]bool

	// counts is scratch space for NextGeneration, indexed y*width+x.
	counts []uint8
}

// NewGrid creates an all-dead grid with the specified logical dimensions
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("model: grid dimensions must be positive, got %dx%d", width, height))
	}
	cells := make([][]bool, height+2)
	for i := range cells {
		cells[i] = make([]bool, width+2)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
		counts: make([]uint8, width*height),
	}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

func (g *Grid) mustContain(op string, x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(errors.Wrapf(ErrOutOfBounds, "[Grid.%s] (%d, %d) outside %dx%d", op, x, y, g.width, g.height))
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	g.mustContain("Set", x, y)
	g.cells[y+1][x+1] = alive
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	g.mustContain("Get", x, y)
	return g.cells[y+1][x+1]
}

// CountLiveNeighbors counts the live cells in the Moore neighborhood of (x, y).
// Border cells count as dead.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	g.mustContain("CountLiveNeighbors", x, y)
	return g.neighbors(x+1, y+1)
}

// neighbors works on physical coordinates.
func (g *Grid) neighbors(px, py int) int {
	count := 0
	for _, off := range neighborOffsets {
		if g.cells[py+off[1]][px+off[0]] {
			count++
		}
	}
	return count
}

// NextGeneration advances the grid one generation in place. All neighbor
// counts are taken from the current generation before any cell is written.
func (g *Grid) NextGeneration() {
	for y := range g.height {
		for x := range g.width {
			g.counts[y*g.width+x] = uint8(g.neighbors(x+1, y+1))
		}
	}

	for y := range g.height {
		row := g.cells[y+1]
		for x := range g.width {
			row[x+1] = rules.ApplyConwayRules(int(g.counts[y*g.width+x]), row[x+1])
		}
	}
}

// IsExtinct reports whether every cell, border included, is dead
func (g *Grid) IsExtinct() bool {
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y+1][x+1] {
				count++
			}
		}
	}
	return
}

// Render returns one line per row, top to bottom, with each cell drawn as
// GlyphLive or GlyphDead.
func (g *Grid) Render() []string {
	lines := make([]string, g.height)
	var sb strings.Builder
	for y := range g.height {
		sb.Reset()
		sb.Grow(g.width * len(GlyphLive))
		for x := range g.width {
			if g.cells[y+1][x+1] {
				sb.WriteString(GlyphLive)
			} else {
				sb.WriteString(GlyphDead)
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// GetGridHash returns an MD5 hash of the logical cells
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y+1][x+1] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
