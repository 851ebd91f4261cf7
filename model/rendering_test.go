package model

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTerminalRenderer_Draw(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewTerminalRenderer(out)
	g := seedGrid(2, 2, cell{0, 0})

	require.NoError(t, r.Draw(g, "Gen: 0"))

	want := clearScreen +
		GlyphLive + GlyphDead + "\n" +
		GlyphDead + GlyphDead + "\n" +
		"Gen: 0\n"
	assert.Equal(t, want, out.String())
}

func TestTerminalRenderer_DrawWithoutStatus(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewTerminalRenderer(out)

	require.NoError(t, r.Draw(NewGrid(1, 1), ""))
	require.NoError(t, r.Draw(NewGrid(1, 1), ""))

	frame := clearScreen + GlyphDead + "\n"
	assert.Equal(t, frame+frame, out.String())
	assert.NoError(t, r.Close())
}

func TestTerminalRenderer_WriteFailure(t *testing.T) {
	r := NewTerminalRenderer(failingWriter{})

	err := r.Draw(NewGrid(3, 3), "status")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write frame")
	assert.Contains(t, err.Error(), "disk full")
}

func newSimulationRenderer(t *testing.T) (*ScreenRenderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	r, err := newScreenRenderer(sim)
	require.NoError(t, err)
	sim.SetSize(20, 5)
	t.Cleanup(func() { _ = r.Close() })
	return r, sim
}

func TestScreenRenderer_Draw(t *testing.T) {
	r, sim := newSimulationRenderer(t)
	g := seedGrid(3, 2, cell{1, 0})

	require.NoError(t, r.Draw(g, "ok"))

	cells, width, _ := sim.GetContents()
	at := func(x, y int) rune {
		return cells[y*width+x].Runes[0]
	}
	assert.Equal(t, '░', at(0, 0))
	assert.Equal(t, '█', at(2, 0))
	assert.Equal(t, '█', at(3, 0))
	assert.Equal(t, '░', at(4, 1))
	assert.Equal(t, 'o', at(0, 2))
	assert.Equal(t, 'k', at(1, 2))
}

func listenAsync(ctx context.Context, r *ScreenRenderer) <-chan error {
	done := make(chan error, 1)
	go func() { done <- r.Listen(ctx) }()
	return done
}

func TestScreenRenderer_ListenQuitKey(t *testing.T) {
	r, sim := newSimulationRenderer(t)
	done := listenAsync(context.Background(), r)

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQuit)
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after q was pressed")
	}
}

func TestScreenRenderer_ListenStopsOnCancel(t *testing.T) {
	r, _ := newSimulationRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := listenAsync(ctx, r)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Listen did not return after the context was cancelled")
	}
}
