package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	// GlyphLive and GlyphDead are two terminal columns wide so cells come out
	// roughly square.
	GlyphLive = "██"
	GlyphDead = "░░"

	// clearScreen homes the cursor, clears the screen and the scrollback.
	clearScreen = "\x1b[H\x1b[2J\x1b[3J"
)

// ErrQuit is returned by a renderer's input listener when the user asks to stop.
var ErrQuit = errors.New("quit requested")

// Renderer draws one generation per call.
type Renderer interface {
	Draw(g *Grid, status string) error
	Close() error
}

// TerminalRenderer writes frames as plain text with ANSI clear sequences
type TerminalRenderer struct {
	w *bufio.Writer
}

func NewTerminalRenderer(w io.Writer) *TerminalRenderer {
	return &TerminalRenderer{w: bufio.NewWriter(w)}
}

// Draw clears the terminal and writes the grid followed by the status line
func (r *TerminalRenderer) Draw(g *Grid, status string) error {
	r.Clear()
	for _, line := range g.Render() {
		r.w.WriteString(line)
		r.w.WriteByte('\n')
	}
	if status != "" {
		r.w.WriteString(status)
		r.w.WriteByte('\n')
	}
	// bufio keeps the first write error, Flush reports it.
	return errors.Wrap(r.w.Flush(), "[TerminalRenderer.Draw] failed to write frame")
}

// Clear queues the clear sequence for the next flush
func (r *TerminalRenderer) Clear() {
	r.w.WriteString(clearScreen)
}

func (r *TerminalRenderer) Close() error {
	return errors.Wrap(r.w.Flush(), "[TerminalRenderer.Close] failed to flush output")
}
