package model

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ScreenRenderer draws frames on a full-screen tcell terminal
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenRenderer takes over the controlling terminal until Close is called
func NewScreenRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	return newScreenRenderer(screen)
}

func newScreenRenderer(screen tcell.Screen) (*ScreenRenderer, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to initialize screen")
	}
	screen.HideCursor()
	screen.Clear()
	return &ScreenRenderer{
		screen: screen,
		style:  tcell.StyleDefault,
	}, nil
}

// Draw renders the grid rune by rune with the status line underneath
func (r *ScreenRenderer) Draw(g *Grid, status string) error {
	r.screen.Clear()
	lines := g.Render()
	for y, line := range lines {
		r.putLine(y, line)
	}
	r.putLine(len(lines), status)
	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) putLine(y int, line string) {
	x := 0
	for _, ch := range line {
		r.screen.SetContent(x, y, ch, nil, r.style)
		x++
	}
}

// Listen pumps terminal events until ctx is done or the user presses
// q, Esc or Ctrl-C, in which case it returns ErrQuit.
func (r *ScreenRenderer) Listen(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := r.screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventInterrupt:
			return nil
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return ErrQuit
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return ErrQuit
				}
			}
		}
	}
}

// Close restores the terminal
func (r *ScreenRenderer) Close() error {
	r.screen.Fini()
	return nil
}
