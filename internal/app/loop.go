package app

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/lazyhex/internal/logger"
	"github.com/bethropolis/lazyhex/internal/tui"
)

// tickInterval drives idle redraws such as status message expiry.
const tickInterval = 250 * time.Millisecond

// loop is the single control loop shared by the editor and the diff view:
// draw, block on the next event, handle it.
type loop struct {
	ui        *tui.TUI
	quit      <-chan struct{}
	draw      func()
	handleKey func(*tcell.EventKey) bool
	resize    func(width, height int)
}

func (l *loop) run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go l.tick(done)

	for {
		l.draw()

		ev := l.ui.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventResize:
			w, h := e.Size()
			l.resize(w, h)
			l.ui.Sync()
		case *tcell.EventKey:
			l.handleKey(e)
		case *tcell.EventInterrupt:
			// redraw only
		}

		select {
		case <-l.quit:
			return nil
		case <-ctx.Done():
			logger.Infof("App: context done: %v", ctx.Err())
			return ctx.Err()
		default:
		}
	}
}

// tick posts an interrupt every tickInterval until done is closed.
func (l *loop) tick(done <-chan struct{}) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := l.ui.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
				logger.DebugTagf("draw", "App: tick dropped: %v", err)
			}
		}
	}
}
