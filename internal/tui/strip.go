package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// strip adapts one row of a tcell.Screen to bar.Surface.
type strip struct {
	screen tcell.Screen
	row    int
	cursor int
	style  tcell.Style
}

func (s *strip) Columns() int {
	w, _ := s.screen.Size()
	return w
}

func (s *strip) Cursor() int                { return s.cursor }
func (s *strip) SetCursor(x int)            { s.cursor = x }
func (s *strip) SetStyle(style tcell.Style) { s.style = style }

func (s *strip) Draw(text string) {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		s.screen.SetContent(s.cursor, s.row, ch, nil, s.style)
		s.cursor += w
	}
}

// screenHost satisfies bar.Host for a live tcell screen. The timer fires
// on its own goroutine but only ever posts an event; all drawing stays on
// the event loop.
type screenHost struct {
	screen tcell.Screen
	done   <-chan struct{}
}

func (h *screenHost) AddTimer(fn func(), every time.Duration, repeat bool) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
				if !repeat {
					return
				}
			case <-h.done:
				return
			}
		}
	}()
}

func (h *screenHost) MarkDirty() {
	_ = h.screen.PostEvent(&uiEvent{when: time.Now(), kind: "dirty"})
}

type uiEvent struct {
	when time.Time
	kind string
}

func (e *uiEvent) When() time.Time { return e.when }
