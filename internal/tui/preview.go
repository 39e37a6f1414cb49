// Package tui hosts a live preview of the tab bar: a real tcell screen,
// a small set of simulated tabs backed by this process, and the periodic
// refresh wiring a terminal host would provide.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/tabline/internal/bar"
	"github.com/baaaaaaaka/tabline/internal/proc"
)

var newScreen = tcell.NewScreen

var errQuit = errors.New("quit")

// Options configure the preview session.
type Options struct {
	Theme   bar.Theme
	Refresh time.Duration
	Session string
}

type previewTab struct {
	id    int
	title string
	pid   int
}

type previewState struct {
	tabs    []previewTab
	active  int
	session string
	nextID  int
}

// paneAccessor resolves pane metadata from live processes. Every preview
// tab points at this process, which keeps the lookups honest without
// spawning children.
type paneAccessor struct {
	pids map[int]int
}

func (a *paneAccessor) ActiveWd(tabID int) string {
	pid, ok := a.pids[tabID]
	if !ok || !proc.IsAlive(pid) {
		return ""
	}
	return proc.Cwd(pid)
}

func (a *paneAccessor) ActiveExe(tabID int) string {
	pid, ok := a.pids[tabID]
	if !ok || !proc.IsAlive(pid) {
		return ""
	}
	return proc.Exe(pid)
}

// Preview runs the interactive preview until the user quits.
func Preview(opts Options) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	done := make(chan struct{})
	defer close(done)

	state := &previewState{session: opts.Session, nextID: 1}
	accessor := &paneAccessor{pids: map[int]int{}}
	addTab(state, accessor)

	b := bar.New(bar.Options{
		Theme:    opts.Theme,
		Accessor: accessor,
		Host:     &screenHost{screen: screen, done: done},
		Refresh:  opts.Refresh,
	})

	for {
		drawPreview(screen, b, state)

		switch ev := screen.PollEvent().(type) {
		case *uiEvent:
			// Timer tick: fall through and redraw.
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if err := handleKey(state, accessor, ev); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func handleKey(state *previewState, accessor *paneAccessor, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return errQuit
	case tcell.KeyLeft:
		moveActive(state, -1)
		return nil
	case tcell.KeyRight:
		moveActive(state, 1)
		return nil
	}

	switch ev.Rune() {
	case 'q':
		return errQuit
	case 'h':
		moveActive(state, -1)
	case 'l':
		moveActive(state, 1)
	case 'n':
		addTab(state, accessor)
		state.active = len(state.tabs) - 1
	case 'x':
		closeActive(state, accessor)
	case 'r':
		toggleTitle(state)
	}
	return nil
}

func addTab(state *previewState, accessor *paneAccessor) {
	id := state.nextID
	state.nextID++
	state.tabs = append(state.tabs, previewTab{id: id, pid: os.Getpid()})
	accessor.pids[id] = os.Getpid()
}

func closeActive(state *previewState, accessor *paneAccessor) {
	if len(state.tabs) <= 1 {
		return
	}
	tab := state.tabs[state.active]
	delete(accessor.pids, tab.id)
	state.tabs = append(state.tabs[:state.active], state.tabs[state.active+1:]...)
	if state.active >= len(state.tabs) {
		state.active = len(state.tabs) - 1
	}
}

func moveActive(state *previewState, delta int) {
	n := len(state.tabs)
	state.active = ((state.active+delta)%n + n) % n
}

// toggleTitle flips the active tab between the executable-name label and
// a user-chosen '#' title, the two paths the label provider knows.
func toggleTitle(state *previewState) {
	tab := &state.tabs[state.active]
	if strings.HasPrefix(tab.title, "#") {
		tab.title = ""
	} else {
		tab.title = fmt.Sprintf("#tab-%d", tab.id)
	}
}

func drawPreview(screen tcell.Screen, b *bar.Bar, state *previewState) {
	screen.Clear()

	s := &strip{screen: screen, row: 0}
	for i, tab := range state.tabs {
		b.DrawTab(s, bar.Tab{
			ID:      tab.id,
			Title:   tab.title,
			Active:  i == state.active,
			Session: state.session,
		}, 0, 0, i+1, i == len(state.tabs)-1)
	}

	hint := "h/l move  n new  x close  r rename  q quit"
	_, rows := screen.Size()
	if rows > 1 {
		drawHint(screen, rows-1, hint)
	}
	screen.Show()
}

func drawHint(screen tcell.Screen, row int, text string) {
	s := &strip{screen: screen, row: row}
	s.SetStyle(tcell.StyleDefault.Dim(true))
	s.Draw(text)
}
