// Package bar renders a one-row tab bar: a working-directory widget on
// the left, one cell per tab centered in the middle, and session plus
// clock widgets flush against the right edge. The center re-flows through
// five layout strategies as the column budget shrinks.
//
// The draw path is single-threaded by contract: the host calls DrawTab
// synchronously once per tab on its own redraw cycle, and the refresh
// timer only marks the bar dirty, never draws.
package bar

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

const defaultRefresh = 15 * time.Second

// Frame accumulates one cell per tab across a single redraw pass. It is
// cleared when the pass is flushed.
type Frame struct {
	cells  []*Cell
	active int
}

func (f *Frame) reset() {
	f.cells = f.cells[:0]
	f.active = 0
}

// Options configure a Bar. Zero values fall back to the process home
// directory, wall-clock time and the default refresh interval.
type Options struct {
	Theme    Theme
	Accessor TabAccessor
	Host     Host
	Home     string
	Refresh  time.Duration
	Now      func() time.Time
}

// Bar owns the per-frame accumulator and the one-shot refresh timer.
type Bar struct {
	theme    Theme
	accessor TabAccessor
	host     Host
	home     string
	refresh  time.Duration
	now      func() time.Time

	frame        Frame
	timerStarted bool
}

func New(opts Options) *Bar {
	b := &Bar{
		theme:    opts.Theme,
		accessor: opts.Accessor,
		host:     opts.Host,
		home:     opts.Home,
		refresh:  opts.Refresh,
		now:      opts.Now,
	}
	if b.accessor == nil {
		b.accessor = noAccessor{}
	}
	if b.home == "" {
		if home, err := os.UserHomeDir(); err == nil {
			b.home = home
		}
	}
	if b.refresh <= 0 {
		b.refresh = defaultRefresh
	}
	if b.now == nil {
		b.now = time.Now
	}
	return b
}

type noAccessor struct{}

func (noAccessor) ActiveWd(int) string  { return "" }
func (noAccessor) ActiveExe(int) string { return "" }

// tabCell builds the center cell for one tab. The icon is the tab's
// numeric id; active tabs carry the active accent.
func (b *Bar) tabCell(tab *Tab) *Cell {
	accent := b.theme.InactiveTab
	if tab.Active {
		accent = b.theme.ActiveTab
	}
	return newCell(b.theme, strconv.Itoa(tab.ID), b.tabLabel, tab, accent)
}

// Accumulate appends the tab's cell to the frame and records the active
// position. Together with Finalize it lets a harness drive frames without
// the host's per-tab iteration contract.
func (b *Bar) Accumulate(f *Frame, tab Tab) {
	t := tab
	f.cells = append(f.cells, b.tabCell(&t))
	if t.Active {
		f.active = len(f.cells) - 1
	}
}

// Finalize draws the full bar: left section, centered tab cells, then the
// right-aligned session and clock. The frame is cleared on return. An
// empty frame draws nothing; the host guarantees at least one tab.
func (b *Bar) Finalize(f *Frame, s Surface) {
	defer f.reset()
	if len(f.cells) == 0 {
		return
	}

	strategy, width := f.strategy(s.Columns())
	centerStart := (s.Columns() - width) / 2

	b.drawLeft(s, f, centerStart-1)

	s.SetCursor(centerStart)
	f.drawCenter(s, strategy)
	drawGap(s)

	b.drawRight(s, f)
}

// drawLeft renders the working directory of the active tab into the span
// before the centered block.
func (b *Bar) drawLeft(s Surface, f *Frame, maxWidth int) {
	cell := newCell(b.theme, b.theme.FolderIcon, b.workingDir, f.cells[f.active].tab, b.theme.Cwd)
	cell.Draw(s, maxWidth)
}

// drawRight renders session and clock flush against the right edge. The
// clock is measured first against the full remainder, the session against
// what the clock leaves over.
func (b *Bar) drawRight(s Surface, f *Frame) {
	maxSize := s.Columns() - s.Cursor()
	clock := newCell(b.theme, b.theme.ClockIcon, b.clock, nil, b.theme.Widget)
	session := newCell(b.theme, b.theme.SessionIcon, b.session, f.cells[f.active].tab, b.theme.Widget)

	total := clock.Length(maxSize)
	sessionWidth := session.Length(maxSize - total - 1)
	if sessionWidth != 0 {
		total += 1 + sessionWidth
	}

	if gap := maxSize - total; gap > 0 {
		s.SetStyle(tcell.StyleDefault)
		s.Draw(strings.Repeat(" ", gap))
	}

	if sessionWidth != 0 {
		session.Draw(s, sessionWidth)
		drawGap(s)
	}
	clock.Draw(s, maxSize)
}

// DrawTab is the host entry point, called once per tab in index order
// within a frame. Cells accumulate across calls; the final call flushes
// the whole bar. The host's index parameter is 1-based. Returns the
// cursor's final column. The refresh timer that keeps the clock current
// is registered on the first call and lives for the process lifetime.
func (b *Bar) DrawTab(s Surface, tab Tab, before, maxTitleLength, index int, isLast bool) int {
	_ = before
	_ = maxTitleLength

	if !b.timerStarted && b.host != nil {
		b.host.AddTimer(func() { b.host.MarkDirty() }, b.refresh, true)
		b.timerStarted = true
	}

	b.Accumulate(&b.frame, tab)
	if tab.Active {
		b.frame.active = index - 1
	}

	if isLast {
		b.Finalize(&b.frame, s)
	}
	return s.Cursor()
}
