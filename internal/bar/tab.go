package bar

import "time"

// Tab is the host-supplied metadata for one tab. A Title starting with '#'
// marks a user-chosen label; otherwise the label falls back to the active
// pane's executable name.
type Tab struct {
	ID      int
	Title   string
	Active  bool
	Session string
}

// TabAccessor resolves per-tab pane state. Lookups must be fast and
// non-blocking; they run on the draw path.
type TabAccessor interface {
	// ActiveWd returns the working directory of the tab's active pane,
	// or "" when unknown.
	ActiveWd(tabID int) string
	// ActiveExe returns the executable name of the tab's active pane,
	// or "" when unknown.
	ActiveExe(tabID int) string
}

// Host is the windowing side of the terminal application. AddTimer
// registers a recurring callback; MarkDirty schedules a future redraw
// without drawing synchronously.
type Host interface {
	AddTimer(fn func(), every time.Duration, repeat bool)
	MarkDirty()
}
