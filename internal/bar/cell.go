package bar

import "github.com/gdamore/tcell/v2"

// TextFunc produces a cell's label for the given inner width budget.
// Returning ok=false hides the cell entirely; returning "" renders the
// cell icon-only. The budget excludes the cell's overhead and may be
// negative.
type TextFunc func(maxWidth int, tab *Tab) (text string, ok bool)

// Cell is one drawable unit: [borderL][icon][separator label][borderR].
// The icon sits on an accent-colored block, the label on the base
// background, the borders on the terminal default background. Length and
// Draw consult the text function with the same budget, so a cell always
// draws exactly the width it reported.
type Cell struct {
	icon      string
	text      TextFunc
	tab       *Tab
	bg        tcell.Color
	fg        tcell.Color
	accent    tcell.Color
	separator string
	borderL   string
	borderR   string

	// Display width of borders + separator + icon + the space before the
	// label. Independent of the draw budget.
	overhead int
}

func newCell(th Theme, icon string, text TextFunc, tab *Tab, accent tcell.Color) *Cell {
	c := &Cell{
		icon:      icon,
		text:      text,
		tab:       tab,
		bg:        th.Background,
		fg:        th.Foreground,
		accent:    accent,
		separator: th.Separator,
		borderL:   th.BorderLeft,
		borderR:   th.BorderRight,
	}
	c.overhead = displayWidth(c.borderL) + displayWidth(c.borderR) + displayWidth(c.separator) + displayWidth(c.icon) + 1
	return c
}

// Length reports how many columns Draw will consume for the same budget.
func (c *Cell) Length(maxWidth int) int {
	text, ok := c.text(maxWidth-c.overhead, c.tab)
	switch {
	case !ok:
		return 0
	case text == "":
		return displayWidth(c.icon) + displayWidth(c.borderL) + displayWidth(c.borderR)
	default:
		return displayWidth(text) + c.overhead
	}
}

func (c *Cell) Draw(s Surface, maxWidth int) {
	text, ok := c.text(maxWidth-c.overhead, c.tab)
	if !ok {
		return
	}

	// Left border: accent on the terminal default background.
	s.SetStyle(tcell.StyleDefault.Foreground(c.accent))
	s.Draw(c.borderL)

	// Icon block: base background color as text on the accent, bold.
	s.SetStyle(tcell.StyleDefault.Background(c.accent).Foreground(c.bg).Bold(true))
	s.Draw(c.icon)

	if text == "" {
		s.SetStyle(tcell.StyleDefault.Foreground(c.accent))
		s.Draw(c.borderR)
		return
	}

	// Separator between icon block and label.
	s.SetStyle(tcell.StyleDefault.Background(c.bg).Foreground(c.accent))
	s.Draw(c.separator)

	// Label on the base background.
	s.SetStyle(tcell.StyleDefault.Background(c.bg).Foreground(c.fg))
	s.Draw(" " + text)

	// Right border closes the label block.
	s.SetStyle(tcell.StyleDefault.Foreground(c.bg))
	s.Draw(c.borderR)
}
