package bar

import "github.com/gdamore/tcell/v2"

// Strategy is one of the five fixed center layouts, in preference order.
type Strategy int

const (
	// ExpandAll renders every tab with its label.
	ExpandAll Strategy = iota
	// ExpandActive gives only the active tab its label; the others drop
	// to icon-only.
	ExpandActive
	// NoExpand renders every tab icon-only.
	NoExpand
	// ShowActive renders only the active tab, with its label.
	ShowActive
	// ShowActiveCollapsed renders only the active tab, icon-only. The
	// fallback: it is never fit-tested.
	ShowActiveCollapsed
)

func (s Strategy) String() string {
	switch s {
	case ExpandAll:
		return "expand-all"
	case ExpandActive:
		return "expand-active"
	case NoExpand:
		return "no-expand"
	case ShowActive:
		return "show-active"
	case ShowActiveCollapsed:
		return "show-active-collapsed"
	default:
		return "unknown"
	}
}

// strategy picks the first layout whose total width, including one space
// between cells, fits strictly under the column budget. The width is
// computed once here and reused for the centering math.
func (f *Frame) strategy(columns int) (Strategy, int) {
	n := len(f.cells)

	length := n - 1
	for _, c := range f.cells {
		length += c.Length(columns)
	}
	if length < columns {
		return ExpandAll, length
	}

	length = n - 1
	for i, c := range f.cells {
		if i == f.active {
			length += c.Length(columns)
		} else {
			length += c.Length(0)
		}
	}
	if length < columns {
		return ExpandActive, length
	}

	length = n - 1
	for _, c := range f.cells {
		length += c.Length(0)
	}
	if length < columns {
		return NoExpand, length
	}

	if length := f.cells[f.active].Length(columns); length < columns {
		return ShowActive, length
	}

	return ShowActiveCollapsed, f.cells[f.active].Length(0)
}

// drawCenter renders the chosen strategy. Cell selection and width
// budgets mirror strategy exactly.
func (f *Frame) drawCenter(s Surface, strategy Strategy) {
	switch strategy {
	case ExpandAll:
		for i, c := range f.cells {
			if i != 0 {
				drawGap(s)
			}
			c.Draw(s, s.Columns())
		}
	case ExpandActive:
		for i, c := range f.cells {
			if i != 0 {
				drawGap(s)
			}
			if i == f.active {
				c.Draw(s, s.Columns())
			} else {
				c.Draw(s, 0)
			}
		}
	case NoExpand:
		for i, c := range f.cells {
			if i != 0 {
				drawGap(s)
			}
			c.Draw(s, 0)
		}
	case ShowActive:
		f.cells[f.active].Draw(s, s.Columns())
	case ShowActiveCollapsed:
		f.cells[f.active].Draw(s, 0)
	}
}

func drawGap(s Surface) {
	s.SetStyle(tcell.StyleDefault)
	s.Draw(" ")
}
