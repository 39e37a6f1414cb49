package bar

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is one row of a cursor-addressable character grid. Draw writes
// glyphs at the cursor with the current style and advances the cursor by
// their display width. The host owns clearing and presenting the row.
type Surface interface {
	Columns() int
	Cursor() int
	SetCursor(x int)
	SetStyle(style tcell.Style)
	Draw(text string)
}

// SpanCell is one column of a recorded Span. Rune is 0 on the continuation
// column of a double-width glyph and on columns never drawn.
type SpanCell struct {
	Rune  rune
	Style tcell.Style
}

// Span is an in-memory Surface. It backs the render subcommand and lets
// tests inspect exactly what a draw pass produced.
type Span struct {
	cells  []SpanCell
	cursor int
	style  tcell.Style
}

func NewSpan(columns int) *Span {
	if columns < 0 {
		columns = 0
	}
	return &Span{cells: make([]SpanCell, columns)}
}

func (s *Span) Columns() int               { return len(s.cells) }
func (s *Span) Cursor() int                { return s.cursor }
func (s *Span) SetCursor(x int)            { s.cursor = x }
func (s *Span) SetStyle(style tcell.Style) { s.style = style }

func (s *Span) Draw(text string) {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if s.cursor >= 0 && s.cursor < len(s.cells) {
			s.cells[s.cursor] = SpanCell{Rune: ch, Style: s.style}
			for i := 1; i < w && s.cursor+i < len(s.cells); i++ {
				s.cells[s.cursor+i] = SpanCell{Style: s.style}
			}
		}
		s.cursor += w
	}
}

// Cells returns the recorded columns.
func (s *Span) Cells() []SpanCell { return s.cells }

// String returns the visible text with undrawn columns as spaces.
// Continuation columns of double-width glyphs are skipped.
func (s *Span) String() string {
	var b strings.Builder
	skip := 0
	for _, c := range s.cells {
		if skip > 0 {
			skip--
			continue
		}
		if c.Rune == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Rune)
		skip = runewidth.RuneWidth(c.Rune) - 1
	}
	return b.String()
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	var buf strings.Builder
	curWidth := 0
	for _, ch := range s {
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			buf.WriteRune(ch)
			continue
		}
		if curWidth+chWidth > width {
			break
		}
		buf.WriteRune(ch)
		curWidth += chWidth
	}
	return buf.String()
}
