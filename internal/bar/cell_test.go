package bar

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func staticText(text string, ok bool) TextFunc {
	return func(int, *Tab) (string, bool) { return text, ok }
}

func TestCellLengthMatchesDrawnWidth(t *testing.T) {
	th := asciiTheme()
	tab := &Tab{ID: 7}

	cases := []struct {
		name string
		text TextFunc
		want int
	}{
		{"label", staticText("abc", true), 3 + 5},
		{"wide-label", staticText("日本", true), 4 + 5},
		{"icon-only", staticText("", true), 3},
		{"hidden", staticText("", false), 0},
	}
	for _, tc := range cases {
		c := newCell(th, "1", tc.text, tab, th.Widget)
		if got := c.Length(40); got != tc.want {
			t.Fatalf("%s: Length=%d want %d", tc.name, got, tc.want)
		}
		span := NewSpan(40)
		c.Draw(span, 40)
		if got := span.Cursor(); got != tc.want {
			t.Fatalf("%s: drew %d columns, Length reported %d", tc.name, got, tc.want)
		}
	}
}

func TestCellBudgetExcludesOverhead(t *testing.T) {
	th := asciiTheme()
	var seen int
	c := newCell(th, "1", func(maxWidth int, _ *Tab) (string, bool) {
		seen = maxWidth
		return "", false
	}, nil, th.Widget)

	// Overhead for a one-column icon: two borders, separator, icon and the
	// space before the label.
	c.Length(12)
	if seen != 12-5 {
		t.Fatalf("inner budget=%d want %d", seen, 12-5)
	}
	c.Length(0)
	if seen != -5 {
		t.Fatalf("inner budget=%d want -5", seen)
	}
}

func TestCellDrawText(t *testing.T) {
	th := asciiTheme()
	c := newCell(th, "1", staticText("ab", true), nil, th.ActiveTab)

	span := NewSpan(10)
	c.Draw(span, 10)

	if got := span.String(); got != "(1> ab)   " {
		t.Fatalf("got %q", got)
	}

	cells := span.Cells()
	if fg, bg, _ := cells[0].Style.Decompose(); fg != th.ActiveTab || bg.Valid() {
		t.Fatalf("left border fg=%v bg=%v, want accent on default", fg, bg)
	}
	fg, bg, attrs := cells[1].Style.Decompose()
	if fg != th.Background || bg != th.ActiveTab {
		t.Fatalf("icon fg=%v bg=%v, want background on accent", fg, bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Fatalf("icon should be bold")
	}
	if fg, bg, _ := cells[4].Style.Decompose(); fg != th.Foreground || bg != th.Background {
		t.Fatalf("label fg=%v bg=%v", fg, bg)
	}
	if fg, _, _ := cells[6].Style.Decompose(); fg != th.Background {
		t.Fatalf("right border fg=%v want background", fg)
	}
}

func TestCellDrawIconOnly(t *testing.T) {
	th := asciiTheme()
	c := newCell(th, "9", staticText("", true), nil, th.InactiveTab)

	span := NewSpan(5)
	c.Draw(span, 5)

	if got := span.String(); got != "(9)  " {
		t.Fatalf("got %q", got)
	}
	// The closing border of an icon-only cell carries the accent, not the
	// label background.
	if fg, _, _ := span.Cells()[2].Style.Decompose(); fg != th.InactiveTab {
		t.Fatalf("right border fg=%v want accent", fg)
	}
}

func TestCellDrawHidden(t *testing.T) {
	th := asciiTheme()
	c := newCell(th, "1", staticText("", false), nil, th.Widget)

	span := NewSpan(5)
	c.Draw(span, 5)

	if span.Cursor() != 0 {
		t.Fatalf("hidden cell moved the cursor to %d", span.Cursor())
	}
}
