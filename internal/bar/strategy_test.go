package bar

import "testing"

func buildFrame(b *Bar) *Frame {
	f := &Frame{}
	for _, tab := range testTabs() {
		b.Accumulate(f, tab)
	}
	return f
}

// Full widths: "(1> alpha)"=10, "(2> bash)"=9, "(3> gamma)"=10; icon-only
// cells are 3 columns; two inter-cell spaces.
func TestStrategySelection(t *testing.T) {
	b := newTestBar(mapAccessor{}, nil)
	f := buildFrame(b)

	cases := []struct {
		columns int
		want    Strategy
		width   int
	}{
		{80, ExpandAll, 31},
		{32, ExpandAll, 31},
		{31, ExpandActive, 17},
		{18, ExpandActive, 17},
		{17, NoExpand, 11},
		{12, NoExpand, 11},
		{11, ShowActive, 9},
		{10, ShowActive, 9},
		{9, ShowActive, 3},
		{4, ShowActive, 3},
		{3, ShowActiveCollapsed, 3},
		{1, ShowActiveCollapsed, 3},
	}
	for _, tc := range cases {
		strategy, width := f.strategy(tc.columns)
		if strategy != tc.want || width != tc.width {
			t.Fatalf("columns=%d: got (%v, %d) want (%v, %d)",
				tc.columns, strategy, width, tc.want, tc.width)
		}
	}
}

func TestDrawCenterNoExpand(t *testing.T) {
	b := newTestBar(mapAccessor{}, nil)
	f := buildFrame(b)

	span := NewSpan(15)
	span.SetCursor((15 - 11) / 2)
	f.drawCenter(span, NoExpand)

	if got := span.String(); got != "  (1) (2) (3)  " {
		t.Fatalf("got %q", got)
	}
}

func TestDrawCenterExpandActive(t *testing.T) {
	b := newTestBar(mapAccessor{}, nil)
	f := buildFrame(b)

	span := NewSpan(25)
	span.SetCursor((25 - 17) / 2)
	f.drawCenter(span, ExpandActive)

	if got := span.String(); got != "    (1) (2> bash) (3)    " {
		t.Fatalf("got %q", got)
	}
}

func TestDrawCenterShowActive(t *testing.T) {
	b := newTestBar(mapAccessor{}, nil)
	f := buildFrame(b)

	span := NewSpan(11)
	span.SetCursor(1)
	f.drawCenter(span, ShowActive)

	if got := span.String(); got != " (2> bash) " {
		t.Fatalf("got %q", got)
	}

	collapsed := NewSpan(5)
	collapsed.SetCursor(1)
	f.drawCenter(collapsed, ShowActiveCollapsed)
	if got := collapsed.String(); got != " (2) " {
		t.Fatalf("collapsed: got %q", got)
	}
}

func TestStrategyString(t *testing.T) {
	cases := map[Strategy]string{
		ExpandAll:           "expand-all",
		ExpandActive:        "expand-active",
		NoExpand:            "no-expand",
		ShowActive:          "show-active",
		ShowActiveCollapsed: "show-active-collapsed",
		Strategy(99):        "unknown",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Fatalf("%d: got %q want %q", int(s), got, want)
		}
	}
}
