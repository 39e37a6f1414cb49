package bar

import "testing"

func TestSpanClipsAtColumns(t *testing.T) {
	span := NewSpan(4)
	span.Draw("abcdef")

	if got := span.String(); got != "abcd" {
		t.Fatalf("got %q", got)
	}
	// The cursor keeps advancing past the edge so callers can still
	// measure what they tried to draw.
	if span.Cursor() != 6 {
		t.Fatalf("cursor=%d want 6", span.Cursor())
	}
}

func TestSpanWideRunes(t *testing.T) {
	span := NewSpan(5)
	span.Draw("a日b")

	if got := span.String(); got != "a日b " {
		t.Fatalf("got %q", got)
	}
	// The continuation column of the double-width glyph holds no rune.
	if span.Cells()[2].Rune != 0 {
		t.Fatalf("continuation column holds %q", span.Cells()[2].Rune)
	}
	if span.Cursor() != 4 {
		t.Fatalf("cursor=%d want 4", span.Cursor())
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"development", 3, "dev"},
		{"dev", 3, "dev"},
		{"dev", 0, ""},
		{"日本語", 4, "日本"},
		{"日本語", 3, "日"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncate(%q, %d)=%q want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
