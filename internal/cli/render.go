package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/tabline/internal/bar"
)

// staticAccessor serves fixed pane metadata for offline rendering.
type staticAccessor struct {
	wd  string
	exe string
}

func (a staticAccessor) ActiveWd(int) string  { return a.wd }
func (a staticAccessor) ActiveExe(int) string { return a.exe }

type renderOptions struct {
	columns int
	active  int
	tabs    []string
	session string
	cwd     string
	exe     string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame of the bar to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, theme, err := loadTheme(root)
			if err != nil {
				return err
			}
			return renderFrame(cmd.OutOrStdout(), theme, opts)
		},
	}

	cmd.Flags().IntVar(&opts.columns, "columns", 80, "Total width in columns")
	cmd.Flags().IntVar(&opts.active, "active", 1, "1-based index of the active tab")
	cmd.Flags().StringArrayVar(&opts.tabs, "tab", nil, "Tab title, repeatable ('#' prefix marks a custom label)")
	cmd.Flags().StringVar(&opts.session, "session", "", "Session name")
	cmd.Flags().StringVar(&opts.cwd, "cwd", "", "Working directory shown on the left (default: current)")
	return cmd
}

func renderFrame(w io.Writer, theme bar.Theme, opts renderOptions) error {
	if opts.columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", opts.columns)
	}
	if len(opts.tabs) == 0 {
		opts.tabs = []string{"#one", "#two", "#three"}
	}
	if opts.active < 1 || opts.active > len(opts.tabs) {
		opts.active = 1
	}
	if opts.cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			opts.cwd = wd
		}
	}
	if opts.exe == "" {
		opts.exe = shellName()
	}

	b := bar.New(bar.Options{
		Theme:    theme,
		Accessor: staticAccessor{wd: opts.cwd, exe: opts.exe},
	})

	span := bar.NewSpan(opts.columns)
	for i, title := range opts.tabs {
		b.DrawTab(span, bar.Tab{
			ID:      i + 1,
			Title:   title,
			Active:  i == opts.active-1,
			Session: opts.session,
		}, 0, 0, i+1, i == len(opts.tabs)-1)
	}

	_, err := io.WriteString(w, sgrEncode(span)+"\n")
	return err
}

func shellName() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return "sh"
}

// sgrEncode turns a recorded span into one ANSI-colored line. Undrawn
// columns come out as plain spaces; continuation columns of double-width
// glyphs are skipped.
func sgrEncode(span *bar.Span) string {
	var b strings.Builder
	last := ""
	skip := 0
	for _, cell := range span.Cells() {
		if skip > 0 {
			skip--
			continue
		}
		seq, ch := "\x1b[0m", ' '
		if cell.Rune != 0 {
			seq = sgrStyle(cell.Style)
			ch = cell.Rune
			skip = runewidth.RuneWidth(cell.Rune) - 1
		}
		if seq != last {
			b.WriteString(seq)
			last = seq
		}
		b.WriteRune(ch)
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

func sgrStyle(style tcell.Style) string {
	fg, bg, attrs := style.Decompose()
	parts := []string{"0"}
	if attrs&tcell.AttrBold != 0 {
		parts = append(parts, "1")
	}
	if attrs&tcell.AttrDim != 0 {
		parts = append(parts, "2")
	}
	if attrs&tcell.AttrItalic != 0 {
		parts = append(parts, "3")
	}
	if fg.Valid() {
		r, g, bl := fg.RGB()
		parts = append(parts, fmt.Sprintf("38;2;%d;%d;%d", r, g, bl))
	}
	if bg.Valid() {
		r, g, bl := bg.RGB()
		parts = append(parts, fmt.Sprintf("48;2;%d;%d;%d", r, g, bl))
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}
