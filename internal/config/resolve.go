package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/tabline/internal/bar"
)

// Resolve turns the file schema into a fixed bar.Theme. An unresolvable
// color slot is a startup-time failure; the draw path never sees one.
func (c Config) Resolve() (bar.Theme, error) {
	th := bar.DefaultTheme()

	for _, slot := range []struct {
		name  string
		value string
		dst   *tcell.Color
	}{
		{"background", c.Colors.Background, &th.Background},
		{"foreground", c.Colors.Foreground, &th.Foreground},
		{"inactiveTab", c.Colors.InactiveTab, &th.InactiveTab},
		{"activeTab", c.Colors.ActiveTab, &th.ActiveTab},
		{"widget", c.Colors.Widget, &th.Widget},
		{"cwd", c.Colors.Cwd, &th.Cwd},
	} {
		color, err := parseColor(slot.name, slot.value)
		if err != nil {
			return bar.Theme{}, err
		}
		*slot.dst = color
	}

	if c.Glyphs.Separator != "" {
		th.Separator = c.Glyphs.Separator
	}
	if c.Glyphs.BorderLeft != "" {
		th.BorderLeft = c.Glyphs.BorderLeft
	}
	if c.Glyphs.BorderRight != "" {
		th.BorderRight = c.Glyphs.BorderRight
	}
	if c.Glyphs.FolderIcon != "" {
		th.FolderIcon = c.Glyphs.FolderIcon
	}
	if c.Glyphs.ClockIcon != "" {
		th.ClockIcon = c.Glyphs.ClockIcon
	}
	if c.Glyphs.SessionIcon != "" {
		th.SessionIcon = c.Glyphs.SessionIcon
	}

	return th, nil
}

// Refresh returns the clock refresh interval.
func (c Config) Refresh() time.Duration {
	if c.RefreshSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.RefreshSeconds) * time.Second
}

func parseColor(slot, value string) (tcell.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("color slot %s: want #rrggbb, got %q", slot, value)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color slot %s: parse %q: %w", slot, value, err)
	}
	return tcell.NewRGBColor(int32(v>>16&0xff), int32(v>>8&0xff), int32(v&0xff)), nil
}
