package bar

import "github.com/gdamore/tcell/v2"

// Theme holds the fixed colors and glyphs the bar draws with. Color slots
// are resolved once at startup; the draw path never consults configuration.
type Theme struct {
	// Base cell colors.
	Background tcell.Color
	Foreground tcell.Color

	// Accents: per-region icon and border colors.
	InactiveTab tcell.Color
	ActiveTab   tcell.Color
	Widget      tcell.Color // right side: session and clock
	Cwd         tcell.Color // left side: working directory

	// Cell furniture. Separator sits between icon and label, borders cap
	// the cell on either side.
	Separator   string
	BorderLeft  string
	BorderRight string

	// Widget icons. A trailing space keeps the glyph off the border.
	FolderIcon  string
	ClockIcon   string
	SessionIcon string
}

// DefaultTheme is the Tokyo Night palette the bar ships with.
func DefaultTheme() Theme {
	return Theme{
		Background:  tcell.NewRGBColor(0x24, 0x28, 0x3b),
		Foreground:  tcell.NewRGBColor(0xa9, 0xb1, 0xd6),
		InactiveTab: tcell.NewRGBColor(0xe0, 0xaf, 0x68),
		ActiveTab:   tcell.NewRGBColor(0xbb, 0x9a, 0xf7),
		Widget:      tcell.NewRGBColor(0x7a, 0xa2, 0xf7),
		Cwd:         tcell.NewRGBColor(0x7a, 0xa2, 0xf7),
		Separator:   "",
		BorderLeft:  "",
		BorderRight: "",
		FolderIcon:  " ",
		ClockIcon:   " ",
		SessionIcon: " ",
	}
}
