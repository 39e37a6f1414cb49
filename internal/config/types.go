package config

const CurrentVersion = 1

// Config is the on-disk schema. Colors are "#rrggbb" strings resolved
// into fixed RGB values once at startup; the draw path never re-reads
// configuration.
type Config struct {
	Version        int    `json:"version"`
	Colors         Colors `json:"colors"`
	Glyphs         Glyphs `json:"glyphs"`
	RefreshSeconds int    `json:"refreshSeconds,omitempty"`
}

// Colors names the six color slots the bar draws with.
type Colors struct {
	Background  string `json:"background"`
	Foreground  string `json:"foreground"`
	InactiveTab string `json:"inactiveTab"`
	ActiveTab   string `json:"activeTab"`
	Widget      string `json:"widget"`
	Cwd         string `json:"cwd"`
}

// Glyphs overrides the cell furniture and widget icons. Empty fields keep
// the built-in defaults.
type Glyphs struct {
	Separator   string `json:"separator,omitempty"`
	BorderLeft  string `json:"borderLeft,omitempty"`
	BorderRight string `json:"borderRight,omitempty"`
	FolderIcon  string `json:"folderIcon,omitempty"`
	ClockIcon   string `json:"clockIcon,omitempty"`
	SessionIcon string `json:"sessionIcon,omitempty"`
}

// Default returns the shipped Tokyo Night configuration.
func Default() Config {
	return Config{
		Version: CurrentVersion,
		Colors: Colors{
			Background:  "#24283b",
			Foreground:  "#a9b1d6",
			InactiveTab: "#e0af68",
			ActiveTab:   "#bb9af7",
			Widget:      "#7aa2f7",
			Cwd:         "#7aa2f7",
		},
		RefreshSeconds: 15,
	}
}
