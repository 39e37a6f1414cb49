package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/tabline/internal/bar"
	"github.com/baaaaaaaka/tabline/internal/config"
	"github.com/baaaaaaaka/tabline/internal/tui"
)

const defaultSession = ""

func newPreviewCmd(root *rootOptions) *cobra.Command {
	var session string
	var refresh time.Duration

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a live tab bar preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(root, session, refresh)
		},
	}

	cmd.Flags().StringVar(&session, "session", defaultSession, "Session name shown by the right widget")
	cmd.Flags().DurationVar(&refresh, "refresh", 0, "Clock refresh interval (default: from config)")
	return cmd
}

func runPreview(root *rootOptions, session string, refresh time.Duration) error {
	cfg, theme, err := loadTheme(root)
	if err != nil {
		return err
	}
	if refresh <= 0 {
		refresh = cfg.Refresh()
	}
	return tui.Preview(tui.Options{
		Theme:   theme,
		Refresh: refresh,
		Session: session,
	})
}

func loadTheme(root *rootOptions) (config.Config, bar.Theme, error) {
	store, err := config.NewStore(root.configPath)
	if err != nil {
		return config.Config{}, bar.Theme{}, err
	}
	cfg, err := store.Load()
	if err != nil {
		return config.Config{}, bar.Theme{}, err
	}
	theme, err := cfg.Resolve()
	if err != nil {
		return config.Config{}, bar.Theme{}, err
	}
	return cfg, theme, nil
}
