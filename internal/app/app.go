package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/five82/reel/internal/config"
	"github.com/five82/reel/internal/deck"
	"github.com/five82/reel/internal/prefs"
	"github.com/five82/reel/internal/ui"
)

// Options configure the reel application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/reel/prefs.toml
	DeckPath   string // empty uses the config's deck, then the demo deck

	// Overrides; nil keeps the config value.
	Wrap     *bool
	Autoplay *time.Duration

	LogFile string // empty discards logs
	Verbose bool
}

// Run boots the reel TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	logger, closeLog, err := newLogger(opts.LogFile, opts.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)

	d, err := resolveDeck(opts.DeckPath, cfg.DeckPath)
	if err != nil {
		return fmt.Errorf("load deck: %w", err)
	}

	logger.Info("starting",
		"deck", d.Title,
		"slides", d.Len(),
		"wrap", cfg.Wrap,
		"autoplay", cfg.Autoplay,
		"theme", userPrefs.Theme)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Deck:      d,
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})
	logger.Info("stopped", "err", err)
	return err
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Wrap != nil {
		cfg.Wrap = *opts.Wrap
	}
	if opts.Autoplay != nil && *opts.Autoplay >= 0 {
		cfg.Autoplay = *opts.Autoplay
	}
}

// resolveDeck picks the command-line deck, then the configured one, then
// the built-in demo.
func resolveDeck(flagPath, configPath string) (*deck.Deck, error) {
	path := strings.TrimSpace(flagPath)
	if path == "" {
		path = configPath
	}
	if path == "" {
		return deck.Demo(), nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return deck.Load(expanded)
}
