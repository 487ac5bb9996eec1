package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/reel/internal/carousel"
)

// Config captures reel's settings. Breakpoints is the single responsive
// table shared by the carousel engine and the card renderer.
type Config struct {
	Wrap           bool
	Autoplay       time.Duration
	ResizeQuiet    time.Duration
	SwipeThreshold float64 // px
	CellPx         float64 // px per terminal column
	CardMargin     int     // columns right of each card
	CardGap        int     // columns between cards
	DeckPath       string
	Breakpoints    carousel.Breakpoints
}

const (
	defaultConfigPath = "~/.config/reel/config.toml"
	defaultCellPx     = 10
	defaultCardMargin = 1
	defaultCardGap    = 1
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ResizeQuiet:    carousel.DefaultResizeQuiet,
		SwipeThreshold: carousel.DefaultSwipeThreshold,
		CellPx:         defaultCellPx,
		CardMargin:     defaultCardMargin,
		CardGap:        defaultCardGap,
		Breakpoints:    carousel.DefaultBreakpoints(),
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

type rawBreakpoint struct {
	Below   float64 `toml:"below"`
	Visible int     `toml:"visible"`
}

type rawConfig struct {
	Wrap            bool            `toml:"wrap"`
	Autoplay        string          `toml:"autoplay"`
	ResizeQuiet     string          `toml:"resize_quiet"`
	SwipeThreshold  float64         `toml:"swipe_threshold"`
	CellPx          float64         `toml:"cell_px"`
	CardMargin      *int            `toml:"card_margin"`
	CardGap         *int            `toml:"card_gap"`
	Deck            string          `toml:"deck"`
	Breakpoints     []rawBreakpoint `toml:"breakpoints"`
	FallbackVisible int             `toml:"fallback_visible"`
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Wrap = raw.Wrap

	if cfg.Autoplay, err = parseDuration(raw.Autoplay, 0); err != nil {
		return Config{}, fmt.Errorf("parse autoplay: %w", err)
	}
	if cfg.ResizeQuiet, err = parseDuration(raw.ResizeQuiet, carousel.DefaultResizeQuiet); err != nil {
		return Config{}, fmt.Errorf("parse resize_quiet: %w", err)
	}
	if cfg.ResizeQuiet <= 0 {
		cfg.ResizeQuiet = carousel.DefaultResizeQuiet
	}

	if raw.SwipeThreshold > 0 {
		cfg.SwipeThreshold = raw.SwipeThreshold
	}
	if raw.CellPx > 0 {
		cfg.CellPx = raw.CellPx
	}
	if raw.CardMargin != nil && *raw.CardMargin >= 0 {
		cfg.CardMargin = *raw.CardMargin
	}
	if raw.CardGap != nil && *raw.CardGap >= 0 {
		cfg.CardGap = *raw.CardGap
	}

	if deck := strings.TrimSpace(raw.Deck); deck != "" {
		cfg.DeckPath = mustExpand(deck)
	}

	if len(raw.Breakpoints) > 0 {
		bands := make([]carousel.Breakpoint, 0, len(raw.Breakpoints))
		for _, b := range raw.Breakpoints {
			if b.Below <= 0 || b.Visible < 1 {
				return Config{}, fmt.Errorf("invalid breakpoint below=%v visible=%d", b.Below, b.Visible)
			}
			bands = append(bands, carousel.Breakpoint{Below: b.Below, Visible: b.Visible})
		}
		cfg.Breakpoints.Bands = bands
	}
	if raw.FallbackVisible > 0 {
		cfg.Breakpoints.Fallback = raw.FallbackVisible
	}

	return cfg, nil
}

// parseDuration accepts Go duration strings; a bare "0" or empty value
// yields fallback.
func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	if value == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", value)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
