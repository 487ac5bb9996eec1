// Package prefs handles reel user preferences persistence.
// Preferences are stored in ~/.config/reel/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for reel.
type Prefs struct {
	Theme string `toml:"theme"`
	// Positions maps an absolute deck path to the last slide position shown.
	Positions map[string]int `toml:"positions,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/reel/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Position returns the remembered position for deck, or 0.
func (p Prefs) Position(deck string) int {
	if deck == "" {
		return 0
	}
	pos := p.Positions[deck]
	if pos < 0 {
		return 0
	}
	return pos
}

// Remember records pos for deck. Empty deck keys are ignored.
func (p *Prefs) Remember(deck string, pos int) {
	if deck == "" {
		return
	}
	if p.Positions == nil {
		p.Positions = make(map[string]int)
	}
	if pos <= 0 {
		delete(p.Positions, deck)
		return
	}
	p.Positions[deck] = pos
}

// Load reads preferences from the given path. A missing, unreadable or
// invalid file yields defaults.
func Load(path string) Prefs {
	prefs := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	var loaded Prefs
	if err := toml.Unmarshal(bytes, &loaded); err != nil {
		return prefs
	}

	if strings.TrimSpace(loaded.Theme) == "" {
		loaded.Theme = defaultTheme
	}

	return loaded
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	// Write through a temp file so a crash never leaves a truncated prefs file.
	tmp := resolved + ".tmp"
	if err := os.WriteFile(tmp, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := os.Rename(tmp, resolved); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
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
