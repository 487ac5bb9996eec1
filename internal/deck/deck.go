package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a deck file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnsupportedFormat is returned for deck files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported deck format")

// Slide is one card of a deck. Body is inline text; BodyFile names a file,
// relative to the deck, whose head is shown when the slide is revealed.
type Slide struct {
	Key      string `toml:"key" yaml:"key"`
	Title    string `toml:"title" yaml:"title"`
	Body     string `toml:"body" yaml:"body"`
	BodyFile string `toml:"body_file" yaml:"body_file"`
}

// Deck is an ordered, fixed list of slides.
type Deck struct {
	Title  string  `toml:"title" yaml:"title"`
	Slides []Slide `toml:"slides" yaml:"slides"`

	// Path is the absolute file the deck came from; empty for built-in decks.
	Path string `toml:"-" yaml:"-"`
}

// FormatFor maps a file extension to a deck format.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and parses the deck at path.
func Load(path string) (*Deck, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve deck path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	d, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	d.Path = abs
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}
	return d, nil
}

// Parse decodes deck data and assigns keys to slides that lack one.
func Parse(data []byte, format Format) (*Deck, error) {
	var d Deck
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse deck: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse deck: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err := d.normalize(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Deck) normalize() error {
	seen := make(map[string]int, len(d.Slides))
	for i := range d.Slides {
		s := &d.Slides[i]
		s.Key = strings.TrimSpace(s.Key)
		if s.Key == "" {
			s.Key = fmt.Sprintf("slide-%02d", i+1)
		}
		if prev, ok := seen[s.Key]; ok {
			return fmt.Errorf("parse deck: duplicate slide key %q (slides %d and %d)", s.Key, prev+1, i+1)
		}
		seen[s.Key] = i
		if strings.TrimSpace(s.Title) == "" {
			s.Title = fmt.Sprintf("Slide %d", i+1)
		}
	}
	return nil
}

// Keys returns the slide keys in order.
func (d *Deck) Keys() []string {
	keys := make([]string, len(d.Slides))
	for i, s := range d.Slides {
		keys[i] = s.Key
	}
	return keys
}

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.Slides) }

// Dir returns the directory body files are resolved against.
func (d *Deck) Dir() string {
	if d.Path == "" {
		return ""
	}
	return filepath.Dir(d.Path)
}

// Demo returns the built-in deck shown when no deck file is given.
func Demo() *Deck {
	bodies := []string{
		"Arrow keys, drag or the ‹ › controls move the track.",
		"The number of cards on screen follows the terminal width.",
		"Narrow terminals show one card; wide ones up to four.",
		"Clamp mode stops at both ends and disables the control.",
		"Wrap mode jumps from the last position back to the first.",
		"Drag further than the swipe threshold to change slides.",
		"Resizing settles after a short quiet window.",
		"Space pauses and resumes autoplay.",
		"Slide bodies load only when they first come into view.",
		"Press T to cycle themes and ? for help.",
	}
	d := &Deck{Title: "reel"}
	for i, body := range bodies {
		d.Slides = append(d.Slides, Slide{
			Key:   fmt.Sprintf("demo-%02d", i+1),
			Title: fmt.Sprintf("Slide %d", i+1),
			Body:  body,
		})
	}
	return d
}
