package deck

import (
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultBodyLines caps how many lines of a body file are read.
const DefaultBodyLines = 40

// Content is the loaded body of a slide.
type Content struct {
	Lines     []string
	Truncated bool
	Err       error
}

// Loader defers reading slide bodies until the slide is first revealed.
// Slides registered through Watch load exactly once, on the first Reveal
// that covers them; after that they are forgotten. Unwatched slides load
// on Prime.
//
// Loader is safe for concurrent use. Watch never calls back into its caller,
// so it may be invoked while the carousel holds its lock.
type Loader struct {
	mu       sync.Mutex
	deck     *Deck
	maxLines int
	watched  map[int]string
	bodies   map[int]Content
	loads    int
	logger   *log.Logger
}

// NewLoader builds a loader for d. maxLines <= 0 uses DefaultBodyLines.
func NewLoader(d *Deck, maxLines int, logger *log.Logger) *Loader {
	if maxLines <= 0 {
		maxLines = DefaultBodyLines
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		deck:     d,
		maxLines: maxLines,
		watched:  make(map[int]string),
		bodies:   make(map[int]Content, d.Len()),
		logger:   logger,
	}
}

// Watch registers slide index for deferred loading.
func (l *Loader) Watch(index int, key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= l.deck.Len() {
		return
	}
	if _, done := l.bodies[index]; done {
		return
	}
	l.watched[index] = key
}

// Reveal loads every watched slide in [first, last] and stops watching it.
// It returns the number of slides loaded.
func (l *Loader) Reveal(first, last int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if first < 0 {
		first = 0
	}
	loaded := 0
	for i := first; i <= last && i < l.deck.Len(); i++ {
		key, ok := l.watched[i]
		if !ok {
			continue
		}
		delete(l.watched, i)
		l.loadLocked(i)
		l.logger.Debug("slide revealed", "index", i, "key", key)
		loaded++
	}
	return loaded
}

// Prime loads every slide that is neither watched nor loaded yet.
func (l *Loader) Prime() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	loaded := 0
	for i := 0; i < l.deck.Len(); i++ {
		if _, ok := l.watched[i]; ok {
			continue
		}
		if _, done := l.bodies[i]; done {
			continue
		}
		l.loadLocked(i)
		loaded++
	}
	return loaded
}

// Body returns the loaded content of slide index.
func (l *Loader) Body(index int) (Content, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.bodies[index]
	return c, ok
}

// Loads returns how many slide bodies have been loaded.
func (l *Loader) Loads() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loads
}

// Pending returns how many slides are still waiting to be revealed.
func (l *Loader) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.watched)
}

func (l *Loader) loadLocked(index int) {
	slide := l.deck.Slides[index]
	var c Content
	if body := strings.TrimRight(slide.Body, "\n"); body != "" {
		c.Lines = strings.Split(body, "\n")
	}
	if slide.BodyFile != "" {
		path := slide.BodyFile
		if !filepath.IsAbs(path) && l.deck.Dir() != "" {
			path = filepath.Join(l.deck.Dir(), path)
		}
		lines, truncated, err := readHead(path, l.maxLines)
		if err != nil {
			l.logger.Warn("slide body unavailable", "index", index, "key", slide.Key, "err", err)
			c.Err = err
		} else {
			if len(c.Lines) > 0 && len(lines) > 0 {
				c.Lines = append(c.Lines, "")
			}
			c.Lines = append(c.Lines, lines...)
			c.Truncated = truncated
		}
	}
	l.bodies[index] = c
	l.loads++
}
