package ui

import (
	"math"
	"sync"

	"github.com/five82/reel/internal/carousel"
	"github.com/five82/reel/internal/config"
	"github.com/five82/reel/internal/state"
)

// geometry converts terminal cells to the pixel space the carousel works in.
// Card sizes come from the same breakpoint table the carousel uses, so the
// number of cards drawn always matches the engine's visible count.
type geometry struct {
	cols, rows int
	cellPx     float64
	margin     int
	gap        int
	bp         carousel.Breakpoints
}

func newGeometry(cfg config.Config) geometry {
	cellPx := cfg.CellPx
	if cellPx <= 0 {
		cellPx = config.Default().CellPx
	}
	return geometry{
		cellPx: cellPx,
		margin: max(cfg.CardMargin, 0),
		gap:    max(cfg.CardGap, 0),
		bp:     cfg.Breakpoints,
	}
}

// trackCols is the width of the track between the two controls.
func (g geometry) trackCols() int {
	return max(g.cols-2*ControlCols, 0)
}

func (g geometry) trackLines() int {
	return max(g.rows-HeaderLines-FooterLines, MinTrackLines)
}

// viewportPx is the width handed to the carousel.
func (g geometry) viewportPx() float64 {
	return float64(g.trackCols()) * g.cellPx
}

func (g geometry) visible() int {
	return g.bp.VisibleCount(g.viewportPx())
}

func (g geometry) cardCols() int {
	per := g.trackCols() / g.visible()
	return max(per-g.margin-g.gap, MinCardCols)
}

// advanceCols is the distance between the left edges of adjacent cards.
func (g geometry) advanceCols() int {
	return g.cardCols() + g.margin + g.gap
}

func (g geometry) metrics() carousel.Metrics {
	return carousel.Metrics{
		ItemWidth:   float64(g.cardCols()) * g.cellPx,
		MarginRight: float64(g.margin) * g.cellPx,
		Gap:         float64(g.gap) * g.cellPx,
	}
}

// offsetCols converts a track offset in pixels to whole columns.
func (g geometry) offsetCols(offsetPx float64) int {
	return int(math.Round(offsetPx / g.cellPx))
}

// visibleRange returns the first and last card indexes that intersect the
// track at the given offset, or (0, -1) when there are none.
func (g geometry) visibleRange(offsetPx float64, count int) (first, last int) {
	if count <= 0 || g.trackCols() == 0 {
		return 0, -1
	}
	adv := g.advanceCols()
	off := max(g.offsetCols(offsetPx), 0)
	first = off / adv
	last = (off + g.trackCols() - 1) / adv
	if first > count-1 {
		first = count - 1
	}
	if last > count-1 {
		last = count - 1
	}
	return first, last
}

// trackView is the carousel's presenter. Offsets and control state go to the
// store the renderer reads; measurements come from the current geometry.
type trackView struct {
	mu    sync.Mutex
	geo   geometry
	store *state.Store
}

func newTrackView(geo geometry, store *state.Store) *trackView {
	return &trackView{geo: geo, store: store}
}

func (t *trackView) ApplyOffset(offset float64) {
	t.store.ApplyOffset(offset)
}

func (t *trackView) SetControls(prevDisabled, nextDisabled bool) {
	t.store.SetControls(prevDisabled, nextDisabled)
}

func (t *trackView) Measure() carousel.Metrics {
	return t.geometry().metrics()
}

func (t *trackView) resize(cols, rows int) geometry {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.geo.cols = cols
	t.geo.rows = rows
	return t.geo
}

func (t *trackView) geometry() geometry {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.geo
}
