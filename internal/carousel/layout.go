package carousel

import "sort"

// DefaultItemAdvance is used when there is nothing to measure or the
// measured geometry collapses to zero.
const DefaultItemAdvance = 300.0

// Breakpoint maps viewports narrower than Below to Visible items.
type Breakpoint struct {
	Below   float64
	Visible int
}

// Breakpoints is the responsive visible-count table. The renderer must size
// its cards from the same table or the track overflows.
type Breakpoints struct {
	Bands    []Breakpoint
	Fallback int // visible count at or above the widest band
}

// DefaultBreakpoints returns the stock table: <768: 1, <1024: 2, <1400: 3, else 4.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Bands: []Breakpoint{
			{Below: 768, Visible: 1},
			{Below: 1024, Visible: 2},
			{Below: 1400, Visible: 3},
		},
		Fallback: 4,
	}
}

// VisibleCount returns how many items fit a viewport of the given width.
// The result is always at least 1.
func (b Breakpoints) VisibleCount(width float64) int {
	bands := b.sorted()
	for _, band := range bands {
		if width < band.Below {
			return atLeastOne(band.Visible)
		}
	}
	return atLeastOne(b.Fallback)
}

func (b Breakpoints) sorted() []Breakpoint {
	if sort.SliceIsSorted(b.Bands, func(i, j int) bool { return b.Bands[i].Below < b.Bands[j].Below }) {
		return b.Bands
	}
	bands := make([]Breakpoint, len(b.Bands))
	copy(bands, b.Bands)
	sort.Slice(bands, func(i, j int) bool { return bands[i].Below < bands[j].Below })
	return bands
}

// Metrics are live geometry readings of the first rendered item.
type Metrics struct {
	ItemWidth   float64
	MarginRight float64
	Gap         float64
}

// Advance returns the per-position travel distance, falling back to
// DefaultItemAdvance when the readings add up to nothing.
func (m Metrics) Advance() float64 {
	advance := nonNegative(m.ItemWidth) + nonNegative(m.MarginRight) + nonNegative(m.Gap)
	if advance <= 0 {
		return DefaultItemAdvance
	}
	return advance
}

// Layout is the derived geometry for one viewport width.
type Layout struct {
	VisibleCount int
	ItemAdvance  float64
	MaxPosition  int
}

// ComputeLayout derives the layout from explicit inputs. Metrics are ignored
// when there are no items.
func ComputeLayout(width float64, itemCount int, bp Breakpoints, m Metrics) Layout {
	visible := bp.VisibleCount(width)
	advance := DefaultItemAdvance
	if itemCount > 0 {
		advance = m.Advance()
	}
	return Layout{
		VisibleCount: visible,
		ItemAdvance:  advance,
		MaxPosition:  maxPosition(itemCount, visible),
	}
}

func maxPosition(itemCount, visible int) int {
	if itemCount-visible < 0 {
		return 0
	}
	return itemCount - visible
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
