package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/reel/internal/carousel"
	"github.com/five82/reel/internal/state"
)

// renderMain renders header, track and footer.
func (m Model) renderMain() string {
	geo := m.track.geometry()
	frame := m.store.Snapshot()
	st := m.carousel.Snapshot()

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(st),
		m.renderTrackRow(geo, frame),
		m.renderDots(),
		m.help.View(m.keys),
	)
}

func (m Model) renderHeader(st carousel.State) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)

	title := truncate(m.deck.Title, max(m.width/2, 8))

	var status []string
	if st.ItemCount > 0 {
		status = append(status, fmt.Sprintf("%d/%d", st.Step.Position+1, st.Layout.MaxPosition+1))
	}
	if st.Wrap {
		status = append(status, "wrap")
	}
	if st.Autoplay != carousel.AutoplayStopped {
		status = append(status, "autoplay "+st.Autoplay.String())
	}
	right := bg.Render(strings.Join(status, " · "), styles.MutedText)
	left := bg.Render(title, styles.Text.Bold(true))

	gapCols := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gapCols < 1 {
		return bg.FillLine(left, m.width)
	}
	return bg.FillLine(left+bg.Spaces(gapCols)+right, m.width)
}

// renderTrackRow renders the previous control, the visible slice of the
// track and the next control side by side.
func (m Model) renderTrackRow(geo geometry, frame state.Frame) string {
	lines := geo.trackLines()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderControl("‹", frame.PrevDisabled, lines),
		m.renderTrack(geo, frame, lines),
		m.renderControl("›", frame.NextDisabled, lines),
	)
}

func (m Model) renderControl(glyph string, disabled bool, lines int) string {
	styles := m.theme.Styles()
	style := styles.Control
	if disabled {
		style = styles.ControlDisabled
	}
	return style.
		Width(ControlCols).
		Height(lines).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(glyph)
}

// renderTrack lays out the cards that intersect the viewport and cuts the
// strip at the current offset.
func (m Model) renderTrack(geo geometry, frame state.Frame, lines int) string {
	width := geo.trackCols()
	blank := strings.Repeat(" ", width)

	first, last := geo.visibleRange(frame.Offset, m.deck.Len())
	if last < first {
		return strings.TrimSuffix(strings.Repeat(blank+"\n", lines), "\n")
	}

	spacer := ""
	if sp := geo.margin + geo.gap; sp > 0 {
		spacer = strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", sp)+"\n", lines), "\n")
	}

	pos := m.carousel.Snapshot().Step.Position
	parts := make([]string, 0, 2*(last-first+1))
	for i := first; i <= last; i++ {
		parts = append(parts, m.renderCard(geo, i, i == pos, lines))
		if spacer != "" {
			parts = append(parts, spacer)
		}
	}
	strip := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, parts...), "\n")

	off := max(geo.offsetCols(frame.Offset)-first*geo.advanceCols(), 0)
	out := make([]string, lines)
	for i := range out {
		line := ""
		if i < len(strip) {
			line = ansi.Cut(strip[i], off, off+width)
		}
		if pad := width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return strings.Join(out, "\n")
}

// renderCard draws slide index as a bordered box cardCols wide and lines tall.
func (m Model) renderCard(geo geometry, index int, focused bool, lines int) string {
	styles := m.theme.Styles()
	style := styles.Card
	if focused {
		style = styles.CardFocus
	}

	inner := max(geo.cardCols()-4, 1) // border and padding
	rows := max(lines-2, 1)
	slide := m.deck.Slides[index]

	body := []string{styles.CardTitle.Render(truncate(slide.Title, inner)), ""}
	content, loaded := m.loader.Body(index)
	switch {
	case !loaded:
		body = append(body, styles.FaintText.Render("…"))
	default:
		for _, line := range content.Lines {
			body = append(body, truncate(line, inner))
		}
		if content.Err != nil {
			body = append(body, styles.DangerText.Render(truncate("body unavailable", inner)))
		}
		if content.Truncated {
			body = append(body, styles.FaintText.Render("…"))
		}
	}
	if len(body) > rows {
		body = body[:rows]
	}

	return style.
		Width(geo.cardCols() - 2).
		Height(rows).
		MaxHeight(lines).
		Render(strings.Join(body, "\n"))
}

func (m Model) renderDots() string {
	styles := m.theme.Styles()
	dots := m.dots
	dots.ActiveDot = styles.AccentText.Render("•")
	dots.InactiveDot = styles.FaintText.Render("·")
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dots.View())
}
