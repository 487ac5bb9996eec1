package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reel/internal/carousel"
)

// region is the part of the screen a mouse event landed on.
type region int

const (
	regionNone region = iota
	regionPrev
	regionTrack
	regionNext
)

func (g geometry) regionAt(x, y int) region {
	top := HeaderLines
	if y < top || y >= top+g.trackLines() {
		return regionNone
	}
	switch {
	case x < ControlCols:
		return regionPrev
	case x >= g.cols-ControlCols:
		return regionNext
	default:
		return regionTrack
	}
}

// handleMouse turns mouse events into control clicks and pointer gestures.
// Pointer x is reported in pixels so the swipe threshold keeps its meaning.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.showHelp {
		return
	}
	geo := m.track.geometry()
	x := float64(msg.X) * geo.cellPx

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			switch geo.regionAt(msg.X, msg.Y) {
			case regionPrev:
				m.carousel.Click(carousel.Prev)
			case regionNext:
				m.carousel.Click(carousel.Next)
			case regionTrack:
				m.carousel.PointerDown(x)
			}
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if geo.regionAt(msg.X, msg.Y) != regionNone {
				m.carousel.Slide(carousel.Prev)
			}
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if geo.regionAt(msg.X, msg.Y) != regionNone {
				m.carousel.Slide(carousel.Next)
			}
		}

	case tea.MouseActionMotion:
		m.carousel.PointerMove(x)

	case tea.MouseActionRelease:
		m.carousel.PointerUp(x)
	}
}
