package ui

// Screen regions, in terminal cells.
const (
	// ControlCols is the width of each previous/next control column.
	ControlCols = 3

	// HeaderLines is the height of the title bar above the track.
	HeaderLines = 1

	// FooterLines covers the position dots and the help bar.
	FooterLines = 2

	// MinTrackLines is the smallest track height cards are drawn at.
	MinTrackLines = 5

	// MinCardCols keeps a card wide enough for its border and padding.
	MinCardCols = 6

	// MaxDots is the page count above which dots become "n/m".
	MaxDots = 40
)
