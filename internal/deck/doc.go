// Package deck loads slide decks and defers reading slide bodies until a
// slide first scrolls into view.
//
// Decks are TOML or YAML, chosen by file extension:
//
//	title = "Standup"
//
//	[[slides]]
//	key = "intro"          # optional, defaults to slide-NN
//	title = "Intro"
//	body = "inline text"
//	body_file = "notes/intro.md"   # relative to the deck file
//
// Loader implements the carousel's Watcher. Slides beyond the first visible
// page are watched and loaded on the first Reveal covering them; the rest
// load on Prime. A missing body file is recorded on the Content rather than
// failing the deck.
package deck
