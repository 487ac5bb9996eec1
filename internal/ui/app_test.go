package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/reel/internal/carousel"
	"github.com/five82/reel/internal/config"
	"github.com/five82/reel/internal/deck"
	"github.com/five82/reel/internal/prefs"
)

type harness struct {
	t         *testing.T
	m         Model
	sched     *carousel.ManualScheduler
	prefsPath string
}

func newHarness(t *testing.T, cfg config.Config, d *deck.Deck, p prefs.Prefs) *harness {
	t.Helper()
	h := &harness{
		t:         t,
		sched:     carousel.NewManualScheduler(),
		prefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	}
	h.m = New(Options{
		Deck:      d,
		Config:    cfg,
		Prefs:     p,
		PrefsPath: h.prefsPath,
		Scheduler: h.sched,
	})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) position() int {
	return h.m.carousel.Snapshot().Step.Position
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// 106 columns leave a 100 column track: 1000px, two cards of 50 columns.
var wideWindow = tea.WindowSizeMsg{Width: 106, Height: 30}

func TestModel_LoadingUntilFirstSize(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	if got := h.m.View(); got != "Loading..." {
		t.Fatalf("View before size = %q, want Loading...", got)
	}
	if h.m.carousel.Snapshot().Attached {
		t.Fatalf("carousel attached before first WindowSizeMsg")
	}
}

func TestModel_FirstSizeAttaches(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	st := h.m.carousel.Snapshot()
	if !st.Attached {
		t.Fatalf("carousel not attached")
	}
	if st.Layout.VisibleCount != 2 || st.Layout.MaxPosition != 8 {
		t.Fatalf("layout = %+v, want visible 2 max 8", st.Layout)
	}
	if st.Layout.ItemAdvance != 500 {
		t.Fatalf("ItemAdvance = %v, want 500", st.Layout.ItemAdvance)
	}
	if got := h.m.loader.Loads(); got != 2 {
		t.Fatalf("Loads after attach = %d, want 2", got)
	}
	if got := h.m.loader.Pending(); got != 8 {
		t.Fatalf("Pending after attach = %d, want 8", got)
	}
	frame := h.m.store.Snapshot()
	if frame.Offset != 0 || !frame.PrevDisabled || frame.NextDisabled {
		t.Fatalf("frame = %+v, want offset 0, prev disabled", frame)
	}
	if h.m.dots.TotalPages != 9 || h.m.dots.Page != 0 {
		t.Fatalf("dots = %d/%d, want page 0 of 9", h.m.dots.Page, h.m.dots.TotalPages)
	}
}

func TestModel_KeysMoveTrackAndRevealSlides(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	h.send(tea.KeyMsg{Type: tea.KeyLeft})
	if got := h.position(); got != 0 {
		t.Fatalf("position after left at start = %d, want 0 (clamped)", got)
	}

	h.send(tea.KeyMsg{Type: tea.KeyRight})
	if got := h.position(); got != 1 {
		t.Fatalf("position after right = %d, want 1", got)
	}
	if got := h.m.store.Snapshot().Offset; got != 500 {
		t.Fatalf("offset = %v, want 500", got)
	}
	if got := h.m.loader.Loads(); got != 3 {
		t.Fatalf("Loads after right = %d, want 3", got)
	}

	h.send(tea.KeyMsg{Type: tea.KeyEnd})
	if got := h.position(); got != 8 {
		t.Fatalf("position after end = %d, want 8", got)
	}
	if frame := h.m.store.Snapshot(); !frame.NextDisabled || frame.PrevDisabled {
		t.Fatalf("frame = %+v, want next disabled only", frame)
	}
	if got := h.m.loader.Loads(); got != 5 {
		t.Fatalf("Loads after end = %d, want 5", got)
	}
	if h.m.dots.Page != 8 {
		t.Fatalf("dots page = %d, want 8", h.m.dots.Page)
	}

	h.send(tea.KeyMsg{Type: tea.KeyHome})
	if got := h.position(); got != 0 {
		t.Fatalf("position after home = %d, want 0", got)
	}
	// Slides between the ends were never on screen.
	for _, idx := range []int{3, 4, 5, 6, 7} {
		if _, ok := h.m.loader.Body(idx); ok {
			t.Fatalf("slide %d loaded without being revealed", idx)
		}
	}
}

func TestModel_ResizeIsDebounced(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)
	h.send(tea.KeyMsg{Type: tea.KeyEnd})

	h.send(tea.WindowSizeMsg{Width: 86, Height: 30})
	h.sched.Advance(100 * time.Millisecond)
	h.send(tea.WindowSizeMsg{Width: 66, Height: 30})

	st := h.m.carousel.Snapshot()
	if st.Layout.VisibleCount != 2 || !st.ResizePending {
		t.Fatalf("layout changed before quiet window: %+v pending=%v", st.Layout, st.ResizePending)
	}

	h.sched.Advance(149 * time.Millisecond)
	if h.m.carousel.Snapshot().Relayouts != 1 {
		t.Fatalf("relayout ran before the quiet window elapsed")
	}
	h.sched.Advance(time.Millisecond)
	h.send(dispatchMsg(func() {})) // let the model sync after the timer

	st = h.m.carousel.Snapshot()
	if st.Relayouts != 2 {
		t.Fatalf("Relayouts = %d, want 2 (one per burst)", st.Relayouts)
	}
	// 60 column track: 600px, one card per page.
	if st.Layout.VisibleCount != 1 || st.Layout.MaxPosition != 9 || st.Layout.ItemAdvance != 600 {
		t.Fatalf("layout = %+v, want visible 1, max 9, advance 600", st.Layout)
	}
	if st.Step.Position != 8 {
		t.Fatalf("position = %d, want 8 kept", st.Step.Position)
	}
	if got := h.m.store.Snapshot().Offset; got != 4800 {
		t.Fatalf("offset = %v, want 4800", got)
	}
}

func TestModel_MouseDragSwipes(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	tests := []struct {
		name    string
		from    int
		to      int
		wantPos int
	}{
		{"drag left past threshold goes next", 60, 50, 1},
		{"drag of exactly threshold does nothing", 50, 55, 1},
		{"drag right past threshold goes prev", 40, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h.send(press(tt.from, 5))
			h.send(tea.MouseMsg{X: (tt.from + tt.to) / 2, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
			h.send(release(tt.to, 5))
			if got := h.position(); got != tt.wantPos {
				t.Fatalf("position = %d, want %d", got, tt.wantPos)
			}
		})
	}

	// A release without a press is ignored.
	h.send(release(0, 5))
	if got := h.position(); got != 0 {
		t.Fatalf("stray release moved to %d", got)
	}
}

func TestModel_ControlClicks(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	h.send(press(104, 10))
	h.send(release(104, 10))
	if got := h.position(); got != 1 {
		t.Fatalf("position after next click = %d, want 1", got)
	}
	h.send(press(1, 10))
	h.send(release(1, 10))
	if got := h.position(); got != 0 {
		t.Fatalf("position after prev click = %d, want 0", got)
	}

	// Clicks in the title bar are outside every region.
	h.send(press(104, 0))
	if got := h.position(); got != 0 {
		t.Fatalf("header click moved to %d", got)
	}
}

func TestModel_WheelSlides(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	h.send(tea.MouseMsg{X: 50, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if got := h.position(); got != 1 {
		t.Fatalf("position after wheel down = %d, want 1", got)
	}
	h.send(tea.MouseMsg{X: 50, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if got := h.position(); got != 0 {
		t.Fatalf("position after wheel up = %d, want 0", got)
	}
}

func TestModel_AutoplayAndToggle(t *testing.T) {
	cfg := config.Default()
	cfg.Autoplay = 3 * time.Second
	h := newHarness(t, cfg, deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	h.sched.Advance(3 * time.Second)
	if got := h.position(); got != 1 {
		t.Fatalf("position after one period = %d, want 1", got)
	}

	// Pressing pauses autoplay until release; the period restarts in full.
	h.sched.Advance(2 * time.Second)
	h.send(press(50, 5))
	h.sched.Advance(5 * time.Second)
	if got := h.position(); got != 1 {
		t.Fatalf("autoplay advanced while pointer held: %d", got)
	}
	h.send(release(50, 5))
	h.sched.Advance(2999 * time.Millisecond)
	if got := h.position(); got != 1 {
		t.Fatalf("autoplay resumed with a partial period: %d", got)
	}
	h.sched.Advance(time.Millisecond)
	if got := h.position(); got != 2 {
		t.Fatalf("position after resumed period = %d, want 2", got)
	}

	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := h.m.carousel.Snapshot().Autoplay; got != carousel.AutoplayStopped {
		t.Fatalf("autoplay = %v after toggle, want stopped", got)
	}
	h.sched.Advance(10 * time.Second)
	if got := h.position(); got != 2 {
		t.Fatalf("stopped autoplay still advanced to %d", got)
	}
}

func TestModel_DispatchRunsCallback(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	ran := false
	h.send(dispatchMsg(func() { ran = true }))
	if !ran {
		t.Fatalf("dispatchMsg callback not run")
	}
}

func TestModel_ThemeCycleSavesPrefs(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	h.send(keyRunes("T"))
	if h.m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", h.m.theme.Name)
	}
	saved := prefs.Load(h.prefsPath)
	if saved.Theme != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", saved.Theme)
	}
}

func TestModel_HelpOverlay(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	h.send(keyRunes("?"))
	if !strings.Contains(h.m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	// Keys are swallowed while help is open.
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	if h.m.showHelp {
		t.Fatalf("help still shown after a key")
	}
	if got := h.position(); got != 0 {
		t.Fatalf("key behind help moved to %d", got)
	}
}

func fileDeck(t *testing.T, n int) *deck.Deck {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "[[slides]]\ntitle = \"Card %d\"\n", i+1)
	}
	path := filepath.Join(t.TempDir(), "talk.toml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	d, err := deck.Load(path)
	if err != nil {
		t.Fatalf("deck.Load: %v", err)
	}
	return d
}

func TestModel_QuitDisposesAndRemembersPosition(t *testing.T) {
	d := fileDeck(t, 6)
	h := newHarness(t, config.Default(), d, prefs.Prefs{})
	h.send(wideWindow)
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	h.send(tea.KeyMsg{Type: tea.KeyRight})

	cmd := h.send(keyRunes("q"))
	if cmd == nil {
		t.Fatalf("quit returned nil cmd")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit cmd did not produce tea.QuitMsg")
	}
	if !h.m.carousel.Snapshot().Disposed {
		t.Fatalf("carousel not disposed on quit")
	}

	// Input after dispose is ignored.
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	if got := h.position(); got != 2 {
		t.Fatalf("position after dispose = %d, want 2", got)
	}

	saved := prefs.Load(h.prefsPath)
	if got := saved.Position(d.Path); got != 2 {
		t.Fatalf("remembered position = %d, want 2", got)
	}

	// Closing twice is harmless.
	h.m.Close()
}

func TestModel_StartsAtRememberedPosition(t *testing.T) {
	d := fileDeck(t, 6)
	p := prefs.Prefs{}
	p.Remember(d.Path, 3)
	h := newHarness(t, config.Default(), d, p)
	h.send(wideWindow)

	if got := h.position(); got != 3 {
		t.Fatalf("start position = %d, want 3", got)
	}
	// Cards 3 and 4 are on screen and loaded.
	for _, idx := range []int{3, 4} {
		if _, ok := h.m.loader.Body(idx); !ok {
			t.Fatalf("slide %d not loaded at start", idx)
		}
	}
}

func TestModel_RememberedPositionIsClamped(t *testing.T) {
	d := fileDeck(t, 4)
	p := prefs.Prefs{}
	p.Remember(d.Path, 40)
	h := newHarness(t, config.Default(), d, p)
	h.send(wideWindow)

	if got := h.position(); got != 2 {
		t.Fatalf("start position = %d, want 2 (max)", got)
	}
}

func TestModel_ViewShowsVisibleCards(t *testing.T) {
	h := newHarness(t, config.Default(), deck.Demo(), prefs.Prefs{})
	h.send(wideWindow)

	view := h.m.View()
	for _, want := range []string{"Slide 1", "Slide 2", "reel", "1/9"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Slide 3") {
		t.Fatalf("view shows off-screen Slide 3")
	}

	h.send(tea.KeyMsg{Type: tea.KeyEnd})
	view = h.m.View()
	for _, want := range []string{"Slide 9", "Slide 10", "9/9"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q after end:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Slide 2") {
		t.Fatalf("view still shows Slide 2 after end")
	}
}

func TestModel_EmptyDeck(t *testing.T) {
	h := newHarness(t, config.Default(), &deck.Deck{Title: "empty"}, prefs.Prefs{})
	h.send(wideWindow)
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	h.send(press(60, 5))
	h.send(release(10, 5))

	st := h.m.carousel.Snapshot()
	if st.Step.Position != 0 || st.Layout.MaxPosition != 0 {
		t.Fatalf("empty deck state = %+v", st)
	}
	if st.Layout.ItemAdvance != carousel.DefaultItemAdvance {
		t.Fatalf("ItemAdvance = %v, want default", st.Layout.ItemAdvance)
	}
	if view := h.m.View(); !strings.Contains(view, "empty") {
		t.Fatalf("view missing deck title:\n%s", view)
	}
}
