package ui

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/reel/internal/carousel"
	"github.com/five82/reel/internal/config"
	"github.com/five82/reel/internal/deck"
	"github.com/five82/reel/internal/prefs"
	"github.com/five82/reel/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Deck      *deck.Deck
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	// Scheduler drives resize and autoplay timers. Nil creates a
	// TimerScheduler whose callbacks Run dispatches onto the event loop.
	Scheduler carousel.Scheduler
	Logger    *log.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Collaborators, shared by every copy of the model
	carousel *carousel.Carousel
	loader   *deck.Loader
	deck     *deck.Deck
	store    *state.Store
	track    *trackView
	session  *session
	logger   *log.Logger

	// UI state
	keys     keyMap
	help     help.Model
	dots     paginator.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
}

// session holds what must survive Model copies and be written once on exit.
type session struct {
	mu        sync.Mutex
	prefs     prefs.Prefs
	prefsPath string
	startAt   int
	closed    bool
}

// dispatchMsg carries a scheduler callback onto the Update goroutine.
type dispatchMsg func()

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := opts.Deck
	if d == nil {
		d = deck.Demo()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	store := &state.Store{}
	track := newTrackView(newGeometry(opts.Config), store)
	loader := deck.NewLoader(d, 0, logger)

	c := carousel.New(carousel.Options{
		Items:          d.Keys(),
		Wrap:           opts.Config.Wrap,
		AutoplayPeriod: opts.Config.Autoplay,
		Breakpoints:    opts.Config.Breakpoints,
		ResizeQuiet:    opts.Config.ResizeQuiet,
		SwipeThreshold: opts.Config.SwipeThreshold,
		Scheduler:      opts.Scheduler,
		Presenter:      track,
		Watcher:        loader,
		Logger:         logger,
	})

	dots := paginator.New()
	dots.Type = paginator.Dots

	return Model{
		carousel: c,
		loader:   loader,
		deck:     d,
		store:    store,
		track:    track,
		session: &session{
			prefs:     opts.Prefs,
			prefsPath: prefsPath,
			startAt:   opts.Prefs.Position(d.Path),
		},
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		dots:   dots,
		theme:  GetTheme(opts.Prefs.Theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.deck.Title)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case dispatchMsg:
		msg()
	}

	if m.ready {
		m.sync()
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	geo := m.track.resize(msg.Width, msg.Height)

	if !m.ready {
		m.carousel.Attach(geo.viewportPx())
		m.loader.Prime()
		if at := m.session.startAt; at > 0 {
			m.carousel.GoTo(at)
		}
		m.ready = true
		return
	}
	m.carousel.Resize(geo.viewportPx())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.saveTheme(m.theme.Name)
		return m, nil

	case key.Matches(msg, m.keys.Autoplay):
		mode := m.carousel.ToggleAutoplay()
		m.logger.Debug("autoplay toggled", "state", mode)
		return m, nil
	}

	m.carousel.HandleKey(carouselKey(m.keys, msg))
	return m, nil
}

func carouselKey(keys keyMap, msg tea.KeyMsg) carousel.Key {
	switch {
	case key.Matches(msg, keys.Prev):
		return carousel.KeyLeft
	case key.Matches(msg, keys.Next):
		return carousel.KeyRight
	case key.Matches(msg, keys.First):
		return carousel.KeyHome
	case key.Matches(msg, keys.Last):
		return carousel.KeyEnd
	default:
		return carousel.KeyOther
	}
}

// sync reveals newly visible slides and moves the position dots.
func (m *Model) sync() {
	geo := m.track.geometry()
	frame := m.store.Snapshot()
	first, last := geo.visibleRange(frame.Offset, m.deck.Len())
	if n := m.loader.Reveal(first, last); n > 0 {
		m.logger.Debug("revealed slides", "first", first, "last", last, "loaded", n)
	}

	st := m.carousel.Snapshot()
	pages := st.Layout.MaxPosition + 1
	m.dots.TotalPages = pages
	if pages > MaxDots {
		m.dots.Type = paginator.Arabic
	} else {
		m.dots.Type = paginator.Dots
	}
	m.dots.Page = st.Step.Position
}

func (m Model) saveTheme(name string) {
	m.session.mu.Lock()
	defer m.session.mu.Unlock()

	m.session.prefs.Theme = name
	if err := prefs.Save(m.session.prefsPath, m.session.prefs); err != nil {
		m.logger.Warn("save prefs", "err", err)
	}
}

// Close disposes the carousel and records the final position for the deck.
// Only the first call has any effect.
func (m Model) Close() {
	m.session.mu.Lock()
	defer m.session.mu.Unlock()

	if m.session.closed {
		return
	}
	m.session.closed = true

	pos := m.carousel.Snapshot().Step.Position
	m.carousel.Dispose()

	if m.deck.Path == "" {
		return
	}
	m.session.prefs.Remember(m.deck.Path, pos)
	if err := prefs.Save(m.session.prefsPath, m.session.prefs); err != nil {
		m.logger.Warn("save prefs", "err", err)
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	var timers *carousel.TimerScheduler
	if opts.Scheduler == nil {
		timers = carousel.NewTimerScheduler(nil)
		opts.Scheduler = timers
	}

	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if timers != nil {
		timers.SetDispatch(func(fn func()) { p.Send(dispatchMsg(fn)) })
		defer timers.Stop()
	}

	_, err := p.Run()
	m.Close()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
