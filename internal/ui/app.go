package ui

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/artgrid/internal/gallery"
	"github.com/five82/artgrid/internal/itunes"
	"github.com/five82/artgrid/internal/prefs"
)

// Loader starts a load attempt and streams its events.
type Loader interface {
	Start(ctx context.Context, req gallery.Request) <-chan gallery.LoadEvent
}

var _ Loader = (*gallery.Loader)(nil)

// Options configures the UI.
type Options struct {
	Context      context.Context
	Loader       Loader
	SwapInterval time.Duration
	Term         string
	Media        itunes.Media
	ThemeName    string
	PrefsPath    string
	LogPath      string
	// AutoFetch triggers a fetch for Term as soon as the program starts.
	AutoFetch bool
	Rand      *rand.Rand
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	loader    Loader
	prefsPath string
	logPath   string
	autoFetch bool

	// Gallery
	machine     *gallery.Machine
	board       *board
	media       itunes.Media
	lastAttempt string
	fetchSeq    uint64

	// Widgets
	keys     keyMap
	help     help.Model
	input    textinput.Model
	progress progress.Model
	spinner  spinner.Model

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	modal    Modal
	logs     logState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = ThemeNames()[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	media := opts.Media
	if !media.Valid() {
		media = itunes.DefaultMedia
	}

	b := newBoard()
	machine := gallery.NewMachine(gallery.Options{
		Display:      b,
		Reporter:     b,
		SwapInterval: opts.SwapInterval,
		Rand:         opts.Rand,
	})

	input := textinput.New()
	input.Prompt = "search "
	input.Placeholder = "artist, album, title..."
	input.CharLimit = 120
	input.Width = 32
	input.SetValue(strings.TrimSpace(opts.Term))
	input.Focus()

	m := Model{
		ctx:       ctx,
		loader:    opts.Loader,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		autoFetch: opts.AutoFetch,
		machine:   machine,
		board:     b,
		media:     media,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.applyTheme(GetTheme(themeName))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.autoFetch {
		cmds = append(cmds, func() tea.Msg { return fetchMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case fetchMsg:
		return m.startFetch()

	case loadEventMsg:
		return m.handleLoadEvent(msg)

	case loadClosedMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		if m.machine.State() == gallery.Loading {
			m.machine.Fail(msg.uri, errors.New("search ended without a result"))
			m.showPendingReport()
		}
		return m, nil

	case swapTickMsg:
		if m.machine.Tick(msg.ticket) {
			return m, swapTickCmd(m.machine.Interval(), msg.ticket)
		}
		return m, nil

	case spinner.TickMsg:
		if m.machine.State() != gallery.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case logLinesMsg:
		m.handleLogLines(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.logs.visible {
		return m.renderLogs()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
			m.showPendingReport()
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.logs.visible {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		return m.openLogs()

	case key.Matches(msg, m.keys.NextMedia):
		m.media = m.media.Next()
		return m, nil

	case key.Matches(msg, m.keys.PrevMedia):
		m.media = m.media.Prev()
		return m, nil

	case key.Matches(msg, m.keys.Fetch):
		return m.startFetch()

	case key.Matches(msg, m.keys.Play):
		return m.togglePlay()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startFetch begins a load attempt for the current term and media.
func (m Model) startFetch() (tea.Model, tea.Cmd) {
	if !m.machine.CanFetch() {
		return m, nil
	}
	if m.loader == nil {
		log.Printf("fetch ignored: no loader configured")
		return m, nil
	}
	if err := m.machine.BeginFetch(); err != nil {
		log.Printf("fetch refused: %v", err)
		return m, nil
	}
	m.savePrefs()

	req := gallery.Request{Term: strings.TrimSpace(m.input.Value()), Media: m.media}
	m.fetchSeq++
	events := m.loader.Start(m.ctx, req)
	return m, tea.Batch(waitForLoad(m.fetchSeq, events, ""), m.spinner.Tick)
}

func (m Model) handleLoadEvent(msg loadEventMsg) (tea.Model, tea.Cmd) {
	ev := msg.event
	if msg.seq != m.fetchSeq {
		// A superseded attempt; keep draining so its worker can exit.
		return m, waitForLoad(msg.seq, msg.events, ev.URI)
	}
	m.lastAttempt = ev.Attempt

	switch ev.Kind {
	case gallery.LoadProgress:
		m.machine.Progress(ev.Progress)
	case gallery.LoadSucceeded:
		if err := m.machine.Complete(ev.URI, ev.Pool); err != nil {
			log.Printf("load %s: result not accepted: %v", ev.Attempt, err)
		}
		m.board.changed = -1
		m.showPendingReport()
	case gallery.LoadFailed:
		m.machine.Fail(ev.URI, ev.Err)
		m.showPendingReport()
	}
	return m, waitForLoad(msg.seq, msg.events, ev.URI)
}

// showPendingReport opens the next queued failure, if any.
func (m *Model) showPendingReport() {
	if m.modal != nil {
		return
	}
	if r, ok := m.board.takeReport(); ok {
		m.modal = newErrorModal(r)
	}
}

func (m Model) togglePlay() (tea.Model, tea.Cmd) {
	ticket, started, err := m.machine.TogglePlay()
	if err != nil {
		return m, nil
	}
	if !started {
		return m, nil
	}
	return m, swapTickCmd(m.machine.Interval(), ticket)
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	width := m.progress.Width
	m.progress = progress.New(
		progress.WithGradient(t.Accent, t.Success),
		progress.WithoutPercentage(),
	)
	if width > 0 {
		m.progress.Width = width
	}
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Muted))
	m.help.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Faint))
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent))
	m.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text))
	if m.logs.visible {
		m.updateLogViewport()
	}
}

func (m *Model) resize() {
	m.progress.Width = maxInt(m.width/3, minProgressWidth)
	m.help.Width = m.width
	m.input.Width = clamp(m.width/3, 12, 48)
	if m.logs.viewport.Width > 0 {
		m.initLogViewport()
		m.updateLogViewport()
	}
}

// savePrefs records the theme, term and media. Failures are logged only.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{
		Theme: m.theme.Name,
		Term:  strings.TrimSpace(m.input.Value()),
		Media: m.media,
	}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// Messages

type fetchMsg struct{}

// loadEventMsg and loadClosedMsg carry the fetch sequence number they
// belong to; only the current one reaches the machine.
type loadEventMsg struct {
	seq    uint64
	event  gallery.LoadEvent
	events <-chan gallery.LoadEvent
}

// loadClosedMsg reports that an attempt's event stream ended. uri is the
// link of the last event seen, if any.
type loadClosedMsg struct {
	seq uint64
	uri string
}

type swapTickMsg struct {
	ticket gallery.Ticket
}

// Commands

// waitForLoad reads the next event of an attempt.
func waitForLoad(seq uint64, events <-chan gallery.LoadEvent, lastURI string) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return loadClosedMsg{seq: seq, uri: lastURI}
		}
		return loadEventMsg{seq: seq, event: ev, events: events}
	}
}

func swapTickCmd(d time.Duration, ticket gallery.Ticket) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return swapTickMsg{ticket: ticket}
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
