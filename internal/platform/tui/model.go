package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapwii/internal/audio"
	"github.com/vovakirdan/flapwii/internal/config"
	"github.com/vovakirdan/flapwii/internal/core"
	"github.com/vovakirdan/flapwii/internal/games/flapwii"
	"github.com/vovakirdan/flapwii/internal/render"
)

// Options configures one game program.
type Options struct {
	Config   config.Config
	Runtime  core.RuntimeConfig
	Journal  *Journal
	Player   audio.Player
	Logger   *log.Logger
	Renderer *lipgloss.Renderer // nil for the local terminal
}

// Model is the Bubble Tea model running one Flapwii Bird machine.
type Model struct {
	cfg      config.Config
	fps      int
	machine  *flapwii.Machine
	screen   *core.Screen
	canvas   *render.Terminal
	painter  *Painter
	journal  *Journal
	player   audio.Player
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	input    core.InputSnapshot
	prevMode flapwii.Mode
	width    int
	height   int
	showHelp bool
	quitting bool
}

// NewModel creates a model and seeds its best score from the journal.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	if rt.TickRate <= 0 {
		rt.TickRate = DefaultFPS
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == nil {
		opts.Player = audio.Silent{}
	}
	if opts.Journal == nil {
		opts.Journal = NewJournal(nil, nil, opts.Logger)
	}

	machine := flapwii.NewMachine(opts.Config, rt.Seed)
	machine.SetBest(opts.Journal.LoadBest())

	m := Model{
		cfg:      opts.Config,
		fps:      rt.TickRate,
		machine:  machine,
		screen:   core.NewScreen(rt.ScreenW, rt.ScreenH),
		painter:  NewPainter(opts.Renderer),
		journal:  opts.Journal,
		player:   opts.Player,
		logger:   opts.Logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		prevMode: machine.Mode(),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
		showHelp: true,
	}
	m.screen.SetBackground(core.ColorSky)
	m.canvas = render.NewTerminal(m.screen, opts.Config)
	m.help.Width = rt.ScreenW
	m.layout()

	// Park the pointer where the body starts so the menu bird is on screen
	// before the mouse moves.
	px, py := m.cfg.Pointer.Raw(m.cfg.BodyStart())
	m.input.Pointer = core.Pointer{X: px, Y: py}
	return m
}

// layout sizes the screen buffer to the terminal, leaving a row for help.
func (m *Model) layout() {
	h := m.height
	if m.showHelp && h > 1 {
		h--
	}
	m.screen.Resize(m.width, h)
}

// Machine exposes the running game.
func (m Model) Machine() *flapwii.Machine {
	return m.machine
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, button := m.keys.MapKey(msg)
	switch action {
	case ActionButton:
		m.input.Set(button)
		if m.input.Has(core.ButtonHome) {
			m.quitting = true
			return m, tea.Quit
		}
	case ActionHelp:
		m.showHelp = !m.showHelp
		m.layout()
	}
	return m, nil
}

// handleMouse converts a terminal cell position into raw pointer input.
// The cell centre is mapped into screen pixels first, then through the
// inverse pointer transform, so the menu cursor lands under the mouse.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.screen.Width() == 0 || m.screen.Height() == 0 {
		return m
	}
	px := (float64(msg.X) + 0.5) * float64(m.cfg.Screen.Width) / float64(m.screen.Width())
	py := (float64(msg.Y) + 0.5) * float64(m.cfg.Screen.Height) / float64(m.screen.Height())
	rx, ry := m.cfg.Pointer.Raw(px, py)
	m.input.Pointer = core.Pointer{X: rx, Y: ry}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Set(core.ButtonA)
	}
	return m
}

// handleTick advances the game by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	events := m.machine.Update(m.input)
	audio.Dispatch(m.player, events)

	mode := m.machine.Mode()
	if mode == flapwii.ModeMenu && m.prevMode != flapwii.ModeMenu {
		m.journal.Record(m.machine.LastScore())
		m.logger.Debug("run finished", "score", m.machine.LastScore(), "best", m.machine.Best())
	}
	m.prevMode = mode

	// Buttons are edge-triggered; the pointer persists.
	m.input.ClearButtons()
	return m, tickCmd(m.fps)
}

// Finish persists the session. A life still in progress counts as a run.
// Safe to call more than once; only the first call writes.
func (m Model) Finish() error {
	if !m.journal.Closed() && m.machine.Mode() != flapwii.ModeMenu {
		m.journal.Record(m.machine.Score())
	}
	return m.journal.Close(m.machine.Best())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	render.Frame(m.canvas, m.machine.Snapshot(), m.cfg)
	out := m.painter.Render(m.screen)
	if m.showHelp && m.height > 1 {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Play runs the game on the local terminal until the player quits.
// Scores are saved on every exit path, including a panic, which is
// re-raised after the save.
func Play(opts Options) (err error) {
	model := NewModel(opts)
	logger := model.logger

	defer func() {
		r := recover()
		if ferr := model.Finish(); ferr != nil {
			logger.Error("could not save scores", "err", ferr)
			if err == nil {
				err = ferr
			}
		}
		if r != nil {
			panic(r)
		}
	}()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer tracking for the menu cursor
	)

	_, err = p.Run()
	return err
}
