package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pexview/internal/config"
	"pexview/internal/eventbus"
	"pexview/internal/ui/commands"
	"pexview/internal/ui/handlers"
	"pexview/internal/ui/input"
	inputtypes "pexview/internal/ui/input/types"
	"pexview/internal/ui/logic"
	"pexview/internal/ui/state"
	"pexview/internal/ui/viewmodels"
	"pexview/internal/ui/views"
)

const (
	frameInterval = 16 * time.Millisecond
	// wheelQuiet is how long the wheel must be idle before a drag snaps to a page
	wheelQuiet = 150 * time.Millisecond
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	spinner     spinner.Model
	inPagerMode bool // tracks if we're currently in pager mode
	animating   bool // a frame tick is in flight
	dragSeq     int

	// Handlers
	sync         *logic.SyncController  // keeps pager and strip aligned
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	helpOps      *HelpOps
	helpRender   *HelpRenderer

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}

	m.cmdExecutor = commands.NewExecutor(appState, bus)
	// Page widths arrive with the first WindowSizeMsg
	m.sync = logic.NewSyncController(appState, logic.Geometry{
		ThumbnailSize: float64(cfg.UISettings.ThumbnailSize),
		Spacing:       float64(cfg.UISettings.Spacing),
	})
	m.viewModel = viewmodels.NewViewModel(appState, cfg, m.sync, m.inputHandler.TextInput(), &m.spinner)
	m.viewModel.SetHelp(m.help)

	// A new result set starts at the first photo
	m.eventHandler = handlers.NewEventHandler(appState, m.cmdExecutor, m.sync.Reset)

	m.helpRender = NewHelpRenderer(m.renderer.GalleryKeys(), views.NewSearchKeyMap())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// State exposes the application state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	return m, tea.Batch(cmd, m.syncInputMode())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.viewModel.SetHelp(m.help)
		m.sync.SetGeometry(m.viewModel.Geometry())
		return nil

	case tea.KeyMsg:
		// The details popup closes before anything else sees the key
		if m.state.ShowInfo && m.state.Notice == nil {
			switch msg.String() {
			case "esc", "i", "q":
				m.state.ShowInfo = false
				return nil
			}
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.config.UISettings.Mouse {
			return nil
		}
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleMouse(msg, m.inputContext()) {
			cmds = append(cmds, m.processAction(action))
		}
		return tea.Batch(cmds...)

	default:
		return tea.Batch(m.inputHandler.Update(msg), m.handleNonKeyboardMsg(msg))
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	layout := m.viewModel.Layout()
	return &input.ModelContext{
		State:       m.state,
		Sync:        m.sync,
		StripTop:    layout.StripTop,
		StripHeight: layout.StripHeight,
	}
}

// desiredMode maps the application state onto an input mode. A pending
// notice blocks every other mode.
func (m *Model) desiredMode() inputtypes.Mode {
	if m.state.Notice != nil {
		return inputtypes.ModeNotice
	}
	switch m.state.Mode() {
	case state.ModeLoading:
		return inputtypes.ModeLoading
	case state.ModeGallery:
		return inputtypes.ModeGallery
	default:
		return inputtypes.ModeSearch
	}
}

func (m *Model) syncInputMode() tea.Cmd {
	actions, cmd := m.inputHandler.ChangeMode(m.desiredMode(), m.inputContext())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		return nil

	case inputtypes.SubmitSearchAction:
		if a.Topic == "" {
			return nil
		}
		cmd := m.cmdExecutor.ExecuteSearch(a.Topic)
		m.inputHandler.ClearText()
		m.sync.Reset()
		return tea.Batch(cmd, m.spinner.Tick)

	case inputtypes.FlingAction:
		m.sync.Fling(a.Direction)
		return m.startAnimation()

	case inputtypes.DragAction:
		m.sync.Drag(float64(a.Delta))
		m.dragSeq++
		seq := m.dragSeq
		return tea.Tick(wheelQuiet, func(time.Time) tea.Msg {
			return snapMsg{seq: seq}
		})

	case inputtypes.TapThumbnailAction:
		m.sync.OnThumbnailTap(a.Index)
		return m.startAnimation()

	case inputtypes.CloseGalleryAction:
		m.state.ShowInfo = false
		return m.cmdExecutor.ExecuteCloseGallery()

	case inputtypes.ReopenGalleryAction:
		return m.cmdExecutor.ExecuteReopenGallery()

	case inputtypes.ToggleInfoAction:
		m.state.ShowInfo = !m.state.ShowInfo
		return nil

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.state.StatusMessage = "Help is not available"
			return clearStatusAfter(3 * time.Second)
		}
		return m.fetchHelpPager(m.helpRender.RenderHelpContent())

	case inputtypes.DismissNoticeAction:
		m.state.DismissNotice()
		return nil

	case inputtypes.QuitAction:
		return tea.Quit

	default:
		log.Printf("Unhandled action %T", action)
		return nil
	}
}

// startAnimation schedules the next frame unless one is already pending
func (m *Model) startAnimation() tea.Cmd {
	if m.animating || m.sync.State() != logic.SyncAnimating {
		return nil
	}
	m.animating = true
	return frame()
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if m.state.Mode() != state.ModeGallery {
			m.state.ShowInfo = false
		}
		return cmd

	case frameMsg:
		m.animating = false
		res := m.sync.Step()
		if res.Settled {
			log.Printf("Pager settled on photo %d", res.Index)
		}
		return m.startAnimation()

	case snapMsg:
		if msg.seq != m.dragSeq {
			return nil
		}
		m.sync.Snap()
		return m.startAnimation()

	case spinner.TickMsg:
		// The spinner only runs while a search is in flight
		if m.state.Mode() != state.ModeLoading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return nil

	default:
		return nil
	}
}

// frame returns a command that sends a frame message after one frame interval
func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
