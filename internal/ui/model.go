package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tagscope/internal/catalog"
	"tagscope/internal/config"
	"tagscope/internal/eventbus"
	"tagscope/internal/ui/input"
	inputtypes "tagscope/internal/ui/input/types"
	"tagscope/internal/ui/state"
	"tagscope/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	engine *catalog.Engine
	state  *state.AppState
	logger *zap.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        KeyMap
	inPagerMode bool // tracks if we're currently in pager mode

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model driving engine
func NewModel(engine *catalog.Engine, bus eventbus.EventBus, cfg *config.Config, logger *zap.Logger) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	keys := DefaultKeyMap()
	m := &Model{
		bus:          bus,
		config:       cfg,
		engine:       engine,
		state:        state.NewAppState(),
		logger:       logger.Named("ui"),
		help:         help.New(),
		keys:         keys,
		renderer:     views.NewRenderer(cfg.UISettings.ShowReleased),
		helpRenderer: NewHelpRenderer(keys),
		inputHandler: input.New(),
	}
	m.state.Source = cfg.Source

	// A new result set starts at the top
	engine.Subscribe(func(catalog.View) {
		m.state.CardCursor = 0
		m.state.ViewportOffset = 0
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.state.Loading {
		return tick()
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		// Inline help closes on its own keys
		if m.state.ShowHelp {
			switch msg.String() {
			case "?", "esc", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		ctx := &input.ModelContext{
			State:  m.state,
			Engine: m.engine,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	default:
		// Cursor blink for the search input
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	snapshot := m.engine.Snapshot()

	selected := make(map[string]bool, len(snapshot.Selected))
	for _, tag := range snapshot.Selected {
		selected[tag] = true
	}

	top := m.engine.TopTags()
	chips := make([]views.Chip, len(top))
	ranked := make(map[string]bool, len(top))
	for i, tag := range top {
		chips[i] = views.Chip{Tag: tag, Count: m.engine.TagCount(tag), Selected: selected[tag]}
		ranked[tag] = true
	}
	var extra []string
	for _, tag := range snapshot.Selected {
		if !ranked[tag] {
			extra = append(extra, tag)
		}
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Loading:        m.state.Loading,
		Source:         m.state.Source,
		Total:          snapshot.Total,
		Projects:       snapshot.Projects,
		CardCursor:     m.state.CardCursor,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		Compact:        m.config.UISettings.Compact,
		SearchTerm:     snapshot.SearchTerm,
		Chips:          chips,
		ChipCursor:     m.state.ChipCursor,
		ExtraSelected:  extra,
		SelectedTags:   selected,
		DropdownOpen:   m.state.DropdownOpen,
		DropdownCursor: m.state.DropdownCursor,
		ShowHelp:       m.state.ShowHelp,
		StatusMessage:  m.state.StatusMessage,
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.SearchActive = true
		vs.SearchInput = ti.View()
	}

	if m.state.DropdownOpen {
		all := m.engine.AllTags()
		vs.DropdownItems = make([]views.DropdownItem, len(all))
		for i, tag := range all {
			vs.DropdownItems[i] = views.DropdownItem{Tag: tag, Count: m.engine.TagCount(tag), Selected: selected[tag]}
		}
	}

	if m.state.ShowHelp {
		vs.HelpContent = m.helpRenderer.RenderHelpContent()
	}

	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeSearch:
		vs.HelpLine = "type to filter • enter keep • esc clear"
	case inputtypes.ModeDropdown:
		vs.HelpLine = "j/k move • enter/space toggle • esc close"
	default:
		vs.HelpLine = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	return vs
}

// updateViewportHeight sizes the card list to the terminal
func (m *Model) updateViewportHeight() {
	// Container padding, header, footer and the two scroll indicators
	h := m.height - 2 - views.HeaderLines - views.FooterLines - 2
	if h < 1 {
		h = 1
	}
	m.state.ViewportHeight = h
	m.state.ClampCards(m.engine.VisibleLen(), m.cardsPerPage())
}

func (m *Model) cardsPerPage() int {
	return views.CardsPerPage(m.state.ViewportHeight, m.config.UISettings.Compact)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.NavigateAction:
		n := m.engine.VisibleLen()
		perPage := m.cardsPerPage()
		switch a.Direction {
		case "up":
			m.state.MoveCards(-1, n, perPage)
		case "down":
			m.state.MoveCards(1, n, perPage)
		case "pageup":
			m.state.MoveCards(-perPage, n, perPage)
		case "pagedown":
			m.state.MoveCards(perPage, n, perPage)
		case "home":
			m.state.CardCursor = 0
			m.state.ClampCards(n, perPage)
		case "end":
			m.state.CardCursor = n - 1
			m.state.ClampCards(n, perPage)
		}

	case inputtypes.ToggleChipAction:
		top := m.engine.TopTags()
		idx := a.Index
		if idx < 0 {
			idx = m.state.ChipCursor
		}
		if idx >= len(top) {
			return nil
		}
		m.state.ChipCursor = idx
		m.engine.ToggleTag(top[idx])

	case inputtypes.MoveChipCursorAction:
		m.state.MoveChipCursor(a.Delta, len(m.engine.TopTags()))

	case inputtypes.ClearTagsAction:
		m.engine.ClearTags()
		return m.flashStatus("Tag filters cleared")

	case inputtypes.SetDropdownAction:
		m.state.DropdownOpen = a.Open
		if a.Open {
			m.state.MoveDropdown(0, len(m.engine.AllTags()))
		}

	case inputtypes.DropdownNavigateAction:
		n := len(m.engine.AllTags())
		switch a.Direction {
		case "up":
			m.state.MoveDropdown(-1, n)
		case "down":
			m.state.MoveDropdown(1, n)
		case "home":
			m.state.MoveDropdown(-n, n)
		case "end":
			m.state.MoveDropdown(n, n)
		}

	case inputtypes.ToggleDropdownTagAction:
		all := m.engine.AllTags()
		if m.state.DropdownCursor < len(all) {
			m.engine.ToggleTag(all[m.state.DropdownCursor])
		}

	case inputtypes.UpdateTextAction:
		m.engine.SetSearchTerm(a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.engine.SetSearchTerm(a.Text)
		}

	case inputtypes.CancelTextAction, inputtypes.ClearSearchAction:
		m.engine.SetSearchTerm("")

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}
		m.state.ShowHelp = !m.state.ShowHelp
	}

	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case tickMsg:
		// Only animate while loading and not in pager mode
		if !m.state.Loading || m.inPagerMode {
			return m, nil
		}
		return m, tick()

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed, showing inline help", zap.Error(msg.err))
			m.state.ShowHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.state.Loading {
			return m, tick()
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil
	}

	return m, nil
}

// handleEvent applies a domain event forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DatasetLoadStartedEvent:
		m.state.Loading = true
		m.state.Source = e.Source
		return tick()

	case eventbus.DatasetLoadedEvent:
		m.state.Loading = false
		m.engine.SetDataset(e.Projects)
		m.state.ClampChips(len(m.engine.TopTags()))
		m.state.MoveDropdown(0, len(m.engine.AllTags()))
		m.logger.Info("dataset applied",
			zap.String("source", e.Source),
			zap.Int("projects", m.engine.Len()),
		)

	case eventbus.DatasetLoadFailedEvent:
		// The catalog stays empty; the failure is only logged
		m.state.Loading = false
		m.logger.Warn("catalog unavailable", zap.String("source", e.Source), zap.Error(e.Err))
	}
	return nil
}

func (m *Model) flashStatus(text string) tea.Cmd {
	m.state.StatusMessage = text
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg { return clearStatusMsg{} })
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
