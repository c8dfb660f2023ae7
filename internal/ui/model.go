package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"peoplepicker/internal/autocomplete"
	"peoplepicker/internal/config"
	"peoplepicker/internal/domain"
	"peoplepicker/internal/eventbus"
	"peoplepicker/internal/people"
	"peoplepicker/internal/ui/input"
	inputtypes "peoplepicker/internal/ui/input/types"
	"peoplepicker/internal/ui/viewmodels"
	"peoplepicker/internal/ui/views"
)

// Options configures a Model. Every field is optional.
type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	Bus        eventbus.EventBus
	OnSelected func(*domain.Person)

	// AfterFunc replaces time.AfterFunc for the debounce timer
	AfterFunc autocomplete.AfterFunc

	// Clipboard replaces the system clipboard writer
	Clipboard func(string) error
}

// Model represents the UI state
type Model struct {
	config     *config.Config
	logger     *zap.Logger
	bus        eventbus.EventBus
	onSelected func(*domain.Person)

	roster     *people.Roster
	controller *autocomplete.Controller
	debouncer  *autocomplete.Debouncer
	seq        uint64 // id of the latest scheduled effective query

	width       int
	height      int
	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode
	quitting    bool

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	copyFn       func(string) error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a picker over roster
func NewModel(roster *people.Roster, opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		config:       cfg,
		logger:       logger,
		bus:          opts.Bus,
		onSelected:   opts.OnSelected,
		roster:       roster,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(cfg.UISettings.Placeholder),
		copyFn:       opts.Clipboard,
	}
	if m.copyFn == nil {
		m.copyFn = defaultCopy
	}

	var debounceOpts []autocomplete.DebouncerOption
	if opts.AfterFunc != nil {
		debounceOpts = append(debounceOpts, autocomplete.WithAfterFunc(opts.AfterFunc))
	}
	m.debouncer = autocomplete.NewDebouncer(cfg.DebounceDelay(), debounceOpts...)

	m.controller = autocomplete.NewController(autocomplete.ControllerConfig{
		People:     roster.All(),
		OnSelected: m.selectionChanged,
		Logger:     logger.Named("autocomplete"),
	})

	m.viewModel = viewmodels.NewViewModel(m.controller, cfg.UISettings.MaxVisible)
	m.syncInput()

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Selected returns the picked person or nil
func (m *Model) Selected() *domain.Person {
	return m.controller.Selected()
}

// Close cancels any pending debounce timer. Safe to call more than once.
func (m *Model) Close() {
	m.debouncer.Cancel()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.config.UISettings.Autofocus {
		return m.focus()
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
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.syncInput()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		m.syncInput()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		m.syncInput()
		return m, cmd

	case effectiveQueryMsg:
		m.applyEffective(msg)
		return m, nil

	case rosterPagerMsg:
		if msg.err != nil {
			m.reportError("pager failed", msg.err)
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.reportError("copy failed", msg.err)
		} else {
			m.viewModel.SetStatus(fmt.Sprintf("Copied %s", msg.slug), false)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blinks and anything else the text input understands
	cmd := m.inputHandler.Update(msg)
	m.syncInput()
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode || m.quitting {
		return ""
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", action.Type()))

	switch a := action.(type) {
	case inputtypes.FocusAction:
		return m.focus()

	case inputtypes.BlurAction:
		return m.blur()

	case inputtypes.MoveHighlightAction:
		m.viewModel.SetHighlight(m.viewModel.Highlight() + a.Delta)

	case inputtypes.PickAction:
		index := a.Index
		if index < 0 {
			index = m.viewModel.Highlight()
		}
		return m.pick(index)

	case inputtypes.EditTextAction:
		return m.edit(a.Text)

	case inputtypes.OpenPagerAction:
		if m.program == nil {
			m.viewModel.SetStatus("Pager unavailable", true)
			return nil
		}
		return m.fetchRosterPager()

	case inputtypes.CopySelectionAction:
		return m.copySelection()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		m.Close()
		m.quitting = true
		return tea.Quit
	}

	return nil
}

// handleMouse picks on a left press over a dropdown row. The pick happens on
// press so the row is still there when focus moves.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewModel.SetHighlight(m.viewModel.Highlight() - 1)
		return nil
	case tea.MouseButtonWheelDown:
		m.viewModel.SetHighlight(m.viewModel.Highlight() + 1)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	if index, ok := m.viewModel.IndexAtRow(msg.Y - views.ListTopRow); ok {
		return m.pick(index)
	}
	if msg.Y == views.InputRow {
		return m.focus()
	}
	return m.blur()
}

func (m *Model) focus() tea.Cmd {
	actions, cmd := m.inputHandler.ChangeMode(inputtypes.ModeTyping, m.context())
	m.controller.Focus()
	m.viewModel.SetHighlight(m.viewModel.Highlight())

	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) blur() tea.Cmd {
	actions, _ := m.inputHandler.ChangeMode(inputtypes.ModeBrowse, m.context())
	m.controller.Blur()

	var cmds []tea.Cmd
	for _, action := range actions {
		cmds = append(cmds, m.processAction(action))
	}
	return tea.Batch(cmds...)
}

func (m *Model) edit(text string) tea.Cmd {
	if !m.controller.Edit(text) {
		return nil
	}
	m.viewModel.SetStatus("", false)
	return m.scheduleEffective()
}

func (m *Model) pick(index int) tea.Cmd {
	p, ok := m.controller.PickIndex(index)
	if !ok {
		return nil
	}
	m.inputHandler.SetValue(p.Name)
	m.viewModel.SetStatus(fmt.Sprintf("Selected %s", p.Name), false)

	return tea.Batch(m.scheduleEffective(), m.blur())
}

// scheduleEffective arms the debouncer for the current text. The returned
// command yields nil when a later edit or Close supersedes it.
func (m *Model) scheduleEffective() tea.Cmd {
	m.seq++
	seq := m.seq
	query := m.controller.Query()
	fired := m.debouncer.Schedule()

	return func() tea.Msg {
		if !<-fired {
			return nil
		}
		return effectiveQueryMsg{seq: seq, query: query}
	}
}

func (m *Model) applyEffective(msg effectiveQueryMsg) {
	if msg.seq != m.seq {
		m.logger.Debug("dropping stale effective query",
			zap.Uint64("seq", msg.seq),
			zap.Uint64("latest", m.seq),
		)
		return
	}

	matches := m.controller.ApplyEffective(msg.query)
	m.viewModel.SetHighlight(0)

	if m.bus != nil {
		m.bus.Publish(eventbus.QueryDebouncedEvent{Query: msg.query, Matches: len(matches)})
	}
}

// selectionChanged is the controller's selection hook
func (m *Model) selectionChanged(p *domain.Person) {
	if m.bus != nil {
		if p != nil {
			m.bus.Publish(eventbus.PersonSelectedEvent{Person: *p})
		} else {
			m.bus.Publish(eventbus.SelectionClearedEvent{Query: m.controller.Query()})
		}
	}
	if m.onSelected != nil {
		m.onSelected(p)
	}
}

func (m *Model) reportError(message string, err error) {
	m.logger.Error(message, zap.Error(err))
	m.viewModel.SetStatus(fmt.Sprintf("%s: %v", message, err), true)
	if m.bus != nil {
		m.bus.Publish(eventbus.ErrorEvent{Message: message, Err: err})
	}
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		Controller: m.controller,
		ViewModel:  m.viewModel,
	}
}

// syncInput copies the text input and help into the view model
func (m *Model) syncInput() {
	m.viewModel.UpdateTextInput(m.inputHandler.TextInput())
	if m.config.UISettings.ShowHelp {
		m.viewModel.SetHelp(m.help, m.inputHandler.Keys())
	} else {
		m.viewModel.SetHelp(m.help, nil)
	}
}
