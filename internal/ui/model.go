package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"odgrip/internal/compose"
	"odgrip/internal/config"
	"odgrip/internal/dispatch"
	"odgrip/internal/domain"
	"odgrip/internal/eventbus"
	"odgrip/internal/history"
	"odgrip/internal/selection"
	"odgrip/internal/ui/input"
	inputtypes "odgrip/internal/ui/input/types"
	"odgrip/internal/ui/views"
)

const defaultPlaceholder = "Search open directories"

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  selection.State

	// UI-specific state
	width       int
	height      int
	help        help.Model
	status      string
	statusLevel views.StatusLevel

	renderer     *views.Renderer
	inputHandler *input.Handler
	sender       *dispatch.Service
	copier       dispatch.Dispatcher
	history      *history.Store
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, initial selection.State, sender *dispatch.Service, hist *history.Store) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        initial,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		sender:       sender,
		copier:       dispatch.NewClipboardDispatcher(),
		history:      hist,
	}
	if initial.Query != "" {
		m.inputHandler.SetQuery(initial.Query)
	}
	m.syncPlaceholder()
	return m
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// State returns the current selection
func (m *Model) State() selection.State {
	return m.state
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case dispatchedMsg:
		if msg.err != nil {
			m.setStatus(views.StatusError, fmt.Sprintf("Could not send via %s: %v", msg.via, msg.err))
			return m, nil
		}
		m.setStatus(views.StatusSuccess, sentMessage(msg.req, msg.via))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus(views.StatusError, fmt.Sprintf("Copy failed: %v", msg.err))
			return m, nil
		}
		m.setStatus(views.StatusSuccess, "URL copied to clipboard")
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.setStatus(views.StatusError, fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.UpdateTextAction:
		m.state = m.state.SetQueryText(a.Text)
		if m.statusLevel == views.StatusWarning {
			m.setStatus(views.StatusInfo, "")
		}

	case inputtypes.ClearQueryAction:
		m.state = m.state.ClearQuery()
		m.setStatus(views.StatusInfo, "")

	case inputtypes.SubmitAction:
		return m.submit()

	case inputtypes.SelectOptionAction:
		m.selectOption(a.Mode, a.Index)

	case inputtypes.CopyURLAction:
		return m.copyURL()

	case inputtypes.ShowHistoryAction:
		var buf bytes.Buffer
		if _, err := m.history.WriteTo(&buf); err != nil {
			m.setStatus(views.StatusError, err.Error())
			return nil
		}
		return showInPager(buf.String())

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

// submit composes the selection and sends it. An empty query is not an
// error: nothing is dispatched and the user is told to type something.
func (m *Model) submit() tea.Cmd {
	req, err := compose.Compose(m.state)
	if errors.Is(err, compose.ErrEmptyQuery) {
		m.publish(eventbus.EmptyQueryRejectedEvent{Backend: m.state.Backend})
		m.setStatus(views.StatusWarning, "Type something to search for first")
		return nil
	}
	if err != nil {
		log.Printf("Compose failed: %v", err)
		m.setStatus(views.StatusError, err.Error())
		return nil
	}

	m.publish(eventbus.QueryComposedEvent{Request: req})
	m.setStatus(views.StatusLoading, fmt.Sprintf("Sending to %s via %s...", req.Backend.Title(), m.sender.Via()))

	sender := m.sender
	return func() tea.Msg {
		err := sender.Send(context.Background(), req)
		return dispatchedMsg{req: req, via: sender.Via(), err: err}
	}
}

func (m *Model) copyURL() tea.Cmd {
	req, err := compose.Compose(m.state)
	if err != nil {
		if errors.Is(err, compose.ErrEmptyQuery) {
			m.setStatus(views.StatusWarning, "Nothing to copy yet")
		} else {
			m.setStatus(views.StatusError, err.Error())
		}
		return nil
	}

	copier := m.copier
	return func() tea.Msg {
		return copiedMsg{url: req.URL, err: copier.Dispatch(context.Background(), req)}
	}
}

func (m *Model) selectOption(mode inputtypes.Mode, index int) {
	var err error
	switch mode {
	case inputtypes.ModeBackend:
		backends := domain.Backends()
		if index < 0 || index >= len(backends) {
			return
		}
		from := m.state.Backend
		m.state, err = m.state.SetBackend(backends[index])
		if err == nil && from != m.state.Backend {
			m.publish(eventbus.BackendChangedEvent{From: from, To: m.state.Backend})
		}

	case inputtypes.ModeCategory:
		c, ok := m.state.Catalogue().At(index)
		if !ok {
			return
		}
		m.state, err = m.state.SetCategory(c)

	case inputtypes.ModeSubType:
		subTypes := domain.SubTypes()
		if index < 0 || index >= len(subTypes) {
			return
		}
		m.state, err = m.state.SetSubType(subTypes[index])
	}

	if err != nil {
		log.Printf("Selection rejected: %v", err)
		m.setStatus(views.StatusError, err.Error())
		return
	}
	m.syncPlaceholder()
}

// syncPlaceholder shows the example query of the selected category
func (m *Model) syncPlaceholder() {
	p := m.state.Category.Placeholder
	if p == "" || m.state.Backend == domain.BackendFilePursuit {
		p = defaultPlaceholder
	}
	m.inputHandler.SetPlaceholder(p)
}

func (m *Model) setStatus(level views.StatusLevel, msg string) {
	m.statusLevel = level
	m.status = msg
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func sentMessage(req domain.Request, via string) string {
	switch via {
	case config.DispatchClipboard:
		return fmt.Sprintf("Copied %s search URL to clipboard", req.Backend.Title())
	case config.DispatchPrint:
		return fmt.Sprintf("Printed %s search URL", req.Backend.Title())
	default:
		return fmt.Sprintf("Opened %s search in browser", req.Backend.Title())
	}
}

// View renders the UI
func (m *Model) View() string {
	cat := m.state.Catalogue()

	categories := make([]string, 0, cat.Len())
	for _, c := range cat.List() {
		categories = append(categories, c.Label)
	}
	backends := make([]string, 0, len(domain.Backends()))
	for _, b := range domain.Backends() {
		backends = append(backends, b.Title())
	}
	subTypes := make([]string, 0, len(domain.SubTypes()))
	for _, t := range domain.SubTypes() {
		subTypes = append(subTypes, string(t))
	}

	ctx := modelContext{m}
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Focus:         paneFor(m.inputHandler.CurrentMode()),
		QueryView:     m.inputHandler.TextInput().View(),
		Backends:      backends,
		BackendIndex:  ctx.SelectedIndex(inputtypes.ModeBackend),
		Categories:    categories,
		CategoryIndex: ctx.SelectedIndex(inputtypes.ModeCategory),
		SubTypes:      subTypes,
		SubTypeIndex:  ctx.SelectedIndex(inputtypes.ModeSubType),
		ShowSubTypes:  m.state.Backend == domain.BackendFilePursuit,
		ShowPreview:   m.config.UISettings.ShowURLPreview,
		StatusMessage: m.status,
		StatusLevel:   m.statusLevel,
		ShowHelp:      m.config.UISettings.ShowHelpBar,
		HelpModel:     m.help,
		HelpKeys:      input.Keys,
	}
	if req, err := compose.Compose(m.state); err == nil {
		state.PreviewURL = req.URL
	}

	return m.renderer.Render(state)
}

func paneFor(mode inputtypes.Mode) views.Pane {
	switch mode {
	case inputtypes.ModeBackend:
		return views.PaneBackend
	case inputtypes.ModeCategory:
		return views.PaneCategory
	case inputtypes.ModeSubType:
		return views.PaneSubType
	default:
		return views.PaneQuery
	}
}

// modelContext exposes model state to the input handler
type modelContext struct {
	m *Model
}

func (c modelContext) Backend() domain.Backend {
	return c.m.state.Backend
}

func (c modelContext) SelectedIndex(mode inputtypes.Mode) int {
	switch mode {
	case inputtypes.ModeBackend:
		for i, b := range domain.Backends() {
			if b == c.m.state.Backend {
				return i
			}
		}
	case inputtypes.ModeCategory:
		if i := c.m.state.Catalogue().Index(c.m.state.Category); i >= 0 {
			return i
		}
	case inputtypes.ModeSubType:
		for i, t := range domain.SubTypes() {
			if t == c.m.state.SubType {
				return i
			}
		}
	}
	return 0
}

func (c modelContext) OptionCount(mode inputtypes.Mode) int {
	switch mode {
	case inputtypes.ModeBackend:
		return len(domain.Backends())
	case inputtypes.ModeCategory:
		return c.m.state.Catalogue().Len()
	case inputtypes.ModeSubType:
		return len(domain.SubTypes())
	}
	return 0
}
