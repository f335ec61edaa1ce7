package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"odgrip/internal/domain"
	"odgrip/internal/ui/input/modes"
	"odgrip/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared by the query pane
	keys        KeyMap
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0 // queries are never cut
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeQuery,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        Keys,
	}

	pickerKeys := modes.PickerKeys{
		Prev:  h.keys.Prev,
		Next:  h.keys.Next,
		First: h.keys.First,
		Last:  h.keys.Last,
		Back:  h.keys.Back,
		Help:  h.keys.Help,
		Quit:  h.keys.Quit,
	}

	// Register all mode handlers
	h.modes[types.ModeQuery] = modes.NewQueryMode(h.textInput)
	h.modes[types.ModeBackend] = modes.NewPickerMode(types.ModeBackend, pickerKeys)
	h.modes[types.ModeCategory] = modes.NewPickerMode(types.ModeCategory, pickerKeys)
	h.modes[types.ModeSubType] = modes.NewPickerMode(types.ModeSubType, pickerKeys)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	actions, consumed := h.globalKey(msg, ctx)
	if !consumed {
		handler := h.modes[h.currentMode]
		if handler == nil {
			return nil, nil
		}
		actions, consumed = handler.HandleKey(msg, ctx)
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.currentMode == types.ModeQuery {
			cmd = textinput.Blink
		}
	}

	// Unhandled keys in the query pane edit the text
	if !consumed && h.currentMode == types.ModeQuery {
		*h.textInput, cmd = h.textInput.Update(msg)
		// Always append an update action when in text mode to keep view in sync
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// globalKey handles bindings that work in every pane
func (h *Handler) globalKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, h.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, h.keys.Submit):
		return []types.Action{types.SubmitAction{}}, true
	case key.Matches(msg, h.keys.NextPane):
		return []types.Action{types.ChangeModeAction{Mode: nextMode(h.currentMode, ctx.Backend(), false)}}, true
	case key.Matches(msg, h.keys.PrevPane):
		return []types.Action{types.ChangeModeAction{Mode: nextMode(h.currentMode, ctx.Backend(), true)}}, true
	case key.Matches(msg, h.keys.Clear):
		h.textInput.Reset()
		return []types.Action{types.ClearQueryAction{}}, true
	case key.Matches(msg, h.keys.Copy):
		return []types.Action{types.CopyURLAction{}}, true
	case key.Matches(msg, h.keys.History):
		return []types.Action{types.ShowHistoryAction{}}, true
	}
	return nil, false
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// nextMode cycles query, backend and the option pane the backend uses
func nextMode(current types.Mode, backend domain.Backend, reverse bool) types.Mode {
	optionPane := types.ModeCategory
	if backend == domain.BackendFilePursuit {
		optionPane = types.ModeSubType
	}
	order := []types.Mode{types.ModeQuery, types.ModeBackend, optionPane}

	idx := 0
	for i, m := range order {
		if m == current {
			idx = i
			break
		}
	}
	if reverse {
		return order[(idx-1+len(order))%len(order)]
	}
	return order[(idx+1)%len(order)]
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetPlaceholder changes the hint shown while the query is empty
func (h *Handler) SetPlaceholder(p string) {
	h.textInput.Placeholder = p
}

// SetQuery replaces the query text, for a query given on the command line
func (h *Handler) SetQuery(q string) {
	h.textInput.SetValue(q)
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.currentMode != types.ModeQuery {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
