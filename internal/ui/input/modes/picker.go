package modes

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"odgrip/internal/ui/input/types"
)

// PickerKeys are the bindings a picker reacts to
type PickerKeys struct {
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// PickerMode moves the selection through a fixed list of options. Every
// move is applied immediately; there is nothing to confirm or cancel.
type PickerMode struct {
	mode types.Mode
	keys PickerKeys
}

func NewPickerMode(mode types.Mode, keys PickerKeys) *PickerMode {
	return &PickerMode{mode: mode, keys: keys}
}

func (m *PickerMode) Name() string {
	return m.mode.String()
}

func (m *PickerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	count := ctx.OptionCount(m.mode)
	current := ctx.SelectedIndex(m.mode)

	switch {
	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeQuery}}, true
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	if count == 0 {
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return m.selectIndex((current - 1 + count) % count), true
	case key.Matches(msg, m.keys.Next):
		return m.selectIndex((current + 1) % count), true
	case key.Matches(msg, m.keys.First):
		return m.selectIndex(0), true
	case key.Matches(msg, m.keys.Last):
		return m.selectIndex(count - 1), true
	}

	// 1-9 jump straight to an option
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= count {
		return m.selectIndex(n - 1), true
	}

	// Swallow everything else so stray letters never reach the query
	return nil, true
}

func (m *PickerMode) selectIndex(i int) []types.Action {
	return []types.Action{types.SelectOptionAction{Mode: m.mode, Index: i}}
}
