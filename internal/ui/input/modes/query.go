package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"odgrip/internal/ui/input/types"
)

// QueryMode edits the search text. The text survives leaving the mode;
// only ClearQuery empties it.
type QueryMode struct {
	textInput *textinput.Model
}

func NewQueryMode(ti *textinput.Model) *QueryMode {
	return &QueryMode{textInput: ti}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) Enter(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Prompt = "" // Prompt is handled in the UI layer
		m.textInput.Focus()
	}
	return nil
}

func (m *QueryMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

// HandleKey leaves every key to the shared text input
func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	return nil, false
}
