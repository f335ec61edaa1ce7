package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"odgrip/internal/domain"
)

// Mode represents an input mode. Each mode owns one pane of the form.
type Mode int

const (
	ModeQuery Mode = iota
	ModeBackend
	ModeCategory
	ModeSubType
)

func (m Mode) String() string {
	switch m {
	case ModeQuery:
		return "query"
	case ModeBackend:
		return "backend"
	case ModeCategory:
		return "category"
	case ModeSubType:
		return "type"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Backend() domain.Backend
	SelectedIndex(mode Mode) int
	OptionCount(mode Mode) int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
