package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type ClearQueryAction struct{}

func (a ClearQueryAction) Type() string { return "clear_query" }

// SubmitAction composes the current selection and dispatches it
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

// SelectOptionAction picks entry Index in the pane owned by Mode
type SelectOptionAction struct {
	Mode  Mode
	Index int
}

func (a SelectOptionAction) Type() string { return "select_option" }

type CopyURLAction struct{}

func (a CopyURLAction) Type() string { return "copy_url" }

type ShowHistoryAction struct{}

func (a ShowHistoryAction) Type() string { return "show_history" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
