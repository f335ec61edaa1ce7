package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Pane identifies the part of the form that has focus
type Pane int

const (
	PaneQuery Pane = iota
	PaneBackend
	PaneCategory
	PaneSubType
)

// StatusLevel picks the colour of the status line
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusWarning
	StatusError
	StatusLoading
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Focus  Pane

	QueryView string // rendered text input

	Backends      []string
	BackendIndex  int
	Categories    []string
	CategoryIndex int
	SubTypes      []string
	SubTypeIndex  int
	ShowSubTypes  bool // FilePursuit narrows by type instead of category

	ShowPreview bool
	PreviewURL  string

	StatusMessage string
	StatusLevel   StatusLevel

	ShowHelp  bool
	HelpModel help.Model
	HelpKeys  help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	optionsRender *OptionRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		optionsRender: NewOptionRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	inner := width - r.styles.Main.GetHorizontalFrameSize()

	var sections []string

	sections = append(sections,
		r.styles.Title.Render("odgrip")+"  "+r.styles.Subtitle.Render("search open directories"),
		"",
	)

	sections = append(sections, r.renderQuery(state, inner), "")

	sections = append(sections, r.optionsRender.Render(OptionRow{
		Label:    "Backend",
		Options:  state.Backends,
		Selected: state.BackendIndex,
		Focused:  state.Focus == PaneBackend,
	}, inner))

	if state.ShowSubTypes {
		sections = append(sections, r.optionsRender.Render(OptionRow{
			Label:    "Type",
			Options:  state.SubTypes,
			Selected: state.SubTypeIndex,
			Focused:  state.Focus == PaneSubType,
		}, inner))
	} else {
		sections = append(sections, r.optionsRender.Render(OptionRow{
			Label:    "Category",
			Options:  state.Categories,
			Selected: state.CategoryIndex,
			Focused:  state.Focus == PaneCategory,
		}, inner))
	}

	if state.ShowPreview {
		sections = append(sections, "", r.renderPreview(state.PreviewURL, inner))
	}

	if state.StatusMessage != "" {
		sections = append(sections, "", r.renderStatus(state.StatusMessage, state.StatusLevel))
	}

	if state.ShowHelp && state.HelpKeys != nil {
		h := state.HelpModel
		h.Width = inner
		sections = append(sections, "", r.styles.Help.Render(h.View(state.HelpKeys)))
	}

	return r.styles.Main.Render(strings.Join(sections, "\n"))
}

func (r *Renderer) renderQuery(state ViewState, width int) string {
	box := r.styles.Input
	label := r.styles.Label.Render("Query")
	if state.Focus == PaneQuery {
		box = r.styles.InputFocused
		label = r.styles.LabelFocused.Render("Query")
	}
	if w := width - lipgloss.Width(label) - box.GetHorizontalFrameSize(); w > 10 {
		box = box.Width(w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box.Render(state.QueryView))
}

func (r *Renderer) renderPreview(url string, width int) string {
	label := r.styles.Label.Render("URL")
	if url == "" {
		return label + r.styles.Dim.Render("type a query to build the search URL")
	}
	body := r.styles.URL.Render(wrapHard(url, width-lipgloss.Width(label)))
	return lipgloss.JoinHorizontal(lipgloss.Top, label, body)
}

func (r *Renderer) renderStatus(msg string, level StatusLevel) string {
	switch level {
	case StatusSuccess:
		return r.styles.StatusSuccess.Render(msg)
	case StatusWarning:
		return r.styles.StatusWarning.Render(msg)
	case StatusError:
		return r.styles.StatusError.Render(msg)
	case StatusLoading:
		return r.styles.StatusLoading.Render(msg)
	default:
		return r.styles.StatusInfo.Render(msg)
	}
}

// wrapHard breaks s every width bytes. URLs have no spaces to wrap on.
func wrapHard(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
