package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Label         lipgloss.Style
	LabelFocused  lipgloss.Style
	Option        lipgloss.Style
	OptionActive  lipgloss.Style
	OptionFocused lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	URL           lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10),
		LabelFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true).Width(10),
		Option:       lipgloss.NewStyle().Padding(0, 1),
		OptionActive: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("99")).
			Bold(true),
		OptionFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("226")).
			Background(lipgloss.Color("238")).
			Bold(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		URL:           lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
