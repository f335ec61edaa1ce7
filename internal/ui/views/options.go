package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OptionRow is one labelled picker line
type OptionRow struct {
	Label    string
	Options  []string
	Selected int
	Focused  bool
}

// OptionRenderer draws picker rows
type OptionRenderer struct {
	styles *Styles
}

func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{styles: styles}
}

// Render draws the label followed by the options, wrapping to width
func (r *OptionRenderer) Render(row OptionRow, width int) string {
	label := r.styles.Label.Render(row.Label)
	if row.Focused {
		label = r.styles.LabelFocused.Render(row.Label)
	}

	chips := make([]string, 0, len(row.Options))
	for i, opt := range row.Options {
		switch {
		case i == row.Selected && row.Focused:
			chips = append(chips, r.styles.OptionFocused.Render(opt))
		case i == row.Selected:
			chips = append(chips, r.styles.OptionActive.Render("● "+opt))
		default:
			chips = append(chips, r.styles.Option.Render(opt))
		}
	}

	body := strings.Join(chips, " ")
	if avail := width - lipgloss.Width(label); avail > 20 {
		body = lipgloss.NewStyle().Width(avail).Render(body)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, label, body)
}
