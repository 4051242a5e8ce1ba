package dialogs

import "github.com/charmbracelet/lipgloss"

// dialogBox frames every dialog. The border background matches the overlay
// the model places dialogs on.
var dialogBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(lipgloss.Color("236")).
	Padding(1, 2).
	Width(60)

func hint(s string) string {
	return mutedStyle.Render(s)
}
