package console

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	subTopicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	crisisStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	stageStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("8"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	clockStyle    = lipgloss.NewStyle().Bold(true)
	warnStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	passedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	cueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)

	alertStyles = map[string]lipgloss.Style{
		"info":    lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("4")),
		"warning": lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")),
		"crisis":  lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(lipgloss.Color("1")),
	}

	modalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("3")).Padding(0, 1)
)
