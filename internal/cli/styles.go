package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("244"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Margin(0, 1, 1, 0)

	statusStyles = map[string]lipgloss.Style{
		"researching":   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"active":        lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"paused":        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		"planning_done": lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
)

// statusLabel renders a target status with its color and Chinese caption.
func statusLabel(status string) string {
	captions := map[string]string{
		"researching":   "研究中",
		"active":        "已激活",
		"paused":        "已暂停",
		"planning_done": "计划完成",
	}
	caption, ok := captions[status]
	if !ok {
		caption = status
	}
	if style, ok := statusStyles[status]; ok {
		return style.Render(caption)
	}
	return caption
}
