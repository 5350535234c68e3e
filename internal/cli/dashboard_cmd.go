package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yunqiwei/licheng/internal/domain"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "查看四个模式的解锁状态与目标库",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			unlocked, err := app.History.UnlockedModes(ctx, app.UserID)
			if err != nil {
				return err
			}
			targets, err := app.Decision.ListTargets(ctx, app.UserID)
			if err != nil {
				return err
			}

			m := dashboardModel{unlocked: unlocked, targets: targets}
			if app.IsInteractive != nil && app.IsInteractive() {
				_, err := tea.NewProgram(m).Run()
				return err
			}
			fmt.Println(m.View())
			return nil
		},
	}
}

// dashboardModel is a read-only snapshot; any key exits.
type dashboardModel struct {
	unlocked map[domain.Mode]bool
	targets  []*domain.CareerTarget
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}
	return m, nil
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("里程 · 职业规划面板"))
	b.WriteString("\n\n")

	var cards []string
	for _, mode := range domain.AllModes {
		cards = append(cards, m.renderModeCard(mode))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")
	b.WriteString(m.renderTargets())
	return b.String()
}

func (m dashboardModel) renderModeCard(mode domain.Mode) string {
	var body string
	if m.unlocked[mode] {
		body = sectionStyle.Render(mode.Title()) + "\n已解锁"
	} else {
		body = lockedStyle.Render(mode.Title()) + "\n" + hintStyle.Render(domain.UnlockHint(mode))
	}
	return cardStyle.Render(body)
}

func (m dashboardModel) renderTargets() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("目标库"))
	b.WriteString("\n")
	if len(m.targets) == 0 {
		b.WriteString(hintStyle.Render("暂无目标，先研究一个职业吧。"))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range m.targets {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", t.Name, statusLabel(string(t.Status))))
	}
	return b.String()
}
