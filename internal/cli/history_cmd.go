package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/llm"
)

func newHistoryCmd(app *App) *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "查看某个模式的对话历史",
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := domain.Mode(modeFlag)
			valid := false
			for _, m := range domain.AllModes {
				if m == mode {
					valid = true
					break
				}
			}
			if !valid {
				return fmt.Errorf("无效的模式 %q，可选值：mode1 mode2 mode3 mode4", modeFlag)
			}

			msgs, err := app.History.Messages(context.Background(), app.UserID, mode)
			if err != nil {
				return err
			}
			if len(msgs) == 0 {
				fmt.Printf("%s 还没有对话记录。\n", mode.Title())
				return nil
			}

			content := renderHistory(mode, msgs)
			if app.IsInteractive != nil && app.IsInteractive() {
				m := newHistoryPager(content)
				_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
				return err
			}
			fmt.Println(content)
			return nil
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "mode1", "模式编号：mode1/mode2/mode3/mode4")
	return cmd
}

func renderHistory(mode domain.Mode, msgs []*domain.ChatMessage) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(mode.Title()))
	b.WriteString("\n")
	for _, m := range msgs {
		speaker := "我"
		content := m.Content
		if m.Role == domain.RoleAssistant {
			speaker = "助手"
			// Assistant messages are stored raw; drop the machine-readable
			// block and show only the prose.
			if prose := llm.SplitOutput(content).Prose; prose != "" {
				content = prose
			}
		}
		b.WriteString(fmt.Sprintf("\n%s（%s）\n%s\n",
			sectionStyle.Render(speaker),
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			content))
	}
	return b.String()
}

// historyPager scrolls long conversation logs; q or esc exits.
type historyPager struct {
	vp viewport.Model
}

func newHistoryPager(content string) historyPager {
	vp := viewport.New(80, 24)
	vp.SetContent(content)
	return historyPager{vp: vp}
}

func (m historyPager) Init() tea.Cmd {
	return nil
}

func (m historyPager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 1
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m historyPager) View() string {
	return m.vp.View() + "\n" + hintStyle.Render("↑/↓ 滚动 · q 退出")
}
