package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "基于个人画像生成职业方向建议",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			set, err := app.Research.Suggest(ctx, app.UserID)
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render("职业方向建议"))
			fmt.Println(set.Prose)
			if set.Summary != "" {
				fmt.Printf("\n%s %s\n", sectionStyle.Render("画像总结:"), set.Summary)
			}
			for i, s := range set.Suggestions {
				fmt.Printf("\n%d. %s\n   %s\n", i+1, sectionStyle.Render(s.Title), s.Reason)
			}
			return nil
		},
	}
}

func newResearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "research <职业名称>",
		Short: "深入研究一个职业并保存报告",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := args[0]

			target, err := app.Research.Research(ctx, app.UserID, name)
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render(fmt.Sprintf("职业研究报告：%s", target.Name)))
			fmt.Println(target.ResearchReport)

			if chart := target.ChartData; chart != nil {
				if len(chart.SalaryRange) > 0 {
					fmt.Println("\n" + sectionStyle.Render("薪酬范围（千元/月）"))
					for _, band := range chart.SalaryRange {
						fmt.Printf("  %-4s %.0f - %.0f\n", band.Level, band.Low, band.High)
					}
				}
				if len(chart.SkillImportance) > 0 {
					fmt.Println("\n" + sectionStyle.Render("核心能力重要度"))
					for _, w := range chart.SkillImportance {
						fmt.Printf("  %-12s %.0f/10\n", w.Skill, w.Importance)
					}
				}
			}

			fmt.Printf("\n目标状态：%s\n", statusLabel(string(target.Status)))
			return nil
		},
	}
}
