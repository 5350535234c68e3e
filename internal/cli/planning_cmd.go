package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunqiwei/licheng/internal/domain"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <职业名称>",
		Short: "为已激活的目标生成大学期间的行动蓝图",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireMode(ctx, app, domain.ModePlanning); err != nil {
				return err
			}

			result, err := app.Planning.GeneratePlan(ctx, app.UserID, args[0])
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render(fmt.Sprintf("行动蓝图：%s", args[0])))
			if result.Cached {
				fmt.Println(hintStyle.Render("（已有蓝图，直接展示）"))
			}
			if result.Plan != nil {
				fmt.Printf("\n%s\n%s\n", sectionStyle.Render("总体思路"), result.Plan.PlanDetails)
				fmt.Printf("\n%s\n%s\n", sectionStyle.Render("学业准备"), result.Plan.Academic)
				fmt.Printf("\n%s\n%s\n", sectionStyle.Render("实践准备"), result.Plan.Practice)
				fmt.Printf("\n%s\n%s\n", sectionStyle.Render("能力准备"), result.Plan.Skills)
			} else {
				fmt.Println(result.Raw)
			}
			return nil
		},
	}
}

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "记录与查看进度日志",
	}
	cmd.AddCommand(newLogAddCmd(app), newLogListCmd(app))
	return cmd
}

func newLogAddCmd(app *App) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "add <内容>",
		Short: "为某个目标记录一条进度",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireMode(ctx, app, domain.ModePlanning); err != nil {
				return err
			}
			if err := app.Planning.LogProgress(ctx, app.UserID, target, args[0]); err != nil {
				return err
			}
			fmt.Println("进度已记录。")
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "进度所属的职业目标")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func newLogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "查看全部进度日志（最新在前）",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.Planning.Logs(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Println("还没有进度日志。")
				return nil
			}

			fmt.Println(titleStyle.Render("进度日志"))
			for _, l := range logs {
				fmt.Printf("  %s  %s  %s\n",
					l.LoggedAt.Local().Format("2006-01-02 15:04"),
					sectionStyle.Render(l.TargetName),
					l.Body)
			}
			return nil
		},
	}
}
