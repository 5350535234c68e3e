package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunqiwei/licheng/internal/domain"
)

func newTargetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "管理职业目标库",
	}
	cmd.AddCommand(
		newTargetListCmd(app),
		newTargetActivateCmd(app),
		newTargetPauseCmd(app),
		newTargetAbandonCmd(app),
	)
	return cmd
}

func newTargetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出待决策的职业目标",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Completed targets live on the dashboard; this list is the
			// decision workbench.
			targets, err := app.Decision.EvaluationTargets(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			if len(targets) == 0 {
				fmt.Println("没有待决策的目标，先用 licheng research 研究一个职业吧。")
				return nil
			}

			fmt.Println(titleStyle.Render("待决策目标"))
			for _, t := range targets {
				marks := ""
				if t.ValidationPlan != "" {
					marks += " [检验方案]"
				}
				if _, ok := t.StructuredPlan(); ok {
					marks += " [行动蓝图]"
				}
				fmt.Printf("  %-16s %s%s\n", t.Name, statusLabel(string(t.Status)), marks)
			}
			return nil
		},
	}
}

func newTargetActivateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <职业名称>",
		Short: "激活一个目标，进入决策与评估",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireMode(ctx, app, domain.ModeDecision); err != nil {
				return err
			}
			if err := app.Decision.Activate(ctx, app.UserID, args[0]); err != nil {
				return err
			}
			fmt.Printf("目标“%s”已激活。\n", args[0])
			return nil
		},
	}
}

func newTargetPauseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pause <职业名称>",
		Short: "暂停一个目标",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireMode(ctx, app, domain.ModeDecision); err != nil {
				return err
			}
			if err := app.Decision.Pause(ctx, app.UserID, args[0]); err != nil {
				return err
			}
			fmt.Printf("目标“%s”已暂停，随时可以重新激活。\n", args[0])
			return nil
		},
	}
}

func newTargetAbandonCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "abandon <职业名称>",
		Short: "放弃一个目标（进度日志会保留）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireMode(ctx, app, domain.ModeDecision); err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("放弃目标会删除其研究报告与计划，确认请加 --yes")
			}
			if err := app.Decision.Abandon(ctx, app.UserID, args[0]); err != nil {
				return err
			}
			fmt.Printf("目标“%s”已放弃，相关进度日志仍然保留。\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "跳过确认")
	return cmd
}
