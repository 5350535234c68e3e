package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yunqiwei/licheng/internal/domain"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <职业名称>",
		Short: "为目标生成现实检验方案",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireMode(ctx, app, domain.ModeDecision); err != nil {
				return err
			}

			result, err := app.Decision.ValidationPlan(ctx, app.UserID, args[0])
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render(fmt.Sprintf("检验方案：%s", args[0])))
			if result.Cached {
				fmt.Println(hintStyle.Render("（已有方案，直接展示）"))
			}
			fmt.Println(result.Plan)
			return nil
		},
	}
}

func newFeedbackCmd(app *App) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "feedback <职业名称>",
		Short: "提交检验反馈并获得分析",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireMode(ctx, app, domain.ModeDecision); err != nil {
				return err
			}

			feedback := message
			if feedback == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading feedback from stdin: %w", err)
				}
				feedback = strings.TrimSpace(string(data))
			}
			if feedback == "" {
				return fmt.Errorf("请通过 --message 或标准输入提供反馈内容")
			}

			analysis, err := app.Decision.SubmitFeedback(ctx, app.UserID, args[0], feedback)
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render("反馈分析"))
			fmt.Println(analysis)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "检验反馈内容；缺省时从标准输入读取")
	return cmd
}
