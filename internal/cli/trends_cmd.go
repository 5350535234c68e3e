package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yunqiwei/licheng/internal/domain"
)

func newTrendsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trends <职业名称>",
		Short: "生成基于最新搜索资料的趋势洞察报告",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if err := requireMode(ctx, app, domain.ModeTrends); err != nil {
				return err
			}

			report, err := app.Trends.Report(ctx, app.UserID, args[0])
			if err != nil {
				return err
			}

			fmt.Println(titleStyle.Render(fmt.Sprintf("趋势洞察：%s", args[0])))
			fmt.Println(report)
			return nil
		},
	}
}

