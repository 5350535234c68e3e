package cli

import (
	"github.com/spf13/cobra"

	"github.com/yunqiwei/licheng/internal/service"
)

// App holds references to all service interfaces used by CLI commands, plus
// the identity of the user the process acts for.
type App struct {
	UserID string

	Profile  service.ProfileService
	Research service.ResearchService
	Decision service.DecisionService
	Planning service.PlanningService
	Trends   service.TrendsService
	History  service.HistoryService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "licheng" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "licheng",
		Short: "里程 — 大学生职业规划助手",
		Long: `里程是一个四阶段的职业规划助手：
目标研究、决策与评估、计划与行动、未来发展因应。
后面的阶段在前一阶段产出成果后解锁。`,
	}

	root.AddCommand(
		newDashboardCmd(app),
		newProfileCmd(app),
		newSuggestCmd(app),
		newResearchCmd(app),
		newTargetCmd(app),
		newValidateCmd(app),
		newFeedbackCmd(app),
		newPlanCmd(app),
		newTrendsCmd(app),
		newLogCmd(app),
		newHistoryCmd(app),
	)

	return root
}
