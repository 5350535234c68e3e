package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/intelligence"
	"github.com/yunqiwei/licheng/internal/repository"
	"github.com/yunqiwei/licheng/internal/search"
)

type trendsService struct {
	targets   repository.TargetRepo
	navigator intelligence.NavigatorService
	searcher  search.Provider
	uow       db.UnitOfWork
	log       zerolog.Logger
}

func NewTrendsService(
	targets repository.TargetRepo,
	navigator intelligence.NavigatorService,
	searcher search.Provider,
	uow db.UnitOfWork,
	log zerolog.Logger,
) TrendsService {
	return &trendsService{
		targets:   targets,
		navigator: navigator,
		searcher:  searcher,
		uow:       uow,
		log:       log,
	}
}

func (s *trendsService) Report(ctx context.Context, userID, targetName string) (string, error) {
	t, err := s.targets.GetByName(ctx, userID, targetName)
	if err != nil {
		return "", err
	}
	if !t.Status.Activated() {
		return "", fmt.Errorf("%w: activate %q before requesting a trends report", ErrTargetNotReady, targetName)
	}

	findings, err := gatherFindings(ctx, s.searcher, s.log, trendsQueries(targetName), true)
	if err != nil {
		return "", err
	}

	report, err := s.navigator.TrendsReport(ctx, t, findings)
	if err != nil {
		return "", err
	}

	// The report lives only in conversation history; the target row carries
	// no trends state.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		chat := repository.NewSQLiteChatRepo(tx)
		if err := appendChat(ctx, chat, userID, domain.ModeTrends, domain.RoleUser,
			fmt.Sprintf("请为我的目标“%s”生成一份未来趋势洞察报告。", targetName)); err != nil {
			return err
		}
		return appendChat(ctx, chat, userID, domain.ModeTrends, domain.RoleAssistant, report)
	})
	if err != nil {
		return "", err
	}
	return report, nil
}

func trendsQueries(targetName string) []string {
	return []string{
		fmt.Sprintf(`"%s" 技术趋势 2025`, targetName),
		fmt.Sprintf(`"%s" 行业社会环境变化`, targetName),
		fmt.Sprintf(`"%s" 职业观念发展`, targetName),
	}
}
