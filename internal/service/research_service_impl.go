package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/intelligence"
	"github.com/yunqiwei/licheng/internal/repository"
	"github.com/yunqiwei/licheng/internal/search"
)

type researchService struct {
	profiles repository.ProfileRepo
	targets  repository.TargetRepo
	mentor   intelligence.MentorService
	searcher search.Provider
	uow      db.UnitOfWork
	log      zerolog.Logger
}

func NewResearchService(
	profiles repository.ProfileRepo,
	targets repository.TargetRepo,
	mentor intelligence.MentorService,
	searcher search.Provider,
	uow db.UnitOfWork,
	log zerolog.Logger,
) ResearchService {
	return &researchService{
		profiles: profiles,
		targets:  targets,
		mentor:   mentor,
		searcher: searcher,
		uow:      uow,
		log:      log,
	}
}

func (s *researchService) Suggest(ctx context.Context, userID string) (*intelligence.SuggestionSet, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	set, err := s.mentor.Suggest(ctx, profile)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		chat := repository.NewSQLiteChatRepo(tx)
		if err := appendChat(ctx, chat, userID, domain.ModeResearch, domain.RoleUser,
			"这是我的个人画像，请分析并生成职业建议。"); err != nil {
			return err
		}
		return appendChat(ctx, chat, userID, domain.ModeResearch, domain.RoleAssistant, set.Raw)
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func (s *researchService) Research(ctx context.Context, userID, targetName string) (*domain.CareerTarget, error) {
	profile, err := s.requireProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	findings, err := gatherFindings(ctx, s.searcher, s.log, researchQueries(targetName), false)
	if err != nil {
		return nil, err
	}

	report, err := s.mentor.Research(ctx, profile, targetName, findings)
	if err != nil {
		return nil, err
	}

	var chart json.RawMessage
	if report.Chart != nil {
		chart, err = json.Marshal(report.Chart)
		if err != nil {
			return nil, fmt.Errorf("encoding chart data: %w", err)
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		targets := repository.NewSQLiteTargetRepo(tx)
		chat := repository.NewSQLiteChatRepo(tx)

		if _, err := targets.UpsertByName(ctx, userID, targetName); err != nil {
			return err
		}
		if err := targets.RecordResearch(ctx, userID, targetName, report.Prose, chart); err != nil {
			return err
		}
		if err := appendChat(ctx, chat, userID, domain.ModeResearch, domain.RoleUser,
			fmt.Sprintf("请为我研究 '%s' 这个职业。", targetName)); err != nil {
			return err
		}
		return appendChat(ctx, chat, userID, domain.ModeResearch, domain.RoleAssistant, report.Prose)
	})
	if err != nil {
		return nil, err
	}

	return s.targets.GetByName(ctx, userID, targetName)
}

func (s *researchService) requireProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: run profile setup first", ErrProfileRequired)
		}
		return nil, err
	}
	return profile, nil
}

func researchQueries(targetName string) []string {
	return []string{
		fmt.Sprintf(`"%s" 发展趋势 报告`, targetName),
		fmt.Sprintf(`"%s" 核心能力要求 技能`, targetName),
		fmt.Sprintf(`"%s" 薪酬范围`, targetName),
	}
}

// appendChat inserts one chat message with a fresh id and timestamp.
func appendChat(ctx context.Context, chat repository.ChatRepo, userID string, mode domain.Mode, role domain.ChatRole, content string) error {
	return chat.Append(ctx, &domain.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mode:      mode,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
}
