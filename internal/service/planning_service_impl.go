package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/intelligence"
	"github.com/yunqiwei/licheng/internal/repository"
)

type planningService struct {
	profiles repository.ProfileRepo
	targets  repository.TargetRepo
	logs     repository.ProgressLogRepo
	planner  intelligence.PlannerService
	uow      db.UnitOfWork
}

func NewPlanningService(
	profiles repository.ProfileRepo,
	targets repository.TargetRepo,
	logs repository.ProgressLogRepo,
	planner intelligence.PlannerService,
	uow db.UnitOfWork,
) PlanningService {
	return &planningService{
		profiles: profiles,
		targets:  targets,
		logs:     logs,
		planner:  planner,
		uow:      uow,
	}
}

func (s *planningService) GeneratePlan(ctx context.Context, userID, targetName string) (*PlanResult, error) {
	t, err := s.targets.GetByName(ctx, userID, targetName)
	if err != nil {
		return nil, err
	}
	if !t.Status.Activated() {
		return nil, fmt.Errorf("%w: activate %q before planning", ErrTargetNotReady, targetName)
	}
	// A structured plan already on record is returned as-is. Legacy records
	// that stored unparseable text fall through and get regenerated.
	if plan, ok := t.StructuredPlan(); ok {
		return &PlanResult{Plan: plan, Raw: string(t.ActionPlan), Cached: true}, nil
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		profile = &domain.UserProfile{UserID: userID}
	}

	draft, err := s.planner.Draft(ctx, profile, t)
	if err != nil {
		return nil, err
	}

	var planJSON json.RawMessage
	if draft.Plan != nil {
		planJSON, err = json.Marshal(draft.Plan)
		if err != nil {
			return nil, fmt.Errorf("encoding action plan: %w", err)
		}
	}

	next, err := domain.Transition(t.Status, domain.ActionFinishPlanning)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", targetName, err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		targets := repository.NewSQLiteTargetRepo(tx)
		chat := repository.NewSQLiteChatRepo(tx)

		if err := targets.SetActionPlan(ctx, userID, targetName, planJSON); err != nil {
			return err
		}
		if err := targets.SetStatus(ctx, userID, targetName, next); err != nil {
			return err
		}
		if err := appendChat(ctx, chat, userID, domain.ModePlanning, domain.RoleUser,
			fmt.Sprintf("请为我的目标“%s”生成行动蓝图。", targetName)); err != nil {
			return err
		}
		return appendChat(ctx, chat, userID, domain.ModePlanning, domain.RoleAssistant, draft.Raw)
	})
	if err != nil {
		return nil, err
	}

	return &PlanResult{Plan: draft.Plan, Raw: draft.Raw}, nil
}

func (s *planningService) LogProgress(ctx context.Context, userID, targetName, body string) error {
	if _, err := s.targets.GetByName(ctx, userID, targetName); err != nil {
		return err
	}
	return s.logs.Append(ctx, &domain.ProgressLog{
		ID:         uuid.NewString(),
		UserID:     userID,
		TargetName: targetName,
		Body:       body,
		LoggedAt:   time.Now().UTC(),
	})
}

func (s *planningService) Logs(ctx context.Context, userID string) ([]*domain.ProgressLog, error) {
	return s.logs.List(ctx, userID)
}
