package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yunqiwei/licheng/internal/db"
	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/intelligence"
	"github.com/yunqiwei/licheng/internal/repository"
)

type decisionService struct {
	targets repository.TargetRepo
	coach   intelligence.CoachService
	uow     db.UnitOfWork
}

func NewDecisionService(targets repository.TargetRepo, coach intelligence.CoachService, uow db.UnitOfWork) DecisionService {
	return &decisionService{targets: targets, coach: coach, uow: uow}
}

func (s *decisionService) ListTargets(ctx context.Context, userID string) ([]*domain.CareerTarget, error) {
	return s.targets.List(ctx, userID)
}

// EvaluationTargets lists the targets still open for a decision. Targets that
// finished planning have left the evaluation stage and are excluded.
func (s *decisionService) EvaluationTargets(ctx context.Context, userID string) ([]*domain.CareerTarget, error) {
	all, err := s.targets.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	open := make([]*domain.CareerTarget, 0, len(all))
	for _, t := range all {
		if t.Status != domain.StatusPlanningDone {
			open = append(open, t)
		}
	}
	return open, nil
}

func (s *decisionService) Activate(ctx context.Context, userID, targetName string) error {
	return s.applyAction(ctx, userID, targetName, domain.ActionActivate)
}

func (s *decisionService) Pause(ctx context.Context, userID, targetName string) error {
	return s.applyAction(ctx, userID, targetName, domain.ActionPause)
}

// applyAction reads the target, validates the status transition and writes
// the new status, all inside one transaction.
func (s *decisionService) applyAction(ctx context.Context, userID, targetName string, action domain.TargetAction) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		targets := repository.NewSQLiteTargetRepo(tx)
		t, err := targets.GetByName(ctx, userID, targetName)
		if err != nil {
			return err
		}
		next, err := domain.Transition(t.Status, action)
		if err != nil {
			return fmt.Errorf("target %q: %w", targetName, err)
		}
		return targets.SetStatus(ctx, userID, targetName, next)
	})
}

func (s *decisionService) Abandon(ctx context.Context, userID, targetName string) error {
	// Only the target row goes; progress logs reference it by name and stay.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		targets := repository.NewSQLiteTargetRepo(tx)
		return targets.Delete(ctx, userID, targetName)
	})
}

func (s *decisionService) ValidationPlan(ctx context.Context, userID, targetName string) (*ValidationResult, error) {
	t, err := s.targets.GetByName(ctx, userID, targetName)
	if err != nil {
		return nil, err
	}
	if t.ValidationPlan != "" {
		return &ValidationResult{Plan: t.ValidationPlan, Cached: true}, nil
	}
	// Reality testing feeds the activate decision, so any target still under
	// evaluation qualifies. Only completed planning is past this stage.
	if t.Status == domain.StatusPlanningDone {
		return nil, fmt.Errorf("%w: %q has already completed planning", ErrTargetNotReady, targetName)
	}

	plan, err := s.coach.ValidationPlan(ctx, t)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		targets := repository.NewSQLiteTargetRepo(tx)
		return targets.SetValidationPlan(ctx, userID, targetName, plan)
	})
	if err != nil {
		return nil, err
	}
	return &ValidationResult{Plan: plan}, nil
}

func (s *decisionService) SubmitFeedback(ctx context.Context, userID, targetName, feedback string) (string, error) {
	t, err := s.targets.GetByName(ctx, userID, targetName)
	if err != nil {
		return "", err
	}

	analysis, err := s.coach.AnalyzeFeedback(ctx, t, feedback)
	if err != nil {
		return "", err
	}

	// The raw feedback doubles as a progress entry, so it stays visible in
	// mode three even after the conversation moves on.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		logs := repository.NewSQLiteProgressLogRepo(tx)
		if err := logs.Append(ctx, &domain.ProgressLog{
			ID:         uuid.NewString(),
			UserID:     userID,
			TargetName: targetName,
			Body:       fmt.Sprintf("【检验反馈】:\n%s", feedback),
			LoggedAt:   time.Now().UTC(),
		}); err != nil {
			return err
		}
		chat := repository.NewSQLiteChatRepo(tx)
		if err := appendChat(ctx, chat, userID, domain.ModeDecision, domain.RoleUser,
			fmt.Sprintf("这是我关于“%s”的检验反馈：\n%s", targetName, feedback)); err != nil {
			return err
		}
		return appendChat(ctx, chat, userID, domain.ModeDecision, domain.RoleAssistant, analysis)
	})
	if err != nil {
		return "", err
	}
	return analysis, nil
}
