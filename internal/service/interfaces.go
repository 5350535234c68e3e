package service

import (
	"context"
	"errors"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/intelligence"
)

var (
	// ErrProfileRequired indicates an operation needs a saved user profile.
	ErrProfileRequired = errors.New("user profile required")

	// ErrTargetNotReady indicates the target's status does not permit the
	// requested operation.
	ErrTargetNotReady = errors.New("target not ready for this operation")
)

type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Save(ctx context.Context, p *domain.UserProfile) error
}

// ResearchService is the exploration mode: profile-driven career suggestions
// and per-career deep research.
type ResearchService interface {
	Suggest(ctx context.Context, userID string) (*intelligence.SuggestionSet, error)
	// Research studies one career, persists the report and resets the
	// target's status to researching.
	Research(ctx context.Context, userID, targetName string) (*domain.CareerTarget, error)
}

// ValidationResult is a validation plan plus whether it was served from cache.
type ValidationResult struct {
	Plan   string
	Cached bool
}

// DecisionService is the decision mode: target lifecycle management and
// reality-check validation.
type DecisionService interface {
	ListTargets(ctx context.Context, userID string) ([]*domain.CareerTarget, error)
	// EvaluationTargets lists targets still open for a decision, excluding
	// those that already completed planning.
	EvaluationTargets(ctx context.Context, userID string) ([]*domain.CareerTarget, error)
	Activate(ctx context.Context, userID, targetName string) error
	Pause(ctx context.Context, userID, targetName string) error
	// Abandon deletes the target. Progress logs that reference it by name
	// are left untouched.
	Abandon(ctx context.Context, userID, targetName string) error
	ValidationPlan(ctx context.Context, userID, targetName string) (*ValidationResult, error)
	SubmitFeedback(ctx context.Context, userID, targetName, feedback string) (string, error)
}

// PlanResult is an action blueprint plus whether it was served from cache.
type PlanResult struct {
	Plan   *domain.ActionPlan
	Raw    string
	Cached bool
}

// PlanningService is the planning mode: long-term blueprints and progress
// tracking for activated targets.
type PlanningService interface {
	GeneratePlan(ctx context.Context, userID, targetName string) (*PlanResult, error)
	LogProgress(ctx context.Context, userID, targetName, body string) error
	Logs(ctx context.Context, userID string) ([]*domain.ProgressLog, error)
}

// TrendsService is the trends mode: search-grounded foresight reports.
// Reports are conversational only and never stored on the target.
type TrendsService interface {
	Report(ctx context.Context, userID, targetName string) (string, error)
}

// HistoryService exposes per-mode chat history and workflow gating.
type HistoryService interface {
	Messages(ctx context.Context, userID string, mode domain.Mode) ([]*domain.ChatMessage, error)
	UnlockedModes(ctx context.Context, userID string) (map[domain.Mode]bool, error)
}
