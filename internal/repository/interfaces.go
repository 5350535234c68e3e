package repository

import (
	"context"
	"encoding/json"

	"github.com/yunqiwei/licheng/internal/domain"
)

type TargetRepo interface {
	// UpsertByName creates the target if absent, otherwise returns the
	// existing record unchanged. The returned target is the persisted one.
	UpsertByName(ctx context.Context, userID, name string) (*domain.CareerTarget, error)
	GetByName(ctx context.Context, userID, name string) (*domain.CareerTarget, error)
	List(ctx context.Context, userID string) ([]*domain.CareerTarget, error)
	// RecordResearch stores a fresh research report and chart data, and resets
	// the target's status to researching.
	RecordResearch(ctx context.Context, userID, name, report string, chart json.RawMessage) error
	SetStatus(ctx context.Context, userID, name string, status domain.TargetStatus) error
	SetValidationPlan(ctx context.Context, userID, name, plan string) error
	SetActionPlan(ctx context.Context, userID, name string, plan json.RawMessage) error
	Delete(ctx context.Context, userID, name string) error
}

type ProgressLogRepo interface {
	Append(ctx context.Context, log *domain.ProgressLog) error
	// List returns logs newest first.
	List(ctx context.Context, userID string) ([]*domain.ProgressLog, error)
}

type ChatRepo interface {
	Append(ctx context.Context, msg *domain.ChatMessage) error
	// ListByMode returns messages in insertion order.
	ListByMode(ctx context.Context, userID string, mode domain.Mode) ([]*domain.ChatMessage, error)
}

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
