package intelligence

import (
	"context"
	"fmt"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/llm"
)

// CoachService is the decision-mode persona: it designs low-cost reality
// checks for a career hypothesis and interprets the user's feedback.
type CoachService interface {
	ValidationPlan(ctx context.Context, target *domain.CareerTarget) (string, error)
	AnalyzeFeedback(ctx context.Context, target *domain.CareerTarget, feedback string) (string, error)
}

type coachService struct {
	client llm.LLMClient
}

// NewCoachService creates a CoachService backed by an LLM client.
func NewCoachService(client llm.LLMClient) CoachService {
	return &coachService{client: client}
}

func (s *coachService) ValidationPlan(ctx context.Context, target *domain.CareerTarget) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskValidate,
		SystemPrompt: coachSystemPrompt,
		UserPrompt:   buildValidationUserPrompt(target),
	})
	if err != nil {
		return "", fmt.Errorf("generating validation plan: %w", err)
	}
	return resp.Text, nil
}

func (s *coachService) AnalyzeFeedback(ctx context.Context, target *domain.CareerTarget, feedback string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskFeedback,
		SystemPrompt: coachSystemPrompt,
		UserPrompt:   buildFeedbackUserPrompt(target, feedback),
	})
	if err != nil {
		return "", fmt.Errorf("analyzing feedback: %w", err)
	}
	return resp.Text, nil
}
