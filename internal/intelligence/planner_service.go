package intelligence

import (
	"context"
	"fmt"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/llm"
)

// PlanDraft is the planner's output. Plan is nil when the model failed to
// produce a decodable structured block; Raw always holds the full response.
type PlanDraft struct {
	Prose string
	Plan  *domain.ActionPlan
	Raw   string
}

// PlannerService is the planning-mode persona: it turns a confirmed target
// into a long-term action blueprint.
type PlannerService interface {
	Draft(ctx context.Context, profile *domain.UserProfile, target *domain.CareerTarget) (*PlanDraft, error)
}

type plannerService struct {
	client llm.LLMClient
}

// NewPlannerService creates a PlannerService backed by an LLM client.
func NewPlannerService(client llm.LLMClient) PlannerService {
	return &plannerService{client: client}
}

func (s *plannerService) Draft(ctx context.Context, profile *domain.UserProfile, target *domain.CareerTarget) (*PlanDraft, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: plannerSystemPrompt,
		UserPrompt:   buildPlanUserPrompt(profile, target),
	})
	if err != nil {
		return nil, fmt.Errorf("generating action plan: %w", err)
	}

	out := llm.SplitOutput(resp.Text)
	draft := &PlanDraft{Prose: out.Prose, Raw: resp.Text}
	if plan, ok := llm.DecodePayload[domain.ActionPlan](out); ok {
		draft.Plan = plan
	}
	return draft, nil
}
