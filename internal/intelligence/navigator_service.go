package intelligence

import (
	"context"
	"fmt"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/llm"
)

// NavigatorService is the trends-mode persona: it reads fresh search findings
// and projects where a career is heading.
type NavigatorService interface {
	TrendsReport(ctx context.Context, target *domain.CareerTarget, findings string) (string, error)
}

type navigatorService struct {
	client llm.LLMClient
}

// NewNavigatorService creates a NavigatorService backed by an LLM client.
func NewNavigatorService(client llm.LLMClient) NavigatorService {
	return &navigatorService{client: client}
}

func (s *navigatorService) TrendsReport(ctx context.Context, target *domain.CareerTarget, findings string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskTrends,
		SystemPrompt: navigatorSystemPrompt,
		UserPrompt:   buildTrendsUserPrompt(target, findings),
	})
	if err != nil {
		return "", fmt.Errorf("generating trends report: %w", err)
	}
	return resp.Text, nil
}
