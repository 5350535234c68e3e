package intelligence

import (
	"context"
	"fmt"

	"github.com/yunqiwei/licheng/internal/domain"
	"github.com/yunqiwei/licheng/internal/llm"
)

// Suggestion is a single career direction proposed by the mentor.
type Suggestion struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// SuggestionSet is the mentor's full answer to a profile analysis request.
type SuggestionSet struct {
	// Prose is the analysis text before the structured block.
	Prose       string
	Summary     string
	Suggestions []Suggestion
	// Raw is the unmodified model response, kept for chat history.
	Raw string
}

// ResearchReport is the mentor's deep dive into one career.
type ResearchReport struct {
	Prose string
	Chart *domain.ResearchChart
	Raw   string
}

// MentorService is the exploration-mode persona: it turns a personal profile
// into career directions and researches individual careers in depth.
type MentorService interface {
	Suggest(ctx context.Context, profile *domain.UserProfile) (*SuggestionSet, error)
	Research(ctx context.Context, profile *domain.UserProfile, targetName, findings string) (*ResearchReport, error)
}

type mentorService struct {
	client llm.LLMClient
}

// NewMentorService creates a MentorService backed by an LLM client.
func NewMentorService(client llm.LLMClient) MentorService {
	return &mentorService{client: client}
}

// suggestPayload is the JSON structure expected from the suggestion call.
type suggestPayload struct {
	Summary     string       `json:"summary"`
	Suggestions []Suggestion `json:"suggestions"`
}

func (s *mentorService) Suggest(ctx context.Context, profile *domain.UserProfile) (*SuggestionSet, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSuggest,
		SystemPrompt: mentorSystemPrompt,
		UserPrompt:   buildSuggestUserPrompt(profile),
	})
	if err != nil {
		return nil, fmt.Errorf("generating career suggestions: %w", err)
	}

	out := llm.SplitOutput(resp.Text)
	set := &SuggestionSet{Prose: out.Prose, Raw: resp.Text}
	if payload, ok := llm.DecodePayload[suggestPayload](out); ok {
		set.Summary = payload.Summary
		set.Suggestions = payload.Suggestions
	}
	return set, nil
}

func (s *mentorService) Research(ctx context.Context, profile *domain.UserProfile, targetName, findings string) (*ResearchReport, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskResearch,
		SystemPrompt: mentorSystemPrompt,
		UserPrompt:   buildResearchUserPrompt(profile, targetName, findings),
	})
	if err != nil {
		return nil, fmt.Errorf("generating research report: %w", err)
	}

	out := llm.SplitOutput(resp.Text)
	report := &ResearchReport{Prose: out.Prose, Raw: resp.Text}
	if chart, ok := llm.DecodePayload[domain.ResearchChart](out); ok {
		report.Chart = chart
	}
	return report, nil
}
