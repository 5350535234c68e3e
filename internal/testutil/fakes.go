package testutil

import (
	"context"
	"fmt"

	"github.com/yunqiwei/licheng/internal/llm"
	"github.com/yunqiwei/licheng/internal/search"
)

// ScriptedLLM returns canned responses keyed by task type and records every
// request it receives.
type ScriptedLLM struct {
	Responses map[llm.TaskType]string
	Err       error
	Requests  []llm.GenerateRequest
}

func (s *ScriptedLLM) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	s.Requests = append(s.Requests, req)
	if s.Err != nil {
		return nil, s.Err
	}
	text, ok := s.Responses[req.Task]
	if !ok {
		return nil, fmt.Errorf("no scripted response for task %q", req.Task)
	}
	return &llm.GenerateResponse{Text: text, Model: "scripted"}, nil
}

// FakeSearch serves canned snippets and can fail individual queries.
type FakeSearch struct {
	// Snippets maps a query string to its results. Queries without an entry
	// return no snippets.
	Snippets map[string][]search.Snippet
	// FailQueries maps a query to the error it should return.
	FailQueries map[string]error
	// Unavailable makes every query fail with search.ErrUnavailable.
	Unavailable bool
	Queries     []string
}

func (f *FakeSearch) Query(_ context.Context, q string) ([]search.Snippet, error) {
	f.Queries = append(f.Queries, q)
	if f.Unavailable {
		return nil, search.ErrUnavailable
	}
	if err, ok := f.FailQueries[q]; ok {
		return nil, err
	}
	return f.Snippets[q], nil
}
