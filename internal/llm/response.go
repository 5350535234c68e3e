package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Output is a model response split into its prose and its embedded
// machine-readable payload. Downstream code never re-parses the raw text.
type Output struct {
	// Prose is the text before the first fenced JSON block, trimmed.
	// If no block exists, Prose is the whole response trimmed.
	Prose string
	// Payload is the content of the first fenced ```json block, or nil.
	Payload json.RawMessage
}

var jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")

// SplitOutput separates a model response into prose and payload. Only the
// first fenced block counts; later fences stay untouched inside the raw text.
func SplitOutput(text string) Output {
	m := jsonFenceRe.FindStringSubmatchIndex(text)
	if m == nil {
		return Output{Prose: strings.TrimSpace(text)}
	}
	return Output{
		Prose:   strings.TrimSpace(text[:m[0]]),
		Payload: json.RawMessage(text[m[2]:m[3]]),
	}
}

// DecodePayload unmarshals an output payload into T. Returns ok=false when
// the payload is absent or malformed; a model that mangles its JSON block
// must not fail the surrounding operation.
func DecodePayload[T any](out Output) (*T, bool) {
	if len(out.Payload) == 0 {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(out.Payload, &v); err != nil {
		return nil, false
	}
	return &v, true
}
