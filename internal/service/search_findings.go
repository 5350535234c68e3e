package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yunqiwei/licheng/internal/search"
)

// snippetsPerQuery caps how much of each search result feeds the prompt.
const snippetsPerQuery = 2

// noFindings is used when every query came back empty, so the model knows
// the search produced nothing rather than assuming search was skipped.
const noFindings = "无特定信息"

// gatherFindings runs the given queries and assembles a findings block for a
// prompt. An unconfigured provider aborts the operation; individual query
// failures are logged and skipped. withLinks appends each snippet's source
// URL, used for trend reports where provenance matters.
func gatherFindings(ctx context.Context, provider search.Provider, log zerolog.Logger, queries []string, withLinks bool) (string, error) {
	var b strings.Builder
	for _, q := range queries {
		snippets, err := provider.Query(ctx, q)
		if err != nil {
			if errors.Is(err, search.ErrUnavailable) {
				return "", fmt.Errorf("gathering search findings: %w", err)
			}
			log.Warn().Err(err).Str("query", q).Msg("search query failed")
			continue
		}
		if len(snippets) > snippetsPerQuery {
			snippets = snippets[:snippetsPerQuery]
		}
		for _, sn := range snippets {
			b.WriteString("- 摘要：")
			b.WriteString(sn.Text)
			if withLinks && sn.Link != "" {
				b.WriteString("（来源：")
				b.WriteString(sn.Link)
				b.WriteString("）")
			}
			b.WriteString("\n")
		}
	}
	if b.Len() == 0 {
		return noFindings, nil
	}
	return b.String(), nil
}
