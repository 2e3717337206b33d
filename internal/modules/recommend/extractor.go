// README: LLM-backed keyword extraction from free-text user messages.
package recommend

import (
	"context"
	"strings"

	logx "foodiebot/pkg/logger"

	"foodiebot/internal/ai"
)

const extractInstruction = `You analyze a user's message to a restaurant assistant.
List only the relevant preference or requirement keywords (cuisine, dish, dietary need, ambiance, budget), excluding location names and generic food terms.
Reply with a comma-separated list, or the single word "none" if there are no such keywords. No explanations.`

// KeywordExtractor asks the language model for the salient preference keywords
// in a user message and parses its comma-separated reply.
type KeywordExtractor struct {
	gen ai.Generator
}

func NewKeywordExtractor(gen ai.Generator) *KeywordExtractor {
	return &KeywordExtractor{gen: gen}
}

// Extract returns the extracted keywords. A model failure or a "none" reply
// yields an empty slice; intent detection then degrades to the heuristic gate
// instead of hard-failing the turn.
func (e *KeywordExtractor) Extract(ctx context.Context, message string) []string {
	reply, err := e.gen.Generate(ctx, extractInstruction, message)
	if err != nil {
		logx.Debug().Err(err).Msg("keyword extraction failed, degrading to heuristics")
		return nil
	}

	reply = strings.TrimSpace(reply)
	if reply == "" || strings.EqualFold(reply, "none") {
		return nil
	}

	var keywords []string
	for _, part := range strings.Split(reply, ",") {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
