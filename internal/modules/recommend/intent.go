// README: Heuristic gate deciding whether a turn warrants a recommendation fetch.
package recommend

import (
	"strings"
)

// IntentClassifier decides whether a user turn warrants fetching
// recommendations. Kept as an interface so the heuristic gate can be swapped
// for a model-based classifier without touching callers.
type IntentClassifier interface {
	ShouldRecommend(message string, extracted []string) bool
}

// Static trigger terms from the original assistant behaviour.
var triggerTerms = []string{"recommend", "suggest", "find", "restaurant", "food", "eat", "dining", "cuisine"}

// HeuristicGate is an OR-gate over static triggers, remembered keywords, and
// the extractor's output. False positives (an unnecessary fetch) are tolerated;
// the keyword memory exists to reduce false negatives over the process lifetime.
type HeuristicGate struct {
	memory *KeywordMemory
}

func NewHeuristicGate(memory *KeywordMemory) *HeuristicGate {
	return &HeuristicGate{memory: memory}
}

func (g *HeuristicGate) ShouldRecommend(message string, extracted []string) bool {
	if len(extracted) > 0 {
		return true
	}
	msg := strings.ToLower(message)
	for _, t := range triggerTerms {
		if strings.Contains(msg, t) {
			return true
		}
	}
	return g.memory.ContainsAny(message)
}
