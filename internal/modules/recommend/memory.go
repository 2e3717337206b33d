// README: Process-lifetime keyword set shared by intent detection and the fetcher.
package recommend

import (
	"sort"
	"strings"
	"sync"
)

// KeywordMemory accumulates descriptive terms (dish names, tags) from every
// successful fetch and biases future intent detection toward them. Membership
// is case-insensitive, updates are monotone set unions, and there is no
// eviction: the set grows for the lifetime of the process. It is injected into
// its consumers rather than held as package state so tests stay isolated.
type KeywordMemory struct {
	mu    sync.RWMutex
	terms map[string]struct{}
}

func NewKeywordMemory() *KeywordMemory {
	return &KeywordMemory{terms: make(map[string]struct{})}
}

// Remember folds the given terms into the set, lower-cased. Blank terms are
// skipped and duplicates collapse, so repeated calls with the same input are
// idempotent.
func (m *KeywordMemory) Remember(terms ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		m.terms[t] = struct{}{}
	}
}

// ContainsAny reports whether any remembered term appears in the message.
func (m *KeywordMemory) ContainsAny(message string) bool {
	msg := strings.ToLower(message)
	m.mu.RLock()
	defer m.mu.RUnlock()
	for t := range m.terms {
		if strings.Contains(msg, t) {
			return true
		}
	}
	return false
}

// Snapshot returns the current terms, sorted for stable output.
func (m *KeywordMemory) Snapshot() []string {
	m.mu.RLock()
	out := make([]string, 0, len(m.terms))
	for t := range m.terms {
		out = append(out, t)
	}
	m.mu.RUnlock()
	sort.Strings(out)
	return out
}

func (m *KeywordMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.terms)
}
