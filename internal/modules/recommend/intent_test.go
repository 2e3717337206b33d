// README: Intent gate tests.
package recommend

import (
	"testing"
)

func TestShouldRecommend(t *testing.T) {
	memory := NewKeywordMemory()
	memory.Remember("pad thai")
	gate := NewHeuristicGate(memory)

	cases := []struct {
		name      string
		message   string
		extracted []string
		want      bool
	}{
		{"static trigger", "can you recommend something?", nil, true},
		{"static trigger uppercase", "Where should I EAT tonight?", nil, true},
		{"remembered term", "I keep thinking about that Pad Thai", nil, true},
		{"extracted keywords alone", "something mild please", []string{"mild"}, true},
		{"no signal", "what's the capital of France", nil, false},
		{"empty message", "", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gate.ShouldRecommend(tc.message, tc.extracted); got != tc.want {
				t.Errorf("ShouldRecommend(%q, %v) = %v, want %v", tc.message, tc.extracted, got, tc.want)
			}
		})
	}
}
