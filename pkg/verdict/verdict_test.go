package verdict

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapResolver map[string]string

func (m mapResolver) Lookup(clue string) (string, bool) {
	s, ok := m[clue]
	return s, ok
}

var testResolver = mapResolver{
	"wool coat":    "Gardener",
	"muddy gloves": "Gardener",
	"love note":    "Butler",
	"torn note":    "Butler",
}

func TestCountMatchesFor(t *testing.T) {
	tests := []struct {
		name     string
		clues    []string
		accused  string
		expected int
	}{
		{name: "empty journal", clues: nil, accused: "Gardener", expected: 0},
		{name: "empty journal empty name", clues: nil, accused: "", expected: 0},
		{name: "one match", clues: []string{"wool coat"}, accused: "Gardener", expected: 1},
		{name: "two matches", clues: []string{"muddy gloves", "wool coat", "love note"}, accused: "Gardener", expected: 2},
		{name: "exact name only", clues: []string{"muddy gloves", "wool coat"}, accused: "gardener", expected: 0},
		{name: "unknown clue ignored", clues: []string{"a feather", "torn note"}, accused: "Butler", expected: 1},
		{name: "nobody matches", clues: []string{"love note"}, accused: "Cook", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountMatchesFor(slices.Values(tt.clues), testResolver, tt.accused)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecide(t *testing.T) {
	assert.Equal(t, OutcomeNotProven, Decide(0))
	assert.Equal(t, OutcomeNotProven, Decide(1))
	assert.Equal(t, OutcomeGuilty, Decide(2))
	assert.Equal(t, OutcomeGuilty, Decide(5))
}

func TestReport_Guilty(t *testing.T) {
	assert.True(t, Report{Outcome: OutcomeGuilty}.Guilty())
	assert.False(t, Report{Outcome: OutcomeNotProven}.Guilty())
}
