package verdict

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

// Threshold is the number of matching clues needed for a conviction.
const Threshold = 2

type Outcome string

const (
	OutcomeGuilty    Outcome = "guilty"
	OutcomeNotProven Outcome = "not_proven"
)

// Resolver finds the suspect a clue points to.
type Resolver interface {
	Lookup(clue string) (string, bool)
}

// CountMatchesFor counts the clues that resolve to exactly accused.
// Clues unknown to the resolver count for nobody.
func CountMatchesFor(clues iter.Seq[string], resolver Resolver, accused string) int {
	count := 0
	for clue := range clues {
		if suspect, ok := resolver.Lookup(clue); ok && suspect == accused {
			count++
		}
	}
	return count
}

// Decide applies the threshold rule.
func Decide(matches int) Outcome {
	if matches >= Threshold {
		return OutcomeGuilty
	}
	return OutcomeNotProven
}

// Report is the record of a closed case.
type Report struct {
	CaseID   uuid.UUID `json:"case_id"`
	Accused  string    `json:"accused"`
	Matches  int       `json:"matches"`
	Outcome  Outcome   `json:"outcome"`
	Clues    []string  `json:"clues"`
	ClosedAt time.Time `json:"closed_at"`
}

// Guilty reports whether the accusation held.
func (r Report) Guilty() bool {
	return r.Outcome == OutcomeGuilty
}
