package moderation

import (
	goahocorasick "github.com/anknown/ahocorasick"

	"groupwarden/domain"
	"groupwarden/errors"
)

// removalThreshold is the warning count at which a user is removed. Not part
// of RuleSet on purpose: no deployment has ever tuned it.
const removalThreshold = 3

type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictWarn
	VerdictRemove
)

// Escalation is the outcome of one content evaluation. Warnings carries the
// user's total after the evaluation, also on removal.
type Escalation struct {
	Verdict  Verdict
	Warnings int
}

// Escalator matches message text against the configured offensive words and
// drives the warning counter. Matching is a case-sensitive substring search
// over the whole word list at once (Aho-Corasick), so the list order never
// influences detection.
type Escalator struct {
	matcher *goahocorasick.Machine
}

// NewEscalator builds the automaton once; the word list belongs to the
// process-wide RuleSet and does not change within a run.
func NewEscalator(offensiveWords []string) (Escalator, error) {
	if len(offensiveWords) == 0 {
		return Escalator{}, errors.ErrEmptyWords
	}

	patterns := make([][]rune, len(offensiveWords))
	for i, word := range offensiveWords {
		patterns[i] = []rune(word)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Escalator{}, err
	}
	return Escalator{matcher: m}, nil
}

// Evaluate increments the warning counter when text contains any offensive
// word and reports the resulting verdict. Empty text never matches; warnings
// only ever grow here, resets are an out-of-band moderator decision.
func (e Escalator) Evaluate(record *domain.UserRecord, text string) Escalation {
	if text == "" || !e.matches(text) {
		return Escalation{Verdict: VerdictNone, Warnings: record.Warnings}
	}

	record.Warnings++
	if record.Warnings >= removalThreshold {
		return Escalation{Verdict: VerdictRemove, Warnings: record.Warnings}
	}
	return Escalation{Verdict: VerdictWarn, Warnings: record.Warnings}
}

func (e Escalator) matches(text string) bool {
	// First hit short-circuits; which word matched is never surfaced.
	return len(e.matcher.MultiPatternSearch([]rune(text), true)) > 0
}
