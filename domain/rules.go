package domain

import "github.com/google/uuid"

// RuleSet is the process-wide moderation configuration. Exactly one active
// RuleSet exists; it is loaded once at startup and read on every evaluation.
type RuleSet struct {
	Version        uuid.UUID
	OffensiveWords []string `validate:"required,min=1"`
	SpamLimit      int      `validate:"gt=0"`
}

// DefaultRuleSet is the configuration created when none is persisted yet.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		Version:        uuid.New(),
		OffensiveWords: []string{"spam", "scam", "fake"},
		SpamLimit:      5,
	}
}
