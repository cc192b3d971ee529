package moderation

import (
	"testing"

	"groupwarden/domain"
	"groupwarden/errors"

	"github.com/stretchr/testify/require"
)

func TestEscalator_WarnsThenRemovesOnThird(t *testing.T) {
	req := require.New(t)
	escalator, err := NewEscalator(domain.DefaultRuleSet().OffensiveWords)
	req.NoError(err)

	record := domain.NewUserRecord(1, "Bob")

	first := escalator.Evaluate(&record, "this is a scam")
	req.Equal(VerdictWarn, first.Verdict)
	req.Equal(1, first.Warnings)

	second := escalator.Evaluate(&record, "this is a scam")
	req.Equal(VerdictWarn, second.Verdict)
	req.Equal(2, second.Warnings)

	third := escalator.Evaluate(&record, "this is a scam")
	req.Equal(VerdictRemove, third.Verdict)
	req.Equal(3, third.Warnings, "removal still reports the latest count")
	req.Equal(3, record.Warnings)
}

func TestEscalator_Evaluate(t *testing.T) {
	escalator, err := NewEscalator([]string{"spam", "scam", "fake"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		text     string
		verdict  Verdict
		warnings int
	}{
		{
			name:     "substring inside a larger word matches",
			text:     "that looks scammy to me",
			verdict:  VerdictWarn,
			warnings: 1,
		},
		{
			name:     "clean text never matches",
			text:     "have a nice day",
			verdict:  VerdictNone,
			warnings: 0,
		},
		{
			name:     "empty text never matches",
			text:     "",
			verdict:  VerdictNone,
			warnings: 0,
		},
		{
			name:     "matching is case-sensitive",
			text:     "SCAM ALERT",
			verdict:  VerdictNone,
			warnings: 0,
		},
		{
			name:     "several words in one message count once",
			text:     "spam and scam and fake",
			verdict:  VerdictWarn,
			warnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			record := domain.NewUserRecord(1, "Bob")
			escalation := escalator.Evaluate(&record, tt.text)
			req.Equal(tt.verdict, escalation.Verdict)
			req.Equal(tt.warnings, escalation.Warnings)
			req.Equal(tt.warnings, record.Warnings)
		})
	}
}

func TestEscalator_WarningsAreMonotonic(t *testing.T) {
	req := require.New(t)
	escalator, err := NewEscalator([]string{"spam"})
	req.NoError(err)

	record := domain.NewUserRecord(1, "Bob")
	previous := 0
	inputs := []string{"spam", "hello", "", "more spam", "spam again", "bye"}
	for _, text := range inputs {
		escalator.Evaluate(&record, text)
		req.GreaterOrEqual(record.Warnings, previous)
		previous = record.Warnings
	}
	req.Equal(3, record.Warnings)
}

func TestNewEscalator_RejectsEmptyWordList(t *testing.T) {
	req := require.New(t)
	_, err := NewEscalator(nil)
	req.ErrorIs(err, errors.ErrEmptyWords)
}
