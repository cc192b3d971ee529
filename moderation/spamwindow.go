// Package moderation contains the decision core: the sliding-window spam
// tracker, the offense escalation rules and the per-message pipeline.
package moderation

import (
	"time"

	"groupwarden/domain"

	"github.com/samber/lo"
)

// Window is the span of activity considered for spam detection. Fixed; the
// configurable knob is the message count inside it (RuleSet.SpamLimit).
const Window = 10 * time.Second

type SpamWindow struct {
	limit int
}

func NewSpamWindow(limit int) SpamWindow {
	return SpamWindow{limit: limit}
}

// Evaluate records one message instant on the user and reports whether the
// user crossed the spam limit. The activity list keeps only instants inside
// the window, so it never grows past limit+1 entries.
//
// On a trigger the whole window is cleared: one warning per burst, then the
// offender starts from a clean slate. Warnings for offensive content are a
// separate counter and are never touched here.
func (w SpamWindow) Evaluate(record *domain.UserRecord, now time.Time) bool {
	record.SpamActivity = append(record.SpamActivity, now)
	record.SpamActivity = lo.Filter(record.SpamActivity, func(ts time.Time, _ int) bool {
		return now.Sub(ts) <= Window
	})

	if len(record.SpamActivity) <= w.limit {
		return false
	}

	record.SpamActivity = nil
	return true
}
