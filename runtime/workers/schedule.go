package workers

import (
	"context"
	"log/slog"

	"groupwarden/domain"

	"github.com/robfig/cron/v3"
)

const safetyTipsText = `🔊 🛡 How to protect your Telegram account? 🛡

Use the tips below to ensure maximum privacy & protection from hacking ⬇

1️⃣ Set additional passwords
⚙ Settings ➜ Privacy and Security
a) Two-Step Verification ➜ Set Password
b) Passcode Lock ➜ Enable Passcode

2️⃣ Take care of privacy
⚙ Settings ➜ Privacy and Security
a) Phone Number ➜ Nobody/My Contacts
b) Forwarded Messages ➜ Nobody
c) Calls ➜ Nobody/My Contacts
d) Groups ➜ My Contacts

#SafetyRules`

// ScheduleWorker queues the recurring safety-tips broadcast for a configured
// chat. The cron spec comes from configuration, the default fires nightly.
type ScheduleWorker struct {
	spec    string
	chatID  int64
	actions chan domain.Action
	log     *slog.Logger
}

func NewScheduleWorker(spec string, chatID int64, actions chan domain.Action, log *slog.Logger) *ScheduleWorker {
	return &ScheduleWorker{spec: spec, chatID: chatID, actions: actions, log: log}
}

func (w ScheduleWorker) Run(ctx context.Context) error {
	scheduler := cron.New()

	_, err := scheduler.AddFunc(w.spec, func() {
		w.log.Info("Scheduled broadcast firing", "chat_id", w.chatID)
		select {
		case <-ctx.Done():
		case w.actions <- domain.SendMessage{ChatID: w.chatID, Text: safetyTipsText}:
		}
	})
	if err != nil {
		// Bad cron spec: give up cleanly instead of restart-looping.
		w.log.Error("Invalid broadcast schedule", "spec", w.spec, "error", err)
		return nil
	}

	scheduler.Start()
	<-ctx.Done()

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	return ctx.Err()
}
