package workers

import (
	"context"
	"log/slog"

	"groupwarden/domain"
	"groupwarden/moderation"
	"groupwarden/observability"
)

// ModerationWorker drains inbound messages and runs them through the
// pipeline. Several instances share the same channel to process different
// users in parallel; the pipeline's per-user lock keeps same-user
// evaluations serialized.
type ModerationWorker struct {
	pipeline *moderation.Pipeline
	messages chan domain.InboundMessage
	actions  chan domain.Action
	monitor  *observability.Monitor
	log      *slog.Logger
}

func NewModerationWorker(
	pipeline *moderation.Pipeline,
	messages chan domain.InboundMessage,
	actions chan domain.Action,
	monitor *observability.Monitor,
	log *slog.Logger,
) *ModerationWorker {
	return &ModerationWorker{
		pipeline: pipeline,
		messages: messages,
		actions:  actions,
		monitor:  monitor,
		log:      log,
	}
}

func (w ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case msg, ok := <-w.messages:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if err := w.handle(ctx, msg); err != nil {
				return err
			}
		}
	}
}

func (w ModerationWorker) handle(ctx context.Context, msg domain.InboundMessage) error {
	w.monitor.IncrMessagesSeen()

	actions, err := w.pipeline.Process(msg)
	if err != nil {
		// The message is dropped from moderation, never blocked from
		// delivery: log and move on to the next event.
		w.monitor.IncrStorageErrors()
		w.log.Error("Evaluation aborted", "user_id", msg.UserID, "error", err)
		return nil
	}

	for _, action := range actions {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case w.actions <- action:
		}
	}
	return nil
}
