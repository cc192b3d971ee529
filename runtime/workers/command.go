package workers

import (
	"context"
	"log/slog"

	"groupwarden/domain"
	"groupwarden/services"
)

// CommandWorker handles slash commands addressed to the bot. Commands never
// pass through the moderation pipeline; their replies join the shared action
// queue like any moderation outcome.
type CommandWorker struct {
	broadcast services.IBroadcastService
	news      services.INewsService
	commands  chan domain.Command
	actions   chan domain.Action
	log       *slog.Logger
}

func NewCommandWorker(
	broadcast services.IBroadcastService,
	news services.INewsService,
	commands chan domain.Command,
	actions chan domain.Action,
	log *slog.Logger,
) *CommandWorker {
	return &CommandWorker{
		broadcast: broadcast,
		news:      news,
		commands:  commands,
		actions:   actions,
		log:       log,
	}
}

func (w CommandWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			action := w.dispatch(ctx, cmd)
			if action == nil {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.actions <- action:
			}
		}
	}
}

func (w CommandWorker) dispatch(ctx context.Context, cmd domain.Command) domain.Action {
	switch cmd.Name {
	case "update":
		action, err := w.broadcast.HandleUpdate(ctx, cmd)
		if err != nil {
			w.log.Error("Broadcast command failed", "chat_id", cmd.ChatID, "error", err)
			return nil
		}
		return action
	case "news":
		return w.news.TopHeadlines(ctx, cmd.ChatID)
	default:
		w.log.Debug("Ignoring unknown command", "name", cmd.Name)
		return nil
	}
}
