package workers

import (
	"context"
	"log/slog"

	"groupwarden/contract"
	"groupwarden/domain"
	"groupwarden/observability"
)

// TransportWorker executes queued actions against the chat platform. Action
// failures are logged and counted, never propagated: the engine already made
// its decision, delivery is best effort and retry policy belongs to the
// transport implementation.
type TransportWorker struct {
	transport contract.ITransport
	actions   chan domain.Action
	monitor   *observability.Monitor
	log       *slog.Logger
}

func NewTransportWorker(
	transport contract.ITransport,
	actions chan domain.Action,
	monitor *observability.Monitor,
	log *slog.Logger,
) *TransportWorker {
	return &TransportWorker{
		transport: transport,
		actions:   actions,
		monitor:   monitor,
		log:       log,
	}
}

func (w TransportWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case action, ok := <-w.actions:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.execute(ctx, action)
		}
	}
}

func (w TransportWorker) execute(ctx context.Context, action domain.Action) {
	var err error
	switch a := action.(type) {
	case domain.SendMessage:
		err = w.transport.SendMessage(ctx, a.ChatID, a.Text)
	case domain.RemoveMember:
		err = w.transport.RemoveMember(ctx, a.ChatID, a.UserID)
	case domain.DeleteMessage:
		err = w.transport.DeleteMessage(ctx, a.ChatID, a.MessageID)
	default:
		w.log.Error("Unknown action type", "action", a)
		return
	}

	if err != nil {
		w.monitor.IncrActionFailures()
		w.log.Error("Action failed", "chat_id", action.Chat(), "error", err)
		return
	}
	w.monitor.IncrActionsExecuted()
}
