package workers

import (
	"context"
	"log/slog"
	"time"

	"groupwarden/observability"
)

// MonitorWorker logs one activity snapshot per interval.
type MonitorWorker struct {
	monitor  *observability.Monitor
	interval time.Duration
	log      *slog.Logger
}

func NewMonitorWorker(monitor *observability.Monitor, interval time.Duration, log *slog.Logger) *MonitorWorker {
	return &MonitorWorker{monitor: monitor, interval: interval, log: log}
}

func (w MonitorWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case <-ticker.C:
			stats := w.monitor.Snapshot()
			w.log.Info("Engine activity",
				"messages_seen", stats.MessagesSeen,
				"spam_warnings", stats.SpamWarnings,
				"content_warnings", stats.ContentWarnings,
				"removals", stats.Removals,
				"joins_deleted", stats.JoinsDeleted,
				"storage_errors", stats.StorageErrors,
				"actions_executed", stats.ActionsExecuted,
				"action_failures", stats.ActionFailures,
				"alloc_mb", stats.AllocMemMb,
				"num_gc", stats.NumGC,
				"cpu_percent", stats.CPUPercent)
		}
	}
}
