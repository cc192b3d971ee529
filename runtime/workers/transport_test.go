package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"groupwarden/domain"
	"groupwarden/errors"
	"groupwarden/mocks"
	"groupwarden/observability"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransportWorker_ExecutesEachActionKind(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transportMock := mocks.NewMockITransport(ctrl)

	executed := make(chan struct{}, 3)
	markDone := func(...any) { executed <- struct{}{} }

	transportMock.EXPECT().
		SendMessage(gomock.Any(), int64(10), "Alice, WARNING! Total warnings: 1").
		Do(func(context.Context, int64, string) { markDone() }).
		Return(nil).
		Times(1)
	transportMock.EXPECT().
		RemoveMember(gomock.Any(), int64(10), int64(99)).
		Do(func(context.Context, int64, int64) { markDone() }).
		Return(nil).
		Times(1)
	transportMock.EXPECT().
		DeleteMessage(gomock.Any(), int64(10), 345).
		Do(func(context.Context, int64, int) { markDone() }).
		Return(nil).
		Times(1)

	monitor := observability.NewMonitor()
	actions := make(chan domain.Action, 3)
	worker := NewTransportWorker(transportMock, actions, monitor, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	actions <- domain.SendMessage{ChatID: 10, Text: "Alice, WARNING! Total warnings: 1"}
	actions <- domain.RemoveMember{ChatID: 10, UserID: 99}
	actions <- domain.DeleteMessage{ChatID: 10, MessageID: 345}

	for i := 0; i < 3; i++ {
		select {
		case <-executed:
		case <-time.After(500 * time.Millisecond):
			req.Failf("Timed out", "only %d of 3 actions executed", i)
		}
	}
	req.Equal(uint64(3), monitor.Snapshot().ActionsExecuted)
}

func TestTransportWorker_FailureIsCountedNotFatal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	transportMock := mocks.NewMockITransport(ctrl)

	executed := make(chan struct{}, 2)
	transportMock.EXPECT().
		SendMessage(gomock.Any(), int64(1), "first").
		Do(func(context.Context, int64, string) { executed <- struct{}{} }).
		Return(errors.ErrStorage).
		Times(1)
	transportMock.EXPECT().
		SendMessage(gomock.Any(), int64(1), "second").
		Do(func(context.Context, int64, string) { executed <- struct{}{} }).
		Return(nil).
		Times(1)

	monitor := observability.NewMonitor()
	actions := make(chan domain.Action, 2)
	worker := NewTransportWorker(transportMock, actions, monitor, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Run(ctx)

	actions <- domain.SendMessage{ChatID: 1, Text: "first"}
	actions <- domain.SendMessage{ChatID: 1, Text: "second"}

	for i := 0; i < 2; i++ {
		select {
		case <-executed:
		case <-time.After(500 * time.Millisecond):
			req.Fail("Worker should keep draining after a failed action")
		}
	}

	stats := monitor.Snapshot()
	req.Equal(uint64(1), stats.ActionFailures)
	req.Equal(uint64(1), stats.ActionsExecuted)
}
