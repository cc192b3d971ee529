package test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"groupwarden/domain"
	"groupwarden/mocks"
	"groupwarden/moderation"
	"groupwarden/observability"
	"groupwarden/repositories"
	"groupwarden/runtime/workers"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Reduced to 16 Mo for testing (avoid 20 Go of storage)
func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newPipeline(t *testing.T, db *badger.DB) *moderation.Pipeline {
	t.Helper()
	rules, err := repositories.NewRuleSetStore(db).LoadOrCreateDefault()
	require.NoError(t, err)
	escalator, err := moderation.NewEscalator(rules.OffensiveWords)
	require.NoError(t, err)
	return moderation.NewPipeline(
		repositories.NewUserRecordStore(db),
		moderation.NewSpamWindow(rules.SpamLimit),
		escalator,
		observability.NewMonitor(),
		slog.Default(),
	)
}

func Test_Scenario_SpamBurstTriggersOneWarning(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	pipeline := newPipeline(t, db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Five innocuous messages one second apart stay under the limit
	for i := 0; i < 5; i++ {
		actions, err := pipeline.Process(domain.InboundMessage{
			ChatID: 7, MessageID: 100 + i, UserID: 42, FirstName: "Alice",
			Text: fmt.Sprintf("hello %d", i), At: base.Add(time.Duration(i) * time.Second),
		})
		req.NoError(err)
		req.Empty(actions)
	}

	// The sixth inside the same window crosses it
	actions, err := pipeline.Process(domain.InboundMessage{
		ChatID: 7, MessageID: 105, UserID: 42, FirstName: "Alice",
		Text: "hello again", At: base.Add(5 * time.Second),
	})
	req.NoError(err)
	req.Len(actions, 1)
	req.Equal(domain.SendMessage{ChatID: 7, Text: "Alice, KINDLY STOP SPAMMING PLEASE!"}, actions[0])

	// The window was reset: the next message starts from a clean slate
	actions, err = pipeline.Process(domain.InboundMessage{
		ChatID: 7, MessageID: 106, UserID: 42, FirstName: "Alice",
		Text: "sorry", At: base.Add(6 * time.Second),
	})
	req.NoError(err)
	req.Empty(actions)

	record, err := repositories.NewUserRecordStore(db).GetOrCreate(42, "Alice")
	req.NoError(err)
	req.Zero(record.Warnings)
	req.Len(record.SpamActivity, 1)
}

func Test_Scenario_ThirdOffenseRemovesTheUser(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	pipeline := newPipeline(t, db)

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	send := func(text string) []domain.Action {
		actions, err := pipeline.Process(domain.InboundMessage{
			ChatID: 7, MessageID: 1, UserID: 99, FirstName: "Bob", Text: text, At: at,
		})
		req.NoError(err)
		at = at.Add(time.Minute)
		return actions
	}

	actions := send("this is a scam")
	req.Equal([]domain.Action{
		domain.SendMessage{ChatID: 7, Text: "Bob, WARNING! Total warnings: 1"},
	}, actions)

	actions = send("this is a scam")
	req.Equal([]domain.Action{
		domain.SendMessage{ChatID: 7, Text: "Bob, WARNING! Total warnings: 2"},
	}, actions)

	actions = send("this is a scam")
	req.Equal([]domain.Action{
		domain.RemoveMember{ChatID: 7, UserID: 99},
		domain.SendMessage{ChatID: 7, Text: "Bob has been removed for repeated violations."},
	}, actions)

	record, err := repositories.NewUserRecordStore(db).GetOrCreate(99, "Bob")
	req.NoError(err)
	req.Equal(3, record.Warnings)
}

func Test_Scenario_JoinNoticeOnlyDeletes(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	pipeline := newPipeline(t, db)

	actions, err := pipeline.Process(domain.InboundMessage{
		ChatID: 7, MessageID: 555, UserID: 12, FirstName: "Carol",
		NewMember: true, At: time.Now(),
	})
	req.NoError(err)
	req.Equal([]domain.Action{domain.DeleteMessage{ChatID: 7, MessageID: 555}}, actions)

	// No record was created for the joining user
	found := false
	err = db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte("user:12"))
		if err == nil {
			found = true
			return nil
		}
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
	req.NoError(err)
	req.False(found)
}

func Test_Scenario_EndToEndThroughTheWorkers(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	pipeline := newPipeline(t, db)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 1. Create a channel to wait for a signal at the end of process
	done := make(chan struct{})
	transportMock := mocks.NewMockITransport(ctrl)
	transportMock.EXPECT().
		SendMessage(gomock.Any(), int64(7), "Dave, WARNING! Total warnings: 1").
		Do(func(context.Context, int64, string) {
			close(done) // Signaling the warning reached the transport
		}).
		Return(nil).
		Times(1)

	monitor := observability.NewMonitor()
	log := slog.Default()
	messages := make(chan domain.InboundMessage, 8)
	actions := make(chan domain.Action, 8)

	sup := workers.NewSupervisor(log)
	sup.Add(
		workers.NewModerationWorker(pipeline, messages, actions, monitor, log),
		workers.NewTransportWorker(transportMock, actions, monitor, log),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sup.Run(ctx)

	messages <- domain.InboundMessage{
		ChatID: 7, MessageID: 9, UserID: 31, FirstName: "Dave",
		Text: "buy this fake watch", At: time.Now(),
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.Fail("Expected the warning to flow from message to transport")
	}
	req.Equal(uint64(1), monitor.Snapshot().MessagesSeen)
}
