package moderation

import (
	"fmt"
	"log/slog"
	"sync"

	"groupwarden/domain"
	"groupwarden/observability"
	"groupwarden/repositories"

	"github.com/abadojack/whatlanggo"
)

const (
	spamWarningText    = "%s, KINDLY STOP SPAMMING PLEASE!"
	contentWarningText = "%s, WARNING! Total warnings: %d"
	removalNoticeText  = "%s has been removed for repeated violations."
)

// Pipeline evaluates one inbound message and produces the ordered actions
// the transport has to execute. It persists the final record state exactly
// once per message; a storage failure aborts the whole evaluation and leaves
// no partial state behind.
type Pipeline struct {
	users     repositories.IUserRecordStore
	spam      SpamWindow
	escalator Escalator
	monitor   *observability.Monitor
	log       *slog.Logger

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewPipeline(
	users repositories.IUserRecordStore,
	spam SpamWindow,
	escalator Escalator,
	monitor *observability.Monitor,
	log *slog.Logger,
) *Pipeline {
	return &Pipeline{
		users:     users,
		spam:      spam,
		escalator: escalator,
		monitor:   monitor,
		log:       log,
		locks:     make(map[int64]*sync.Mutex),
	}
}

// Process runs the full evaluation for one message event.
//
// Join notices bypass the engine entirely: the only outcome is deleting the
// notice, no user record is touched. For content messages the spam check
// runs first, then the content check on the possibly mutated record, then a
// single save. Evaluations for the same user are serialized through a
// per-user lock so two concurrent messages cannot overwrite each other's
// counters; different users proceed in parallel.
func (p *Pipeline) Process(msg domain.InboundMessage) ([]domain.Action, error) {
	if msg.NewMember {
		p.monitor.IncrJoinsDeleted()
		return []domain.Action{
			domain.DeleteMessage{ChatID: msg.ChatID, MessageID: msg.MessageID},
		}, nil
	}

	lock := p.userLock(msg.UserID)
	lock.Lock()
	defer lock.Unlock()

	record, err := p.users.GetOrCreate(msg.UserID, msg.FirstName)
	if err != nil {
		return nil, err
	}

	var actions []domain.Action

	if p.spam.Evaluate(&record, msg.At) {
		p.monitor.IncrSpamWarnings()
		actions = append(actions, domain.SendMessage{
			ChatID: msg.ChatID,
			Text:   fmt.Sprintf(spamWarningText, msg.FirstName),
		})
	}

	switch escalation := p.escalator.Evaluate(&record, msg.Text); escalation.Verdict {
	case VerdictWarn:
		p.monitor.IncrContentWarnings()
		p.logViolation(msg, escalation.Warnings)
		actions = append(actions, domain.SendMessage{
			ChatID: msg.ChatID,
			Text:   fmt.Sprintf(contentWarningText, msg.FirstName, escalation.Warnings),
		})
	case VerdictRemove:
		p.monitor.IncrRemovals()
		p.logViolation(msg, escalation.Warnings)
		actions = append(actions,
			domain.RemoveMember{ChatID: msg.ChatID, UserID: msg.UserID},
			domain.SendMessage{
				ChatID: msg.ChatID,
				Text:   fmt.Sprintf(removalNoticeText, msg.FirstName),
			},
		)
	}

	if err := p.users.Save(record); err != nil {
		return nil, err
	}
	return actions, nil
}

// logViolation tags the offending message with its detected language.
// Purely informational: detection itself stays exact substring matching.
func (p *Pipeline) logViolation(msg domain.InboundMessage, warnings int) {
	info := whatlanggo.Detect(msg.Text)
	p.log.Warn("Content violation",
		"user_id", msg.UserID,
		"first_name", msg.FirstName,
		"warnings", warnings,
		"lang", info.Lang.Iso6391())
}

func (p *Pipeline) userLock(userID int64) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock := p.locks[userID]
	if lock == nil {
		lock = &sync.Mutex{}
		p.locks[userID] = lock
	}
	return lock
}
