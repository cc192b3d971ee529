//go:generate go run go.uber.org/mock/mockgen -source=broadcast.go -destination=../mocks/mock_broadcast_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"groupwarden/contract"
	"groupwarden/domain"
	"groupwarden/errors"

	"github.com/samber/lo"
)

const (
	broadcastPrefix  = "🔊 Update:\n"
	permissionDenied = "❌ You don't have permission to send updates."
)

type IBroadcastService interface {
	HandleUpdate(ctx context.Context, cmd domain.Command) (domain.Action, error)
}

// BroadcastService handles the /update admin command. Authorization is
// delegated to the chat platform: only current chat administrators may
// broadcast; everyone else gets a denial reply instead of silence.
type BroadcastService struct {
	transport contract.ITransport
	log       *slog.Logger
}

func NewBroadcastService(transport contract.ITransport, log *slog.Logger) IBroadcastService {
	return &BroadcastService{transport: transport, log: log}
}

func (s *BroadcastService) HandleUpdate(ctx context.Context, cmd domain.Command) (domain.Action, error) {
	admins, err := s.transport.ListAdmins(ctx, cmd.ChatID)
	if err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}

	if !lo.Contains(admins, cmd.SenderID) {
		s.log.Info("Broadcast refused", "chat_id", cmd.ChatID, "sender_id", cmd.SenderID,
			"reason", errors.ErrNotAdmin)
		return domain.SendMessage{ChatID: cmd.ChatID, Text: permissionDenied}, nil
	}

	return domain.SendMessage{ChatID: cmd.ChatID, Text: broadcastPrefix + cmd.Args}, nil
}
