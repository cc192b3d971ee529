// Package transport adapts the Telegram Bot API to the engine's collaborator
// interfaces. Nothing in here decides anything: it converts updates into
// domain events and executes the actions the engine queued.
package transport

import (
	"context"
	"fmt"

	"groupwarden/contract"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram implements contract.ITransport over a bot token. The Bot API has
// no context support; cancellation is handled by the workers around it.
type Telegram struct {
	bot *tgbotapi.BotAPI
}

func NewTelegram(token string) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram login: %w", err)
	}
	return &Telegram{bot: bot}, nil
}

func (t *Telegram) Bot() *tgbotapi.BotAPI {
	return t.bot
}

func (t *Telegram) SendMessage(_ context.Context, chatID int64, text string) error {
	_, err := t.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (t *Telegram) RemoveMember(_ context.Context, chatID, userID int64) error {
	_, err := t.bot.Request(tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
	})
	return err
}

func (t *Telegram) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	_, err := t.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

func (t *Telegram) ListAdmins(_ context.Context, chatID int64) ([]int64, error) {
	members, err := t.bot.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, err
	}

	admins := make([]int64, 0, len(members))
	for _, member := range members {
		if member.User != nil {
			admins = append(admins, member.User.ID)
		}
	}
	return admins, nil
}

var _ contract.ITransport = (*Telegram)(nil)
