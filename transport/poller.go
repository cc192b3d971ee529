package transport

import (
	"context"
	"log/slog"

	"groupwarden/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Poller long-polls the Bot API and fans updates out to the engine: slash
// commands go to the command channel, everything else (including join
// notices) to the moderation channel.
type Poller struct {
	bot         *tgbotapi.BotAPI
	pollTimeout int
	messages    chan domain.InboundMessage
	commands    chan domain.Command
	log         *slog.Logger
}

func NewPoller(
	telegram *Telegram,
	pollTimeout int,
	messages chan domain.InboundMessage,
	commands chan domain.Command,
	log *slog.Logger,
) *Poller {
	return &Poller{
		bot:         telegram.Bot(),
		pollTimeout: pollTimeout,
		messages:    messages,
		commands:    commands,
		log:         log,
	}
}

func (p *Poller) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = p.pollTimeout
	updates := p.bot.GetUpdatesChan(cfg)
	defer p.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			p.log.Debug("Stopping poller")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				p.log.Debug("Updates channel closed")
				return nil
			}
			if update.Message == nil {
				continue
			}
			if err := p.route(ctx, update.Message); err != nil {
				return err
			}
		}
	}
}

func (p *Poller) route(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.Chat == nil || msg.From == nil {
		return nil
	}

	if msg.IsCommand() {
		cmd := domain.Command{
			ChatID:   msg.Chat.ID,
			SenderID: msg.From.ID,
			Name:     msg.Command(),
			Args:     msg.CommandArguments(),
			At:       msg.Time(),
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case p.commands <- cmd:
		}
		return nil
	}

	inbound := domain.InboundMessage{
		ChatID:    msg.Chat.ID,
		MessageID: msg.MessageID,
		UserID:    msg.From.ID,
		FirstName: msg.From.FirstName,
		Text:      msg.Text,
		NewMember: len(msg.NewChatMembers) > 0,
		At:        msg.Time(),
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.messages <- inbound:
	}
	return nil
}
