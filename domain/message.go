// Package domain contains the core concepts of the moderation engine.
// Inbound messages are immutable snapshots of what the transport delivered.
package domain

import "time"

// InboundMessage is a single message event as seen by the moderation engine.
// Text may be empty (stickers, media, join notices).
type InboundMessage struct {
	ChatID    int64
	MessageID int
	UserID    int64
	FirstName string
	Text      string
	NewMember bool
	At        time.Time
}

// Command is a slash command addressed to the bot rather than to the group.
// Commands never enter the moderation pipeline.
type Command struct {
	ChatID   int64
	SenderID int64
	Name     string
	Args     string
	At       time.Time
}
