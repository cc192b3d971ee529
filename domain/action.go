package domain

// Action is an effect the engine asks the transport collaborator to execute.
// The engine only queues actions; execution, ordering within a chat and
// retry policy belong to the transport side.
type Action interface {
	Chat() int64
}

type SendMessage struct {
	ChatID int64
	Text   string
}

func (a SendMessage) Chat() int64 { return a.ChatID }

type RemoveMember struct {
	ChatID int64
	UserID int64
}

func (a RemoveMember) Chat() int64 { return a.ChatID }

type DeleteMessage struct {
	ChatID    int64
	MessageID int
}

func (a DeleteMessage) Chat() int64 { return a.ChatID }
