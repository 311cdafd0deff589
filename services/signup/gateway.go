package signup

import "context"

// Session identifies one user's live interaction with the chat transport.
// It carries everything the workflow needs to address replies; the transport
// layer fills it in from the incoming update.
type Session struct {
	UserID    int64
	ChatID    int64
	MessageID int // message holding the slot keyboard, 0 before the first render

	// CallbackID is the pending callback-query ID when the current event is a
	// button tap; Notify acknowledgements are addressed to it.
	CallbackID string

	Name   string // display name as reported by the transport
	Handle string // public username, may be empty
}

// ChatGateway is the narrow transport contract the workflow and the digest
// job publish through. The production implementation wraps the Telegram Bot
// API; tests substitute a recording stub.
type ChatGateway interface {
	// SendKeyboard posts a new message with the slot keyboard.
	SendKeyboard(ctx context.Context, chatID int64, text string, slots []string, selected map[string]bool) error
	// UpdateKeyboard re-renders the keyboard on an existing message.
	UpdateKeyboard(ctx context.Context, chatID int64, messageID int, slots []string, selected map[string]bool) error
	// EditText replaces an existing message's text, dropping its keyboard.
	EditText(ctx context.Context, chatID int64, messageID int, text string) error
	// Notify sends an ephemeral acknowledgement to a single user. Alert makes
	// it a blocking popup instead of a toast.
	Notify(ctx context.Context, callbackID, text string, alert bool) error
	// Publish broadcasts to a fixed destination such as the company channel.
	Publish(ctx context.Context, destination, text string) error
}
