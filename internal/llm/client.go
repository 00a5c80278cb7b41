// Package llm generates assistant replies for the chat surface.
package llm

import "context"

// Message roles on the completion request.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn handed to the completion backend.
type Message struct {
	Role    string
	Content string
}

// Client produces the next assistant reply for a conversation.
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
