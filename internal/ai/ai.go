// Package ai provides LLM integration for generating title insights.
package ai

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when a provider answers with no content.
var ErrEmptyResponse = errors.New("ai: empty response")

// Provider is an LLM backend.
type Provider interface {
	// Chat sends the conversation and returns the model's reply.
	Chat(ctx context.Context, req Request) (*Response, error)
}

// Message is a chat message.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Request is one chat completion request.
type Request struct {
	Messages  []Message
	JSON      bool // ask for a JSON object reply
	MaxTokens int
}

// Response is an LLM response.
type Response struct {
	Content string `json:"content,omitempty"`
}

// splitSystem returns the concatenated system messages and the rest.
func splitSystem(messages []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
