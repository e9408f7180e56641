package llm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyAPIKey is returned by providers constructed without a credential.
	ErrEmptyAPIKey = errors.New("llm api key is empty")
	// ErrUnauthorized is wrapped by providers when the credential is rejected.
	ErrUnauthorized = errors.New("llm credential rejected")
	// ErrEmptyReply is returned when the provider answered without any content.
	ErrEmptyReply = errors.New("llm returned no content")
)

// Prompt is one system+user exchange.
type Prompt struct {
	System string
	User   string
	// JSONObject asks the provider to constrain its reply to a single JSON object.
	JSONObject  bool
	Temperature float32
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
type ChatModel interface {
	Ask(ctx context.Context, p Prompt) (string, error)
	Name() string
}

// StatusError carries a non-2xx provider response.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s http %d: %s", e.Provider, e.Code, e.Body)
}

// Is makes 401/403 responses match ErrUnauthorized.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && (e.Code == 401 || e.Code == 403)
}
