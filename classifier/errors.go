// Package classifier implements the ticket classification pipeline: a
// deterministic system prompt, strict parsing of the model's JSON reply,
// and a bounded retry loop around the chat-completions call.
package classifier

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/openai/openai-go"
)

// Kind is a closed enumeration of terminal classification failure causes.
// The HTTP layer maps kinds to status codes; nothing inspects message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindRateLimited
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// ClassifyError is the terminal failure returned once every attempt has
// been exhausted. It carries the attempt count and wraps the last error
// observed, whether transport-level or a parse failure.
type ClassifyError struct {
	Kind     Kind
	Attempts int
	Err      error
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("classification failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ClassifyError) Unwrap() error {
	return e.Err
}

// kindOf derives the failure kind structurally from the underlying error.
func kindOf(err error) Kind {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401:
			return KindAuth
		case 429:
			return KindRateLimited
		case 504:
			return KindTimeout
		}
		return KindUnknown
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindUnknown
}
