package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat reports a model reply that is not a JSON object.
	ErrInvalidFormat = errors.New("reply is not a valid JSON object")
	// ErrMissingField reports a reply lacking a required key.
	ErrMissingField = errors.New("reply is missing a required field")
	// ErrEmptyField reports a required key whose value is empty.
	ErrEmptyField = errors.New("reply field is empty")
)

type modelReply struct {
	Category *string `json:"category"`
	Response *string `json:"response"`
}

// ParseReply extracts the {category, response} pair from raw model output.
// The category is returned verbatim: membership in the vocabulary is not
// checked here, the fine-tuned model is trusted to stay on label and the
// store rejects strays at insert time.
func ParseReply(raw string) (category, response string, err error) {
	var reply modelReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if reply.Category == nil {
		return "", "", fmt.Errorf("%w: category", ErrMissingField)
	}
	if reply.Response == nil {
		return "", "", fmt.Errorf("%w: response", ErrMissingField)
	}
	if *reply.Category == "" {
		return "", "", fmt.Errorf("%w: category", ErrEmptyField)
	}
	if *reply.Response == "" {
		return "", "", fmt.Errorf("%w: response", ErrEmptyField)
	}
	return *reply.Category, *reply.Response, nil
}
