package classifier

import (
	"context"
	"errors"
	"log"
	"time"
)

// ChatCompleter issues one chat-completion request and returns the text
// of the first choice. Implementations must be safe for concurrent use.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config carries the classification settings fixed at construction.
// A Temperature of 0 means unset and is replaced by DefaultTemperature:
// the classifier never runs fully greedy.
type Config struct {
	Model       string
	MaxRetries  int
	Temperature float64
	MaxTokens   int
}

const (
	DefaultMaxRetries  = 3
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 500
)

func (c *Config) applyDefaults() {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.Temperature == 0 {
		c.Temperature = DefaultTemperature
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
}

// Result is the validated outcome of one classification.
type Result struct {
	Category string
	Response string
}

// Client hides transient endpoint failures behind a bounded retry loop.
// Transport errors and malformed replies are treated identically: both
// mean the attempt produced no usable answer, and the fine-tuned model
// does occasionally emit broken JSON, so retrying beats failing outright.
type Client struct {
	completer ChatCompleter
	cfg       Config
	sleep     func(time.Duration)
}

// New returns a classification client. An empty model id is a
// configuration error and is rejected here, not at call time.
func New(completer ChatCompleter, cfg Config) (*Client, error) {
	if cfg.Model == "" {
		return nil, errors.New("classifier: model id is required")
	}
	cfg.applyDefaults()
	return &Client{
		completer: completer,
		cfg:       cfg,
		sleep:     time.Sleep,
	}, nil
}

// Model reports the configured model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Classify runs one logical classification of ticket text, making up to
// MaxRetries attempts with exponential backoff (1s, 2s, 4s, ...) between
// failed attempts. On exhaustion it returns a *ClassifyError wrapping the
// last error observed.
func (c *Client) Classify(ctx context.Context, ticketText string) (Result, error) {
	prompt := SystemPrompt()

	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		raw, err := c.completer.Complete(ctx, prompt, ticketText)
		if err == nil {
			category, response, parseErr := ParseReply(raw)
			if parseErr == nil {
				return Result{Category: category, Response: response}, nil
			}
			err = parseErr
		}

		lastErr = err
		if attempt < c.cfg.MaxRetries {
			delay := time.Duration(1<<(attempt-1)) * time.Second
			log.Printf("classify attempt %d/%d failed: %v (retrying in %s)", attempt, c.cfg.MaxRetries, err, delay)
			c.sleep(delay)
		}
	}

	return Result{}, &ClassifyError{
		Kind:     kindOf(lastErr),
		Attempts: c.cfg.MaxRetries,
		Err:      lastErr,
	}
}
