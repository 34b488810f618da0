package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReply_Valid(t *testing.T) {
	category, response, err := ParseReply(`{"category":"billing","response":"ok"}`)
	require.NoError(t, err)
	assert.Equal(t, "billing", category)
	assert.Equal(t, "ok", response)
}

func TestParseReply_CategoryNotCheckedAgainstVocabulary(t *testing.T) {
	// The parser returns values verbatim; vocabulary enforcement happens
	// at the store boundary, not here.
	category, _, err := ParseReply(`{"category":"weather","response":"sunny"}`)
	require.NoError(t, err)
	assert.Equal(t, "weather", category)
}

func TestParseReply_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"not json", "I think this is a billing issue", ErrInvalidFormat},
		{"json array", `["billing","ok"]`, ErrInvalidFormat},
		{"missing category", `{"response":"ok"}`, ErrMissingField},
		{"missing response", `{"category":"billing"}`, ErrMissingField},
		{"empty category", `{"category":"","response":"ok"}`, ErrEmptyField},
		{"empty response", `{"category":"billing","response":""}`, ErrEmptyField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseReply(tt.raw)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
