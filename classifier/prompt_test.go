package classifier

import (
	"strings"
	"testing"

	"github.com/coachdesk/triage-go/models"
	"github.com/stretchr/testify/assert"
)

func TestSystemPrompt_Deterministic(t *testing.T) {
	assert.Equal(t, SystemPrompt(), SystemPrompt())
}

func TestSystemPrompt_ListsAllCategories(t *testing.T) {
	prompt := SystemPrompt()
	for _, c := range models.Categories() {
		assert.Contains(t, prompt, string(c))
	}
}

func TestSystemPrompt_StatesOutputContract(t *testing.T) {
	prompt := SystemPrompt()

	assert.Contains(t, prompt, `"category"`)
	assert.Contains(t, prompt, `"response"`)
	assert.Contains(t, prompt, "exactly two keys")
	// Worked example in the required shape.
	assert.True(t, strings.Contains(prompt, `{"category": "billing"`))
}
