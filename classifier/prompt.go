package classifier

import (
	"fmt"
	"strings"

	"github.com/coachdesk/triage-go/models"
)

// SystemPrompt returns the fixed classification instruction. The wording
// must stay in sync with the prompt used during fine-tuning, so the model
// sees the same instruction at inference time as it did in training.
func SystemPrompt() string {
	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}

	return fmt.Sprintf(
		"You are a support ticket classifier for a coaching company. "+
			"Classify tickets into one of these categories: %s. "+
			"Generate a polite, concise, and helpful response addressing the ticket. "+
			"Always respond in valid JSON format with exactly two keys: "+
			`"category" (one of the categories above) and "response" (your helpful reply). `+
			`Example: {"category": "billing", "response": "I apologize for the issue..."}`,
		strings.Join(names, ", "),
	)
}
