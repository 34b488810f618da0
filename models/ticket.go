package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is one of the ten fixed ticket intent labels the fine-tuned
// model was trained on.
type Category string

const (
	CategoryAccount      Category = "account"
	CategoryBilling      Category = "billing"
	CategoryCancellation Category = "cancellation"
	CategoryCoach        Category = "coach"
	CategoryContent      Category = "content"
	CategoryFeedback     Category = "feedback"
	CategoryMembership   Category = "membership"
	CategoryPassword     Category = "password"
	CategoryScheduling   Category = "scheduling"
	CategoryTechnical    Category = "technical"
)

// Categories lists the full vocabulary in sorted order.
func Categories() []Category {
	return []Category{
		CategoryAccount,
		CategoryBilling,
		CategoryCancellation,
		CategoryCoach,
		CategoryContent,
		CategoryFeedback,
		CategoryMembership,
		CategoryPassword,
		CategoryScheduling,
		CategoryTechnical,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// TicketRecord is the persisted outcome of one classification call.
// Records are insert-only: no updates or deletes after creation.
type TicketRecord struct {
	ID                string    `json:"id" gorm:"primaryKey;size:36"`
	TicketText        string    `json:"ticket_text" gorm:"type:text;not null"`
	PredictedCategory Category  `json:"category" gorm:"size:32;not null;index"`
	PredictedResponse string    `json:"response" gorm:"type:text;not null"`
	ConfidenceScore   *float64  `json:"confidence_score"`
	ProcessingTimeMs  float64   `json:"processing_time_ms"`
	ModelUsed         string    `json:"model_used" gorm:"size:128"`
	CreatedAt         time.Time `json:"created_at" gorm:"index"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (TicketRecord) TableName() string {
	return "ticket_records"
}

// BeforeCreate assigns the record id and rejects categories outside the
// vocabulary, so an invalid category can never reach the table.
func (t *TicketRecord) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if !t.PredictedCategory.Valid() {
		return fmt.Errorf("ticket record: unknown category %q", t.PredictedCategory)
	}
	return nil
}
