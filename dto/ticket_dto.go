package dto

import "github.com/coachdesk/triage-go/models"

type ClassifyTicketDTO struct {
	TicketText string `json:"ticket_text" binding:"required,min=10,max=2000"`
}

type ClassifyBatchDTO struct {
	TicketTexts []string `json:"ticket_texts" binding:"required,min=1,max=20,dive,min=10,max=2000"`
}

// Statistics aggregates classification outcomes over a trailing window.
// ByCategory only carries categories that actually occurred.
type Statistics struct {
	Total             int64                     `json:"total"`
	ByCategory        map[models.Category]int64 `json:"by_category"`
	AvgProcessingTime float64                   `json:"avg_processing_time"`
	PeriodDays        int                       `json:"period_days"`
}
