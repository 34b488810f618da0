package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/coachdesk/triage-go/classifier"
	"github.com/coachdesk/triage-go/dto"
	"github.com/coachdesk/triage-go/models"
	"github.com/coachdesk/triage-go/repositories"
)

const (
	DefaultStatisticsDays = 7
	TicketsPerPage        = 20
)

// ErrClassification marks a domain-level classification failure. The
// classifier's failure kind stays reachable through the chain for the
// HTTP layer.
var ErrClassification = errors.New("classification failed")

// Classifier is the slice of classifier.Client the service depends on.
type Classifier interface {
	Classify(ctx context.Context, ticketText string) (classifier.Result, error)
	Model() string
}

type TicketService struct {
	repo repositories.TicketRepo
	clf  Classifier
	now  func() time.Time
}

func NewTicketService(repos *repositories.Repos, clf Classifier) *TicketService {
	return &TicketService{
		repo: repos.Ticket,
		clf:  clf,
		now:  time.Now,
	}
}

// ClassifyAndRespond runs one classification, measures wall-clock latency
// and persists the outcome. The returned record carries the model id that
// was active at classification time.
func (s *TicketService) ClassifyAndRespond(ctx context.Context, ticketText string) (*models.TicketRecord, error) {
	start := s.now()
	result, err := s.clf.Classify(ctx, ticketText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassification, err)
	}
	elapsed := s.now().Sub(start)

	record := &models.TicketRecord{
		TicketText:        ticketText,
		PredictedCategory: models.Category(result.Category),
		PredictedResponse: result.Response,
		ProcessingTimeMs:  round2(float64(elapsed.Microseconds()) / 1000),
		ModelUsed:         s.clf.Model(),
	}
	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("persist ticket record: %w", err)
	}
	return record, nil
}

// ClassifyBatch classifies each text independently in order. A failing
// item is logged and skipped, so callers get partial results rather than
// an aborted batch. Sequential on purpose: no parallel fan-out.
func (s *TicketService) ClassifyBatch(ctx context.Context, ticketTexts []string) []*models.TicketRecord {
	records := make([]*models.TicketRecord, 0, len(ticketTexts))
	for i, text := range ticketTexts {
		record, err := s.ClassifyAndRespond(ctx, text)
		if err != nil {
			log.Printf("batch item %d skipped: %v", i, err)
			continue
		}
		records = append(records, record)
	}
	return records
}

func (s *TicketService) GetTicket(id string) (models.TicketRecord, error) {
	return s.repo.FindByID(id)
}

func (s *TicketService) ListTickets(page int) ([]models.TicketRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.repo.ListPaging(page, TicketsPerPage)
}

// GetStatistics aggregates records created within the trailing window of
// `days` days: total count, per-category counts for categories that
// occurred, and mean processing time (0 when the window is empty).
func (s *TicketService) GetStatistics(days int) (dto.Statistics, error) {
	if days <= 0 {
		days = DefaultStatisticsDays
	}

	cutoff := s.now().AddDate(0, 0, -days)
	records, err := s.repo.FindSince(cutoff)
	if err != nil {
		return dto.Statistics{}, fmt.Errorf("load statistics window: %w", err)
	}

	stats := dto.Statistics{
		Total:      int64(len(records)),
		ByCategory: map[models.Category]int64{},
		PeriodDays: days,
	}

	var totalMs float64
	for _, r := range records {
		stats.ByCategory[r.PredictedCategory]++
		totalMs += r.ProcessingTimeMs
	}
	if len(records) > 0 {
		stats.AvgProcessingTime = round2(totalMs / float64(len(records)))
	}
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
