package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachdesk/triage-go/classifier"
	"github.com/coachdesk/triage-go/models"
	"github.com/coachdesk/triage-go/repositories"
	"github.com/coachdesk/triage-go/repositories/mock_repositories"
)

// --------------------- Setup ---------------------

type stubClassifier struct {
	result  classifier.Result
	err     error
	failOn  map[string]error
	model   string
	elapsed time.Duration
}

func (s *stubClassifier) Classify(ctx context.Context, text string) (classifier.Result, error) {
	if err, ok := s.failOn[text]; ok {
		return classifier.Result{}, err
	}
	if s.err != nil {
		return classifier.Result{}, s.err
	}
	return s.result, nil
}

func (s *stubClassifier) Model() string {
	if s.model == "" {
		return "ft:gpt-3.5-turbo:coachdesk::test"
	}
	return s.model
}

func setupTicketServiceMocks(t *testing.T, clf Classifier) (*TicketService, *mock_repositories.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock_repositories.NewMockTicketRepo(ctrl)
	repos := &repositories.Repos{
		Ticket: mockTicket,
	}
	svc := NewTicketService(repos, clf)
	return svc, mockTicket
}

// fixNow makes the service clock advance by a fixed step per call, so
// processing time is deterministic.
func fixNow(svc *TicketService, step time.Duration) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	svc.now = func() time.Time {
		t := base.Add(time.Duration(calls) * step)
		calls++
		return t
	}
}

// --------------------- ClassifyAndRespond ---------------------

func TestClassifyAndRespond_Success(t *testing.T) {
	clf := &stubClassifier{result: classifier.Result{Category: "billing", Response: "Sorry about the double charge."}}
	svc, mockTicket := setupTicketServiceMocks(t, clf)
	fixNow(svc, 150*time.Millisecond)

	mockTicket.EXPECT().Create(gomock.Any()).Return(nil)

	record, err := svc.ClassifyAndRespond(context.Background(), "I was charged twice for this months membership.")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryBilling, record.PredictedCategory)
	assert.Equal(t, "Sorry about the double charge.", record.PredictedResponse)
	assert.Equal(t, "ft:gpt-3.5-turbo:coachdesk::test", record.ModelUsed)
	assert.Equal(t, 150.0, record.ProcessingTimeMs)
	assert.Nil(t, record.ConfidenceScore)
}

func TestClassifyAndRespond_ClassifierFailure(t *testing.T) {
	cause := &classifier.ClassifyError{Kind: classifier.KindRateLimited, Attempts: 3, Err: errors.New("429")}
	svc, _ := setupTicketServiceMocks(t, &stubClassifier{err: cause})

	_, err := svc.ClassifyAndRespond(context.Background(), "I was charged twice for this months membership.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClassification)

	// The wrap must keep the kind reachable for the HTTP layer.
	var cerr *classifier.ClassifyError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, classifier.KindRateLimited, cerr.Kind)
}

func TestClassifyAndRespond_PersistFailure(t *testing.T) {
	clf := &stubClassifier{result: classifier.Result{Category: "billing", Response: "ok then"}}
	svc, mockTicket := setupTicketServiceMocks(t, clf)

	mockTicket.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed"))

	_, err := svc.ClassifyAndRespond(context.Background(), "I was charged twice for this months membership.")
	assert.Error(t, err)
}

// --------------------- ClassifyBatch ---------------------

func TestClassifyBatch_SkipsFailedItems(t *testing.T) {
	clf := &stubClassifier{
		result: classifier.Result{Category: "billing", Response: "ok then"},
		failOn: map[string]error{
			"second ticket text here": errors.New("boom"),
		},
	}
	svc, mockTicket := setupTicketServiceMocks(t, clf)

	mockTicket.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	texts := []string{"first ticket text here", "second ticket text here", "third ticket text here"}
	records := svc.ClassifyBatch(context.Background(), texts)

	require.Len(t, records, 2)
	assert.Equal(t, "first ticket text here", records[0].TicketText)
	assert.Equal(t, "third ticket text here", records[1].TicketText)
}

// --------------------- GetStatistics ---------------------

func TestGetStatistics_Aggregates(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t, &stubClassifier{})

	records := []models.TicketRecord{
		{PredictedCategory: models.CategoryBilling, ProcessingTimeMs: 100},
		{PredictedCategory: models.CategoryBilling, ProcessingTimeMs: 200},
		{PredictedCategory: models.CategoryTechnical, ProcessingTimeMs: 150},
	}
	mockTicket.EXPECT().FindSince(gomock.Any()).Return(records, nil)

	stats, err := svc.GetStatistics(7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.ByCategory[models.CategoryBilling])
	assert.Equal(t, int64(1), stats.ByCategory[models.CategoryTechnical])
	assert.Equal(t, 150.0, stats.AvgProcessingTime)
	assert.Equal(t, 7, stats.PeriodDays)
}

func TestGetStatistics_EmptyWindow(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t, &stubClassifier{})

	mockTicket.EXPECT().FindSince(gomock.Any()).Return(nil, nil)

	stats, err := svc.GetStatistics(7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
	assert.Empty(t, stats.ByCategory)
	assert.Equal(t, 0.0, stats.AvgProcessingTime)
}

func TestGetStatistics_DefaultsWindow(t *testing.T) {
	svc, mockTicket := setupTicketServiceMocks(t, &stubClassifier{})
	fixNow(svc, 0)

	var cutoff time.Time
	mockTicket.EXPECT().FindSince(gomock.Any()).DoAndReturn(func(c time.Time) ([]models.TicketRecord, error) {
		cutoff = c
		return nil, nil
	})

	stats, err := svc.GetStatistics(0)
	require.NoError(t, err)
	assert.Equal(t, DefaultStatisticsDays, stats.PeriodDays)

	expected := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -DefaultStatisticsDays)
	assert.Equal(t, expected, cutoff)
}
