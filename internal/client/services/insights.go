package services

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/logging"
)

const insightsEndpoint = "/api/v1/insights"

// insufficientDataMarkers are the backend texts of a trends request made
// without enough history. Matched case-insensitively.
var insufficientDataMarkers = []string{"sequence", "no elements", "not enough data"}

// IsInsufficientData reports whether err is the 500 the backend answers when
// there are too few check-ins to compute an insight.
func IsInsufficientData(err error) bool {
	apiErr, ok := client.AsAPIError(err)
	if !ok || apiErr.StatusCode != http.StatusInternalServerError {
		return false
	}
	texts := append([]string{apiErr.Message}, apiErr.Errors...)
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, m := range insufficientDataMarkers {
			if strings.Contains(lower, m) {
				return true
			}
		}
	}
	return false
}

type InsightService interface {
	Trends(ctx context.Context, period string) *models.TrendAnalysis
	Recommendations(ctx context.Context) []models.Recommendation
	Compare(ctx context.Context, period1, period2 string) *models.ComparisonResult
	Streak(ctx context.Context) models.Streak
}

type insightService struct {
	client client.Client
	log    logging.Logger
	dev    bool
}

// NewInsightService builds the insights façade. dev enables logging of
// connectivity and unexpected trend failures.
func NewInsightService(c client.Client, log logging.Logger, dev bool) InsightService {
	return &insightService{client: c, log: log, dev: dev}
}

// Trends returns nil on any failure. Missing history is expected for new
// users and only logged at debug level.
func (s *insightService) Trends(ctx context.Context, period string) *models.TrendAnalysis {
	if period == "" {
		period = models.PeriodMonth
	}
	q := url.Values{}
	q.Set("period", period)

	trend, err := fetch(ctx, s.client, get(withQuery(insightsEndpoint+"/trends", q)),
		func(t models.TrendAnalysis) bool { return t.Trend != "" })
	if err == nil {
		return &trend
	}

	apiErr, _ := client.AsAPIError(err)
	switch {
	case IsInsufficientData(err):
		s.log.Debug(ctx, "not enough data for trends", "period", period)
	case apiErr != nil && apiErr.StatusCode == http.StatusInternalServerError:
		s.log.Warn(ctx, "trends failed", "period", period, "error", err)
	case s.dev:
		s.log.Warn(ctx, "trends unavailable", "period", period, "error", err)
	}
	return nil
}

func (s *insightService) Recommendations(ctx context.Context) []models.Recommendation {
	list, err := fetchList[models.Recommendation](ctx, s.client, get(insightsEndpoint+"/recommendations"))
	if err != nil {
		s.log.Warn(ctx, "recommendations failed", "error", err)
		return []models.Recommendation{}
	}
	return list
}

func (s *insightService) Compare(ctx context.Context, period1, period2 string) *models.ComparisonResult {
	q := url.Values{}
	q.Set("period1", period1)
	q.Set("period2", period2)

	result, err := fetch(ctx, s.client, get(withQuery(insightsEndpoint+"/compare", q)),
		func(c models.ComparisonResult) bool { return c.Period1 != nil && c.Period2 != nil })
	if err != nil {
		s.log.Warn(ctx, "compare periods failed", "period1", period1, "period2", period2, "error", err)
		return nil
	}
	return &result
}

// Streak falls back to an empty streak.
func (s *insightService) Streak(ctx context.Context) models.Streak {
	var streak struct {
		Current         *int    `json:"current"`
		Longest         int     `json:"longest"`
		LastCheckinDate *string `json:"lastCheckinDate"`
	}
	if err := s.client.Do(ctx, get(insightsEndpoint+"/streak"), &streak); err != nil {
		s.log.Warn(ctx, "streak failed", "error", err)
		return models.Streak{}
	}
	if streak.Current == nil {
		return models.Streak{}
	}
	return models.Streak{Current: *streak.Current, Longest: streak.Longest, LastCheckinDate: streak.LastCheckinDate}
}
