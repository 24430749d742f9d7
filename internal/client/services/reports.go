package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/logging"
)

const reportsEndpoint = "/api/v1/reports"

type ReportService interface {
	Weekly(ctx context.Context, weekStart, userID string) *models.WeeklyReport
	Monthly(ctx context.Context, month, userID string) *models.MonthlyReport
	Custom(ctx context.Context, req models.CustomReportRequest) *models.CustomReport
}

type reportService struct {
	client client.Client
	log    logging.Logger
}

func NewReportService(c client.Client, log logging.Logger) ReportService {
	return &reportService{client: c, log: log}
}

func reportQuery(key, value, userID string) url.Values {
	q := url.Values{}
	q.Set(key, value)
	if userID != "" {
		q.Set("userId", userID)
	}
	return q
}

// Weekly returns the report of the week starting at weekStart (YYYY-MM-DD).
func (s *reportService) Weekly(ctx context.Context, weekStart, userID string) *models.WeeklyReport {
	r := get(withQuery(reportsEndpoint+"/weekly", reportQuery("weekStart", weekStart, userID)))
	report, err := fetch(ctx, s.client, r, func(w models.WeeklyReport) bool { return w.UserID != "" })
	if err != nil {
		s.log.Warn(ctx, "weekly report failed", "week_start", weekStart, "error", err)
		return nil
	}
	return &report
}

// Monthly returns the report of month (YYYY-MM).
func (s *reportService) Monthly(ctx context.Context, month, userID string) *models.MonthlyReport {
	r := get(withQuery(reportsEndpoint+"/monthly", reportQuery("month", month, userID)))
	report, err := fetch(ctx, s.client, r, func(m models.MonthlyReport) bool { return m.UserID != "" })
	if err != nil {
		s.log.Warn(ctx, "monthly report failed", "month", month, "error", err)
		return nil
	}
	return &report
}

func (s *reportService) Custom(ctx context.Context, req models.CustomReportRequest) *models.CustomReport {
	report, err := fetch(ctx, s.client, post(reportsEndpoint+"/custom", req), func(c models.CustomReport) bool { return c.Period != nil })
	if err != nil {
		s.log.Warn(ctx, "custom report failed", "start", req.StartDate, "end", req.EndDate, "error", err)
		return nil
	}
	return &report
}
