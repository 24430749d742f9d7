package services

import (
	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/session"
	"github.com/dmitrijs2005/carework/internal/logging"
)

// Services bundles every façade over one pipeline.
type Services struct {
	Auth         AuthService
	Checkins     CheckinService
	Tips         TipService
	Reports      ReportService
	Insights     InsightService
	Goals        GoalService
	Reminders    ReminderService
	Achievements AchievementService
}

// New wires all services. dev is true in development builds.
func New(c client.Client, s *session.Store, log logging.Logger, dev bool) *Services {
	return &Services{
		Auth:         NewAuthService(c, s, log.With("service", "auth")),
		Checkins:     NewCheckinService(c, log.With("service", "checkins")),
		Tips:         NewTipService(c, log.With("service", "tips")),
		Reports:      NewReportService(c, log.With("service", "reports")),
		Insights:     NewInsightService(c, log.With("service", "insights"), dev),
		Goals:        NewGoalService(c, log.With("service", "goals")),
		Reminders:    NewReminderService(c, log.With("service", "reminders")),
		Achievements: NewAchievementService(c, log.With("service", "achievements")),
	}
}
