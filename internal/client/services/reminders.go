package services

import (
	"context"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/logging"
)

const remindersEndpoint = "/api/v1/reminders"

type ReminderService interface {
	List(ctx context.Context) []models.Reminder
	Delete(ctx context.Context, id string) bool

	Create(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error)
	Update(ctx context.Context, id string, req models.UpdateReminderRequest) (models.Reminder, error)
}

type reminderService struct {
	client client.Client
	log    logging.Logger
}

func NewReminderService(c client.Client, log logging.Logger) ReminderService {
	return &reminderService{client: c, log: log}
}

func hasReminderID(r models.Reminder) bool { return r.ID != "" }

func (s *reminderService) List(ctx context.Context) []models.Reminder {
	list, err := fetchList[models.Reminder](ctx, s.client, get(remindersEndpoint))
	if err != nil {
		s.log.Warn(ctx, "list reminders failed", "error", err)
		return []models.Reminder{}
	}
	return list
}

func (s *reminderService) Delete(ctx context.Context, id string) bool {
	return remove(ctx, s.client, s.log, "reminder", path(remindersEndpoint, id))
}

func (s *reminderService) Create(ctx context.Context, req models.CreateReminderRequest) (models.Reminder, error) {
	return fetch(ctx, s.client, post(remindersEndpoint, req), hasReminderID)
}

func (s *reminderService) Update(ctx context.Context, id string, req models.UpdateReminderRequest) (models.Reminder, error) {
	return fetch(ctx, s.client, put(path(remindersEndpoint, id), req), hasReminderID)
}
