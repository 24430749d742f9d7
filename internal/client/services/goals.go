package services

import (
	"context"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/logging"
)

const goalsEndpoint = "/api/v1/goals"

type GoalService interface {
	List(ctx context.Context) []models.Goal
	Progress(ctx context.Context, id string) *models.GoalProgress
	Delete(ctx context.Context, id string) bool

	Create(ctx context.Context, req models.CreateGoalRequest) (models.Goal, error)
	Update(ctx context.Context, id string, req models.UpdateGoalRequest) (models.Goal, error)
}

type goalService struct {
	client client.Client
	log    logging.Logger
}

func NewGoalService(c client.Client, log logging.Logger) GoalService {
	return &goalService{client: c, log: log}
}

func hasGoalID(g models.Goal) bool { return g.ID != "" }

func (s *goalService) List(ctx context.Context) []models.Goal {
	list, err := fetchList[models.Goal](ctx, s.client, get(goalsEndpoint))
	if err != nil {
		s.log.Warn(ctx, "list goals failed", "error", err)
		return []models.Goal{}
	}
	return list
}

func (s *goalService) Progress(ctx context.Context, id string) *models.GoalProgress {
	p, err := fetch(ctx, s.client, get(path(goalsEndpoint, id, "progress")),
		func(p models.GoalProgress) bool { return p.GoalID != "" })
	if err != nil {
		s.log.Warn(ctx, "goal progress failed", "id", id, "error", err)
		return nil
	}
	return &p
}

func (s *goalService) Delete(ctx context.Context, id string) bool {
	return remove(ctx, s.client, s.log, "goal", path(goalsEndpoint, id))
}

func (s *goalService) Create(ctx context.Context, req models.CreateGoalRequest) (models.Goal, error) {
	return fetch(ctx, s.client, post(goalsEndpoint, req), hasGoalID)
}

func (s *goalService) Update(ctx context.Context, id string, req models.UpdateGoalRequest) (models.Goal, error) {
	return fetch(ctx, s.client, put(path(goalsEndpoint, id), req), hasGoalID)
}
