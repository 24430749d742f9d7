package services

import (
	"context"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/logging"
)

const achievementsEndpoint = "/api/v1/achievements"

type AchievementService interface {
	List(ctx context.Context) []models.Achievement
	Available(ctx context.Context) []models.Achievement
}

type achievementService struct {
	client client.Client
	log    logging.Logger
}

func NewAchievementService(c client.Client, log logging.Logger) AchievementService {
	return &achievementService{client: c, log: log}
}

func (s *achievementService) List(ctx context.Context) []models.Achievement {
	return s.list(ctx, achievementsEndpoint)
}

func (s *achievementService) Available(ctx context.Context) []models.Achievement {
	return s.list(ctx, achievementsEndpoint+"/available")
}

func (s *achievementService) list(ctx context.Context, endpoint string) []models.Achievement {
	list, err := fetchList[models.Achievement](ctx, s.client, get(endpoint))
	if err != nil {
		s.log.Warn(ctx, "list achievements failed", "endpoint", endpoint, "error", err)
		return []models.Achievement{}
	}
	return list
}
