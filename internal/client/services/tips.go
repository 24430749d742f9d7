package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/logging"
)

const tipsEndpoint = "/api/v1/tips"

type TipService interface {
	Recommended(ctx context.Context) []models.Tip
	List(ctx context.Context, page, pageSize int, category string, mood models.MoodLevel) models.PagedResult[models.Tip]
	Get(ctx context.Context, id string) *models.Tip
	Delete(ctx context.Context, id string) bool

	Create(ctx context.Context, req models.CreateTipRequest) (models.Tip, error)
	Update(ctx context.Context, id string, req models.UpdateTipRequest) (models.Tip, error)
}

type tipService struct {
	client client.Client
	log    logging.Logger
}

func NewTipService(c client.Client, log logging.Logger) TipService {
	return &tipService{client: c, log: log}
}

func hasTipID(t models.Tip) bool { return t.ID != "" }

func (s *tipService) Recommended(ctx context.Context) []models.Tip {
	list, err := fetchList[models.Tip](ctx, s.client, get(tipsEndpoint+"/recommended"))
	if err != nil {
		s.log.Warn(ctx, "recommended tips failed", "error", err)
		return []models.Tip{}
	}
	return list
}

// List pages through tips; category and mood are optional filters.
func (s *tipService) List(ctx context.Context, page, pageSize int, category string, mood models.MoodLevel) models.PagedResult[models.Tip] {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))
	if category != "" {
		q.Set("category", category)
	}
	if mood != "" {
		q.Set("moodLevel", string(mood))
	}

	result, err := fetch(ctx, s.client, get(withQuery(tipsEndpoint, q)), hasPageData[models.Tip])
	if err != nil {
		s.log.Warn(ctx, "list tips failed", "page", page, "error", err)
		return models.EmptyPage[models.Tip](page, pageSize)
	}
	return result
}

func (s *tipService) Get(ctx context.Context, id string) *models.Tip {
	t, err := fetch(ctx, s.client, get(path(tipsEndpoint, id)), hasTipID)
	if err != nil {
		s.log.Warn(ctx, "get tip failed", "id", id, "error", err)
		return nil
	}
	return &t
}

func (s *tipService) Delete(ctx context.Context, id string) bool {
	return remove(ctx, s.client, s.log, "tip", path(tipsEndpoint, id))
}

func (s *tipService) Create(ctx context.Context, req models.CreateTipRequest) (models.Tip, error) {
	return fetch(ctx, s.client, post(tipsEndpoint, req), hasTipID)
}

func (s *tipService) Update(ctx context.Context, id string, req models.UpdateTipRequest) (models.Tip, error) {
	return fetch(ctx, s.client, put(path(tipsEndpoint, id), req), hasTipID)
}
