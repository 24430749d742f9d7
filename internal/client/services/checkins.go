package services

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/carework/internal/client/client"
	"github.com/dmitrijs2005/carework/internal/client/models"
	"github.com/dmitrijs2005/carework/internal/logging"
)

const checkinsEndpoint = "/api/v1/checkins"

// DateLayout is the wire format of date-only query parameters.
const DateLayout = "2006-01-02"

type CheckinService interface {
	List(ctx context.Context, page, pageSize int) models.PagedResult[models.Checkin]
	Get(ctx context.Context, id string) *models.Checkin
	Search(ctx context.Context, query, dateFrom, dateTo string) []models.Checkin
	ByDateRange(ctx context.Context, start, end time.Time) []models.Checkin
	Delete(ctx context.Context, id string) bool

	Create(ctx context.Context, req models.CreateCheckinRequest) (models.Checkin, error)
	CreateQuick(ctx context.Context, req models.QuickCheckinRequest) (models.Checkin, error)
	Update(ctx context.Context, id string, req models.UpdateCheckinRequest) (models.Checkin, error)
}

type checkinService struct {
	client client.Client
	log    logging.Logger
}

func NewCheckinService(c client.Client, log logging.Logger) CheckinService {
	return &checkinService{client: c, log: log}
}

func hasCheckinID(c models.Checkin) bool { return c.ID != "" }

func hasPageData[T any](p models.PagedResult[T]) bool { return p.Data != nil }

func (s *checkinService) List(ctx context.Context, page, pageSize int) models.PagedResult[models.Checkin] {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	result, err := fetch(ctx, s.client, get(withQuery(checkinsEndpoint, q)), hasPageData[models.Checkin])
	if err != nil {
		s.log.Warn(ctx, "list checkins failed", "page", page, "error", err)
		return models.EmptyPage[models.Checkin](page, pageSize)
	}
	return result
}

func (s *checkinService) Get(ctx context.Context, id string) *models.Checkin {
	c, err := fetch(ctx, s.client, get(path(checkinsEndpoint, id)), hasCheckinID)
	if err != nil {
		s.log.Warn(ctx, "get checkin failed", "id", id, "error", err)
		return nil
	}
	return &c
}

// Search filters by free text and an inclusive YYYY-MM-DD date range; empty
// arguments are left out of the query.
func (s *checkinService) Search(ctx context.Context, query, dateFrom, dateTo string) []models.Checkin {
	q := url.Values{}
	if query != "" {
		q.Set("query", query)
	}
	if dateFrom != "" {
		q.Set("dateFrom", dateFrom)
	}
	if dateTo != "" {
		q.Set("dateTo", dateTo)
	}

	list, err := fetchList[models.Checkin](ctx, s.client, get(withQuery(checkinsEndpoint+"/search", q)))
	if err != nil {
		s.log.Warn(ctx, "search checkins failed", "error", err)
		return []models.Checkin{}
	}
	return list
}

// ByDateRange searches by the UTC calendar dates of start and end.
func (s *checkinService) ByDateRange(ctx context.Context, start, end time.Time) []models.Checkin {
	return s.Search(ctx, "", start.UTC().Format(DateLayout), end.UTC().Format(DateLayout))
}

func (s *checkinService) Delete(ctx context.Context, id string) bool {
	return remove(ctx, s.client, s.log, "checkin", path(checkinsEndpoint, id))
}

// Create sends mood, stress and sleep, plus notes when not blank and tags
// when not empty.
func (s *checkinService) Create(ctx context.Context, req models.CreateCheckinRequest) (models.Checkin, error) {
	return fetch(ctx, s.client, post(checkinsEndpoint, req.Normalized()), hasCheckinID)
}

func (s *checkinService) CreateQuick(ctx context.Context, req models.QuickCheckinRequest) (models.Checkin, error) {
	return fetch(ctx, s.client, post(checkinsEndpoint+"/quick", req), hasCheckinID)
}

func (s *checkinService) Update(ctx context.Context, id string, req models.UpdateCheckinRequest) (models.Checkin, error) {
	return fetch(ctx, s.client, put(path(checkinsEndpoint, id), req), hasCheckinID)
}
