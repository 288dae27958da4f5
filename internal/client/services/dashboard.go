package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/dataguard/internal/client/client"
	"github.com/dmitrijs2005/dataguard/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// DefaultOverviewPeriods are the analytics windows AnalyticsOverview
// fetches when none are given.
var DefaultOverviewPeriods = []string{"24h", "7d", "30d"}

type DashboardService interface {
	Summary(ctx context.Context) (models.DashboardData, error)
	Analytics(ctx context.Context, q models.AnalyticsQuery) (models.Analytics, error)
	AnalyticsOverview(ctx context.Context, analyticsType string, periods ...string) (map[string]models.Analytics, error)
}

type dashboardService struct {
	client client.Client
}

func NewDashboardService(client client.Client) DashboardService {
	return &dashboardService{client: client}
}

func (s *dashboardService) Summary(ctx context.Context) (models.DashboardData, error) {
	return s.client.DashboardData(ctx)
}

func (s *dashboardService) Analytics(ctx context.Context, q models.AnalyticsQuery) (models.Analytics, error) {
	return s.client.Analytics(ctx, q)
}

// AnalyticsOverview requests every period at once and merges the answers
// keyed by period, so arrival order does not matter. The first failure
// cancels the remaining requests and is returned.
func (s *dashboardService) AnalyticsOverview(ctx context.Context, analyticsType string, periods ...string) (map[string]models.Analytics, error) {
	if len(periods) == 0 {
		periods = DefaultOverviewPeriods
	}

	results := make([]models.Analytics, len(periods))
	g, ctx := errgroup.WithContext(ctx)

	for i, period := range periods {
		g.Go(func() error {
			a, err := s.client.Analytics(ctx, models.AnalyticsQuery{Period: period, Type: analyticsType})
			if err != nil {
				return fmt.Errorf("analytics %s: %w", period, err)
			}
			results[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(map[string]models.Analytics, len(periods))
	for i, period := range periods {
		merged[period] = results[i]
	}
	return merged, nil
}
