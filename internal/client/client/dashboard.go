package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

func (c *HTTPClient) DashboardData(ctx context.Context) (models.DashboardData, error) {
	out, err := call[models.DashboardData](ctx, c, &request{method: http.MethodGet, path: "/dashboard/data"})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (c *HTTPClient) Analytics(ctx context.Context, q models.AnalyticsQuery) (models.Analytics, error) {
	out, err := call[models.Analytics](ctx, c, &request{method: http.MethodGet, path: "/dashboard/analytics", query: q.Values()})
	if err != nil {
		return nil, err
	}
	return *out, nil
}
