package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

func (c *HTTPClient) Alerts(ctx context.Context, page models.Page, filter models.AlertFilter) (*models.AlertsResponse, error) {
	q := page.Values()
	filter.Apply(q)
	return call[models.AlertsResponse](ctx, c, &request{method: http.MethodGet, path: "/alerts", query: q})
}

func (c *HTTPClient) AlertStats(ctx context.Context) (*models.AlertStats, error) {
	return call[models.AlertStats](ctx, c, &request{method: http.MethodGet, path: "/alerts/stats"})
}

func (c *HTTPClient) UpdateAlert(ctx context.Context, id string, req models.UpdateAlertRequest) (*models.AlertResponse, error) {
	return call[models.AlertResponse](ctx, c, &request{method: http.MethodPut, path: idPath("/alerts", id, ""), body: req})
}

func (c *HTTPClient) ResolveAlert(ctx context.Context, id string, req models.ResolveAlertRequest) (*models.AlertResponse, error) {
	return call[models.AlertResponse](ctx, c, &request{method: http.MethodPost, path: idPath("/alerts", id, "/resolve"), body: req})
}

func (c *HTTPClient) SnoozeAlert(ctx context.Context, id string, req models.SnoozeAlertRequest) (*models.AlertResponse, error) {
	return call[models.AlertResponse](ctx, c, &request{method: http.MethodPost, path: idPath("/alerts", id, "/snooze"), body: req})
}
