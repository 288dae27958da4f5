package models

import "net/url"

// DashboardData is the backend's aggregate summary (counts, trends, recent
// activity). Its layout is owned by the backend and passed through as is.
type DashboardData map[string]any

// Analytics is a backend-owned analytics payload, passed through as is.
type Analytics map[string]any

// AnalyticsQuery selects an analytics window and kind. Empty fields are
// omitted from the request.
type AnalyticsQuery struct {
	Period string
	Type   string
}

func (q AnalyticsQuery) Values() url.Values {
	v := url.Values{}
	if q.Period != "" {
		v.Set("period", q.Period)
	}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	return v
}
