package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

// Client is the backend API surface. Every method is one request/response
// round trip.
type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) (*models.MessageResponse, error)
	GetProfile(ctx context.Context) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.ProfileResponse, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error)

	ScanText(ctx context.Context, req models.TextScanRequest) (*models.ScanResponse, error)
	ScanFile(ctx context.Context, fileName string, r io.Reader) (*models.ScanResponse, error)
	ScanHistory(ctx context.Context, page models.Page) (*models.ScanHistoryResponse, error)
	ScanStats(ctx context.Context) (*models.ScanStats, error)

	Alerts(ctx context.Context, page models.Page, filter models.AlertFilter) (*models.AlertsResponse, error)
	AlertStats(ctx context.Context) (*models.AlertStats, error)
	UpdateAlert(ctx context.Context, id string, req models.UpdateAlertRequest) (*models.AlertResponse, error)
	ResolveAlert(ctx context.Context, id string, req models.ResolveAlertRequest) (*models.AlertResponse, error)
	SnoozeAlert(ctx context.Context, id string, req models.SnoozeAlertRequest) (*models.AlertResponse, error)

	DashboardData(ctx context.Context) (models.DashboardData, error)
	Analytics(ctx context.Context, q models.AnalyticsQuery) (models.Analytics, error)
}

var _ Client = (*HTTPClient)(nil)
