package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/dmitrijs2005/dataguard/internal/client/client"
	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

var errNotStubbed = errors.New("not stubbed")

// fakeClient implements client.Client for unit tests. Unset hooks fail.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	login          func(models.LoginRequest) (*models.AuthResponse, error)
	register       func(models.RegisterRequest) (*models.AuthResponse, error)
	logoutErr      error
	profile        func() (*models.ProfileResponse, error)
	updateProfile  func(models.UpdateProfileRequest) (*models.ProfileResponse, error)
	changePassword func(models.ChangePasswordRequest) error

	scanText    func(models.TextScanRequest) (*models.ScanResponse, error)
	scanFile    func(name string, content []byte) (*models.ScanResponse, error)
	scanHistory func(models.Page) (*models.ScanHistoryResponse, error)
	scanStats   func() (*models.ScanStats, error)

	alerts       func(models.Page, models.AlertFilter) (*models.AlertsResponse, error)
	alertStats   func() (*models.AlertStats, error)
	updateAlert  func(string, models.UpdateAlertRequest) (*models.AlertResponse, error)
	resolveAlert func(string, models.ResolveAlertRequest) (*models.AlertResponse, error)
	snoozeAlert  func(string, models.SnoozeAlertRequest) (*models.AlertResponse, error)

	dashboard func() (models.DashboardData, error)
	analytics func(context.Context, models.AnalyticsQuery) (models.Analytics, error)
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	f.record("login")
	if f.login == nil {
		return nil, errNotStubbed
	}
	return f.login(req)
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.record("register")
	if f.register == nil {
		return nil, errNotStubbed
	}
	return f.register(req)
}

func (f *fakeClient) Logout(context.Context) (*models.MessageResponse, error) {
	f.record("logout")
	if f.logoutErr != nil {
		return nil, f.logoutErr
	}
	return &models.MessageResponse{Message: "Logged out"}, nil
}

func (f *fakeClient) GetProfile(context.Context) (*models.ProfileResponse, error) {
	f.record("profile")
	if f.profile == nil {
		return nil, errNotStubbed
	}
	return f.profile()
}

func (f *fakeClient) UpdateProfile(_ context.Context, req models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	f.record("updateProfile")
	if f.updateProfile == nil {
		return nil, errNotStubbed
	}
	return f.updateProfile(req)
}

func (f *fakeClient) ChangePassword(_ context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error) {
	f.record("changePassword")
	if f.changePassword == nil {
		return nil, errNotStubbed
	}
	if err := f.changePassword(req); err != nil {
		return nil, err
	}
	return &models.MessageResponse{Message: "ok"}, nil
}

func (f *fakeClient) ScanText(_ context.Context, req models.TextScanRequest) (*models.ScanResponse, error) {
	f.record("scanText")
	if f.scanText == nil {
		return nil, errNotStubbed
	}
	return f.scanText(req)
}

func (f *fakeClient) ScanFile(_ context.Context, name string, r io.Reader) (*models.ScanResponse, error) {
	f.record("scanFile")
	if f.scanFile == nil {
		return nil, errNotStubbed
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return f.scanFile(name, b)
}

func (f *fakeClient) ScanHistory(_ context.Context, page models.Page) (*models.ScanHistoryResponse, error) {
	f.record("scanHistory")
	if f.scanHistory == nil {
		return nil, errNotStubbed
	}
	return f.scanHistory(page)
}

func (f *fakeClient) ScanStats(context.Context) (*models.ScanStats, error) {
	f.record("scanStats")
	if f.scanStats == nil {
		return nil, errNotStubbed
	}
	return f.scanStats()
}

func (f *fakeClient) Alerts(_ context.Context, page models.Page, filter models.AlertFilter) (*models.AlertsResponse, error) {
	f.record("alerts")
	if f.alerts == nil {
		return nil, errNotStubbed
	}
	return f.alerts(page, filter)
}

func (f *fakeClient) AlertStats(context.Context) (*models.AlertStats, error) {
	f.record("alertStats")
	if f.alertStats == nil {
		return nil, errNotStubbed
	}
	return f.alertStats()
}

func (f *fakeClient) UpdateAlert(_ context.Context, id string, req models.UpdateAlertRequest) (*models.AlertResponse, error) {
	f.record("updateAlert")
	if f.updateAlert == nil {
		return nil, errNotStubbed
	}
	return f.updateAlert(id, req)
}

func (f *fakeClient) ResolveAlert(_ context.Context, id string, req models.ResolveAlertRequest) (*models.AlertResponse, error) {
	f.record("resolveAlert")
	if f.resolveAlert == nil {
		return nil, errNotStubbed
	}
	return f.resolveAlert(id, req)
}

func (f *fakeClient) SnoozeAlert(_ context.Context, id string, req models.SnoozeAlertRequest) (*models.AlertResponse, error) {
	f.record("snoozeAlert")
	if f.snoozeAlert == nil {
		return nil, errNotStubbed
	}
	return f.snoozeAlert(id, req)
}

func (f *fakeClient) DashboardData(context.Context) (models.DashboardData, error) {
	f.record("dashboard")
	if f.dashboard == nil {
		return nil, errNotStubbed
	}
	return f.dashboard()
}

func (f *fakeClient) Analytics(ctx context.Context, q models.AnalyticsQuery) (models.Analytics, error) {
	f.record("analytics")
	if f.analytics == nil {
		return nil, errNotStubbed
	}
	return f.analytics(ctx, q)
}
