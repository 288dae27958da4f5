package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/dataguard/internal/client/client"
	"github.com/dmitrijs2005/dataguard/internal/client/config"
	"github.com/dmitrijs2005/dataguard/internal/client/models"
	"github.com/dmitrijs2005/dataguard/internal/client/services"
	"github.com/dmitrijs2005/dataguard/internal/logging"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	authService      services.AuthService
	scanService      services.ScanService
	alertService     services.AlertService
	dashboardService services.DashboardService
	userName         string
	reader           *bufio.Reader
	out              io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel)

	apiClient, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:           c,
		logger:           logger,
		authService:      services.NewAuthService(apiClient),
		scanService:      services.NewScanService(apiClient, c.MaxUploadSize),
		alertService:     services.NewAlertService(apiClient),
		dashboardService: services.NewDashboardService(apiClient),
		reader:           bufio.NewReader(os.Stdin),
		out:              os.Stdout,
	}
	a.authService.Subscribe(a.onUserChange)

	logger.Debug(context.Background(), "client configured", "api", apiClient.BaseURL(), "timeout", c.RequestTimeout)
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) onUserChange(u *models.User) {
	a.userName = displayUser(u)
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated()
}
