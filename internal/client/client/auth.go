package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return call[models.AuthResponse](ctx, c, &request{method: http.MethodPost, path: "/auth/login", body: req})
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return call[models.AuthResponse](ctx, c, &request{method: http.MethodPost, path: "/auth/register", body: req})
}

func (c *HTTPClient) Logout(ctx context.Context) (*models.MessageResponse, error) {
	return call[models.MessageResponse](ctx, c, &request{method: http.MethodPost, path: "/auth/logout"})
}

// GetProfile doubles as the session check: it fails with ErrUnauthorized
// when the session cookie is missing or expired.
func (c *HTTPClient) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	return call[models.ProfileResponse](ctx, c, &request{method: http.MethodGet, path: "/auth/profile"})
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	return call[models.ProfileResponse](ctx, c, &request{method: http.MethodPut, path: "/auth/profile", body: req})
}

func (c *HTTPClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.MessageResponse, error) {
	return call[models.MessageResponse](ctx, c, &request{method: http.MethodPost, path: "/auth/change-password", body: req})
}
