// Package services contains application services for the Data Guard client.
// This file defines the authentication service, which also owns the
// session's "current user": check-session on start, replace on login,
// register and profile update, clear on logout or failed session check.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/dataguard/internal/client/client"
	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

// ErrNoUser is returned when a successful auth response carries no user.
// The cached user is left unchanged (cleared for Init).
var ErrNoUser = errors.New("response did not include a user")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Init: check the session cookie via the profile endpoint.
//   - Login / Register / UpdateProfile: replace the cached user on success;
//     a 2xx without a user fails with ErrNoUser.
//   - Logout: clear the cached user even when the backend call fails.
//   - ChangePassword: pass through, the cached user is unchanged.
//
// Backend error messages are returned unwrapped so they can be shown
// verbatim.
type AuthService interface {
	Init(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, current, next []byte) error
	CurrentUser() *models.User
	IsAuthenticated() bool
	Subscribe(fn func(*models.User))
}

type authService struct {
	client client.Client

	mu          sync.RWMutex
	user        *models.User
	subscribers []func(*models.User)
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

func (a *authService) Init(ctx context.Context) (*models.User, error) {
	resp, err := a.client.GetProfile(ctx)
	if err != nil {
		a.setUser(nil)
		return nil, err
	}
	if resp.User == nil {
		a.setUser(nil)
		return nil, ErrNoUser
	}
	a.setUser(resp.User)
	return a.CurrentUser(), nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	resp, err := a.client.Login(ctx, models.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, ErrNoUser
	}
	a.setUser(resp.User)
	return a.CurrentUser(), nil
}

func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	resp, err := a.client.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, ErrNoUser
	}
	a.setUser(resp.User)
	return a.CurrentUser(), nil
}

func (a *authService) Logout(ctx context.Context) error {
	_, err := a.client.Logout(ctx)
	a.setUser(nil)
	return err
}

func (a *authService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	resp, err := a.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, ErrNoUser
	}
	a.setUser(resp.User)
	return a.CurrentUser(), nil
}

func (a *authService) ChangePassword(ctx context.Context, current, next []byte) error {
	_, err := a.client.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword: string(current),
		NewPassword:     string(next),
	})
	return err
}

// CurrentUser returns a copy of the cached user, or nil.
func (a *authService) CurrentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return copyUser(a.user)
}

func (a *authService) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil
}

// Subscribe registers fn to be called after every user change.
func (a *authService) Subscribe(fn func(*models.User)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subscribers = append(a.subscribers, fn)
}

// setUser replaces the cached user wholesale and notifies subscribers
// outside the lock.
func (a *authService) setUser(u *models.User) {
	a.mu.Lock()
	a.user = copyUser(u)
	subs := append(([]func(*models.User))(nil), a.subscribers...)
	a.mu.Unlock()

	for _, fn := range subs {
		fn(copyUser(u))
	}
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.LastLogin != nil {
		t := *u.LastLogin
		cp.LastLogin = &t
	}
	return &cp
}
