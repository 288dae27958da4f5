package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dataguard/internal/client/client"
	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

var (
	ErrEmptyAlertID   = errors.New("alert id is empty")
	ErrInvalidStatus  = errors.New("invalid alert status")
	ErrInvalidSnooze  = errors.New("snooze duration must be between 1 minute and 1 year")
	ErrInvalidFilters = errors.New("invalid alert filter")
)

// MaxSnooze is the longest accepted snooze.
const MaxSnooze = 365 * 24 * time.Hour

type AlertService interface {
	List(ctx context.Context, page models.Page, filter models.AlertFilter) (*models.AlertsResponse, error)
	Stats(ctx context.Context) (*models.AlertStats, error)
	Update(ctx context.Context, id string, req models.UpdateAlertRequest) (*models.Alert, error)
	Resolve(ctx context.Context, id, resolution string) (*models.Alert, error)
	Snooze(ctx context.Context, id string, d time.Duration) (*models.Alert, error)
}

type alertService struct {
	client client.Client
}

func NewAlertService(client client.Client) AlertService {
	return &alertService{client: client}
}

func (s *alertService) List(ctx context.Context, page models.Page, filter models.AlertFilter) (*models.AlertsResponse, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidFilters, filter.Status)
	}
	if filter.Severity != "" && !filter.Severity.Valid() {
		return nil, fmt.Errorf("%w: severity %q", ErrInvalidFilters, filter.Severity)
	}
	return s.client.Alerts(ctx, page.Normalize(), filter)
}

func (s *alertService) Stats(ctx context.Context) (*models.AlertStats, error) {
	return s.client.AlertStats(ctx)
}

func (s *alertService) Update(ctx context.Context, id string, req models.UpdateAlertRequest) (*models.Alert, error) {
	if id == "" {
		return nil, ErrEmptyAlertID
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}
	resp, err := s.client.UpdateAlert(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return resp.Alert, nil
}

func (s *alertService) Resolve(ctx context.Context, id, resolution string) (*models.Alert, error) {
	if id == "" {
		return nil, ErrEmptyAlertID
	}
	resp, err := s.client.ResolveAlert(ctx, id, models.ResolveAlertRequest{Resolution: resolution})
	if err != nil {
		return nil, err
	}
	return resp.Alert, nil
}

// Snooze sends d as whole minutes, rounding up; the backend's smallest unit
// is one minute.
func (s *alertService) Snooze(ctx context.Context, id string, d time.Duration) (*models.Alert, error) {
	if id == "" {
		return nil, ErrEmptyAlertID
	}
	if d <= 0 || d > MaxSnooze {
		return nil, ErrInvalidSnooze
	}
	minutes := int((d + time.Minute - 1) / time.Minute)

	resp, err := s.client.SnoozeAlert(ctx, id, models.SnoozeAlertRequest{Duration: minutes})
	if err != nil {
		return nil, err
	}
	return resp.Alert, nil
}
