package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
	"github.com/dmitrijs2005/dataguard/internal/client/services"
)

// Alerts lists alerts: alerts [page] [status] [severity].
func (a *App) Alerts(ctx context.Context, args []string) error {
	const usageLine = "alerts [page] [status] [severity]"

	var filter models.AlertFilter
	page, err := parsePage(args, usageLine)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		filter.Status = models.AlertStatus(args[1])
	}
	if len(args) > 2 {
		filter.Severity = models.Severity(args[2])
	}
	if len(args) > 3 {
		return usage(usageLine)
	}

	resp, err := a.alertService.List(ctx, page, filter)
	if err != nil {
		return err
	}
	printAlerts(a.out, resp.Alerts)
	printPagination(a.out, resp.Pagination)
	return nil
}

func (a *App) AlertStats(ctx context.Context) error {
	st, err := a.alertService.Stats(ctx)
	if err != nil {
		return err
	}
	printAlertStats(a.out, st)
	return nil
}

// Ack marks an alert acknowledged.
func (a *App) Ack(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("ack <id>")
	}

	alert, err := a.alertService.Update(ctx, args[0], models.UpdateAlertRequest{Status: models.AlertStatusAcknowledged})
	if err != nil {
		return err
	}
	printAlertChange(a.out, args[0], alert)
	return nil
}

// Resolve closes an alert; everything after the id is the resolution note.
func (a *App) Resolve(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return usage("resolve <id> [note]")
	}

	alert, err := a.alertService.Resolve(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	printAlertChange(a.out, args[0], alert)
	return nil
}

// Snooze accepts minutes ("30") or a Go duration ("2h").
func (a *App) Snooze(ctx context.Context, args []string) error {
	const usageLine = "snooze <id> <minutes>"
	if len(args) != 2 {
		return usage(usageLine)
	}
	d, err := parseSnooze(args[1])
	if errors.Is(err, services.ErrInvalidSnooze) {
		return err
	}
	if err != nil {
		return usage(usageLine)
	}

	alert, err := a.alertService.Snooze(ctx, args[0], d)
	if err != nil {
		return err
	}
	printAlertChange(a.out, args[0], alert)
	return nil
}

// parseSnooze range-checks a minute count before converting it, so large
// numbers cannot wrap around.
func parseSnooze(s string) (time.Duration, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 || n > int(services.MaxSnooze/time.Minute) {
			return 0, fmt.Errorf("snooze %q: %w", s, services.ErrInvalidSnooze)
		}
		return time.Duration(n) * time.Minute, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("parse snooze %q: %w", s, err)
	}
	return d, nil
}
