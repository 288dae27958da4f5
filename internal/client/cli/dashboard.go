package cli

import (
	"context"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

func (a *App) Dashboard(ctx context.Context) error {
	data, err := a.dashboardService.Summary(ctx)
	if err != nil {
		return err
	}
	return printJSON(a.out, data)
}

// Analytics fetches one analytics view: analytics [period] [type].
func (a *App) Analytics(ctx context.Context, args []string) error {
	if len(args) > 2 {
		return usage("analytics [period] [type]")
	}
	var q models.AnalyticsQuery
	if len(args) > 0 {
		q.Period = args[0]
	}
	if len(args) > 1 {
		q.Type = args[1]
	}

	data, err := a.dashboardService.Analytics(ctx, q)
	if err != nil {
		return err
	}
	return printJSON(a.out, data)
}

// Overview fetches analytics for the standard periods side by side:
// overview [type].
func (a *App) Overview(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usage("overview [type]")
	}
	var typ string
	if len(args) == 1 {
		typ = args[0]
	}

	data, err := a.dashboardService.AnalyticsOverview(ctx, typ)
	if err != nil {
		return err
	}
	return printJSON(a.out, data)
}
