package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

// scanSource tags text scans submitted from the terminal.
const scanSource = "cli"

// Scan submits the arguments as text. With no arguments the text is read
// from the next input line.
func (a *App) Scan(ctx context.Context, args []string) error {
	content := strings.Join(args, " ")
	if content == "" {
		var err error
		if content, err = getSimpleText(a.reader, "Text to scan", a.out); err != nil {
			return err
		}
	}

	resp, err := a.scanService.ScanText(ctx, content, scanSource)
	if err != nil {
		return err
	}
	printScanResponse(a.out, resp)
	return nil
}

func (a *App) ScanFile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("scanfile <path>")
	}

	resp, err := a.scanService.ScanFile(ctx, args[0])
	if err != nil {
		return err
	}
	printScanResponse(a.out, resp)
	return nil
}

func (a *App) History(ctx context.Context, args []string) error {
	page, err := parsePage(args, "history [page]")
	if err != nil {
		return err
	}

	resp, err := a.scanService.History(ctx, page)
	if err != nil {
		return err
	}
	printScans(a.out, resp.Scans)
	printPagination(a.out, resp.Pagination)
	return nil
}

func (a *App) ScanStats(ctx context.Context) error {
	st, err := a.scanService.Stats(ctx)
	if err != nil {
		return err
	}
	printScanStats(a.out, st)
	return nil
}

// parsePage reads an optional page number from args[0].
func parsePage(args []string, usageLine string) (models.Page, error) {
	if len(args) == 0 {
		return models.Page{}, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n <= 0 {
		return models.Page{}, usage(usageLine)
	}
	return models.Page{Page: n}, nil
}

func formatRisk(r *models.ScanResult) string {
	if r.RiskLevel == "" {
		return "-"
	}
	if r.RiskScore > 0 {
		return fmt.Sprintf("%s (%.0f)", r.RiskLevel, r.RiskScore)
	}
	return r.RiskLevel
}
