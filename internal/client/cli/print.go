package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dmitrijs2005/dataguard/internal/client/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatTime shows a parsed timestamp in local time and an unparsed one
// as the backend sent it.
func formatTime(t *models.Timestamp) string {
	return orDash(t.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// printJSON renders backend-owned aggregates whose shape the client does
// not fix.
func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func printUser(w io.Writer, u *models.User) {
	if u == nil {
		return
	}
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Username:\t%s\n", orDash(u.Username))
	fmt.Fprintf(tw, "Email:\t%s\n", orDash(u.Email))
	fmt.Fprintf(tw, "Name:\t%s\n", orDash(u.DisplayName()))
	fmt.Fprintf(tw, "Role:\t%s\n", orDash(u.Role))
	fmt.Fprintf(tw, "Active:\t%t\n", u.IsActive)
	fmt.Fprintf(tw, "Last login:\t%s\n", formatTime(u.LastLogin))
	tw.Flush()
}

func printScanResponse(w io.Writer, resp *models.ScanResponse) {
	if resp.Message != "" {
		fmt.Fprintln(w, resp.Message)
	}
	if resp.Scan != nil {
		s := resp.Scan
		fmt.Fprintf(w, "Scan %s: %s, risk %s, %d finding(s)\n", s.ID, orDash(s.Status), formatRisk(s), len(s.Findings))

		if len(s.Findings) > 0 {
			tw := newTable(w)
			fmt.Fprintln(tw, "TYPE\tSEVERITY\tCONFIDENCE\tLINE")
			for _, f := range s.Findings {
				fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\n", f.Type, orDash(f.Severity), f.Confidence, f.Line)
			}
			tw.Flush()
		}
	}
	if len(resp.Alerts) > 0 {
		fmt.Fprintf(w, "%d alert(s) raised\n", len(resp.Alerts))
		printAlerts(w, resp.Alerts)
	}
}

func printScans(w io.Writer, scans []models.ScanResult) {
	if len(scans) == 0 {
		fmt.Fprintln(w, "No scans")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tTYPE\tNAME\tSTATUS\tRISK\tFINDINGS\tCREATED")
	for i := range scans {
		s := &scans[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			s.ID, s.Type, orDash(s.FileName), orDash(s.Status), formatRisk(s), len(s.Findings), formatTime(s.CreatedAt))
	}
	tw.Flush()
}

func printAlerts(w io.Writer, alerts []models.Alert) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "No alerts")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSEVERITY\tSTATUS\tTITLE\tCREATED")
	for _, al := range alerts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", al.ID, al.Severity, al.Status, al.Title, formatTime(al.CreatedAt))
	}
	tw.Flush()
}

func printAlertChange(w io.Writer, id string, al *models.Alert) {
	if al == nil {
		fmt.Fprintf(w, "Alert %s updated\n", id)
		return
	}
	fmt.Fprintf(w, "Alert %s is now %s", al.ID, al.Status)
	if al.SnoozedUntil != nil {
		fmt.Fprintf(w, " until %s", formatTime(al.SnoozedUntil))
	}
	fmt.Fprintln(w)
}

func printPagination(w io.Writer, p models.Pagination) {
	if p.TotalPages == 0 {
		return
	}
	fmt.Fprintf(w, "Page %d of %d (%d total)\n", p.Page, p.TotalPages, p.Total)
}

func printScanStats(w io.Writer, st *models.ScanStats) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total scans:\t%d\n", st.TotalScans)
	fmt.Fprintf(tw, "Scans today:\t%d\n", st.ScansToday)
	fmt.Fprintf(tw, "Threats found:\t%d\n", st.ThreatsFound)
	fmt.Fprintf(tw, "Clean scans:\t%d\n", st.CleanScans)
	fmt.Fprintf(tw, "Average risk score:\t%.1f\n", st.AverageRiskScore)
	printCounts(tw, "By type", st.ByType)
	printCounts(tw, "By risk level", st.ByRiskLevel)
	tw.Flush()
}

func printAlertStats(w io.Writer, st *models.AlertStats) {
	tw := newTable(w)
	fmt.Fprintf(tw, "Total:\t%d\n", st.Total)
	fmt.Fprintf(tw, "Open:\t%d\n", st.Open)
	fmt.Fprintf(tw, "Acknowledged:\t%d\n", st.Acknowledged)
	fmt.Fprintf(tw, "Resolved:\t%d\n", st.Resolved)
	fmt.Fprintf(tw, "Snoozed:\t%d\n", st.Snoozed)

	bySeverity := make(map[string]int, len(st.BySeverity))
	for k, v := range st.BySeverity {
		bySeverity[string(k)] = v
	}
	printCounts(tw, "By severity", bySeverity)
	tw.Flush()
}

// printCounts writes a map as indented rows in key order.
func printCounts(tw *tabwriter.Writer, title string, m map[string]int) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(tw, "%s:\t\n", title)
	for _, k := range keys {
		fmt.Fprintf(tw, "  %s\t%d\n", k, m[k])
	}
}
