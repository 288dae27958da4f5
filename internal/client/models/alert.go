package models

import "net/url"

type AlertStatus string

const (
	AlertStatusOpen         AlertStatus = "open"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
	AlertStatusSnoozed      AlertStatus = "snoozed"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusOpen, AlertStatusAcknowledged, AlertStatusResolved, AlertStatusSnoozed:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type Alert struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Severity     Severity    `json:"severity"`
	Status       AlertStatus `json:"status"`
	Source       string      `json:"source,omitempty"`
	ScanID       string      `json:"scanId,omitempty"`
	AssignedTo   string      `json:"assignedTo,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	SnoozedUntil *Timestamp  `json:"snoozedUntil,omitempty"`
	CreatedAt    *Timestamp  `json:"createdAt,omitempty"`
	UpdatedAt    *Timestamp  `json:"updatedAt,omitempty"`
}

// AlertFilter narrows the alert list. Zero values mean "any".
type AlertFilter struct {
	Status   AlertStatus
	Severity Severity
}

// Apply adds the set filter fields to v.
func (f AlertFilter) Apply(v url.Values) {
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.Severity != "" {
		v.Set("severity", string(f.Severity))
	}
}

type AlertsResponse struct {
	Alerts     []Alert    `json:"alerts"`
	Pagination Pagination `json:"pagination"`
}

type AlertResponse struct {
	Alert   *Alert `json:"alert"`
	Message string `json:"message,omitempty"`
}

type AlertStats struct {
	Total        int                 `json:"total"`
	Open         int                 `json:"open"`
	Acknowledged int                 `json:"acknowledged"`
	Resolved     int                 `json:"resolved"`
	Snoozed      int                 `json:"snoozed"`
	BySeverity   map[Severity]int    `json:"bySeverity,omitempty"`
	ByStatus     map[AlertStatus]int `json:"byStatus,omitempty"`
}

// UpdateAlertRequest carries only the fields being changed.
type UpdateAlertRequest struct {
	Status     AlertStatus `json:"status,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	AssignedTo string      `json:"assignedTo,omitempty"`
}

type ResolveAlertRequest struct {
	Resolution string `json:"resolution,omitempty"`
}

// SnoozeAlertRequest carries the snooze length in minutes.
type SnoozeAlertRequest struct {
	Duration int `json:"duration"`
}
