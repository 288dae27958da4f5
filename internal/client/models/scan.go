package models

type TextScanRequest struct {
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
}

// Finding is one sensitive-data match inside a scanned item.
type Finding struct {
	Type       string  `json:"type"`
	Value      string  `json:"value,omitempty"`
	Severity   string  `json:"severity,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Line       int     `json:"line,omitempty"`
}

type ScanResult struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	FileName   string     `json:"fileName,omitempty"`
	Status     string     `json:"status"`
	RiskLevel  string     `json:"riskLevel,omitempty"`
	RiskScore  float64    `json:"riskScore,omitempty"`
	Findings   []Finding  `json:"findings"`
	CreatedAt  *Timestamp `json:"createdAt,omitempty"`
	DurationMS int64      `json:"duration,omitempty"`
}

type ScanResponse struct {
	Scan    *ScanResult `json:"scan"`
	Alerts  []Alert     `json:"alerts,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ScanHistoryResponse struct {
	Scans      []ScanResult `json:"scans"`
	Pagination Pagination   `json:"pagination"`
}

type ScanStats struct {
	TotalScans       int            `json:"totalScans"`
	ThreatsFound     int            `json:"threatsFound"`
	CleanScans       int            `json:"cleanScans"`
	ScansToday       int            `json:"scansToday"`
	ByType           map[string]int `json:"byType,omitempty"`
	ByRiskLevel      map[string]int `json:"byRiskLevel,omitempty"`
	AverageRiskScore float64        `json:"averageRiskScore,omitempty"`
}
