package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// timestampLayouts are tried in order when decoding a Timestamp.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp is a backend time value. Decoding never fails on the format:
// Raw always keeps the original text and Time is set only when it parses.
type Timestamp struct {
	Time time.Time
	Raw  string
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Numbers and other shapes are kept as their literal text.
		t.Raw = string(bytes.TrimSpace(data))
		return nil
	}
	t.Raw = s

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			break
		}
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw != "" {
		return json.Marshal(t.Raw)
	}
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// Parsed reports whether Time holds a decoded value.
func (t *Timestamp) Parsed() bool {
	return t != nil && !t.Time.IsZero()
}

// String formats a parsed value in local time, otherwise returns Raw.
func (t *Timestamp) String() string {
	if t == nil {
		return ""
	}
	if t.Parsed() {
		return t.Time.Local().Format("2006-01-02 15:04")
	}
	return t.Raw
}
