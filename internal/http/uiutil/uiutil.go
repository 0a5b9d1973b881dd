// Package uiutil holds small formatting helpers shared by templates.
package uiutil

import (
	"strings"
	"time"
)

// FriendlyDateTimeLayout is how timestamps are shown in tables.
const FriendlyDateTimeLayout = "Jan 2, 2006 3:04 PM"

// serverTimeLayouts are the timestamp shapes the record server emits.
var serverTimeLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatFriendlyDateTime returns a consistent, user-friendly timestamp.
func FormatFriendlyDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(FriendlyDateTimeLayout)
}

// FormatServerTime reformats a timestamp string from the record server. Values
// it cannot parse are returned unchanged.
func FormatServerTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	for _, layout := range serverTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if layout == "2006-01-02" {
				return t.Format("Jan 2, 2006")
			}
			return FormatFriendlyDateTime(t)
		}
	}
	return s
}
