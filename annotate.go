package redline

import (
	"strings"
	"time"
)

// UnknownAuthor is stamped on revisions whose supplied author is empty
// or whitespace-only.
const UnknownAuthor = "Unknown"

func NormalizeAuthor(author string) string {
	if strings.TrimSpace(author) == "" {
		return UnknownAuthor
	}
	return author
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NormalizeDate converts an ISO-8601 timestamp in any offset notation
// to its UTC, Z-suffixed form. Empty, whitespace-only or unparseable
// input yields "", meaning no date attribute is written. The engine
// never reads the wall clock; an absent date stays absent.
func NormalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, date)
		if err != nil {
			continue
		}
		return t.UTC().Format(time.RFC3339)
	}
	return ""
}
