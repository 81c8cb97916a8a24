package snapshot

import (
	"strings"
	"time"
)

// Date is a parsed calendar date. Valid is false for missing or unparsable
// input; consumers must exclude invalid dates from date logic entirely,
// never treat them as a zero or epoch date.
type Date struct {
	Time  time.Time
	Valid bool
}

// dateLayouts are the accepted input formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2006/01/02",
}

// ParseDate parses a date string, truncating any time component to midnight
// UTC so that comparisons are calendar-day comparisons.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: Midnight(t), Valid: true}
		}
	}
	return Date{}
}

// Midnight truncates a time to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders the date as YYYY-MM-DD, or "Invalid" when not valid.
func (d Date) Format() string {
	if !d.Valid {
		return "Invalid"
	}
	return d.Time.Format("2006-01-02")
}

// OnOrBefore reports d ≤ other by calendar date. Either side being invalid
// is the caller's responsibility to exclude beforehand.
func (d Date) OnOrBefore(other Date) bool {
	return !d.Time.After(other.Time)
}

// SplitList splits a comma-separated field into lowercased, trimmed tokens,
// dropping empties. A missing field yields an empty set.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// assignmentSentinels are the raw field values that mean "no assignment".
// The en-dash is what the upstream spreadsheets write into empty cells.
var assignmentSentinels = map[string]bool{
	"":     true,
	"–":    true,
	"None": true,
}

// NormalizeAssignment maps the empty-assignment sentinels to nil and returns
// a pointer to the mission ID otherwise.
func NormalizeAssignment(s string) *string {
	s = strings.TrimSpace(s)
	if assignmentSentinels[s] {
		return nil
	}
	return &s
}

// Contains reports whether a token set holds the given token.
func Contains(set []string, token string) bool {
	for _, t := range set {
		if t == token {
			return true
		}
	}
	return false
}

// Missing returns the tokens of required that are absent from held,
// preserving the order of required.
func Missing(required, held []string) []string {
	var missing []string
	for _, r := range required {
		if !Contains(held, r) {
			missing = append(missing, r)
		}
	}
	return missing
}

// Intersection counts how many distinct required tokens appear in held.
func Intersection(required, held []string) int {
	seen := make(map[string]bool, len(required))
	n := 0
	for _, r := range required {
		if seen[r] {
			continue
		}
		seen[r] = true
		if Contains(held, r) {
			n++
		}
	}
	return n
}
