// Package monthkey canonicalizes the different ways clients name a month
// into one key: the first day of that month, at midnight UTC.
package monthkey

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

// Layout is the string form of a month key.
const Layout = "2006-01-02"

// ErrInvalidMonthFormat is returned when no accepted pattern parses the input.
var ErrInvalidMonthFormat = errors.New("invalid month format")

// explicitLayouts are tried in order before falling back to generic date parsing.
var explicitLayouts = []string{
	"January 2006",
	"Jan 2006",
	"2006-01",
	"2006-01-02",
}

// datePrefix gates the generic fallback. jinzhu/now fills missing date
// parts from the clock, so bare numbers and times would resolve to the
// current month.
var datePrefix = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}\b`)

// Normalize resolves s to the first day of its month.
// "January 2026", "2026-01" and "2026-01-17" all yield 2026-01-01.
func Normalize(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidMonthFormat
	}

	for _, layout := range explicitLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Of(t), nil
		}
	}

	if !datePrefix.MatchString(s) {
		return time.Time{}, ErrInvalidMonthFormat
	}
	t, err := now.Parse(s)
	if err != nil {
		return time.Time{}, ErrInvalidMonthFormat
	}
	return Of(t), nil
}

// NormalizeString is Normalize followed by Format.
func NormalizeString(s string) (string, error) {
	t, err := Normalize(s)
	if err != nil {
		return "", err
	}
	return Format(t), nil
}

// Of returns the month key containing t, read in t's own location.
func Of(t time.Time) time.Time {
	start := now.With(t).BeginningOfMonth()
	return time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Format renders a month key as YYYY-MM-01.
func Format(t time.Time) string {
	return Of(t).Format(Layout)
}

// Trailing returns n month keys ending with the month of at, oldest first.
func Trailing(at time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	last := Of(at)
	keys := make([]time.Time, n)
	for i := 0; i < n; i++ {
		keys[i] = last.AddDate(0, i-(n-1), 0)
	}
	return keys
}
