package monthkey

import (
	"errors"
	"testing"
	"time"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"month_name_year", "January 2026", "2026-01-01"},
		{"lowercase_month_name", "march 2026", "2026-03-01"},
		{"short_month_name", "Dec 2025", "2025-12-01"},
		{"year_month", "2026-01", "2026-01-01"},
		{"full_date_mid_month", "2026-01-17", "2026-01-01"},
		{"full_date_last_day", "2024-02-29", "2024-02-01"},
		{"surrounding_whitespace", "  2026-07  ", "2026-07-01"},
		{"generic_datetime", "2026-05-20 13:45:00", "2026-05-01"},
		{"generic_unpadded_date", "2026-4-9", "2026-04-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeString(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_EquivalentInputsShareKey(t *testing.T) {
	a, err := Normalize("January 2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := Normalize("2026-01")
	c, _ := Normalize("2026-01-15")

	if !a.Equal(b) || !b.Equal(c) {
		t.Fatalf("expected identical keys, got %v %v %v", a, b, c)
	}
	if a.Location() != time.UTC {
		t.Errorf("expected UTC key, got %v", a.Location())
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "not a month", "Smarch 2026", "12", "3", "10:30", "1-2", "13-45", "2026", "03/2026"} {
		t.Run(input, func(t *testing.T) {
			_, err := Normalize(input)
			if !errors.Is(err, ErrInvalidMonthFormat) {
				t.Errorf("expected ErrInvalidMonthFormat for %q, got %v", input, err)
			}
		})
	}
}

func TestOf(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 2026-03-31 23:30 in UTC+10 is still March locally.
	at := time.Date(2026, 3, 31, 23, 30, 0, 0, loc)

	if got := Format(at); got != "2026-03-01" {
		t.Errorf("expected 2026-03-01, got %s", got)
	}
}

func TestTrailing(t *testing.T) {
	at := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

	t.Run("six_months_cross_year", func(t *testing.T) {
		keys := Trailing(at, 6)
		want := []string{"2025-09-01", "2025-10-01", "2025-11-01", "2025-12-01", "2026-01-01", "2026-02-01"}
		if len(keys) != len(want) {
			t.Fatalf("expected %d keys, got %d", len(want), len(keys))
		}
		for i, k := range keys {
			if Format(k) != want[i] {
				t.Errorf("key[%d] = %s, want %s", i, Format(k), want[i])
			}
		}
	})

	t.Run("twelve_months", func(t *testing.T) {
		keys := Trailing(at, 12)
		if len(keys) != 12 {
			t.Fatalf("expected 12 keys, got %d", len(keys))
		}
		if Format(keys[0]) != "2025-03-01" {
			t.Errorf("expected first key 2025-03-01, got %s", Format(keys[0]))
		}
	})

	t.Run("non_positive", func(t *testing.T) {
		if keys := Trailing(at, 0); len(keys) != 0 {
			t.Errorf("expected no keys, got %d", len(keys))
		}
	})
}
