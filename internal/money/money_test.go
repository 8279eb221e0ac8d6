package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"45.50", 4550},
		{"45.5", 4550},
		{"700", 70000},
		{"0", 0},
		{"0.01", 1},
		{"-12.30", -1230},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ToCents(decimal.RequireFromString(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToCents(%s) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToCents_Rejects(t *testing.T) {
	for _, input := range []string{"1.005", "0.001", "99999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			_, err := ToCents(decimal.RequireFromString(input))
			if !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("expected ErrInvalidAmount, got %v", err)
			}
		})
	}
}

func TestFromCents(t *testing.T) {
	if got := FromCents(74550); !got.Equal(decimal.RequireFromString("745.50")) {
		t.Errorf("expected 745.50, got %s", got)
	}
	if got := FromCents(0).String(); got != "0" {
		t.Errorf("expected 0, got %s", got)
	}
}
