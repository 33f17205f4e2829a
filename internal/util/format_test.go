package util

import "testing"

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		offset, max float64
		want        string
	}{
		{0, 0, "All"},
		{0, 100, "Top"},
		{100, 100, "Bot"},
		{50, 100, "50%"},
		{120, 100, "Bot"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.offset, tt.max); got != tt.want {
			t.Errorf("FormatPercent(%v, %v) = %q, want %q", tt.offset, tt.max, got, tt.want)
		}
	}
}

func TestFormatPosition(t *testing.T) {
	if got := FormatPosition(12, 340); got != "12/340" {
		t.Errorf("expected 12/340, got %q", got)
	}
	if got := FormatPosition(0, 10); got != "1/10" {
		t.Errorf("expected clamp to 1/10, got %q", got)
	}
	if got := FormatPosition(99, 10); got != "10/10" {
		t.Errorf("expected clamp to 10/10, got %q", got)
	}
}
