package scoring

import (
	"math"
	"testing"
)

func TestFormatDurationRounded(t *testing.T) {
	tests := []struct {
		ms   uint32
		want string
	}{
		{0, "0:00"},
		{499, "0:00"},
		{500, "0:01"},
		{59_400, "0:59"},
		{59_600, "1:00"},
		{61_000, "1:01"},
		{899_500, "15:00"},
		{3_599_600, "1:00:00"},
		{3_600_000, "1:00:00"},
		{3_661_499, "1:01:01"},
		{36_000_000, "10:00:00"},
	}

	for _, tt := range tests {
		if got := FormatDurationRounded(tt.ms); got != tt.want {
			t.Errorf("FormatDurationRounded(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestFormatDurationPadded(t *testing.T) {
	tests := []struct {
		ms   uint32
		want string
	}{
		{0, "00:00:00.000"},
		{500, "00:00:00.500"},
		{59_600, "00:00:59.600"},
		{3_723_456, "01:02:03.456"},
		{math.MaxUint32, "1193:02:47.295"},
	}

	for _, tt := range tests {
		if got := FormatDurationPadded(tt.ms); got != tt.want {
			t.Errorf("FormatDurationPadded(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
