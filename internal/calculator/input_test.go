package calculator

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in     string
		want   uint32
		wantOK bool
	}{
		{"15:00", 900_000, true},
		{"14:32.5", 872_500, true},
		{"1:02:03.456", 3_723_456, true},
		{"0:59.6", 59_600, true},
		{"45", 45_000, true},
		{"45.1234", 45_123, true},
		{"1:00.05", 60_050, true},
		{" 2:00 ", 120_000, true},
		{"x:30", 30_000, true},
		{"1:xx", 60_000, true},
		{"", 0, false},
		{"   ", 0, false},
		{"1:2:3:4", 0, false},
		{"99999999:00:00", 4_294_967_295, true},
	}

	for _, tt := range tests {
		got, ok := ParseDuration(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ParseDuration(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseVitality(t *testing.T) {
	tests := []struct {
		in   string
		want uint8
	}{
		{"24", 24},
		{" 7 ", 7},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"256", 0},
	}

	for _, tt := range tests {
		if got := ParseVitality(tt.in); got != tt.want {
			t.Errorf("ParseVitality(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in     string
		want   uint32
		wantOK bool
	}{
		{"148300", 148300, true},
		{" 0 ", 0, true},
		{"", 0, false},
		{"12.5", 0, false},
		{"-1", 0, false},
		{"99999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseScore(tt.in)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseScore(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
