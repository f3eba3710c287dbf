package hduration

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"1s", time.Second},
		{"0s", 0},
		{"1ns", time.Nanosecond},
		{"1ms", time.Millisecond},
		{"1s 10ns", time.Second + 10*time.Nanosecond},
		{"10ns 1s", time.Second + 10*time.Nanosecond},
		{"-1ns", -time.Nanosecond},
		{"-1s 1ns", -(time.Second + time.Nanosecond)},
		{"5m", 5 * time.Minute},
		{"5h", 5 * time.Hour},
		{"5d", 5 * 24 * time.Hour},
		{"5w", 5 * 7 * 24 * time.Hour},
		{"3w 5d 2h 10m 7s 1ns", 2254207*time.Second + time.Nanosecond},
		{"3w5d2h", 2253600 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got.Duration() != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got.Duration(), tt.want)
			}
			if got.String() != tt.input {
				t.Errorf("Parse(%q).String() = %q", tt.input, got.String())
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"negative must be at front", "1s -1ns"},
		{"wrong order", "s1"},
		{"split term", "1 s"},
		{"unit before number", "s 1"},
		{"leading space", " 1s"},
		{"trailing space", "1s "},
		{"unknown unit", "10x"},
		{"no unit", "123"},
		{"fractional not supported", "1.5h"},
		{"double space", "1s  1ns"},
		{"too large", "99999999999999999999w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		dur  time.Duration
		want string
	}{
		{0, "0s"},
		{time.Second, "1s"},
		{164 * time.Second, "2m 44s"},
		{2253600 * time.Second, "3w 5d 2h"},
		{2254207*time.Second + time.Nanosecond, "3w 5d 2h 10m 7s 1ns"},
		{1500 * time.Millisecond, "1s 500ms"},
		{-time.Minute, "-1m"},
		{-(90*time.Minute + time.Second), "-1h 30m 1s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Format(tt.dur); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.dur, got, tt.want)
			}
		})
	}
}

// Parse and Format agree with each other on normalized strings.
func TestRoundTrip(t *testing.T) {
	for _, input := range []string{"3w 5d 2h", "2m 44s", "1s 500ms", "-1h 30m 1s"} {
		t.Run(input, func(t *testing.T) {
			h, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", input, err)
			}
			if got := Format(h.Duration()); got != input {
				t.Errorf("Format(Parse(%q)) = %q", input, got)
			}
		})
	}
}
