package parser

import (
	"reflect"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"15/12/2026", "2026-12-15", false},
		{"1/9/2026", "2026-09-01", false},
		{"2026-12-15", "2026-12-15", false},
		{"today", "2026-08-30", false},
		{"", "2026-08-30", false},
		{"tomorrow", "2026-08-31", false},
		{"29/02/2024", "2024-02-29", false}, // leap year
		{"29/02/2026", "", true},            // not a leap year
		{"32/01/2026", "", true},
		{"15/13/2026", "", true},
		{"yesterday", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.input, now)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected error, got %q", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"9:00", "09:00", false},
		{"18:30", "18:30", false},
		{"24:00", "", true},
		{"09:60", "", true},
		{"morning", "", true},
	}

	for _, tt := range tests {
		got, err := ParseTime(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTime(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{"mon,wed,fri", []int{1, 3, 5}, false},
		{"1,3,5", []int{1, 3, 5}, false},
		{"sunday", []int{0}, false},
		{"fri, Mon", []int{1, 5}, false}, // order and case don't matter
		{"mon,mon,1", []int{1}, false},   // duplicates collapse
		{"mon,,wed", []int{1, 3}, false}, // empty parts ignored
		{"7", nil, true},
		{"funday", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		got, err := ParseWeekdays(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekdays(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekdays(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFormatWeekdays(t *testing.T) {
	if got := FormatWeekdays([]int{1, 3, 5}); got != "mon,wed,fri" {
		t.Errorf("FormatWeekdays = %q, want mon,wed,fri", got)
	}
}
