package utils

import (
	"testing"
	"time"
)

func TestParseHourMinute(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHour int
		wantMin  int
		wantErr  bool
	}{
		{name: "plain clock", input: "14:30", wantHour: 14, wantMin: 30},
		{name: "single digit hour", input: "9:05", wantHour: 9, wantMin: 5},
		{name: "with seconds", input: "08:15:00", wantHour: 8, wantMin: 15},
		{name: "iso datetime", input: "2025-03-12T14:30:00Z", wantHour: 14, wantMin: 30},
		{name: "space datetime", input: "2025-03-12 14:30:00", wantHour: 14, wantMin: 30},
		{name: "midnight", input: "00:00", wantHour: 0, wantMin: 0},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "not a time", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseHourMinute(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHourMinute(%q) expected error, got %d:%d", tt.input, hour, minute)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHourMinute(%q) unexpected error: %v", tt.input, err)
			}
			if hour != tt.wantHour || minute != tt.wantMin {
				t.Errorf("ParseHourMinute(%q) = %d:%d, want %d:%d", tt.input, hour, minute, tt.wantHour, tt.wantMin)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDay string
		wantErr bool
	}{
		{name: "bare date", input: "2025-03-12", wantDay: "2025-03-12"},
		{name: "iso timestamp", input: "2025-03-12T09:00:00Z", wantDay: "2025-03-12"},
		{name: "space datetime", input: "2025-03-12 09:00:00", wantDay: "2025-03-12"},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizeDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDate(%q) unexpected error: %v", tt.input, err)
			}
			if got.Format("2006-01-02") != tt.wantDay {
				t.Errorf("NormalizeDate(%q) = %s, want %s", tt.input, got.Format("2006-01-02"), tt.wantDay)
			}
		})
	}
}

func TestWeekBounds(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	ref := time.Date(2025, 3, 12, 15, 30, 0, 0, time.Local)
	start, end := WeekBounds(ref)

	if start.Weekday() != time.Sunday {
		t.Errorf("week start weekday = %v, want Sunday", start.Weekday())
	}
	if got := start.Format("2006-01-02 15:04:05"); got != "2025-03-09 00:00:00" {
		t.Errorf("week start = %s, want 2025-03-09 00:00:00", got)
	}
	if end.Weekday() != time.Saturday {
		t.Errorf("week end weekday = %v, want Saturday", end.Weekday())
	}
	if got := end.Format("2006-01-02 15:04:05.000"); got != "2025-03-15 23:59:59.999" {
		t.Errorf("week end = %s, want 2025-03-15 23:59:59.999", got)
	}
}

func TestWeekBoundsOnSunday(t *testing.T) {
	// A Sunday reference starts its own week.
	ref := time.Date(2025, 3, 9, 0, 0, 0, 0, time.Local)
	start, _ := WeekBounds(ref)
	if got := start.Format("2006-01-02"); got != "2025-03-09" {
		t.Errorf("week start = %s, want 2025-03-09", got)
	}
}

func TestTo12Hour(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "14:30", want: "2:30 PM"},
		{input: "00:05", want: "12:05 AM"},
		{input: "12:00", want: "12:00 PM"},
		{input: "09:15", want: "9:15 AM"},
		{input: "2:30 PM", want: "2:30 PM"},
		{input: "bogus", want: "bogus"},
	}

	for _, tt := range tests {
		if got := To12Hour(tt.input); got != tt.want {
			t.Errorf("To12Hour(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{hour: 14, minute: 5, want: "2:05 PM"},
		{hour: 0, minute: 0, want: "12:00 AM"},
		{hour: 12, minute: 30, want: "12:30 PM"},
		{hour: 9, minute: 59, want: "9:59 AM"},
	}

	for _, tt := range tests {
		stamp := time.Date(2025, 3, 12, tt.hour, tt.minute, 0, 0, time.Local)
		if got := FormatClock(stamp); got != tt.want {
			t.Errorf("FormatClock(%02d:%02d) = %q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		minutes int
		want    string
		wantErr bool
	}{
		{name: "one hour", start: "14:00", minutes: 60, want: "15:00"},
		{name: "75 minutes", start: "14:00", minutes: 75, want: "15:15"},
		{name: "90 minutes", start: "22:45", minutes: 90, want: "00:15"},
		{name: "exact midnight wrap", start: "23:00", minutes: 60, want: "00:00"},
		{name: "bad start", start: "late", minutes: 60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddMinutes(tt.start, tt.minutes)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("AddMinutes(%q, %d) expected error, got %q", tt.start, tt.minutes, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddMinutes(%q, %d) unexpected error: %v", tt.start, tt.minutes, err)
			}
			if got != tt.want {
				t.Errorf("AddMinutes(%q, %d) = %q, want %q", tt.start, tt.minutes, got, tt.want)
			}
		})
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 0, want: "12 AM"},
		{hour: 1, want: "1 AM"},
		{hour: 11, want: "11 AM"},
		{hour: 12, want: "12 PM"},
		{hour: 13, want: "1 PM"},
		{hour: 23, want: "11 PM"},
	}

	for _, tt := range tests {
		if got := HourLabel(tt.hour); got != tt.want {
			t.Errorf("HourLabel(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "Nirga Naik", want: "NN"},
		{name: "Tulsi", want: "T"},
		{name: "Pournima Khanapure", want: "PK"},
		{name: "", want: ""},
	}

	for _, tt := range tests {
		if got := Initials(tt.name); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
