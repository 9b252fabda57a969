package services

import (
	"testing"
	"time"

	"tutorcal_go/models"
)

func testEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Algebra Basics", Description: "Intro session", Date: "2025-03-12", StartTime: "14:00", EndTime: "15:00"},
		{ID: 2, Title: "Chemistry Lab", Description: "Periodic table", Date: "2025-03-15", StartTime: "10:00", EndTime: "11:00"},
		{ID: 3, Title: "History", Description: "World war", Date: "2025-04-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: 4, Title: "Broken", Description: "", Date: "not-a-date", StartTime: "09:00", EndTime: "10:00"},
	}
}

func eventIDs(events []models.Event) []int64 {
	out := make([]int64, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestMonthEvents(t *testing.T) {
	ref := time.Date(2025, 3, 20, 0, 0, 0, 0, time.Local)
	got := MonthEvents(testEvents(), ref)
	if len(got) != 2 {
		t.Fatalf("month events = %v, want ids [1 2]", eventIDs(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("month events = %v, want [1 2]", eventIDs(got))
	}
}

func TestWeekEvents(t *testing.T) {
	tests := []struct {
		name    string
		ref     time.Time
		wantIDs []int64
	}{
		// 2025-03-12 is a Wednesday; its week runs Sun 03-09 .. Sat 03-15.
		{name: "midweek reference", ref: time.Date(2025, 3, 12, 12, 0, 0, 0, time.Local), wantIDs: []int64{1, 2}},
		{name: "saturday inclusive", ref: time.Date(2025, 3, 15, 23, 0, 0, 0, time.Local), wantIDs: []int64{1, 2}},
		{name: "following week", ref: time.Date(2025, 3, 18, 0, 0, 0, 0, time.Local), wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekEvents(testEvents(), tt.ref)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("week events = %v, want %v", eventIDs(got), tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("week events = %v, want %v", eventIDs(got), tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestDayEvents(t *testing.T) {
	ref := time.Date(2025, 3, 12, 18, 0, 0, 0, time.Local)
	got := DayEvents(testEvents(), ref)
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("day events = %v, want [1]", eventIDs(got))
	}

	// Events with unparseable dates never match any day.
	empty := DayEvents(testEvents(), time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local))
	if len(empty) != 0 {
		t.Errorf("day events = %v, want none", eventIDs(empty))
	}
}

func TestAgendaEvents(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{name: "empty term matches all", term: "", wantIDs: []int64{1, 2, 3, 4}},
		{name: "title match", term: "algebra", wantIDs: []int64{1}},
		{name: "case insensitive", term: "CHEMISTRY", wantIDs: []int64{2}},
		{name: "description match", term: "periodic", wantIDs: []int64{2}},
		{name: "no match", term: "zzz", wantIDs: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgendaEvents(testEvents(), tt.term)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("agenda events = %v, want %v", eventIDs(got), tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("agenda events = %v, want %v", eventIDs(got), tt.wantIDs)
					break
				}
			}
		})
	}
}

func TestEventEnded(t *testing.T) {
	event := models.Event{Date: "2025-03-12", StartTime: "14:00", EndTime: "15:00"}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "before end", now: time.Date(2025, 3, 12, 14, 30, 0, 0, time.Local), want: false},
		{name: "exactly at end", now: time.Date(2025, 3, 12, 15, 0, 0, 0, time.Local), want: false},
		{name: "after end", now: time.Date(2025, 3, 12, 15, 0, 1, 0, time.Local), want: true},
		{name: "next day", now: time.Date(2025, 3, 13, 9, 0, 0, 0, time.Local), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EventEnded(event, tt.now); got != tt.want {
				t.Errorf("EventEnded = %v, want %v", got, tt.want)
			}
		})
	}

	// Unparseable values never mark an event as ended.
	late := time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)
	if EventEnded(models.Event{Date: "bogus", EndTime: "15:00"}, late) {
		t.Error("unparseable date must not count as ended")
	}
	if EventEnded(models.Event{Date: "2025-03-12", EndTime: "late"}, late) {
		t.Error("unparseable end time must not count as ended")
	}
}

func TestEffectiveColor(t *testing.T) {
	tests := []struct {
		name         string
		eventColor   string
		teacherColor string
		want         string
	}{
		{name: "event color wins", eventColor: "#EA4335", teacherColor: "#34A853", want: "#EA4335"},
		{name: "teacher color next", eventColor: "", teacherColor: "#34A853", want: "#34A853"},
		{name: "default last", eventColor: "", teacherColor: "", want: models.DefaultEventColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := models.Event{Color: tt.eventColor}
			if got := EffectiveColor(e, tt.teacherColor); got != tt.want {
				t.Errorf("EffectiveColor = %q, want %q", got, tt.want)
			}
		})
	}
}
