package models

import (
	"encoding/json"
)

// DefaultEventColor is the fallback block color when neither the event nor its
// teacher carries one.
const DefaultEventColor = "#4285F4"

// View modes supported by the calendar.
const (
	ViewMonth  = "Month"
	ViewWeek   = "Week"
	ViewDay    = "Day"
	ViewAgenda = "Agenda"
)

// IsValidViewMode checks a requested view mode against the supported set.
func IsValidViewMode(mode string) bool {
	switch mode {
	case ViewMonth, ViewWeek, ViewDay, ViewAgenda:
		return true
	}
	return false
}

// Attendance states for a student within one event.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Teacher is a roster entry. Checked controls day-grid visibility only and
// never affects the underlying events.
type Teacher struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
	Color   string `json:"color"`
}

// StudentAttendance is one student's record inside an event. Students are
// keyed by name within a single event; they are not globally unique.
type StudentAttendance struct {
	Name          string `json:"name"`
	Attendance    string `json:"attendance"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
}

// UnmarshalJSON accepts both the structured record and the legacy bare-name
// string encoding. Normalizing here means nothing downstream ever sees the
// legacy shape.
func (s *StudentAttendance) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*s = StudentAttendance{Name: name, Attendance: AttendanceAbsent}
		return nil
	}

	type plain StudentAttendance
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Attendance == "" {
		p.Attendance = AttendanceAbsent
	}
	*s = StudentAttendance(p)
	return nil
}

// Event is a scheduled session. Date is stored as an ISO timestamp; StartTime
// and EndTime are 24-hour "HH:MM" strings. TeacherID 0 means unassigned
// ("Admin"). Double-booking the same teacher, date and start time is allowed;
// no conflict check exists anywhere.
type Event struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Date        string              `json:"date"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	TeacherID   int64               `json:"teacher_id,omitempty"`
	Teacher     string              `json:"teacher,omitempty"`
	Subject     string              `json:"subject,omitempty"`
	Branch      string              `json:"branch,omitempty"`
	Location    string              `json:"location,omitempty"`
	Students    []StudentAttendance `json:"students,omitempty"`
	Color       string              `json:"color,omitempty"`
}

// NormalizeStudents fills default attendance on entries that were built in
// code rather than decoded from JSON.
func (e *Event) NormalizeStudents() {
	for i := range e.Students {
		if e.Students[i].Attendance == "" {
			e.Students[i].Attendance = AttendanceAbsent
		}
	}
}

// LeaveRecord marks a teacher absent on a calendar day ("2006-01-02"). Leave
// is advisory: the day grid mutes the column but creation stays allowed.
type LeaveRecord struct {
	TeacherID int64  `json:"teacher_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

// LeaveStatus is the only status value the overlay reacts to.
const LeaveStatus = "leave"
