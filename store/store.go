package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tutorcal_go/models"
	"tutorcal_go/utils"
)

// Change types pushed to subscribers whenever the store mutates.
const (
	ChangeEventCreated      = "event_created"
	ChangeEventUpdated      = "event_updated"
	ChangeEventDeleted      = "event_deleted"
	ChangeTeacherToggled    = "teacher_toggled"
	ChangeAttendanceUpdated = "attendance_updated"
	ChangeSessionUpdated    = "session_updated"
)

// Duration choices offered by the create form, in minutes.
var DurationOptions = []int{60, 75, 90}

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrStudentNotFound = errors.New("student not found on event")
)

// ValidationError carries per-field messages back to the form; an invalid
// submission never reaches the event list.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Change is the payload delivered to subscribers after a mutation commits.
type Change struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Session holds the ephemeral per-process UI state. It evaporates on restart
// and is never persisted.
type Session struct {
	SelectedDate    string         `json:"selected_date"`
	ViewMode        string         `json:"view_mode"`
	WhatsAppClicked map[int64]bool `json:"whatsapp_clicked"`
	SentEvents      map[int64]bool `json:"sent_events"`
}

// Store owns the canonical event and teacher lists plus session state. All
// mutations are reducer-style: synchronous, guarded, and immediately visible
// to the next read. Subscribers are notified after the lock is released.
type Store struct {
	mu        sync.RWMutex
	events    []models.Event
	teachers  []models.Teacher
	session   Session
	lastID    int64
	listeners []func(Change)

	// Injectable clock for tests.
	now func() time.Time
}

func New() *Store {
	return &Store{
		session: Session{
			SelectedDate:    time.Now().Format("2006-01-02"),
			ViewMode:        models.ViewMonth,
			WhatsAppClicked: make(map[int64]bool),
			SentEvents:      make(map[int64]bool),
		},
		now: time.Now,
	}
}

// Subscribe registers a listener for store changes. Listeners are invoked
// synchronously after the mutation commits; keep them cheap.
func (s *Store) Subscribe(fn func(Change)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store) notify(c Change) {
	s.mu.RLock()
	listeners := make([]func(Change), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(c)
	}
}

// SetClock overrides the wall clock, for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

// nextID assigns Unix-millisecond ids, bumping on collision so ids stay
// unique and monotonic even when two events are created in the same tick.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// --- Events ---

// Events returns a copy of the event list.
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// EventByID looks up a single event.
func (s *Store) EventByID(id int64) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Event{}, ErrEventNotFound
}

// AddEvent validates and appends a new event. EndTime is derived from
// StartTime plus durationMinutes when not supplied; a fresh unique id is
// assigned and the date is normalized to a full ISO timestamp.
func (s *Store) AddEvent(e models.Event, durationMinutes int) (models.Event, error) {
	fields := make(map[string]string)
	if e.Title == "" {
		fields["title"] = "Title is required"
	}
	if e.Date == "" {
		fields["date"] = "Date is required"
	}
	if e.StartTime == "" {
		fields["start_time"] = "Start time is required"
	}

	var eventDate time.Time
	if e.Date != "" {
		var err error
		eventDate, err = utils.NormalizeDate(e.Date)
		if err != nil {
			fields["date"] = "Date is not a recognizable date"
		}
	}
	if e.StartTime != "" {
		if _, _, err := utils.ParseHourMinute(e.StartTime); err != nil {
			fields["start_time"] = "Start time must be HH:MM"
		}
	}
	if len(fields) > 0 {
		return models.Event{}, &ValidationError{Fields: fields}
	}

	if e.EndTime == "" {
		if durationMinutes == 0 {
			durationMinutes = DurationOptions[0]
		}
		valid := false
		for _, d := range DurationOptions {
			if d == durationMinutes {
				valid = true
				break
			}
		}
		if !valid {
			return models.Event{}, &ValidationError{Fields: map[string]string{
				"duration_minutes": "Duration must be one of 60, 75 or 90 minutes",
			}}
		}
		end, err := utils.AddMinutes(e.StartTime, durationMinutes)
		if err != nil {
			return models.Event{}, &ValidationError{Fields: map[string]string{
				"start_time": "Start time must be HH:MM",
			}}
		}
		e.EndTime = end
	}

	e.Date = eventDate.Format(time.RFC3339)
	e.NormalizeStudents()

	s.mu.Lock()
	e.ID = s.nextID()
	s.events = append(s.events, e)
	s.mu.Unlock()

	s.notify(Change{Type: ChangeEventCreated, Data: e})
	return e, nil
}

// UpdateEvent replaces the event with a matching id wholesale. Every other
// record is left untouched and the id is never reassigned.
func (s *Store) UpdateEvent(e models.Event) (models.Event, error) {
	if e.Title == "" {
		return models.Event{}, &ValidationError{Fields: map[string]string{
			"title": "Title is required",
		}}
	}
	if e.Date != "" {
		if d, err := utils.NormalizeDate(e.Date); err == nil {
			e.Date = d.Format(time.RFC3339)
		}
	}
	e.NormalizeStudents()

	s.mu.Lock()
	idx := -1
	for i := range s.events {
		if s.events[i].ID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Event{}, ErrEventNotFound
	}
	s.events[idx] = e
	s.mu.Unlock()

	s.notify(Change{Type: ChangeEventUpdated, Data: e})
	return e, nil
}

// DeleteEvent removes the event with the given id. Deleting an unknown id is
// a no-op; the returned flag says whether anything was removed.
func (s *Store) DeleteEvent(id int64) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.events {
		if s.events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.events = append(s.events[:idx], s.events[idx+1:]...)
	delete(s.session.WhatsAppClicked, id)
	delete(s.session.SentEvents, id)
	s.mu.Unlock()

	s.notify(Change{Type: ChangeEventDeleted, Data: id})
	return true
}

// --- Attendance ---

// ToggleAttendance flips one student between absent and present. Marking
// present stamps the arrival time and clears any departure time; marking
// absent clears both derived timestamps.
func (s *Store) ToggleAttendance(eventID int64, studentName string) (models.Event, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.events {
		if s.events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Event{}, ErrEventNotFound
	}

	found := false
	for i := range s.events[idx].Students {
		st := &s.events[idx].Students[i]
		if st.Name != studentName {
			continue
		}
		found = true
		if st.Attendance == models.AttendancePresent {
			st.Attendance = models.AttendanceAbsent
			st.ArrivalTime = ""
		} else {
			st.Attendance = models.AttendancePresent
			st.ArrivalTime = utils.FormatClock(s.now())
		}
		st.DepartureTime = ""
	}
	if !found {
		s.mu.Unlock()
		return models.Event{}, ErrStudentNotFound
	}
	updated := s.events[idx]
	s.mu.Unlock()

	s.notify(Change{Type: ChangeAttendanceUpdated, Data: updated})
	return updated, nil
}

// CheckoutStudent stamps a departure time for a present student. Students who
// are absent cannot be checked out.
func (s *Store) CheckoutStudent(eventID int64, studentName string) (models.Event, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.events {
		if s.events[i].ID == eventID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Event{}, ErrEventNotFound
	}

	found := false
	for i := range s.events[idx].Students {
		st := &s.events[idx].Students[i]
		if st.Name != studentName {
			continue
		}
		found = true
		if st.Attendance == models.AttendancePresent {
			st.DepartureTime = utils.FormatClock(s.now())
		}
	}
	if !found {
		s.mu.Unlock()
		return models.Event{}, ErrStudentNotFound
	}
	updated := s.events[idx]
	s.mu.Unlock()

	s.notify(Change{Type: ChangeAttendanceUpdated, Data: updated})
	return updated, nil
}

// --- Teachers ---

// Teachers returns a copy of the roster in seed order.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Teacher, len(s.teachers))
	copy(out, s.teachers)
	return out
}

// VisibleTeachers returns only checked teachers, in roster order.
func (s *Store) VisibleTeachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		if t.Checked {
			out = append(out, t)
		}
	}
	return out
}

// TeacherByID looks up a roster entry.
func (s *Store) TeacherByID(id int64) (models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Teacher{}, ErrTeacherNotFound
}

// ToggleTeacher flips only that teacher's checked flag; events are never
// touched.
func (s *Store) ToggleTeacher(id int64) (models.Teacher, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.teachers {
		if s.teachers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return models.Teacher{}, ErrTeacherNotFound
	}
	s.teachers[idx].Checked = !s.teachers[idx].Checked
	updated := s.teachers[idx]
	s.mu.Unlock()

	s.notify(Change{Type: ChangeTeacherToggled, Data: updated})
	return updated, nil
}

// --- Session state ---

// SessionState returns a copy of the ephemeral session state.
func (s *Store) SessionState() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySessionLocked()
}

func (s *Store) copySessionLocked() Session {
	out := Session{
		SelectedDate:    s.session.SelectedDate,
		ViewMode:        s.session.ViewMode,
		WhatsAppClicked: make(map[int64]bool, len(s.session.WhatsAppClicked)),
		SentEvents:      make(map[int64]bool, len(s.session.SentEvents)),
	}
	for k, v := range s.session.WhatsAppClicked {
		out.WhatsAppClicked[k] = v
	}
	for k, v := range s.session.SentEvents {
		out.SentEvents[k] = v
	}
	return out
}

// SetViewMode switches the active view.
func (s *Store) SetViewMode(mode string) (Session, error) {
	if !models.IsValidViewMode(mode) {
		return Session{}, fmt.Errorf("unknown view mode %q", mode)
	}
	s.mu.Lock()
	s.session.ViewMode = mode
	out := s.copySessionLocked()
	s.mu.Unlock()

	s.notify(Change{Type: ChangeSessionUpdated, Data: out})
	return out, nil
}

// SetSelectedDate jumps the calendar to a specific date.
func (s *Store) SetSelectedDate(date string) (Session, error) {
	d, err := utils.NormalizeDate(date)
	if err != nil {
		return Session{}, err
	}
	s.mu.Lock()
	s.session.SelectedDate = d.Format("2006-01-02")
	out := s.copySessionLocked()
	s.mu.Unlock()

	s.notify(Change{Type: ChangeSessionUpdated, Data: out})
	return out, nil
}

// Navigate steps the selected date by one day, week or month depending on the
// active view. "today" resets to the current date; the Agenda view has no
// period so prev/next leave the date alone.
func (s *Store) Navigate(action string) (Session, error) {
	s.mu.Lock()
	current, err := utils.NormalizeDate(s.session.SelectedDate)
	if err != nil {
		current = s.now()
	}

	switch action {
	case "today":
		current = s.now()
	case "prev", "next":
		step := 1
		if action == "prev" {
			step = -1
		}
		switch s.session.ViewMode {
		case models.ViewDay:
			current = current.AddDate(0, 0, step)
		case models.ViewWeek:
			current = current.AddDate(0, 0, 7*step)
		case models.ViewMonth:
			current = current.AddDate(0, step, 0)
		}
	default:
		s.mu.Unlock()
		return Session{}, fmt.Errorf("unknown navigation action %q", action)
	}

	s.session.SelectedDate = current.Format("2006-01-02")
	out := s.copySessionLocked()
	s.mu.Unlock()

	s.notify(Change{Type: ChangeSessionUpdated, Data: out})
	return out, nil
}

// ToggleWhatsAppClicked flips the per-event share-icon state and returns the
// new value. The share link is only built on the first click.
func (s *Store) ToggleWhatsAppClicked(eventID int64) bool {
	s.mu.Lock()
	s.session.WhatsAppClicked[eventID] = !s.session.WhatsAppClicked[eventID]
	clicked := s.session.WhatsAppClicked[eventID]
	s.mu.Unlock()
	return clicked
}

// MarkEventSent records the per-event "sent" tick.
func (s *Store) MarkEventSent(eventID int64) error {
	if _, err := s.EventByID(eventID); err != nil {
		return err
	}
	s.mu.Lock()
	s.session.SentEvents[eventID] = true
	s.mu.Unlock()

	s.notify(Change{Type: ChangeSessionUpdated, Data: nil})
	return nil
}
