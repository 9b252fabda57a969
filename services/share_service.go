package services

import (
	"fmt"
	"net/url"
	"time"

	"tutorcal_go/models"
	"tutorcal_go/store"
	"tutorcal_go/utils"
)

// Share defaults used when an event leaves the field blank.
const (
	defaultShareLocation = "North Campus"
	defaultShareSubject  = "Chemistry"
	defaultShareBranch   = "Main Branch"
	defaultShareTeacher  = "Admin"
)

// ShareService formats the WhatsApp share message for an event. Opening the
// link is the caller's concern; nothing here performs network I/O.
type ShareService struct {
	store *store.Store
}

func NewShareService(st *store.Store) *ShareService {
	return &ShareService{store: st}
}

// BuildMessage renders the emoji-decorated summary for one event.
func (ss *ShareService) BuildMessage(e models.Event) string {
	formattedDate := e.Date
	if d, err := utils.NormalizeDate(e.Date); err == nil {
		formattedDate = d.Format("01/02/2006")
	}

	teacherName := defaultShareTeacher
	if t, err := ss.store.TeacherByID(e.TeacherID); err == nil {
		teacherName = t.Name
	}

	location := e.Location
	if location == "" {
		location = defaultShareLocation
	}
	subject := e.Subject
	if subject == "" {
		subject = defaultShareSubject
	}
	branch := e.Branch
	if branch == "" {
		branch = defaultShareBranch
	}

	return fmt.Sprintf(`📅 Date: %s
⏰ Time: %s - %s

📍 Location: %s
👨‍🏫 Teacher: %s
📖 Subject: %s
🏢 Branch: %s`,
		formattedDate,
		shareClock(e.StartTime),
		shareClock(e.EndTime),
		location,
		teacherName,
		subject,
		branch,
	)
}

// ShareLink returns the URL-encoded wa.me link for an event.
func (ss *ShareService) ShareLink(e models.Event) string {
	return "https://wa.me/?text=" + url.QueryEscape(ss.BuildMessage(e))
}

// shareClock renders a "HH:MM" time as zero-padded 12-hour ("02:00 PM").
func shareClock(value string) string {
	hour, minute, err := utils.ParseHourMinute(value)
	if err != nil {
		return value
	}
	t := time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
	return t.Format("03:04 PM")
}
