package services

import (
	"strings"
	"testing"

	"tutorcal_go/models"
	"tutorcal_go/store"
)

func newShareFixture() *ShareService {
	st := store.New()
	st.SetTeachers([]models.Teacher{
		{ID: 1, Name: "Nirga Naik", Checked: true, Color: "#4285F4"},
	})
	return NewShareService(st)
}

func TestBuildMessage(t *testing.T) {
	ss := newShareFixture()

	msg := ss.BuildMessage(models.Event{
		Title:     "Algebra",
		Date:      "2025-03-12",
		StartTime: "14:00",
		EndTime:   "15:00",
		TeacherID: 1,
		Location:  "East Wing",
		Subject:   "Mathematics",
		Branch:    "South Campus",
	})

	for _, want := range []string{
		"📅 Date: 03/12/2025",
		"⏰ Time: 02:00 PM - 03:00 PM",
		"📍 Location: East Wing",
		"👨‍🏫 Teacher: Nirga Naik",
		"📖 Subject: Mathematics",
		"🏢 Branch: South Campus",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildMessageDefaults(t *testing.T) {
	ss := newShareFixture()

	// Blank fields and an unknown teacher fall back to the share defaults.
	msg := ss.BuildMessage(models.Event{
		Title:     "Algebra",
		Date:      "2025-03-12",
		StartTime: "14:00",
		EndTime:   "15:00",
		TeacherID: 99,
	})

	for _, want := range []string{
		"📍 Location: North Campus",
		"👨‍🏫 Teacher: Admin",
		"📖 Subject: Chemistry",
		"🏢 Branch: Main Branch",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestShareLink(t *testing.T) {
	ss := newShareFixture()

	link := ss.ShareLink(models.Event{
		Title:     "Algebra",
		Date:      "2025-03-12",
		StartTime: "14:00",
		EndTime:   "15:00",
		TeacherID: 1,
	})

	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Fatalf("link = %q, want wa.me prefix", link)
	}
	// The payload must be URL-encoded; raw spaces and newlines never appear.
	payload := strings.TrimPrefix(link, "https://wa.me/?text=")
	if strings.ContainsAny(payload, " \n") {
		t.Errorf("payload not fully escaped: %q", payload)
	}
	if !strings.Contains(payload, "03%2F12%2F2025") {
		t.Errorf("payload missing encoded date: %q", payload)
	}
}
