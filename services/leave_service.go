package services

import (
	"sync"
	"time"

	"tutorcal_go/models"
	"tutorcal_go/store"
)

// LeaveChecker is the collaborator contract the day grid consumes. The
// backing data is a static in-memory table; nothing edits it at runtime.
type LeaveChecker interface {
	IsOnLeave(teacherID int64, date time.Time) bool
}

// LeaveService keeps the teacher-on-leave table. The demo seed marks the
// first roster teacher on leave for the current day, matching the fixture the
// calendar ships with; ReseedToday rolls that forward at midnight.
type LeaveService struct {
	mu      sync.RWMutex
	records []models.LeaveRecord
	store   *store.Store
}

func NewLeaveService(st *store.Store) *LeaveService {
	ls := &LeaveService{store: st}
	ls.ReseedToday()
	return ls
}

// ReseedToday rebuilds the static demo table for the current day.
func (ls *LeaveService) ReseedToday() {
	teachers := ls.store.Teachers()
	records := make([]models.LeaveRecord, 0, 1)
	if len(teachers) > 0 {
		records = append(records, models.LeaveRecord{
			TeacherID: teachers[0].ID,
			Date:      time.Now().Format("2006-01-02"),
			Status:    models.LeaveStatus,
		})
	}

	ls.mu.Lock()
	ls.records = records
	ls.mu.Unlock()
}

// IsOnLeave reports whether a teacher is marked on leave for the given day.
func (ls *LeaveService) IsOnLeave(teacherID int64, date time.Time) bool {
	day := date.Format("2006-01-02")

	ls.mu.RLock()
	defer ls.mu.RUnlock()
	for _, r := range ls.records {
		if r.TeacherID == teacherID && r.Date == day && r.Status == models.LeaveStatus {
			return true
		}
	}
	return false
}

// RecordsFor returns the leave entries for one day.
func (ls *LeaveService) RecordsFor(date time.Time) []models.LeaveRecord {
	day := date.Format("2006-01-02")

	ls.mu.RLock()
	defer ls.mu.RUnlock()
	out := make([]models.LeaveRecord, 0)
	for _, r := range ls.records {
		if r.Date == day {
			out = append(out, r)
		}
	}
	return out
}
