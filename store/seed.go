package store

import (
	"log"

	"tutorcal_go/models"
)

// Fixed option lists backing the create form. These mirror the demo data the
// calendar ships with; there is no editable source behind them.
var (
	ColorPalette = []string{
		"#4285F4", // Blue
		"#EA4335", // Red
		"#34A853", // Green
		"#FBBC05", // Yellow
		"#8E24AA", // Purple
		"#FF9800", // Orange
		"#009688", // Teal
		"#E91E63", // Pink
	}

	SubjectOptions = []string{
		"Mathematics",
		"English",
		"Science",
		"History",
		"Geography",
		"Computer Science",
		"Physics",
		"Chemistry",
		"Biology",
		"Economics",
	}

	BranchOptions = []string{
		"Main Branch",
		"North Campus",
		"South Campus",
		"East Wing",
		"West Wing",
	}

	StudentRoster = []string{
		"Rohit",
		"Sneha",
		"Prahlad",
		"Sanjay",
		"Amit",
		"Priya",
		"Rahul",
		"Neha",
		"Vikram",
		"Pooja",
	}
)

// SeedDemoData loads the demo teacher roster into an empty store.
func (s *Store) SeedDemoData() {
	s.mu.Lock()
	if len(s.teachers) > 0 {
		s.mu.Unlock()
		log.Println("Teachers already seeded, skipping...")
		return
	}

	s.teachers = []models.Teacher{
		{ID: 1, Name: "Nirga Naik", Checked: true, Color: "#4285F4"},
		{ID: 2, Name: "Nirmal", Checked: true, Color: "#EA4335"},
		{ID: 3, Name: "Nirvisha", Checked: true, Color: "#34A853"},
		{ID: 4, Name: "Nisha Sadhani", Checked: true, Color: "#FBBC05"},
		{ID: 5, Name: "Panklee", Checked: true, Color: "#8E24AA"},
		{ID: 6, Name: "Parmeet Kaur", Checked: true, Color: "#FF9800"},
		{ID: 7, Name: "Pournima Khanapure", Checked: true, Color: "#009688"},
		{ID: 8, Name: "Prachi", Checked: true, Color: "#E91E63"},
		{ID: 9, Name: "Seema Khatri", Checked: true, Color: "#3F51B5"},
		{ID: 10, Name: "Shahjad Ali", Checked: true, Color: "#795548"},
		{ID: 11, Name: "Shilpa Makar", Checked: true, Color: "#607D8B"},
		{ID: 12, Name: "Shilpa Sharma", Checked: true, Color: "#9C27B0"},
		{ID: 13, Name: "Shraddha Shetty", Checked: true, Color: "#00BCD4"},
		{ID: 14, Name: "Shruti West", Checked: true, Color: "#FFC107"},
		{ID: 15, Name: "Sneha Mackwani", Checked: true, Color: "#FF5722"},
		{ID: 16, Name: "Suryanarayana", Checked: true, Color: "#673AB7"},
		{ID: 17, Name: "Tarang Singh", Checked: false, Color: "#2196F3"},
		{ID: 18, Name: "Tasks", Checked: true, Color: "#F44336"},
		{ID: 19, Name: "Tulsi", Checked: true, Color: "#4CAF50"},
		{ID: 20, Name: "Vidhi Rajani", Checked: true, Color: "#CDDC39"},
		{ID: 21, Name: "Vishwajeet Barule", Checked: true, Color: "#FF4081"},
	}
	s.mu.Unlock()

	log.Printf("Seeded %d demo teachers", 21)
}

// SetTeachers replaces the roster wholesale. Used by tests and by callers
// that load a roster from elsewhere.
func (s *Store) SetTeachers(teachers []models.Teacher) {
	s.mu.Lock()
	s.teachers = make([]models.Teacher, len(teachers))
	copy(s.teachers, teachers)
	s.mu.Unlock()
}
