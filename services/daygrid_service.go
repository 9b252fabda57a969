package services

import (
	"errors"
	"fmt"
	"time"

	"tutorcal_go/models"
	"tutorcal_go/store"
	"tutorcal_go/utils"
)

// ErrNoTeachersVisible is returned when a cell click lands while zero roster
// teachers are checked; the caller must surface a blocking notice instead of
// opening the create form.
var ErrNoTeachersVisible = errors.New("no teachers visible")

// NoTeachersNotice is the user-facing blocking message for that case.
const NoTeachersNotice = "Please select at least one teacher from the sidebar to create an event."

// DayGridColumn is one teacher column header.
type DayGridColumn struct {
	TeacherID int64  `json:"teacher_id"`
	Name      string `json:"name"`
	Initials  string `json:"initials"`
	Color     string `json:"color"`
	OnLeave   bool   `json:"on_leave"`
}

// DayGridEvent is an event block placed in a cell. Blocks stack at the same
// origin when they overlap; there is no side-by-side layout.
type DayGridEvent struct {
	models.Event
	DisplayColor string `json:"display_color"`
	Ended        bool   `json:"ended"`
}

// DayGridCell is one (hour, teacher) slot.
type DayGridCell struct {
	Hour            int            `json:"hour"`
	TeacherID       int64          `json:"teacher_id"`
	Events          []DayGridEvent `json:"events"`
	OnLeave         bool           `json:"on_leave"`
	ShowLeaveNotice bool           `json:"show_leave_notice"`
}

// DayGridRow is one hour row: its 12-hour label plus a cell per column.
type DayGridRow struct {
	Hour  int           `json:"hour"`
	Label string        `json:"label"`
	Cells []DayGridCell `json:"cells"`
}

// TimeIndicator is the live "now" marker, a derived display value measured in
// pixels from the grid top.
type TimeIndicator struct {
	Position float64 `json:"position"`
	Label    string  `json:"label"`
	Visible  bool    `json:"visible"`
}

// DayGrid is the full teacher-by-hour matrix for one day.
type DayGrid struct {
	Date        string          `json:"date"`
	Columns     []DayGridColumn `json:"columns"`
	Rows        []DayGridRow    `json:"rows"`
	Indicator   TimeIndicator   `json:"indicator"`
	Placeholder bool            `json:"placeholder"`
	Notice      string          `json:"notice,omitempty"`
}

// CellPrefill is the create-form pre-fill resolved from a cell click.
type CellPrefill struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	TeacherID int64  `json:"teacher_id"`
	Color     string `json:"color"`
}

// DayGridService builds the day view. It reads the store and the leave table
// but never mutates either.
type DayGridService struct {
	store        *store.Store
	leave        LeaveChecker
	headerHeight int
	rowHeight    int
}

func NewDayGridService(st *store.Store, leave LeaveChecker, headerHeight, rowHeight int) *DayGridService {
	return &DayGridService{
		store:        st,
		leave:        leave,
		headerHeight: headerHeight,
		rowHeight:    rowHeight,
	}
}

// Indicator computes the live time marker for the given instant. The marker
// only shows when the grid date is today.
func (dg *DayGridService) Indicator(date, now time.Time) TimeIndicator {
	position := float64(dg.headerHeight) +
		(float64(now.Hour())+float64(now.Minute())/60)*float64(dg.rowHeight)
	return TimeIndicator{
		Position: position,
		Label:    utils.FormatClock(now),
		Visible:  utils.SameDay(date, now),
	}
}

// BuildDayGrid renders the 24-row teacher-by-hour matrix for one day. Only
// checked teachers get columns, in roster order; with zero visible teachers a
// single placeholder column is rendered and the grid carries the blocking
// notice its cells surface on click.
func (dg *DayGridService) BuildDayGrid(date, now time.Time) DayGrid {
	visible := dg.store.VisibleTeachers()
	events := dg.store.Events()

	grid := DayGrid{
		Date:      date.Format("2006-01-02"),
		Indicator: dg.Indicator(date, now),
	}

	if len(visible) == 0 {
		grid.Placeholder = true
		grid.Notice = NoTeachersNotice
		for hour := 0; hour < 24; hour++ {
			grid.Rows = append(grid.Rows, DayGridRow{
				Hour:  hour,
				Label: utils.HourLabel(hour),
				Cells: []DayGridCell{{Hour: hour}},
			})
		}
		return grid
	}

	onLeave := make(map[int64]bool, len(visible))
	for _, t := range visible {
		onLeave[t.ID] = dg.leave.IsOnLeave(t.ID, date)
		grid.Columns = append(grid.Columns, DayGridColumn{
			TeacherID: t.ID,
			Name:      t.Name,
			Initials:  utils.Initials(t.Name),
			Color:     t.Color,
			OnLeave:   onLeave[t.ID],
		})
	}

	for hour := 0; hour < 24; hour++ {
		row := DayGridRow{Hour: hour, Label: utils.HourLabel(hour)}
		for _, t := range visible {
			cell := DayGridCell{Hour: hour, TeacherID: t.ID, OnLeave: onLeave[t.ID]}
			for _, e := range events {
				if !cellContains(e, t.ID, hour, date) {
					continue
				}
				cell.Events = append(cell.Events, DayGridEvent{
					Event:        e,
					DisplayColor: EffectiveColor(e, t.Color),
					Ended:        EventEnded(e, now),
				})
			}
			// The textual "On Leave" placeholder only appears in empty cells;
			// occupied cells keep their muted event blocks.
			cell.ShowLeaveNotice = cell.OnLeave && len(cell.Events) == 0
			row.Cells = append(row.Cells, cell)
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid
}

// cellContains is the day-grid membership rule: same teacher, same calendar
// day, and the start hour matches. Unparseable values exclude the event.
func cellContains(e models.Event, teacherID int64, hour int, date time.Time) bool {
	if e.TeacherID != teacherID {
		return false
	}
	startHour, _, err := utils.ParseHourMinute(e.StartTime)
	if err != nil || startHour != hour {
		return false
	}
	d, err := utils.NormalizeDate(e.Date)
	if err != nil {
		return false
	}
	return utils.SameDay(d, date)
}

// ResolveCellClick maps an empty-cell click to a pre-filled create form.
// Clicking with zero visible teachers returns ErrNoTeachersVisible; leave is
// advisory only, so clicks on an on-leave column still resolve. Event clicks
// are handled by the event-detail endpoint instead, so the two can never fire
// together.
func (dg *DayGridService) ResolveCellClick(date time.Time, hour int, teacherID int64) (CellPrefill, error) {
	if hour < 0 || hour > 23 {
		return CellPrefill{}, fmt.Errorf("hour %d out of range", hour)
	}

	visible := dg.store.VisibleTeachers()
	if len(visible) == 0 {
		return CellPrefill{}, ErrNoTeachersVisible
	}

	prefill := CellPrefill{
		Date:      date.Format("2006-01-02"),
		StartTime: fmt.Sprintf("%02d:00", hour),
	}
	for _, t := range visible {
		if t.ID == teacherID {
			prefill.TeacherID = t.ID
			// The teacher's color pre-fills the form but stays overridable.
			prefill.Color = t.Color
			return prefill, nil
		}
	}
	return CellPrefill{}, store.ErrTeacherNotFound
}
