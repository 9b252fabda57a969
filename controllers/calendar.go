package controllers

import (
	"errors"
	"time"

	"tutorcal_go/models"
	"tutorcal_go/services"
	"tutorcal_go/store"
	"tutorcal_go/utils"

	"github.com/gofiber/fiber/v2"
)

type CalendarController struct {
	Store *store.Store
	Grid  *services.DayGridService
	Leave *services.LeaveService
}

// refDate resolves the reference date for a request: explicit ?date= first,
// then the session's selected date, then today.
func (cc *CalendarController) refDate(c *fiber.Ctx) time.Time {
	if raw := c.Query("date"); raw != "" {
		if d, err := utils.NormalizeDate(raw); err == nil {
			return d
		}
	}
	if d, err := utils.NormalizeDate(cc.Store.SessionState().SelectedDate); err == nil {
		return d
	}
	return time.Now()
}

// GetCalendarView returns the event subset for the requested view mode.
// ?view defaults to the session's active mode; Agenda honors ?search=.
func (cc *CalendarController) GetCalendarView(c *fiber.Ctx) error {
	view := c.Query("view", cc.Store.SessionState().ViewMode)
	if !models.IsValidViewMode(view) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown view mode",
		})
	}

	ref := cc.refDate(c)
	events := cc.Store.Events()

	var filtered []models.Event
	switch view {
	case models.ViewMonth:
		filtered = services.MonthEvents(events, ref)
	case models.ViewWeek:
		filtered = services.WeekEvents(events, ref)
	case models.ViewDay:
		filtered = services.DayEvents(events, ref)
	case models.ViewAgenda:
		filtered = services.AgendaEvents(events, c.Query("search"))
	}

	return c.JSON(fiber.Map{
		"view":   view,
		"date":   ref.Format("2006-01-02"),
		"events": filtered,
		"total":  len(filtered),
	})
}

// GetDayGrid renders the teacher-by-hour matrix for one day, including the
// live time indicator and leave overlay flags.
func (cc *CalendarController) GetDayGrid(c *fiber.Ctx) error {
	grid := cc.Grid.BuildDayGrid(cc.refDate(c), time.Now())
	return c.JSON(fiber.Map{
		"grid": grid,
	})
}

// ResolveCellClick maps an empty-cell click to a pre-filled create form. With
// zero visible teachers it surfaces the blocking select-a-teacher notice and
// the form must not open.
func (cc *CalendarController) ResolveCellClick(c *fiber.Ctx) error {
	var req struct {
		Date      string `json:"date"`
		Hour      int    `json:"hour"`
		TeacherID int64  `json:"teacher_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	date := cc.refDate(c)
	if req.Date != "" {
		d, err := utils.NormalizeDate(req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Date is not a recognizable date",
			})
		}
		date = d
	}

	prefill, err := cc.Grid.ResolveCellClick(date, req.Hour, req.TeacherID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoTeachersVisible):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":  "No teachers selected",
				"notice": services.NoTeachersNotice,
			})
		case errors.Is(err, store.ErrTeacherNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Teacher not found",
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"prefill": prefill,
	})
}

// GetLeave returns the leave entries for one day (advisory display data).
func (cc *CalendarController) GetLeave(c *fiber.Ctx) error {
	date := cc.refDate(c)
	return c.JSON(fiber.Map{
		"date":  date.Format("2006-01-02"),
		"leave": cc.Leave.RecordsFor(date),
	})
}

// GetOptions returns the fixed option lists backing the create form.
func (cc *CalendarController) GetOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"subjects":  store.SubjectOptions,
		"branches":  store.BranchOptions,
		"students":  store.StudentRoster,
		"colors":    store.ColorPalette,
		"durations": store.DurationOptions,
	})
}
