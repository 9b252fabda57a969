package controllers

import (
	"errors"
	"strconv"

	"tutorcal_go/middleware"
	"tutorcal_go/models"
	"tutorcal_go/store"

	"github.com/gofiber/fiber/v2"
)

type EventController struct {
	Store *store.Store
}

// CreateEventRequest is the create-form payload. EndTime is optional; when
// omitted it is derived from StartTime plus DurationMinutes (60/75/90).
type CreateEventRequest struct {
	Title           string                     `json:"title"`
	Description     string                     `json:"description"`
	Date            string                     `json:"date"`
	StartTime       string                     `json:"start_time"`
	EndTime         string                     `json:"end_time"`
	DurationMinutes int                        `json:"duration_minutes"`
	TeacherID       int64                      `json:"teacher_id"`
	Teacher         string                     `json:"teacher"`
	Subject         string                     `json:"subject"`
	Branch          string                     `json:"branch"`
	Location        string                     `json:"location"`
	Students        []models.StudentAttendance `json:"students"`
	Color           string                     `json:"color"`
}

// GetEvents returns the full event list.
func (ec *EventController) GetEvents(c *fiber.Ctx) error {
	events := ec.Store.Events()
	return c.JSON(fiber.Map{
		"events": events,
		"total":  len(events),
	})
}

// GetEvent returns a single event by id.
func (ec *EventController) GetEvent(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := ec.Store.EventByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	return c.JSON(fiber.Map{
		"event": event,
	})
}

// CreateEvent validates the form payload and appends a new event. Invalid
// submissions come back with per-field messages and never reach the list.
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	event, err := ec.Store.AddEvent(models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		TeacherID:   req.TeacherID,
		Teacher:     req.Teacher,
		Subject:     req.Subject,
		Branch:      req.Branch,
		Location:    req.Location,
		Students:    req.Students,
		Color:       req.Color,
	}, req.DurationMinutes)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": verr.Fields,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create event",
		})
	}

	middleware.LogActivity(c, "CREATE", "events", event.ID, event)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Event created successfully",
		"event":   event,
	})
}

// UpdateEvent replaces the event with a matching id. The id in the path wins
// over any id in the body.
func (ec *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var event models.Event
	if err := c.BodyParser(&event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	event.ID = id

	updated, err := ec.Store.UpdateEvent(event)
	if err != nil {
		var verr *store.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validation failed",
				"fields": verr.Fields,
			})
		case errors.Is(err, store.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Event not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update event",
			})
		}
	}

	middleware.LogActivity(c, "UPDATE", "events", updated.ID, updated)

	return c.JSON(fiber.Map{
		"message": "Event updated successfully",
		"event":   updated,
	})
}

// DeleteEvent removes an event immediately; no confirmation and no undo.
// Deleting an unknown id is a no-op.
func (ec *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	deleted := ec.Store.DeleteEvent(id)
	if deleted {
		middleware.LogActivity(c, "DELETE", "events", id, nil)
	}

	return c.JSON(fiber.Map{
		"message": "Event deleted successfully",
		"deleted": deleted,
	})
}

// ToggleAttendance flips one student between present and absent inside the
// task-detail edit flow, stamping or clearing arrival and departure times.
func (ec *EventController) ToggleAttendance(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Student name is required",
		})
	}

	event, err := ec.Store.ToggleAttendance(id, req.Name)
	if err != nil {
		return attendanceError(c, err)
	}

	middleware.LogActivity(c, "UPDATE", "events", event.ID, fiber.Map{"attendance": req.Name})

	return c.JSON(fiber.Map{
		"message": "Attendance updated",
		"event":   event,
	})
}

// CheckoutStudent records a departure time for a present student.
func (ec *EventController) CheckoutStudent(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Student name is required",
		})
	}

	event, err := ec.Store.CheckoutStudent(id, req.Name)
	if err != nil {
		return attendanceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Student checked out",
		"event":   event,
	})
}

func attendanceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	case errors.Is(err, store.ErrStudentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Student not found on event",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update attendance",
		})
	}
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
