package controllers

import (
	"tutorcal_go/store"

	"github.com/gofiber/fiber/v2"
)

type SessionController struct {
	Store *store.Store
}

// GetSession returns the ephemeral UI state: selected date, view mode and
// the share/sent flags. All of it resets on restart.
func (sc *SessionController) GetSession(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"session": sc.Store.SessionState(),
	})
}

// SetViewMode switches between Month, Week, Day and Agenda.
func (sc *SessionController) SetViewMode(c *fiber.Ctx) error {
	var req struct {
		ViewMode string `json:"view_mode"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := sc.Store.SetViewMode(req.ViewMode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"session": session,
	})
}

// SetSelectedDate jumps the calendar to a date (mini-calendar picks).
func (sc *SessionController) SetSelectedDate(c *fiber.Ctx) error {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := sc.Store.SetSelectedDate(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date is not a recognizable date",
		})
	}

	return c.JSON(fiber.Map{
		"session": session,
	})
}

// Navigate steps the selected date with prev/next/today. The step size
// follows the active view: a day, a week or a month.
func (sc *SessionController) Navigate(c *fiber.Ctx) error {
	var req struct {
		Action string `json:"action"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	session, err := sc.Store.Navigate(req.Action)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"session": session,
	})
}
