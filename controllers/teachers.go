package controllers

import (
	"errors"

	"tutorcal_go/middleware"
	"tutorcal_go/store"

	"github.com/gofiber/fiber/v2"
)

type TeacherController struct {
	Store *store.Store
}

// GetTeachers returns the full roster in seed order; ?visible=true narrows to
// checked teachers only.
func (tc *TeacherController) GetTeachers(c *fiber.Ctx) error {
	teachers := tc.Store.Teachers()
	if c.Query("visible") == "true" {
		teachers = tc.Store.VisibleTeachers()
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"total":    len(teachers),
	})
}

// GetTeacher returns a specific roster entry by ID.
func (tc *TeacherController) GetTeacher(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teacher ID",
		})
	}

	teacher, err := tc.Store.TeacherByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Teacher not found",
		})
	}

	return c.JSON(fiber.Map{
		"teacher": teacher,
	})
}

// ToggleTeacher flips one teacher's visibility flag. Events are never
// affected; unchecked teachers simply lose their day-grid column.
func (tc *TeacherController) ToggleTeacher(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid teacher ID",
		})
	}

	teacher, err := tc.Store.ToggleTeacher(id)
	if err != nil {
		if errors.Is(err, store.ErrTeacherNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Teacher not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle teacher",
		})
	}

	middleware.LogActivity(c, "UPDATE", "teachers", teacher.ID, teacher)

	return c.JSON(fiber.Map{
		"message": "Teacher visibility updated",
		"teacher": teacher,
	})
}
