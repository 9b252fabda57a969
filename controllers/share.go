package controllers

import (
	"errors"

	"tutorcal_go/services"
	"tutorcal_go/store"

	"github.com/gofiber/fiber/v2"
)

type ShareController struct {
	Store *store.Store
	Share *services.ShareService
}

// ShareEvent handles a share-icon click. The click toggles the per-event
// icon state; only the transition into the clicked state yields a wa.me link
// (a second click un-toggles without sharing, matching the icon behavior).
// Opening the link is the client's fire-and-forget navigation.
func (sc *ShareController) ShareEvent(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	event, err := sc.Store.EventByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	clicked := sc.Store.ToggleWhatsAppClicked(id)
	if !clicked {
		return c.JSON(fiber.Map{
			"clicked": false,
		})
	}

	return c.JSON(fiber.Map{
		"clicked": true,
		"message": sc.Share.BuildMessage(event),
		"url":     sc.Share.ShareLink(event),
	})
}

// MarkSent records the per-event "sent" tick shown in the agenda list.
func (sc *ShareController) MarkSent(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	if err := sc.Store.MarkEventSent(id); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to mark event as sent",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Event marked as sent",
	})
}
