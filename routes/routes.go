package routes

import (
	"tutorcal_go/controllers"
	"tutorcal_go/middleware"
	"tutorcal_go/services"
	"tutorcal_go/services/websocket"
	"tutorcal_go/store"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, wsHub *websocket.Hub, st *store.Store, grid *services.DayGridService, leave *services.LeaveService, share *services.ShareService) {
	// Initialize controllers
	eventController := &controllers.EventController{Store: st}
	teacherController := &controllers.TeacherController{Store: st}
	calendarController := &controllers.CalendarController{Store: st, Grid: grid, Leave: leave}
	sessionController := &controllers.SessionController{Store: st}
	shareController := &controllers.ShareController{Store: st, Share: share}
	wsController := controllers.NewWebSocketController(wsHub)

	// API group
	api := app.Group("/api")

	// Event routes
	events := api.Group("/events")
	events.Get("/", eventController.GetEvents)
	events.Post("/", eventController.CreateEvent)
	events.Get("/:id", eventController.GetEvent)
	events.Put("/:id", eventController.UpdateEvent)
	events.Delete("/:id", eventController.DeleteEvent)
	events.Post("/:id/attendance", eventController.ToggleAttendance)
	events.Post("/:id/checkout", eventController.CheckoutStudent)
	events.Post("/:id/share", shareController.ShareEvent)
	events.Post("/:id/sent", shareController.MarkSent)

	// Teacher roster routes
	teachers := api.Group("/teachers")
	teachers.Get("/", teacherController.GetTeachers)
	teachers.Get("/:id", teacherController.GetTeacher)
	teachers.Patch("/:id/toggle", teacherController.ToggleTeacher)

	// Calendar view routes
	calendar := api.Group("/calendar")
	calendar.Get("/", calendarController.GetCalendarView)
	calendar.Get("/day-grid", calendarController.GetDayGrid)
	calendar.Post("/day-grid/cell", calendarController.ResolveCellClick)
	calendar.Get("/leave", calendarController.GetLeave)
	calendar.Get("/options", calendarController.GetOptions)

	// Session (UI state) routes
	session := api.Group("/session")
	session.Get("/", sessionController.GetSession)
	session.Put("/view", sessionController.SetViewMode)
	session.Put("/date", sessionController.SetSelectedDate)
	session.Post("/navigate", sessionController.Navigate)

	// Activity log routes
	api.Get("/activity", func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 50)
		return c.JSON(fiber.Map{
			"logs": middleware.RecentActivity(limit),
		})
	})

	// WebSocket routes
	api.Get("/ws/stats", wsController.GetWebSocketStats)

	// WebSocket connection endpoint - use websocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		// IsWebSocketUpgrade returns true if the client
		// requested upgrade to the WebSocket protocol.
		if fiberws.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", wsController.WebSocketHandler())
}
