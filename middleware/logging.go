package middleware

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LoggerMiddleware logs HTTP requests
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Process request
		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logrus.WithFields(logrus.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"duration":   duration.String(),
			"ip":         c.IP(),
			"user_agent": c.Get("User-Agent"),
		}).Info("HTTP Request")

		return err
	}
}

// ActivityLog records one mutating action against the calendar state. Logs
// live in memory only and reset on restart, same as the rest of the state.
type ActivityLog struct {
	RequestID  string          `json:"request_id"`
	Action     string          `json:"action"`
	Resource   string          `json:"resource"`
	ResourceID int64           `json:"resource_id"`
	Details    json.RawMessage `json:"details,omitempty"`
	IPAddress  string          `json:"ip_address"`
	UserAgent  string          `json:"user_agent"`
	CreatedAt  time.Time       `json:"created_at"`
}

const activityLogCapacity = 1000

var (
	activityMu   sync.RWMutex
	activityLogs []ActivityLog
)

// LogActivity appends an entry to the in-memory activity ring and emits a
// structured log line. Oldest entries fall off past the capacity.
func LogActivity(c *fiber.Ctx, action, resource string, resourceID int64, details interface{}) {
	var detailsJSON json.RawMessage
	if details != nil {
		if detailsBytes, err := json.Marshal(details); err == nil {
			detailsJSON = detailsBytes
		}
	}

	entry := ActivityLog{
		RequestID:  c.Get("X-Request-ID", uuid.New().String()),
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    detailsJSON,
		IPAddress:  c.IP(),
		UserAgent:  c.Get("User-Agent"),
		CreatedAt:  time.Now(),
	}

	activityMu.Lock()
	activityLogs = append(activityLogs, entry)
	if len(activityLogs) > activityLogCapacity {
		activityLogs = activityLogs[len(activityLogs)-activityLogCapacity:]
	}
	activityMu.Unlock()

	logrus.WithFields(logrus.Fields{
		"request_id":  entry.RequestID,
		"action":      action,
		"resource":    resource,
		"resource_id": resourceID,
	}).Info("Activity")
}

// RecentActivity returns up to limit entries, newest first.
func RecentActivity(limit int) []ActivityLog {
	activityMu.RLock()
	defer activityMu.RUnlock()

	if limit <= 0 || limit > len(activityLogs) {
		limit = len(activityLogs)
	}

	out := make([]ActivityLog, 0, limit)
	for i := len(activityLogs) - 1; i >= len(activityLogs)-limit; i-- {
		out = append(out, activityLogs[i])
	}
	return out
}

// LogActivityMiddleware automatically logs CRUD operations
func LogActivityMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Skip logging for GET requests
		if c.Method() == "GET" {
			return c.Next()
		}

		// Process request
		err := c.Next()

		// Determine action based on method
		var action string
		switch c.Method() {
		case "POST":
			action = "CREATE"
		case "PUT", "PATCH":
			action = "UPDATE"
		case "DELETE":
			action = "DELETE"
		default:
			return err
		}

		// Extract resource from path
		pathParts := strings.Split(strings.Trim(c.Path(), "/"), "/")
		var resource string
		if len(pathParts) >= 2 {
			resource = pathParts[1] // assumes /api/resource format
		}

		var resourceID int64
		if id := c.Params("id"); id != "" {
			if parsedID, parseErr := parseInt64(id); parseErr == nil {
				resourceID = parsedID
			}
		}

		// Log only if request was successful
		if c.Response().StatusCode() < 400 {
			LogActivity(c, action, resource, resourceID, nil)
		}

		return err
	}
}

func parseInt64(s string) (int64, error) {
	var result int64
	for _, char := range s {
		if char < '0' || char > '9' {
			return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid ID format")
		}
		result = result*10 + int64(char-'0')
	}
	return result, nil
}
