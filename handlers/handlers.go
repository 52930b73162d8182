// handlers/handlers.go - shared service wiring
package handlers

import (
	"clanboard/models"
	"clanboard/services"
	"os"

	"github.com/gofiber/fiber/v2"
)

var (
	sessions     *services.SessionService
	clash        *services.ClashService
	contactStore *services.ContactService
	reconciler   *services.ReconcileService
	exporter     *services.ExportService
)

// InitHandlers wires the shared services from the environment. Call once at
// startup, after godotenv has run.
func InitHandlers() {
	sessions = services.NewSessionService()
	clash = services.NewClashService(os.Getenv("CLASH_API_BASE_URL"))
	contactStore = services.NewContactService(os.Getenv("CLAN_DATA_DIR"))
	reconciler = services.NewReconcileService()
	exporter = services.NewExportService()
}

// currentSession resolves the session the middleware authenticated. Nil when
// the session was torn down after the token was minted.
func currentSession(c *fiber.Ctx) *models.Session {
	sessionID, _ := c.Locals("sessionId").(string)
	if sessionID == "" {
		return nil
	}
	return sessions.Get(sessionID)
}

func sessionGone(c *fiber.Ctx) error {
	return c.Status(401).JSON(fiber.Map{
		"success": false,
		"error":   "Session no longer exists. Open a new one.",
	})
}

func notLoaded(c *fiber.Ctx) error {
	return c.Status(409).JSON(fiber.Map{
		"success": false,
		"error":   "No clan data loaded. Fetch the clan first.",
	})
}
