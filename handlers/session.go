// handlers/session.go - operator session lifecycle
package handlers

import (
	"clanboard/middleware"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type StartSessionRequest struct {
	ClanTag  string `json:"clan_tag"`
	APIToken string `json:"api_token"`
}

type StartSessionResponse struct {
	Token     string `json:"token"`
	ClanTag   string `json:"clan_tag"`
	ExpiresAt int64  `json:"expires_at"`
}

// StartSession opens a dashboard session for one clan. The interactively
// supplied API token wins over the CLASH_API_TOKEN environment variable.
// Both preconditions (credential present, tag starts with '#') are checked
// here, before anything touches the network.
// POST /api/session
func StartSession(c *fiber.Ctx) error {
	var req StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	apiToken := strings.TrimSpace(req.APIToken)
	if apiToken == "" {
		apiToken = os.Getenv("CLASH_API_TOKEN")
	}
	if apiToken == "" {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "API token is required (enter one or set CLASH_API_TOKEN)",
		})
	}

	clanTag := strings.ToUpper(strings.TrimSpace(req.ClanTag))
	if clanTag == "" || !strings.HasPrefix(clanTag, "#") {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid clan tag. It must start with '#'.",
		})
	}

	sess := sessions.Create(clanTag, apiToken)
	token, expiresAt, err := generateSessionToken(sess.ID)
	if err != nil {
		sessions.Delete(sess.ID)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate session token",
		})
	}

	log.Printf("🔑 Session opened for clan %s", clanTag)
	return c.JSON(StartSessionResponse{
		Token:     token,
		ClanTag:   clanTag,
		ExpiresAt: expiresAt,
	})
}

// EndSession tears the operator's session down.
// DELETE /api/session
func EndSession(c *fiber.Ctx) error {
	if sess := currentSession(c); sess != nil {
		sessions.Delete(sess.ID)
		log.Printf("👋 Session closed for clan %s", sess.ClanTag)
	}
	return c.JSON(fiber.Map{"success": true})
}

func generateSessionToken(sessionID string) (string, int64, error) {
	expiresAt := time.Now().Add(12 * time.Hour).Unix()
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        expiresAt,
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(middleware.SessionSecret()))
	return signed, expiresAt, err
}
