// handlers/clan.go - roster and river race fetch/read endpoints
package handlers

import (
	"clanboard/models"
	"clanboard/services"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// RefreshClan fetches the roster and the current river race for the
// session's clan, replacing anything previously loaded. The roster is
// authoritative: if it cannot be fetched the whole refresh fails and any
// previously loaded data is dropped, so the UI never shows a stale roster
// under a loaded-looking state. A river race failure only degrades the race
// panel to "not in war".
// POST /api/clan/refresh
func RefreshClan(c *fiber.Ctx) error {
	sess := currentSession(c)
	if sess == nil {
		return sessionGone(c)
	}

	members, err := clash.GetClanMembers(sess.ClanTag, sess.APIToken)
	if err != nil {
		sess.Loaded = false
		sess.Members = nil
		sess.RiverRace = models.RiverRace{}
		sess.Contacts = nil
		log.Printf("❌ Roster fetch failed for %s: %v", sess.ClanTag, err)
		return c.Status(upstreamStatus(err)).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	race, raceErr := clash.GetCurrentRiverRace(sess.ClanTag, sess.APIToken)
	if raceErr != nil {
		log.Printf("⚠️ River race fetch failed for %s: %v", sess.ClanTag, raceErr)
		race = models.RiverRace{}
	}

	sess.Members = members
	sess.RiverRace = race
	sess.Loaded = true
	sess.Contacts = nil // next contacts read re-joins against the fresh roster

	resp := fiber.Map{
		"success":      true,
		"clan_tag":     sess.ClanTag,
		"member_count": len(members),
		"race_state":   race.State,
	}
	if len(members) == 0 {
		resp["warning"] = "No members found for this clan. Is the tag correct?"
	}
	log.Printf("📡 Clan %s refreshed: %d members, race state %q", sess.ClanTag, len(members), race.State)
	return c.JSON(resp)
}

// GetMembers returns the loaded roster with the original display columns.
// GET /api/clan/members
func GetMembers(c *fiber.Ctx) error {
	sess := currentSession(c)
	if sess == nil {
		return sessionGone(c)
	}
	if !sess.Loaded {
		return notLoaded(c)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"clan_tag": sess.ClanTag,
		"members":  sess.Members,
	})
}

// GetRiverRace returns the loaded river race snapshot.
// GET /api/clan/riverrace
func GetRiverRace(c *fiber.Ctx) error {
	sess := currentSession(c)
	if sess == nil {
		return sessionGone(c)
	}
	if !sess.Loaded {
		return notLoaded(c)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"in_war":     !sess.RiverRace.NotInWar(),
		"river_race": sess.RiverRace,
	})
}

// upstreamStatus maps a gateway error to the status we answer with:
// forbidden and not-found pass through, anything else is a bad gateway.
func upstreamStatus(err error) int {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == fiber.StatusForbidden || apiErr.Status == fiber.StatusNotFound {
			return apiErr.Status
		}
	}
	return fiber.StatusBadGateway
}
