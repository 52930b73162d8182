// handlers/pending.go - pending-attack report and CSV export
package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetPendingReport lists current members with zero war decks used today,
// always recomputed from the latest loaded roster. Zero-deck participants
// who already left the clan come back under "unverified" as an aside; they
// are informational only.
// GET /api/pending
func GetPendingReport(c *fiber.Ctx) error {
	sess := currentSession(c)
	if sess == nil {
		return sessionGone(c)
	}
	if !sess.Loaded {
		return notLoaded(c)
	}

	report := reconciler.BuildPendingReport(sess.Members, sess.RiverRace, contactStore.Load(sess.ClanTag))
	if !report.InWar {
		return c.JSON(fiber.Map{
			"success": true,
			"in_war":  false,
			"message": "The clan is not in a river race right now.",
		})
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"in_war":     true,
		"pending":    report.Pending,
		"unverified": report.Unverified,
	})
}

// ExportPending streams the pending list as a CSV download named
// pending_<clan>_<YYYYMMDD_HHMM>.csv. Only verified current members are in
// the file; unverified leavers never reach an outreach artifact.
// GET /api/pending/export
func ExportPending(c *fiber.Ctx) error {
	sess := currentSession(c)
	if sess == nil {
		return sessionGone(c)
	}
	if !sess.Loaded {
		return notLoaded(c)
	}

	report := reconciler.BuildPendingReport(sess.Members, sess.RiverRace, contactStore.Load(sess.ClanTag))
	if !report.InWar {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "The clan is not in a river race right now.",
		})
	}

	data, err := exporter.PendingCSV(report.Pending)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to build the CSV export",
		})
	}

	filename := exporter.Filename(sess.ClanTag, time.Now())
	log.Printf("📥 Pending list exported for clan %s (%d rows)", sess.ClanTag, len(report.Pending))

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
