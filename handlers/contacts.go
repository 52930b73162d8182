// handlers/contacts.go - editable phone table endpoints
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// GetContacts returns the editable phone table: every current member joined
// with the stored directory, phone "" when nothing is stored. The join is
// computed once per refresh and then served from the session, so edits the
// operator already made stay visible even if persisting them failed.
// GET /api/contacts
func GetContacts(c *fiber.Ctx) error {
	sess := currentSession(c)
	if sess == nil {
		return sessionGone(c)
	}
	if !sess.Loaded {
		return notLoaded(c)
	}

	if sess.Contacts == nil {
		stored := contactStore.Load(sess.ClanTag)
		sess.Contacts = reconciler.BuildContactTable(sess.Members, stored)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"contacts": sess.Contacts,
	})
}

type SaveContactsRequest struct {
	// Rows may carry extra columns and miss others; normalization coerces
	// them to the tag,name,phone schema before anything is compared or
	// written.
	Contacts []map[string]string `json:"contacts"`
}

// SaveContacts persists the operator's edits, but only when the edited table
// actually differs from what they were shown. On a write failure the edit
// stays in the session so nothing is lost.
// PUT /api/contacts
func SaveContacts(c *fiber.Ctx) error {
	sess := currentSession(c)
	if sess == nil {
		return sessionGone(c)
	}
	if !sess.Loaded {
		return notLoaded(c)
	}

	var req SaveContactsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	original := sess.Contacts
	if original == nil {
		original = reconciler.BuildContactTable(sess.Members, contactStore.Load(sess.ClanTag))
	}

	changed, normalized := reconciler.DiffContacts(original, req.Contacts)
	if !changed {
		return c.JSON(fiber.Map{"success": true, "saved": false})
	}

	sess.Contacts = normalized
	if err := contactStore.Save(normalized, sess.ClanTag); err != nil {
		log.Printf("❌ Contact table write failed for %s: %v", sess.ClanTag, err)
		return c.Status(500).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save the contact table: " + err.Error(),
		})
	}

	log.Printf("📞 Contact table updated for clan %s (%d rows)", sess.ClanTag, len(normalized))
	return c.JSON(fiber.Map{
		"success":  true,
		"saved":    true,
		"contacts": normalized,
	})
}
