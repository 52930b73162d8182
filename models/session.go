// models/session.go
package models

import "time"

// Session is the per-operator dashboard state: the credential, the active
// clan and whatever was loaded for it. Created when the operator opens the
// dashboard for a clan, mutated only by the four operator actions (refresh,
// edit, report, export), discarded on logout.
type Session struct {
	ID       string
	ClanTag  string
	APIToken string

	// Loaded marks that a roster fetch succeeded for this clan. A failed
	// refresh resets it so the UI never shows stale data as current.
	Loaded    bool
	Members   []Member
	RiverRace RiverRace

	// Contacts is the latest editable table the operator has seen. It is
	// kept here even when a save to disk fails, so an edit is never lost
	// mid-session.
	Contacts []ContactRecord

	CreatedAt time.Time
}
