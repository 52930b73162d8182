// models/report.go
package models

// PendingRow is one line of the outreach list: a current member who has not
// used any war decks today. Phone is "N/A" when the directory has no entry
// for the player.
type PendingRow struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PendingReport partitions the zero-decks participants. Pending holds the
// ones still on the roster; Unverified holds the ones who appear in the race
// snapshot but have since left the clan and must never end up in an
// outreach export.
type PendingReport struct {
	InWar      bool          `json:"in_war"`
	Pending    []PendingRow  `json:"pending"`
	Unverified []Participant `json:"unverified"`
}
