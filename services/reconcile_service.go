// services/reconcile_service.go - roster / race / directory joins
package services

import "clanboard/models"

// ReconcileService computes the dashboard's two derived views: the editable
// contact table and the pending-today report. All methods are pure; nothing
// here touches the network or the disk.
type ReconcileService struct{}

func NewReconcileService() *ReconcileService {
	return &ReconcileService{}
}

// BuildContactTable left-joins the live roster with the stored directory on
// tag. Every current member appears exactly once; the phone defaults to the
// empty string when the directory has nothing for them. Stored records for
// players no longer on the roster are not shown (they stay on disk).
func (s *ReconcileService) BuildContactTable(members []models.Member, stored []models.ContactRecord) []models.ContactRecord {
	phones := make(map[string]string, len(stored))
	for _, c := range stored {
		phones[c.Tag] = c.Phone
	}

	table := make([]models.ContactRecord, 0, len(members))
	for _, m := range members {
		table = append(table, models.ContactRecord{
			Tag:   m.Tag,
			Name:  m.Name,
			Phone: phones[m.Tag],
		})
	}
	return table
}

// DiffContacts normalizes an edited table and decides whether it differs
// from the pre-edit join, comparing field by field over {tag, phone} only
// (the name column is display-only and not editable). Persisting is the
// caller's business; this just answers "is a write needed".
func (s *ReconcileService) DiffContacts(original []models.ContactRecord, edited []map[string]string) (bool, []models.ContactRecord) {
	normalized := NormalizeContacts(edited)

	if len(normalized) != len(original) {
		return true, normalized
	}
	prior := make(map[string]string, len(original))
	for _, c := range original {
		prior[c.Tag] = c.Phone
	}
	for _, c := range normalized {
		phone, ok := prior[c.Tag]
		if !ok || phone != c.Phone {
			return true, normalized
		}
	}
	return false, normalized
}

// BuildPendingReport filters the race participants down to the ones with
// zero decks used today, then partitions by current membership: members go
// on the outreach list (joined with the directory, phone "N/A" when there is
// no record), leavers go under Unverified and are excluded from any export.
// When the clan is not in a war nothing is computed at all.
func (s *ReconcileService) BuildPendingReport(members []models.Member, race models.RiverRace, stored []models.ContactRecord) models.PendingReport {
	if race.NotInWar() {
		return models.PendingReport{InWar: false}
	}

	current := make(map[string]bool, len(members))
	for _, m := range members {
		current[m.Tag] = true
	}
	phones := make(map[string]string, len(stored))
	for _, c := range stored {
		phones[c.Tag] = c.Phone
	}

	report := models.PendingReport{
		InWar:      true,
		Pending:    []models.PendingRow{},
		Unverified: []models.Participant{},
	}
	for _, p := range race.Clan.Participants {
		if p.DecksUsedToday != 0 {
			continue
		}
		if !current[p.Tag] {
			report.Unverified = append(report.Unverified, p)
			continue
		}
		phone, ok := phones[p.Tag]
		if !ok {
			phone = "N/A"
		}
		report.Pending = append(report.Pending, models.PendingRow{Name: p.Name, Phone: phone})
	}
	return report
}
