// models/riverrace.go
package models

// RaceStateNotInWar is the upstream sentinel for a clan that is not
// currently in a river race.
const RaceStateNotInWar = "notInWar"

// Participant is a clan member's entry in the current river race. A
// participant may reference a tag that is no longer on the roster (the
// player left after the snapshot was taken).
type Participant struct {
	Tag          string `json:"tag"`
	Name         string `json:"name"`
	Fame         int    `json:"fame"`
	RepairPoints int    `json:"repairPoints"`
	BoatAttacks  int    `json:"boatAttacks"`
	// DecksUsedToday is sometimes missing upstream; it then decodes to 0,
	// which reads as "definitely hasn't attacked today".
	DecksUsedToday int `json:"decksUsedToday"`
}

// RaceClan is the clan's own block inside a river race snapshot.
type RaceClan struct {
	Tag          string        `json:"tag"`
	Name         string        `json:"name"`
	Fame         int           `json:"fame"`
	RepairPoints int           `json:"repairPoints"`
	Participants []Participant `json:"participants"`
}

// RiverRace is a point-in-time snapshot of the clan's current river race.
// Held only in memory; replaced on every refresh.
type RiverRace struct {
	State        string   `json:"state"`
	Clan         RaceClan `json:"clan"`
	SectionIndex int      `json:"sectionIndex"`
	PeriodIndex  int      `json:"periodIndex"`
	PeriodType   string   `json:"periodType"`
	WarEndTime   string   `json:"warEndTime"`
}

// NotInWar reports whether this snapshot carries race data at all. The
// zero-value snapshot (used when the fetch failed) counts as not in war.
func (r RiverRace) NotInWar() bool {
	return r.State == "" || r.State == RaceStateNotInWar
}
