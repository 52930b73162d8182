// models/member.go
package models

// Member is one row of the live clan roster as reported by the Clash Royale
// API. Members are never persisted locally; the whole set is replaced on
// every refresh and old entries are discarded wholesale.
type Member struct {
	Tag       string `json:"tag"`
	Name      string `json:"name"`
	ExpLevel  int    `json:"expLevel"`
	Trophies  int    `json:"trophies"`
	ClanRank  int    `json:"clanRank"`
	Role      string `json:"role"`
	Donations int    `json:"donations"`
	LastSeen  string `json:"lastSeen"`
}
