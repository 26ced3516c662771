// Package refstore exposes the read-only reference data this service
// needs from the relational store: team display names/abbreviations by
// MLB id, and a team's league for bracket inference. The store's CRUD
// surface is owned elsewhere.
package refstore

import "context"

// TeamInfo is the locally curated display identity for a team.
type TeamInfo struct {
	Name         string
	Abbreviation string
}

// Store is the read-only reference snapshot consumed by the views.
type Store interface {
	// TeamMap returns display info keyed by MLB team id.
	TeamMap(ctx context.Context) (map[int]TeamInfo, error)
	// TeamLeague returns "AL" or "NL" for a known team, "" otherwise.
	TeamLeague(ctx context.Context, teamID int) (string, error)
}
