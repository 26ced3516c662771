// Package teams shapes raw team and roster documents into the served
// team views.
package teams

import (
	"encoding/json"
	"sort"
	"strconv"

	"mlb-stats-service/internal/domain/teams"
	"mlb-stats-service/internal/statsapi"
)

// Minor league sport ids, ordered from Triple-A down.
var sportLevels = map[int]string{
	1:  "Major League",
	11: "Triple-A",
	12: "Double-A",
	13: "High-A",
	14: "Single-A",
	16: "Rookie",
}

var sportOrder = map[int]int{1: 0, 11: 1, 12: 2, 13: 3, 14: 4, 16: 5}

// LevelName maps a sport id to its display label, falling back to the
// upstream sport name.
func LevelName(sportID int, sportName string) string {
	if label, ok := sportLevels[sportID]; ok {
		return label
	}
	return sportName
}

// BuildList maps a teams document to summaries sorted by team name.
func BuildList(doc *statsapi.TeamsDoc) []teams.Summary {
	out := make([]teams.Summary, 0, len(doc.Teams))
	for _, t := range doc.Teams {
		out = append(out, buildSummary(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}

func buildSummary(t statsapi.TeamDetail) teams.Summary {
	s := teams.Summary{
		TeamID:       t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		LocationName: t.LocationName,
	}
	if t.League != nil {
		s.League = t.League.Name
	}
	if t.Division != nil {
		s.Division = t.Division.Name
	}
	if t.Venue != nil {
		s.Venue = t.Venue.Name
	}
	if t.Sport != nil {
		s.SportID = t.Sport.ID
		s.SportName = t.Sport.Name
	}
	return s
}

// BuildProfile maps a single team document to the detailed view.
func BuildProfile(t statsapi.TeamDetail) teams.Profile {
	return teams.Profile{
		Summary:         buildSummary(t),
		FirstYearOfPlay: t.FirstYearOfPlay,
		TeamName:        t.TeamName,
		ShortName:       t.ShortName,
		ParentOrgID:     t.ParentOrgID,
		ParentOrgName:   t.ParentOrgName,
	}
}

// BuildAffiliates maps an affiliates document to clubs ordered from
// Triple-A down, name breaking ties within a level.
func BuildAffiliates(doc *statsapi.TeamsDoc) []teams.Affiliate {
	out := make([]teams.Affiliate, 0, len(doc.Teams))
	for _, t := range doc.Teams {
		a := teams.Affiliate{
			TeamID:       t.ID,
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
		}
		if t.Sport != nil {
			a.SportID = t.Sport.ID
			a.LevelName = LevelName(t.Sport.ID, t.Sport.Name)
		}
		if t.League != nil {
			a.League = t.League.Name
		}
		if t.Venue != nil {
			a.Venue = t.Venue.Name
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		oi, oj := levelOrder(out[i].SportID), levelOrder(out[j].SportID)
		if oi != oj {
			return oi < oj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func levelOrder(sportID int) int {
	if order, ok := sportOrder[sportID]; ok {
		return order
	}
	return len(sportOrder) + sportID
}

// BuildRoster maps a roster document, listing pitchers before position
// players with jersey number ordering inside each group.
func BuildRoster(teamID int, doc *statsapi.RosterDoc) teams.Roster {
	roster := teams.Roster{TeamID: teamID, Players: make([]teams.RosterEntry, 0, len(doc.Roster))}
	for _, slot := range doc.Roster {
		entry := teams.RosterEntry{
			PlayerID:     slot.Person.ID,
			Name:         slot.Person.FullName,
			Number:       slot.JerseyNumber,
			Position:     slot.Position.Abbreviation,
			PositionType: slot.Position.Type,
			Age:          slot.Person.CurrentAge,
			Stats:        seasonStatLine(slot.Person),
		}
		if slot.Person.BatSide != nil {
			entry.Bats = slot.Person.BatSide.Code
		}
		if slot.Person.PitchHand != nil {
			entry.Throws = slot.Person.PitchHand.Code
		}
		if slot.Status != nil {
			entry.Status = slot.Status.Description
		}
		roster.Players = append(roster.Players, entry)
	}
	sort.Slice(roster.Players, func(i, j int) bool {
		pi, pj := roster.Players[i], roster.Players[j]
		iPitcher, jPitcher := pi.PositionType == "Pitcher", pj.PositionType == "Pitcher"
		if iPitcher != jPitcher {
			return iPitcher
		}
		ni, iOK := jerseyNumber(pi.Number)
		nj, jOK := jerseyNumber(pj.Number)
		if iOK != jOK {
			return iOK
		}
		if iOK && ni != nj {
			return ni < nj
		}
		return pi.Name < pj.Name
	})
	return roster
}

// seasonStatLine returns the first hydrated stat split, which carries
// the player's current-season line.
func seasonStatLine(person statsapi.RosterPerson) json.RawMessage {
	for _, group := range person.Stats {
		if len(group.Splits) > 0 {
			return group.Splits[0].Stat
		}
	}
	return nil
}

func jerseyNumber(raw string) (int, bool) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
