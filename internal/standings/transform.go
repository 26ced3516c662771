// Package standings shapes raw standings documents into the served
// wild-card and division views.
package standings

import (
	"sort"
	"strconv"

	"mlb-stats-service/internal/domain/standings"
	"mlb-stats-service/internal/refstore"
	"mlb-stats-service/internal/statsapi"
)

const wildCardSpots = 3

// BuildWildCard splits a standings document into per-league wild-card
// tables. Division leaders are excluded; remaining teams sort by their
// upstream wild-card rank with wins as a fallback.
func BuildWildCard(doc *statsapi.StandingsDoc, ref map[int]refstore.TeamInfo) standings.WildCard {
	out := standings.WildCard{AL: []standings.WildCardRow{}, NL: []standings.WildCardRow{}}
	if doc == nil {
		return out
	}

	byLeague := map[int][]standings.WildCardRow{}
	for _, record := range doc.Records {
		for _, tr := range record.TeamRecords {
			if tr.DivisionRank == "1" {
				continue
			}
			byLeague[record.League.ID] = append(byLeague[record.League.ID], wildCardRow(tr, ref))
		}
	}

	for leagueID, rows := range byLeague {
		sort.Slice(rows, func(i, j int) bool {
			ri, rj := rows[i].WildCardRank, rows[j].WildCardRank
			if ri != rj {
				if ri == 0 {
					return false
				}
				if rj == 0 {
					return true
				}
				return ri < rj
			}
			if rows[i].Wins != rows[j].Wins {
				return rows[i].Wins > rows[j].Wins
			}
			return rows[i].TeamID < rows[j].TeamID
		})
		switch leagueID {
		case statsapi.AmericanLeagueID:
			out.AL = rows
		case statsapi.NationalLeagueID:
			out.NL = rows
		}
	}
	return out
}

func wildCardRow(tr statsapi.TeamRecord, ref map[int]refstore.TeamInfo) standings.WildCardRow {
	rank, _ := strconv.Atoi(tr.WildCardRank)
	row := standings.WildCardRow{
		TeamID:          tr.Team.ID,
		Name:            tr.Team.Name,
		Abbreviation:    tr.Team.Abbreviation,
		Wins:            tr.Wins,
		Losses:          tr.Losses,
		WildCardRank:    rank,
		WildCardGB:      tr.WildCardGamesBack,
		RunDifferential: tr.RunDifferential,
		LastTen:         lastTen(tr),
		InWildCardSpot:  rank > 0 && rank <= wildCardSpots,
		IsEliminated:    tr.WildCardEliminationNumber == "E",
		IsClinched:      tr.Clinched || tr.ClinchIndicator != "",
	}
	applyRef(&row.Name, &row.Abbreviation, tr.Team.ID, ref)
	if tr.LeagueRecord != nil {
		row.Pct = tr.LeagueRecord.Pct
	}
	if tr.Streak != nil {
		row.Streak = tr.Streak.StreakCode
	}
	return row
}

// BuildDivisions groups a standings document into per-division tables
// ordered by upstream division rank.
func BuildDivisions(doc *statsapi.StandingsDoc, ref map[int]refstore.TeamInfo) standings.Divisions {
	out := standings.Divisions{Divisions: []standings.Division{}}
	if doc == nil {
		return out
	}

	for _, record := range doc.Records {
		if record.Division == nil {
			continue
		}
		division := standings.Division{
			DivisionID: record.Division.ID,
			Name:       record.Division.Name,
			League:     leagueLabel(record.League.ID),
			Rows:       make([]standings.DivisionRow, 0, len(record.TeamRecords)),
		}
		for _, tr := range record.TeamRecords {
			division.Rows = append(division.Rows, divisionRow(tr, ref))
		}
		sort.Slice(division.Rows, func(i, j int) bool {
			if division.Rows[i].DivisionRank != division.Rows[j].DivisionRank {
				return division.Rows[i].DivisionRank < division.Rows[j].DivisionRank
			}
			return division.Rows[i].TeamID < division.Rows[j].TeamID
		})
		out.Divisions = append(out.Divisions, division)
	}

	sort.Slice(out.Divisions, func(i, j int) bool {
		return out.Divisions[i].DivisionID < out.Divisions[j].DivisionID
	})
	return out
}

func divisionRow(tr statsapi.TeamRecord, ref map[int]refstore.TeamInfo) standings.DivisionRow {
	rank, _ := strconv.Atoi(tr.DivisionRank)
	row := standings.DivisionRow{
		TeamID:          tr.Team.ID,
		Name:            tr.Team.Name,
		Abbreviation:    tr.Team.Abbreviation,
		Wins:            tr.Wins,
		Losses:          tr.Losses,
		GamesBack:       tr.GamesBack,
		DivisionRank:    rank,
		RunDifferential: tr.RunDifferential,
		LastTen:         lastTen(tr),
		IsClinched:      tr.Clinched || tr.ClinchIndicator != "",
	}
	applyRef(&row.Name, &row.Abbreviation, tr.Team.ID, ref)
	if tr.LeagueRecord != nil {
		row.Pct = tr.LeagueRecord.Pct
	}
	if tr.Streak != nil {
		row.Streak = tr.Streak.StreakCode
	}
	return row
}

func lastTen(tr statsapi.TeamRecord) string {
	if tr.Records == nil {
		return ""
	}
	for _, split := range tr.Records.SplitRecords {
		if split.Type == "lastTen" {
			return strconv.Itoa(split.Wins) + "-" + strconv.Itoa(split.Losses)
		}
	}
	return ""
}

func applyRef(name, abbreviation *string, teamID int, ref map[int]refstore.TeamInfo) {
	info, ok := ref[teamID]
	if !ok {
		return
	}
	if info.Name != "" {
		*name = info.Name
	}
	if info.Abbreviation != "" {
		*abbreviation = info.Abbreviation
	}
}

func leagueLabel(leagueID int) string {
	switch leagueID {
	case statsapi.AmericanLeagueID:
		return "AL"
	case statsapi.NationalLeagueID:
		return "NL"
	default:
		return ""
	}
}
