package standings

import (
	"testing"

	"mlb-stats-service/internal/refstore"
	"mlb-stats-service/internal/statsapi"
)

func record(leagueID, divisionID int, rows ...statsapi.TeamRecord) statsapi.StandingsRecord {
	return statsapi.StandingsRecord{
		League:      statsapi.LeagueRef{ID: leagueID},
		Division:    &statsapi.DivisionRef{ID: divisionID, Name: "Division"},
		TeamRecords: rows,
	}
}

func teamRow(id, wins int, divisionRank, wildCardRank string) statsapi.TeamRecord {
	return statsapi.TeamRecord{
		Team:         statsapi.StandingsTeam{ID: id, Name: "Team"},
		Wins:         wins,
		Losses:       162 - wins,
		DivisionRank: divisionRank,
		WildCardRank: wildCardRank,
		LeagueRecord: &statsapi.LeagueRecord{Pct: ".550"},
	}
}

func TestBuildWildCardExcludesLeadersAndSorts(t *testing.T) {
	doc := &statsapi.StandingsDoc{Records: []statsapi.StandingsRecord{
		record(statsapi.AmericanLeagueID, 201,
			teamRow(1, 100, "1", ""),
			teamRow(4, 85, "2", "2"),
			teamRow(7, 70, "3", "6"),
		),
		record(statsapi.AmericanLeagueID, 202,
			teamRow(2, 95, "1", ""),
			teamRow(5, 88, "2", "1"),
			teamRow(6, 80, "2", "4"),
		),
		record(statsapi.NationalLeagueID, 203,
			teamRow(30, 92, "1", ""),
			teamRow(31, 84, "2", "1"),
		),
	}}

	wc := BuildWildCard(doc, nil)

	if len(wc.AL) != 4 {
		t.Fatalf("AL rows = %d, want 4 (leaders excluded)", len(wc.AL))
	}
	order := []int{5, 4, 6, 7}
	for i, want := range order {
		if wc.AL[i].TeamID != want {
			t.Errorf("AL row %d = team %d, want %d", i, wc.AL[i].TeamID, want)
		}
	}
	if !wc.AL[0].InWildCardSpot || wc.AL[3].InWildCardSpot {
		t.Error("wild card spot flags wrong")
	}
	if len(wc.NL) != 1 || wc.NL[0].TeamID != 31 {
		t.Errorf("NL rows = %+v, want only team 31", wc.NL)
	}
}

func TestBuildWildCardFlags(t *testing.T) {
	row := teamRow(9, 80, "2", "5")
	row.WildCardEliminationNumber = "E"
	row.Streak = &statsapi.Streak{StreakCode: "L3"}
	row.Records = &statsapi.RecordSplits{SplitRecords: []statsapi.SplitRecord{
		{Type: "home", Wins: 40, Losses: 20},
		{Type: "lastTen", Wins: 3, Losses: 7},
	}}
	doc := &statsapi.StandingsDoc{Records: []statsapi.StandingsRecord{
		record(statsapi.NationalLeagueID, 203, row),
	}}

	wc := BuildWildCard(doc, map[int]refstore.TeamInfo{9: {Name: "Cubs", Abbreviation: "CHC"}})

	got := wc.NL[0]
	if !got.IsEliminated {
		t.Error("elimination flag missing")
	}
	if got.Streak != "L3" || got.LastTen != "3-7" {
		t.Errorf("streak/lastTen = %q/%q", got.Streak, got.LastTen)
	}
	if got.Name != "Cubs" || got.Abbreviation != "CHC" {
		t.Errorf("reference identity not applied: %q/%q", got.Name, got.Abbreviation)
	}
	if got.Pct != ".550" {
		t.Errorf("pct = %q", got.Pct)
	}
}

func TestBuildWildCardNilDoc(t *testing.T) {
	wc := BuildWildCard(nil, nil)
	if wc.AL == nil || wc.NL == nil || len(wc.AL) != 0 {
		t.Error("nil doc should give empty non-nil tables")
	}
}

func TestBuildDivisionsSortsByRank(t *testing.T) {
	clinched := teamRow(11, 98, "1", "")
	clinched.Clinched = true
	doc := &statsapi.StandingsDoc{Records: []statsapi.StandingsRecord{
		record(statsapi.AmericanLeagueID, 202,
			teamRow(13, 80, "3", ""),
			clinched,
			teamRow(12, 90, "2", ""),
		),
		record(statsapi.NationalLeagueID, 205,
			teamRow(21, 85, "1", ""),
		),
	}}

	d := BuildDivisions(doc, nil)

	if len(d.Divisions) != 2 {
		t.Fatalf("divisions = %d, want 2", len(d.Divisions))
	}
	al := d.Divisions[0]
	if al.DivisionID != 202 || al.League != "AL" {
		t.Fatalf("division identity wrong: %+v", al)
	}
	order := []int{11, 12, 13}
	for i, want := range order {
		if al.Rows[i].TeamID != want {
			t.Errorf("row %d = team %d, want %d", i, al.Rows[i].TeamID, want)
		}
	}
	if !al.Rows[0].IsClinched {
		t.Error("clinch flag missing")
	}
	if d.Divisions[1].League != "NL" {
		t.Errorf("second division league = %q, want NL", d.Divisions[1].League)
	}
}

func TestBuildDivisionsSkipsLeagueOnlyRecords(t *testing.T) {
	doc := &statsapi.StandingsDoc{Records: []statsapi.StandingsRecord{
		{League: statsapi.LeagueRef{ID: statsapi.AmericanLeagueID}, TeamRecords: []statsapi.TeamRecord{teamRow(1, 90, "1", "")}},
	}}
	d := BuildDivisions(doc, nil)
	if len(d.Divisions) != 0 {
		t.Errorf("records without a division should be skipped, got %d", len(d.Divisions))
	}
}
