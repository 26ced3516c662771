package teams

import (
	"encoding/json"
	"testing"

	"mlb-stats-service/internal/statsapi"
)

func team(id int, name string, sportID int, sportName string) statsapi.TeamDetail {
	return statsapi.TeamDetail{
		ID:           id,
		Name:         name,
		Abbreviation: "ABB",
		Sport:        &statsapi.SportRef{ID: sportID, Name: sportName},
		League:       &statsapi.LeagueRef{Name: "Some League"},
		Venue:        &statsapi.Venue{Name: "Some Park"},
	}
}

func TestBuildListSortsByName(t *testing.T) {
	doc := &statsapi.TeamsDoc{Teams: []statsapi.TeamDetail{
		team(2, "Worcester Red Sox", 11, "Triple-A"),
		team(1, "Binghamton Rumble Ponies", 12, "Double-A"),
		team(3, "Brooklyn Cyclones", 13, "High-A"),
	}}

	list := BuildList(doc)

	if len(list) != 3 {
		t.Fatalf("teams = %d, want 3", len(list))
	}
	want := []string{"Binghamton Rumble Ponies", "Brooklyn Cyclones", "Worcester Red Sox"}
	for i, name := range want {
		if list[i].Name != name {
			t.Errorf("team %d = %q, want %q", i, list[i].Name, name)
		}
	}
	if list[0].League != "Some League" || list[0].Venue != "Some Park" {
		t.Errorf("summary fields missing: %+v", list[0])
	}
}

func TestBuildProfile(t *testing.T) {
	detail := team(111, "Boston Red Sox", 1, "Major League Baseball")
	detail.TeamName = "Red Sox"
	detail.ShortName = "Boston"
	detail.FirstYearOfPlay = "1901"
	detail.ParentOrgID = 0

	p := BuildProfile(detail)

	if p.TeamID != 111 || p.TeamName != "Red Sox" || p.FirstYearOfPlay != "1901" {
		t.Errorf("profile wrong: %+v", p)
	}
}

func TestBuildAffiliatesOrdering(t *testing.T) {
	doc := &statsapi.TeamsDoc{Teams: []statsapi.TeamDetail{
		team(4, "Single-A Club", 14, "Class A"),
		team(1, "Zeta Triple-A Club", 11, "Triple-A"),
		team(2, "Alpha Triple-A Club", 11, "Triple-A"),
		team(3, "Double-A Club", 12, "Double-A"),
		team(5, "Complex Club", 16, "Rookie"),
	}}

	affiliates := BuildAffiliates(doc)

	wantIDs := []int{2, 1, 3, 4, 5}
	for i, id := range wantIDs {
		if affiliates[i].TeamID != id {
			t.Errorf("affiliate %d = team %d, want %d", i, affiliates[i].TeamID, id)
		}
	}
	if affiliates[0].LevelName != "Triple-A" || affiliates[3].LevelName != "Single-A" {
		t.Errorf("level names wrong: %q / %q", affiliates[0].LevelName, affiliates[3].LevelName)
	}
}

func TestLevelNameFallsBack(t *testing.T) {
	if got := LevelName(99, "Winter League"); got != "Winter League" {
		t.Errorf("LevelName = %q, want upstream name", got)
	}
}

func TestBuildRosterPitchersFirst(t *testing.T) {
	slot := func(id int, name, number, position, positionType string) statsapi.RosterSlot {
		return statsapi.RosterSlot{
			Person:       statsapi.RosterPerson{ID: id, FullName: name},
			JerseyNumber: number,
			Position:     statsapi.Position{Abbreviation: position, Type: positionType},
			Status:       &statsapi.StatusRef{Description: "Active"},
		}
	}
	doc := &statsapi.RosterDoc{Roster: []statsapi.RosterSlot{
		slot(1, "Catcher Guy", "12", "C", "Catcher"),
		slot(2, "Closer Guy", "45", "P", "Pitcher"),
		slot(3, "Starter Guy", "7", "P", "Pitcher"),
		slot(4, "No Number Pitcher", "", "P", "Pitcher"),
		slot(5, "Infielder Guy", "2", "SS", "Infielder"),
	}}

	roster := BuildRoster(120, doc)

	if roster.TeamID != 120 {
		t.Fatalf("teamID = %d", roster.TeamID)
	}
	wantIDs := []int{3, 2, 4, 5, 1}
	for i, id := range wantIDs {
		if roster.Players[i].PlayerID != id {
			t.Errorf("roster slot %d = player %d, want %d", i, roster.Players[i].PlayerID, id)
		}
	}
	if roster.Players[0].Status != "Active" {
		t.Errorf("status = %q", roster.Players[0].Status)
	}
}

func TestBuildRosterCarriesPersonDetails(t *testing.T) {
	doc := &statsapi.RosterDoc{Roster: []statsapi.RosterSlot{{
		Person: statsapi.RosterPerson{
			ID:         660271,
			FullName:   "Shohei Ohtani",
			BatSide:    &statsapi.Hand{Code: "L"},
			PitchHand:  &statsapi.Hand{Code: "R"},
			CurrentAge: 30,
			Stats: []statsapi.StatGroup{
				{},
				{Splits: []statsapi.StatSplit{{Stat: json.RawMessage(`{"avg":".310","homeRuns":44}`)}}},
			},
		},
		JerseyNumber: "17",
		Position:     statsapi.Position{Abbreviation: "DH", Type: "Hitter"},
	}}}

	roster := BuildRoster(119, doc)

	p := roster.Players[0]
	if p.Bats != "L" || p.Throws != "R" || p.Age != 30 {
		t.Errorf("person details = bats %q throws %q age %d", p.Bats, p.Throws, p.Age)
	}
	if string(p.Stats) != `{"avg":".310","homeRuns":44}` {
		t.Errorf("stat line = %s", p.Stats)
	}
}

func TestBuildRosterNoStatHydration(t *testing.T) {
	doc := &statsapi.RosterDoc{Roster: []statsapi.RosterSlot{{
		Person: statsapi.RosterPerson{ID: 1, FullName: "September Callup"},
	}}}

	roster := BuildRoster(119, doc)
	if roster.Players[0].Stats != nil {
		t.Errorf("stats = %s, want none", roster.Players[0].Stats)
	}
}
