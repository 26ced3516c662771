package refstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reference.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE teams (
		mlb_id INTEGER,
		team_name TEXT,
		abbreviation TEXT,
		league TEXT,
		is_active INTEGER
	)`)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	rows := []struct {
		id     int
		name   string
		abbr   string
		league string
		active int
	}{
		{145, "Chicago White Sox", "CWS", "AL", 1},
		{112, "Chicago Cubs", "CHC", "NL", 1},
		{999, "Defunct Club", "DEF", "AL", 0},
	}
	for _, r := range rows {
		if _, err := db.Exec(
			`INSERT INTO teams (mlb_id, team_name, abbreviation, league, is_active) VALUES (?, ?, ?, ?, ?)`,
			r.id, r.name, r.abbr, r.league, r.active,
		); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	return path
}

func TestSQLiteTeamMapSkipsInactive(t *testing.T) {
	store, err := OpenSQLite(openTestDB(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	teams, err := store.TeamMap(context.Background())
	if err != nil {
		t.Fatalf("team map: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 active teams, got %d", len(teams))
	}
	if teams[145].Abbreviation != "CWS" {
		t.Fatalf("unexpected team info %+v", teams[145])
	}
	if _, ok := teams[999]; ok {
		t.Fatal("expected inactive team to be excluded")
	}
}

func TestSQLiteTeamLeague(t *testing.T) {
	store, err := OpenSQLite(openTestDB(t))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	league, err := store.TeamLeague(context.Background(), 112)
	if err != nil || league != "NL" {
		t.Fatalf("expected NL, got %q err=%v", league, err)
	}

	league, err = store.TeamLeague(context.Background(), 12345)
	if err != nil || league != "" {
		t.Fatalf("expected empty league for unknown team, got %q err=%v", league, err)
	}
}

func TestStaticStore(t *testing.T) {
	store := NewStatic(
		map[int]TeamInfo{145: {Name: "Chicago White Sox", Abbreviation: "CWS"}},
		map[int]string{145: "AL"},
	)

	teams, err := store.TeamMap(context.Background())
	if err != nil || teams[145].Name != "Chicago White Sox" {
		t.Fatalf("unexpected team map %v err=%v", teams, err)
	}

	league, _ := store.TeamLeague(context.Background(), 145)
	if league != "AL" {
		t.Fatalf("expected AL, got %q", league)
	}
}
