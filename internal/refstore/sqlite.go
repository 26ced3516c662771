package refstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore reads reference data from a SQLite database maintained by
// the import jobs. Expected schema: teams(mlb_id, team_name,
// abbreviation, league, is_active).
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens the reference database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open reference db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping reference db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// TeamMap returns display info keyed by MLB team id.
func (s *SQLiteStore) TeamMap(ctx context.Context) (map[int]TeamInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mlb_id, team_name, abbreviation FROM teams WHERE mlb_id IS NOT NULL AND is_active = 1`)
	if err != nil {
		return nil, fmt.Errorf("query team map: %w", err)
	}
	defer rows.Close()

	result := make(map[int]TeamInfo)
	for rows.Next() {
		var (
			id   int
			info TeamInfo
		)
		if err := rows.Scan(&id, &info.Name, &info.Abbreviation); err != nil {
			return nil, fmt.Errorf("scan team row: %w", err)
		}
		result[id] = info
	}
	return result, rows.Err()
}

// TeamLeague returns the league ("AL"/"NL") recorded for a team.
func (s *SQLiteStore) TeamLeague(ctx context.Context, teamID int) (string, error) {
	var league sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT league FROM teams WHERE mlb_id = ? LIMIT 1`, teamID).Scan(&league)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("query team league: %w", err)
	}
	return league.String, nil
}
