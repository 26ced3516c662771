package refstore

import "context"

// StaticStore serves a fixed snapshot from memory. It backs tests and
// deployments without a reference database, where upstream-supplied
// names are good enough.
type StaticStore struct {
	teams   map[int]TeamInfo
	leagues map[int]string
}

// NewStatic constructs a StaticStore from the given snapshots. Either
// map may be nil.
func NewStatic(teams map[int]TeamInfo, leagues map[int]string) *StaticStore {
	if teams == nil {
		teams = make(map[int]TeamInfo)
	}
	if leagues == nil {
		leagues = make(map[int]string)
	}
	return &StaticStore{teams: teams, leagues: leagues}
}

// TeamMap returns a copy of the configured team snapshot.
func (s *StaticStore) TeamMap(ctx context.Context) (map[int]TeamInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := make(map[int]TeamInfo, len(s.teams))
	for id, info := range s.teams {
		result[id] = info
	}
	return result, nil
}

// TeamLeague returns the configured league for a team, "" if unknown.
func (s *StaticStore) TeamLeague(ctx context.Context, teamID int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.leagues[teamID], nil
}
