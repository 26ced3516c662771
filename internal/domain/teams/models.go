package teams

import "encoding/json"

// Summary is one team in a list view.
type Summary struct {
	TeamID       int    `json:"teamId"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LocationName string `json:"locationName"`
	League       string `json:"league"`
	Division     string `json:"division"`
	SportID      int    `json:"sportId"`
	SportName    string `json:"sportName"`
	Venue        string `json:"venue"`
}

// Profile is the detailed single-team view.
type Profile struct {
	Summary
	FirstYearOfPlay string `json:"firstYearOfPlay"`
	TeamName        string `json:"teamName"`
	ShortName       string `json:"shortName"`
	ParentOrgID     int    `json:"parentOrgId,omitempty"`
	ParentOrgName   string `json:"parentOrgName,omitempty"`
}

// Affiliate is one minor-league club of a parent organization.
type Affiliate struct {
	TeamID       int    `json:"teamId"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	SportID      int    `json:"sportId"`
	LevelName    string `json:"levelName"`
	League       string `json:"league"`
	Venue        string `json:"venue"`
}

// RosterEntry is one player on a team roster. Stats carries the
// player's season stat line as delivered upstream.
type RosterEntry struct {
	PlayerID     int             `json:"playerId"`
	Name         string          `json:"name"`
	Number       string          `json:"number"`
	Position     string          `json:"position"`
	PositionType string          `json:"positionType"`
	Bats         string          `json:"bats"`
	Throws       string          `json:"throws"`
	Age          int             `json:"age"`
	Status       string          `json:"status"`
	Stats        json.RawMessage `json:"stats,omitempty"`
}

// Roster is the served roster view, pitchers listed before position
// players.
type Roster struct {
	TeamID  int           `json:"teamId"`
	Players []RosterEntry `json:"players"`
}
