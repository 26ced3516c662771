package standings

// WildCardRow is one league's wild-card standings line.
type WildCardRow struct {
	TeamID          int    `json:"teamId"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	Pct             string `json:"pct"`
	WildCardRank    int    `json:"wildCardRank"`
	WildCardGB      string `json:"wildCardGamesBack"`
	RunDifferential int    `json:"runDifferential"`
	Streak          string `json:"streak"`
	LastTen         string `json:"lastTen"`
	InWildCardSpot  bool   `json:"inWildCardSpot"`
	IsEliminated    bool   `json:"isEliminated"`
	IsClinched      bool   `json:"isClinched"`
}

// WildCard is the served wild-card standings view, split by league.
type WildCard struct {
	AL []WildCardRow `json:"al"`
	NL []WildCardRow `json:"nl"`
}

// DivisionRow is one team's line in a division table.
type DivisionRow struct {
	TeamID          int    `json:"teamId"`
	Name            string `json:"name"`
	Abbreviation    string `json:"abbreviation"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	Pct             string `json:"pct"`
	GamesBack       string `json:"gamesBack"`
	DivisionRank    int    `json:"divisionRank"`
	Streak          string `json:"streak"`
	LastTen         string `json:"lastTen"`
	RunDifferential int    `json:"runDifferential"`
	IsClinched      bool   `json:"isClinched"`
}

// Division is one division's standings table.
type Division struct {
	DivisionID int           `json:"divisionId"`
	Name       string        `json:"name"`
	League     string        `json:"league"`
	Rows       []DivisionRow `json:"rows"`
}

// Divisions is the served division standings view.
type Divisions struct {
	Divisions []Division `json:"divisions"`
}
