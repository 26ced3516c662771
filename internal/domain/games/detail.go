package games

// PitcherLine is one pitching appearance in a game box score.
type PitcherLine struct {
	PlayerID       int    `json:"playerId"`
	Name           string `json:"name"`
	Number         string `json:"number"`
	InningsPitched string `json:"inningsPitched"`
	Hits           int    `json:"hits"`
	Runs           int    `json:"runs"`
	EarnedRuns     int    `json:"earnedRuns"`
	Walks          int    `json:"walks"`
	StrikeOuts     int    `json:"strikeOuts"`
	PitchesThrown  int    `json:"pitchesThrown"`
	Note           string `json:"note,omitempty"`
}

// BatterLine is one lineup entry in a game box score. LineupSpot is the
// 1-based batting order position; IsSubstitute marks mid-game entries.
type BatterLine struct {
	PlayerID     int    `json:"playerId"`
	Name         string `json:"name"`
	Number       string `json:"number"`
	Position     string `json:"position"`
	LineupSpot   int    `json:"lineupSpot"`
	IsSubstitute bool   `json:"isSubstitute"`
	AtBats       int    `json:"atBats"`
	Runs         int    `json:"runs"`
	Hits         int    `json:"hits"`
	RBI          int    `json:"rbi"`
	Walks        int    `json:"walks"`
	StrikeOuts   int    `json:"strikeOuts"`
	Average      string `json:"average"`
}

// BoxSide is one team's box score lines.
type BoxSide struct {
	Pitchers []PitcherLine `json:"pitchers"`
	Batters  []BatterLine  `json:"batters"`
}

// MatchupPlayer describes one participant in the current at-bat.
type MatchupPlayer struct {
	PlayerID int     `json:"playerId"`
	Name     string  `json:"name"`
	Position string  `json:"position,omitempty"`
	Hand     *string `json:"hand,omitempty"`
	Summary  string  `json:"summary,omitempty"`
}

// Matchup is the in-progress pitcher/batter pairing for a live game.
type Matchup struct {
	Pitcher MatchupPlayer `json:"pitcher"`
	Batter  MatchupPlayer `json:"batter"`
}

// LineTotals is one side's aggregate line score.
type LineTotals struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

// Detail is the full single-game view built from the live feed.
type Detail struct {
	Game

	AwayTotals LineTotals `json:"awayTotals"`
	HomeTotals LineTotals `json:"homeTotals"`

	AwayBox BoxSide `json:"awayBox"`
	HomeBox BoxSide `json:"homeBox"`

	Matchup *Matchup `json:"matchup,omitempty"`
}
