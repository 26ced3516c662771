package bracket

// SeriesStatus is the coarse lifecycle of a postseason series.
type SeriesStatus string

const (
	StatusScheduled  SeriesStatus = "scheduled"
	StatusInProgress SeriesStatus = "in_progress"
	StatusComplete   SeriesStatus = "complete"
)

// UnseededRank marks a team that has no seed in the standings-derived
// seed map. It sorts after every real seed.
const UnseededRank = 99

// Placeholder identity for a bracket slot whose team is not yet
// determined.
const (
	PlaceholderName         = "TBD"
	PlaceholderAbbreviation = "???"
)

// PlayoffTeam is one team in a postseason seed map.
type PlayoffTeam struct {
	TeamID         int    `json:"teamId"`
	Name           string `json:"name"`
	Abbreviation   string `json:"abbreviation"`
	Seed           int    `json:"seed"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	DivisionWinner bool   `json:"divisionWinner"`
}

// SeedMap is seed number to team for one league.
type SeedMap map[int]PlayoffTeam

// StandingRow is one team's regular-season line in the bracket's
// per-league playoff-teams list.
type StandingRow struct {
	TeamID       int    `json:"teamId"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	DivisionRank int    `json:"divisionRank"`
	Division     string `json:"division"`
	Clinched     bool   `json:"clinched"`
	ClinchType   string `json:"clinchType"`
	Eliminated   bool   `json:"eliminated"`
}

// Team is one side of a bracket series.
type Team struct {
	TeamID       int    `json:"teamId"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Seed         int    `json:"seed"`
	Wins         int    `json:"wins"`
	IsWinner     bool   `json:"isWinner"`
}

// SeriesGame is one game within a series summary.
type SeriesGame struct {
	GamePk     int    `json:"gamePk"`
	GameDate   string `json:"gameDate"`
	Status     string `json:"status"`
	AwayScore  *int   `json:"awayScore"`
	HomeScore  *int   `json:"homeScore"`
	GameNumber int    `json:"gameNumber"`
}

// Series is one postseason series in the bracket view. Top holds the
// higher seed (home-field side), Bottom the lower.
type Series struct {
	SeriesID      string       `json:"seriesId"`
	GameType      string       `json:"gameType"`
	League        string       `json:"league"`
	Round         string       `json:"round"`
	Status        SeriesStatus `json:"status"`
	GamesInSeries int          `json:"gamesInSeries"`
	WinsToClinch  int          `json:"winsToClinch"`
	Top           Team         `json:"top"`
	Bottom        Team         `json:"bottom"`
	WinnerID      *int         `json:"winnerId"`
	Winner        *Team        `json:"winner"`
	Games         []SeriesGame `json:"games"`
}

// Rounds groups one league's series by playoff round.
type Rounds struct {
	WildCard []Series `json:"wildCard"`
	Division []Series `json:"division"`
	LCS      []Series `json:"lcs"`
}

// Bracket is the served postseason view.
type Bracket struct {
	Season       int                      `json:"season"`
	Seeds        map[string]SeedMap       `json:"seeds"`
	PlayoffTeams map[string][]StandingRow `json:"playoffTeams"`
	AL           Rounds                   `json:"al"`
	NL           Rounds                   `json:"nl"`
	WorldSeries  []Series                 `json:"worldSeries"`
	HasStarted   bool                     `json:"hasStarted"`
	IsComplete   bool                     `json:"isComplete"`
}
