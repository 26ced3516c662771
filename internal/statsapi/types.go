package statsapi

import "encoding/json"

// Abstract game states used by the Stats API status objects.
const (
	StatePreview   = "Preview"
	StateScheduled = "Scheduled"
	StateLive      = "Live"
	StateFinal     = "Final"
)

// ScheduleDoc is the decoded subset of /api/v1/schedule responses.
type ScheduleDoc struct {
	Dates []ScheduleDate `json:"dates"`
}

type ScheduleDate struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// Game is one schedule entry. The same shape appears inside postseason
// series documents.
type Game struct {
	GamePk            int         `json:"gamePk"`
	GameType          string      `json:"gameType"`
	GameDate          string      `json:"gameDate"`
	SeriesDescription string      `json:"seriesDescription"`
	SeriesGameNumber  int         `json:"seriesGameNumber"`
	GamesInSeries     int         `json:"gamesInSeries"`
	Status            GameStatus  `json:"status"`
	Teams             GameTeams   `json:"teams"`
	Linescore         *Linescore  `json:"linescore"`
	Broadcasts        []Broadcast `json:"broadcasts"`
	Venue             Venue       `json:"venue"`
	Decisions         *Decisions  `json:"decisions"`
}

type GameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	StatusCode        string `json:"statusCode"`
}

type GameTeams struct {
	Away GameTeamSide `json:"away"`
	Home GameTeamSide `json:"home"`
}

type GameTeamSide struct {
	Team            TeamRef       `json:"team"`
	Score           *int          `json:"score"`
	LeagueRecord    *LeagueRecord `json:"leagueRecord"`
	ProbablePitcher *Person       `json:"probablePitcher"`
}

type TeamRef struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type LeagueRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"`
}

type Person struct {
	ID        int    `json:"id"`
	FullName  string `json:"fullName"`
	BatSide   *Hand  `json:"batSide"`
	PitchHand *Hand  `json:"pitchHand"`
}

type Hand struct {
	Code string `json:"code"`
}

type Linescore struct {
	CurrentInning        *int           `json:"currentInning"`
	CurrentInningOrdinal *string        `json:"currentInningOrdinal"`
	InningState          *string        `json:"inningState"`
	Outs                 *int           `json:"outs"`
	Innings              []Inning       `json:"innings"`
	Teams                LinescoreTeams `json:"teams"`
	Offense              *Offense       `json:"offense"`
}

type Inning struct {
	Num  int        `json:"num"`
	Away InningHalf `json:"away"`
	Home InningHalf `json:"home"`
}

type InningHalf struct {
	Runs *int `json:"runs"`
}

type LinescoreTeams struct {
	Away LineTotals `json:"away"`
	Home LineTotals `json:"home"`
}

type LineTotals struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

// Offense carries the current base runners. Only presence matters for
// the normalized view.
type Offense struct {
	First  *Person `json:"first"`
	Second *Person `json:"second"`
	Third  *Person `json:"third"`
}

type Broadcast struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	CallSign string `json:"callSign"`
}

type Venue struct {
	Name string `json:"name"`
}

type Decisions struct {
	Winner *Person `json:"winner"`
	Loser  *Person `json:"loser"`
	Save   *Person `json:"save"`
}

// FeedDoc is the decoded subset of /api/v1.1/game/{gamePk}/feed/live.
type FeedDoc struct {
	GamePk   int          `json:"gamePk"`
	GameData FeedGameData `json:"gameData"`
	LiveData FeedLiveData `json:"liveData"`
}

type FeedGameData struct {
	Game     GameInfo     `json:"game"`
	Datetime GameDatetime `json:"datetime"`
	Teams    FeedTeams    `json:"teams"`
	Status   GameStatus   `json:"status"`
	Venue    *Venue       `json:"venue"`
}

type GameInfo struct {
	Pk   int    `json:"pk"`
	Type string `json:"type"`
}

type GameDatetime struct {
	DateTime string `json:"dateTime"`
}

type FeedTeams struct {
	Away TeamRef `json:"away"`
	Home TeamRef `json:"home"`
}

type FeedLiveData struct {
	Linescore *Linescore `json:"linescore"`
	Boxscore  *Boxscore  `json:"boxscore"`
	Plays     *Plays     `json:"plays"`
	Decisions *Decisions `json:"decisions"`
}

type Boxscore struct {
	Teams BoxTeams `json:"teams"`
}

type BoxTeams struct {
	Away BoxTeam `json:"away"`
	Home BoxTeam `json:"home"`
}

// BoxTeam holds per-team boxscore data. Pitchers is an ordered list of
// player ids; Players is keyed by "ID{playerId}".
type BoxTeam struct {
	Pitchers []int                `json:"pitchers"`
	Players  map[string]BoxPlayer `json:"players"`
}

type BoxPlayer struct {
	Person       Person      `json:"person"`
	JerseyNumber string      `json:"jerseyNumber"`
	Position     Position    `json:"position"`
	BattingOrder string      `json:"battingOrder"`
	Stats        PlayerStats `json:"stats"`
	SeasonStats  PlayerStats `json:"seasonStats"`
}

type Position struct {
	Abbreviation string `json:"abbreviation"`
	Type         string `json:"type"`
}

type PlayerStats struct {
	Batting  BattingStats  `json:"batting"`
	Pitching PitchingStats `json:"pitching"`
}

type BattingStats struct {
	AtBats      int    `json:"atBats"`
	Runs        int    `json:"runs"`
	Hits        int    `json:"hits"`
	Doubles     int    `json:"doubles"`
	Triples     int    `json:"triples"`
	HomeRuns    int    `json:"homeRuns"`
	RBI         int    `json:"rbi"`
	BaseOnBalls int    `json:"baseOnBalls"`
	StrikeOuts  int    `json:"strikeOuts"`
	StolenBases int    `json:"stolenBases"`
	Avg         string `json:"avg"`
}

type PitchingStats struct {
	InningsPitched  string `json:"inningsPitched"`
	Hits            int    `json:"hits"`
	Runs            int    `json:"runs"`
	EarnedRuns      int    `json:"earnedRuns"`
	BaseOnBalls     int    `json:"baseOnBalls"`
	StrikeOuts      int    `json:"strikeOuts"`
	NumberOfPitches int    `json:"numberOfPitches"`
	Note            string `json:"note"`
}

type Plays struct {
	CurrentPlay *Play `json:"currentPlay"`
}

type Play struct {
	Matchup *PlayMatchup `json:"matchup"`
}

type PlayMatchup struct {
	Batter  *Person `json:"batter"`
	Pitcher *Person `json:"pitcher"`
}

// StandingsDoc is the decoded subset of /api/v1/standings responses.
type StandingsDoc struct {
	Records []StandingsRecord `json:"records"`
}

type StandingsRecord struct {
	League      LeagueRef    `json:"league"`
	Division    *DivisionRef `json:"division"`
	TeamRecords []TeamRecord `json:"teamRecords"`
}

type LeagueRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DivisionRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TeamRecord is one team row in a standings record. Rank fields arrive
// as strings upstream.
type TeamRecord struct {
	Team                      StandingsTeam `json:"team"`
	Wins                      int           `json:"wins"`
	Losses                    int           `json:"losses"`
	DivisionRank              string        `json:"divisionRank"`
	WildCardRank              string        `json:"wildCardRank"`
	LeagueRecord              *LeagueRecord `json:"leagueRecord"`
	GamesBack                 string        `json:"gamesBack"`
	WildCardGamesBack         string        `json:"wildCardGamesBack"`
	Streak                    *Streak       `json:"streak"`
	RunDifferential           int           `json:"runDifferential"`
	Clinched                  bool          `json:"clinched"`
	ClinchIndicator           string        `json:"clinchIndicator"`
	EliminationNumber         string        `json:"eliminationNumber"`
	WildCardEliminationNumber string        `json:"wildCardEliminationNumber"`
	Records                   *RecordSplits `json:"records"`
}

type RecordSplits struct {
	SplitRecords []SplitRecord `json:"splitRecords"`
}

type SplitRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Type   string `json:"type"`
}

type StandingsTeam struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Abbreviation string       `json:"abbreviation"`
	Division     *DivisionRef `json:"division"`
}

type Streak struct {
	StreakCode string `json:"streakCode"`
}

// PostseasonDoc is the decoded subset of
// /api/v1/schedule/postseason/series responses.
type PostseasonDoc struct {
	Series []SeriesEntry `json:"series"`
}

type SeriesEntry struct {
	Series SeriesRef `json:"series"`
	Games  []Game    `json:"games"`
}

type SeriesRef struct {
	ID       string `json:"id"`
	GameType string `json:"gameType"`
}

// TeamsDoc is the decoded subset of /api/v1/teams responses.
type TeamsDoc struct {
	Teams []TeamDetail `json:"teams"`
}

type TeamDetail struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	TeamName        string       `json:"teamName"`
	ShortName       string       `json:"shortName"`
	Abbreviation    string       `json:"abbreviation"`
	LocationName    string       `json:"locationName"`
	FirstYearOfPlay string       `json:"firstYearOfPlay"`
	ParentOrgID     int          `json:"parentOrgId"`
	ParentOrgName   string       `json:"parentOrgName"`
	League          *LeagueRef   `json:"league"`
	Division        *DivisionRef `json:"division"`
	Venue           *Venue       `json:"venue"`
	Sport           *SportRef    `json:"sport"`
}

type SportRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RosterDoc is the decoded subset of /api/v1/teams/{id}/roster.
type RosterDoc struct {
	Roster []RosterSlot `json:"roster"`
}

type RosterSlot struct {
	Person       RosterPerson `json:"person"`
	JerseyNumber string       `json:"jerseyNumber"`
	Position     Position     `json:"position"`
	Status       *StatusRef   `json:"status"`
}

type StatusRef struct {
	Description string `json:"description"`
}

type RosterPerson struct {
	ID         int         `json:"id"`
	FullName   string      `json:"fullName"`
	BatSide    *Hand       `json:"batSide"`
	PitchHand  *Hand       `json:"pitchHand"`
	CurrentAge int         `json:"currentAge"`
	Stats      []StatGroup `json:"stats"`
}

type StatGroup struct {
	Splits []StatSplit `json:"splits"`
}

// StatSplit passes the season stat line through untouched.
type StatSplit struct {
	Stat json.RawMessage `json:"stat"`
}
