package games

// GameState is the coarse lifecycle classification derived from the
// upstream abstract game state.
type GameState string

const (
	StateScheduled GameState = "Scheduled"
	StateLive      GameState = "Live"
	StateFinal     GameState = "Final"
)

// TeamSide is one side of a game as served to clients. Name and
// abbreviation prefer the local reference map and fall back to the
// upstream-supplied strings.
type TeamSide struct {
	TeamID       int    `json:"teamId"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Score        *int   `json:"score"`
	Record       string `json:"record"`
	IsWinner     bool   `json:"isWinner"`
}

// InningLine is one inning's runs for both sides; nil means not played.
type InningLine struct {
	Away *int `json:"away"`
	Home *int `json:"home"`
}

// DecisionCredit names a pitcher credited with a decision.
type DecisionCredit struct {
	Name string  `json:"name"`
	Hand *string `json:"hand"`
}

// Decisions carries the win/loss/save credits for a final game.
type Decisions struct {
	Winner *DecisionCredit `json:"winner,omitempty"`
	Loser  *DecisionCredit `json:"loser,omitempty"`
	Save   *DecisionCredit `json:"save,omitempty"`
}

// ProbablePitchers names the announced starters for a scheduled game.
type ProbablePitchers struct {
	Away     string  `json:"away,omitempty"`
	AwayHand *string `json:"awayHand,omitempty"`
	Home     string  `json:"home,omitempty"`
	HomeHand *string `json:"homeHand,omitempty"`
}

// Game is the normalized single-game view used inside schedule buckets.
type Game struct {
	GamePk        int       `json:"gamePk"`
	GameType      string    `json:"gameType"`
	GameTypeLabel string    `json:"gameTypeLabel"`
	StartTime     string    `json:"startTime"`
	Status        string    `json:"status"`
	StatusCode    string    `json:"statusCode"`
	State         GameState `json:"state"`
	IsFinal       bool      `json:"isFinal"`
	IsLive        bool      `json:"isLive"`
	IsScheduled   bool      `json:"isScheduled"`

	CurrentInning *int    `json:"currentInning"`
	InningState   *string `json:"inningState"`
	InningOrdinal *string `json:"inningOrdinal"`
	Outs          *int    `json:"outs"`
	OnFirst       bool    `json:"onFirst"`
	OnSecond      bool    `json:"onSecond"`
	OnThird       bool    `json:"onThird"`
	IsTopInning   bool    `json:"isTopInning"`

	Away TeamSide `json:"away"`
	Home TeamSide `json:"home"`

	Broadcasts []string     `json:"broadcasts"`
	Venue      string       `json:"venue"`
	Innings    []InningLine `json:"innings"`

	Decisions        *Decisions        `json:"decisions,omitempty"`
	ProbablePitchers *ProbablePitchers `json:"probablePitchers,omitempty"`
}

// DayBucket groups one day's games under its relative label.
type DayBucket struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Games []Game `json:"games"`
}

// Window is the served three-day schedule view.
type Window struct {
	Days []DayBucket `json:"days"`
}
