package games

// Upstream single-letter game type codes.
const (
	GameTypeSpring       = "S"
	GameTypeExhibition   = "E"
	GameTypeRegular      = "R"
	GameTypeWildCard     = "F"
	GameTypeDivision     = "D"
	GameTypeLeague       = "L"
	GameTypeWorldSeries  = "W"
	GameTypeAllStar      = "A"
	GameTypeChampionship = "C"
)

var gameTypeLabels = map[string]string{
	GameTypeSpring:       "Spring Training",
	GameTypeExhibition:   "Exhibition",
	GameTypeRegular:      "Regular Season",
	GameTypeWildCard:     "Wild Card",
	GameTypeDivision:     "Division Series",
	GameTypeLeague:       "League Championship",
	GameTypeWorldSeries:  "World Series",
	GameTypeAllStar:      "All-Star Game",
	GameTypeChampionship: "Championship",
}

// GameTypeLabel maps a single-letter game type code to a display label.
// Unknown codes fall back to the code itself.
func GameTypeLabel(code string) string {
	if label, ok := gameTypeLabels[code]; ok {
		return label
	}
	return code
}
