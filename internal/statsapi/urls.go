package statsapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// League ids used by the bracket engine and standings views.
const (
	AmericanLeagueID = 103
	NationalLeagueID = 104
)

const scheduleHydrate = "broadcasts(all),linescore,team,decisions,probablePitcher,person"

// ScheduleURL builds the three-day schedule endpoint.
func ScheduleURL(base string, sportID int, startDate, endDate string) string {
	q := url.Values{}
	q.Set("sportId", strconv.Itoa(sportID))
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	q.Set("hydrate", scheduleHydrate)
	return base + "/api/v1/schedule?" + q.Encode()
}

// GameFeedURL builds the live feed endpoint for one game.
func GameFeedURL(base string, gamePk int) string {
	return fmt.Sprintf("%s/api/v1.1/game/%d/feed/live", base, gamePk)
}

// PostseasonSeriesURL builds the postseason series endpoint.
func PostseasonSeriesURL(base string, season, sportID int) string {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	q.Set("sportId", strconv.Itoa(sportID))
	return base + "/api/v1/schedule/postseason/series?" + q.Encode()
}

// StandingsURL builds the MLB standings endpoint for the given type
// (regularSeason or wildCard).
func StandingsURL(base string, season int, standingsType string) string {
	q := url.Values{}
	q.Set("leagueId", fmt.Sprintf("%d,%d", AmericanLeagueID, NationalLeagueID))
	q.Set("season", strconv.Itoa(season))
	q.Set("standingsTypes", standingsType)
	q.Set("hydrate", "team")
	return base + "/api/v1/standings?" + q.Encode()
}

// SportStandingsURL builds the standings endpoint for a minor-league
// sport id.
func SportStandingsURL(base string, sportID, season int) string {
	q := url.Values{}
	q.Set("sportId", strconv.Itoa(sportID))
	q.Set("season", strconv.Itoa(season))
	q.Set("standingsTypes", "regularSeason")
	q.Set("hydrate", "team")
	return base + "/api/v1/standings?" + q.Encode()
}

// TeamsURL builds the teams list endpoint for a sport id.
func TeamsURL(base string, sportID, season int) string {
	q := url.Values{}
	q.Set("sportId", strconv.Itoa(sportID))
	q.Set("season", strconv.Itoa(season))
	return base + "/api/v1/teams?" + q.Encode()
}

// TeamURL builds the single-team endpoint.
func TeamURL(base string, teamID int) string {
	return fmt.Sprintf("%s/api/v1/teams/%d", base, teamID)
}

// AffiliatesURL builds the team affiliates endpoint.
func AffiliatesURL(base string, teamID int) string {
	return fmt.Sprintf("%s/api/v1/teams/%d/affiliates", base, teamID)
}

// RosterURL builds the active roster endpoint with season stat hydration.
func RosterURL(base string, teamID int) string {
	q := url.Values{}
	q.Set("rosterType", "active")
	q.Set("hydrate", "person(stats(type=season))")
	return fmt.Sprintf("%s/api/v1/teams/%d/roster?%s", base, teamID, q.Encode())
}

// EndpointLabel maps a request URL to a coarse label for metrics.
func EndpointLabel(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "unknown"
	}
	path := parsed.Path
	switch {
	case strings.Contains(path, "/feed/live"):
		return "game_feed"
	case strings.Contains(path, "/schedule/postseason"):
		return "postseason"
	case strings.Contains(path, "/schedule"):
		return "schedule"
	case strings.Contains(path, "/standings"):
		return "standings"
	case strings.Contains(path, "/roster"):
		return "roster"
	case strings.Contains(path, "/affiliates"):
		return "affiliates"
	case strings.Contains(path, "/teams"):
		return "teams"
	default:
		return "unknown"
	}
}
