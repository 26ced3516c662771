// Package bracket builds the postseason bracket view from standings
// and postseason series documents.
package bracket

import (
	"sort"
	"strconv"

	"mlb-stats-service/internal/domain/games"
	"mlb-stats-service/internal/refstore"
	"mlb-stats-service/internal/statsapi"
)

const (
	LeagueAL = "AL"
	LeagueNL = "NL"
)

const wildCardSlots = 3

// LeagueResolver reports the league of a team that does not appear in
// either seed map. Used for World Series sides and fallback inference.
type LeagueResolver func(teamID int) (string, bool)

// StaticResolver adapts a plain team-to-league map.
func StaticResolver(leagues map[int]string) LeagueResolver {
	return func(teamID int) (string, bool) {
		league, ok := leagues[teamID]
		return league, ok
	}
}

// BuildSeedMaps derives each league's playoff seeding from a standings
// document. Division winners take seeds 1 through 3 ordered by wins,
// then the three best remaining teams fill the wild-card seeds. Ties
// break on run differential, then team id. A nil document yields empty
// maps.
func BuildSeedMaps(doc *statsapi.StandingsDoc, ref map[int]refstore.TeamInfo) (al, nl SeedMap) {
	al = SeedMap{}
	nl = SeedMap{}
	if doc == nil {
		return al, nl
	}

	type contender struct {
		team           PlayoffTeam
		runDiff        int
		divisionWinner bool
	}
	byLeague := map[int][]contender{}

	for _, record := range doc.Records {
		for _, tr := range record.TeamRecords {
			team := PlayoffTeam{
				TeamID:         tr.Team.ID,
				Name:           tr.Team.Name,
				Abbreviation:   tr.Team.Abbreviation,
				Wins:           tr.Wins,
				Losses:         tr.Losses,
				DivisionWinner: tr.DivisionRank == "1",
			}
			if info, ok := ref[tr.Team.ID]; ok {
				if info.Name != "" {
					team.Name = info.Name
				}
				if info.Abbreviation != "" {
					team.Abbreviation = info.Abbreviation
				}
			}
			byLeague[record.League.ID] = append(byLeague[record.League.ID], contender{
				team:           team,
				runDiff:        tr.RunDifferential,
				divisionWinner: team.DivisionWinner,
			})
		}
	}

	seed := func(contenders []contender) SeedMap {
		order := func(a, b contender) bool {
			if a.team.Wins != b.team.Wins {
				return a.team.Wins > b.team.Wins
			}
			if a.runDiff != b.runDiff {
				return a.runDiff > b.runDiff
			}
			return a.team.TeamID < b.team.TeamID
		}

		var winners, rest []contender
		for _, c := range contenders {
			if c.divisionWinner {
				winners = append(winners, c)
			} else {
				rest = append(rest, c)
			}
		}
		sort.Slice(winners, func(i, j int) bool { return order(winners[i], winners[j]) })
		sort.Slice(rest, func(i, j int) bool { return order(rest[i], rest[j]) })

		out := SeedMap{}
		next := 1
		for _, c := range winners {
			c.team.Seed = next
			out[next] = c.team
			next++
		}
		for i, c := range rest {
			if i >= wildCardSlots {
				break
			}
			c.team.Seed = next
			out[next] = c.team
			next++
		}
		return out
	}

	return seed(byLeague[statsapi.AmericanLeagueID]), seed(byLeague[statsapi.NationalLeagueID])
}

// BuildPlayoffTeams lists every standings team per league with its
// clinch and elimination state, in standings order. A nil document
// yields empty lists.
func BuildPlayoffTeams(doc *statsapi.StandingsDoc, ref map[int]refstore.TeamInfo) map[string][]StandingRow {
	out := map[string][]StandingRow{LeagueAL: {}, LeagueNL: {}}
	if doc == nil {
		return out
	}
	for _, record := range doc.Records {
		league := LeagueNL
		if record.League.ID == statsapi.AmericanLeagueID {
			league = LeagueAL
		}
		for _, tr := range record.TeamRecords {
			row := StandingRow{
				TeamID:       tr.Team.ID,
				Name:         tr.Team.Name,
				Abbreviation: tr.Team.Abbreviation,
				Wins:         tr.Wins,
				Losses:       tr.Losses,
				DivisionRank: parseRank(tr.DivisionRank),
				Clinched:     tr.Clinched,
				ClinchType:   tr.ClinchIndicator,
				Eliminated:   tr.EliminationNumber == "E",
			}
			if tr.Team.Division != nil {
				row.Division = tr.Team.Division.Name
			}
			if info, ok := ref[tr.Team.ID]; ok {
				if info.Name != "" {
					row.Name = info.Name
				}
				if info.Abbreviation != "" {
					row.Abbreviation = info.Abbreviation
				}
			}
			out[league] = append(out[league], row)
		}
	}
	return out
}

func parseRank(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// InferLeague decides which league a series belongs to: seed map
// membership first, then the resolver, defaulting to the National
// League.
func InferLeague(entry statsapi.SeriesEntry, al, nl SeedMap, resolve LeagueResolver) string {
	for _, g := range entry.Games {
		for _, id := range []int{g.Teams.Away.Team.ID, g.Teams.Home.Team.ID} {
			if id == 0 {
				continue
			}
			if _, ok := findSeed(al, id); ok {
				return LeagueAL
			}
			if _, ok := findSeed(nl, id); ok {
				return LeagueNL
			}
		}
	}
	if resolve != nil {
		for _, g := range entry.Games {
			if g.Teams.Away.Team.ID == 0 {
				continue
			}
			if league, ok := resolve(g.Teams.Away.Team.ID); ok {
				return league
			}
			break
		}
	}
	return LeagueNL
}

func findSeed(m SeedMap, teamID int) (PlayoffTeam, bool) {
	for _, team := range m {
		if team.TeamID == teamID {
			return team, true
		}
	}
	return PlayoffTeam{}, false
}

// TransformSeries builds one bracket series from a postseason series
// entry. The last listed game is authoritative for win counts and
// orientation; the higher seed takes the top slot.
func TransformSeries(entry statsapi.SeriesEntry, al, nl SeedMap, resolve LeagueResolver) (Series, bool) {
	if len(entry.Games) == 0 {
		return Series{}, false
	}
	last := entry.Games[len(entry.Games)-1]
	league := InferLeague(entry, al, nl, resolve)

	gamesInSeries := last.GamesInSeries
	if gamesInSeries <= 0 {
		gamesInSeries = len(entry.Games)
	}
	winsToClinch := (gamesInSeries + 1) / 2

	away := seriesTeam(last.Teams.Away, al, nl, league)
	home := seriesTeam(last.Teams.Home, al, nl, league)
	if away.Wins >= winsToClinch {
		away.IsWinner = true
	}
	if home.Wins >= winsToClinch {
		home.IsWinner = true
	}

	top, bottom := away, home
	if home.Seed <= away.Seed {
		top, bottom = home, away
	}

	series := Series{
		SeriesID:      entry.Series.ID,
		GameType:      last.GameType,
		League:        league,
		Round:         games.GameTypeLabel(last.GameType),
		GamesInSeries: gamesInSeries,
		WinsToClinch:  winsToClinch,
		Top:           top,
		Bottom:        bottom,
		Games:         seriesGames(entry.Games),
		Status:        seriesStatus(entry.Games, away, home),
	}
	if winner, ok := seriesWinner(top, bottom); ok {
		id := winner.TeamID
		series.WinnerID = &id
		series.Winner = &winner
	}
	return series, true
}

func seriesWinner(top, bottom Team) (Team, bool) {
	switch {
	case top.IsWinner:
		return top, true
	case bottom.IsWinner:
		return bottom, true
	}
	return Team{}, false
}

func seriesTeam(side statsapi.GameTeamSide, al, nl SeedMap, league string) Team {
	team := Team{
		TeamID:       side.Team.ID,
		Name:         side.Team.Name,
		Abbreviation: side.Team.Abbreviation,
		Seed:         UnseededRank,
	}
	if side.LeagueRecord != nil {
		team.Wins = side.LeagueRecord.Wins
	}

	primary, secondary := al, nl
	if league == LeagueNL {
		primary, secondary = nl, al
	}
	seeded, ok := findSeed(primary, side.Team.ID)
	if !ok {
		seeded, ok = findSeed(secondary, side.Team.ID)
	}
	if ok {
		team.Seed = seeded.Seed
		if seeded.Name != "" {
			team.Name = seeded.Name
		}
		if seeded.Abbreviation != "" {
			team.Abbreviation = seeded.Abbreviation
		}
	}
	// A slot with no resolvable name is a bracket position whose team
	// has not been determined yet.
	if team.Name == "" {
		team.Name = PlaceholderName
		team.Abbreviation = PlaceholderAbbreviation
	}
	return team
}

func seriesGames(entries []statsapi.Game) []SeriesGame {
	out := make([]SeriesGame, 0, len(entries))
	for _, g := range entries {
		out = append(out, SeriesGame{
			GamePk:     g.GamePk,
			GameDate:   g.GameDate,
			Status:     g.Status.DetailedState,
			AwayScore:  g.Teams.Away.Score,
			HomeScore:  g.Teams.Home.Score,
			GameNumber: g.SeriesGameNumber,
		})
	}
	return out
}

// seriesStatus reports complete when a side has clinched, scheduled
// when no game has begun, in_progress otherwise.
func seriesStatus(entries []statsapi.Game, away, home Team) SeriesStatus {
	if away.IsWinner || home.IsWinner {
		return StatusComplete
	}
	for _, g := range entries {
		state := g.Status.AbstractGameState
		if state != statsapi.StatePreview && state != statsapi.StateScheduled {
			return StatusInProgress
		}
	}
	return StatusScheduled
}

// Build assembles the full bracket for a season. A nil postseason
// document yields an empty bracket.
func Build(season int, postseason *statsapi.PostseasonDoc, standings *statsapi.StandingsDoc, ref map[int]refstore.TeamInfo, resolve LeagueResolver) Bracket {
	al, nl := BuildSeedMaps(standings, ref)

	out := Bracket{
		Season:       season,
		Seeds:        map[string]SeedMap{LeagueAL: al, LeagueNL: nl},
		PlayoffTeams: BuildPlayoffTeams(standings, ref),
		AL:           Rounds{WildCard: []Series{}, Division: []Series{}, LCS: []Series{}},
		NL:           Rounds{WildCard: []Series{}, Division: []Series{}, LCS: []Series{}},
		WorldSeries:  []Series{},
	}
	if postseason == nil {
		return out
	}

	for _, entry := range postseason.Series {
		series, ok := TransformSeries(entry, al, nl, resolve)
		if !ok {
			continue
		}
		out.HasStarted = true

		rounds := &out.NL
		if series.League == LeagueAL {
			rounds = &out.AL
		}
		switch series.GameType {
		case games.GameTypeWildCard:
			rounds.WildCard = append(rounds.WildCard, series)
		case games.GameTypeDivision:
			rounds.Division = append(rounds.Division, series)
		case games.GameTypeLeague:
			rounds.LCS = append(rounds.LCS, series)
		case games.GameTypeWorldSeries:
			out.WorldSeries = append(out.WorldSeries, series)
			if series.Status == StatusComplete {
				out.IsComplete = true
			}
		}
	}
	return out
}
