// Package schedule turns raw Stats API schedule and live feed documents
// into the served game views. Every function here is pure; the caller
// supplies the center date and the reference team map.
package schedule

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"mlb-stats-service/internal/domain/games"
	"mlb-stats-service/internal/refstore"
	"mlb-stats-service/internal/statsapi"
	"mlb-stats-service/internal/timeutil"
)

const (
	labelYesterday = "Yesterday"
	labelToday     = "Today"
	labelTomorrow  = "Tomorrow"
)

var displayZone = mustLoadZone("America/Chicago")

func mustLoadZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NormalizeWindow buckets a schedule document into yesterday, today and
// tomorrow relative to center. Dates outside the window are dropped and
// upstream game order within a date is preserved. Every bucket is
// present even when empty.
func NormalizeWindow(doc *statsapi.ScheduleDoc, center time.Time, ref map[int]refstore.TeamInfo) games.Window {
	yesterday, today, tomorrow := timeutil.Window(center)

	buckets := []games.DayBucket{
		{Date: yesterday, Label: labelYesterday, Games: []games.Game{}},
		{Date: today, Label: labelToday, Games: []games.Game{}},
		{Date: tomorrow, Label: labelTomorrow, Games: []games.Game{}},
	}
	if doc == nil {
		return games.Window{Days: buckets}
	}

	for _, date := range doc.Dates {
		for i := range buckets {
			if buckets[i].Date != date.Date {
				continue
			}
			for _, g := range date.Games {
				buckets[i].Games = append(buckets[i].Games, NormalizeGame(g, ref))
			}
		}
	}
	return games.Window{Days: buckets}
}

// FilterTeam keeps only games involving teamID, preserving all three
// day buckets.
func FilterTeam(w games.Window, teamID int) games.Window {
	out := games.Window{Days: make([]games.DayBucket, len(w.Days))}
	for i, day := range w.Days {
		filtered := []games.Game{}
		for _, g := range day.Games {
			if g.Away.TeamID == teamID || g.Home.TeamID == teamID {
				filtered = append(filtered, g)
			}
		}
		out.Days[i] = games.DayBucket{Date: day.Date, Label: day.Label, Games: filtered}
	}
	return out
}

// NormalizeGame maps one schedule entry to the served game shape.
func NormalizeGame(g statsapi.Game, ref map[int]refstore.TeamInfo) games.Game {
	state := classifyState(g.Status.AbstractGameState)

	out := games.Game{
		GamePk:        g.GamePk,
		GameType:      g.GameType,
		GameTypeLabel: games.GameTypeLabel(g.GameType),
		StartTime:     FormatStartTime(g.GameDate),
		Status:        g.Status.DetailedState,
		StatusCode:    g.Status.StatusCode,
		State:         state,
		IsFinal:       state == games.StateFinal,
		IsLive:        state == games.StateLive,
		IsScheduled:   state == games.StateScheduled,
		Away:          normalizeSide(g.Teams.Away, ref),
		Home:          normalizeSide(g.Teams.Home, ref),
		Broadcasts:    broadcastNames(g.Broadcasts),
		Venue:         g.Venue.Name,
		Innings:       []games.InningLine{},
	}

	if g.Linescore != nil {
		applyLinescore(&out, g.Linescore)
	}

	switch state {
	case games.StateFinal:
		markWinner(&out.Away, &out.Home)
		out.Decisions = normalizeDecisions(g.Decisions)
	case games.StateScheduled:
		out.ProbablePitchers = normalizeProbables(g.Teams)
	}
	return out
}

// FormatStartTime renders an upstream RFC 3339 timestamp in the display
// timezone as a clock string, "3:04 PM CT". Unparseable input yields an
// empty string rather than a wrong time.
func FormatStartTime(gameDate string) string {
	t, err := time.Parse(time.RFC3339, gameDate)
	if err != nil {
		return ""
	}
	return t.In(displayZone).Format("3:04 PM") + " CT"
}

func classifyState(abstract string) games.GameState {
	switch abstract {
	case statsapi.StateLive:
		return games.StateLive
	case statsapi.StateFinal:
		return games.StateFinal
	default:
		return games.StateScheduled
	}
}

func normalizeSide(side statsapi.GameTeamSide, ref map[int]refstore.TeamInfo) games.TeamSide {
	out := games.TeamSide{
		TeamID:       side.Team.ID,
		Name:         side.Team.Name,
		Abbreviation: side.Team.Abbreviation,
		Score:        side.Score,
	}
	if info, ok := ref[side.Team.ID]; ok {
		if info.Name != "" {
			out.Name = info.Name
		}
		if info.Abbreviation != "" {
			out.Abbreviation = info.Abbreviation
		}
	}
	if side.LeagueRecord != nil {
		out.Record = fmt.Sprintf("%d-%d", side.LeagueRecord.Wins, side.LeagueRecord.Losses)
	}
	return out
}

// markWinner sets winner flags only when both final scores are known.
// Ties stay unflagged.
func markWinner(away, home *games.TeamSide) {
	if away.Score == nil || home.Score == nil {
		return
	}
	switch {
	case *away.Score > *home.Score:
		away.IsWinner = true
	case *home.Score > *away.Score:
		home.IsWinner = true
	}
}

func applyLinescore(out *games.Game, ls *statsapi.Linescore) {
	out.CurrentInning = ls.CurrentInning
	out.InningState = ls.InningState
	out.InningOrdinal = ls.CurrentInningOrdinal
	out.Outs = ls.Outs
	if ls.InningState != nil {
		out.IsTopInning = *ls.InningState == "Top"
	}
	if ls.Offense != nil {
		out.OnFirst = ls.Offense.First != nil
		out.OnSecond = ls.Offense.Second != nil
		out.OnThird = ls.Offense.Third != nil
	}
	for _, inning := range ls.Innings {
		out.Innings = append(out.Innings, games.InningLine{Away: inning.Away.Runs, Home: inning.Home.Runs})
	}
}

func broadcastNames(broadcasts []statsapi.Broadcast) []string {
	names := []string{}
	seen := map[string]bool{}
	for _, b := range broadcasts {
		name := b.Name
		if name == "" {
			name = b.CallSign
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func normalizeDecisions(d *statsapi.Decisions) *games.Decisions {
	if d == nil {
		return nil
	}
	out := &games.Decisions{
		Winner: decisionCredit(d.Winner),
		Loser:  decisionCredit(d.Loser),
		Save:   decisionCredit(d.Save),
	}
	if out.Winner == nil && out.Loser == nil && out.Save == nil {
		return nil
	}
	return out
}

func decisionCredit(p *statsapi.Person) *games.DecisionCredit {
	if p == nil {
		return nil
	}
	return &games.DecisionCredit{Name: p.FullName, Hand: handCode(p.PitchHand)}
}

func normalizeProbables(teams statsapi.GameTeams) *games.ProbablePitchers {
	away := teams.Away.ProbablePitcher
	home := teams.Home.ProbablePitcher
	if away == nil && home == nil {
		return nil
	}
	out := &games.ProbablePitchers{}
	if away != nil {
		out.Away = away.FullName
		out.AwayHand = handCode(away.PitchHand)
	}
	if home != nil {
		out.Home = home.FullName
		out.HomeHand = handCode(home.PitchHand)
	}
	return out
}

func handCode(h *statsapi.Hand) *string {
	if h == nil || h.Code == "" {
		return nil
	}
	code := h.Code
	return &code
}

// NormalizeDetail builds the full single-game view from a live feed
// document.
func NormalizeDetail(feed *statsapi.FeedDoc, ref map[int]refstore.TeamInfo) games.Detail {
	state := classifyState(feed.GameData.Status.AbstractGameState)

	gamePk := feed.GamePk
	if gamePk == 0 {
		gamePk = feed.GameData.Game.Pk
	}

	detail := games.Detail{
		Game: games.Game{
			GamePk:        gamePk,
			GameType:      feed.GameData.Game.Type,
			GameTypeLabel: games.GameTypeLabel(feed.GameData.Game.Type),
			StartTime:     FormatStartTime(feed.GameData.Datetime.DateTime),
			Status:        feed.GameData.Status.DetailedState,
			StatusCode:    feed.GameData.Status.StatusCode,
			State:         state,
			IsFinal:       state == games.StateFinal,
			IsLive:        state == games.StateLive,
			IsScheduled:   state == games.StateScheduled,
			Away:          feedSide(feed.GameData.Teams.Away, ref),
			Home:          feedSide(feed.GameData.Teams.Home, ref),
			Broadcasts:    []string{},
			Innings:       []games.InningLine{},
		},
		AwayBox: games.BoxSide{Pitchers: []games.PitcherLine{}, Batters: []games.BatterLine{}},
		HomeBox: games.BoxSide{Pitchers: []games.PitcherLine{}, Batters: []games.BatterLine{}},
	}
	if feed.GameData.Venue != nil {
		detail.Venue = feed.GameData.Venue.Name
	}

	ls := feed.LiveData.Linescore
	if ls != nil {
		applyLinescore(&detail.Game, ls)
		detail.AwayTotals = games.LineTotals(ls.Teams.Away)
		detail.HomeTotals = games.LineTotals(ls.Teams.Home)
		awayRuns := ls.Teams.Away.Runs
		homeRuns := ls.Teams.Home.Runs
		detail.Away.Score = &awayRuns
		detail.Home.Score = &homeRuns
	}

	var awayBox, homeBox *statsapi.BoxTeam
	if feed.LiveData.Boxscore != nil {
		awayBox = &feed.LiveData.Boxscore.Teams.Away
		homeBox = &feed.LiveData.Boxscore.Teams.Home
		detail.AwayBox = normalizeBoxSide(awayBox)
		detail.HomeBox = normalizeBoxSide(homeBox)
	}

	if state == games.StateFinal {
		markWinner(&detail.Away, &detail.Home)
		detail.Decisions = feedDecisions(feed.LiveData.Decisions, awayBox, homeBox)
	}
	if state == games.StateLive && feed.LiveData.Plays != nil {
		detail.Matchup = normalizeMatchup(feed.LiveData.Plays, awayBox, homeBox)
	}
	return detail
}

func feedSide(t statsapi.TeamRef, ref map[int]refstore.TeamInfo) games.TeamSide {
	out := games.TeamSide{TeamID: t.ID, Name: t.Name, Abbreviation: t.Abbreviation}
	if info, ok := ref[t.ID]; ok {
		if info.Name != "" {
			out.Name = info.Name
		}
		if info.Abbreviation != "" {
			out.Abbreviation = info.Abbreviation
		}
	}
	return out
}

func normalizeBoxSide(team *statsapi.BoxTeam) games.BoxSide {
	side := games.BoxSide{Pitchers: []games.PitcherLine{}, Batters: []games.BatterLine{}}

	for _, id := range team.Pitchers {
		player, ok := team.Players[playerKey(id)]
		if !ok {
			continue
		}
		p := player.Stats.Pitching
		side.Pitchers = append(side.Pitchers, games.PitcherLine{
			PlayerID:       player.Person.ID,
			Name:           player.Person.FullName,
			Number:         player.JerseyNumber,
			Note:           p.Note,
			InningsPitched: p.InningsPitched,
			Hits:           p.Hits,
			Runs:           p.Runs,
			EarnedRuns:     p.EarnedRuns,
			Walks:          p.BaseOnBalls,
			StrikeOuts:     p.StrikeOuts,
			PitchesThrown:  p.NumberOfPitches,
		})
	}

	for _, player := range team.Players {
		bo, ok := battingOrder(player.BattingOrder)
		if !ok {
			continue
		}
		b := player.Stats.Batting
		side.Batters = append(side.Batters, games.BatterLine{
			PlayerID:     player.Person.ID,
			Name:         player.Person.FullName,
			Number:       player.JerseyNumber,
			Position:     player.Position.Abbreviation,
			LineupSpot:   bo / 100,
			IsSubstitute: bo%100 > 0,
			AtBats:       b.AtBats,
			Runs:         b.Runs,
			Hits:         b.Hits,
			RBI:          b.RBI,
			Walks:        b.BaseOnBalls,
			StrikeOuts:   b.StrikeOuts,
			Average:      player.SeasonStats.Batting.Avg,
		})
	}
	sort.Slice(side.Batters, func(i, j int) bool {
		bi := side.Batters[i].LineupSpot*100 + boolToInt(side.Batters[i].IsSubstitute)
		bj := side.Batters[j].LineupSpot*100 + boolToInt(side.Batters[j].IsSubstitute)
		if bi != bj {
			return bi < bj
		}
		return side.Batters[i].PlayerID < side.Batters[j].PlayerID
	})
	return side
}

// battingOrder parses the upstream batting order string, e.g. "100" for
// the leadoff starter or "401" for the first substitute in the cleanup
// spot. Empty or malformed values mean the player never batted.
func battingOrder(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	bo, err := strconv.Atoi(raw)
	if err != nil || bo <= 0 {
		return 0, false
	}
	return bo, true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func playerKey(id int) string {
	return fmt.Sprintf("ID%d", id)
}

func normalizeMatchup(plays *statsapi.Plays, away, home *statsapi.BoxTeam) *games.Matchup {
	if plays.CurrentPlay == nil || plays.CurrentPlay.Matchup == nil {
		return nil
	}
	m := plays.CurrentPlay.Matchup
	if m.Pitcher == nil || m.Batter == nil {
		return nil
	}

	out := &games.Matchup{
		Pitcher: games.MatchupPlayer{PlayerID: m.Pitcher.ID, Name: m.Pitcher.FullName, Hand: handCode(m.Pitcher.PitchHand)},
		Batter:  games.MatchupPlayer{PlayerID: m.Batter.ID, Name: m.Batter.FullName, Hand: handCode(m.Batter.BatSide)},
	}
	if p, ok := findBoxPlayer(m.Pitcher.ID, away, home); ok {
		out.Pitcher.Position = p.Position.Abbreviation
		pitching := p.Stats.Pitching
		out.Pitcher.Summary = fmt.Sprintf("%s IP, %d K", pitching.InningsPitched, pitching.StrikeOuts)
		if out.Pitcher.Hand == nil {
			out.Pitcher.Hand = handCode(p.Person.PitchHand)
		}
	}
	if p, ok := findBoxPlayer(m.Batter.ID, away, home); ok {
		out.Batter.Position = p.Position.Abbreviation
		batting := p.Stats.Batting
		out.Batter.Summary = fmt.Sprintf("%d-%d", batting.Hits, batting.AtBats)
		if out.Batter.Hand == nil {
			out.Batter.Hand = handCode(p.Person.BatSide)
		}
	}
	return out
}

func findBoxPlayer(id int, sides ...*statsapi.BoxTeam) (statsapi.BoxPlayer, bool) {
	for _, side := range sides {
		if side == nil {
			continue
		}
		if player, ok := side.Players[playerKey(id)]; ok {
			return player, true
		}
	}
	return statsapi.BoxPlayer{}, false
}

func feedDecisions(d *statsapi.Decisions, away, home *statsapi.BoxTeam) *games.Decisions {
	if d == nil {
		return nil
	}
	credit := func(p *statsapi.Person) *games.DecisionCredit {
		if p == nil {
			return nil
		}
		out := &games.DecisionCredit{Name: p.FullName, Hand: handCode(p.PitchHand)}
		if out.Hand == nil {
			if player, ok := findBoxPlayer(p.ID, away, home); ok {
				out.Hand = handCode(player.Person.PitchHand)
			}
		}
		return out
	}
	out := &games.Decisions{Winner: credit(d.Winner), Loser: credit(d.Loser), Save: credit(d.Save)}
	if out.Winner == nil && out.Loser == nil && out.Save == nil {
		return nil
	}
	return out
}
