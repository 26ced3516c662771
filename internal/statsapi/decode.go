package statsapi

import (
	"encoding/json"
	"fmt"
)

// DecodeSchedule parses a raw schedule document.
func DecodeSchedule(payload []byte) (ScheduleDoc, error) {
	var doc ScheduleDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return ScheduleDoc{}, fmt.Errorf("decode schedule: %w", err)
	}
	return doc, nil
}

// DecodeFeed parses a raw live-feed document.
func DecodeFeed(payload []byte) (FeedDoc, error) {
	var doc FeedDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return FeedDoc{}, fmt.Errorf("decode feed: %w", err)
	}
	return doc, nil
}

// DecodeStandings parses a raw standings document.
func DecodeStandings(payload []byte) (StandingsDoc, error) {
	var doc StandingsDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return StandingsDoc{}, fmt.Errorf("decode standings: %w", err)
	}
	return doc, nil
}

// DecodePostseason parses a raw postseason series document.
func DecodePostseason(payload []byte) (PostseasonDoc, error) {
	var doc PostseasonDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return PostseasonDoc{}, fmt.Errorf("decode postseason: %w", err)
	}
	return doc, nil
}

// DecodeTeams parses a raw teams document.
func DecodeTeams(payload []byte) (TeamsDoc, error) {
	var doc TeamsDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return TeamsDoc{}, fmt.Errorf("decode teams: %w", err)
	}
	return doc, nil
}

// DecodeRoster parses a raw roster document.
func DecodeRoster(payload []byte) (RosterDoc, error) {
	var doc RosterDoc
	if err := json.Unmarshal(payload, &doc); err != nil {
		return RosterDoc{}, fmt.Errorf("decode roster: %w", err)
	}
	return doc, nil
}

// HasLivePostseasonGames reports whether any game in a raw postseason
// series document is in progress.
func HasLivePostseasonGames(payload []byte) bool {
	doc, err := DecodePostseason(payload)
	if err != nil {
		return false
	}
	for _, series := range doc.Series {
		for _, g := range series.Games {
			if g.Status.AbstractGameState == StateLive {
				return true
			}
		}
	}
	return false
}

// HasLiveGames reports whether any game in a raw schedule document is
// currently in progress. Used by the schedule TTL policy; a document
// that fails to decode counts as not live.
func HasLiveGames(payload []byte) bool {
	doc, err := DecodeSchedule(payload)
	if err != nil {
		return false
	}
	for _, date := range doc.Dates {
		for _, g := range date.Games {
			if g.Status.AbstractGameState == StateLive {
				return true
			}
		}
	}
	return false
}
