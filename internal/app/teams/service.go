// Package teams serves team directory, profile, affiliate and roster
// views.
package teams

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"mlb-stats-service/internal/cache"
	"mlb-stats-service/internal/domain/teams"
	"mlb-stats-service/internal/statsapi"
	teamsview "mlb-stats-service/internal/teams"
)

// ErrInvalidSportID is returned for sport ids outside the served set.
var ErrInvalidSportID = errors.New("invalid sport id")

// ErrInvalidTeamID is returned for non-positive team ids.
var ErrInvalidTeamID = errors.New("invalid team id")

// ErrTeamNotFound is returned when the upstream knows no such team.
var ErrTeamNotFound = errors.New("team not found")

var servedSports = map[int]bool{1: true, 11: true, 12: true, 13: true, 14: true}

// Config carries the upstream location and profile TTLs.
type Config struct {
	BaseURL    string
	ProfileTTL time.Duration
	RosterTTL  time.Duration
}

// Service answers team requests from the cache.
type Service struct {
	cfg     Config
	cache   *cache.Cache
	fetcher statsapi.Fetcher
	logger  *slog.Logger
	clock   func() time.Time
}

// New constructs the teams service.
func New(cfg Config, c *cache.Cache, fetcher statsapi.Fetcher, logger *slog.Logger) *Service {
	return &Service{
		cfg:     cfg,
		cache:   c,
		fetcher: fetcher,
		logger:  logger,
		clock:   time.Now,
	}
}

// List returns the teams for a sport id, defaulting to MLB, sorted by
// name.
func (s *Service) List(ctx context.Context, sportID int) ([]teams.Summary, bool, error) {
	if sportID == 0 {
		sportID = 1
	}
	if !servedSports[sportID] {
		return nil, false, fmt.Errorf("%w: %d", ErrInvalidSportID, sportID)
	}
	season := s.clock().Year()

	key := cache.NewKey(cache.CategoryTeams, strconv.Itoa(sportID), strconv.Itoa(season))
	payload, stale, err := s.cache.Fetch(ctx, key, cache.FixedTTL(s.cfg.ProfileTTL), func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, statsapi.TeamsURL(s.cfg.BaseURL, sportID, season))
	})
	if err != nil {
		return nil, false, err
	}
	doc, err := statsapi.DecodeTeams(payload)
	if err != nil {
		return nil, false, err
	}
	return teamsview.BuildList(&doc), stale, nil
}

// Profile returns the detailed view of one team.
func (s *Service) Profile(ctx context.Context, teamID int) (teams.Profile, bool, error) {
	if teamID <= 0 {
		return teams.Profile{}, false, fmt.Errorf("%w: %d", ErrInvalidTeamID, teamID)
	}

	key := cache.NewKey(cache.CategoryTeamProfile, strconv.Itoa(teamID))
	payload, stale, err := s.cache.Fetch(ctx, key, cache.FixedTTL(s.cfg.ProfileTTL), func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, statsapi.TeamURL(s.cfg.BaseURL, teamID))
	})
	if err != nil {
		return teams.Profile{}, false, err
	}
	doc, err := statsapi.DecodeTeams(payload)
	if err != nil {
		return teams.Profile{}, false, err
	}
	if len(doc.Teams) == 0 {
		return teams.Profile{}, false, fmt.Errorf("%w: %d", ErrTeamNotFound, teamID)
	}
	return teamsview.BuildProfile(doc.Teams[0]), stale, nil
}

// Affiliates returns a parent club's minor-league affiliates ordered
// from Triple-A down.
func (s *Service) Affiliates(ctx context.Context, teamID int) ([]teams.Affiliate, bool, error) {
	if teamID <= 0 {
		return nil, false, fmt.Errorf("%w: %d", ErrInvalidTeamID, teamID)
	}

	key := cache.NewKey(cache.CategoryAffiliates, strconv.Itoa(teamID))
	payload, stale, err := s.cache.Fetch(ctx, key, cache.FixedTTL(s.cfg.ProfileTTL), func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, statsapi.AffiliatesURL(s.cfg.BaseURL, teamID))
	})
	if err != nil {
		return nil, false, err
	}
	doc, err := statsapi.DecodeTeams(payload)
	if err != nil {
		return nil, false, err
	}
	return teamsview.BuildAffiliates(&doc), stale, nil
}

// Roster returns a team's active roster, pitchers first.
func (s *Service) Roster(ctx context.Context, teamID int) (teams.Roster, bool, error) {
	if teamID <= 0 {
		return teams.Roster{}, false, fmt.Errorf("%w: %d", ErrInvalidTeamID, teamID)
	}

	key := cache.NewKey(cache.CategoryRoster, strconv.Itoa(teamID))
	payload, stale, err := s.cache.Fetch(ctx, key, cache.FixedTTL(s.cfg.RosterTTL), func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, statsapi.RosterURL(s.cfg.BaseURL, teamID))
	})
	if err != nil {
		return teams.Roster{}, false, err
	}
	doc, err := statsapi.DecodeRoster(payload)
	if err != nil {
		return teams.Roster{}, false, err
	}
	return teamsview.BuildRoster(teamID, &doc), stale, nil
}
