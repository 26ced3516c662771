// Package postseason serves the playoff bracket view.
package postseason

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"mlb-stats-service/internal/bracket"
	"mlb-stats-service/internal/cache"
	"mlb-stats-service/internal/logging"
	"mlb-stats-service/internal/refstore"
	"mlb-stats-service/internal/statsapi"
)

// The wild-card era bracket this service renders starts in 2022.
const minSeason = 2022

var servedSports = map[int]bool{1: true, 11: true, 12: true, 13: true, 14: true}

// ErrInvalidSeason is returned for seasons outside the served range.
var ErrInvalidSeason = errors.New("invalid season")

// ErrInvalidSportID is returned for sport ids the service does not
// cover.
var ErrInvalidSportID = errors.New("invalid sport id")

// Config carries the upstream location and bracket TTLs.
type Config struct {
	BaseURL           string
	PostseasonTTL     time.Duration
	PostseasonLiveTTL time.Duration
	SettledTTL        time.Duration
}

// Service assembles postseason brackets from cached documents.
type Service struct {
	cfg     Config
	cache   *cache.Cache
	fetcher statsapi.Fetcher
	ref     refstore.Store
	logger  *slog.Logger
	clock   func() time.Time
}

// New constructs the postseason service.
func New(cfg Config, c *cache.Cache, fetcher statsapi.Fetcher, ref refstore.Store, logger *slog.Logger) *Service {
	return &Service{
		cfg:     cfg,
		cache:   c,
		fetcher: fetcher,
		ref:     ref,
		logger:  logger,
		clock:   time.Now,
	}
}

// Bracket returns the bracket for a season and sport, defaulting to
// the current year and the major-league sport id. A season whose
// playoffs have not begun yields an empty bracket rather than an
// error. The boolean reports a stale serve.
func (s *Service) Bracket(ctx context.Context, season, sportID int) (bracket.Bracket, bool, error) {
	currentYear := s.clock().Year()
	if season == 0 {
		season = currentYear
	}
	if season < minSeason || season > currentYear+1 {
		return bracket.Bracket{}, false, fmt.Errorf("%w: %d", ErrInvalidSeason, season)
	}
	if sportID == 0 {
		sportID = 1
	}
	if !servedSports[sportID] {
		return bracket.Bracket{}, false, fmt.Errorf("%w: %d", ErrInvalidSportID, sportID)
	}

	policy := cache.FixedTTL(s.cfg.SettledTTL)
	if season >= currentYear {
		policy = cache.LiveAwareTTL(s.cfg.PostseasonTTL, s.cfg.PostseasonLiveTTL, statsapi.HasLivePostseasonGames)
	}

	key := cache.NewKey(cache.CategoryPostseason, strconv.Itoa(sportID), strconv.Itoa(season))
	payload, stale, err := s.cache.Fetch(ctx, key, policy, func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, statsapi.PostseasonSeriesURL(s.cfg.BaseURL, season, sportID))
	})
	if err != nil {
		if statsapi.IsUnavailable(err) {
			// The upstream endpoint has nothing to say before the
			// playoff schedule for a season exists; an empty bracket
			// is the correct answer, not an error.
			logging.Warn(s.logger, "postseason schedule not available", logging.FieldSeason, season, "error", err)
			return bracket.Build(season, nil, nil, nil, nil), false, nil
		}
		return bracket.Bracket{}, false, err
	}

	doc, err := statsapi.DecodePostseason(payload)
	if err != nil {
		return bracket.Bracket{}, false, err
	}

	standings := s.standings(ctx, season)
	ref := s.teamMap(ctx)
	return bracket.Build(season, &doc, standings, ref, s.resolver(ctx)), stale, nil
}

// standings fetches the season's final regular-season standings for
// seeding. Seeding is best-effort; the bracket renders unseeded when
// the document cannot be had.
func (s *Service) standings(ctx context.Context, season int) *statsapi.StandingsDoc {
	key := cache.NewKey(cache.CategoryStandings, "regularSeason", strconv.Itoa(season))
	payload, _, err := s.cache.Fetch(ctx, key, cache.FixedTTL(s.cfg.PostseasonTTL), func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, statsapi.StandingsURL(s.cfg.BaseURL, season, "regularSeason"))
	})
	if err != nil {
		logging.Warn(s.logger, "standings unavailable for seeding", logging.FieldSeason, season, "error", err)
		return nil
	}
	doc, err := statsapi.DecodeStandings(payload)
	if err != nil {
		logging.Warn(s.logger, "standings decode failed", logging.FieldSeason, season, "error", err)
		return nil
	}
	return &doc
}

func (s *Service) teamMap(ctx context.Context) map[int]refstore.TeamInfo {
	if s.ref == nil {
		return nil
	}
	teams, err := s.ref.TeamMap(ctx)
	if err != nil {
		logging.Warn(s.logger, "reference team lookup failed", "error", err)
		return nil
	}
	return teams
}

func (s *Service) resolver(ctx context.Context) bracket.LeagueResolver {
	if s.ref == nil {
		return nil
	}
	return func(teamID int) (string, bool) {
		league, err := s.ref.TeamLeague(ctx, teamID)
		if err != nil || league == "" {
			return "", false
		}
		return league, true
	}
}
