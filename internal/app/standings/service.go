// Package standings serves the wild-card and division standings views.
package standings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"mlb-stats-service/internal/cache"
	"mlb-stats-service/internal/domain/standings"
	"mlb-stats-service/internal/logging"
	"mlb-stats-service/internal/refstore"
	standingsview "mlb-stats-service/internal/standings"
	"mlb-stats-service/internal/statsapi"
)

const minSeason = 1901

var servedSports = map[int]bool{1: true, 11: true, 12: true, 13: true, 14: true}

// ErrInvalidSeason is returned for implausible season values.
var ErrInvalidSeason = errors.New("invalid season")

// ErrInvalidSportID is returned for sport ids the service does not
// cover.
var ErrInvalidSportID = errors.New("invalid sport id")

// Config carries the upstream location and the standings TTL.
type Config struct {
	BaseURL      string
	StandingsTTL time.Duration
}

// Service answers standings requests from the cache.
type Service struct {
	cfg     Config
	cache   *cache.Cache
	fetcher statsapi.Fetcher
	ref     refstore.Store
	logger  *slog.Logger
	clock   func() time.Time
}

// New constructs the standings service.
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

// WildCard returns the per-league wild-card tables for a season,
// defaulting to the current year. Wild-card races exist at the major
// league level only.
func (s *Service) WildCard(ctx context.Context, season int) (standings.WildCard, bool, error) {
	doc, stale, err := s.fetchStandings(ctx, season, 1, "wildCard")
	if err != nil {
		return standings.WildCard{}, false, err
	}
	return standingsview.BuildWildCard(doc, s.teamMap(ctx)), stale, nil
}

// Divisions returns the division tables for a season, defaulting to
// the major-league sport id.
func (s *Service) Divisions(ctx context.Context, season, sportID int) (standings.Divisions, bool, error) {
	if sportID == 0 {
		sportID = 1
	}
	if !servedSports[sportID] {
		return standings.Divisions{}, false, fmt.Errorf("%w: %d", ErrInvalidSportID, sportID)
	}
	doc, stale, err := s.fetchStandings(ctx, season, sportID, "regularSeason")
	if err != nil {
		return standings.Divisions{}, false, err
	}
	return standingsview.BuildDivisions(doc, s.teamMap(ctx)), stale, nil
}

func (s *Service) fetchStandings(ctx context.Context, season, sportID int, standingsType string) (*statsapi.StandingsDoc, bool, error) {
	if season == 0 {
		season = s.clock().Year()
	}
	if season < minSeason || season > s.clock().Year()+1 {
		return nil, false, fmt.Errorf("%w: %d", ErrInvalidSeason, season)
	}

	url := statsapi.StandingsURL(s.cfg.BaseURL, season, standingsType)
	if sportID != 1 {
		url = statsapi.SportStandingsURL(s.cfg.BaseURL, sportID, season)
	}

	key := cache.NewKey(cache.CategoryStandings, standingsType, strconv.Itoa(sportID), strconv.Itoa(season))
	payload, stale, err := s.cache.Fetch(ctx, key, cache.FixedTTL(s.cfg.StandingsTTL), func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, url)
	})
	if err != nil {
		return nil, false, err
	}
	doc, err := statsapi.DecodeStandings(payload)
	if err != nil {
		return nil, false, err
	}
	return &doc, stale, nil
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
