// Package games serves the schedule window and single-game views.
package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"mlb-stats-service/internal/cache"
	"mlb-stats-service/internal/domain/games"
	"mlb-stats-service/internal/logging"
	"mlb-stats-service/internal/refstore"
	"mlb-stats-service/internal/schedule"
	"mlb-stats-service/internal/statsapi"
	"mlb-stats-service/internal/timeutil"
)

// ErrInvalidDate is returned when a date parameter is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidSportID is returned for sport ids outside the served set.
var ErrInvalidSportID = errors.New("invalid sport id")

// ErrInvalidGamePk is returned for non-positive game ids.
var ErrInvalidGamePk = errors.New("invalid gamePk")

// Sport ids this service exposes: MLB and the four full-season minor
// league levels.
var servedSports = map[int]bool{1: true, 11: true, 12: true, 13: true, 14: true}

// Config carries the upstream location and schedule TTLs.
type Config struct {
	BaseURL     string
	ScheduleTTL time.Duration
	LiveTTL     time.Duration
}

// Service answers schedule and game detail requests from the cache.
type Service struct {
	cfg     Config
	cache   *cache.Cache
	fetcher statsapi.Fetcher
	ref     refstore.Store
	logger  *slog.Logger
	clock   func() time.Time
}

// New constructs the games service.
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

// ScheduleQuery narrows the schedule view. Zero values mean defaults:
// today, MLB, all teams.
type ScheduleQuery struct {
	Date    string
	SportID int
	TeamID  int
}

// Schedule returns the three-day window around the query date. The
// boolean reports whether the payload was served stale after a failed
// refresh.
func (s *Service) Schedule(ctx context.Context, q ScheduleQuery) (games.Window, bool, error) {
	center := s.clock()
	if q.Date != "" {
		parsed, err := timeutil.ParseDate(q.Date)
		if err != nil {
			return games.Window{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, q.Date)
		}
		center = parsed
	}
	sportID := q.SportID
	if sportID == 0 {
		sportID = 1
	}
	if !servedSports[sportID] {
		return games.Window{}, false, fmt.Errorf("%w: %d", ErrInvalidSportID, sportID)
	}

	yesterday, today, tomorrow := timeutil.Window(center)
	key := cache.NewKey(cache.CategorySchedule, strconv.Itoa(sportID), today)
	policy := cache.LiveAwareTTL(s.cfg.ScheduleTTL, s.cfg.LiveTTL, statsapi.HasLiveGames)

	payload, stale, err := s.cache.Fetch(ctx, key, policy, func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, statsapi.ScheduleURL(s.cfg.BaseURL, sportID, yesterday, tomorrow))
	})
	if err != nil {
		return games.Window{}, false, err
	}

	doc, err := statsapi.DecodeSchedule(payload)
	if err != nil {
		return games.Window{}, false, err
	}

	window := schedule.NormalizeWindow(&doc, center, s.teamMap(ctx))
	if q.TeamID != 0 {
		window = schedule.FilterTeam(window, q.TeamID)
	}
	return window, stale, nil
}

// GameDetail returns the full view for one game.
func (s *Service) GameDetail(ctx context.Context, gamePk int) (games.Detail, bool, error) {
	if gamePk <= 0 {
		return games.Detail{}, false, fmt.Errorf("%w: %d", ErrInvalidGamePk, gamePk)
	}

	// Feeds always use the short TTL, live or settled.
	key := cache.NewKey(cache.CategoryGameFeed, strconv.Itoa(gamePk))
	policy := cache.FixedTTL(s.cfg.LiveTTL)

	payload, stale, err := s.cache.Fetch(ctx, key, policy, func(ctx context.Context) ([]byte, error) {
		return s.fetcher.FetchDocument(ctx, statsapi.GameFeedURL(s.cfg.BaseURL, gamePk))
	})
	if err != nil {
		return games.Detail{}, false, err
	}

	feed, err := statsapi.DecodeFeed(payload)
	if err != nil {
		return games.Detail{}, false, err
	}
	return schedule.NormalizeDetail(&feed, s.teamMap(ctx)), stale, nil
}

// teamMap loads the reference identities, tolerating store failures;
// the views then fall back to upstream names.
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
