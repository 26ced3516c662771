package postseason

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"mlb-stats-service/internal/cache"
	"mlb-stats-service/internal/refstore"
	"mlb-stats-service/internal/statsapi"
)

type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, nil))
}

func newService(fetch fetcherFunc) *Service {
	c := cache.New(cache.NewMemoryStore(), testLogger(), nil)
	svc := New(Config{
		BaseURL:           "https://statsapi.example.com",
		PostseasonTTL:     time.Hour,
		PostseasonLiveTTL: 5 * time.Minute,
		SettledTTL:        24 * time.Hour,
	}, c, fetch, refstore.NewStatic(nil, map[int]string{112: "NL"}), testLogger())
	svc.clock = func() time.Time { return time.Date(2024, 10, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func marshal(t *testing.T, v any) []byte {
	t.Helper()
	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return payload
}

func postseasonDoc(t *testing.T) []byte {
	return marshal(t, statsapi.PostseasonDoc{Series: []statsapi.SeriesEntry{{
		Series: statsapi.SeriesRef{ID: "ws"},
		Games: []statsapi.Game{{
			GamePk:        1,
			GameType:      "W",
			GamesInSeries: 7,
			Status:        statsapi.GameStatus{AbstractGameState: statsapi.StateFinal},
			Teams: statsapi.GameTeams{
				Away: statsapi.GameTeamSide{
					Team:         statsapi.TeamRef{ID: 112, Name: "Cubs"},
					LeagueRecord: &statsapi.LeagueRecord{Wins: 4},
				},
				Home: statsapi.GameTeamSide{
					Team:         statsapi.TeamRef{ID: 114, Name: "Guardians"},
					LeagueRecord: &statsapi.LeagueRecord{Wins: 3},
				},
			},
		}},
	}}})
}

func TestBracketSeasonBounds(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		t.Fatal("should not reach upstream")
		return nil, nil
	})

	for _, season := range []int{2021, 2026} {
		if _, _, err := svc.Bracket(context.Background(), season, 0); !errors.Is(err, ErrInvalidSeason) {
			t.Errorf("season %d error = %v, want ErrInvalidSeason", season, err)
		}
	}
}

func TestBracketSportValidation(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		t.Fatal("should not reach upstream")
		return nil, nil
	})

	for _, sportID := range []int{2, 16, -1} {
		if _, _, err := svc.Bracket(context.Background(), 2024, sportID); !errors.Is(err, ErrInvalidSportID) {
			t.Errorf("sport %d error = %v, want ErrInvalidSportID", sportID, err)
		}
	}
}

func TestBracketRequestsSportID(t *testing.T) {
	var requested string
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		if strings.Contains(url, "/schedule/postseason/series") {
			requested = url
		}
		return postseasonDoc(t), nil
	})

	if _, _, err := svc.Bracket(context.Background(), 2024, 11); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(requested, "sportId=11") {
		t.Errorf("url = %q, want sportId=11", requested)
	}
}

func TestBracketBuildsFromDocuments(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		switch {
		case strings.Contains(url, "/schedule/postseason/series"):
			return postseasonDoc(t), nil
		case strings.Contains(url, "/standings"):
			return marshal(t, statsapi.StandingsDoc{}), nil
		}
		t.Fatalf("unexpected url %q", url)
		return nil, nil
	})

	b, stale, err := svc.Bracket(context.Background(), 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if stale {
		t.Error("fresh fetch reported stale")
	}
	if b.Season != 2024 {
		t.Errorf("season = %d, want clock default 2024", b.Season)
	}
	if len(b.WorldSeries) != 1 {
		t.Fatalf("world series count = %d", len(b.WorldSeries))
	}
	if !b.IsComplete || !b.HasStarted {
		t.Error("a decided world series should complete the bracket")
	}
	// The resolver places the unseeded away team's series in the NL.
	if b.WorldSeries[0].League != "NL" {
		t.Errorf("league = %q", b.WorldSeries[0].League)
	}
}

func TestBracketEmptyWhenSeasonNotPublished(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		return nil, &statsapi.UnavailableError{URL: url, StatusCode: 404}
	})

	b, _, err := svc.Bracket(context.Background(), 2025, 0)
	if err != nil {
		t.Fatalf("upcoming season should yield an empty bracket, got %v", err)
	}
	if b.HasStarted || len(b.WorldSeries) != 0 {
		t.Errorf("bracket should be empty: %+v", b)
	}
}

func TestBracketPastSeasonColdMissYieldsEmpty(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		return nil, &statsapi.UnavailableError{URL: url, StatusCode: 503}
	})

	b, _, err := svc.Bracket(context.Background(), 2022, 0)
	if err != nil {
		t.Fatalf("past season cold miss should yield an empty bracket, got %v", err)
	}
	if b.Season != 2022 || b.HasStarted {
		t.Errorf("bracket should be empty for 2022: %+v", b)
	}
}

func TestBracketSurvivesMissingStandings(t *testing.T) {
	svc := newService(func(ctx context.Context, url string) ([]byte, error) {
		if strings.Contains(url, "/standings") {
			return nil, &statsapi.UnavailableError{URL: url, StatusCode: 503}
		}
		return postseasonDoc(t), nil
	})

	b, _, err := svc.Bracket(context.Background(), 2024, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.WorldSeries) != 1 {
		t.Fatal("bracket should render without standings")
	}
	if b.WorldSeries[0].Top.Seed != 99 || b.WorldSeries[0].Bottom.Seed != 99 {
		t.Error("teams should be unseeded without standings")
	}
}
